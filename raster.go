package gridgo

import (
	"math"
	"time"

	"github.com/hupe1980/gridgo/geom"
)

// AddLineSegment indexes segment under id, registering id in every cell the
// segment passes through. Both endpoints must lie within the grid's
// bounding box (inclusive); otherwise *ErrOutOfBounds is returned and
// nothing is registered. Callers indexing geometry that extends past the
// coverage region must clip it beforehand.
//
// Calling AddLineSegment again with the same id appends to the touched
// cells once more; only within a single call is each cell registered at
// most once. The segment retained for exact filtering is the most recently
// added one.
func (g *Grid) AddLineSegment(id ItemID, segment geom.LineSegment) error {
	start := time.Now()

	cells, err := g.rasterize(id, segment)

	if g.metrics != nil {
		g.metrics.RecordInsert(cells, time.Since(start), err)
	}
	g.logger.LogInsert(id, cells, err)

	return err
}

// rasterize walks the segment across the grid and registers id in each
// visited cell. It returns the number of cells registered.
func (g *Grid) rasterize(id ItemID, segment geom.LineSegment) (int, error) {
	if !g.bbox.Contains(segment.A) {
		return 0, &ErrOutOfBounds{ID: id, Point: segment.A, Bounds: g.bbox}
	}
	if !g.bbox.Contains(segment.B) {
		return 0, &ErrOutOfBounds{ID: id, Point: segment.B, Bounds: g.bbox}
	}

	g.segments[id] = segment

	seen := make(map[int]struct{})
	col, row := g.CellIndex(segment.A)

	if segment.IsDegenerate() {
		return g.register(col, row, id, seen), nil
	}

	endCol, endRow := g.CellIndex(segment.B)
	d := segment.Vector()

	// Grid traversal on the parameter t of A + t*(B-A): tMaxX/tMaxY hold
	// the t at which the walk crosses the next vertical/horizontal cell
	// boundary, tDeltaX/tDeltaY the t spanned by one full cell. Every step
	// advances t to the nearest boundary crossing, so each crossed cell is
	// visited exactly once and t strictly increases by at least
	// min(cellWidth, cellHeight)/|B-A| per step.
	stepX, stepY := 0, 0
	tMaxX, tMaxY := math.Inf(1), math.Inf(1)
	tDeltaX, tDeltaY := 0.0, 0.0

	switch {
	case d.X > 0:
		stepX = 1
		boundary := g.bbox.Min.X + float64(col+1)*g.cellWidth
		tMaxX = (boundary - segment.A.X) / d.X
		tDeltaX = g.cellWidth / d.X
	case d.X < 0:
		stepX = -1
		boundary := g.bbox.Min.X + float64(col)*g.cellWidth
		tMaxX = (boundary - segment.A.X) / d.X
		tDeltaX = -g.cellWidth / d.X
	}

	switch {
	case d.Y > 0:
		stepY = 1
		boundary := g.bbox.Min.Y + float64(row+1)*g.cellHeight
		tMaxY = (boundary - segment.A.Y) / d.Y
		tDeltaY = g.cellHeight / d.Y
	case d.Y < 0:
		stepY = -1
		boundary := g.bbox.Min.Y + float64(row)*g.cellHeight
		tMaxY = (boundary - segment.A.Y) / d.Y
		tDeltaY = -g.cellHeight / d.Y
	}

	registered := g.register(col, row, id, seen)

	// The walk visits at most numCols+numRows cells; the explicit step
	// budget bounds it even under float rounding at cell corners.
	for steps := g.numCols + g.numRows; steps > 0; steps-- {
		if col == endCol && row == endRow {
			break
		}
		if tMaxX >= 1 && tMaxY >= 1 {
			break
		}

		if tMaxX < tMaxY {
			col += stepX
			tMaxX += tDeltaX
		} else {
			row += stepY
			tMaxY += tDeltaY
		}

		if col < 0 || col >= g.numCols || row < 0 || row >= g.numRows {
			break
		}

		registered += g.register(col, row, id, seen)
	}

	// Rounding can end the walk one boundary short of B's cell.
	registered += g.register(endCol, endRow, id, seen)

	return registered, nil
}

// register appends id to cell (col, row) unless it was already registered
// during this insertion. It returns the number of new registrations (0 or 1).
func (g *Grid) register(col, row int, id ItemID, seen map[int]struct{}) int {
	idx := g.cellAt(col, row)
	if _, ok := seen[idx]; ok {
		return 0
	}
	seen[idx] = struct{}{}
	g.cells[idx] = append(g.cells[idx], id)
	return 1
}
