package gridgo

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/gridgo/geom"
	"github.com/hupe1980/gridgo/internal/itemset"
)

// Query returns the IDs of all indexed segments that intersect box, in
// ascending ID order. A box fully outside the grid's coverage region
// yields an empty (non-nil) result; queries never fail.
//
// By default candidates gathered from the covered cells are tightened with
// an exact segment/box intersection test. With WithApproximate the raw
// cell-overlap candidate set is returned instead, which may include
// segments that pass through a covered cell without entering box.
func (g *Grid) Query(box geom.BoundingBox) []ItemID {
	start := time.Now()

	candidates, results := g.query(box)

	if g.metrics != nil {
		g.metrics.RecordQuery(candidates, len(results), time.Since(start))
	}
	g.logger.LogQuery(box, candidates, len(results))

	return results
}

func (g *Grid) query(box geom.BoundingBox) (candidates int, results []ItemID) {
	results = []ItemID{}

	if !box.IsValid() || !g.bbox.Intersects(box) {
		return 0, results
	}

	clipped := g.bbox.Intersection(box)
	minCol, minRow := g.CellIndex(clipped.Min)
	maxCol, maxRow := g.CellIndex(clipped.Max)

	set := itemset.New()
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			for _, id := range g.cells[g.cellAt(col, row)] {
				set.Add(uint32(id))
			}
		}
	}

	candidates = int(set.Cardinality())
	results = make([]ItemID, 0, candidates)

	for raw := range set.All() {
		id := ItemID(raw)
		if !g.approximate {
			segment, ok := g.segments[id]
			if !ok || !segment.IntersectsBox(box) {
				continue
			}
		}
		results = append(results, id)
	}

	return candidates, results
}

// BatchQuery runs the given queries concurrently and returns one result
// slice per box, in input order. It is safe only after the build phase has
// ended, since queries never mutate the grid. The context bounds the
// fan-out: on cancellation, remaining queries are abandoned and the
// context error is returned.
func (g *Grid) BatchQuery(ctx context.Context, boxes []geom.BoundingBox) ([][]ItemID, error) {
	start := time.Now()
	results := make([][]ItemID, len(boxes))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxBatchConcurrency)

	for i, box := range boxes {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = g.Query(box)
			return nil
		})
	}

	err := eg.Wait()

	if g.metrics != nil {
		g.metrics.RecordBatchQuery(len(boxes), time.Since(start), err)
	}
	g.logger.LogBatchQuery(len(boxes), err)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// maxBatchConcurrency caps BatchQuery fan-out; queries are CPU-bound, so
// unbounded goroutine counts only add scheduling overhead.
const maxBatchConcurrency = 16

// CellLineSegmentIntersections returns the points where segment crosses
// the boundary of cell (col, row), with at most one point per cell edge.
// Edges are tested in the order bottom, right, top, left. The helper is
// exported for diagnostics alongside the exact query filter.
func (g *Grid) CellLineSegmentIntersections(col, row int, segment geom.LineSegment) []geom.Point {
	var intersections []geom.Point

	for _, edge := range g.CellBoundingBox(col, row).Edges() {
		if p, ok := segment.Intersection(edge); ok {
			intersections = append(intersections, p)
		}
	}

	return intersections
}
