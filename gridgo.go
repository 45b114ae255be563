package gridgo

import (
	"math"

	"github.com/hupe1980/gridgo/geom"
)

// ItemID is the caller-supplied identifier for an indexed segment, for
// example a road-network edge ID. The grid stores and returns it but
// attaches no meaning to it.
type ItemID uint32

// Grid is a uniform-grid spatial index over 2D line segments.
//
// A Grid is constructed once with fixed geometry and then populated by a
// build phase of AddLineSegment calls, followed by a query phase. There is
// no internal synchronization: the caller must serialize all insertions and
// must not query concurrently with them. Once the build phase has ended,
// any number of concurrent Query calls is safe.
type Grid struct {
	bbox       geom.BoundingBox
	cellWidth  float64
	cellHeight float64
	numCols    int
	numRows    int

	// cells is the row-major cell array: the item list of cell (col, row)
	// lives at cells[col + row*numCols]. Lists are insertion-ordered.
	cells [][]ItemID

	// segments retains the indexed geometry for the exact query filter.
	segments map[ItemID]geom.LineSegment

	approximate bool
	logger      *Logger
	metrics     MetricsCollector
}

// New creates a Grid covering bbox with the given cell dimensions. The
// column and row counts are chosen by ceiling division so the grid fully
// covers bbox even when the dimensions do not divide evenly.
func New(bbox geom.BoundingBox, cellWidth, cellHeight float64, optFns ...Option) (*Grid, error) {
	if err := validateBounds(bbox); err != nil {
		return nil, err
	}
	if !(cellWidth > 0) || math.IsInf(cellWidth, 0) {
		return nil, &ErrConfiguration{Reason: "cell width must be positive and finite"}
	}
	if !(cellHeight > 0) || math.IsInf(cellHeight, 0) {
		return nil, &ErrConfiguration{Reason: "cell height must be positive and finite"}
	}

	numCols := int(math.Ceil(bbox.Width() / cellWidth))
	numRows := int(math.Ceil(bbox.Height() / cellHeight))

	return newGrid(bbox, cellWidth, cellHeight, numCols, numRows, optFns), nil
}

// NewWithCellCount creates a Grid covering bbox divided into numCols by
// numRows cells, deriving the cell dimensions from the box extents.
func NewWithCellCount(bbox geom.BoundingBox, numCols, numRows int, optFns ...Option) (*Grid, error) {
	if err := validateBounds(bbox); err != nil {
		return nil, err
	}
	if numCols <= 0 {
		return nil, &ErrConfiguration{Reason: "column count must be positive"}
	}
	if numRows <= 0 {
		return nil, &ErrConfiguration{Reason: "row count must be positive"}
	}

	cellWidth := bbox.Width() / float64(numCols)
	cellHeight := bbox.Height() / float64(numRows)

	return newGrid(bbox, cellWidth, cellHeight, numCols, numRows, optFns), nil
}

func validateBounds(bbox geom.BoundingBox) error {
	if !bbox.IsValid() {
		return &ErrConfiguration{Reason: "bounding box is inverted or contains NaN"}
	}
	if bbox.Width() <= 0 || bbox.Height() <= 0 {
		return &ErrConfiguration{Reason: "bounding box must have positive width and height"}
	}
	if math.IsInf(bbox.Width(), 0) || math.IsInf(bbox.Height(), 0) {
		return &ErrConfiguration{Reason: "bounding box must be finite"}
	}
	return nil
}

func newGrid(bbox geom.BoundingBox, cellWidth, cellHeight float64, numCols, numRows int, optFns []Option) *Grid {
	opts := defaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Grid{
		bbox:        bbox,
		cellWidth:   cellWidth,
		cellHeight:  cellHeight,
		numCols:     numCols,
		numRows:     numRows,
		cells:       make([][]ItemID, numCols*numRows),
		segments:    make(map[ItemID]geom.LineSegment),
		approximate: opts.approximate,
		logger:      opts.logger,
		metrics:     opts.metrics,
	}
}

// Bounds returns the bounding box the grid covers.
func (g *Grid) Bounds() geom.BoundingBox {
	return g.bbox
}

// Cols returns the number of grid columns.
func (g *Grid) Cols() int {
	return g.numCols
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int {
	return g.numRows
}

// CellSize returns the width and height of a single cell.
func (g *Grid) CellSize() (width, height float64) {
	return g.cellWidth, g.cellHeight
}

// Len returns the number of distinct items indexed in the grid.
func (g *Grid) Len() int {
	return len(g.segments)
}

// CellIndex returns the (col, row) of the cell containing p. Points exactly
// on the max edges of the grid's bounding box map to the last column/row,
// so every point inside the box yields a valid index. Points outside the
// box are clamped to the nearest cell.
func (g *Grid) CellIndex(p geom.Point) (col, row int) {
	col = int(math.Floor((p.X - g.bbox.Min.X) / g.cellWidth))
	row = int(math.Floor((p.Y - g.bbox.Min.Y) / g.cellHeight))
	return g.clampCol(col), g.clampRow(row)
}

func (g *Grid) clampCol(col int) int {
	if col < 0 {
		return 0
	}
	if col >= g.numCols {
		return g.numCols - 1
	}
	return col
}

func (g *Grid) clampRow(row int) int {
	if row < 0 {
		return 0
	}
	if row >= g.numRows {
		return g.numRows - 1
	}
	return row
}

// CellBoundingBox returns the bounding box of cell (col, row). Adjacent
// cells share edges exactly: there are no gaps and no overlaps.
func (g *Grid) CellBoundingBox(col, row int) geom.BoundingBox {
	return geom.Box(
		g.bbox.Min.X+float64(col)*g.cellWidth,
		g.bbox.Min.Y+float64(row)*g.cellHeight,
		g.bbox.Min.X+float64(col+1)*g.cellWidth,
		g.bbox.Min.Y+float64(row+1)*g.cellHeight,
	)
}

// cellAt returns the flat index of cell (col, row) in the row-major array.
func (g *Grid) cellAt(col, row int) int {
	return col + row*g.numCols
}
