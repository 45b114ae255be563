// Package gridgo provides a uniform-grid spatial index over 2D line
// segments.
//
// The grid divides a fixed bounding box into equally sized cells and
// registers each indexed segment in every cell it passes through. Range
// queries gather candidates from the cells a query box covers and, by
// default, tighten them with an exact segment/box intersection test.
// Typical use is accelerating "which road-network edges lie near this
// region" lookups in map matching or routing systems.
//
// # Quick Start
//
//	grid, err := gridgo.NewWithCellCount(geom.Box(0, 0, 100, 100), 100, 100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = grid.AddLineSegment(42, geom.LineSegment{
//	    A: geom.Point{X: 2.5, Y: 3.5},
//	    B: geom.Point{X: 10, Y: 3.5},
//	})
//
//	ids := grid.Query(geom.Box(2, 3, 4, 4)) // → [42]
//
// # Build and Query Phases
//
// A Grid has two phases: a single-threaded build phase of AddLineSegment
// calls, then a query phase. Queries never mutate the grid, so once the
// build phase has ended, concurrent Query calls (and BatchQuery fan-out)
// are safe. Interleaving insertions with queries is undefined.
//
// # Exact and Approximate Queries
//
// Cell membership only proves a segment passed through a covered cell, not
// that it enters the query box. The default exact filter re-tests each
// candidate's geometry against the box. WithApproximate skips that test
// and returns the cell-overlap superset, for callers that re-check
// candidates anyway.
package gridgo
