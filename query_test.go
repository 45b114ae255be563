package gridgo

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/gridgo/geom"
)

func TestQuery(t *testing.T) {
	t.Run("HitAndMiss", func(t *testing.T) {
		g := newTestGrid(t)

		err := g.AddLineSegment(0, geom.LineSegment{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 0.5, Y: 0.5}})
		require.NoError(t, err)

		assert.Equal(t, []ItemID{0}, g.Query(geom.Box(0, 0, 0.5, 0.5)))

		// The segment shares cell (0,0) with this box but never enters it;
		// the exact filter drops it.
		assert.Empty(t, g.Query(geom.Box(0.6, 0.6, 1, 1)))
	})

	t.Run("OutsideBounds", func(t *testing.T) {
		g := newTestGrid(t)

		require.NoError(t, g.AddLineSegment(1, geom.LineSegment{A: geom.Point{X: 1, Y: 1}, B: geom.Point{X: 2, Y: 2}}))

		got := g.Query(geom.Box(200, 200, 300, 300))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("InvertedBoxIsEmptyNotError", func(t *testing.T) {
		g := newTestGrid(t)

		require.NoError(t, g.AddLineSegment(1, geom.LineSegment{A: geom.Point{X: 1, Y: 1}, B: geom.Point{X: 2, Y: 2}}))

		assert.Empty(t, g.Query(geom.Box(5, 5, 1, 1)))
	})

	t.Run("Idempotent", func(t *testing.T) {
		g := newTestGrid(t)

		require.NoError(t, g.AddLineSegment(1, geom.LineSegment{A: geom.Point{X: 1, Y: 1}, B: geom.Point{X: 20, Y: 14}}))
		require.NoError(t, g.AddLineSegment(2, geom.LineSegment{A: geom.Point{X: 3, Y: 9}, B: geom.Point{X: 17, Y: 2}}))

		box := geom.Box(0, 0, 25, 25)
		assert.Equal(t, g.Query(box), g.Query(box))
	})

	t.Run("AscendingOrder", func(t *testing.T) {
		g := newTestGrid(t)

		seg := geom.LineSegment{A: geom.Point{X: 5, Y: 5}, B: geom.Point{X: 6, Y: 6}}
		for _, id := range []ItemID{42, 3, 17, 9} {
			require.NoError(t, g.AddLineSegment(id, seg))
		}

		assert.Equal(t, []ItemID{3, 9, 17, 42}, g.Query(geom.Box(4, 4, 7, 7)))
	})

	t.Run("Deduplicated", func(t *testing.T) {
		g := newTestGrid(t)

		// Spans many cells inside the query range but appears once.
		require.NoError(t, g.AddLineSegment(8, geom.LineSegment{A: geom.Point{X: 1.5, Y: 1.5}, B: geom.Point{X: 18.5, Y: 12.5}}))

		assert.Equal(t, []ItemID{8}, g.Query(geom.Box(0, 0, 20, 20)))
	})

	t.Run("InsertionOrderIndependence", func(t *testing.T) {
		a := geom.LineSegment{A: geom.Point{X: 2, Y: 2}, B: geom.Point{X: 30, Y: 11}}
		b := geom.LineSegment{A: geom.Point{X: 4, Y: 28}, B: geom.Point{X: 27, Y: 3}}

		first := newTestGrid(t)
		require.NoError(t, first.AddLineSegment(1, a))
		require.NoError(t, first.AddLineSegment(2, b))

		second := newTestGrid(t)
		require.NoError(t, second.AddLineSegment(2, b))
		require.NoError(t, second.AddLineSegment(1, a))

		for _, box := range []geom.BoundingBox{
			geom.Box(0, 0, 40, 40),
			geom.Box(0, 0, 10, 10),
			geom.Box(20, 0, 30, 15),
		} {
			assert.Equal(t, first.Query(box), second.Query(box), "box %v", box)
		}
	})

	t.Run("Approximate", func(t *testing.T) {
		g, err := NewWithCellCount(geom.Box(0, 0, 100, 100), 100, 100, WithApproximate())
		require.NoError(t, err)

		require.NoError(t, g.AddLineSegment(0, geom.LineSegment{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 0.5, Y: 0.5}}))

		// Cell-overlap approximation keeps the shared-cell candidate the
		// exact filter would drop.
		assert.Equal(t, []ItemID{0}, g.Query(geom.Box(0.6, 0.6, 1, 1)))
	})

	t.Run("ExactIsSubsetOfApproximate", func(t *testing.T) {
		exact := newTestGrid(t)
		approx, err := NewWithCellCount(geom.Box(0, 0, 100, 100), 100, 100, WithApproximate())
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(11))
		for i := 0; i < 100; i++ {
			seg := geom.LineSegment{
				A: geom.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100},
				B: geom.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100},
			}
			require.NoError(t, exact.AddLineSegment(ItemID(i), seg))
			require.NoError(t, approx.AddLineSegment(ItemID(i), seg))
		}

		for i := 0; i < 50; i++ {
			x, y := rng.Float64()*90, rng.Float64()*90
			box := geom.Box(x, y, x+rng.Float64()*10, y+rng.Float64()*10)

			superset := approx.Query(box)
			for _, id := range exact.Query(box) {
				assert.Contains(t, superset, id, "box %v", box)
			}
		}
	})
}

func TestBatchQuery(t *testing.T) {
	t.Run("MatchesSequentialQueries", func(t *testing.T) {
		g := newTestGrid(t)

		rng := rand.New(rand.NewSource(23))
		for i := 0; i < 100; i++ {
			seg := geom.LineSegment{
				A: geom.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100},
				B: geom.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100},
			}
			require.NoError(t, g.AddLineSegment(ItemID(i), seg))
		}

		boxes := make([]geom.BoundingBox, 40)
		for i := range boxes {
			x, y := rng.Float64()*90, rng.Float64()*90
			boxes[i] = geom.Box(x, y, x+10, y+10)
		}

		got, err := g.BatchQuery(context.Background(), boxes)
		require.NoError(t, err)
		require.Len(t, got, len(boxes))

		for i, box := range boxes {
			assert.Equal(t, g.Query(box), got[i], "box %d", i)
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		g := newTestGrid(t)

		got, err := g.BatchQuery(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Cancelled", func(t *testing.T) {
		g := newTestGrid(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		boxes := make([]geom.BoundingBox, 64)
		for i := range boxes {
			boxes[i] = geom.Box(0, 0, 100, 100)
		}

		_, err := g.BatchQuery(ctx, boxes)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCellLineSegmentIntersections(t *testing.T) {
	g := newTestGrid(t)

	t.Run("SingleCrossing", func(t *testing.T) {
		seg := geom.LineSegment{A: geom.Point{X: 2.5, Y: 3.5}, B: geom.Point{X: 10, Y: 3.5}}

		got := g.CellLineSegmentIntersections(2, 3, seg)
		require.Len(t, got, 1)
		assert.InDelta(t, 3.0, got[0].X, 1e-12)
		assert.InDelta(t, 3.5, got[0].Y, 1e-12)
	})

	t.Run("PassingThrough", func(t *testing.T) {
		// Crosses the left and right edges of cell (5,5).
		seg := geom.LineSegment{A: geom.Point{X: 4.5, Y: 5.5}, B: geom.Point{X: 6.5, Y: 5.5}}

		got := g.CellLineSegmentIntersections(5, 5, seg)
		assert.Len(t, got, 2)
	})

	t.Run("Disjoint", func(t *testing.T) {
		seg := geom.LineSegment{A: geom.Point{X: 20, Y: 20}, B: geom.Point{X: 21, Y: 21}}

		assert.Empty(t, g.CellLineSegmentIntersections(2, 3, seg))
	})
}
