// Package geom provides the planar geometric primitives shared by the grid
// index: points, axis-aligned bounding boxes, and line segments.
//
// All types are small value types. Coordinates are float64 in an arbitrary
// planar coordinate space; no projection or geodetic handling is performed.
package geom

import "math"

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-coordinate of the cross product, treating both
// points as vectors on the z=0 plane.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// BoundingBox is an axis-aligned rectangle. A valid box has Min.X <= Max.X
// and Min.Y <= Max.Y; boxes are closed, so edge points are contained.
type BoundingBox struct {
	Min Point
	Max Point
}

// Box constructs a BoundingBox from its corner coordinates.
func Box(minX, minY, maxX, maxY float64) BoundingBox {
	return BoundingBox{
		Min: Point{minX, minY},
		Max: Point{maxX, maxY},
	}
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// IsValid reports whether the box is non-inverted and free of NaN
// coordinates.
func (b BoundingBox) IsValid() bool {
	return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y
}

// Contains reports whether p lies within the closed box.
func (b BoundingBox) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// ContainsBox reports whether other lies entirely within b.
func (b BoundingBox) ContainsBox(other BoundingBox) bool {
	return b.Contains(other.Min) && b.Contains(other.Max)
}

// Intersects reports whether the closed boxes share at least one point.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.Max.Y >= other.Min.Y && other.Max.Y >= b.Min.Y &&
		b.Max.X >= other.Min.X && other.Max.X >= b.Min.X
}

// Intersection returns the overlap of b and other. The result is only
// meaningful when Intersects(other) is true.
func (b BoundingBox) Intersection(other BoundingBox) BoundingBox {
	return BoundingBox{
		Min: Point{math.Max(b.Min.X, other.Min.X), math.Max(b.Min.Y, other.Min.Y)},
		Max: Point{math.Min(b.Max.X, other.Max.X), math.Min(b.Max.Y, other.Max.Y)},
	}
}

// Edges returns the four boundary segments of the box in the order
// bottom, right, top, left.
func (b BoundingBox) Edges() [4]LineSegment {
	return [4]LineSegment{
		{Point{b.Min.X, b.Min.Y}, Point{b.Max.X, b.Min.Y}},
		{Point{b.Max.X, b.Min.Y}, Point{b.Max.X, b.Max.Y}},
		{Point{b.Max.X, b.Max.Y}, Point{b.Min.X, b.Max.Y}},
		{Point{b.Min.X, b.Max.Y}, Point{b.Min.X, b.Min.Y}},
	}
}

// LineSegment is the directed segment from A to B. A and B may coincide,
// in which case the segment is degenerate.
type LineSegment struct {
	A Point
	B Point
}

// IsDegenerate reports whether both endpoints coincide.
func (s LineSegment) IsDegenerate() bool {
	return s.A == s.B
}

// Vector returns B - A.
func (s LineSegment) Vector() Point {
	return s.B.Sub(s.A)
}

// PointAt returns A + t*(B-A).
func (s LineSegment) PointAt(t float64) Point {
	return s.A.Add(s.Vector().Scale(t))
}

// Bounds returns the tightest box containing the segment.
func (s LineSegment) Bounds() BoundingBox {
	return BoundingBox{
		Min: Point{math.Min(s.A.X, s.B.X), math.Min(s.A.Y, s.B.Y)},
		Max: Point{math.Max(s.A.X, s.B.X), math.Max(s.A.Y, s.B.Y)},
	}
}

// Intersection returns the intersection point of s and other, if any.
// Collinear overlapping segments report a representative shared point.
func (s LineSegment) Intersection(other LineSegment) (Point, bool) {
	d1 := s.Vector()
	d2 := other.Vector()
	d12 := other.A.Sub(s.A)

	den := d1.Y*d2.X - d1.X*d2.Y
	u1 := d1.X*d12.Y - d1.Y*d12.X
	u2 := d2.X*d12.Y - d2.Y*d12.X

	if den == 0 {
		// parallel; collinear only if both numerators vanish
		if u1 != 0 || u2 != 0 {
			return Point{}, false
		}
		sb := s.Bounds()
		if !sb.Intersects(other.Bounds()) {
			return Point{}, false
		}
		if sb.Contains(other.A) {
			return other.A, true
		}
		if sb.Contains(other.B) {
			return other.B, true
		}
		return s.A, true
	}

	if u1/den < 0 || u1/den > 1 || u2/den < 0 || u2/den > 1 {
		return Point{}, false
	}

	return s.PointAt(u2 / den), true
}

// IntersectsBox reports whether the segment shares at least one point with
// the closed box: either an endpoint is contained or the segment crosses a
// box edge.
func (s LineSegment) IntersectsBox(b BoundingBox) bool {
	if b.Contains(s.A) || b.Contains(s.B) {
		return true
	}
	for _, edge := range b.Edges() {
		if _, ok := s.Intersection(edge); ok {
			return true
		}
	}
	return false
}
