package gridgo

import (
	"fmt"

	"github.com/hupe1980/gridgo/geom"
)

// ErrConfiguration indicates invalid grid construction parameters, such as
// non-positive cell dimensions or an inverted bounding box. It is fatal:
// retrying with the same parameters never succeeds.
type ErrConfiguration struct {
	Reason string
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("invalid grid configuration: %s", e.Reason)
}

// ErrOutOfBounds indicates a segment endpoint outside the grid's bounding
// box. The grid performs no implicit clipping; the caller decides whether
// to clip and retry or to skip the item.
type ErrOutOfBounds struct {
	ID     ItemID           // Item being inserted
	Point  geom.Point       // Offending endpoint
	Bounds geom.BoundingBox // Coverage region of the grid
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("segment %d endpoint (%g, %g) outside grid bounds (%g, %g)-(%g, %g)",
		e.ID, e.Point.X, e.Point.Y,
		e.Bounds.Min.X, e.Bounds.Min.Y, e.Bounds.Max.X, e.Bounds.Max.Y)
}
