package shapes

import "errors"

var (
	// ErrInvalidArgument is returned for bad geometric or style parameters,
	// such as fewer than three polygon vertices or a non-positive radius.
	ErrInvalidArgument = errors.New("shapes: invalid argument")

	// ErrDegenerateShape is returned when a rescale is requested along an
	// axis on which the shape currently has zero extent.
	ErrDegenerateShape = errors.New("shapes: degenerate shape")

	// ErrUnknownStyleKey is returned for style access on an unsupported key.
	ErrUnknownStyleKey = errors.New("shapes: unknown style key")

	// ErrShapeDeleted is returned by every operation on a deleted shape.
	ErrShapeDeleted = errors.New("shapes: shape deleted")

	// ErrCanvasUnavailable is returned when the canvas rejects a request,
	// typically because it has been destroyed.
	ErrCanvasUnavailable = errors.New("shapes: canvas unavailable")

	// ErrGUIDestroyed is returned by GUI operations after Destroy.
	ErrGUIDestroyed = errors.New("shapes: gui destroyed")
)
