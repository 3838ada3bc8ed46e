package lightmgr

import "errors"

var (
	// ErrNoEnclosingRegistry is returned when a light is placed outside every
	// registry subtree. It is a scene construction error.
	ErrNoEnclosingRegistry = errors.New("no enclosing light registry")
	ErrNotReset            = errors.New("light registry used before first reset")
	ErrNilCamera           = errors.New("nil camera")
	ErrNilLight            = errors.New("nil light source")
	ErrTooManyLights       = errors.New("too many lights for one state")
	ErrLightIndex          = errors.New("light index out of range")
	ErrInvalidNode         = errors.New("invalid node")
)
