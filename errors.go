package clipper

import "fmt"

// ClipError reports an engine failure: an internal invariant violation
// detected during the sweep, such as the active-edge ordering failing to
// converge. Execute surfaces these via its boolean return, never via
// panic; callers that want the detail can call LastError() on the
// Clipper64/ClipperD afterward.
type ClipError struct {
	Op      string
	Message string
}

func (e *ClipError) Error() string {
	return fmt.Sprintf("clipper: %s: %s", e.Op, e.Message)
}

func newClipError(op, message string) *ClipError {
	return &ClipError{Op: op, Message: message}
}

// UnsupportedGeometryError is returned by the geom.Geom adapter (geomio.go)
// when asked to convert a geometry type the engine has no path container
// equivalent for.
type UnsupportedGeometryError struct {
	Kind string
}

func (e *UnsupportedGeometryError) Error() string {
	return "clipper: unsupported geometry type: " + e.Kind
}

func newUnsupportedGeometryError(kind string) *UnsupportedGeometryError {
	return &UnsupportedGeometryError{Kind: kind}
}
