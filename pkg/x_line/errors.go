// file:dline/pkg/x_line/errors.go
package x_line

import "errors"

//---------------------
// Contract Violations
//---------------------

// Every error below is raised with panic: a Line never recovers from a
// caller handing it a bad handle.
var (
	ErrStaleCoordinates = errors.New("x_line: coordinates do not resolve")
	ErrDeadAnchor       = errors.New("x_line: coordinates name a removed element")
	ErrTooShort         = errors.New("x_line: fewer than four live elements")
	ErrEmpty            = errors.New("x_line: line has no live element")
	ErrWidth            = errors.New("x_line: width out of range")
)
