// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package render

import (
	"fmt"

	"github.com/gloam3d/gloam/object"
)

// ObjectCreationError reports a failed buffer allocation for one shape
// kind during resource construction.
type ObjectCreationError struct {
	Kind object.Kind
	Err  error
}

func (e *ObjectCreationError) Error() string {
	return fmt.Sprintf("render: creating buffers for %s: %v", e.Kind, e.Err)
}

func (e *ObjectCreationError) Unwrap() error {
	return e.Err
}

// ProgramCreationError reports a failed shader composition or link for
// one pipeline during resource construction.
type ProgramCreationError struct {
	Pipeline string
	Err      error
}

func (e *ProgramCreationError) Error() string {
	return fmt.Sprintf("render: building %s pipeline program: %v", e.Pipeline, e.Err)
}

func (e *ProgramCreationError) Unwrap() error {
	return e.Err
}

// DrawError reports a failed draw call. Draws after the failing one are
// not issued; the frame is partial and the caller decides whether to
// present it.
type DrawError struct {
	Index  int
	Object object.Kind
	Err    error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("render: drawing instance %d (%s): %v", e.Index, e.Object, e.Err)
}

func (e *DrawError) Unwrap() error {
	return e.Err
}
