// Copyright 2024 The Go Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange means a Stepper's maximum is below its minimum,
	// or equal to it outside inclusive mode, or that the bounds are not
	// finite or too far apart for their type.
	ErrInvalidRange = errors.New("invalid range")

	// ErrOutOfRange means a value is not a valid position.
	ErrOutOfRange = errors.New("value out of range")

	// ErrInvalidStep means a Stepper's step is negative, not finite,
	// or too small for the range.
	ErrInvalidStep = errors.New("invalid step")
)

// A RangeError records a Stepper operation that failed a bounds check.
// Err is, or wraps, one of [ErrInvalidRange], [ErrOutOfRange] or [ErrInvalidStep].
type RangeError struct {
	Op        string // "new", "set" or "clone"
	Value     any    // the rejected value: the maximum, the step or the new position
	Min, Max  any
	Inclusive bool
	Err       error
}

func (e *RangeError) Error() string {
	var msg string
	switch e.Err {
	case ErrInvalidRange:
		if e.Inclusive {
			msg = fmt.Sprintf("max %v must be greater than or equal to min %v", e.Max, e.Min)
		} else {
			msg = fmt.Sprintf("max %v must be greater than min %v", e.Max, e.Min)
		}
	case ErrInvalidStep:
		msg = fmt.Sprintf("step %v must not be negative", e.Value)
	case ErrOutOfRange:
		closer := ')'
		if e.Inclusive {
			closer = ']'
		}
		msg = fmt.Sprintf("value %v must be in the range [%v, %v%c", e.Value, e.Min, e.Max, closer)
	default:
		msg = fmt.Sprint(e.Err)
	}
	return "stepper: " + e.Op + ": " + msg
}

func (e *RangeError) Unwrap() error { return e.Err }
