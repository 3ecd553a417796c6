// Copyright 2024 The Go Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stepper implements a bounded counter that moves through a range
// of numbers in fixed steps, wrapping around at either end.
//
// A [Stepper] suits pagination, carousel and rotation indexes: callers move
// with [Stepper.Next] and [Stepper.Previous] and leave the boundary
// arithmetic to the Stepper.
package stepper

import (
	"fmt"
	"iter"
	"math"

	"github.com/jba/stepper/rng"
	"golang.org/x/exp/constraints"
)

// Number is the set of types a Stepper can count in.
type Number interface {
	constraints.Integer | constraints.Float
}

// A Stepper is a current position within a bounded range that moves by a fixed step.
//
// In inclusive mode, the default, the valid positions are [min, max].
// Otherwise they are [min, max) and a Stepper needs max > min.
// Moving past either end wraps to the opposite end; the step
// need not divide the range evenly.
//
// The bounds must be finite and the span max - min representable in T.
// For floating-point steps, [Stepper.All], [Stepper.Backward] and [Stepper.Last]
// compute positions as min + i*step, while [Stepper.Next] and [Stepper.Previous]
// add and subtract the step, so the two can differ by rounding.
// A Stepper is not safe for concurrent use.
// The zero value is not meaningful; use [New] to create a Stepper.
type Stepper[T Number] struct {
	min, max  T
	step      T
	current   T
	inclusive bool
}

// Config describes a Stepper. Fields left at their zero value take defaults.
type Config[T Number] struct {
	Min T `json:"min" yaml:"min" toml:"min"`
	Max T `json:"max" yaml:"max" toml:"max"`
	// Step defaults to 1.
	Step T `json:"step,omitempty" yaml:"step,omitempty" toml:"step,omitempty"`
	// Current defaults to Min.
	Current *T `json:"current,omitempty" yaml:"current,omitempty" toml:"current,omitempty"`
	// Inclusive defaults to true.
	Inclusive *bool `json:"inclusive,omitempty" yaml:"inclusive,omitempty" toml:"inclusive,omitempty"`
}

// State is a snapshot of a Stepper, as returned by [Stepper.AsObject].
// It does not record the inclusive mode.
type State[T Number] struct {
	Min     T `json:"min" yaml:"min" toml:"min"`
	Max     T `json:"max" yaml:"max" toml:"max"`
	Step    T `json:"step" yaml:"step" toml:"step"`
	Current T `json:"current" yaml:"current" toml:"current"`
}

// Config returns a Config that recreates the snapshot.
// Its Inclusive field is nil.
func (st State[T]) Config() Config[T] {
	cur := st.Current
	return Config[T]{Min: st.Min, Max: st.Max, Step: st.Step, Current: &cur}
}

// New returns a Stepper described by cfg.
//
// It returns a [*RangeError] wrapping [ErrInvalidRange] if cfg.Max is less than cfg.Min,
// or equal to it when the Stepper is not inclusive, if either bound is not finite,
// or if max - min overflows T;
// wrapping [ErrInvalidStep] if cfg.Step is negative or not finite;
// and wrapping [ErrOutOfRange] if cfg.Current is not a valid position.
func New[T Number](cfg Config[T]) (*Stepper[T], error) {
	s := &Stepper[T]{
		min:       cfg.Min,
		max:       cfg.Max,
		step:      cfg.Step,
		current:   cfg.Min,
		inclusive: true,
	}
	if cfg.Inclusive != nil {
		s.inclusive = *cfg.Inclusive
	}
	if s.step == 0 {
		s.step = 1
	}
	if !finite(s.min) || !finite(s.max) {
		return nil, s.rangeError("new", s.max,
			fmt.Errorf("%w: min %v and max %v must be finite", ErrInvalidRange, s.min, s.max))
	}
	if s.max < s.min || s.max == s.min && !s.inclusive {
		return nil, s.rangeError("new", s.max, ErrInvalidRange)
	}
	span := s.max - s.min
	if span < 0 || !finite(span) {
		return nil, s.rangeError("new", s.max,
			fmt.Errorf("%w: span from min %v to max %v overflows %T", ErrInvalidRange, s.min, s.max, s.max))
	}
	if !finite(s.step) {
		return nil, s.rangeError("new", s.step,
			fmt.Errorf("%w: step %v must be finite", ErrInvalidStep, s.step))
	}
	if s.step < 0 {
		return nil, s.rangeError("new", s.step, ErrInvalidStep)
	}
	if !finite(span / s.step) {
		return nil, s.rangeError("new", s.step,
			fmt.Errorf("%w: step %v is too small for the span %v", ErrInvalidStep, s.step, span))
	}
	if cfg.Current != nil {
		if err := s.ensureInRange("new", *cfg.Current); err != nil {
			return nil, err
		}
		s.current = *cfg.Current
	}
	return s, nil
}

// MustNew is like [New] but panics if cfg is invalid.
func MustNew[T Number](cfg Config[T]) *Stepper[T] {
	s, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

// Next moves s forward by one step, wrapping to the minimum
// if that would leave the range. It returns s.
func (s *Stepper[T]) Next() *Stepper[T] {
	if s.hasNextFrom(s.current) {
		s.current += s.step
	} else {
		s.current = s.min
	}
	return s
}

// Previous moves s back by one step, wrapping to the last position
// if that would go below the minimum. It returns s.
func (s *Stepper[T]) Previous() *Stepper[T] {
	if s.hasPreviousFrom(s.current) {
		s.current -= s.step
	} else {
		s.current = s.top()
	}
	return s
}

// First moves s to the minimum. It returns s.
func (s *Stepper[T]) First() *Stepper[T] {
	s.current = s.min
	return s
}

// Last moves s to the last position and returns s.
// That is the maximum in inclusive mode.
// Otherwise it is the last position [Stepper.All] yields:
// the greatest min + i*step below the maximum.
func (s *Stepper[T]) Last() *Stepper[T] {
	s.current = s.top()
	return s
}

// SetValue moves s to v.
// It returns a [*RangeError] wrapping [ErrOutOfRange] if v is not a valid position.
func (s *Stepper[T]) SetValue(v T) error {
	if err := s.ensureInRange("set", v); err != nil {
		return err
	}
	s.current = v
	return nil
}

// HasNext reports whether [Stepper.Next] would move forward without wrapping.
func (s *Stepper[T]) HasNext() bool { return s.hasNextFrom(s.current) }

// HasPrevious reports whether [Stepper.Previous] would move back without wrapping.
func (s *Stepper[T]) HasPrevious() bool { return s.hasPreviousFrom(s.current) }

// Distances are compared rather than v+step computed, so stepping
// near the limits of a fixed-size integer type does not overflow.
// New ensures max - min, and so every distance, fits in T.
func (s *Stepper[T]) hasNextFrom(v T) bool {
	if s.inclusive {
		return s.max-v >= s.step
	}
	return s.max-v > s.step
}

func (s *Stepper[T]) hasPreviousFrom(v T) bool {
	return v-s.min >= s.step
}

// top is the position Last and a wrapping Previous move to.
func (s *Stepper[T]) top() T {
	if s.inclusive {
		return s.max
	}
	return s.up(s.count(s.up))
}

// up and down return the position i steps from min and from max.
func (s *Stepper[T]) up(i T) T   { return s.min + i*s.step }
func (s *Stepper[T]) down(i T) T { return s.max - i*s.step }

// count returns the greatest i for which at(i) is a valid position.
func (s *Stepper[T]) count(at func(T) T) T {
	span := s.max - s.min
	if isInteger[T]() {
		n := span / s.step
		if !s.Contains(at(n)) {
			// Exclusive max.
			n--
		}
		return n
	}
	n := T(math.Floor(float64(span / s.step)))
	if n > 0 && !s.Contains(at(n)) {
		n--
	}
	if s.Contains(at(n + 1)) {
		n++
	}
	return n
}

func isInteger[T Number]() bool {
	var one T = 1
	return one/2 == 0
}

// finite reports whether v is neither infinite nor NaN.
// Every integer is finite.
func finite[T Number](v T) bool { return v-v == 0 }

// IsCurrent reports whether n is the current position.
func (s *Stepper[T]) IsCurrent(n T) bool { return s.current == n }

// IsSingle reports whether the range holds a single position.
func (s *Stepper[T]) IsSingle() bool { return s.min == s.max }

// Contains reports whether v is a valid position for s.
func (s *Stepper[T]) Contains(v T) bool { return s.Range().Contains(v) }

// Range returns the valid positions of s: [min, max] or [min, max).
func (s *Stepper[T]) Range() rng.Range[T] {
	r := rng.From(s.min)
	if s.inclusive {
		return r.To(s.max)
	}
	return r.Below(s.max)
}

func (s *Stepper[T]) ensureInRange(op string, v T) error {
	if !s.Contains(v) {
		return s.rangeError(op, v, ErrOutOfRange)
	}
	return nil
}

func (s *Stepper[T]) rangeError(op string, v T, err error) *RangeError {
	return &RangeError{
		Op:        op,
		Value:     v,
		Min:       s.min,
		Max:       s.max,
		Inclusive: s.inclusive,
		Err:       err,
	}
}

// Clone returns a new Stepper with the same bounds, step, mode and current position as s.
func (s *Stepper[T]) Clone() *Stepper[T] {
	c := *s
	return &c
}

// Dup is an alias for [Stepper.Clone].
func (s *Stepper[T]) Dup() *Stepper[T] { return s.Clone() }

// CloneAt is like [Stepper.Clone], but the clone starts at v.
// It returns a [*RangeError] wrapping [ErrOutOfRange] if v is not a valid position.
func (s *Stepper[T]) CloneAt(v T) (*Stepper[T], error) {
	c := s.Clone()
	if err := c.ensureInRange("clone", v); err != nil {
		return nil, err
	}
	c.current = v
	return c, nil
}

func (s *Stepper[T]) Min() T          { return s.min }
func (s *Stepper[T]) Max() T          { return s.max }
func (s *Stepper[T]) Step() T         { return s.step }
func (s *Stepper[T]) Inclusive() bool { return s.inclusive }

// Value returns the current position.
func (s *Stepper[T]) Value() T { return s.current }

// Current is an alias for [Stepper.Value].
func (s *Stepper[T]) Current() T { return s.current }

// AsObject returns a snapshot of s.
func (s *Stepper[T]) AsObject() State[T] {
	return State[T]{Min: s.min, Max: s.max, Step: s.step, Current: s.current}
}

// All returns an iterator over the positions min + i*step, for i = 0, 1, ...,
// that lie in the range: the positions [Stepper.Next] visits after
// [Stepper.First], stopping before the wrap.
// It does not move s.
func (s *Stepper[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := s.count(s.up)
		for i := T(0); yield(s.up(i)) && i != n; i++ {
		}
	}
}

// Backward returns an iterator over the positions [Stepper.Previous]
// visits after [Stepper.Last], stopping before the wrap.
// In inclusive mode they are max - i*step; otherwise they are
// the positions of [Stepper.All] in reverse.
// It does not move s.
func (s *Stepper[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.inclusive {
			n := s.count(s.down)
			for i := T(0); yield(s.down(i)) && i != n; i++ {
			}
		} else {
			for i := s.count(s.up); yield(s.up(i)) && i != 0; i-- {
			}
		}
	}
}

func (s *Stepper[T]) String() string {
	return fmt.Sprintf("%v in %s step %v", s.current, s.Range(), s.step)
}
