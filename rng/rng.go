// Package rng provides ranges: representations of intervals of ordered values.
package rng

import (
	"cmp"
	"fmt"
	"strings"
)

// Range is a range of values of type T.
// Each end is either infinite or a bound that may or may not include itself.
//
// The zero Range is an empty range.
type Range[T cmp.Ordered] struct {
	lo, hi         T
	inclLo, inclHi bool
	infLo, infHi   bool
}

func (r Range[T]) String() string {
	var b strings.Builder
	if r.infLo {
		b.WriteString("(-∞")
	} else {
		if r.inclLo {
			b.WriteByte('[')
		} else {
			b.WriteByte('(')
		}
		fmt.Fprint(&b, r.lo)
	}
	b.WriteString(", ")
	if r.infHi {
		b.WriteString("∞)")
	} else {
		fmt.Fprint(&b, r.hi)
		if r.inclHi {
			b.WriteByte(']')
		} else {
			b.WriteByte(')')
		}
	}
	return b.String()
}

func (r Range[T]) Low() (v T, infinite, includes bool) {
	return r.lo, r.infLo, r.inclLo
}

func (r Range[T]) High() (v T, infinite, includes bool) {
	return r.hi, r.infHi, r.inclHi
}

// Contains reports whether v lies within r.
func (r Range[T]) Contains(v T) bool {
	if !r.infLo {
		if c := cmp.Compare(v, r.lo); c < 0 || c == 0 && !r.inclLo {
			return false
		}
	}
	if !r.infHi {
		if c := cmp.Compare(v, r.hi); c > 0 || c == 0 && !r.inclHi {
			return false
		}
	}
	return true
}

// IsEmpty reports whether no value can lie within r.
func (r Range[T]) IsEmpty() bool {
	if r.infLo || r.infHi {
		return false
	}
	switch c := cmp.Compare(r.lo, r.hi); {
	case c > 0:
		return true
	case c == 0:
		return !r.inclLo || !r.inclHi
	}
	return false
}

// [t, inf)
func From[T cmp.Ordered](t T) Range[T] {
	return Range[T]{lo: t, inclLo: true, infHi: true}
}

// (t, inf)
func Above[T cmp.Ordered](t T) Range[T] {
	return Range[T]{lo: t, inclLo: false, infHi: true}
}

// ..., t)
func (r Range[T]) Below(t T) Range[T] {
	if !r.infHi {
		panic("uninitialized Range")
	}
	r.hi = t
	r.infHi = false
	r.inclHi = false
	return r
}

// ..., t]
func (r Range[T]) To(t T) Range[T] {
	if !r.infHi {
		panic("uninitialized Range")
	}
	r.hi = t
	r.infHi = false
	r.inclHi = true
	return r
}
