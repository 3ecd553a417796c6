// Copyright 2024 The Go Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import "testing"

const benchmarkRangeSize = 10_000

func BenchmarkNext(b *testing.B) {
	s := MustNew(Config[int]{Max: benchmarkRangeSize})
	for b.Loop() {
		s.Next()
	}
}

func BenchmarkPrevious(b *testing.B) {
	s := MustNew(Config[int]{Max: benchmarkRangeSize, Inclusive: ptr(false)})
	for b.Loop() {
		s.Previous()
	}
}

func BenchmarkFloatPrevious(b *testing.B) {
	s := MustNew(Config[float64]{Max: benchmarkRangeSize, Step: 0.3, Inclusive: ptr(false)})
	for b.Loop() {
		s.Previous()
	}
}

func BenchmarkSetValue(b *testing.B) {
	s := MustNew(Config[int]{Max: benchmarkRangeSize})
	i := 0
	for b.Loop() {
		if err := s.SetValue(i % benchmarkRangeSize); err != nil {
			b.Fatal(err)
		}
		i++
	}
}

func BenchmarkAll(b *testing.B) {
	s := MustNew(Config[int]{Max: benchmarkRangeSize})
	for b.Loop() {
		n := 0
		for range s.All() {
			n++
		}
		if n != benchmarkRangeSize+1 {
			b.Fatalf("got %d positions", n)
		}
	}
}
