// Copyright 2024 The Go Authors. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stepper

import (
	"encoding/json"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

func TestConfigYAML(t *testing.T) {
	const doc = `
min: 1
max: 9
step: 2
current: 5
inclusive: false
`
	var cfg Config[int]
	if err := yaml.Unmarshal([]byte(doc), &cfg); err != nil {
		t.Fatal(err)
	}
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.AsObject(), (State[int]{Min: 1, Max: 9, Step: 2, Current: 5}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if s.Inclusive() {
		t.Error("inclusive: got true")
	}

	b, err := yaml.Marshal(s.AsObject())
	if err != nil {
		t.Fatal(err)
	}
	var back Config[int]
	if err := yaml.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	r, err := New(back)
	if err != nil {
		t.Fatal(err)
	}
	if r.AsObject() != s.AsObject() {
		t.Errorf("round trip through\n%s\ngot %+v, want %+v", b, r.AsObject(), s.AsObject())
	}
}

func TestConfigTOML(t *testing.T) {
	const doc = `
min = 0.5
max = 2.0
step = 0.5
`
	var cfg Config[float64]
	if err := toml.Unmarshal([]byte(doc), &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Current != nil || cfg.Inclusive != nil {
		t.Fatalf("unset fields decoded as %v, %v", cfg.Current, cfg.Inclusive)
	}
	s, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := s.Last().AsObject(), (State[float64]{Min: 0.5, Max: 2, Step: 0.5, Current: 2}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	b, err := toml.Marshal(s.AsObject())
	if err != nil {
		t.Fatal(err)
	}
	var back Config[float64]
	if err := toml.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	r, err := New(back)
	if err != nil {
		t.Fatal(err)
	}
	if r.AsObject() != s.AsObject() {
		t.Errorf("round trip through\n%s\ngot %+v, want %+v", b, r.AsObject(), s.AsObject())
	}
}

func TestStateJSON(t *testing.T) {
	s := MustNew(Config[int]{Max: 18, Current: ptr(12)})
	b, err := json.Marshal(s.AsObject())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `{"min":0,"max":18,"step":1,"current":12}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
