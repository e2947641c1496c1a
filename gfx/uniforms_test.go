// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx_test

import (
	"reflect"
	"testing"

	"github.com/gloam3d/gloam/gfx"
)

func collectNames(u gfx.Uniforms) []string {
	var names []string
	u.VisitUniforms(func(name string, value gfx.UniformValue) {
		names = append(names, name)
	})
	return names
}

func TestNamedUniformsVisitOrder(t *testing.T) {
	set := gfx.NamedUniforms{
		{Name: "x", Value: gfx.Float(1)},
		{Name: "y", Value: gfx.Float(2)},
	}
	got := collectNames(set)
	want := []string{"x", "y"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visited %v, want %v", got, want)
	}
}

func TestUniformsPairVisitsFirstThenSecond(t *testing.T) {
	a := gfx.NamedUniforms{
		{Name: "x", Value: gfx.Float(1)},
		{Name: "y", Value: gfx.Float(2)},
	}
	b := gfx.NamedUniforms{
		{Name: "z", Value: gfx.Float(3)},
	}

	pair := gfx.UniformsPair{First: a, Second: b}
	got := collectNames(pair)
	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visited %v, want %v", got, want)
	}

	// Pairing must match manually concatenating both visitations.
	manual := append(collectNames(a), collectNames(b)...)
	if !reflect.DeepEqual(got, manual) {
		t.Errorf("pair visited %v, concatenation gives %v", got, manual)
	}
}

func TestUniformsPairNesting(t *testing.T) {
	a := gfx.NamedUniforms{{Name: "a", Value: gfx.Bool(true)}}
	b := gfx.NamedUniforms{{Name: "b", Value: gfx.Float(1)}}
	c := gfx.NamedUniforms{{Name: "c", Value: gfx.Float(2)}}

	left := gfx.UniformsPair{First: gfx.UniformsPair{First: a, Second: b}, Second: c}
	right := gfx.UniformsPair{First: a, Second: gfx.UniformsPair{First: b, Second: c}}

	if !reflect.DeepEqual(collectNames(left), collectNames(right)) {
		t.Errorf("nesting changed visitation order: %v vs %v",
			collectNames(left), collectNames(right))
	}
}

func TestUniformsPairKeepsValues(t *testing.T) {
	pair := gfx.UniformsPair{
		First:  gfx.NamedUniforms{{Name: "t", Value: gfx.Float(1.5)}},
		Second: gfx.NamedUniforms{{Name: "on", Value: gfx.Bool(true)}},
	}

	values := map[string]gfx.UniformValue{}
	pair.VisitUniforms(func(name string, value gfx.UniformValue) {
		values[name] = value
	})

	if values["t"] != gfx.Float(1.5) {
		t.Errorf("t = %v, want 1.5", values["t"])
	}
	if values["on"] != gfx.Bool(true) {
		t.Errorf("on = %v, want true", values["on"])
	}
}

func TestUniformsPairDoesNotDeduplicate(t *testing.T) {
	pair := gfx.UniformsPair{
		First:  gfx.NamedUniforms{{Name: "color", Value: gfx.Float(1)}},
		Second: gfx.NamedUniforms{{Name: "color", Value: gfx.Float(2)}},
	}
	got := collectNames(pair)
	if len(got) != 2 {
		t.Errorf("duplicate names were merged: %v", got)
	}
}
