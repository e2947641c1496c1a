// Copyright (c) 2026 gloam3d
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package collada holds the XML schema of the subset of Collada (.dae)
// this engine imports: indexed triangle geometry with positions and
// normals.
package collada

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Collada is the top-level Collada object.
type Collada struct {
	Geometries []Geometry `xml:"library_geometries>geometry"`
}

// Geometry represents Collada's geometry.
type Geometry struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
	Mesh Mesh   `xml:"mesh"`
}

// Mesh contains all the primitive data.
type Mesh struct {
	Sources   []Source  `xml:"source"`
	Vertices  Vertices  `xml:"vertices"`
	Triangles Triangles `xml:"triangles"`
}

// Source is one float data array, referenced by ID from inputs.
type Source struct {
	ID     string `xml:"id,attr"`
	Floats Floats `xml:"float_array"`
}

// Floats is an array of floats parsed from space-separated text.
type Floats struct {
	ID   string
	Data []float32
}

// UnmarshalXML unmarshals the array of floats.
func (f *Floats) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		if attr.Name.Local == "id" {
			f.ID = attr.Value
		}
	}
	var raw string
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	for _, field := range strings.Fields(raw) {
		num, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return err
		}
		f.Data = append(f.Data, float32(num))
	}
	return nil
}

// Input links a semantic to a source for a given index offset.
type Input struct {
	Semantic string `xml:"semantic,attr"`
	Source   string `xml:"source,attr"`
	Offset   int    `xml:"offset,attr"`
}

// Vertices names the per-vertex inputs, notably the POSITION source.
type Vertices struct {
	ID     string  `xml:"id,attr"`
	Inputs []Input `xml:"input"`
}

// Triangles contains the triangle list with its interleaved index data.
type Triangles struct {
	Count  int     `xml:"count,attr"`
	Inputs []Input `xml:"input"`
	Index  Ints    `xml:"p"`
}

// Ints is an array of ints parsed from space-separated text.
type Ints struct {
	Data []int
}

// UnmarshalXML unmarshals the array of ints.
func (i *Ints) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var raw string
	if err := d.DecodeElement(&raw, &start); err != nil {
		return err
	}
	for _, field := range strings.Fields(raw) {
		num, err := strconv.Atoi(field)
		if err != nil {
			return err
		}
		i.Data = append(i.Data, num)
	}
	return nil
}
