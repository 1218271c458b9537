/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package scene turns the current triangle and overlay toggles into an ordered
// list of draw primitives. It is recomputed from scratch every frame.
package scene

import (
	"math"

	"shermanviz/internal/geom"
)

// Overlays selects which derived constructs are drawn on top of the triangle.
// The incircle, circumcircle and nine-point circle are always drawn.
type Overlays struct {
	Perpendiculars       bool `yaml:"show_perpendiculars" json:"show_perpendiculars"`
	OrthoSegments        bool `yaml:"show_ortho_segments" json:"show_ortho_segments"`
	SideMidpoints        bool `yaml:"show_side_midpoints" json:"show_side_midpoints"`
	FeetOfAltitudes      bool `yaml:"show_feet_of_altitudes" json:"show_feet_of_altitudes"`
	OrthoVertexMidpoints bool `yaml:"show_ortho_vertex_midpoints" json:"show_ortho_vertex_midpoints"`
	Extensions           bool `yaml:"show_extensions" json:"show_extensions"`
}

// Options holds the tunable drawing constants.
type Options struct {
	ExtensionFactor float64
	HandleRadius    float64
}

// DefaultOptions matches the stock window layout.
func DefaultOptions() Options {
	return Options{ExtensionFactor: 2.0, HandleRadius: 8.0}
}

// Kind identifies the primitive shape.
type Kind uint8

const (
	KindSegment Kind = iota // stroked line P0-P1
	KindCircle              // stroked circle outline at P0
	KindDot                 // filled circle at P0
)

func (k Kind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindCircle:
		return "circle"
	case KindDot:
		return "dot"
	default:
		return "unknown"
	}
}

// Layer tags a primitive with the construct it belongs to.
type Layer uint8

const (
	LayerSide Layer = iota
	LayerSideExtension
	LayerAltitude
	LayerAltitudeExtension
	LayerOrthoSegment
	LayerSideMidpoint
	LayerFoot
	LayerOrthoVertexMidpoint
	LayerIncircle
	LayerCircumcircle
	LayerNinePoint
	LayerHandle
)

// Primitive is one draw call.
type Primitive struct {
	Kind   Kind
	Layer  Layer
	P0, P1 geom.Point
	Radius float64
	Style  Style
}

// Finite reports whether the primitive has only finite coordinates. Singular
// triangles produce NaN/Inf circles which renderers must skip.
func (p Primitive) Finite() bool {
	switch p.Kind {
	case KindSegment:
		return p.P0.Finite() && p.P1.Finite()
	default:
		return p.P0.Finite() && !math.IsNaN(p.Radius) && !math.IsInf(p.Radius, 0)
	}
}

// Frame is the draw list for one rendered frame, in paint order.
type Frame struct {
	Triangle   geom.Triangle
	Primitives []Primitive
}

// Count returns the number of primitives on the given layer.
func (f Frame) Count(l Layer) int {
	n := 0
	for _, p := range f.Primitives {
		if p.Layer == l {
			n++
		}
	}
	return n
}

type builder struct{ out []Primitive }

func (b *builder) segment(l Layer, p0, p1 geom.Point, s Style) {
	b.out = append(b.out, Primitive{Kind: KindSegment, Layer: l, P0: p0, P1: p1, Style: s})
}

func (b *builder) circle(l Layer, c geom.Circle, s Style) {
	b.out = append(b.out, Primitive{Kind: KindCircle, Layer: l, P0: c.Center, Radius: c.Radius, Style: s})
}

func (b *builder) dot(l Layer, p geom.Point, r float64, s Style) {
	b.out = append(b.out, Primitive{Kind: KindDot, Layer: l, P0: p, Radius: r, Style: s})
}

// Build computes every enabled construct for t.
func Build(t geom.Triangle, ov Overlays, opts Options) Frame {
	b := &builder{out: make([]Primitive, 0, 32)}
	factor := opts.ExtensionFactor

	for _, s := range t.Sides() {
		b.segment(LayerSide, s[0], s[1], SideStyle)
		if ov.Extensions {
			e1, e2 := geom.ExtendLine(s[0], s[1], factor)
			b.segment(LayerSideExtension, e1, e2, SideExtensionStyle)
		}
	}

	verts := t.Vertices()
	if ov.Perpendiculars {
		feet := t.Feet()
		for i := range verts {
			b.segment(LayerAltitude, verts[i], feet[i], AltitudeStyle)
		}
		if ov.Extensions {
			for i := range verts {
				e1, e2 := geom.ExtendLine(verts[i], feet[i], factor)
				b.segment(LayerAltitudeExtension, e1, e2, AltitudeExtStyle)
			}
		}
	}

	if ov.OrthoSegments {
		h := t.Orthocenter()
		for _, v := range verts {
			b.segment(LayerOrthoSegment, v, h, OrthoSegmentStyle)
		}
	}

	if ov.SideMidpoints {
		for _, s := range t.Sides() {
			b.dot(LayerSideMidpoint, geom.Midpoint(s[0], s[1]), MarkerRadius, SideMidpointFill)
		}
	}

	if ov.FeetOfAltitudes {
		for _, f := range t.Feet() {
			b.dot(LayerFoot, f, MarkerRadius, FootFill)
		}
	}

	if ov.OrthoVertexMidpoints {
		h := t.Orthocenter()
		for _, v := range verts {
			b.dot(LayerOrthoVertexMidpoint, geom.Midpoint(v, h), MarkerRadius, OrthoVertexMidpointFill)
		}
	}

	b.circle(LayerIncircle, t.Incircle(), IncircleStyle)
	b.circle(LayerCircumcircle, t.Circumcircle(), CircumcircleStyle)
	b.circle(LayerNinePoint, t.NinePointCircle(), NinePointStyle)

	for _, v := range verts {
		b.dot(LayerHandle, v, opts.HandleRadius, HandleFill)
	}

	return Frame{Triangle: t, Primitives: b.out}
}
