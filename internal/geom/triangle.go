/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package geom

// Triangle is an ordered triple of vertices. Non-degeneracy is not enforced.
type Triangle struct{ A, B, C Point }

// Tri builds a Triangle from three points.
func Tri(a, b, c Point) Triangle { return Triangle{A: a, B: b, C: c} }

// Vertices returns A, B, C in order.
func (t Triangle) Vertices() [3]Point { return [3]Point{t.A, t.B, t.C} }

// At returns vertex i (0=A, 1=B, 2=C).
func (t Triangle) At(i int) Point {
	switch i {
	case 0:
		return t.A
	case 1:
		return t.B
	default:
		return t.C
	}
}

// With returns a copy of t with vertex i replaced by p.
func (t Triangle) With(i int, p Point) Triangle {
	switch i {
	case 0:
		t.A = p
	case 1:
		t.B = p
	case 2:
		t.C = p
	}
	return t
}

// Sides returns the segments AB, BC, CA in drawing order.
func (t Triangle) Sides() [3][2]Point {
	return [3][2]Point{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

func (t Triangle) Incircle() Circle        { return Incircle(t.A, t.B, t.C) }
func (t Triangle) Circumcircle() Circle    { return Circumcircle(t.A, t.B, t.C) }
func (t Triangle) NinePointCircle() Circle { return NinePointCircle(t.A, t.B, t.C) }
func (t Triangle) Orthocenter() Point      { return Orthocenter(t.A, t.B, t.C) }
func (t Triangle) Centroid() Point         { return Centroid(t.A, t.B, t.C) }

// Feet returns the feet of the altitudes from A, B and C.
func (t Triangle) Feet() [3]Point {
	return [3]Point{
		FootOfPerpendicular(t.A, t.B, t.C),
		FootOfPerpendicular(t.B, t.A, t.C),
		FootOfPerpendicular(t.C, t.A, t.B),
	}
}

// Area is the unsigned shoelace area; zero for collinear vertices.
func (t Triangle) Area() float64 {
	v := (t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.C.X-t.A.X)*(t.B.Y-t.A.Y)
	if v < 0 {
		v = -v
	}
	return v / 2
}

// Contains reports whether p lies strictly inside t.
func (t Triangle) Contains(p Point) bool {
	d1 := cross(t.A, t.B, p)
	d2 := cross(t.B, t.C, p)
	d3 := cross(t.C, t.A, p)
	return (d1 > 0 && d2 > 0 && d3 > 0) || (d1 < 0 && d2 < 0 && d3 < 0)
}

func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
