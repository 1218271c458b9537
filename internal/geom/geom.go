/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package geom holds the closed-form triangle geometry drawn by the visualizer:
// incircle, circumcircle, orthocenter, nine-point circle and a few helpers.
//
// All functions are pure. Degenerate (collinear) triangles are valid input.
// Only Orthocenter guards its division; Circumcircle, NinePointCircle and
// FootOfPerpendicular let IEEE-754 produce Inf or NaN for singular input, and
// callers that draw the results are expected to check Finite.
package geom

import "math"

// DegenerateEpsilon is the determinant magnitude below which Orthocenter treats
// the altitudes as parallel and falls back to the centroid.
const DegenerateEpsilon = 1e-6

// Point is a 2D position in canvas units.
type Point struct{ X, Y float64 }

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool { return finite(p.X) && finite(p.Y) }

// Near compares per axis within eps.
func (p Point) Near(q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// Circle is a derived (center, radius) pair.
type Circle struct {
	Center Point
	Radius float64
}

// Finite reports whether center and radius are all finite numbers.
func (c Circle) Finite() bool { return c.Center.Finite() && finite(c.Radius) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y))
}

// Incircle returns the incenter and inradius.
// The center is the side-length weighted average of the vertices; the radius is
// the Heron area divided by the semiperimeter. A slightly negative Heron product
// caused by rounding on collinear input is clamped to zero. Three coincident
// vertices have a zero perimeter and yield NaN for center and radius.
func Incircle(a, b, c Point) Circle {
	sideA := Distance(b, c)
	sideB := Distance(a, c)
	sideC := Distance(a, b)
	sum := sideA + sideB + sideC
	center := Point{
		X: (sideA*a.X + sideB*b.X + sideC*c.X) / sum,
		Y: (sideA*a.Y + sideB*b.Y + sideC*c.Y) / sum,
	}
	s := sum / 2
	prod := heronProduct(sideA, sideB, sideC)
	if prod < 0 {
		prod = 0
	}
	area := math.Sqrt(prod)
	return Circle{Center: center, Radius: area / s}
}

// heronProduct is s(s-a)(s-b)(s-c), the squared area.
func heronProduct(sideA, sideB, sideC float64) float64 {
	s := (sideA + sideB + sideC) / 2
	return s * (s - sideA) * (s - sideB) * (s - sideC)
}

// Circumcircle returns the circumcenter and circumradius using the
// perpendicular-bisector determinant. Collinear input makes d zero and the
// result non-finite.
func Circumcircle(a, b, c Point) Circle {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	center := Point{X: ux, Y: uy}
	return Circle{Center: center, Radius: Distance(center, a)}
}

// Orthocenter intersects the altitude through A (perpendicular to BC) with the
// altitude through B (perpendicular to AC). When the two are parallel within
// DegenerateEpsilon the centroid is returned instead.
func Orthocenter(a, b, c Point) Point {
	ac := c.Sub(a)
	bc := c.Sub(b)

	// side directions rotated by 90 degrees
	bcPerp := Point{X: bc.Y, Y: -bc.X}
	acPerp := Point{X: ac.Y, Y: -ac.X}

	// A + t1*bcPerp = B + t2*acPerp
	denom := acPerp.X*bcPerp.Y - acPerp.Y*bcPerp.X
	if math.Abs(denom) < DegenerateEpsilon {
		return Centroid(a, b, c)
	}
	dx := b.X - a.X
	dy := b.Y - a.Y
	t1 := (acPerp.X*dy - acPerp.Y*dx) / denom
	return Point{X: a.X + t1*bcPerp.X, Y: a.Y + t1*bcPerp.Y}
}

// NinePointCircle is centered halfway between circumcenter and orthocenter with
// half the circumradius. It inherits Circumcircle's singularity.
func NinePointCircle(a, b, c Point) Circle {
	cc := Circumcircle(a, b, c)
	h := Orthocenter(a, b, c)
	return Circle{Center: Midpoint(cc.Center, h), Radius: cc.Radius / 2}
}

// Centroid returns (a+b+c)/3.
func Centroid(a, b, c Point) Point {
	return Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// FootOfPerpendicular projects p orthogonally onto the line through a and b.
// Undefined (NaN) when a == b.
func FootOfPerpendicular(p, a, b Point) Point {
	ap := p.Sub(a)
	ab := b.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / (ab.X*ab.X + ab.Y*ab.Y)
	return Point{X: a.X + t*ab.X, Y: a.Y + t*ab.Y}
}

// ExtendLine pushes both ends of segment ab outward by factor*(b-a).
func ExtendLine(a, b Point, factor float64) (Point, Point) {
	d := b.Sub(a).Scale(factor)
	return a.Sub(d), b.Add(d)
}
