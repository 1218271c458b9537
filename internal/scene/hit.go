/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package scene

import "shermanviz/internal/geom"

// Rect is an axis-aligned rectangle defined by min corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectAround returns the square of half-size r centered on c.
func RectAround(c geom.Point, r float64) Rect {
	return Rect{X: c.X - r, Y: c.Y - r, W: 2 * r, H: 2 * r}
}

func (r Rect) Min() geom.Point { return geom.Pt(r.X, r.Y) }
func (r Rect) Max() geom.Point { return geom.Pt(r.X+r.W, r.Y+r.H) }

// Contains is inclusive on all edges.
func (r Rect) Contains(p geom.Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// HitVertex returns the index of the topmost vertex whose handle square contains
// p, or -1. Later vertices are drawn over earlier ones, so they win ties.
func HitVertex(t geom.Triangle, p geom.Point, handleRadius float64) int {
	vs := t.Vertices()
	for i := len(vs) - 1; i >= 0; i-- {
		if RectAround(vs[i], handleRadius).Contains(p) {
			return i
		}
	}
	return -1
}
