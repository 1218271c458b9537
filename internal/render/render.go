/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package render rasterizes a scene.Frame into an image. The desktop canvas
// calls it on every refresh; it holds no state between frames.
package render

import (
	"image"
	"image/draw"

	"github.com/fogleman/gg"

	"shermanviz/internal/scene"
)

// Draw paints f onto a new w x h image. scale converts canvas units to pixels
// (the device pixel ratio). Primitives with non-finite geometry are skipped.
func Draw(f scene.Frame, w, h int, scale float64) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	if scale <= 0 {
		scale = 1
	}
	dc := gg.NewContext(w, h)
	dc.SetColor(scene.Background)
	dc.Clear()
	dc.Scale(scale, scale)
	Paint(dc, f, scale)

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		b := dc.Image().Bounds()
		img = image.NewRGBA(b)
		draw.Draw(img, b, dc.Image(), b.Min, draw.Src)
	}
	return img
}

// Paint draws the primitives of f into dc in order and returns how many were
// skipped because they were singular. gg does not scale line widths with the
// context matrix, so scale is applied to them here.
func Paint(dc *gg.Context, f scene.Frame, scale float64) int {
	skipped := 0
	for _, p := range f.Primitives {
		if !p.Finite() {
			skipped++
			continue
		}
		dc.SetColor(p.Style.Color)
		switch p.Kind {
		case scene.KindSegment:
			dc.SetLineWidth(float64(p.Style.Width) * scale)
			dc.DrawLine(p.P0.X, p.P0.Y, p.P1.X, p.P1.Y)
			dc.Stroke()
		case scene.KindCircle:
			dc.SetLineWidth(float64(p.Style.Width) * scale)
			dc.DrawCircle(p.P0.X, p.P0.Y, p.Radius)
			dc.Stroke()
		case scene.KindDot:
			dc.DrawCircle(p.P0.X, p.P0.Y, p.Radius)
			dc.Fill()
		}
	}
	return skipped
}
