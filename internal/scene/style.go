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

// Styles and paint definitions for the construction overlays.

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Style is a stroke (or fill, for dots) color plus line width in canvas units.
type Style struct {
	Color color.RGBA
	Width float32
}

func stroke(c color.RGBA, w float32) Style { return Style{Color: c, Width: w} }

var (
	Background = color.RGBA{R: 27, G: 27, B: 30, A: 255}

	SideStyle          = stroke(colornames.White, 2)
	SideExtensionStyle = stroke(colornames.Dimgray, 1)
	AltitudeStyle      = stroke(colornames.Lightgreen, 1.5)
	AltitudeExtStyle   = stroke(colornames.Darkgreen, 1)
	OrthoSegmentStyle  = stroke(colornames.Lightblue, 1.5)

	IncircleStyle     = stroke(colornames.Lime, 2)
	CircumcircleStyle = stroke(colornames.Blue, 2)
	NinePointStyle    = stroke(colornames.Yellow, 2)

	SideMidpointFill        = Style{Color: colornames.Gold}
	FootFill                = Style{Color: colornames.Red}
	OrthoVertexMidpointFill = Style{Color: colornames.Lightcoral}
	HandleFill              = Style{Color: colornames.Red}
)

// MarkerRadius is the radius of midpoint and foot markers.
const MarkerRadius = 5.0
