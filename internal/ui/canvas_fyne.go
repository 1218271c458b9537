//go:build fyne && cgo

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"shermanviz/internal/editor"
	"shermanviz/internal/geom"
	"shermanviz/internal/render"
)

// TriangleCanvas shows the editor's scene as a raster and forwards pointer
// gestures to it. Widget coordinates are canvas units; the raster is rendered
// at device resolution.
type TriangleCanvas struct {
	widget.BaseWidget

	ed     *editor.Editor
	raster *canvas.Raster

	// OnChanged runs after a gesture changed the vertices.
	OnChanged func()
}

var (
	_ fyne.Draggable     = (*TriangleCanvas)(nil)
	_ desktop.Hoverable  = (*TriangleCanvas)(nil)
	_ desktop.Cursorable = (*TriangleCanvas)(nil)
)

func NewTriangleCanvas(ed *editor.Editor) *TriangleCanvas {
	tc := &TriangleCanvas{ed: ed}
	tc.raster = canvas.NewRaster(tc.draw)
	tc.ExtendBaseWidget(tc)
	return tc
}

// PreferredSize fits the default layout with some margin.
func (tc *TriangleCanvas) PreferredSize() fyne.Size { return fyne.NewSize(600, 500) }

func (tc *TriangleCanvas) draw(w, h int) image.Image {
	scale := 1.0
	if sz := tc.Size(); sz.Width > 0 {
		scale = float64(w) / float64(sz.Width)
	}
	return render.Draw(tc.ed.Frame(), w, h, scale)
}

// CreateRenderer wraps the raster.
func (tc *TriangleCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &triangleCanvasRenderer{tc: tc, objects: []fyne.CanvasObject{tc.raster}}
}

// Dragged moves the vertex grabbed at the start of the gesture.
func (tc *TriangleCanvas) Dragged(e *fyne.DragEvent) {
	from := geom.Pt(float64(e.Position.X-e.Dragged.DX), float64(e.Position.Y-e.Dragged.DY))
	delta := geom.Pt(float64(e.Dragged.DX), float64(e.Dragged.DY))
	if tc.ed.Drag(from, delta) {
		tc.changed()
	}
}

func (tc *TriangleCanvas) DragEnd() {
	moved := tc.ed.Dragging() >= 0
	tc.ed.EndDrag()
	if moved {
		tc.changed()
	}
}

func (tc *TriangleCanvas) MouseIn(e *desktop.MouseEvent) { tc.MouseMoved(e) }

func (tc *TriangleCanvas) MouseMoved(e *desktop.MouseEvent) {
	tc.ed.Hover(geom.Pt(float64(e.Position.X), float64(e.Position.Y)))
}

func (tc *TriangleCanvas) MouseOut() { tc.ed.Leave() }

// Cursor maps the editor's interaction state to a desktop cursor.
func (tc *TriangleCanvas) Cursor() desktop.Cursor {
	return cursorFor(tc.ed.Cursor())
}

func cursorFor(c editor.Cursor) desktop.Cursor {
	switch c {
	case editor.CursorPointer:
		return desktop.PointerCursor
	case editor.CursorGrabbing:
		return desktop.CrosshairCursor
	default:
		return desktop.DefaultCursor
	}
}

func (tc *TriangleCanvas) changed() {
	tc.Refresh()
	if tc.OnChanged != nil {
		tc.OnChanged()
	}
}

type triangleCanvasRenderer struct {
	tc      *TriangleCanvas
	objects []fyne.CanvasObject
}

func (r *triangleCanvasRenderer) Destroy()                     {}
func (r *triangleCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *triangleCanvasRenderer) MinSize() fyne.Size           { return r.tc.PreferredSize() }
func (r *triangleCanvasRenderer) Refresh()                     { canvas.Refresh(r.tc.raster) }

func (r *triangleCanvasRenderer) Layout(size fyne.Size) {
	r.tc.raster.Move(fyne.NewPos(0, 0))
	r.tc.raster.Resize(size)
}
