/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package editor owns the application state of the visualizer: the three
// vertex positions, the overlay toggles and the drag gesture in progress.
// It is the only place vertices are mutated; everything drawn is derived from
// it through scene.Build on every frame.
package editor

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"shermanviz/internal/geom"
	applog "shermanviz/internal/log"
	"shermanviz/internal/scene"
	"shermanviz/internal/undo"
)

// DefaultTriangle is the startup layout.
var DefaultTriangle = geom.Tri(geom.Pt(200, 200), geom.Pt(400, 200), geom.Pt(300, 400))

// Cursor is the pointer shape the UI should show.
type Cursor uint8

const (
	CursorDefault Cursor = iota
	CursorPointer        // hovering a vertex handle
	CursorGrabbing       // dragging a vertex
)

// Options configures a new Editor.
type Options struct {
	Scene    scene.Options
	Overlays scene.Overlays
	History  undo.Config
}

// Editor is not safe for concurrent use; the UI drives it from one goroutine.
type Editor struct {
	tri      geom.Triangle
	overlays scene.Overlays
	opts     scene.Options
	history  *undo.History
	log      *slog.Logger

	dragging bool // a gesture is in progress (even if it missed every handle)
	grabbed  int  // vertex index held by the gesture, -1 if none
	hovered  int
}

func New(opts Options) *Editor {
	if opts.Scene.HandleRadius <= 0 || opts.Scene.ExtensionFactor <= 0 {
		def := scene.DefaultOptions()
		if opts.Scene.HandleRadius <= 0 {
			opts.Scene.HandleRadius = def.HandleRadius
		}
		if opts.Scene.ExtensionFactor <= 0 {
			opts.Scene.ExtensionFactor = def.ExtensionFactor
		}
	}
	return &Editor{
		tri:      DefaultTriangle,
		overlays: opts.Overlays,
		opts:     opts.Scene,
		history:  undo.NewHistory(opts.History),
		log:      applog.WithComponent("editor"),
		grabbed:  -1,
		hovered:  -1,
	}
}

func (e *Editor) Triangle() geom.Triangle  { return e.tri }
func (e *Editor) Overlays() scene.Overlays { return e.overlays }
func (e *Editor) Options() scene.Options   { return e.opts }

// SetOverlays replaces the overlay toggles.
func (e *Editor) SetOverlays(ov scene.Overlays) { e.overlays = ov }

// Frame recomputes the full draw list for the current state.
func (e *Editor) Frame() scene.Frame {
	return scene.Build(e.tri, e.overlays, e.opts)
}

// HitVertex returns the vertex whose handle contains p, or -1.
func (e *Editor) HitVertex(p geom.Point) int {
	return scene.HitVertex(e.tri, p, e.opts.HandleRadius)
}

// Drag advances a drag gesture. The first call of a gesture picks the vertex
// under from (the pointer position before delta was applied) and records an
// undo snapshot; later calls move that vertex by delta. It reports whether a
// vertex moved.
func (e *Editor) Drag(from geom.Point, delta geom.Point) bool {
	if !e.dragging {
		e.dragging = true
		e.grabbed = e.HitVertex(from)
		if e.grabbed >= 0 {
			e.history.Push(undo.Snapshot{Triangle: e.tri, Reason: "drag", TS: time.Now()})
			e.log.Debug("grab vertex", slog.Int("vertex", e.grabbed))
		}
	}
	if e.grabbed < 0 {
		return false
	}
	e.tri = e.tri.With(e.grabbed, e.tri.At(e.grabbed).Add(delta))
	return true
}

// EndDrag finishes the current gesture.
func (e *Editor) EndDrag() {
	if e.grabbed >= 0 {
		v := e.tri.At(e.grabbed)
		e.log.Debug("release vertex", slog.Int("vertex", e.grabbed), slog.Float64("x", v.X), slog.Float64("y", v.Y))
	}
	e.dragging = false
	e.grabbed = -1
}

// Dragging reports the grabbed vertex index, or -1.
func (e *Editor) Dragging() int { return e.grabbed }

// Hover updates the hovered handle; it returns true when the hover target changed.
func (e *Editor) Hover(p geom.Point) bool {
	h := e.HitVertex(p)
	changed := h != e.hovered
	e.hovered = h
	return changed
}

// Leave clears hover state when the pointer exits the canvas.
func (e *Editor) Leave() { e.hovered = -1 }

// Cursor reports which pointer shape fits the current interaction.
func (e *Editor) Cursor() Cursor {
	switch {
	case e.grabbed >= 0:
		return CursorGrabbing
	case e.hovered >= 0:
		return CursorPointer
	default:
		return CursorDefault
	}
}

// Undo restores the triangle from before the last drag or reset.
func (e *Editor) Undo() bool {
	t, ok := e.history.Undo(e.tri)
	if ok {
		e.tri = t
		e.log.Debug("undo")
	}
	return ok
}

// Redo reapplies the last undone change.
func (e *Editor) Redo() bool {
	t, ok := e.history.Redo(e.tri)
	if ok {
		e.tri = t
		e.log.Debug("redo")
	}
	return ok
}

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Reset moves the vertices back to DefaultTriangle. It is undoable and a no-op
// when the layout already matches.
func (e *Editor) Reset() bool {
	if e.tri == DefaultTriangle {
		return false
	}
	e.history.Push(undo.Snapshot{Triangle: e.tri, Reason: "reset", TS: time.Now()})
	e.tri = DefaultTriangle
	e.log.Info("vertices reset")
	return true
}

// Describe summarizes the vertices and circle radii for a status line.
// Singular radii print as NaN or +Inf.
func (e *Editor) Describe() string {
	var b strings.Builder
	for i, v := range e.tri.Vertices() {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%c(%.0f, %.0f)", 'A'+rune(i), v.X, v.Y)
	}
	fmt.Fprintf(&b, "  |  r=%.1f  R=%.1f  N=%.1f",
		e.tri.Incircle().Radius, e.tri.Circumcircle().Radius, e.tri.NinePointCircle().Radius)
	return b.String()
}
