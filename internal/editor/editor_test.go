/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package editor

import (
	"strings"
	"testing"

	"shermanviz/internal/geom"
	"shermanviz/internal/scene"
)

func TestNew_Defaults(t *testing.T) {
	e := New(Options{})
	if e.Triangle() != DefaultTriangle {
		t.Fatalf("unexpected startup triangle: %v", e.Triangle())
	}
	if e.Options() != scene.DefaultOptions() {
		t.Fatalf("expected default scene options, got %+v", e.Options())
	}
	if e.Dragging() != -1 || e.Cursor() != CursorDefault {
		t.Fatalf("expected idle state")
	}
}

func TestDrag_MovesGrabbedVertex(t *testing.T) {
	e := New(Options{})
	if !e.Drag(geom.Pt(402, 198), geom.Pt(10, 5)) {
		t.Fatalf("expected drag on vertex B to move it")
	}
	if e.Dragging() != 1 || e.Cursor() != CursorGrabbing {
		t.Fatalf("expected vertex 1 grabbed, got %d", e.Dragging())
	}
	// the pointer has left the original handle; the gesture keeps the grab
	e.Drag(geom.Pt(412, 203), geom.Pt(10, 5))
	e.EndDrag()
	if got := e.Triangle().B; got != geom.Pt(420, 210) {
		t.Fatalf("unexpected B after drag: %v", got)
	}
	if e.Triangle().A != DefaultTriangle.A || e.Triangle().C != DefaultTriangle.C {
		t.Fatalf("other vertices must not move")
	}
	if e.Dragging() != -1 {
		t.Fatalf("EndDrag should release the vertex")
	}
}

func TestDrag_MissDoesNothingForWholeGesture(t *testing.T) {
	e := New(Options{})
	if e.Drag(geom.Pt(300, 300), geom.Pt(100, -100)) {
		t.Fatalf("drag started off-handle must not move anything")
	}
	// even if the gesture passes over a handle later
	if e.Drag(geom.Pt(200, 200), geom.Pt(5, 5)) {
		t.Fatalf("gesture that missed must stay inert")
	}
	e.EndDrag()
	if e.Triangle() != DefaultTriangle || e.CanUndo() {
		t.Fatalf("miss should leave state and history untouched")
	}
}

func TestUndoRedoDrag(t *testing.T) {
	e := New(Options{})
	e.Drag(geom.Pt(300, 400), geom.Pt(-50, 0))
	e.EndDrag()
	moved := e.Triangle()
	if !e.Undo() || e.Triangle() != DefaultTriangle {
		t.Fatalf("undo should restore the default layout, got %v", e.Triangle())
	}
	if !e.Redo() || e.Triangle() != moved {
		t.Fatalf("redo should restore the dragged layout, got %v", e.Triangle())
	}
	if e.Redo() {
		t.Fatalf("nothing left to redo")
	}
}

func TestReset(t *testing.T) {
	e := New(Options{})
	if e.Reset() {
		t.Fatalf("reset on default layout should be a no-op")
	}
	e.Drag(geom.Pt(200, 200), geom.Pt(-20, -20))
	e.EndDrag()
	if !e.Reset() || e.Triangle() != DefaultTriangle {
		t.Fatalf("reset should restore defaults")
	}
	if !e.Undo() || e.Triangle().A != geom.Pt(180, 180) {
		t.Fatalf("reset should be undoable, got %v", e.Triangle())
	}
}

func TestHoverAndCursor(t *testing.T) {
	e := New(Options{})
	if !e.Hover(geom.Pt(199, 201)) || e.Cursor() != CursorPointer {
		t.Fatalf("expected pointer cursor over vertex A")
	}
	if e.Hover(geom.Pt(200, 200)) {
		t.Fatalf("same target should not report a change")
	}
	e.Leave()
	if e.Cursor() != CursorDefault {
		t.Fatalf("expected default cursor after leave")
	}
}

func TestFrameFollowsOverlays(t *testing.T) {
	e := New(Options{})
	base := len(e.Frame().Primitives)
	e.SetOverlays(scene.Overlays{SideMidpoints: true})
	if got := e.Frame().Count(scene.LayerSideMidpoint); got != 3 {
		t.Fatalf("expected 3 side midpoints, got %d", got)
	}
	if len(e.Frame().Primitives) != base+3 {
		t.Fatalf("expected exactly three more primitives")
	}
	if !e.Overlays().SideMidpoints {
		t.Fatalf("overlay state not kept")
	}
}

func TestDescribe(t *testing.T) {
	e := New(Options{})
	got := e.Describe()
	if !strings.HasPrefix(got, "A(200, 200)  B(400, 200)  C(300, 400)") {
		t.Fatalf("unexpected vertex summary: %q", got)
	}
	if !strings.Contains(got, "R=125.0") || !strings.Contains(got, "N=62.5") {
		t.Fatalf("unexpected radii: %q", got)
	}
}
