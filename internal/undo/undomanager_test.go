/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package undo

import (
	"testing"
	"time"

	"shermanviz/internal/geom"
)

func tri(x float64) geom.Triangle {
	return geom.Tri(geom.Pt(x, 0), geom.Pt(x+1, 0), geom.Pt(x, 1))
}

func TestUndoRedoBasic(t *testing.T) {
	h := NewHistory(Config{MaxDepth: 10, MinInterval: 10 * time.Millisecond})
	t0 := time.Now()
	h.Push(Snapshot{Triangle: tri(0), TS: t0})
	h.Push(Snapshot{Triangle: tri(1), TS: t0.Add(20 * time.Millisecond)})
	if u, r := h.Stats(); u != 2 || r != 0 {
		t.Fatalf("expected 2 undo / 0 redo, got %d/%d", u, r)
	}
	cur := tri(2)
	got, ok := h.Undo(cur)
	if !ok || got != tri(1) {
		t.Fatalf("undo expected tri(1), got ok=%v %v", ok, got)
	}
	got, ok = h.Redo(got)
	if !ok || got != cur {
		t.Fatalf("redo expected current state back, got ok=%v %v", ok, got)
	}
	if !h.CanUndo() || h.CanRedo() {
		t.Fatalf("unexpected availability after redo")
	}
}

func TestUndoEmpty(t *testing.T) {
	h := NewHistory(Config{})
	cur := tri(5)
	got, ok := h.Undo(cur)
	if ok || got != cur {
		t.Fatalf("expected no-op undo, got ok=%v %v", ok, got)
	}
	if _, ok := h.Redo(cur); ok {
		t.Fatalf("expected no-op redo")
	}
}

func TestCoalesceKeepsEarliest(t *testing.T) {
	h := NewHistory(Config{MaxDepth: 10, MinInterval: 50 * time.Millisecond})
	t0 := time.Now()
	h.Push(Snapshot{Triangle: tri(1), TS: t0})
	h.Push(Snapshot{Triangle: tri(2), TS: t0.Add(10 * time.Millisecond)}) // coalesce
	if u, _ := h.Stats(); u != 1 {
		t.Fatalf("expected coalesced to 1 snapshot, got %d", u)
	}
	got, _ := h.Undo(tri(3))
	if got != tri(1) {
		t.Fatalf("expected earliest before-state, got %v", got)
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory(Config{})
	h.Push(Snapshot{Triangle: tri(1), TS: time.Now()})
	h.Undo(tri(2))
	if !h.CanRedo() {
		t.Fatalf("expected redo after undo")
	}
	h.Push(Snapshot{Triangle: tri(1), TS: time.Now()})
	if h.CanRedo() {
		t.Fatalf("push must invalidate redo")
	}
}

func TestDepthCap(t *testing.T) {
	h := NewHistory(Config{MaxDepth: 2})
	t0 := time.Now()
	for i := 0; i < 10; i++ {
		h.Push(Snapshot{Triangle: tri(float64(i)), TS: t0.Add(time.Duration(i) * time.Second)})
	}
	if u, _ := h.Stats(); u != 2 {
		t.Fatalf("expected MaxDepth cap to limit to 2, got %d", u)
	}
	got, _ := h.Undo(tri(100))
	if got != tri(9) {
		t.Fatalf("expected newest entry kept, got %v", got)
	}
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Fatalf("clear left entries behind")
	}
}
