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
	"sync"
	"time"

	"shermanviz/internal/geom"
)

// Snapshot is the triangle as it was before a change.
// TS is when the snapshot was captured.
type Snapshot struct {
	Triangle geom.Triangle
	Reason   string
	TS       time.Time
}

// Config controls depth caps and coalescing behavior.
type Config struct {
	// MaxDepth limits the number of undo entries kept (0 means the default of 100).
	MaxDepth int
	// MinInterval coalesces snapshots captured within the interval: the earlier
	// before-state is kept and the newer one is dropped.
	MinInterval time.Duration
}

// History is an in-memory undo/redo stack of triangle states.
// It is safe for concurrent use.
type History struct {
	cfg  Config
	mu   sync.Mutex
	undo []Snapshot
	redo []Snapshot
}

func NewHistory(cfg Config) *History {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = 100
	}
	if cfg.MinInterval < 0 {
		cfg.MinInterval = 0
	}
	return &History{cfg: cfg}
}

// Push records the state before a change and clears the redo stack.
func (h *History) Push(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.redo = nil
	if n := len(h.undo); n > 0 && h.cfg.MinInterval > 0 {
		if s.TS.Sub(h.undo[n-1].TS) < h.cfg.MinInterval {
			return
		}
	}
	h.undo = append(h.undo, s)
	if len(h.undo) > h.cfg.MaxDepth {
		drop := len(h.undo) - h.cfg.MaxDepth
		h.undo = append([]Snapshot{}, h.undo[drop:]...)
	}
}

// Undo pops the last before-state, moving current onto the redo stack.
func (h *History) Undo(current geom.Triangle) (geom.Triangle, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.undo) == 0 {
		return current, false
	}
	s := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, Snapshot{Triangle: current, Reason: s.Reason})
	return s.Triangle, true
}

// Redo reapplies the most recently undone state, moving current back onto the undo stack.
func (h *History) Redo(current geom.Triangle) (geom.Triangle, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.redo) == 0 {
		return current, false
	}
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	// zero TS so the next Push never coalesces into a replayed entry
	h.undo = append(h.undo, Snapshot{Triangle: current, Reason: s.Reason})
	return s.Triangle, true
}

// Clear drops both stacks.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.undo = nil
	h.redo = nil
}

// Stats returns current stack depths for diagnostics.
func (h *History) Stats() (undoDepth, redoDepth int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undo), len(h.redo)
}

func (h *History) CanUndo() bool {
	u, _ := h.Stats()
	return u > 0
}

func (h *History) CanRedo() bool {
	_, r := h.Stats()
	return r > 0
}
