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
	"fmt"
	"log/slog"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"shermanviz/internal/config"
	"shermanviz/internal/crash"
	"shermanviz/internal/editor"
	applog "shermanviz/internal/log"
	"shermanviz/internal/scene"
	"shermanviz/internal/version"
)

const windowTitle = "Sherman's Line Visualization"

// Run opens the visualizer window and blocks until it is closed.
func Run(cfg config.AppConfig) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI")

	ed := editor.New(editor.Options{
		Scene:    cfg.SceneOptions(),
		Overlays: cfg.Overlays,
		History:  cfg.UndoConfig(),
	})
	defer crash.Recover(ed)

	fyneApp := app.NewWithID("io.github.shermanviz")
	w := fyneApp.NewWindow(windowTitle)
	// Restore window size from preferences (with sane minimums)
	prefs := fyneApp.Preferences()
	winW := prefs.IntWithFallback("window.width", 900)
	winH := prefs.IntWithFallback("window.height", 720)
	if winW < 640 {
		winW = 640
	}
	if winH < 480 {
		winH = 480
	}
	w.Resize(fyne.NewSize(float32(winW), float32(winH)))

	status := widget.NewLabel("")
	tc := NewTriangleCanvas(ed)

	var undoBtn, redoBtn *widget.Button
	refresh := func() {
		tc.Refresh()
		status.SetText(ed.Describe())
		setEnabled(undoBtn, ed.CanUndo())
		setEnabled(redoBtn, ed.CanRedo())
	}
	tc.OnChanged = refresh

	doUndo := func() {
		if ed.Undo() {
			refresh()
		}
	}
	doRedo := func() {
		if ed.Redo() {
			refresh()
		}
	}
	doReset := func() {
		if ed.Reset() {
			refresh()
		}
	}
	undoBtn = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), doUndo)
	redoBtn = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), doRedo)
	resetBtn := widget.NewButtonWithIcon("Reset", theme.ViewRefreshIcon(), doReset)

	checks := overlayChecks(ed, func() {
		refresh()
		persistOverlays(ed.Overlays(), l)
	})

	heading := widget.NewLabelWithStyle(windowTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	toggles := container.NewGridWithColumns(3, checks...)
	toolbar := container.NewHBox(undoBtn, redoBtn, resetBtn)
	top := container.NewVBox(heading, toggles, toolbar)
	w.SetContent(container.NewBorder(top, status, nil, nil, tc))

	undoKey := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	redoKey := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}
	w.Canvas().AddShortcut(undoKey, func(fyne.Shortcut) { doUndo() })
	w.Canvas().AddShortcut(redoKey, func(fyne.Shortcut) { doRedo() })

	undoItem := fyne.NewMenuItem("Undo", doUndo)
	undoItem.Shortcut = undoKey
	redoItem := fyne.NewMenuItem("Redo", doRedo)
	redoItem.Shortcut = redoKey
	editMenu := fyne.NewMenu("Edit", undoItem, redoItem, fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset Triangle", doReset))
	helpMenu := fyne.NewMenu("Help", fyne.NewMenuItem("About", func() {
		dialog.ShowInformation("About", aboutText(), w)
	}))
	w.SetMainMenu(fyne.NewMainMenu(editMenu, helpMenu))

	w.SetCloseIntercept(func() {
		sz := w.Canvas().Size()
		prefs.SetInt("window.width", int(sz.Width))
		prefs.SetInt("window.height", int(sz.Height))
		w.Close()
	})

	refresh()
	w.ShowAndRun()
	l.Info("UI closed")
	return nil
}

func setEnabled(b *widget.Button, on bool) {
	if b == nil {
		return
	}
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

// overlayChecks builds one checkbox per overlay toggle, in display order.
func overlayChecks(ed *editor.Editor, onChange func()) []fyne.CanvasObject {
	ov := ed.Overlays()
	items := []struct {
		label string
		field *bool
	}{
		{"Show altitudes", &ov.Perpendiculars},
		{"Show orthocenter-vertex segments", &ov.OrthoSegments},
		{"Show side midpoints", &ov.SideMidpoints},
		{"Show feet of altitudes", &ov.FeetOfAltitudes},
		{"Show orthocenter-vertex midpoints", &ov.OrthoVertexMidpoints},
		{"Show extensions", &ov.Extensions},
	}
	objs := make([]fyne.CanvasObject, 0, len(items))
	for _, it := range items {
		c := widget.NewCheck(it.label, nil)
		c.SetChecked(*it.field)
		c.OnChanged = func(v bool) {
			*it.field = v
			ed.SetOverlays(ov)
			applog.WithComponent("ui").Debug("overlay toggled", slog.String("overlay", it.label), slog.Bool("on", v))
			onChange()
		}
		objs = append(objs, c)
	}
	return objs
}

// persistOverlays writes the toggles back to the user config unless an
// environment variable pins them for this session.
func persistOverlays(ov scene.Overlays, l *slog.Logger) {
	if src, ok := config.EnvOverrideFor("overlays"); ok {
		l.Debug("overlays pinned by environment; not saving", slog.String("env", src))
		return
	}
	if err := config.SaveOverlays(ov); err != nil {
		l.Warn("save overlays failed", slog.Any("err", err))
	}
}

func aboutText() string {
	return fmt.Sprintf("%s\nVersion: %s\nOS/Arch: %s/%s\n\nDrag a red vertex to reshape the triangle.",
		windowTitle, version.String(), runtime.GOOS, runtime.GOARCH)
}
