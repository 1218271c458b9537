/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"shermanviz/internal/config"
	"shermanviz/internal/crash"
	applog "shermanviz/internal/log"
	"shermanviz/internal/ui"
	"shermanviz/internal/version"
)

func usage() {
	fmt.Println("Sherman's Line Visualization")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shermanviz version|-v|--version   Show version")
	fmt.Println("  shermanviz config                 Print config path and effective settings")
	fmt.Println("  shermanviz [ui]                   Launch desktop UI (build with -tags fyne for full UI)")
}

func main() {
	// bootstrap logging from the environment until the config is loaded
	applog.Init(applog.FromEnv())
	defer crash.Recover(nil)

	cfg, err := config.Load()
	if err != nil {
		applog.WithComponent("cli").Warn("config load failed; using defaults", slog.Any("err", err))
	}
	applog.Init(cfg.LogOptions())
	l := applog.WithComponent("cli")

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	cmd := "ui"
	if len(args) > 1 {
		cmd = args[1]
	}
	switch cmd {
	case "version", "--version", "-v":
		fmt.Println("Sherman's Line Visualization")
		fmt.Println(version.String())
	case "config":
		if err := printConfig(cfg); err != nil {
			l.Error("print config failed", slog.Any("err", err))
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "ui":
		if err := ui.Run(cfg); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Printf("unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}
}

func printConfig(cfg config.AppConfig) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		fmt.Printf("# %s (not created yet)\n", path)
	} else {
		fmt.Printf("# %s\n", path)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
