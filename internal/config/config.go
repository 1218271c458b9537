/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	applog "shermanviz/internal/log"
	"shermanviz/internal/scene"
	"shermanviz/internal/undo"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal.

type CanvasConfig struct {
	ExtensionFactor float64 `yaml:"extension_factor" json:"extension_factor"`
	HandleRadius    float64 `yaml:"handle_radius" json:"handle_radius"`
}

type HistoryConfig struct {
	MaxDepth      int `yaml:"max_depth" json:"max_depth"`
	MinIntervalMs int `yaml:"min_interval_ms" json:"min_interval_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Source bool   `yaml:"source" json:"source"`
	File   string `yaml:"file" json:"file"`
}

type AppConfig struct {
	ConfigVersion int            `yaml:"config_version" json:"config_version"`
	Overlays      scene.Overlays `yaml:"overlays" json:"overlays"`
	Canvas        CanvasConfig   `yaml:"canvas" json:"canvas"`
	History       HistoryConfig  `yaml:"history" json:"history"`
	Logging       LoggingConfig  `yaml:"logging" json:"logging"`
}

// ErrInvalid wraps schema validation failures.
var ErrInvalid = errors.New("invalid configuration")

//go:embed config.schema.json
var schemaJSON []byte

// Defaults returns the application defaults.
func Defaults() AppConfig {
	def := scene.DefaultOptions()
	return AppConfig{
		ConfigVersion: 1,
		Overlays:      scene.Overlays{},
		Canvas:        CanvasConfig{ExtensionFactor: def.ExtensionFactor, HandleRadius: def.HandleRadius},
		History:       HistoryConfig{MaxDepth: 100, MinIntervalMs: 0},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvConfigDir       = "SHV_CONFIG_DIR"
	EnvExtensionFactor = "SHV_EXTENSION_FACTOR"
	EnvHandleRadius    = "SHV_HANDLE_RADIUS"
	EnvShowAll         = "SHV_SHOW_ALL"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "SHV_LOG_LEVEL"
	EnvLogFormat = "SHV_LOG_FORMAT"
	EnvLogSource = "SHV_LOG_SOURCE"
	EnvLogFile   = "SHV_LOG_FILE"
)

// SceneOptions converts the canvas section for scene.Build.
func (c AppConfig) SceneOptions() scene.Options {
	return scene.Options{ExtensionFactor: c.Canvas.ExtensionFactor, HandleRadius: c.Canvas.HandleRadius}
}

// LogOptions converts the logging section for applog.Init.
func (c AppConfig) LogOptions() applog.Options {
	return applog.Options{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		AddSource: c.Logging.Source,
		File:      c.Logging.File,
		NoColor:   os.Getenv("NO_COLOR") != "",
	}
}

// UndoConfig converts the history section for undo.NewHistory.
func (c AppConfig) UndoConfig() undo.Config {
	return undo.Config{MaxDepth: c.History.MaxDepth, MinInterval: time.Duration(c.History.MinIntervalMs) * time.Millisecond}
}

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(EnvConfigDir)); dir != "" {
		return filepath.Join(dir, "config.yaml"), nil
	}
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "ShermanViz")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "ShermanViz")
	default: // linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = filepath.Join(xdg, "shermanviz")
		} else {
			base = filepath.Join(os.Getenv("HOME"), ".config", "shermanviz")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, merges environment
// overrides and validates the result. On validation failure the defaults (with env
// overrides) are returned together with an error wrapping ErrInvalid, so callers can
// log and continue.
func Load() (AppConfig, error) {
	cfg, err := loadFile()
	applyEnvOverrides(&cfg)
	if err != nil {
		if Validate(cfg) != nil {
			cfg = Defaults()
		}
		return cfg, err
	}
	if verr := Validate(cfg); verr != nil {
		fallback := Defaults()
		applyEnvOverrides(&fallback)
		if Validate(fallback) != nil {
			fallback = Defaults()
		}
		return fallback, verr
	}
	return cfg, nil
}

// loadFile returns the defaults merged with the config file, without env overrides.
// On a read or parse error the plain defaults are returned.
func loadFile() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	case !errors.Is(err, os.ErrNotExist):
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	return cfg, nil
}

// SaveOverlays stores the overlay toggles in the config file and leaves every
// other setting as the file has it, so session env overrides are not persisted.
func SaveOverlays(ov scene.Overlays) error {
	cfg, err := loadFile()
	if err != nil {
		return err
	}
	cfg.Overlays = ov
	return Save(cfg)
}

// Save validates cfg and writes it as YAML to the user config path.
func Save(cfg AppConfig) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate checks cfg against the embedded JSON schema.
func Validate(cfg AppConfig) error {
	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewGoLoader(cfg))
	if err != nil {
		return fmt.Errorf("schema validate: %w", err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.Overlays = src.Overlays
	if src.Canvas.ExtensionFactor != 0 {
		dst.Canvas.ExtensionFactor = src.Canvas.ExtensionFactor
	}
	if src.Canvas.HandleRadius != 0 {
		dst.Canvas.HandleRadius = src.Canvas.HandleRadius
	}
	if src.History.MaxDepth != 0 {
		dst.History.MaxDepth = src.History.MaxDepth
	}
	if src.History.MinIntervalMs != 0 {
		dst.History.MinIntervalMs = src.History.MinIntervalMs
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func parseBool(v string) bool {
	lv := strings.ToLower(strings.TrimSpace(v))
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvExtensionFactor)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Canvas.ExtensionFactor = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvHandleRadius)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Canvas.HandleRadius = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvShowAll)); v != "" && parseBool(v) {
		cfg.Overlays = scene.Overlays{
			Perpendiculars:       true,
			OrthoSegments:        true,
			SideMidpoints:        true,
			FeetOfAltitudes:      true,
			OrthoVertexMidpoints: true,
			Extensions:           true,
		}
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	var env string
	switch key {
	case "canvas.extension_factor":
		env = EnvExtensionFactor
	case "canvas.handle_radius":
		env = EnvHandleRadius
	case "overlays":
		env = EnvShowAll
	case "logging.level":
		env = EnvLogLevel
	case "logging.format":
		env = EnvLogFormat
	case "logging.source":
		env = EnvLogSource
	case "logging.file":
		env = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(env) != "" {
		return env, true
	}
	return "", false
}
