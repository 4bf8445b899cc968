// File: config_test.go
// Title: Configuration Management Unit Tests
// Description: Unit tests for configuration loading from TOML and YAML,
//              dot-notation access, defaults, environment overrides and
//              typed getters.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-17
// Modified: 2025-08-17
//
// Change History:
// - 2025-08-17 v0.1.0: Initial test suite

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoad_TOMLFile(t *testing.T) {
	path := writeConfigFile(t, "app.toml", `
[log]
level = "debug"
format = "json"

[scan]
max_depth = 50

[defs]
files = ["base.yaml", "extra.yaml"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Format() != FormatTOML {
		t.Errorf("expected TOML format, got %v", cfg.Format())
	}
	if cfg.FilePath() != path {
		t.Errorf("expected path %q, got %q", path, cfg.FilePath())
	}
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("expected debug, got %q", got)
	}
	if got := cfg.GetInt("scan.max_depth"); got != 50 {
		t.Errorf("expected 50, got %d", got)
	}
	expected := []string{"base.yaml", "extra.yaml"}
	if got := cfg.GetStringSlice("defs.files"); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestLoad_YAMLByExtension(t *testing.T) {
	path := writeConfigFile(t, "app.yaml", `
log:
  level: warn
scan:
  max_depth: 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Format() != FormatYAML {
		t.Errorf("expected YAML format, got %v", cfg.Format())
	}
	if got := cfg.GetString("log.level"); got != "warn" {
		t.Errorf("expected warn, got %q", got)
	}
	if got := cfg.GetInt("scan.max_depth"); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
	if _, err := Load(""); err == nil {
		t.Error("expected an error for an empty path")
	}
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString(`verbose = true`, FormatTOML)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !cfg.GetBool("verbose") {
		t.Error("expected verbose=true")
	}

	if _, err := LoadFromString(`{broken`, FormatYAML); err == nil {
		t.Error("expected an error for malformed content")
	}
}

func TestLoadWithOptions_Defaults(t *testing.T) {
	path := writeConfigFile(t, "app.toml", `present = "file"`)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"present": "default",
			"absent":  "default",
		},
	})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// File values win over defaults.
	if got := cfg.GetString("present"); got != "file" {
		t.Errorf("expected file value, got %q", got)
	}
	if got := cfg.GetString("absent"); got != "default" {
		t.Errorf("expected default value, got %q", got)
	}
}

func TestConfig_EnvOverride(t *testing.T) {
	path := writeConfigFile(t, "app.toml", `
[log]
level = "info"
`)

	cfg, err := LoadWithOptions(path, LoadOptions{EnvPrefix: "TEXELTEST"})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	t.Setenv("TEXELTEST_LOG_LEVEL", "trace")
	if got := cfg.GetString("log.level"); got != "trace" {
		t.Errorf("expected env override trace, got %q", got)
	}

	os.Unsetenv("TEXELTEST_LOG_LEVEL")
	if got := cfg.GetString("log.level"); got != "info" {
		t.Errorf("expected file value info, got %q", got)
	}
}

func TestConfig_TypedGetters(t *testing.T) {
	cfg, err := LoadFromString(`
count = "42"
flag = "true"
single = "one"
`, FormatTOML)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// String-typed values coerce.
	if got := cfg.GetInt("count"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if !cfg.GetBool("flag") {
		t.Error("expected flag=true")
	}
	if got := cfg.GetStringSlice("single"); !reflect.DeepEqual(got, []string{"one"}) {
		t.Errorf("expected [one], got %v", got)
	}

	// Missing keys fall back to the supplied defaults.
	if got := cfg.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
	if got := cfg.GetInt("missing", 7); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := cfg.GetBool("missing", true); !got {
		t.Error("expected true")
	}
	if got := cfg.GetStringSlice("missing", []string{"x"}); !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("expected [x], got %v", got)
	}
}

func TestConfig_SetAndHas(t *testing.T) {
	cfg, err := LoadFromString("", FormatTOML)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Has("scan.max_depth") {
		t.Error("expected key to be absent")
	}

	cfg.Set("scan.max_depth", 25)
	if !cfg.Has("scan.max_depth") {
		t.Error("expected key to be present after Set")
	}
	if got := cfg.GetInt("scan.max_depth"); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}

	// Set replaces scalars with nested maps when the path deepens.
	cfg.Set("scan", "flat")
	cfg.Set("scan.max_depth", 30)
	if got := cfg.GetInt("scan.max_depth"); got != 30 {
		t.Errorf("expected 30, got %d", got)
	}
}
