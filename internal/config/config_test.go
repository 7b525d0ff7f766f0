package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	content := "log_level: debug\nminimum_keyframe_duration_millis: 40\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.MinimumKeyframeDurationMillis != 40 {
		t.Errorf("MinimumKeyframeDurationMillis = %d, want 40", cfg.MinimumKeyframeDurationMillis)
	}
	// Everything the file omits keeps its default.
	if cfg.AutosaveInterval != 30*time.Second {
		t.Errorf("AutosaveInterval = %v, want default", cfg.AutosaveInterval)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	if err := os.WriteFile(path, []byte("log_level: loud\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("err = %v, want ErrInvalidLogLevel", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("invalid file should fall back to defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	cfg := Default()
	cfg.LogLevel = "warn"
	cfg.AddRecentFile("/sheets/walk.sheet")

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestAddRecentFile(t *testing.T) {
	cfg := Default()
	cfg.MaxRecentFiles = 3
	for _, path := range []string{"/a", "/b", "/c", "/b", "/d"} {
		cfg.AddRecentFile(path)
	}
	want := []string{"/d", "/b", "/c"}
	if !reflect.DeepEqual(cfg.RecentFiles, want) {
		t.Errorf("RecentFiles = %v, want %v", cfg.RecentFiles, want)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.AutosaveInterval = 0
	if !errors.Is(cfg.Validate(), ErrInvalidInterval) {
		t.Errorf("zero autosave interval should fail validation")
	}

	cfg = Default()
	cfg.MinimumKeyframeDurationMillis = -1
	if !errors.Is(cfg.Validate(), ErrInvalidKeyframeDuration) {
		t.Errorf("negative keyframe duration should fail validation")
	}
}
