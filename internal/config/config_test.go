package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultHasMaxArrayLength(t *testing.T) {
	cfg := Default()
	if cfg.MaxArrayLength != 1<<16 {
		t.Errorf("Default().MaxArrayLength = %d, want %d", cfg.MaxArrayLength, 1<<16)
	}
	if cfg.OutputDir != "" || cfg.Disassemble {
		t.Errorf("Default() = %+v, want zero OutputDir and Disassemble", cfg)
	}
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load on a missing file returned an error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want %+v", cfg, Default())
	}
}

func TestLoadOverridesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pl0rc.yaml")
	contents := "outputDir: build\ndisassemble: true\nmaxArrayLength: 256\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "build" {
		t.Errorf("cfg.OutputDir = %q, want %q", cfg.OutputDir, "build")
	}
	if !cfg.Disassemble {
		t.Error("cfg.Disassemble = false, want true")
	}
	if cfg.MaxArrayLength != 256 {
		t.Errorf("cfg.MaxArrayLength = %d, want 256", cfg.MaxArrayLength)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".pl0rc.yaml")
	if err := os.WriteFile(path, []byte("outputDir: [this is not a scalar"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load on malformed YAML returned nil error")
	}
}
