package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobuild.toml")
	content := `name = "hello"
buildmode = "c-shared"
files = ["hello.go", "callbacks.go"]
ldflags = "-s -w"
trimpath = true

[env]
GOFLAGS = "-mod=vendor"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}

	if cfg.Name != "hello" {
		t.Errorf("Name = %q, expected hello", cfg.Name)
	}
	if cfg.Buildmode != "c-shared" {
		t.Errorf("Buildmode = %q, expected c-shared", cfg.Buildmode)
	}
	if len(cfg.Files) != 2 || cfg.Files[0] != "hello.go" {
		t.Errorf("Files = %v, expected [hello.go callbacks.go]", cfg.Files)
	}
	if !cfg.TrimPaths {
		t.Error("expected trimpath to be true")
	}
	if cfg.Env["GOFLAGS"] != "-mod=vendor" {
		t.Errorf("Env[GOFLAGS] = %q, expected -mod=vendor", cfg.Env["GOFLAGS"])
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobuild.toml")
	if err := os.WriteFile(path, []byte("name = [not toml"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := loadConfig(path); err == nil {
		t.Error("expected an error for invalid TOML")
	}
}

func TestParseBuildmode(t *testing.T) {
	if _, err := parseBuildmode("c-archive"); err != nil {
		t.Errorf("c-archive should parse: %v", err)
	}
	if _, err := parseBuildmode("c-shared"); err != nil {
		t.Errorf("c-shared should parse: %v", err)
	}
	if _, err := parseBuildmode("pie"); err == nil {
		t.Error("expected an error for unsupported buildmode")
	}
}
