package internal

import (
	"fmt"
	"os"

	"github.com/contriboss/gobuild"
	"github.com/pelletier/go-toml"
)

// fileConfig mirrors the build flags in gobuild.toml form:
//
//	name = "hello"
//	buildmode = "c-shared"
//	files = ["hello.go"]
//	ldflags = "-s -w"
//	trimpath = true
//
//	[env]
//	GOFLAGS = "-mod=vendor"
type fileConfig struct {
	Name      string            `toml:"name"`
	Buildmode string            `toml:"buildmode"`
	Files     []string          `toml:"files"`
	OutDir    string            `toml:"out_dir"`
	Ldflags   string            `toml:"ldflags"`
	TrimPaths bool              `toml:"trimpath"`
	Goarch    string            `toml:"goarch"`
	Goos      string            `toml:"goos"`
	Env       map[string]string `toml:"env"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid TOML: %w", err)
	}
	return &cfg, nil
}

// apply copies the config file settings onto a Build.
func (c *fileConfig) apply(b *gobuild.Build) error {
	if c.Buildmode != "" {
		mode, err := parseBuildmode(c.Buildmode)
		if err != nil {
			return err
		}
		b.Buildmode(mode)
	}
	b.Files(c.Files)
	if c.OutDir != "" {
		b.OutDir(c.OutDir)
	}
	if c.Ldflags != "" {
		b.Ldflags(c.Ldflags)
	}
	if c.TrimPaths {
		b.TrimPaths(true)
	}
	if c.Goarch != "" {
		b.Goarch(c.Goarch)
	}
	if c.Goos != "" {
		b.Goos(c.Goos)
	}
	for k, v := range c.Env {
		b.Env(k, v)
	}
	return nil
}
