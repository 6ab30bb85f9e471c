package gobuild

import (
	"io"
	"os"
)

// Build is a builder-style configuration for one compilation of a Go
// project.
//
// A Build is assembled through chained setter calls and then consumed by
// Compile or TryCompile. It is single-use: construct one Build per
// compilation and do not mutate it concurrently.
//
//	b := gobuild.NewBuild()
//	b.Files([]string{"bridge.go", "callbacks.go"})
//	b.Buildmode(gobuild.CShared)
//	b.Ldflags("-s -w")
//	b.Compile("bridge")
type Build struct {
	files         []string
	env           map[string]string
	outDir        string
	buildmode     BuildMode
	compiler      string
	goarch        string
	goos          string
	cargoMetadata bool
	ldflags       string
	trimPaths     bool

	// stdout carries the metadata and warning lines; swapped out in
	// tests.
	stdout io.Writer
}

// NewBuild returns a blank configuration.
//
// The defaults are CArchive buildmode, the `go` tool from PATH, metadata
// emission enabled, and platform/output settings taken from the host build
// environment at compile time.
func NewBuild() *Build {
	return &Build{
		env:           map[string]string{},
		buildmode:     CArchive,
		compiler:      "go",
		cargoMetadata: true,
		stdout:        os.Stdout,
	}
}

// File adds a source file to compile.
//
// Files are passed to the toolchain in the order added; duplicates are kept.
func (b *Build) File(p string) *Build {
	b.files = append(b.files, p)
	return b
}

// Files adds several source files to compile.
func (b *Build) Files(ps []string) *Build {
	for _, p := range ps {
		b.File(p)
	}
	return b
}

// Env inserts or updates an environment variable for the toolchain process.
//
// Keys are unique, last write wins. Variables set here override every value
// the compile computes itself, including CGO_ENABLED, CC, GOARCH and GOOS.
func (b *Build) Env(key, val string) *Build {
	b.env[key] = val
	return b
}

// OutDir sets the directory the artifact is written to.
//
// Build scripts normally leave this unset and let the compile fall back to
// the OUT_DIR environment variable provided by the host build.
func (b *Build) OutDir(dir string) *Build {
	b.outDir = dir
	return b
}

// Buildmode selects the artifact kind. Default: CArchive.
func (b *Build) Buildmode(mode BuildMode) *Build {
	b.buildmode = mode
	return b
}

// Compiler overrides the Go tool used to produce output.
//
// Default: `go`, resolved from PATH.
func (b *Build) Compiler(path string) *Build {
	b.compiler = path
	return b
}

// Goarch overrides GOARCH for the toolchain process.
//
// When unset, GOARCH is derived from the host build's target architecture
// variable via GoArch.
func (b *Build) Goarch(arch string) *Build {
	b.goarch = arch
	return b
}

// Goos overrides GOOS for the toolchain process.
//
// When unset, GOOS is derived from the host build's target OS variable via
// GoOS.
func (b *Build) Goos(goos string) *Build {
	b.goos = goos
	return b
}

// CargoMetadata controls whether linkage metadata is emitted for the host
// build. Defaults to true.
//
// The emitted lines are:
//
//	cargo:rerun-if-changed=<file>          (one per source file)
//	cargo:rustc-link-lib=static|dylib=<lib>
//	cargo:rustc-link-search=native=<out dir>
//
// Child diagnostic forwarding (cargo:warning lines) is not affected by this
// flag.
func (b *Build) CargoMetadata(enabled bool) *Build {
	b.cargoMetadata = enabled
	return b
}

// Ldflags sets the linker flags passed to the toolchain via -ldflags.
func (b *Build) Ldflags(flags string) *Build {
	b.ldflags = flags
	return b
}

// TrimPaths removes file system paths from the resulting artifact.
//
// See the -trimpath flag in `go help build`.
func (b *Build) TrimPaths(trim bool) *Build {
	b.trimPaths = trim
	return b
}

// println writes one metadata line, honoring the CargoMetadata gate.
func (b *Build) println(line string) {
	if b.cargoMetadata {
		io.WriteString(b.stdout, line+"\n")
	}
}
