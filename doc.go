// Package gobuild compiles Go source trees into linkable artifacts for a
// host build system.
//
// It is the Go counterpart of the cc-style build helpers: a build script
// configures a Build, calls Compile, and gets back a C archive (libfoo.a) or
// a C shared library (libfoo.so / libfoo.dll) in the host-provided output
// directory, together with the linkage directives the host build needs on
// stdout.
//
// # Basic Usage
//
// Compile hello.go into a static archive named libhello.a:
//
//	b := gobuild.NewBuild()
//	b.File("hello.go")
//	b.Compile("hello")
//
// The same, with a typed error instead of fail-fast process termination:
//
//	if err := gobuild.NewBuild().File("hello.go").TryCompile("hello"); err != nil {
//	    // handle err
//	}
//
// Alongside the archive, `go build -buildmode=c-archive` writes a C header
// suitable for binding generation downstream.
//
// # Host Build Contract
//
// The package follows the Cargo build-script conventions:
//
//   - OUT_DIR is the default output directory when OutDir is not set
//   - CARGO_CFG_TARGET_ARCH and CARGO_CFG_TARGET_OS provide the target
//     platform, translated to GOARCH/GOOS via the mapping tables in
//     platform.go
//   - linkage metadata is emitted as cargo:rustc-link-lib and
//     cargo:rustc-link-search lines on stdout
//   - every line the Go toolchain writes to stderr is forwarded as a
//     cargo:warning line while the compile is still running
//
// # Toolchain Requirements
//
// The `go` tool must be on PATH (or be pointed at with Compiler), and a C
// compiler must be resolvable for cgo: the CC environment variable if set,
// otherwise the first of cc, gcc, clang found on PATH.
//
// # Command Line
//
// cmd/gobuild wraps the library for build scripts written in other
// languages:
//
//	gobuild build --buildmode c-shared -o hello hello.go
//
// # Platform Support
//
// Cross-compilation is driven by the target platform variables or the
// Goarch/Goos overrides; the artifact is produced by the Go toolchain, so
// any GOOS/GOARCH pair the installed toolchain supports works here.
package gobuild
