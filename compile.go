package gobuild

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
)

// Platform constants
const (
	platformWindows = "windows"
)

// libFileName computes the conventional artifact filename for a library.
//
// The name always carries the "lib" prefix; the extension is ".a" for a C
// archive, and for a shared library ".dll" on windows hosts, ".so"
// elsewhere.
func libFileName(libName string, mode BuildMode, hostOS string) string {
	switch mode {
	case CShared:
		if hostOS == platformWindows {
			return "lib" + libName + ".dll"
		}
		return "lib" + libName + ".so"
	default:
		return "lib" + libName + ".a"
	}
}

// TryCompile runs the toolchain, producing lib<libName>.<ext> in the output
// directory.
//
// The compile resolves its settings in this order: output filename and
// directory, rerun-if-changed directives for every source file, the C
// compiler for cgo, then the full toolchain command and environment. The
// command is supervised by run; on success the linkage directives for the
// host build are emitted. Any failure aborts immediately with a typed
// *Error and nothing is retried.
func (b *Build) TryCompile(libName string) error {
	dst, err := b.resolveOutDir()
	if err != nil {
		return err
	}
	out := filepath.Join(dst, libFileName(libName, b.buildmode, runtime.GOOS))

	for _, f := range b.files {
		b.println("cargo:rerun-if-changed=" + f)
	}

	cc, err := resolveCCompiler()
	if err != nil {
		return err
	}

	env, err := b.buildEnv(cc)
	if err != nil {
		return err
	}

	cmd := exec.Command(b.compiler, b.buildArgs(out)...)
	cmd.Env = env

	if err := run(cmd, libName, b.stdout); err != nil {
		return err
	}

	switch b.buildmode {
	case CShared:
		b.println("cargo:rustc-link-lib=dylib=" + libName)
	default:
		b.println("cargo:rustc-link-lib=static=" + libName)
	}
	b.println("cargo:rustc-link-search=native=" + dst)
	return nil
}

// Compile runs the toolchain, producing lib<libName>.<ext> in the output
// directory.
//
// Fail-fast variant of TryCompile for build scripts that have no error
// handling of their own: any failure prints a message to stderr and
// terminates the process with exit code 1.
func (b *Build) Compile(libName string) {
	if err := b.TryCompile(libName); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildArgs assembles the toolchain argument list for one invocation,
// ending with the source files in the order they were added.
func (b *Build) buildArgs(outPath string) []string {
	args := []string{"build", "-buildmode", b.buildmode.String(), "-o", outPath}
	if b.ldflags != "" {
		args = append(args, "-ldflags", b.ldflags)
	}
	if b.trimPaths {
		args = append(args, "-trimpath")
	}
	return append(args, b.files...)
}

// buildEnv assembles the toolchain process environment: the inherited
// environment, then the cgo interoperation variables and the resolved
// target platform, then the caller's Env entries. Later entries win, so
// caller overrides beat every computed default.
func (b *Build) buildEnv(ccPath string) ([]string, error) {
	goarch, err := b.resolveGoarch()
	if err != nil {
		return nil, err
	}
	goos, err := b.resolveGoos()
	if err != nil {
		return nil, err
	}

	env := os.Environ()
	env = append(env,
		"CGO_ENABLED=1",
		"CC="+ccPath,
		"GOARCH="+goarch,
		"GOOS="+goos,
	)

	keys := make([]string, 0, len(b.env))
	for k := range b.env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+b.env[k])
	}
	return env, nil
}

// resolveOutDir returns the explicit output directory, falling back to the
// host build's OUT_DIR. A set-but-empty OUT_DIR counts as present.
func (b *Build) resolveOutDir() (string, error) {
	if b.outDir != "" {
		return b.outDir, nil
	}
	if dir, ok := os.LookupEnv("OUT_DIR"); ok {
		return dir, nil
	}
	return "", newError(ConfigurationMissing, "environment variable OUT_DIR not defined")
}

// resolveGoarch returns the explicit GOARCH override, falling back to the
// host build's target architecture variable translated via GoArch. A
// set-but-empty variable is passed to the mapper and fails as an
// unsupported value, not as a missing one.
func (b *Build) resolveGoarch() (string, error) {
	if b.goarch != "" {
		return b.goarch, nil
	}
	arch, ok := os.LookupEnv("CARGO_CFG_TARGET_ARCH")
	if !ok {
		return "", newError(ConfigurationMissing, "cannot find CARGO_CFG_TARGET_ARCH env var")
	}
	return GoArch(arch)
}

// resolveGoos returns the explicit GOOS override, falling back to the host
// build's target OS variable translated via GoOS. Presence semantics match
// resolveGoarch.
func (b *Build) resolveGoos() (string, error) {
	if b.goos != "" {
		return b.goos, nil
	}
	goos, ok := os.LookupEnv("CARGO_CFG_TARGET_OS")
	if !ok {
		return "", newError(ConfigurationMissing, "cannot find CARGO_CFG_TARGET_OS env var")
	}
	return GoOS(goos)
}
