package gobuild

// Translation tables from host build platform identifiers (the values of
// CARGO_CFG_TARGET_ARCH / CARGO_CFG_TARGET_OS) to the Go toolchain's
// GOARCH / GOOS vocabulary.
//
// Adding a platform means adding a table entry; callers go through GoArch
// and GoOS and never see the tables.
var (
	goarchFor = map[string]string{
		"x86":       "386",
		"x86_64":    "amd64",
		"arm":       "arm",
		"aarch64":   "arm64",
		"mips":      "mips",
		"powerpc":   "ppc",
		"powerpc64": "ppc64",
	}

	goosFor = map[string]string{
		"windows":   "windows",
		"macos":     "darwin",
		"ios":       "darwin",
		"linux":     "linux",
		"android":   "android",
		"freebsd":   "freebsd",
		"dragonfly": "dragonfly",
		"openbsd":   "openbsd",
		"netbsd":    "netbsd",
	}
)

// GoArch translates a host-reported target architecture into the toolchain's
// GOARCH value.
//
// Unrecognized architectures fail with an UnsupportedPlatform error naming
// the offending value.
func GoArch(hostArch string) (string, error) {
	if goarch, ok := goarchFor[hostArch]; ok {
		return goarch, nil
	}
	return "", newError(UnsupportedPlatform, "unknown target arch %q", hostArch)
}

// GoOS translates a host-reported target operating system into the
// toolchain's GOOS value.
//
// Unrecognized operating systems fail with an UnsupportedPlatform error
// naming the offending value.
func GoOS(hostOS string) (string, error) {
	if goos, ok := goosFor[hostOS]; ok {
		return goos, nil
	}
	return "", newError(UnsupportedPlatform, "unknown target os %q", hostOS)
}
