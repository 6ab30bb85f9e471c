package gobuild

import (
	"errors"
	"strings"
	"testing"
)

// wantKind asserts that err is a *Error of the given kind.
func wantKind(t *testing.T, err error, kind ErrorKind) *Error {
	t.Helper()

	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *gobuild.Error, got %T: %v", err, err)
	}
	if e.Kind != kind {
		t.Errorf("expected error kind %d, got %d (%v)", kind, e.Kind, e)
	}
	return e
}

func TestGoArch(t *testing.T) {
	testCases := []struct {
		hostArch string
		goarch   string
	}{
		{"x86", "386"},
		{"x86_64", "amd64"},
		{"arm", "arm"},
		{"aarch64", "arm64"},
		{"mips", "mips"},
		{"powerpc", "ppc"},
		{"powerpc64", "ppc64"},
	}

	for _, tc := range testCases {
		t.Run(tc.hostArch, func(t *testing.T) {
			goarch, err := GoArch(tc.hostArch)
			if err != nil {
				t.Fatalf("GoArch(%s) returned error: %v", tc.hostArch, err)
			}
			if goarch != tc.goarch {
				t.Errorf("GoArch(%s) = %s, expected %s", tc.hostArch, goarch, tc.goarch)
			}
		})
	}
}

func TestGoArchUnknown(t *testing.T) {
	_, err := GoArch("sparc")
	e := wantKind(t, err, UnsupportedPlatform)
	if !strings.Contains(e.Message, "sparc") {
		t.Errorf("error message should name the offending arch, got %q", e.Message)
	}
}

func TestGoOS(t *testing.T) {
	testCases := []struct {
		hostOS string
		goos   string
	}{
		{"windows", "windows"},
		{"macos", "darwin"},
		{"ios", "darwin"},
		{"linux", "linux"},
		{"android", "android"},
		{"freebsd", "freebsd"},
		{"dragonfly", "dragonfly"},
		{"openbsd", "openbsd"},
		{"netbsd", "netbsd"},
	}

	for _, tc := range testCases {
		t.Run(tc.hostOS, func(t *testing.T) {
			goos, err := GoOS(tc.hostOS)
			if err != nil {
				t.Fatalf("GoOS(%s) returned error: %v", tc.hostOS, err)
			}
			if goos != tc.goos {
				t.Errorf("GoOS(%s) = %s, expected %s", tc.hostOS, goos, tc.goos)
			}
		})
	}
}

func TestGoOSUnknown(t *testing.T) {
	_, err := GoOS("plan9")
	e := wantKind(t, err, UnsupportedPlatform)
	if !strings.Contains(e.Message, "plan9") {
		t.Errorf("error message should name the offending os, got %q", e.Message)
	}
}
