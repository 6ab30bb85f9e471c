package gobuild

import (
	"bytes"
	"os/exec"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell fixtures not available on windows")
	}
}

func TestRunForwardsStderrLines(t *testing.T) {
	skipWithoutShell(t)

	var buf bytes.Buffer
	cmd := exec.Command("sh", "-c", "echo one >&2; echo two >&2; echo three >&2")
	if err := run(cmd, "demo", &buf); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	expected := []string{
		"cargo:warning=one",
		"cargo:warning=two",
		"cargo:warning=three",
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("forwarded warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestRunForwardsOversizedLines(t *testing.T) {
	skipWithoutShell(t)

	// A single stderr line wider than any internal buffer, followed by a
	// normal line. The drain must swallow the whole thing and keep
	// going; stalling here fills the pipe and wedges the child.
	const lineLen = 2 * 1024 * 1024
	script := "dd if=/dev/zero bs=1024 count=2048 2>/dev/null | tr '\\0' 'a' >&2; echo >&2; echo tail-line >&2"

	var buf bytes.Buffer
	cmd := exec.Command("sh", "-c", script)

	done := make(chan error, 1)
	go func() {
		done <- run(cmd, "demo", &buf)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(30 * time.Second):
		t.Fatal("run did not return; drain stalled on an oversized line")
	}

	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(got) != 2 {
		t.Fatalf("expected 2 forwarded lines, got %d", len(got))
	}
	if expected := len("cargo:warning=") + lineLen; len(got[0]) != expected {
		t.Errorf("oversized line length = %d, expected %d", len(got[0]), expected)
	}
	if !strings.HasPrefix(got[0], "cargo:warning=aaaa") {
		t.Errorf("oversized line should be forwarded with the warning prefix, got %q", got[0][:40])
	}
	if got[1] != "cargo:warning=tail-line" {
		t.Errorf("line after the oversized one = %q, expected cargo:warning=tail-line", got[1])
	}
}

func TestRunStdoutNotForwarded(t *testing.T) {
	skipWithoutShell(t)

	var buf bytes.Buffer
	cmd := exec.Command("sh", "-c", "echo not-a-warning")
	if err := run(cmd, "demo", &buf); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("stdout should not be forwarded, got %q", buf.String())
	}
}

func TestRunExitFailure(t *testing.T) {
	skipWithoutShell(t)

	var buf bytes.Buffer
	cmd := exec.Command("sh", "-c", "echo boom >&2; exit 3")
	err := run(cmd, "demo", &buf)

	e := wantKind(t, err, ToolExecFailed)
	if !strings.Contains(e.Message, "exit status 3") {
		t.Errorf("error should carry the exit status, got %q", e.Message)
	}
	if !strings.Contains(buf.String(), "cargo:warning=boom") {
		t.Errorf("stderr must be flushed even on failure, got %q", buf.String())
	}
}

func TestRunToolNotFoundByPath(t *testing.T) {
	var buf bytes.Buffer
	cmd := exec.Command("/definitely/not/a/real/tool")
	err := run(cmd, "demo", &buf)
	wantKind(t, err, ToolNotFound)
}

func TestRunToolNotFoundByName(t *testing.T) {
	var buf bytes.Buffer
	cmd := exec.Command("definitely-not-a-real-tool-4af1c")
	err := run(cmd, "demo", &buf)
	wantKind(t, err, ToolNotFound)
}
