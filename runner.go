package gobuild

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os/exec"
	"strings"
)

// run executes an assembled toolchain command and classifies the outcome.
//
// The child's stderr is drained line-by-line on its own goroutine and each
// line is forwarded to echo as a cargo:warning line, so diagnostics show up
// incrementally instead of being buffered until exit. The drain has to run
// concurrently with the child: a full pipe would otherwise deadlock the
// toolchain once its output exceeds the OS pipe buffer. The caller blocks on
// both the drain finishing and the child exiting before the status is
// inspected.
//
// label only appears in error messages. There is no timeout: a hung child
// blocks indefinitely.
func run(cmd *exec.Cmd, label string, echo io.Writer) error {
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return newError(ToolExecFailed, "failed to pipe stderr of %s: %v", cmdLine(cmd), err)
	}

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return newError(ToolNotFound, "failed to find tool. Is %s installed?", cmd.Path)
		}
		return newError(ToolExecFailed, "command %s for %q failed to start: %v", cmdLine(cmd), label, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		// ReadString has no line length cap. The drain must consume
		// everything the child writes no matter how long a line gets:
		// stopping early fills the pipe and blocks the child, which is
		// the deadlock this goroutine exists to prevent.
		reader := bufio.NewReader(stderr)
		for {
			line, err := reader.ReadString('\n')
			if len(line) > 0 {
				io.WriteString(echo, "cargo:warning="+strings.TrimSuffix(line, "\n")+"\n")
			}
			if err != nil {
				return
			}
		}
	}()

	// Join the drain before Wait: Wait closes the pipe, and all lines must
	// be flushed before the outcome is reported.
	<-done

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return newError(ToolExecFailed,
				"command %s for %q did not execute successfully (%s)",
				cmdLine(cmd), label, exitErr.ProcessState)
		}
		return newError(ToolExecFailed, "failed to wait on child process, command %s for %q: %v",
			cmdLine(cmd), label, err)
	}
	return nil
}

// cmdLine renders a command for error messages.
func cmdLine(cmd *exec.Cmd) string {
	return strings.Join(cmd.Args, " ")
}
