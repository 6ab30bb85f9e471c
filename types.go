package gobuild

import "fmt"

// BuildMode selects the artifact kind produced by `go build -buildmode`.
//
// Only the two cgo-exporting modes are supported here; they are the ones
// that yield something a host build can link against. See `go help
// buildmode` for the full list the toolchain knows about.
type BuildMode int

const (
	// CArchive builds the listed main package, plus everything it
	// imports, into a C archive (.a). The callable symbols are the
	// functions marked with cgo //export comments. Requires exactly one
	// main package. This is the default.
	CArchive BuildMode = iota

	// CShared builds the listed main package, plus everything it
	// imports, into a C shared library (.so / .dll), with the same
	// //export symbol rules as CArchive.
	CShared
)

// String returns the value passed to the toolchain's -buildmode flag.
//
// The mapping is exhaustive over the enum; extending BuildMode means adding
// a constant and an arm here.
func (m BuildMode) String() string {
	switch m {
	case CShared:
		return "c-shared"
	default:
		return "c-archive"
	}
}

// ErrorKind classifies the ways a compile can fail.
type ErrorKind int

const (
	// ConfigurationMissing means a required setting was absent and no
	// environment fallback could supply it (e.g. no OutDir and no
	// OUT_DIR).
	ConfigurationMissing ErrorKind = iota

	// UnsupportedPlatform means a host platform identifier fell outside
	// the known mapping tables.
	UnsupportedPlatform

	// ToolNotFound means the Go toolchain or the C compiler could not be
	// located on the search path.
	ToolNotFound

	// ToolExecFailed means the toolchain process started but exited with
	// a failure, or failed to start for a reason other than being
	// missing.
	ToolExecFailed
)

// Error is the typed error returned by TryCompile and its collaborators.
//
// Every failure is terminal for the attempt: nothing in this package
// retries, and the first error anywhere in the pipeline aborts the whole
// compile call.
type Error struct {
	// Kind classifies what went wrong.
	Kind ErrorKind

	// Message is the human-readable explanation.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
