package gobuild

import (
	"os"
	"os/exec"
	"strings"
)

// ToolRequirement describes an external tool the compile needs.
//
// A requirement is satisfied by its primary Name or by any entry in
// Alternatives, whichever is found on PATH first. Purpose is a
// human-readable note used in error messages.
//
//	ToolRequirement{
//	    Name:         "cc",
//	    Alternatives: []string{"gcc", "clang"},
//	    Purpose:      "C compiler (required for cgo)",
//	}
type ToolRequirement struct {
	// Name is the primary tool binary name (e.g. "go", "cc").
	Name string

	// Alternatives are other binary names that satisfy this requirement.
	Alternatives []string

	// Purpose describes why the tool is needed, for error messages.
	Purpose string
}

// cCompiler is the toolchain requirement cgo interoperation depends on.
//
// The CC environment variable takes precedence over the PATH search; see
// resolveCCompiler.
var cCompiler = ToolRequirement{
	Name:         "cc",
	Alternatives: []string{"gcc", "clang"},
	Purpose:      "C compiler (required for cgo)",
}

// CheckToolAvailable reports whether a tool is available on PATH.
//
// Returns nil if found, or a ToolNotFound error naming the tool.
func CheckToolAvailable(tool string) error {
	if _, err := exec.LookPath(tool); err != nil {
		return newError(ToolNotFound, "%s not found in PATH", tool)
	}
	return nil
}

// ResolveTool locates a required tool, trying the primary name and then
// each alternative in order, and returns its path.
//
// Fails with ToolNotFound listing every name tried when nothing matches.
func ResolveTool(req ToolRequirement) (string, error) {
	names := append([]string{req.Name}, req.Alternatives...)
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	if req.Purpose != "" {
		return "", newError(ToolNotFound, "none of %s found in PATH (required for: %s)",
			strings.Join(names, ", "), req.Purpose)
	}
	return "", newError(ToolNotFound, "none of %s found in PATH", strings.Join(names, ", "))
}

// CheckRequiredTools verifies that every requirement in the list can be
// satisfied, returning all missing tools in a single error.
func CheckRequiredTools(requirements []ToolRequirement) error {
	var missing []string

	for _, req := range requirements {
		if _, err := ResolveTool(req); err != nil {
			if req.Purpose != "" {
				missing = append(missing, req.Name+" ("+req.Purpose+")")
			} else {
				missing = append(missing, req.Name)
			}
		}
	}

	if len(missing) == 0 {
		return nil
	}
	if len(missing) == 1 {
		return newError(ToolNotFound, "%s not found in PATH", missing[0])
	}
	return newError(ToolNotFound, "missing required tools: %s", strings.Join(missing, ", "))
}

// resolveCCompiler returns the C compiler the toolchain process should use.
//
// An explicit CC environment variable is taken verbatim; otherwise the
// cCompiler requirement is resolved from PATH.
func resolveCCompiler() (string, error) {
	if cc := os.Getenv("CC"); cc != "" {
		return cc, nil
	}
	path, err := ResolveTool(cCompiler)
	if err != nil {
		return "", newError(ToolNotFound, "could not find c compiler: %v", err)
	}
	return path, nil
}
