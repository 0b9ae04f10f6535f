package extdep

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrMissingDependency indicates an optional external tool or library
// that is not installed. Wrapped messages carry install guidance.
var ErrMissingDependency = errors.New("extdep: required dependency is not installed")

// installNames maps import names whose installable package is spelled
// differently; every other name falls back to itself (normalized).
var installNames = map[string]string{
	"cv2":     "opencv-python",
	"skimage": "scikit-image",
}

// Executable is a resolved command-line tool.
type Executable struct {
	// Name is the absolute path resolved by Which.
	Name string
}

// Which searches PATH for name. Returns ErrMissingDependency with
// install guidance when the command cannot be found.
func Which(name string) (Executable, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return Executable{}, fmt.Errorf("%s: %w", InstallHint(name), ErrMissingDependency)
	}
	return Executable{Name: path}, nil
}

// Run invokes the executable with args and returns its combined
// stdout/stderr. A non-zero exit wraps the underlying error; the
// captured output is returned either way.
func (e Executable) Run(ctx context.Context, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, e.Name, args...).CombinedOutput()
	if err != nil {
		return out, fmt.Errorf("extdep: %s %s: %w", e.Name, strings.Join(args, " "), err)
	}
	return out, nil
}

// InstallName maps a library import name to the package name to
// install: the first dot-separated segment is looked up in the alias
// table and otherwise returned with underscores normalized to
// hyphens.
func InstallName(module string) string {
	base, _, _ := strings.Cut(module, ".")
	if pkg, ok := installNames[base]; ok {
		return pkg
	}
	return strings.ReplaceAll(base, "_", "-")
}

// InstallHint renders the guidance message used when module is
// missing.
func InstallHint(module string) string {
	return fmt.Sprintf(
		"%s is not installed and is required to use this dataset; install it and retry",
		InstallName(module))
}

// InDir runs fn with the process working directory switched to dir,
// restoring the previous directory afterwards. With create set, dir
// and its parents are created first. The working directory is
// process-global: do not call concurrently with code that depends on
// it.
func InDir(dir string, create bool, fn func() error) error {
	if create {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("extdep: create %q: %w", dir, err)
		}
	}
	prev, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("extdep: getwd: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("extdep: chdir %q: %w", dir, err)
	}
	defer func() { _ = os.Chdir(prev) }()
	return fn()
}
