package discover

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// vsiPrefix marks GDAL-style virtual filesystem paths such as
// /vsiaz/container or /vsizip/archive.zip.
const vsiPrefix = "/vsi"

// IsVirtualPath reports whether path addresses a virtual file system:
// either a scheme separator ("az://container") or a /vsi-style
// prefix. Pure string test, no I/O, no existence check.
func IsVirtualPath(p string) bool {
	return strings.Contains(p, "://") || strings.HasPrefix(p, vsiPrefix)
}

// Lister is the narrow contract a virtual-filesystem driver satisfies:
// return a directory's child names, or classify the failure. A path
// that exists but is not a directory must yield an error matching
// ErrNotDirectory; a path that does not exist must match ErrNotFound.
// Every other error is unclassified and aborts the traversal.
type Lister interface {
	ListDir(path string) ([]string, error)
}

// Walker discovers files under local and virtual roots. Build one
// with New; the zero value is not usable.
type Walker struct {
	opts options
}

// New returns a Walker. Without WithLister, virtual roots fail with
// ErrNoLister; without WithFs, local roots use the OS filesystem.
func New(opts ...Option) *Walker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Walker{opts: o}
}

// ListRecursive returns every file under root whose final path
// component matches pattern, recursing through subdirectories. A root
// that does not exist yields an empty list, not an error. Result
// order follows the traversal and is not sorted.
func (w *Walker) ListRecursive(root, pattern string) ([]string, error) {
	if IsVirtualPath(root) {
		return w.listVirtual(root, pattern)
	}
	return w.listLocal(root, pattern)
}

// ListRecursive is the package-level convenience over a default
// Walker: OS filesystem only, no virtual driver.
func ListRecursive(root, pattern string) ([]string, error) {
	return New().ListRecursive(root, pattern)
}

// listVirtual walks root with an explicit stack of directories, one
// blocking ListDir call per directory. Leaves are paths the driver
// rejects as ErrNotDirectory.
func (w *Walker) listVirtual(root, pattern string) ([]string, error) {
	if w.opts.lister == nil {
		return nil, fmt.Errorf("virtual root %q: %w", root, ErrNoLister)
	}

	var files []string
	dirs := []string{root}
	for len(dirs) > 0 {
		dir := dirs[len(dirs)-1]
		dirs = dirs[:len(dirs)-1]

		w.opts.log.Debug("listing virtual directory", zap.String("path", dir))
		names, err := w.opts.lister.ListDir(dir)
		switch {
		case err == nil:
			for _, name := range names {
				dirs = append(dirs, dir+"/"+name)
			}
		case errors.Is(err, ErrNotDirectory):
			files = append(files, dir)
		case errors.Is(err, ErrNotFound) && dir == root:
			// Compatibility with non-recursive listing: a missing
			// root is an empty result, not a failure.
			return nil, nil
		default:
			w.opts.log.Error("virtual listing failed",
				zap.String("path", dir), zap.Error(err))
			return nil, err
		}
	}

	matched := make([]string, 0, len(files))
	for _, f := range files {
		ok, err := doublestar.Match(pattern, path.Base(f))
		if err != nil {
			return nil, fmt.Errorf("discover: pattern %q: %w", pattern, err)
		}
		if ok {
			matched = append(matched, f)
		}
	}
	return matched, nil
}

// listLocal globs root/**/pattern on the configured filesystem.
func (w *Walker) listLocal(root, pattern string) ([]string, error) {
	ok, err := afero.DirExists(w.opts.fs, root)
	if err != nil {
		return nil, fmt.Errorf("discover: stat %q: %w", root, err)
	}
	if !ok {
		return nil, nil
	}

	fsys := afero.NewIOFS(afero.NewBasePathFs(w.opts.fs, root))
	matches, err := doublestar.Glob(fsys, "**/"+filepath.ToSlash(pattern))
	if err != nil {
		return nil, fmt.Errorf("discover: glob %q under %q: %w", pattern, root, err)
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = filepath.Join(root, filepath.FromSlash(m))
	}
	return out, nil
}
