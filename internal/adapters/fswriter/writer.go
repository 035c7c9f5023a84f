// Package fswriter stores assembled pages as text files in a DokuWiki
// data/pages tree.
package fswriter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"filmwiki/internal/domain"
)

// swapped in tests to simulate failing renames
var renameFunc = os.Rename

// ConflictError reports a page path that exists but is not a regular file.
type ConflictError struct {
	Path string
	Got  string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("page path %q is a %s, not a regular file", e.Path, e.Got)
}

func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}

// Writer replaces page files atomically: readers of the wiki see either the
// old page or the new one, never a partial write.
type Writer struct {
	perm os.FileMode
}

var _ domain.PageWriter = (*Writer)(nil)

func New() *Writer { return &Writer{perm: 0o644} }

// WritePage writes lines, each terminated by "\n", to dir/name. Missing
// directories are created.
func (w *Writer) WritePage(dir, name string, lines []string) error {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid page file name %q", name)
	}
	dst := filepath.Join(filepath.Clean(dir), name)
	if fi, err := os.Lstat(dst); err == nil {
		if fi.IsDir() {
			return &ConflictError{Path: dst, Got: "directory"}
		}
		if !fi.Mode().IsRegular() {
			return &ConflictError{Path: dst, Got: fi.Mode().Type().String()}
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return w.writeAtomic(dir, name, []byte(b.String()))
}

func (w *Writer) writeAtomic(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	dst := filepath.Join(dir, name)

	// DokuWiki ignores dot files, so a leftover temp file never shows up as a page.
	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(w.perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := renameFunc(tmpName, dst); err != nil {
		return fmt.Errorf("replace %s: %w", dst, err)
	}
	_ = syncDir(dir)
	return nil
}

func syncDir(dir string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
