// Package commands contains the command-line facing operations of caosgit.
// Each function opens the repository, runs one operation and reports the
// result to the context's writers.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/repository"
	"github.com/spf13/afero"
)

// Context carries what every command needs: the filesystem, the directory the
// command runs from, and where to write results and warnings.
type Context struct {
	Fs  afero.Fs
	Dir string
	Out io.Writer
	Err io.Writer
}

// NewContext returns a Context on the real filesystem.
func NewContext(dir string, out, errOut io.Writer) Context {
	return Context{Fs: afero.NewOsFs(), Dir: dir, Out: out, Err: errOut}
}

func (c Context) open() (*repository.Repository, error) {
	return repository.Open(c.Fs, c.Dir)
}

// resolve makes path absolute relative to the context directory.
func (c Context) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(c.Dir, path)
}

func (c Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

func (c Context) warnf(format string, args ...any) {
	w := c.Err
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Warning: "+format+"\n", args...)
}
