// Package repository implements caosgit's repository operations on top of
// the object store, the reference store and the working tree scanner.
//
// A Repository is opened once per command. It holds the resolved root and the
// loaded settings and is never re-rooted afterwards.
package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/lib"
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/types"
	"github.com/spf13/afero"
)

// Repository is an opened caosgit repository.
type Repository struct {
	fs       afero.Fs
	root     string
	settings lib.Settings
	objects  *lib.ObjectStore
	refs     *lib.RefStore
	merger   Merger
	getenv   func(string) string
}

// Option configures a Repository when it is opened.
type Option func(*Repository)

// WithMerger replaces the strategy used to build merge snapshots.
func WithMerger(m Merger) Option {
	return func(r *Repository) {
		r.merger = m
	}
}

// WithEnv replaces os.Getenv as the source of environment overrides.
func WithEnv(getenv func(string) string) Option {
	return func(r *Repository) {
		r.getenv = getenv
	}
}

// Init creates a new repository at path, creating path itself if needed.
// ErrAlreadyInitialized is returned if path already holds a repository.
func Init(fs afero.Fs, path string, opts ...Option) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("could not resolve absolute path for %s: %w", path, err)
	}
	if err := fs.MkdirAll(absPath, 0o755); err != nil {
		return nil, &lib.IOError{Op: "mkdir", Path: absPath, Err: err}
	}
	absPath = canonicalPath(fs, absPath)

	if err := lib.NewRefStore(fs, absPath).Initialize(); err != nil {
		return nil, err
	}
	return load(fs, absPath, opts)
}

// Open finds the repository containing dir by walking up through its
// parents. ErrNotARepository is returned if the filesystem root is reached
// without finding a metadata directory.
func Open(fs afero.Fs, dir string, opts ...Option) (*Repository, error) {
	root, err := FindRoot(fs, dir)
	if err != nil {
		return nil, err
	}
	return load(fs, root, opts)
}

// FindRoot returns the closest directory, starting at dir and going up,
// that contains a metadata directory.
func FindRoot(fs afero.Fs, dir string) (string, error) {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("could not resolve absolute path for %s: %w", dir, err)
	}
	cur = canonicalPath(fs, cur)

	for {
		info, err := fs.Stat(lib.GetMetaDir(cur))
		if err == nil && info.IsDir() {
			return cur, nil
		}
		if err != nil && !os.IsNotExist(err) && !os.IsPermission(err) {
			return "", &lib.IOError{Op: "stat", Path: lib.GetMetaDir(cur), Err: err}
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", lib.ErrNotARepository
		}
		cur = parent
	}
}

// canonicalPath resolves symlinks in an absolute path on the OS filesystem.
// The walk lstats the root, so a symlinked root would otherwise look empty.
// On error, or on filesystems without symlinks, absPath is returned unchanged.
func canonicalPath(fs afero.Fs, absPath string) string {
	if _, ok := fs.(*afero.OsFs); !ok {
		return absPath
	}
	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return absPath
	}
	return resolved
}

func load(fs afero.Fs, root string, opts []Option) (*Repository, error) {
	r := &Repository{
		fs:      fs,
		root:    root,
		objects: lib.NewObjectStore(fs, root),
		refs:    lib.NewRefStore(fs, root),
		merger:  MarkerMerger{},
		getenv:  os.Getenv,
	}
	for _, opt := range opts {
		opt(r)
	}

	settings, err := lib.LoadSettings(fs, root, r.getenv)
	if err != nil {
		return nil, err
	}
	r.settings = settings
	return r, nil
}

// Root returns the absolute path of the working tree root.
func (r *Repository) Root() string {
	return r.root
}

// Settings returns the settings loaded from the repository config.
func (r *Repository) Settings() lib.Settings {
	return r.settings
}

// CurrentBranch returns the name of the branch HEAD points to.
func (r *Repository) CurrentBranch() (string, error) {
	return r.refs.CurrentBranchName()
}

// Branches returns every branch name, sorted.
func (r *Repository) Branches() ([]string, error) {
	return r.refs.ListBranches()
}

// Commits returns the identifiers of every stored commit object, sorted,
// including orphaned ones.
func (r *Repository) Commits() ([]string, error) {
	return r.objects.List()
}

// HasCommit reports whether an object is stored under hash.
func (r *Repository) HasCommit(hash string) (bool, error) {
	return r.objects.Has(hash)
}

// ReadCommit loads and decodes the commit stored under hash.
func (r *Repository) ReadCommit(hash string) (types.Commit, error) {
	data, err := r.objects.Get(hash)
	if err != nil {
		return types.Commit{}, err
	}
	commit, err := lib.DecodeCommit(data)
	if err != nil {
		return types.Commit{}, fmt.Errorf("commit %s: %w", hash, err)
	}
	commit.Hash = hash
	return commit, nil
}

// scanWorkingTree captures the current working tree, honoring the ignore file.
func (r *Repository) scanWorkingTree() (types.Snapshot, error) {
	ignore, err := lib.LoadIgnoreMatcher(r.fs, r.root, r.settings.IgnoreFile)
	if err != nil {
		return nil, err
	}
	scanner := lib.Scanner{Fs: r.fs, Root: r.root, Ignore: ignore}
	return scanner.Scan()
}

// withLock runs fn while holding the repository lock, if locking is enabled.
func (r *Repository) withLock(fn func() error) (err error) {
	if !r.settings.LockRefs {
		return fn()
	}
	lock, err := lib.AcquireLock(r.fs, r.root, r.settings.LockTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := lock.Release(); err == nil {
			err = releaseErr
		}
	}()
	return fn()
}
