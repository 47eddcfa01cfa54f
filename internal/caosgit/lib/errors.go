package lib

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyInitialized is returned by init when a metadata directory
	// already exists at the target path.
	ErrAlreadyInitialized = errors.New("repository already initialized")

	// ErrNotARepository is returned when no metadata directory can be found
	// in the working directory or any of its parents.
	ErrNotARepository = errors.New("not a caosgit repository (or any of the parent directories)")

	// ErrCorruptRepository is returned when HEAD, a ref, or an object does
	// not have the expected form.
	ErrCorruptRepository = errors.New("corrupt repository")

	ErrBranchNotFound = errors.New("branch not found")
	ErrBranchExists   = errors.New("branch already exists")
	ErrCommitNotFound = errors.New("commit not found")
	ErrTagNotFound    = errors.New("tag not found")

	// ErrAmbiguousCommit is returned when a hash prefix matches more than
	// one object.
	ErrAmbiguousCommit = errors.New("ambiguous commit identifier")

	// ErrInvalidRefName is returned when a branch or tag name cannot be
	// stored as a flat ref file.
	ErrInvalidRefName = errors.New("reference name is not valid")

	ErrMissingArgument = errors.New("missing argument")

	// ErrLocked is returned when the repository lock could not be acquired
	// before the deadline.
	ErrLocked = errors.New("repository is locked by another process")

	// ErrIO matches every *IOError.
	ErrIO = errors.New("i/o error")
)

// IOError reports an unexpected filesystem failure.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func ioError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
