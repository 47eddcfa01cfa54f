package lib

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/afero"
)

const lockRetryDelay = 5 * time.Millisecond

// Lock is an advisory, process-wide lock on a repository's metadata
// directory. It is held by creating the lock file exclusively.
type Lock struct {
	fs   afero.Fs
	path string
}

// AcquireLock creates .caosgit/lock, retrying until timeout elapses.
// ErrLocked is returned if another holder keeps the lock past the deadline.
func AcquireLock(fs afero.Fs, rootDir string, timeout time.Duration) (*Lock, error) {
	lockPath := GetLockPath(rootDir)
	deadline := time.Now().Add(timeout)
	for {
		f, err := fs.OpenFile(lockPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			_, writeErr := f.WriteString(strconv.Itoa(os.Getpid()) + "\n")
			closeErr := f.Close()
			if writeErr != nil || closeErr != nil {
				fs.Remove(lockPath)
				return nil, ioError("write", lockPath, firstError(writeErr, closeErr))
			}
			return &Lock{fs: fs, path: lockPath}, nil
		}
		if !os.IsExist(err) {
			return nil, ioError("create", lockPath, err)
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("%w: %s exists; if no other caosgit process is running, remove it and retry", ErrLocked, lockPath)
		}
		time.Sleep(lockRetryDelay)
	}
}

// Release removes the lock file.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	if err := l.fs.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return ioError("remove", l.path, err)
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
