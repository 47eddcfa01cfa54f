package lib

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/types"
	"github.com/spf13/afero"
)

// Scanner captures the working tree under Root into a Snapshot.
type Scanner struct {
	Fs     afero.Fs
	Root   string
	Ignore *IgnoreMatcher
}

// Scan walks the tree and reads every regular file into memory. The
// metadata directory and anything matched by Ignore are left out.
// Directories that cannot be listed for lack of permission are skipped;
// any other failure, including a file that cannot be read, is returned as an
// *IOError.
//
// Files are read whole, so very large trees are bounded by available memory.
func (s Scanner) Scan() (types.Snapshot, error) {
	snapshot := make(types.Snapshot)

	// afero.Walk lstats its root, so a symlinked root is resolved first.
	root := s.Root
	if _, ok := s.Fs.(*afero.OsFs); ok {
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			root = resolved
		}
	}

	err := afero.Walk(s.Fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsPermission(err) {
				if info != nil && info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return ioError("walk", path, err)
		}

		if path == root {
			return nil
		}

		relativePath, err := filepath.Rel(root, path)
		if err != nil {
			return ioError("walk", path, err)
		}
		// Snapshot keys are slash-separated on every platform.
		slashedPath := filepath.ToSlash(relativePath)

		if isMetaPath(slashedPath) || s.Ignore.Ignored(slashedPath, info.IsDir()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		content, err := afero.ReadFile(s.Fs, path)
		if err != nil {
			return ioError("read", path, err)
		}
		snapshot[slashedPath] = content
		return nil
	})
	// A root that cannot be listed surfaces as SkipDir from afero.Walk.
	if err != nil && !errors.Is(err, filepath.SkipDir) {
		return nil, err
	}

	return snapshot, nil
}

func isMetaPath(slashedPath string) bool {
	return slashedPath == MetaDirName || strings.HasPrefix(slashedPath, MetaDirName+"/")
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers never observe a partially written file.
func writeFileAtomic(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(fs, dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return ioError("create", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		fs.Remove(tmpName)
		return ioError("write", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		fs.Remove(tmpName)
		return ioError("close", tmpName, err)
	}
	if err := fs.Chmod(tmpName, perm); err != nil {
		fs.Remove(tmpName)
		return ioError("chmod", tmpName, err)
	}
	if err := fs.Rename(tmpName, path); err != nil {
		fs.Remove(tmpName)
		return ioError("rename", path, err)
	}
	return nil
}
