package lib

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// minPrefixLength is the shortest hash prefix ResolvePrefix accepts.
const minPrefixLength = 4

// ObjectStore is an append-only, content-addressed store of commit objects.
// Each object is a flat file under objects/ named by its hash.
type ObjectStore struct {
	fs  afero.Fs
	dir string
}

// NewObjectStore returns a store for the repository rooted at rootDir.
func NewObjectStore(fs afero.Fs, rootDir string) *ObjectStore {
	return &ObjectStore{fs: fs, dir: GetObjectsDir(rootDir)}
}

func (s *ObjectStore) objectPath(hash string) string {
	return filepath.Join(s.dir, hash)
}

// Put stores data under hash. Objects are immutable: if one already exists
// under hash it is left untouched.
func (s *ObjectStore) Put(hash string, data []byte) error {
	if !IsValidHash(hash) {
		return fmt.Errorf("put object %q: invalid identifier", hash)
	}
	exists, err := s.Has(hash)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return writeFileAtomic(s.fs, s.objectPath(hash), data, 0o644)
}

// Get returns the raw bytes of the object stored under hash.
// ErrCommitNotFound is returned if there is no such object.
func (s *ObjectStore) Get(hash string) ([]byte, error) {
	if !IsValidHash(hash) {
		return nil, fmt.Errorf("%w: %s", ErrCommitNotFound, hash)
	}
	data, err := afero.ReadFile(s.fs, s.objectPath(hash))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCommitNotFound, hash)
		}
		return nil, ioError("read", s.objectPath(hash), err)
	}
	return data, nil
}

// Has reports whether an object exists under hash.
func (s *ObjectStore) Has(hash string) (bool, error) {
	if !IsValidHash(hash) {
		return false, nil
	}
	exists, err := afero.Exists(s.fs, s.objectPath(hash))
	if err != nil {
		return false, ioError("stat", s.objectPath(hash), err)
	}
	return exists, nil
}

// List returns the identifiers of every stored object, sorted.
func (s *ObjectStore) List() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, ioError("readdir", s.dir, err)
	}

	hashes := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && IsValidHash(entry.Name()) {
			hashes = append(hashes, entry.Name())
		}
	}
	sort.Strings(hashes)
	return hashes, nil
}

// ResolvePrefix finds the single object whose identifier is or starts with
// prefix. ErrCommitNotFound is returned when nothing matches and
// ErrAmbiguousCommit when several objects do.
func (s *ObjectStore) ResolvePrefix(prefix string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if IsValidHash(prefix) {
		exists, err := s.Has(prefix)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", fmt.Errorf("%w: %s", ErrCommitNotFound, prefix)
		}
		return prefix, nil
	}
	if len(prefix) < minPrefixLength || len(prefix) > HashLength || !isLowerHex(prefix) {
		return "", fmt.Errorf("%w: %s", ErrCommitNotFound, prefix)
	}

	hashes, err := s.List()
	if err != nil {
		return "", err
	}
	var matches []string
	for _, hash := range hashes {
		if strings.HasPrefix(hash, prefix) {
			matches = append(matches, hash)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrCommitNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d commits", ErrAmbiguousCommit, prefix, len(matches))
	}
}
