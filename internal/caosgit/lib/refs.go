package lib

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/types"
	"github.com/spf13/afero"
)

// symbolicPrefix starts the content of a symbolic ref such as HEAD.
const symbolicPrefix = "ref: "

// RefStore manages HEAD, branch refs and tag refs of one repository.
//
// HEAD always holds "ref: refs/<branch>". Branch and tag refs are flat files
// under refs/ holding a commit hash, or nothing for a branch without commits.
// Tags share the directory and are told apart by TagPrefix.
type RefStore struct {
	fs      afero.Fs
	rootDir string
}

// NewRefStore returns a ref store for the repository rooted at rootDir.
func NewRefStore(fs afero.Fs, rootDir string) *RefStore {
	return &RefStore{fs: fs, rootDir: rootDir}
}

// Initialize creates the metadata directory with objects/, refs/, a HEAD
// pointing to DefaultBranch and an empty DefaultBranch ref.
// ErrAlreadyInitialized is returned if the metadata directory exists.
func (r *RefStore) Initialize() error {
	metaDir := GetMetaDir(r.rootDir)
	exists, err := afero.Exists(r.fs, metaDir)
	if err != nil {
		return ioError("stat", metaDir, err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrAlreadyInitialized, metaDir)
	}

	for _, dir := range []string{GetObjectsDir(r.rootDir), GetRefsDir(r.rootDir)} {
		if err := r.fs.MkdirAll(dir, 0o755); err != nil {
			return ioError("mkdir", dir, err)
		}
	}
	if err := r.writeHead(DefaultBranch); err != nil {
		return err
	}
	return r.WriteBranch(DefaultBranch, "")
}

// ReadHead returns the ref path HEAD points to, such as "refs/main".
// ErrCorruptRepository is returned if HEAD is missing or is not symbolic.
func (r *RefStore) ReadHead() (string, error) {
	headPath := GetHeadPath(r.rootDir)
	data, err := afero.ReadFile(r.fs, headPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: HEAD not found", ErrCorruptRepository)
		}
		return "", ioError("read", headPath, err)
	}

	content := strings.TrimRight(string(data), "\r\n")
	if !strings.HasPrefix(content, symbolicPrefix) {
		return "", fmt.Errorf("%w: HEAD is detached or malformed", ErrCorruptRepository)
	}
	target := strings.TrimPrefix(content, symbolicPrefix)
	if !strings.HasPrefix(target, RefsDirName+"/") {
		return "", fmt.Errorf("%w: HEAD points outside refs: %q", ErrCorruptRepository, target)
	}
	if err := ValidateBranchName(path.Base(target)); err != nil {
		return "", fmt.Errorf("%w: HEAD target %q: %v", ErrCorruptRepository, target, err)
	}
	return target, nil
}

// CurrentBranchName returns the name of the branch HEAD points to.
func (r *RefStore) CurrentBranchName() (string, error) {
	target, err := r.ReadHead()
	if err != nil {
		return "", err
	}
	return path.Base(target), nil
}

// CurrentCommit returns the active branch and the commit it points to. The
// hash is empty when the branch has no commits yet.
func (r *RefStore) CurrentCommit() (branch, hash string, err error) {
	branch, err = r.CurrentBranchName()
	if err != nil {
		return "", "", err
	}
	hash, err = r.ReadBranch(branch)
	if err != nil {
		if errors.Is(err, ErrBranchNotFound) {
			// The active branch ref is created on its first commit.
			return branch, "", nil
		}
		return "", "", err
	}
	return branch, hash, nil
}

// ReadBranch returns the commit hash stored in a branch ref, or an empty
// string if the branch has no commits.
func (r *RefStore) ReadBranch(name string) (string, error) {
	if err := ValidateBranchName(name); err != nil {
		return "", err
	}
	hash, err := r.readRef(name)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrBranchNotFound, name)
		}
		return "", err
	}
	if hash != "" && !IsValidHash(hash) {
		return "", fmt.Errorf("%w: branch %s holds %q", ErrCorruptRepository, name, hash)
	}
	return hash, nil
}

// WriteBranch points a branch at hash, creating the ref if needed.
func (r *RefStore) WriteBranch(name, hash string) error {
	if err := ValidateBranchName(name); err != nil {
		return err
	}
	if hash != "" && !IsValidHash(hash) {
		return fmt.Errorf("write branch %s: invalid commit hash %q", name, hash)
	}
	return r.writeRef(name, hash)
}

// BranchExists reports whether a branch ref exists.
func (r *RefStore) BranchExists(name string) (bool, error) {
	if err := ValidateBranchName(name); err != nil {
		return false, err
	}
	p := r.refPath(name)
	exists, err := afero.Exists(r.fs, p)
	if err != nil {
		return false, ioError("stat", p, err)
	}
	return exists, nil
}

// CreateBranch writes a new branch ref. ErrBranchExists is returned if the
// branch is already present.
func (r *RefStore) CreateBranch(name, hash string) error {
	exists, err := r.BranchExists(name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrBranchExists, name)
	}
	return r.WriteBranch(name, hash)
}

// SwitchHead points HEAD at an existing branch.
// ErrBranchNotFound is returned, and HEAD left alone, if the branch does not exist.
func (r *RefStore) SwitchHead(name string) error {
	exists, err := r.BranchExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrBranchNotFound, name)
	}
	return r.writeHead(name)
}

// ListBranches returns the names of all branches, sorted.
func (r *RefStore) ListBranches() ([]string, error) {
	names, err := r.refNames()
	if err != nil {
		return nil, err
	}
	branches := []string{}
	for _, name := range names {
		if ValidateBranchName(name) == nil {
			branches = append(branches, name)
		}
	}
	return branches, nil
}

// ReadTag returns the hash a tag points to.
func (r *RefStore) ReadTag(name string) (string, error) {
	if err := ValidateTagName(name); err != nil {
		return "", err
	}
	hash, err := r.readRef(TagPrefix + name)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTagNotFound, name)
		}
		return "", err
	}
	return hash, nil
}

// WriteTag creates or overwrites a tag. The target is stored as given and is
// not checked against the object store.
func (r *RefStore) WriteTag(name, hash string) error {
	if err := ValidateTagName(name); err != nil {
		return err
	}
	if hash == "" || strings.ContainsAny(hash, " \t\r\n") {
		return fmt.Errorf("write tag %s: target %q must be a single word", name, hash)
	}
	return r.writeRef(TagPrefix+name, hash)
}

// ListTags returns every tag with its target, sorted by tag name.
func (r *RefStore) ListTags() ([]types.TagRef, error) {
	names, err := r.refNames()
	if err != nil {
		return nil, err
	}
	tags := []types.TagRef{}
	for _, name := range names {
		if !strings.HasPrefix(name, TagPrefix) {
			continue
		}
		hash, err := r.readRef(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, types.TagRef{Name: strings.TrimPrefix(name, TagPrefix), Hash: hash})
	}
	return tags, nil
}

// --- internal helpers ---

func (r *RefStore) refPath(name string) string {
	return filepath.Join(GetRefsDir(r.rootDir), name)
}

// readRef returns the first line of a ref file. The raw not-exist error is
// passed through so callers can map it to the right sentinel.
func (r *RefStore) readRef(name string) (string, error) {
	p := r.refPath(name)
	data, err := afero.ReadFile(r.fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", err
		}
		return "", ioError("read", p, err)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line), nil
}

func (r *RefStore) writeRef(name, hash string) error {
	return writeFileAtomic(r.fs, r.refPath(name), []byte(hash+"\n"), 0o644)
}

func (r *RefStore) writeHead(branch string) error {
	content := symbolicPrefix + RefsDirName + "/" + branch + "\n"
	return writeFileAtomic(r.fs, GetHeadPath(r.rootDir), []byte(content), 0o644)
}

// refNames lists the regular files in refs/, sorted by name.
func (r *RefStore) refNames() ([]string, error) {
	refsDir := GetRefsDir(r.rootDir)
	entries, err := afero.ReadDir(r.fs, refsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: refs directory not found", ErrCorruptRepository)
		}
		return nil, ioError("readdir", refsDir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.Mode().IsRegular() && !strings.HasPrefix(entry.Name(), ".") {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
