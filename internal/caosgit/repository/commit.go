package repository

import (
	"fmt"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/lib"
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/types"
)

// Commit snapshots the whole working tree into a new commit on the current
// branch and returns its hash. A commit is written even if nothing changed.
func (r *Repository) Commit(message string) (string, error) {
	var hash string
	err := r.withLock(func() error {
		snapshot, err := r.scanWorkingTree()
		if err != nil {
			return fmt.Errorf("failed to scan working tree: %w", err)
		}
		hash, err = r.commitOnCurrentBranch(message, snapshot)
		return err
	})
	return hash, err
}

// Revert records a marker commit "Revert commit <hash>" on the current
// branch. File contents are not changed and hash is not looked up.
func (r *Repository) Revert(hash string) (string, error) {
	var newHash string
	err := r.withLock(func() error {
		snapshot, err := r.scanWorkingTree()
		if err != nil {
			return fmt.Errorf("failed to scan working tree: %w", err)
		}
		newHash, err = r.commitOnCurrentBranch("Revert commit "+hash, snapshot)
		return err
	})
	return newHash, err
}

// commitOnCurrentBranch writes a commit whose parent is the current branch
// tip, then moves the branch. The object is stored before the ref is updated,
// so a failure in between only leaves an orphaned object.
func (r *Repository) commitOnCurrentBranch(message string, snapshot types.Snapshot) (string, error) {
	branch, parent, err := r.refs.CurrentCommit()
	if err != nil {
		return "", err
	}

	data := lib.EncodeCommit(parent, message, snapshot)
	hash := lib.GetHash(data)
	if err := r.objects.Put(hash, data); err != nil {
		return "", fmt.Errorf("failed to write commit object: %w", err)
	}
	if err := r.refs.WriteBranch(branch, hash); err != nil {
		return "", fmt.Errorf("failed to update branch %s: %w", branch, err)
	}
	return hash, nil
}

// NewBranch creates a branch pointing at the current commit and returns that
// commit's hash (empty if the current branch has no commits). The new branch
// does not follow later commits on the current branch.
func (r *Repository) NewBranch(name string) (string, error) {
	var hash string
	err := r.withLock(func() error {
		var err error
		_, hash, err = r.refs.CurrentCommit()
		if err != nil {
			return err
		}
		return r.refs.CreateBranch(name, hash)
	})
	return hash, err
}

// Jump points HEAD at another branch. Only HEAD changes: the working tree is
// not touched and may no longer match the new branch's latest commit.
func (r *Repository) Jump(name string) error {
	return r.withLock(func() error {
		return r.refs.SwitchHead(name)
	})
}

// Reset moves the current branch to the commit identified by ident, which
// may be a full hash or a unique prefix of one. ErrCommitNotFound is returned,
// and the branch left unchanged, if no such object exists. Commits that
// become unreachable stay in the object store.
func (r *Repository) Reset(ident string) (string, error) {
	var hash string
	err := r.withLock(func() error {
		var err error
		hash, err = r.objects.ResolvePrefix(ident)
		if err != nil {
			return err
		}
		branch, err := r.refs.CurrentBranchName()
		if err != nil {
			return err
		}
		return r.refs.WriteBranch(branch, hash)
	})
	return hash, err
}

// Tag creates or overwrites a tag pointing at hash. Unlike Reset, hash is
// stored as given without checking that the commit exists.
func (r *Repository) Tag(name, hash string) error {
	return r.withLock(func() error {
		return r.refs.WriteTag(name, hash)
	})
}

// Tags lists every tag with its target, sorted by name.
func (r *Repository) Tags() ([]types.TagRef, error) {
	return r.refs.ListTags()
}
