package repository

import (
	"fmt"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/lib"
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/types"
)

// Merger builds the snapshot recorded by a merge commit from the current
// working tree (ours) and the merged branch's latest snapshot (theirs).
// A content-combining strategy, such as a three-way merge, plugs in here.
type Merger interface {
	Merge(ours, theirs types.Snapshot) (types.Snapshot, error)
}

// MarkerMerger is the default Merger. It records the working tree as is, so a
// merge commit is a marker in history and no file from theirs is applied.
type MarkerMerger struct{}

func (MarkerMerger) Merge(ours, _ types.Snapshot) (types.Snapshot, error) {
	return ours, nil
}

// MergeResult describes the outcome of Merge.
type MergeResult struct {
	// NothingToMerge is set when the merged branch has no commits. No commit
	// is written in that case.
	NothingToMerge bool
	Hash           string
	Into           string
}

// Merge records a commit "Merge branch <name>" on the current branch. The
// commit has a single parent, the current branch tip. ErrBranchNotFound is
// returned if name does not exist.
func (r *Repository) Merge(name string) (MergeResult, error) {
	var result MergeResult
	err := r.withLock(func() error {
		target, err := r.refs.ReadBranch(name)
		if err != nil {
			return err
		}
		if target == "" {
			result.NothingToMerge = true
			return nil
		}

		theirs, err := r.ReadCommit(target)
		if err != nil {
			return fmt.Errorf("%w: branch %s: %v", lib.ErrCorruptRepository, name, err)
		}
		ours, err := r.scanWorkingTree()
		if err != nil {
			return fmt.Errorf("failed to scan working tree: %w", err)
		}
		merged, err := r.merger.Merge(ours, theirs.Snapshot)
		if err != nil {
			return fmt.Errorf("failed to merge branch %s: %w", name, err)
		}

		result.Hash, err = r.commitOnCurrentBranch("Merge branch "+name, merged)
		if err != nil {
			return err
		}
		result.Into, err = r.refs.CurrentBranchName()
		return err
	})
	return result, err
}
