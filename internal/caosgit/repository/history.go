package repository

import (
	"errors"
	"fmt"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/lib"
	"github.com/gingerrexayers/caosgit-go/internal/caosgit/types"
)

// Log walks the current branch from its tip back to the root commit and
// returns one entry per commit, newest first. A parent link to a missing or
// unreadable object fails with ErrCorruptRepository.
func (r *Repository) Log() ([]types.LogEntry, error) {
	_, hash, err := r.refs.CurrentCommit()
	if err != nil {
		return nil, err
	}

	entries := []types.LogEntry{}
	visited := make(map[string]struct{})
	for hash != "" {
		// Parents always point to older objects, so a repeat means the store
		// was tampered with.
		if _, ok := visited[hash]; ok {
			return nil, fmt.Errorf("%w: commit %s is its own ancestor", lib.ErrCorruptRepository, hash)
		}
		visited[hash] = struct{}{}

		commit, err := r.readLinkedCommit(hash)
		if err != nil {
			return nil, err
		}
		entries = append(entries, types.LogEntry{Hash: hash, Message: commit.Message})
		hash = commit.Parent
	}
	return entries, nil
}

// Status compares the working tree with the current branch's latest commit.
// Everything is Added when the branch has no commits yet.
func (r *Repository) Status() ([]types.StatusEntry, error) {
	_, hash, err := r.refs.CurrentCommit()
	if err != nil {
		return nil, err
	}

	committed := types.Snapshot{}
	if hash != "" {
		commit, err := r.readLinkedCommit(hash)
		if err != nil {
			return nil, err
		}
		committed = commit.Snapshot
	}

	current, err := r.scanWorkingTree()
	if err != nil {
		return nil, fmt.Errorf("failed to scan working tree: %w", err)
	}
	return lib.DiffSnapshots(committed, current), nil
}

// readLinkedCommit reads a commit reached through a ref or a parent link, where
// a missing object means the repository is corrupt.
func (r *Repository) readLinkedCommit(hash string) (types.Commit, error) {
	commit, err := r.ReadCommit(hash)
	if err != nil {
		if errors.Is(err, lib.ErrCommitNotFound) {
			return types.Commit{}, fmt.Errorf("%w: %v", lib.ErrCorruptRepository, err)
		}
		return types.Commit{}, err
	}
	return commit, nil
}
