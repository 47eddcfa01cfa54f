package lib

import (
	"bytes"
	"sort"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/types"
)

// DiffSnapshots compares the working tree against a committed snapshot.
// Paths only in current are Added, paths in both with different bytes are
// Modified, paths only in committed are Deleted. The result is sorted by path
// and is empty when the two snapshots hold the same files.
func DiffSnapshots(committed, current types.Snapshot) []types.StatusEntry {
	entries := []types.StatusEntry{}

	for path, content := range current {
		committedContent, ok := committed[path]
		switch {
		case !ok:
			entries = append(entries, types.StatusEntry{Path: path, Status: types.StatusAdded})
		case !bytes.Equal(committedContent, content):
			entries = append(entries, types.StatusEntry{Path: path, Status: types.StatusModified})
		}
	}
	for path := range committed {
		if _, ok := current[path]; !ok {
			entries = append(entries, types.StatusEntry{Path: path, Status: types.StatusDeleted})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
	return entries
}
