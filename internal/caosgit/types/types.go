package types

// Snapshot maps a slash-separated path, relative to the repository root, to
// the full contents of that file.
type Snapshot map[string][]byte

// Commit is the decoded form of a commit object.
type Commit struct {
	Hash    string
	Parent  string // empty for a root commit
	Message string
	// Files lists the snapshot paths in sorted order, as recorded in the header.
	Files    []string
	Snapshot Snapshot
}

// FileStatus describes how a working tree path differs from the committed snapshot.
type FileStatus int

const (
	StatusAdded FileStatus = iota + 1
	StatusModified
	StatusDeleted
)

func (s FileStatus) String() string {
	switch s {
	case StatusAdded:
		return "Added"
	case StatusModified:
		return "Modified"
	case StatusDeleted:
		return "Deleted"
	default:
		return "Unknown"
	}
}

type StatusEntry struct {
	Path   string
	Status FileStatus
}

type LogEntry struct {
	Hash    string
	Message string
}

// TagRef is a tag name (without its on-disk prefix) and the hash it points to.
type TagRef struct {
	Name string
	Hash string
}
