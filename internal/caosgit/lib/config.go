package lib

import (
	"path/filepath"
)

// --- Constants ---

// MetaDirName is the name of the repository metadata directory.
const MetaDirName = ".caosgit"

// ObjectsDirName is the name of the subdirectory for commit objects.
const ObjectsDirName = "objects"

// RefsDirName is the name of the subdirectory for branch and tag refs.
const RefsDirName = "refs"

// HeadFileName is the name of the symbolic HEAD file.
const HeadFileName = "HEAD"

// ConfigFileName is the name of the optional repository config file.
const ConfigFileName = "config"

// LockFileName is the name of the advisory lock file.
const LockFileName = "lock"

// DefaultBranch is the branch HEAD points to after init.
const DefaultBranch = "main"

// TagPrefix distinguishes tag refs from branch refs inside refs/.
const TagPrefix = "tag_"

// DefaultIgnoreFilename is the name of the file containing user-defined ignore
// patterns, unless overridden by core.ignorefile.
const DefaultIgnoreFilename = ".caosgitignore"

// --- Path Helper Functions ---

// GetMetaDir returns the path to the .caosgit directory for a repository root.
func GetMetaDir(rootDir string) string {
	return filepath.Join(rootDir, MetaDirName)
}

// GetObjectsDir returns the path to the objects subdirectory.
func GetObjectsDir(rootDir string) string {
	return filepath.Join(GetMetaDir(rootDir), ObjectsDirName)
}

// GetRefsDir returns the path to the refs subdirectory.
func GetRefsDir(rootDir string) string {
	return filepath.Join(GetMetaDir(rootDir), RefsDirName)
}

func GetHeadPath(rootDir string) string {
	return filepath.Join(GetMetaDir(rootDir), HeadFileName)
}

func GetConfigPath(rootDir string) string {
	return filepath.Join(GetMetaDir(rootDir), ConfigFileName)
}

func GetLockPath(rootDir string) string {
	return filepath.Join(GetMetaDir(rootDir), LockFileName)
}
