package lib

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/denormal/go-gitignore"
	"github.com/spf13/afero"
)

// IgnoreMatcher decides whether a working tree path is left out of snapshots.
// A nil *IgnoreMatcher ignores nothing.
type IgnoreMatcher struct {
	matcher gitignore.GitIgnore
}

// LoadIgnoreMatcher reads the ignore file at rootDir/ignoreFilename and
// compiles its patterns. It returns nil when the file does not exist or holds
// no usable pattern, so that scans without an ignore file capture the whole tree.
func LoadIgnoreMatcher(fs afero.Fs, rootDir, ignoreFilename string) (*IgnoreMatcher, error) {
	if ignoreFilename == "" {
		return nil, nil
	}
	ignorePath := filepath.Join(rootDir, ignoreFilename)
	content, err := afero.ReadFile(fs, ignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, ioError("read", ignorePath, err)
	}

	// Clean up the patterns: remove comments and trim whitespace.
	var finalPatterns []string
	for _, p := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		// Normalize Windows-style backslashes to forward slashes.
		trimmed = strings.ReplaceAll(trimmed, "\\", "/")
		// Directory patterns match everything below them.
		if strings.HasSuffix(trimmed, "/") && !strings.HasSuffix(trimmed, "**/") {
			trimmed = trimmed + "**"
		}
		finalPatterns = append(finalPatterns, trimmed)
	}
	if len(finalPatterns) == 0 {
		return nil, nil
	}

	matcher := gitignore.New(
		strings.NewReader(strings.Join(finalPatterns, "\n")),
		rootDir,
		// Skip patterns that fail to parse and keep going.
		func(err gitignore.Error) bool { return true },
	)
	if matcher == nil {
		return nil, nil
	}
	return &IgnoreMatcher{matcher: matcher}, nil
}

// Ignored reports whether relPath (slash-separated, relative to the root)
// matches an ignore rule.
func (m *IgnoreMatcher) Ignored(relPath string, isDir bool) bool {
	if m == nil || m.matcher == nil {
		return false
	}
	match := m.matcher.Relative(relPath, isDir)
	if match == nil {
		return false
	}
	return match.Ignore()
}
