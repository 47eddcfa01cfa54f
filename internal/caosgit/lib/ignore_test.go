package lib

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreMatcher(t *testing.T) {
	testCases := []struct {
		name            string
		ignoreContent   string
		pathToCheck     string
		shouldBeIgnored bool
	}{
		{
			name:            "Specific file match",
			ignoreContent:   "secret.txt",
			pathToCheck:     "secret.txt",
			shouldBeIgnored: true,
		},
		{
			name:            "Glob pattern match (*.log)",
			ignoreContent:   "*.log",
			pathToCheck:     "system.log",
			shouldBeIgnored: true,
		},
		{
			name:            "Glob pattern in subdir",
			ignoreContent:   "*.log",
			pathToCheck:     "logs/system.log",
			shouldBeIgnored: true,
		},
		{
			name:            "Directory pattern match (build/)",
			ignoreContent:   "build/",
			pathToCheck:     "build/asset.js",
			shouldBeIgnored: true,
		},
		{
			name:            "Negation pattern (!)",
			ignoreContent:   "*.log\n!important.log",
			pathToCheck:     "important.log",
			shouldBeIgnored: false,
		},
		{
			name:            "Negation pattern should not affect other matches",
			ignoreContent:   "*.log\n!important.log",
			pathToCheck:     "unimportant.log",
			shouldBeIgnored: true,
		},
		{
			name:            "Comment and empty lines should be ignored",
			ignoreContent:   "# This is a comment\n\n  \n\n*.tmp",
			pathToCheck:     "some.tmp",
			shouldBeIgnored: true,
		},
		{
			name:            "Path not in ignore list",
			ignoreContent:   "*.log",
			pathToCheck:     "src/main.go",
			shouldBeIgnored: false,
		},
		{
			name:            "Path with Windows-style separators in pattern",
			ignoreContent:   "dist\\main.js",
			pathToCheck:     "dist/main.js",
			shouldBeIgnored: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			fs := afero.NewMemMapFs()
			writeTree(t, fs, testRoot, map[string]string{DefaultIgnoreFilename: tc.ignoreContent})

			// Act
			matcher, err := LoadIgnoreMatcher(fs, testRoot, DefaultIgnoreFilename)
			require.NoError(t, err)
			require.NotNil(t, matcher)

			// Assert
			assert.Equal(t, tc.shouldBeIgnored, matcher.Ignored(tc.pathToCheck, false), "Path '%s' with ignore content:\n---\n%s\n---", tc.pathToCheck, tc.ignoreContent)
		})
	}
}

func TestLoadIgnoreMatcher_NoRules(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		matcher, err := LoadIgnoreMatcher(afero.NewMemMapFs(), testRoot, DefaultIgnoreFilename)
		require.NoError(t, err)
		assert.Nil(t, matcher)
		assert.False(t, matcher.Ignored("anything.txt", false), "a nil matcher ignores nothing")
	})

	t.Run("only comments", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeTree(t, fs, testRoot, map[string]string{DefaultIgnoreFilename: "# nothing here\n\n"})

		matcher, err := LoadIgnoreMatcher(fs, testRoot, DefaultIgnoreFilename)

		require.NoError(t, err)
		assert.Nil(t, matcher)
	})

	t.Run("disabled by an empty file name", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		writeTree(t, fs, testRoot, map[string]string{DefaultIgnoreFilename: "*.log"})

		matcher, err := LoadIgnoreMatcher(fs, testRoot, "")

		require.NoError(t, err)
		assert.Nil(t, matcher)
	})
}
