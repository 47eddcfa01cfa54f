package lib

import (
	"testing"

	"github.com/gingerrexayers/caosgit-go/internal/caosgit/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInitializedRefStore(t *testing.T) (*RefStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	refs := NewRefStore(fs, testRoot)
	require.NoError(t, refs.Initialize())
	return refs, fs
}

func TestRefStore_Initialize(t *testing.T) {
	t.Run("should create the metadata layout", func(t *testing.T) {
		// Arrange & Act
		_, fs := newInitializedRefStore(t)

		// Assert
		for _, dir := range []string{GetMetaDir(testRoot), GetObjectsDir(testRoot), GetRefsDir(testRoot)} {
			isDir, err := afero.IsDir(fs, dir)
			require.NoError(t, err)
			assert.True(t, isDir, "%s should be a directory", dir)
		}

		head, err := afero.ReadFile(fs, GetHeadPath(testRoot))
		require.NoError(t, err)
		assert.Equal(t, "ref: refs/main\n", string(head))

		mainRef, err := afero.ReadFile(fs, GetRefsDir(testRoot)+"/main")
		require.NoError(t, err)
		assert.Equal(t, "\n", string(mainRef))
	})

	t.Run("should refuse to initialize twice", func(t *testing.T) {
		refs, _ := newInitializedRefStore(t)

		err := refs.Initialize()

		assert.ErrorIs(t, err, ErrAlreadyInitialized)
	})
}

func TestRefStore_ReadHead(t *testing.T) {
	t.Run("should return the symbolic target", func(t *testing.T) {
		refs, _ := newInitializedRefStore(t)

		target, err := refs.ReadHead()
		require.NoError(t, err)
		assert.Equal(t, "refs/main", target)

		branch, err := refs.CurrentBranchName()
		require.NoError(t, err)
		assert.Equal(t, "main", branch)
	})

	corruptHeads := []struct {
		name    string
		content string
	}{
		{name: "detached hash", content: fakeHash("aa") + "\n"},
		{name: "outside refs", content: "ref: heads/main\n"},
		{name: "tag target", content: "ref: refs/tag_v1\n"},
		{name: "empty", content: ""},
	}
	for _, tc := range corruptHeads {
		t.Run("should reject "+tc.name, func(t *testing.T) {
			refs, fs := newInitializedRefStore(t)
			require.NoError(t, afero.WriteFile(fs, GetHeadPath(testRoot), []byte(tc.content), 0o644))

			_, err := refs.ReadHead()

			assert.ErrorIs(t, err, ErrCorruptRepository)
		})
	}

	t.Run("should report a missing HEAD as corrupt", func(t *testing.T) {
		refs, fs := newInitializedRefStore(t)
		require.NoError(t, fs.Remove(GetHeadPath(testRoot)))

		_, err := refs.ReadHead()

		assert.ErrorIs(t, err, ErrCorruptRepository)
	})
}

func TestRefStore_Branches(t *testing.T) {
	t.Run("new repository has an empty main branch", func(t *testing.T) {
		refs, _ := newInitializedRefStore(t)

		branch, hash, err := refs.CurrentCommit()

		require.NoError(t, err)
		assert.Equal(t, "main", branch)
		assert.Empty(t, hash)
	})

	t.Run("missing current branch ref means no commits", func(t *testing.T) {
		refs, fs := newInitializedRefStore(t)
		require.NoError(t, fs.Remove(GetRefsDir(testRoot)+"/main"))

		branch, hash, err := refs.CurrentCommit()

		require.NoError(t, err)
		assert.Equal(t, "main", branch)
		assert.Empty(t, hash)
	})

	t.Run("write then read a branch", func(t *testing.T) {
		refs, _ := newInitializedRefStore(t)
		hash := fakeHash("12")

		require.NoError(t, refs.WriteBranch("main", hash))
		got, err := refs.ReadBranch("main")

		require.NoError(t, err)
		assert.Equal(t, hash, got)
	})

	t.Run("reading an unknown branch fails", func(t *testing.T) {
		refs, _ := newInitializedRefStore(t)

		_, err := refs.ReadBranch("feature")

		assert.ErrorIs(t, err, ErrBranchNotFound)
	})

	t.Run("a branch holding garbage is corrupt", func(t *testing.T) {
		refs, fs := newInitializedRefStore(t)
		require.NoError(t, afero.WriteFile(fs, GetRefsDir(testRoot)+"/main", []byte("not-a-hash\n"), 0o644))

		_, err := refs.ReadBranch("main")

		assert.ErrorIs(t, err, ErrCorruptRepository)
	})

	t.Run("creating an existing branch fails", func(t *testing.T) {
		refs, _ := newInitializedRefStore(t)
		require.NoError(t, refs.CreateBranch("feature", ""))

		err := refs.CreateBranch("feature", fakeHash("1"))

		assert.ErrorIs(t, err, ErrBranchExists)
		got, readErr := refs.ReadBranch("feature")
		require.NoError(t, readErr)
		assert.Empty(t, got, "existing branch must not be modified")
	})

	t.Run("switching to a missing branch leaves HEAD alone", func(t *testing.T) {
		refs, fs := newInitializedRefStore(t)
		before, err := afero.ReadFile(fs, GetHeadPath(testRoot))
		require.NoError(t, err)

		err = refs.SwitchHead("nope")

		assert.ErrorIs(t, err, ErrBranchNotFound)
		after, readErr := afero.ReadFile(fs, GetHeadPath(testRoot))
		require.NoError(t, readErr)
		assert.Equal(t, before, after)
	})

	t.Run("switching to an existing branch rewrites HEAD", func(t *testing.T) {
		refs, fs := newInitializedRefStore(t)
		require.NoError(t, refs.CreateBranch("feature", ""))

		require.NoError(t, refs.SwitchHead("feature"))

		head, err := afero.ReadFile(fs, GetHeadPath(testRoot))
		require.NoError(t, err)
		assert.Equal(t, "ref: refs/feature\n", string(head))
	})

	t.Run("listing excludes tags", func(t *testing.T) {
		refs, _ := newInitializedRefStore(t)
		require.NoError(t, refs.CreateBranch("zeta", ""))
		require.NoError(t, refs.CreateBranch("alpha", ""))
		require.NoError(t, refs.WriteTag("v1", fakeHash("1")))

		branches, err := refs.ListBranches()

		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "main", "zeta"}, branches)
	})
}

func TestRefStore_Tags(t *testing.T) {
	t.Run("tags are stored unchecked and listed by name", func(t *testing.T) {
		refs, fs := newInitializedRefStore(t)

		require.NoError(t, refs.WriteTag("v2", "deadbeef"))
		require.NoError(t, refs.WriteTag("v1", fakeHash("1")))

		onDisk, err := afero.ReadFile(fs, GetRefsDir(testRoot)+"/tag_v2")
		require.NoError(t, err)
		assert.Equal(t, "deadbeef\n", string(onDisk))

		tags, err := refs.ListTags()
		require.NoError(t, err)
		assert.Equal(t, []types.TagRef{
			{Name: "v1", Hash: fakeHash("1")},
			{Name: "v2", Hash: "deadbeef"},
		}, tags)
	})

	t.Run("tags can be overwritten", func(t *testing.T) {
		refs, _ := newInitializedRefStore(t)
		require.NoError(t, refs.WriteTag("v1", fakeHash("1")))

		require.NoError(t, refs.WriteTag("v1", fakeHash("2")))

		got, err := refs.ReadTag("v1")
		require.NoError(t, err)
		assert.Equal(t, fakeHash("2"), got)
	})

	t.Run("unknown tag", func(t *testing.T) {
		refs, _ := newInitializedRefStore(t)

		_, err := refs.ReadTag("missing")

		assert.ErrorIs(t, err, ErrTagNotFound)
	})

	t.Run("empty target is rejected", func(t *testing.T) {
		refs, _ := newInitializedRefStore(t)

		assert.Error(t, refs.WriteTag("v1", ""))
		assert.Error(t, refs.WriteTag("v1", "two words"))
	})

	t.Run("no tags yields an empty list", func(t *testing.T) {
		refs, _ := newInitializedRefStore(t)

		tags, err := refs.ListTags()

		require.NoError(t, err)
		assert.NotNil(t, tags)
		assert.Empty(t, tags)
	})
}

func TestValidateRefNames(t *testing.T) {
	invalid := []string{"", "HEAD", ".hidden", "a..b", "feature/x", "with space", "x.lock", "new\nline", "back\\slash"}
	for _, name := range invalid {
		t.Run("invalid "+name, func(t *testing.T) {
			assert.ErrorIs(t, ValidateBranchName(name), ErrInvalidRefName)
			assert.ErrorIs(t, ValidateTagName(name), ErrInvalidRefName)
		})
	}

	valid := []string{"main", "feature-1", "release_2.0", "v1.2.3"}
	for _, name := range valid {
		t.Run("valid "+name, func(t *testing.T) {
			assert.NoError(t, ValidateBranchName(name))
			assert.NoError(t, ValidateTagName(name))
		})
	}

	t.Run("branch names cannot use the tag prefix", func(t *testing.T) {
		assert.ErrorIs(t, ValidateBranchName("tag_v1"), ErrInvalidRefName)
		assert.NoError(t, ValidateTagName("tag_v1"))
	})
}
