package repoinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeclip/pkg/scan"
)

func TestDetectNonRepository(t *testing.T) {
	assert.Nil(t, Detect(t.TempDir()))
}

func TestDetectRepository(t *testing.T) {
	root := t.TempDir()
	repo, err := git.PlainInit(root, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("x\n"), 0o644))
	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("file.txt")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: []string{"https://example.com/org/proj.git"},
	})
	require.NoError(t, err)

	header := Detect(root)

	require.NotNil(t, header)
	assert.Equal(t, scan.Repository, header.Kind)
	assert.Equal(t, filepath.Base(root), header.Name)
	assert.Equal(t, "master", header.Branch)
	assert.Equal(t, "https://example.com/org/proj.git", header.RemoteURL)
}

func TestDetectRepositoryWithoutRemoteOrCommits(t *testing.T) {
	root := t.TempDir()
	_, err := git.PlainInit(root, false)
	require.NoError(t, err)

	header := Detect(root)

	require.NotNil(t, header)
	assert.Equal(t, scan.Repository, header.Kind)
	assert.Empty(t, header.Branch, "a repository with no commits has no branch")
	assert.Empty(t, header.RemoteURL)
}
