// Package repoinfo extracts version-control metadata for a scanned root.
package repoinfo

import (
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"codeclip/pkg/scan"
)

// Detect returns repository metadata for root, or nil when root is not the
// top of a git repository. Detection is best-effort: a repository with no
// commits yet has no branch, and a repository with no "origin" remote has no
// remote URL; both fields are simply left empty.
func Detect(root string) *scan.RepoHeader {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil
	}

	name := root
	if abs, absErr := filepath.Abs(root); absErr == nil {
		name = abs
	}

	header := &scan.RepoHeader{
		Kind: scan.Repository,
		Name: filepath.Base(name),
	}
	if head, headErr := repo.Head(); headErr == nil {
		header.Branch = head.Name().Short()
	}
	if remote, remoteErr := repo.Remote(git.DefaultRemoteName); remoteErr == nil {
		if urls := remote.Config().URLs; len(urls) > 0 {
			header.RemoteURL = urls[0]
		}
	}
	return header
}
