// Package gitinfo reads repository metadata needed for the launchable
// config by shelling out to git.
package gitinfo

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

var (
	ErrNotARepo = errors.New("not a git repository")
	ErrNoOrigin = errors.New("no origin remote configured")
)

// Info is the repository metadata written into launchable.yaml.
type Info struct {
	OriginURL     string
	NormalizedURL string
	DefaultBranch string
	RepoName      string
}

// IsRepo reports whether path is inside a git work tree.
func IsRepo(path string) bool {
	out, err := git(path, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// OriginURL returns the raw origin remote URL, or "" when absent.
func OriginURL(path string) string {
	out, err := git(path, "remote", "get-url", "origin")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// Collect gathers full repository info for a project directory.
func Collect(path string) (Info, error) {
	if !IsRepo(path) {
		return Info{}, fmt.Errorf("%w: %s", ErrNotARepo, path)
	}
	origin := OriginURL(path)
	if origin == "" {
		return Info{}, fmt.Errorf("%w: %s", ErrNoOrigin, path)
	}
	normalized := NormalizeURL(origin)
	return Info{
		OriginURL:     origin,
		NormalizedURL: normalized,
		DefaultBranch: defaultBranch(path),
		RepoName:      repoName(normalized, path),
	}, nil
}

// NormalizeURL converts ssh remotes to https and strips the .git suffix.
func NormalizeURL(url string) string {
	url = strings.TrimSpace(url)
	if after, ok := strings.CutPrefix(url, "git@"); ok {
		// git@host:owner/repo -> https://host/owner/repo
		after = strings.Replace(after, ":", "/", 1)
		url = "https://" + after
	}
	url = strings.TrimSuffix(url, ".git")
	return strings.TrimSuffix(url, "/")
}

func defaultBranch(path string) string {
	out, err := git(path, "symbolic-ref", "refs/remotes/origin/HEAD", "--short")
	if err == nil {
		if _, branch, ok := strings.Cut(strings.TrimSpace(out), "/"); ok {
			return branch
		}
	}
	out, err = git(path, "rev-parse", "--abbrev-ref", "HEAD")
	if err == nil && strings.TrimSpace(out) != "HEAD" {
		return strings.TrimSpace(out)
	}
	return "main"
}

func repoName(normalizedURL, path string) string {
	if i := strings.LastIndex(normalizedURL, "/"); i >= 0 && i < len(normalizedURL)-1 {
		return normalizedURL[i+1:]
	}
	return filepath.Base(path)
}

func git(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	return string(out), err
}
