// Package gitutil provides a client for reading metadata from Git repositories.
package gitutil

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepository is returned when no repository contains the given path.
var ErrNotRepository = errors.New("not a git repository")

// Client handles interacting with Git repositories.
type Client struct {
	Logger *slog.Logger
}

// NewClient returns a new Client instance.
func NewClient(logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{Logger: logger}
}

// Open opens the repository containing path, searching parent directories for .git.
func (c *Client) Open(path string) (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("failed to open repository at %s: %w", path, err)
	}
	return repo, nil
}

// HeadSHA returns the commit hash HEAD points to in the repository containing path.
func (c *Client) HeadSHA(path string) (string, error) {
	repo, err := c.Open(path)
	if err != nil {
		return "", err
	}

	ref, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", fmt.Errorf("repository at %s has no commits: %w", path, err)
		}
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return ref.Hash().String(), nil
}

// Describe returns a short "branch@sha" label for the repository containing
// path, or "" when it cannot be determined.
func (c *Client) Describe(path string) string {
	repo, err := c.Open(path)
	if err != nil {
		c.Logger.Debug("git metadata unavailable", "path", path, "error", err)
		return ""
	}
	ref, err := repo.Head()
	if err != nil {
		c.Logger.Debug("git HEAD unavailable", "path", path, "error", err)
		return ""
	}

	sha := ref.Hash().String()
	if len(sha) > 12 {
		sha = sha[:12]
	}
	if ref.Name().IsBranch() {
		return ref.Name().Short() + "@" + sha
	}
	return sha
}
