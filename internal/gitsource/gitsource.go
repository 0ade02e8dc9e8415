// Package gitsource acquires documentation trees from git repositories
// using single-branch clones with optional sparse checkouts.
package gitsource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Sentinel errors for source acquisition.
var (
	ErrMissingRepoURL  = errors.New("repository URL is required")
	ErrMissingBranch   = errors.New("branch is required")
	ErrMissingCloneDir = errors.New("clone directory is required")
)

// Options locate the documentation source.
type Options struct {
	RepoURL  string
	Branch   string
	DocsDir  string    // sparse checkout root inside the repo; empty checks out everything
	CloneDir string    // local checkout location
	Progress io.Writer // transfer progress; nil keeps transfers quiet
}

// Client owns one local checkout of a documentation repository.
type Client struct {
	opts Options
}

// NewClient validates the options and returns a Client. No network or
// filesystem access happens until Sync.
func NewClient(opts Options) (*Client, error) {
	if opts.RepoURL == "" {
		return nil, ErrMissingRepoURL
	}
	if opts.Branch == "" {
		return nil, ErrMissingBranch
	}
	if opts.CloneDir == "" {
		return nil, ErrMissingCloneDir
	}
	return &Client{opts: opts}, nil
}

// Exists reports whether the clone directory already holds a repository.
func (c *Client) Exists() bool {
	_, err := os.Stat(filepath.Join(c.opts.CloneDir, git.GitDirName))
	return err == nil
}

// DocsPath returns the local path of the documentation tree.
func (c *Client) DocsPath() string {
	return filepath.Join(c.opts.CloneDir, filepath.FromSlash(c.opts.DocsDir))
}

// Sync clones the repository on first use and pulls afterwards,
// returning the local documentation path.
func (c *Client) Sync(ctx context.Context) (string, error) {
	if c.Exists() {
		if err := c.Update(ctx); err != nil {
			return "", err
		}
	} else {
		if err := c.Clone(ctx); err != nil {
			return "", err
		}
	}
	return c.DocsPath(), nil
}

// Clone performs a single-branch clone. When DocsDir is set the checkout
// is sparse, restricted to that directory, which keeps a large monorepo
// clone at documentation size.
func (c *Client) Clone(ctx context.Context) error {
	branchRef := plumbing.NewBranchReferenceName(c.opts.Branch)

	slog.Debug("cloning repository",
		slog.String("url", c.opts.RepoURL),
		slog.String("branch", c.opts.Branch),
		slog.String("path", c.opts.CloneDir))

	cloneOpts := &git.CloneOptions{
		URL:           c.opts.RepoURL,
		ReferenceName: branchRef,
		SingleBranch:  true,
		NoCheckout:    c.opts.DocsDir != "",
		Progress:      c.opts.Progress,
	}

	repo, err := git.PlainCloneContext(ctx, c.opts.CloneDir, false, cloneOpts)
	if err != nil {
		return fmt.Errorf("cloning %s: %w", c.opts.RepoURL, err)
	}

	if c.opts.DocsDir != "" {
		worktree, err := repo.Worktree()
		if err != nil {
			return fmt.Errorf("opening worktree: %w", err)
		}
		err = worktree.Checkout(&git.CheckoutOptions{
			Branch:                    branchRef,
			SparseCheckoutDirectories: []string{c.opts.DocsDir},
		})
		if err != nil {
			return fmt.Errorf("sparse checkout of %s: %w", c.opts.DocsDir, err)
		}
	}

	if ref, err := repo.Head(); err == nil {
		slog.Info("repository cloned",
			slog.String("url", c.opts.RepoURL),
			slog.String("commit", shortHash(ref)),
			slog.String("path", c.opts.CloneDir))
	} else {
		slog.Info("repository cloned",
			slog.String("url", c.opts.RepoURL),
			slog.String("path", c.opts.CloneDir))
	}
	return nil
}

// Update pulls the tracked branch in an existing checkout. Already up to
// date is success.
func (c *Client) Update(ctx context.Context) error {
	repo, err := git.PlainOpen(c.opts.CloneDir)
	if err != nil {
		return fmt.Errorf("opening repository at %s: %w", c.opts.CloneDir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	slog.Debug("updating repository",
		slog.String("path", c.opts.CloneDir),
		slog.String("branch", c.opts.Branch))

	err = worktree.PullContext(ctx, &git.PullOptions{
		RemoteName:    "origin",
		ReferenceName: plumbing.NewBranchReferenceName(c.opts.Branch),
		SingleBranch:  true,
		Progress:      c.opts.Progress,
	})
	switch {
	case errors.Is(err, git.NoErrAlreadyUpToDate):
		slog.Info("repository already up to date", slog.String("path", c.opts.CloneDir))
	case err != nil:
		return fmt.Errorf("pulling %s: %w", c.opts.RepoURL, err)
	default:
		if ref, err := repo.Head(); err == nil {
			slog.Info("repository updated",
				slog.String("path", c.opts.CloneDir),
				slog.String("commit", shortHash(ref)))
		}
	}
	return nil
}

func shortHash(ref *plumbing.Reference) string {
	return ref.Hash().String()[:8]
}
