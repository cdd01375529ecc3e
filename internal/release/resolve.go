package release

import (
	"context"
	"fmt"

	"github.com/harehare/mq-installer/internal/github"
)

// Resolver resolves release versions against the GitHub API.
type Resolver struct {
	gh github.Client
}

// NewResolver creates a resolver backed by the given GitHub client.
func NewResolver(gh github.Client) *Resolver {
	return &Resolver{gh: gh}
}

// ResolveLatest returns the tag of the latest published release.
// The tag is treated as an opaque token and never parsed.
//
// A single request is made: resolution failure aborts the install and the
// user re-runs the installer. An empty tag in the response is a failure,
// not "no version".
func (r *Resolver) ResolveLatest(ctx context.Context, repo string) (string, error) {
	owner, name, err := SplitRepo(repo)
	if err != nil {
		return "", err
	}

	rel, err := r.gh.GetLatestRelease(ctx, owner, name)
	if err != nil {
		return "", fmt.Errorf("resolve latest release of %s: %w", repo, err)
	}

	if rel.TagName == "" {
		return "", fmt.Errorf("resolve latest release of %s: release has no tag", repo)
	}

	return rel.TagName, nil
}

// ResolveTag checks that a pinned release tag exists and returns it.
func (r *Resolver) ResolveTag(ctx context.Context, repo, tag string) (string, error) {
	owner, name, err := SplitRepo(repo)
	if err != nil {
		return "", err
	}

	rel, err := r.gh.GetReleaseByTag(ctx, owner, name, tag)
	if err != nil {
		return "", fmt.Errorf("resolve release %s of %s: %w", tag, repo, err)
	}

	if rel.TagName == "" {
		return "", fmt.Errorf("resolve release %s of %s: release has no tag", tag, repo)
	}

	return rel.TagName, nil
}
