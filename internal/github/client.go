// Package github wraps the GitHub API operations the installer needs:
// resolving the latest release of a repository and checking that a pinned
// release tag exists.
package github

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/google/go-github/v80/github"
)

var (
	// ErrRateLimitExceeded is returned when the GitHub API rate limit is exceeded
	ErrRateLimitExceeded = errors.New("github API rate limit exceeded")
	// ErrReleaseNotFound is returned when the repository or release is not found
	ErrReleaseNotFound = errors.New("release not found")
)

// Release represents a GitHub release
type Release struct {
	TagName string
	Name    string
	HTMLURL string
}

// Client defines the interface for GitHub API operations
type Client interface {
	// GetLatestRelease retrieves the latest release for a repository
	GetLatestRelease(ctx context.Context, owner, repo string) (*Release, error)
	// GetReleaseByTag retrieves a specific release by tag
	GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*Release, error)
}

// SDKClient implements Client using the go-github SDK
type SDKClient struct {
	client *github.Client
}

// getToken retrieves a GitHub token from the environment, if any.
// Unauthenticated requests work for public repositories but have a much
// lower rate limit.
func getToken() string {
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return strings.TrimSpace(token)
	}
	return strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
}

// NewClient creates a GitHub client, authenticated when GH_TOKEN or
// GITHUB_TOKEN is set.
func NewClient() *SDKClient {
	client := github.NewClient(nil)
	if token := getToken(); token != "" {
		client = client.WithAuthToken(token)
	}

	return &SDKClient{client: client}
}

// NewClientWithSDK creates a client around an existing go-github client.
// This is used by tests to point the client at a local HTTP server.
func NewClientWithSDK(client *github.Client) *SDKClient {
	return &SDKClient{client: client}
}

// GetLatestRelease retrieves the latest release for a repository
func (c *SDKClient) GetLatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	release, resp, err := c.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, c.handleError(resp, err)
	}

	return &Release{
		TagName: release.GetTagName(),
		Name:    release.GetName(),
		HTMLURL: release.GetHTMLURL(),
	}, nil
}

// GetReleaseByTag retrieves a specific release by tag
func (c *SDKClient) GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*Release, error) {
	release, resp, err := c.client.Repositories.GetReleaseByTag(ctx, owner, repo, tag)
	if err != nil {
		return nil, c.handleError(resp, err)
	}

	return &Release{
		TagName: release.GetTagName(),
		Name:    release.GetName(),
		HTMLURL: release.GetHTMLURL(),
	}, nil
}

// handleError converts GitHub API errors to our error types
func (*SDKClient) handleError(resp *github.Response, err error) error {
	if resp == nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrReleaseNotFound
	case http.StatusForbidden:
		if resp.Rate.Remaining == 0 {
			return ErrRateLimitExceeded
		}
		return err
	default:
		return err
	}
}
