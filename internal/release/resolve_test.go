package release

import (
	"context"
	"errors"
	"testing"

	"github.com/harehare/mq-installer/internal/github"
)

// fakeClient implements github.Client for resolver tests
type fakeClient struct {
	latest    *github.Release
	latestErr error
	byTag     map[string]*github.Release
	byTagErr  error
}

func (f *fakeClient) GetLatestRelease(ctx context.Context, owner, repo string) (*github.Release, error) {
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	return f.latest, nil
}

func (f *fakeClient) GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.Release, error) {
	if f.byTagErr != nil {
		return nil, f.byTagErr
	}
	if rel, ok := f.byTag[tag]; ok {
		return rel, nil
	}
	return nil, github.ErrReleaseNotFound
}

func TestResolveLatest(t *testing.T) {
	resolver := NewResolver(&fakeClient{
		latest: &github.Release{TagName: "v1.2.0"},
	})

	tag, err := resolver.ResolveLatest(context.Background(), "harehare/mq")
	if err != nil {
		t.Fatalf("ResolveLatest() unexpected error: %v", err)
	}
	if tag != "v1.2.0" {
		t.Errorf("ResolveLatest() = %q, want %q", tag, "v1.2.0")
	}
}

func TestResolveLatestEmptyTag(t *testing.T) {
	resolver := NewResolver(&fakeClient{
		latest: &github.Release{TagName: ""},
	})

	if _, err := resolver.ResolveLatest(context.Background(), "harehare/mq"); err == nil {
		t.Error("ResolveLatest() expected error for empty tag")
	}
}

func TestResolveLatestRequestFailure(t *testing.T) {
	resolver := NewResolver(&fakeClient{
		latestErr: github.ErrRateLimitExceeded,
	})

	_, err := resolver.ResolveLatest(context.Background(), "harehare/mq")
	if !errors.Is(err, github.ErrRateLimitExceeded) {
		t.Errorf("ResolveLatest() error = %v, want wrapped ErrRateLimitExceeded", err)
	}
}

func TestResolveLatestInvalidRepo(t *testing.T) {
	resolver := NewResolver(&fakeClient{})

	if _, err := resolver.ResolveLatest(context.Background(), "not-a-repo"); err == nil {
		t.Error("ResolveLatest() expected error for invalid repo")
	}
}

func TestResolveTag(t *testing.T) {
	resolver := NewResolver(&fakeClient{
		byTag: map[string]*github.Release{
			"v0.9.0": {TagName: "v0.9.0"},
		},
	})

	tag, err := resolver.ResolveTag(context.Background(), "harehare/mq", "v0.9.0")
	if err != nil {
		t.Fatalf("ResolveTag() unexpected error: %v", err)
	}
	if tag != "v0.9.0" {
		t.Errorf("ResolveTag() = %q, want %q", tag, "v0.9.0")
	}

	_, err = resolver.ResolveTag(context.Background(), "harehare/mq", "v9.9.9")
	if !errors.Is(err, github.ErrReleaseNotFound) {
		t.Errorf("ResolveTag() error = %v, want wrapped ErrReleaseNotFound", err)
	}
}
