package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v80/github"
)

// newTestClient returns a client pointed at a local test server
func newTestClient(t *testing.T, handler http.Handler) (*SDKClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sdk := gh.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	if err != nil {
		t.Fatalf("parse server URL: %v", err)
	}
	sdk.BaseURL = baseURL

	return NewClientWithSDK(sdk), server
}

func TestGetLatestRelease(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/harehare/mq/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v1.2.0", "name": "v1.2.0", "html_url": "https://github.com/harehare/mq/releases/tag/v1.2.0"}`)
	})

	client, _ := newTestClient(t, mux)

	release, err := client.GetLatestRelease(context.Background(), "harehare", "mq")
	if err != nil {
		t.Fatalf("GetLatestRelease() unexpected error: %v", err)
	}

	if release.TagName != "v1.2.0" {
		t.Errorf("TagName = %q, want %q", release.TagName, "v1.2.0")
	}
}

func TestGetLatestReleaseNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	client, _ := newTestClient(t, mux)

	_, err := client.GetLatestRelease(context.Background(), "harehare", "missing")
	if !errors.Is(err, ErrReleaseNotFound) {
		t.Errorf("GetLatestRelease() error = %v, want ErrReleaseNotFound", err)
	}
}

func TestGetReleaseByTag(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/harehare/mq/releases/tags/v0.9.0", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v0.9.0"}`)
	})

	client, _ := newTestClient(t, mux)

	release, err := client.GetReleaseByTag(context.Background(), "harehare", "mq", "v0.9.0")
	if err != nil {
		t.Fatalf("GetReleaseByTag() unexpected error: %v", err)
	}

	if release.TagName != "v0.9.0" {
		t.Errorf("TagName = %q, want %q", release.TagName, "v0.9.0")
	}
}

func TestGetToken(t *testing.T) {
	t.Setenv("GH_TOKEN", "gh-token")
	t.Setenv("GITHUB_TOKEN", "github-token")

	if got := getToken(); got != "gh-token" {
		t.Errorf("getToken() = %q, want GH_TOKEN to win", got)
	}

	t.Setenv("GH_TOKEN", "")
	if got := getToken(); got != "github-token" {
		t.Errorf("getToken() = %q, want GITHUB_TOKEN fallback", got)
	}

	t.Setenv("GITHUB_TOKEN", "")
	if got := getToken(); got != "" {
		t.Errorf("getToken() = %q, want empty", got)
	}
}
