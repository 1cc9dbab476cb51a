package selfupdate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/abhisek/tactix/releases/latest" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://example.com/release"}`, tag)
	}))
}

func TestCheck_UpdateAvailable(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	defer srv.Close()

	c := NewChecker(WithAPIBaseURL(srv.URL))
	result, err := c.Check(context.Background(), "v1.1.0")
	require.NoError(t, err)

	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/release", result.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	srv := releaseServer(t, "v1.1.0")
	defer srv.Close()

	c := NewChecker(WithAPIBaseURL(srv.URL))
	result, err := c.Check(context.Background(), "v1.1.0")
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_BareVersionAccepted(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	defer srv.Close()

	c := NewChecker(WithAPIBaseURL(srv.URL))
	result, err := c.Check(context.Background(), "1.1.0")
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheck_DevBuild(t *testing.T) {
	c := NewChecker()
	_, err := c.Check(context.Background(), "(devel)")
	assert.True(t, errors.Is(err, ErrDevBuild))
}

func TestCheck_BadTag(t *testing.T) {
	srv := releaseServer(t, "nightly")
	defer srv.Close()

	c := NewChecker(WithAPIBaseURL(srv.URL))
	_, err := c.Check(context.Background(), "v1.0.0")
	assert.Error(t, err)
}

func TestCheck_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewChecker(WithAPIBaseURL(srv.URL))
	_, err := c.Check(context.Background(), "v1.0.0")
	assert.Error(t, err)
}
