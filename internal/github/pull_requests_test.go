package github

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListOpenPullRequests_Success(t *testing.T) {
	ctx := context.Background()
	c, mux := setup(t)

	mux.HandleFunc("GET /repos/org-name/my-repo/pulls", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "open", r.URL.Query().Get("state"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		w.Write([]byte(`[
			{"number": 4, "title": "Add Code of Conduct", "html_url": "https://github.com/org-name/my-repo/pull/4", "user": {"login": "mozilla-github-standards"}},
			{"number": 7, "title": "Bump deps", "html_url": "https://github.com/org-name/my-repo/pull/7", "user": {"login": "dependabot"}}
		]`))
	})

	prs, err := c.ListOpenPullRequests(ctx, "org-name", "my-repo")

	assert.NoError(t, err)
	assert.Len(t, prs, 2)
	assert.Equal(t, 4, prs[0].Number)
	assert.Equal(t, "mozilla-github-standards", prs[0].Author)
	assert.Equal(t, "dependabot", prs[1].Author)
}

func TestListOpenPullRequests_Error(t *testing.T) {
	ctx := context.Background()
	c, mux := setup(t)

	mux.HandleFunc("GET /repos/org-name/my-repo/pulls", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "Server Error"}`))
	})

	prs, err := c.ListOpenPullRequests(ctx, "org-name", "my-repo")

	assert.Error(t, err)
	assert.Nil(t, prs)
	assert.True(t, IsServerError(err))
}

func TestCreatePullRequest_Success(t *testing.T) {
	ctx := context.Background()
	c, mux := setup(t)

	mux.HandleFunc("POST /repos/org-name/my-repo/pulls", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Add Code of Conduct", body["title"])
		assert.Equal(t, "bot:main", body["head"])
		assert.Equal(t, "master", body["base"])
		assert.Equal(t, true, body["maintainer_can_modify"])
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"number": 9, "html_url": "https://github.com/org-name/my-repo/pull/9", "user": {"login": "bot"}}`))
	})

	pr, err := c.CreatePullRequest(ctx, "org-name", "my-repo", "Add Code of Conduct", "Fixes #3", "bot:main", "master")

	assert.NoError(t, err)
	assert.Equal(t, 9, pr.Number)
	assert.Equal(t, "https://github.com/org-name/my-repo/pull/9", pr.HTMLURL)
}

func TestCreatePullRequest_AlreadyExists(t *testing.T) {
	ctx := context.Background()
	c, mux := setup(t)

	mux.HandleFunc("POST /repos/org-name/my-repo/pulls", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "Validation Failed", "errors": [{"message": "A pull request already exists for bot:main."}]}`))
	})

	pr, err := c.CreatePullRequest(ctx, "org-name", "my-repo", "t", "b", "bot:main", "master")

	assert.Error(t, err)
	assert.Zero(t, pr.Number)
	assert.True(t, IsUnprocessable(err))
}

func TestClosePullRequest_Success(t *testing.T) {
	ctx := context.Background()
	c, mux := setup(t)

	mux.HandleFunc("PATCH /repos/org-name/my-repo/pulls/12", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "closed", body["state"])
		w.Write([]byte(`{"number": 12, "state": "closed"}`))
	})

	err := c.ClosePullRequest(ctx, "org-name", "my-repo", 12)

	assert.NoError(t, err)
}
