package github

import (
	"errors"
	"net/http"

	gh "github.com/google/go-github/v80/github"
)

// StatusCode extracts the HTTP status from a GitHub API error, or 0 if err carries none.
func StatusCode(err error) int {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return errResp.Response.StatusCode
	}
	var accepted *gh.AcceptedError
	if errors.As(err, &accepted) {
		return http.StatusAccepted
	}
	return 0
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func IsUnprocessable(err error) bool {
	return StatusCode(err) == http.StatusUnprocessableEntity
}

// IsPermission reports whether the authenticated identity lacks the scope or role for the
// request. Rate limit errors are not permission errors even though they share status 403.
func IsPermission(err error) bool {
	code := StatusCode(err)
	return code == http.StatusForbidden || code == http.StatusUnauthorized
}

// IsAccepted reports whether GitHub queued the request instead of completing it.
func IsAccepted(err error) bool {
	var accepted *gh.AcceptedError
	return errors.As(err, &accepted)
}

func IsServerError(err error) bool {
	return StatusCode(err) >= http.StatusInternalServerError
}
