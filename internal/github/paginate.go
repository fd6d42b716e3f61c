package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
)

const (
	maxRetries = 5
	baseDelay  = 1 * time.Second
	pageSize   = 100
)

type pageFunc[T any] func(opts gh.ListOptions) ([]T, *gh.Response, error)

func listAll[T any](ctx context.Context, fetch pageFunc[T]) ([]T, error) {
	var all []T
	opts := gh.ListOptions{PerPage: pageSize}

	for {
		items, resp, err := withRetry(ctx, func() ([]T, *gh.Response, error) {
			return fetch(opts)
		})
		if err != nil {
			return nil, err
		}

		all = append(all, items...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

func withRetry[T any](ctx context.Context, call func() (T, *gh.Response, error)) (T, *gh.Response, error) {
	var zero T

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, resp, err := call()
		if err == nil {
			return result, resp, nil
		}

		var rateLimitErr *gh.RateLimitError
		if !errors.As(err, &rateLimitErr) {
			return zero, resp, err
		}

		if attempt == maxRetries {
			return zero, resp, fmt.Errorf("max retries reached: %w", err)
		}

		waitDuration := time.Until(rateLimitErr.Rate.Reset.Time)
		if waitDuration < 0 {
			waitDuration = baseDelay * time.Duration(1<<attempt)
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return zero, nil, ctx.Err()
		}
	}

	return zero, nil, fmt.Errorf("unexpected retry loop exit")
}
