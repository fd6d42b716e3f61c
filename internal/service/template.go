package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

const maxTemplateSize = 1 << 20

// TemplateStatusError reports a non 200 answer from the template host.
type TemplateStatusError struct {
	Code int
}

func (e TemplateStatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// TemplateService downloads the reference file committed by remediation pull requests.
type TemplateService interface {
	Fetch(ctx context.Context, sourceURL string) (string, error)
}

type templateService struct {
	httpClient *http.Client
}

func NewTemplateService(httpClient *http.Client) TemplateService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &templateService{httpClient: httpClient}
}

func (s *templateService) Fetch(ctx context.Context, sourceURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", fmt.Errorf("building template request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching template: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching template %s: %w", sourceURL, TemplateStatusError{Code: resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTemplateSize))
	if err != nil {
		return "", fmt.Errorf("reading template: %w", err)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("template %s is empty", sourceURL)
	}
	return string(body), nil
}
