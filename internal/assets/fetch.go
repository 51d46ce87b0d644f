package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fetcher downloads externally hosted assets.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// HTTPFetcher fetches assets over HTTP. Site-relative references are
// resolved against BaseURL; without one they cannot be fetched.
type HTTPFetcher struct {
	Client  *http.Client
	BaseURL string
}

// NewHTTPFetcher returns a fetcher with the given per-request timeout.
// A zero timeout means no timeout.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		Client:  &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Fetch downloads ref. Every failure wraps ErrAssetFetchFailure.
func (f *HTTPFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	target := ref
	switch Classify(ref) {
	case KindURL:
	case KindRelative:
		if f.BaseURL == "" {
			return nil, fmt.Errorf("%w: relative reference %s needs an asset base URL", ErrAssetFetchFailure, ref)
		}
		target = f.BaseURL + ref
	default:
		return nil, fmt.Errorf("%w: %s is not fetchable", ErrAssetFetchFailure, shortRef(ref))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetFetchFailure, err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetFetchFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s returned %s", ErrAssetFetchFailure, target, resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetFetchFailure, target, err)
	}
	return data, nil
}
