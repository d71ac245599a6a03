package openapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// LoaderOptions controls where Fetch may read documents from.
type LoaderOptions struct {
	// HTTPClient is used for http and https locations. Nil disables remote
	// documents.
	HTTPClient *http.Client
	// RequestTimeout caps remote fetches when positive.
	RequestTimeout time.Duration
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// WithHTTPClient enables remote documents through client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables remote documents through a default client.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		if opts.HTTPClient == nil {
			opts.HTTPClient = &http.Client{}
		}
		opts.RequestTimeout = timeout
	}
}

// ErrHTTPDisabled is returned when a URL is fetched without an HTTP client.
var ErrHTTPDisabled = errors.New("openapi: http support disabled")

// Fetch reads a document from a file path or, when enabled, an http(s) URL.
func Fetch(ctx context.Context, location string, options ...LoaderOption) ([]byte, error) {
	var opts LoaderOptions
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}

	if !isRemote(location) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("openapi: read %s: %w", location, err)
		}
		return data, nil
	}

	if opts.HTTPClient == nil {
		return nil, fmt.Errorf("%s: %w", location, ErrHTTPDisabled)
	}
	if opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.RequestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("openapi: build request: %w", err)
	}
	resp, err := opts.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openapi: fetch %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("openapi: fetch %s: unexpected status %d", location, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openapi: read body %s: %w", location, err)
	}
	return data, nil
}

func isRemote(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
