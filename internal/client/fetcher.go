package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/sonascale/go-content/internal/logging"
	"github.com/sonascale/go-content/pkg/interfaces"
)

var (
	// ErrNotFound marks a CMS resource that does not exist. The server layer
	// maps it to a 404 page.
	ErrNotFound = errors.New("client: cms resource not found")
	// ErrUpstream marks any other failed CMS exchange.
	ErrUpstream = errors.New("client: cms request failed")
)

const (
	codeNotFound        = "CMS_NOT_FOUND"
	codeUpstreamStatus  = "CMS_UPSTREAM_STATUS"
	codeTransport       = "CMS_TRANSPORT"
	codeResponseDecode  = "CMS_RESPONSE_DECODE"
	codeRequestEncoding = "CMS_REQUEST_ENCODE"
)

// HTTPFetcher talks to the CMS REST API. Retry and backoff are deliberately
// left to the transport default; the gateway adds no retry policy of its own.
type HTTPFetcher struct {
	baseURL string
	token   string
	httpc   *http.Client
	log     interfaces.Logger
}

// HTTPFetcherOption mutates fetcher construction.
type HTTPFetcherOption func(*HTTPFetcher)

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(httpc *http.Client) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		if httpc != nil {
			f.httpc = httpc
		}
	}
}

// WithToken sets the CMS API bearer token.
func WithToken(token string) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		f.token = strings.TrimSpace(token)
	}
}

// WithTimeout sets the per-request timeout on the default transport.
func WithTimeout(timeout time.Duration) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		if timeout > 0 {
			f.httpc.Timeout = timeout
		}
	}
}

// WithLogger attaches a logger; the default is a no-op.
func WithLogger(logger interfaces.Logger) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		if logger != nil {
			f.log = logger
		}
	}
}

// NewHTTPFetcher builds a fetcher rooted at the CMS API base URL, e.g.
// "http://localhost:1337/api".
func NewHTTPFetcher(baseURL string, opts ...HTTPFetcherOption) *HTTPFetcher {
	fetcher := &HTTPFetcher{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
		log:     logging.NoOp(),
	}
	for _, opt := range opts {
		opt(fetcher)
	}
	return fetcher
}

var _ interfaces.Fetcher = (*HTTPFetcher)(nil)

// Get implements interfaces.Fetcher.
func (f *HTTPFetcher) Get(ctx context.Context, path, rawQuery string, out any) error {
	target := f.baseURL + "/" + strings.TrimLeft(path, "/")
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryExternal, "build cms request").
			WithTextCode(codeTransport)
	}
	f.decorate(req)

	body, err := f.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryExternal, "decode cms response").
			WithTextCode(codeResponseDecode)
	}
	return nil
}

// Post implements interfaces.Fetcher.
func (f *HTTPFetcher) Post(ctx context.Context, path string, payload, out any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryExternal, "encode cms payload").
			WithTextCode(codeRequestEncoding)
	}

	target := f.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(encoded))
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryExternal, "build cms request").
			WithTextCode(codeTransport)
	}
	req.Header.Set("Content-Type", "application/json")
	f.decorate(req)

	body, err := f.do(req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryExternal, "decode cms response").
			WithTextCode(codeResponseDecode)
	}
	return nil
}

func (f *HTTPFetcher) decorate(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
}

func (f *HTTPFetcher) do(req *http.Request) ([]byte, error) {
	started := time.Now()
	res, err := f.httpc.Do(req)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "cms transport failure").
			WithTextCode(codeTransport)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "read cms response").
			WithTextCode(codeTransport)
	}

	f.log.Debug("cms request finished",
		"method", req.Method,
		"path", req.URL.Path,
		"status", res.StatusCode,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, goerrors.Wrap(ErrNotFound, goerrors.CategoryNotFound, "cms resource not found").
			WithTextCode(codeNotFound)
	case res.StatusCode < 200 || res.StatusCode > 299:
		err := fmt.Errorf("%w: status %d", ErrUpstream, res.StatusCode)
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "cms returned an error status").
			WithTextCode(codeUpstreamStatus)
	}
	return body, nil
}

// IsNotFound reports whether err represents a missing CMS resource,
// regardless of how many times it was wrapped on the way up.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotFound) {
		return true
	}
	return goerrors.IsCategory(err, goerrors.CategoryNotFound)
}
