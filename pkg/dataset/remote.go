package dataset

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/86sanj/datasetinsights/pkg/errors"
)

// defaultFetchTimeout bounds remote reads when the caller's context
// carries no deadline.
const defaultFetchTimeout = 30 * time.Second

// RemoteSource fetches captures and definitions from HTTP endpoints.
type RemoteSource struct {
	CapturesURL    string
	DefinitionsURL string

	// Client is used for all requests. Nil falls back to a client
	// with a 30 second timeout.
	Client *http.Client
}

// NewRemoteSource validates both endpoint URLs and returns a source
// reading from them.
func NewRemoteSource(capturesURL, definitionsURL string) (*RemoteSource, error) {
	for _, raw := range []string{capturesURL, definitionsURL} {
		parsed, err := url.Parse(raw)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid URL %q", raw)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return nil, errors.New(errors.ErrCodeInvalidInput,
				"unsupported URL scheme: %s (only http and https are supported)", parsed.Scheme)
		}
	}
	return &RemoteSource{CapturesURL: capturesURL, DefinitionsURL: definitionsURL}, nil
}

// Captures implements Source.
func (s *RemoteSource) Captures(ctx context.Context) ([]Capture, error) {
	data, err := s.fetch(ctx, s.CapturesURL)
	if err != nil {
		return nil, err
	}
	return ParseCaptures(data)
}

// Definitions implements Source.
func (s *RemoteSource) Definitions(ctx context.Context) (LabelMapping, error) {
	data, err := s.fetch(ctx, s.DefinitionsURL)
	if err != nil {
		return nil, err
	}
	return ParseDefinitions(data)
}

func (s *RemoteSource) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultFetchTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to create request for %s", rawURL)
	}
	req.Header.Set("User-Agent", "datasetinsights/1.0 (+https://github.com/86sanj/datasetinsights)")

	resp, err := s.client().Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "failed to fetch %s", rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(errors.ErrCodeNotFound, "failed to fetch %s: HTTP %d", rawURL, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "failed to read response from %s", rawURL)
	}
	return data, nil
}

func (s *RemoteSource) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{Timeout: defaultFetchTimeout}
}
