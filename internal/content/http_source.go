package content

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"resty.dev/v3"
)

// StatusError is returned when the document server answers with a non-success status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status code %d", e.URL, e.StatusCode)
}

// HTTPSource fetches a document with a single GET request. Failures are not retried.
type HTTPSource struct {
	httpClient *resty.Client
	url        string
	collection string
	format     Format
}

func NewHTTPSource(location, collection string, format Format, timeout time.Duration) *HTTPSource {
	client := resty.New()
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	client.SetHeader("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

	return &HTTPSource{
		httpClient: client,
		url:        location,
		collection: collection,
		format:     format,
	}
}

func (s *HTTPSource) Load(ctx context.Context) (*Document, error) {
	response, err := s.httpClient.R().
		SetContext(ctx).
		Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Get > %w", err)
	}
	if code := response.StatusCode(); code < 200 || code >= 300 {
		return nil, &StatusError{URL: s.url, StatusCode: code}
	}

	doc, err := Decode(strings.NewReader(response.String()), s.detectFormat(response.Header().Get("Content-Type")), s.collection)
	if err != nil {
		return nil, fmt.Errorf("decode %s > %w", s.url, err)
	}
	return doc, nil
}

func (s *HTTPSource) detectFormat(contentType string) Format {
	if s.format != "" {
		return s.format
	}
	if format := FormatFromContentType(contentType); format != "" {
		return format
	}
	if u, err := url.Parse(s.url); err == nil {
		if format := FormatFromPath(u.Path); format != "" {
			return format
		}
	}
	return FormatJSON
}

func (s *HTTPSource) Close() error {
	return s.httpClient.Close()
}

func (s *HTTPSource) String() string {
	return s.url
}
