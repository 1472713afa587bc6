package oat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-oat-search/internal/core/model"
	"github.com/penwyp/go-oat-search/internal/util"
)

// jsonAPI decodes numbers verbatim
var jsonAPI = sonic.Config{
	UseNumber: true,
}.Froze()

// Client issues the detections query. It performs no retries.
type Client struct {
	httpClient *http.Client
}

// NewClient returns a client using the default HTTP transport without a timeout.
func NewClient() *Client {
	return &Client{httpClient: &http.Client{}}
}

// Fetch performs one GET described by spec and reads the whole body.
// Any HTTP status is a successful fetch; only transport failures return an error.
func (c *Client) Fetch(ctx context.Context, spec model.RequestSpec) (*Response, error) {
	target, err := spec.URL()
	if err != nil {
		return nil, fmt.Errorf("failed to build request URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range spec.Headers {
		req.Header.Set(k, v)
	}

	util.LogDebugf("GET %s%s (%d params)", spec.BaseURL, spec.Path, len(spec.Params))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		util.LogDebugf("Request failed: %v", err)
		return nil, fmt.Errorf("failed to fetch detections: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	util.LogDebugf("Received status %d with %d body bytes", resp.StatusCode, len(body))

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// Response holds the raw body and a lazily decoded JSON view of it.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	decoded  bool
	value    interface{}
	parseErr error
}

// ContentType returns the Content-Type header value.
func (r *Response) ContentType() string {
	return r.Header.Get("Content-Type")
}

// IsJSONContent reports whether the Content-Type mentions application/json.
func (r *Response) IsJSONContent() bool {
	return strings.Contains(r.ContentType(), "application/json")
}

// Text returns the body unmodified.
func (r *Response) Text() string {
	return string(r.Body)
}

// JSON decodes the body once and caches the result.
func (r *Response) JSON() (interface{}, error) {
	if !r.decoded {
		r.decoded = true
		if len(r.Body) == 0 {
			r.parseErr = ErrEmptyBody
		} else {
			r.parseErr = jsonAPI.Unmarshal(r.Body, &r.value)
		}
	}
	return r.value, r.parseErr
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v interface{}) error {
	if len(r.Body) == 0 {
		return ErrEmptyBody
	}
	return jsonAPI.Unmarshal(r.Body, v)
}

// Pretty re-indents the body with the given indent. Key order, number
// literals and string escapes are kept exactly as received.
func (r *Response) Pretty(indent string) ([]byte, error) {
	if _, err := r.JSON(); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, bytes.TrimSpace(r.Body), "", indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
