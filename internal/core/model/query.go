package model

import (
	"net/url"
	"time"
)

// QueryWindow is the time range a detection query covers. Both bounds are UTC.
type QueryWindow struct {
	Start time.Time
	End   time.Time
}

// RequestSpec describes the single GET issued against the detections endpoint.
type RequestSpec struct {
	BaseURL string
	Path    string
	Params  map[string]string
	Headers map[string]string
}

// URL joins base URL, path and encoded query parameters.
func (r RequestSpec) URL() (string, error) {
	u, err := url.Parse(r.BaseURL + r.Path)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, v := range r.Params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
