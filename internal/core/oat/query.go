package oat

import (
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/go-oat-search/internal/core/constants"
	"github.com/penwyp/go-oat-search/internal/core/model"
)

// NewQueryWindow returns the lookback window ending at now, in UTC.
func NewQueryWindow(now time.Time) model.QueryWindow {
	end := now.UTC()
	return model.QueryWindow{
		Start: end.Add(-constants.LookbackWindow),
		End:   end,
	}
}

// FormatTimestamp renders t as second-precision UTC ISO-8601 with a Z suffix.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(constants.TimestampLayout)
}

// BuildRequest assembles the detections query for the window ending at now.
// The token is inserted verbatim into the Authorization header.
func BuildRequest(baseURL, token string, now time.Time) (model.QueryWindow, model.RequestSpec) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	window := NewQueryWindow(now)
	start := FormatTimestamp(window.Start)
	end := FormatTimestamp(window.End)

	spec := model.RequestSpec{
		BaseURL: baseURL,
		Path:    constants.DetectionsPath,
		Params: map[string]string{
			constants.ParamDetectedStart: start,
			constants.ParamDetectedEnd:   end,
			constants.ParamIngestedStart: start,
			constants.ParamIngestedEnd:   end,
			constants.ParamTop:           strconv.Itoa(constants.PageSize),
		},
		Headers: map[string]string{
			constants.HeaderAuthorization: "Bearer " + token,
			constants.HeaderFilter:        constants.DetectionFilter,
		},
	}
	return window, spec
}
