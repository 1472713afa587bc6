package oat

import "errors"

// ErrEmptyToken is returned when the API token resolves to an empty string
var ErrEmptyToken = errors.New("API token is empty")

// ErrEmptyBody is returned when a JSON view of an empty body is requested
var ErrEmptyBody = errors.New("response body is empty")
