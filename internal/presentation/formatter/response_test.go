package formatter

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/penwyp/go-oat-search/internal/core/oat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponse(status int, contentType, body string) *oat.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &oat.Response{StatusCode: status, Header: h, Body: []byte(body)}
}

func render(t *testing.T, resp *oat.Response) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewResponseFormatter(&buf).Format(resp))
	return buf.String()
}

func TestResponseFormatter_Success(t *testing.T) {
	out := render(t, newResponse(http.StatusOK, "application/json", `{"a":1}`))

	want := "Status Code: 200\n" +
		"Content-Type: application/json\n" +
		"\n" +
		"{\n    \"a\": 1\n}\n"
	assert.Equal(t, want, out)
	assert.NotContains(t, out, "Error occurred:")
}

func TestResponseFormatter_KeepsSourceKeyOrder(t *testing.T) {
	out := render(t, newResponse(http.StatusOK, "application/json", `{"b":1,"a":2}`))
	assert.True(t, strings.HasSuffix(out, "\n\n{\n    \"b\": 1,\n    \"a\": 2\n}\n"), "output: %q", out)

	out = render(t, newResponse(http.StatusOK, "application/json", `{"totalCount":1,"count":1,"items":[]}`))
	assert.True(t, strings.HasSuffix(out, "\n\n{\n    \"totalCount\": 1,\n    \"count\": 1,\n    \"items\": []\n}\n"), "output: %q", out)

	out = render(t, newResponse(http.StatusBadRequest, "application/json", `{"message":"bad","code":"E1"}`))
	assert.Contains(t, out, "Error occurred:\n{\n    \"message\": \"bad\",\n    \"code\": \"E1\"\n}\n")
}

func TestResponseFormatter_ErrorWithJSONBody(t *testing.T) {
	out := render(t, newResponse(http.StatusNotFound, "application/json", `{"error":"not found"}`))

	assert.True(t, strings.HasPrefix(out, "Status Code: 404\n"))
	assert.Contains(t, out, "\n\nError occurred:\n{\n    \"error\": \"not found\"\n}\n")
}

func TestResponseFormatter_ErrorBodyParsedRegardlessOfContentType(t *testing.T) {
	out := render(t, newResponse(http.StatusBadRequest, "text/html", `{"code":"BadRequest"}`))

	assert.Contains(t, out, "Error occurred:\n{\n    \"code\": \"BadRequest\"\n}\n")
}

func TestResponseFormatter_ErrorWithRawBody(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{
			name:   "plain text",
			status: http.StatusInternalServerError,
			body:   "upstream failure",
			want:   "Error occurred:\nupstream failure\n",
		},
		{
			name:   "empty body",
			status: http.StatusUnauthorized,
			body:   "",
			want:   "Error occurred:\n\n",
		},
		{
			name:   "redirect",
			status: http.StatusFound,
			body:   "<a href=\"/x\">Found</a>",
			want:   "Error occurred:\n<a href=\"/x\">Found</a>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, newResponse(tt.status, "text/plain", tt.body))
			assert.True(t, strings.HasSuffix(out, "\n\n"+tt.want), "output: %q", out)
		})
	}
}

func TestResponseFormatter_NonJSONSuccess(t *testing.T) {
	out := render(t, newResponse(http.StatusOK, "text/plain", "hello"))

	assert.Equal(t, "Status Code: 200\nContent-Type: text/plain\n\nhello\n", out)
}

func TestResponseFormatter_JSONLookingBodyWithTextContentType(t *testing.T) {
	out := render(t, newResponse(http.StatusOK, "text/plain", `{"a":1}`))

	assert.True(t, strings.HasSuffix(out, "\n\n{\"a\":1}\n"))
}

func TestResponseFormatter_EmptySuccessBody(t *testing.T) {
	out := render(t, newResponse(http.StatusOK, "application/json", ""))

	assert.Equal(t, "Status Code: 200\nContent-Type: application/json\n\n\n", out)
}

func TestResponseFormatter_MalformedSuccessBody(t *testing.T) {
	out := render(t, newResponse(http.StatusOK, "application/json; charset=utf-8", `{"items": [`))

	assert.True(t, strings.HasSuffix(out, "\n\n{\"items\": [\n"))
	assert.NotContains(t, out, "Error occurred:")
}

func TestResponseFormatter_Headers(t *testing.T) {
	resp := newResponse(http.StatusOK, "text/plain", "ok")
	resp.Header.Set("X-Trace", "t-1")
	resp.Header.Add("Set-Cookie", "a=1")
	resp.Header.Add("Set-Cookie", "b=2")
	resp.Header.Set("Content-Length", "2")

	out := render(t, resp)

	want := "Status Code: 200\n" +
		"Content-Length: 2\n" +
		"Content-Type: text/plain\n" +
		"Set-Cookie: a=1, b=2\n" +
		"X-Trace: t-1\n" +
		"\n" +
		"ok\n"
	assert.Equal(t, want, out)
}

func TestResponseFormatter_LargeBodyNotTruncated(t *testing.T) {
	body := strings.Repeat("x", 1<<20)
	out := render(t, newResponse(http.StatusOK, "text/plain", body))

	assert.Contains(t, out, body)
}
