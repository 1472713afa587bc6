package formatter

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/penwyp/go-oat-search/internal/core/oat"
)

// JSONIndent is the indentation used for pretty-printed bodies
const JSONIndent = "    "

// ResponseFormatter prints an API response: status, headers, a blank line and
// then either pretty-printed JSON or the raw body.
type ResponseFormatter struct {
	w io.Writer
}

func NewResponseFormatter(w io.Writer) *ResponseFormatter {
	return &ResponseFormatter{w: w}
}

func (f *ResponseFormatter) Format(resp *oat.Response) error {
	var buf bytes.Buffer

	writeMeta(&buf, resp)

	if resp.StatusCode != http.StatusOK {
		buf.WriteString("Error occurred:\n")
		writeBody(&buf, resp, true)
	} else {
		writeBody(&buf, resp, resp.IsJSONContent() && len(resp.Body) > 0)
	}

	_, err := f.w.Write(buf.Bytes())
	return err
}

// writeMeta prints the status line and every header, then a blank line.
// Header names are sorted; repeated values are joined with ", ".
func writeMeta(buf *bytes.Buffer, resp *oat.Response) {
	fmt.Fprintf(buf, "Status Code: %d\n", resp.StatusCode)

	names := make([]string, 0, len(resp.Header))
	for name := range resp.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(buf, "%s: %s\n", name, strings.Join(resp.Header[name], ", "))
	}
	buf.WriteString("\n")
}

// writeBody pretty-prints the body when tryJSON is set and it decodes,
// otherwise it writes the body text unmodified.
func writeBody(buf *bytes.Buffer, resp *oat.Response, tryJSON bool) {
	if tryJSON {
		if pretty, err := resp.Pretty(JSONIndent); err == nil {
			buf.Write(pretty)
			buf.WriteString("\n")
			return
		}
	}
	buf.WriteString(resp.Text())
	buf.WriteString("\n")
}
