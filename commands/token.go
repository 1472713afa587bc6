package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/penwyp/go-oat-search/internal/core/oat"
	"golang.org/x/term"
)

// stdinToken asks for the token to be read from standard input
const stdinToken = "-"

// resolveToken returns value verbatim unless it is "-", in which case the token
// is read from in. A terminal is read without echo.
func resolveToken(value string, in io.Reader, prompt io.Writer) (string, error) {
	if value != stdinToken {
		return value, nil
	}

	var raw string
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "API token: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read API token: %w", err)
		}
		raw = string(b)
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read API token: %w", err)
		}
		raw = line
	}

	token := strings.TrimSpace(raw)
	if token == "" {
		return "", oat.ErrEmptyToken
	}
	return token, nil
}
