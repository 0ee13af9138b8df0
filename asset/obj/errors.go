package obj

import (
	"fmt"
	"strings"
)

// ParseError is returned when a line cannot be parsed.
type ParseError struct {
	// The name of the parsed source, if known.
	Source string

	// The 1-based line number and the line contents.
	Line int
	Text string

	// The offending token; empty if the line is missing tokens.
	Token string

	Err error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Token != "" {
		msg = fmt.Sprintf("invalid token %q: %s", e.Token, msg)
	}
	if text := strings.TrimSpace(e.Text); text != "" {
		msg = fmt.Sprintf("%s (%q)", msg, text)
	}

	if e.Source != "" {
		return fmt.Sprintf("[%s: %d] error: %s", e.Source, e.Line, msg)
	}
	return fmt.Sprintf("[line %d] error: %s", e.Line, msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
