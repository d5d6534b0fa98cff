package cds

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// DefaultCountTemplate is the count-file message used when none is configured.
const DefaultCountTemplate = "The HCMV genome (GCF_000845245.1) has {{.Count}} CDS."

// Summary is the data available to a count template.
type Summary struct {
	Count int
}

// CountMessage is a parsed count template.
type CountMessage struct {
	tmpl *template.Template
}

// ParseCountTemplate parses text as a text/template over Summary.
func ParseCountTemplate(text string) (*CountMessage, error) {
	t, err := template.New("count").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("count template: %w", err)
	}
	return &CountMessage{tmpl: t}, nil
}

// Render returns the message for count, without a trailing newline.
func (m *CountMessage) Render(count int) (string, error) {
	var b strings.Builder
	if err := m.tmpl.Execute(&b, Summary{Count: count}); err != nil {
		return "", fmt.Errorf("count template: %w", err)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// Write writes the rendered message for count as a single line.
func (m *CountMessage) Write(w io.Writer, count int) error {
	msg, err := m.Render(count)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, msg)
	return err
}
