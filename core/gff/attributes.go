package gff

import "strings"

// Attributes holds the key=value pairs of the ninth column.
type Attributes map[string]string

// ParseAttributes splits s on ';' and each piece on its first '='. Pieces
// without '=' are dropped; a repeated key keeps its last value. Keys and
// values are not trimmed or unescaped.
func ParseAttributes(s string) Attributes {
	attrs := Attributes{}
	for _, item := range strings.Split(s, ";") {
		k, v, found := strings.Cut(item, "=")
		if !found {
			continue
		}
		attrs[k] = v
	}
	return attrs
}

// Get returns the value for key, or def when the key is absent.
func (a Attributes) Get(key, def string) string {
	if v, ok := a[key]; ok {
		return v
	}
	return def
}
