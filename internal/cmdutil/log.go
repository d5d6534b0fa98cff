// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a stderr-style logger prefixed with the tool name.
func NewLogger(dst io.Writer, name, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return log.NewWithOptions(dst, log.Options{
		Prefix: name,
		Level:  lvl,
	}), nil
}
