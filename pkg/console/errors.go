package console

import (
	"errors"
	"fmt"
)

// ErrEmptyHistory is returned by edit-mode operations when nothing has been
// appended to the scrollback yet, so there is no entry to replace.
var ErrEmptyHistory = errors.New("console: no entry to replace")

// ConfigError reports a non-positive layout parameter passed to the buffer.
type ConfigError struct {
	Param string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("console: %s must be positive, got %d", e.Param, e.Value)
}
