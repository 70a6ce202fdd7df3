package board

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every error New returns for a board that
// cannot seat the initial snake and one food item.
var ErrConfiguration = errors.New("board: degenerate board")

// ConfigurationError describes why a board of the given size was rejected.
type ConfigurationError struct {
	Height   int
	Width    int
	Free     int // interior cells available
	Required int // cells needed for the initial snake plus food
	Reason   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("board: %dx%d board is too small (%s): %d interior cells, need %d",
		e.Height, e.Width, e.Reason, e.Free, e.Required)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
