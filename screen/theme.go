package screen

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/mike-rambil/python-snake/game"
)

// Theme holds the foreground color for each drawing role.
type Theme struct {
	Snake  tcell.Color
	Food   tcell.Color
	Text   tcell.Color
	Border tcell.Color
}

// DefaultTheme is green snake, red food and yellow text on the terminal
// background.
func DefaultTheme() Theme {
	return Theme{
		Snake:  tcell.ColorGreen,
		Food:   tcell.ColorRed,
		Text:   tcell.ColorYellow,
		Border: tcell.ColorReset,
	}
}

// Style resolves a drawing role to a tcell style.
func (t Theme) Style(s game.Style) tcell.Style {
	st := tcell.StyleDefault
	switch s {
	case game.StyleSnake:
		return st.Foreground(t.Snake)
	case game.StyleFood:
		return st.Foreground(t.Food)
	case game.StyleText:
		return st.Foreground(t.Text)
	case game.StyleTitle:
		return st.Foreground(t.Text).Bold(true)
	case game.StyleBorder:
		return st.Foreground(t.Border)
	}
	return st
}

// ParseColor accepts a tcell color name ("green", "darkred") or a #rrggbb
// value. An empty name yields ColorReset.
func ParseColor(name string) (tcell.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "", "default", "reset":
		return tcell.ColorReset, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return tcell.ColorReset, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
