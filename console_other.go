//go:build !windows

package main

import (
	"fmt"
	"io"
	"os"
)

// Terminals outside Windows already speak UTF-8 and ANSI.
func configureConsole() {}

func setTerminalTitle(title string) (restore func()) {
	return writeTitle(os.Stdout, title)
}

// writeTitle saves the current title on the xterm title stack, sets title
// with OSC 0 and returns a func that pops the saved title back.
func writeTitle(w io.Writer, title string) func() {
	fmt.Fprintf(w, "\033[22;0t\033]0;%s\007", title)
	return func() { fmt.Fprint(w, "\033[23;0t") }
}
