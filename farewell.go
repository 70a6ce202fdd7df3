package main

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mike-rambil/python-snake/board"
	"github.com/mike-rambil/python-snake/game"
)

var summaryBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("3")).
	Padding(0, 2)

// summary renders the end-of-game box printed after the screen is restored.
func summary(res game.Result) string {
	p := message.NewPrinter(language.English)

	var headline string
	switch {
	case res.Reason == game.UserQuit:
		headline = "Game quit"
	case res.Outcome == board.BoardFull:
		headline = "Board cleared!"
	default:
		headline = "Game over"
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(headline),
		p.Sprintf("Final Score: %d", res.Score),
		p.Sprintf("Length:      %d", res.Length),
		p.Sprintf("Ticks:       %d", res.Ticks),
	}
	return summaryBox.Render(strings.Join(lines, "\n"))
}

func printFarewell(res *game.Result) {
	if res != nil {
		fmt.Println(summary(*res))
	}
	color.Cyan("Thanks for playing Snake!")
}

// Shells and terminal emulators that keep their window open after we exit.
var interactiveParents = map[string]map[string]bool{
	"windows": {
		"powershell.exe": true,
		"pwsh.exe":       true,
		"cmd.exe":        true,
		"wt.exe":         true,
	},
	"other": {
		"bash":                  true,
		"zsh":                   true,
		"sh":                    true,
		"fish":                  true,
		"dash":                  true,
		"tmux: server":          true,
		"gnome-terminal-server": true,
		"konsole":               true,
		"xterm":                 true,
	},
}

// shouldPause reports whether a program started by parent needs to hold the
// window open. Unknown parents pause.
func shouldPause(parent, goos string) bool {
	if parent == "" {
		return true
	}
	key := "other"
	if goos == "windows" {
		key = "windows"
	}
	return !interactiveParents[key][strings.ToLower(parent)]
}

func parentProcessName() (string, error) {
	ppid := os.Getppid()
	if ppid <= 1 {
		return "", nil
	}
	proc, err := process.NewProcess(int32(ppid))
	if err != nil {
		return "", err
	}
	return proc.Name()
}

// pauseBeforeExit waits for Enter when the game was launched outside a
// shell, e.g. by double-clicking, so the farewell stays readable.
func pauseBeforeExit() {
	parent, err := parentProcessName()
	if err != nil {
		logger.Printf("parent process lookup failed: %v", err)
	}
	if !shouldPause(parent, runtime.GOOS) {
		return
	}
	fmt.Println()
	color.Yellow("Press Enter to exit...")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}
