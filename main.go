package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/mike-rambil/python-snake/board"
	"github.com/mike-rambil/python-snake/game"
	"github.com/mike-rambil/python-snake/screen"
)

const (
	version = "1.0"
	title   = "Snake"
)

// logger is silent unless -log names a file; the terminal belongs to the
// game while it runs.
var logger = log.New(io.Discard, "", 0)

func main() {
	configureConsole()
	log.SetFlags(0)

	helpFlag := flag.Bool("h", false, "Display help information")
	helpLongFlag := flag.Bool("help", false, "Display help information")
	configPath := flag.String("config", "", "Path to snake.ini (default: next to the executable)")
	seedFlag := flag.Uint64("seed", 0, "Food placement seed (0: use config or clock)")
	logPath := flag.String("log", "", "Append diagnostic log lines to this file")
	flag.Usage = printHelp
	flag.Parse()

	if *helpFlag || *helpLongFlag {
		printHelp()
		return
	}

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			color.Red("Could not open log file: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.New(f, "snake: ", log.LstdFlags)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		color.Red("Snake needs an interactive terminal.")
		os.Exit(1)
	}

	// Until the screen is open a signal ends the process here. Once play owns
	// the terminal it takes over sigChan and turns signals into a game quit.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	handOff := make(chan struct{})
	go func() {
		select {
		case <-sigChan:
			fmt.Println("Game terminated by user")
			printFarewell(nil)
			os.Exit(0)
		case <-handOff:
		}
	}()

	path := *configPath
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			color.Red("Failed to locate configuration: %v", err)
			os.Exit(1)
		}
		path = p
	}
	settings, err := loadSettings(path)
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	seed := settings.Game.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Printf("config %s, seed %d", path, seed)

	close(handOff)
	res, err := play(settings, seed, sigChan)
	signal.Stop(sigChan)
	if err != nil {
		color.Red("An error occurred: %v", err)
		printFarewell(nil)
		os.Exit(1)
	}

	printFarewell(&res)
	pauseBeforeExit()
}

// play owns the terminal for the duration of one game. The deferred Close
// also runs while a panic unwinds, so the terminal is never left raw.
// Signals on sigs quit the game instead of killing the process.
func play(settings *Settings, seed uint64, sigs <-chan os.Signal) (game.Result, error) {
	theme, warnings := settings.theme()
	for _, w := range warnings {
		logger.Printf("theme: %s", w)
	}
	glyphs, err := settings.glyphs()
	if err != nil {
		return game.Result{}, err
	}

	restoreTitle := setTerminalTitle(title)
	defer restoreTitle()
	surface, err := screen.New(theme)
	if err != nil {
		return game.Result{}, fmt.Errorf("opening terminal: %w", err)
	}
	defer surface.Close()

	done := make(chan struct{})
	defer close(done)
	go forwardSignals(sigs, done, surface.Interrupt)

	width, height := surface.Configure()
	st, err := board.New(height, width, rand.New(rand.NewPCG(seed, seed>>1)))
	if err != nil {
		return game.Result{}, err
	}

	return game.Run(surface, st, game.TickInterval,
		game.WithLogger(logger),
		game.WithGlyphs(glyphs),
	), nil
}

// forwardSignals calls interrupt for the first signal on sigs, or returns
// once done is closed.
func forwardSignals(sigs <-chan os.Signal, done <-chan struct{}, interrupt func()) {
	select {
	case sig := <-sigs:
		logger.Printf("received %v, quitting", sig)
		interrupt()
	case <-done:
	}
}

func printHelp() {
	color.Yellow("%s - Version %s", title, version)
	color.White("═══════════════════════════════════════════════")
	fmt.Println()

	color.Cyan("USAGE:")
	white := color.New(color.FgWhite)
	white.Println("    snake [-seed N] [-config path] [-log file]")
	fmt.Println()

	color.Green("CONTROLS:")
	white.Println("    Arrow keys / WASD   Steer the snake")
	white.Println("    q, Esc, Ctrl+C      Quit")
	fmt.Println()

	color.Magenta("RULES:")
	white.Println("    Eat the food (*) to grow and score a point.")
	white.Println("    Hitting the border or your own body ends the game.")
	fmt.Println()

	color.Blue("CONFIG:")
	white.Printf("    %s next to the executable sets colors, glyphs and the seed.\n", configFileName)
	color.White("═══════════════════════════════════════════════")
}
