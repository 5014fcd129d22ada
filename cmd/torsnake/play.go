package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkamenev/torsnake/internal/audio"
	"github.com/mkamenev/torsnake/internal/config"
	"github.com/mkamenev/torsnake/internal/game"
	"github.com/mkamenev/torsnake/internal/platform/tui"
	"github.com/mkamenev/torsnake/internal/scores"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  Enter/Space      - Start
  P/Esc            - Pause
  X                - End the run and save your score
  R                - New game (after game over)
  Q/Ctrl+C         - Quit

Swipes work too on terminals with mouse support: drag at least three
cells in under 300ms.

Examples:
  torsnake play
  torsnake play --mute
  torsnake play --seed 42
  torsnake play --config ./my-config.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := game.New(cfg.GameOptions(seed))

	// Open score persistence; the game still works without it.
	var store *scores.Store
	backend, err := scores.Open(cfg.Scores.Backend, cfg.Scores.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score store: %v\n", err)
	} else {
		store = scores.NewStore(backend)
		store.SetLimit(cfg.Scores.Limit)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var sound audio.Player = audio.NewBellPlayer(nil)
	sound.SetEnabled(cfg.Audio.Enabled && !flagMute)

	runErr := tui.Run(g, store, sound, width, height)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
