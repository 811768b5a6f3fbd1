package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/picotrek/internal/config"
	"github.com/vovakirdan/picotrek/internal/core"
	"github.com/vovakirdan/picotrek/internal/platform/console"
	"github.com/vovakirdan/picotrek/internal/platform/tui"
	"github.com/vovakirdan/picotrek/internal/sst"
	"github.com/vovakirdan/picotrek/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the game",
	Long: `Start the game at the command menu.

Controls:
  Up/Down/Left/Right - Move through choices, turn the dial
  PgUp/PgDn          - Turn the dial ten steps
  Enter/Space        - Select
  Esc/Q              - Close a message
  Ctrl+C             - Quit

In console mode every prompt reads one line: type a choice (or its number)
or a value within the shown range. Console mode is used automatically when
standard input is not a terminal.

Difficulty options:
  easy   - Fewer, less aggressive Klingons and more star bases
  normal - The configured values
  hard   - More, stronger Klingons and fewer star bases

Examples:
  sst play
  sst play --difficulty easy
  sst play --seed 1701 --console < orders.txt
  sst play --config ./my-sst.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	opts := sst.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	}

	// Open the service record only when asked for
	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("service record disabled", "err", err)
			fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		} else {
			defer store.Close()
			opts.Recorder = store
		}
	}

	display, input := newPlatform(logger)
	err = sst.NewGame(display, input, opts).Run()
	if errors.Is(err, core.ErrAborted) {
		logger.Info("game aborted")
		return nil
	}
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadConfig reads the tunables and applies the difficulty preset.
func loadConfig() (config.SSTConfig, error) {
	preset, ok := config.ParseDifficulty(flagDifficulty)
	if !ok {
		return config.SSTConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	cfg, err := config.LoadSST(flagConfig)
	if err != nil {
		return config.SSTConfig{}, err
	}
	config.ApplySSTPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.SSTConfig{}, fmt.Errorf("invalid config after %s preset: %w", preset, err)
	}
	return cfg, nil
}

// newPlatform picks the TUI when both ends are terminals and the console
// otherwise.
func newPlatform(logger *log.Logger) (core.Display, core.Input) {
	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if flagConsole || !interactive {
		logger.Debug("using console", "interactive", interactive)
		c := console.New(os.Stdin, os.Stdout, sst.ScreenWidth, sst.ScreenHeight)
		return c, c
	}

	width, height := terminalSize()
	logger.Debug("using tui", "width", width, "height", height)
	t := tui.NewTerminal(sst.ScreenWidth, sst.ScreenHeight, width, height)
	return t, t
}

// terminalSize returns the size of stdout, or 80x24 when it is unknown.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
