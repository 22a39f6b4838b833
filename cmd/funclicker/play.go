package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/funclicker/internal/board"
	"github.com/vovakirdan/funclicker/internal/config"
	"github.com/vovakirdan/funclicker/internal/core"
	"github.com/vovakirdan/funclicker/internal/driver"
	"github.com/vovakirdan/funclicker/internal/platform/tui"
	"github.com/vovakirdan/funclicker/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play FunClicker",
	Long: `Start a game of FunClicker.

Controls:
  Mouse      - Click tiles in ascending order (the green tile is next)
  Enter      - Start from the title screen
  R          - Play again (after game over)
  M          - Back to the title screen (after game over)
  Tab        - Session history
  Q/Ctrl+C   - Quit

The timer pauses while the terminal window is unfocused.

Examples:
  funclicker play
  funclicker play --seed 42
  funclicker play --config ./my-funclicker.yaml --log-file /tmp/funclicker.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Display.TickRate,
		Seed:     seed,
	}
	logger.Info("starting", "seed", seed, "tick_rate", runtime.TickRate, "size", fmt.Sprintf("%dx%d", width, height))

	d := driver.New(
		board.NewGenerator(board.NewSource(seed)),
		core.SystemClock{},
		driver.Options{ClearDelay: cfg.ClearDelay(), Logger: logger},
	)

	// Open session history
	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open session history", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(d, store, tui.Options{
		Runtime:      runtime,
		MinCellWidth: cfg.Display.MinCellWidth,
		WarnAt:       cfg.Timer.WarnAt,
		DangerAt:     cfg.Timer.DangerAt,
		Logger:       logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	logger.Info("exiting")
	//nolint:errcheck // Best-effort close
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig loads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Display.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the application logger. The game owns the terminal,
// so logs go to the configured file or nowhere.
func newLogger(cfg config.Config) (*log.Logger, func() error, error) {
	if cfg.Log.File == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "funclicker",
		Level:           cfg.LogLevel(),
	})
	return logger, f.Close, nil
}
