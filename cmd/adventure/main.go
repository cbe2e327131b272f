package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/text-adventure/internal/config"
	"github.com/jwebster45206/text-adventure/internal/logger"
	"github.com/jwebster45206/text-adventure/internal/storage"
	"github.com/jwebster45206/text-adventure/pkg/scenario"
	"github.com/jwebster45206/text-adventure/pkg/state"
	pkgstorage "github.com/jwebster45206/text-adventure/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go somewhere visible in plain
	// mode or when LOG_FILE is set.
	var logOut io.Writer = os.Stderr
	if cfg.ConsoleMode == config.ModeTUI {
		logOut = io.Discard
	}
	log, closeLog, err := logger.Setup(cfg, logOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = closeLog()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		stop()
		_ = closeLog()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	w, err := scenario.NewLoader(log).LoadFile(cfg.WorldFile)
	if err != nil {
		logger.WithError(log, err).Error("Failed to load world", "path", cfg.WorldFile)
		return fmt.Errorf("failed to load world: %w", err)
	}

	store, err := newStore(ctx, cfg, log)
	if err != nil {
		// The game is still playable, only save and load are lost.
		logger.WithError(log, err).Warn("Save storage unavailable", "backend", cfg.SaveBackend)
	} else {
		defer func() {
			_ = store.Close()
		}()
	}

	var saves state.SaveStore
	if store != nil {
		saves = store
	}
	g, err := state.NewGame(w, saves, log)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	log.Info("Game started", "world", cfg.WorldFile, "start_room", w.StartRoom())

	if cfg.ConsoleMode == config.ModePlain {
		return runPlain(ctx, g, os.Stdin, os.Stdout, cfg.WrapWidth)
	}

	p := tea.NewProgram(NewGameUI(ctx, g, cfg.WorldFile),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// newStore opens the configured save backend.
func newStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (pkgstorage.Storage, error) {
	switch cfg.SaveBackend {
	case config.BackendRedis:
		rs, err := storage.NewRedisStore(cfg.RedisURL, cfg.SaveKey, log)
		if err != nil {
			return nil, err
		}
		waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rs.WaitForConnection(waitCtx, 5, 500*time.Millisecond); err != nil {
			_ = rs.Close()
			return nil, err
		}
		return rs, nil
	default:
		fs, err := storage.NewFileStore(cfg.SavePath, log)
		if err != nil {
			return nil, err
		}
		if err := fs.Ping(ctx); err != nil {
			return nil, err
		}
		return fs, nil
	}
}
