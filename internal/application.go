package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vkig2615/tic-game/internal/arena"
	"github.com/vkig2615/tic-game/internal/bot"
	"github.com/vkig2615/tic-game/internal/config"
)

var ErrUnknownOpponent = errors.New("unknown opponent strategy")

// RunApp - runs a batch of self-play games between the minimax player
// and the configured opponent.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	opponentStrategy, err := newOpponentStrategy(conf.Arena)
	if err != nil {
		return fmt.Errorf("could not build opponent strategy: %w", err)
	}

	matches := arena.New(logger, bot.NewPerfectStrategy(), opponentStrategy)

	log.Info("Starting self-play", "games", conf.Arena.Games, "opponent", conf.Arena.Opponent)

	report, err := matches.Run(ctx, conf.Arena.Games)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Self-play interrupted", "games_played", report.Games)
			return nil
		}

		return fmt.Errorf("self-play failed: %w", err)
	}

	if report.XWins > 0 {
		log.Error("Automated player lost games", "losses", report.XWins)
	}

	return nil
}

func newOpponentStrategy(conf config.Arena) (bot.Strategy, error) {
	switch conf.Opponent {
	case "random":
		return bot.NewRandomStrategy(conf.Seed), nil
	case "sequential":
		return bot.NewSequentialStrategy(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownOpponent, conf.Opponent)
	}
}
