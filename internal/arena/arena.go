package arena

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vkig2615/tic-game/internal/bot"
	"github.com/vkig2615/tic-game/internal/engine"
	"github.com/vkig2615/tic-game/internal/game"
)

// Report sums up one batch of self-play games from the automated
// player's point of view: it plays O, the opponent plays X.
type Report struct {
	Games int
	OWins int
	XWins int
	Ties  int
}

// Arena plays complete games between the automated player and an
// opponent strategy.
type Arena struct {
	logger *slog.Logger

	botStrategy      bot.Strategy
	opponentStrategy bot.Strategy
}

func New(logger *slog.Logger, botStrategy, opponentStrategy bot.Strategy) *Arena {
	return &Arena{
		logger:           logger.With("component", "arena"),
		botStrategy:      botStrategy,
		opponentStrategy: opponentStrategy,
	}
}

// Run - plays the requested number of games and reports the outcomes.
// Cancellation is checked between games; a started game always runs to
// completion.
func (that *Arena) Run(ctx context.Context, games int) (*Report, error) {
	report := &Report{}

	for i := 0; i < games; i++ {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		winner, err := that.playGame()
		if err != nil {
			return report, fmt.Errorf("game %d failed: %w", i, err)
		}

		report.Games++
		switch winner {
		case engine.MarkO:
			report.OWins++
		case engine.MarkX:
			report.XWins++
		default:
			report.Ties++
		}
	}

	that.logger.Info("batch finished",
		"games", report.Games,
		"o_wins", report.OWins,
		"x_wins", report.XWins,
		"ties", report.Ties,
	)

	return report, nil
}

// playGame - drives one game to the end and returns the winning mark,
// or engine.Empty on a tie.
func (that *Arena) playGame() (engine.Mark, error) {
	currentGame := game.NewGame()

	for !currentGame.IsFinished() {
		mark := currentGame.Turn

		strategy := that.opponentStrategy
		if mark == engine.MarkO {
			strategy = that.botStrategy
		}

		cell, err := strategy.NextCell(currentGame.Board)
		if err != nil {
			return engine.Empty, fmt.Errorf("%s failed to choose a cell: %w", mark, err)
		}

		if err := currentGame.MakeMove(mark, cell); err != nil {
			return engine.Empty, fmt.Errorf("%s failed to make move at %d: %w", mark, cell, err)
		}
	}

	return currentGame.Winner, nil
}
