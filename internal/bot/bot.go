package bot

import (
	"math/rand"

	"github.com/vkig2615/tic-game/internal/apperror"
	"github.com/vkig2615/tic-game/internal/engine"
)

// Strategy picks a cell for the side to move.
type Strategy interface {
	NextCell(board engine.Board) (int, error)
}

type perfectStrategy struct{}

// NewPerfectStrategy - returns the minimax strategy. It plays MarkO.
func NewPerfectStrategy() Strategy {
	return &perfectStrategy{}
}

func (that *perfectStrategy) NextCell(board engine.Board) (int, error) {
	cell := engine.ChooseMove(board)
	if cell == engine.NoMove {
		return 0, apperror.ErrNoAvailableMoves
	}

	return cell, nil
}

type randomStrategy struct {
	rnd *rand.Rand
}

// NewRandomStrategy - returns a strategy that picks a uniformly random
// empty cell. Runs with a fixed seed are reproducible.
func NewRandomStrategy(seed int64) Strategy {
	return &randomStrategy{
		rnd: rand.New(rand.NewSource(seed)), //nolint: gosec // it's ok
	}
}

func (that *randomStrategy) NextCell(board engine.Board) (int, error) {
	availableCells := make([]int, 0, len(board))
	for i, cell := range board {
		if cell == engine.Empty {
			availableCells = append(availableCells, i)
		}
	}

	if len(availableCells) == 0 {
		return 0, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.rnd.Intn(len(availableCells))], nil
}

type sequentialStrategy struct{}

// NewSequentialStrategy - returns a strategy that always takes the
// lowest-index empty cell.
func NewSequentialStrategy() Strategy {
	return &sequentialStrategy{}
}

func (that *sequentialStrategy) NextCell(board engine.Board) (int, error) {
	for i, cell := range board {
		if cell == engine.Empty {
			return i, nil
		}
	}

	return 0, apperror.ErrNoAvailableMoves
}
