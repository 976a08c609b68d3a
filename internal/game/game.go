package game

import (
	"github.com/vkig2615/tic-game/internal/apperror"
	"github.com/vkig2615/tic-game/internal/engine"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game tracks one match from the first move to a win or a draw.
// X always opens.
type Game struct {
	Board   engine.Board
	Turn    engine.Mark
	Winner  engine.Mark
	WinLine [3]int
	Status  string
}

func NewGame() *Game {
	return &Game{
		Turn:   engine.MarkX,
		Status: StatusOngoing,
	}
}

// MakeMove - places the player's mark on the given cell and advances
// the game state.
func (that *Game) MakeMove(player engine.Mark, cell int) error {
	if that.Status == StatusFinished {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return apperror.ErrInvalidCell
	}

	if that.Board[cell] != engine.Empty {
		return apperror.ErrCellOccupied
	}

	if that.Turn != player {
		return apperror.ErrNotYourTurn
	}

	that.Board[cell] = player
	that.updateStatus(player)

	return nil
}

// updateStatus - reclassifies the board after a move.
func (that *Game) updateStatus(player engine.Mark) {
	if result, ok := engine.EvaluateLines(that.Board); ok {
		that.Winner = result.Winner
		that.WinLine = result.Line
		that.Status = StatusFinished
		that.Turn = engine.Empty
		return
	}

	if engine.IsDraw(that.Board) {
		that.Status = StatusFinished
		that.Turn = engine.Empty
		return
	}

	that.Turn = toggleMark(player)
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

// IsTie - reports whether the game finished with no winner.
func (that *Game) IsTie() bool {
	return that.Status == StatusFinished && that.Winner == engine.Empty
}

func toggleMark(currentMark engine.Mark) engine.Mark {
	if currentMark == engine.MarkX {
		return engine.MarkO
	}
	return engine.MarkX
}
