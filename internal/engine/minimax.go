package engine

import "math"

// NoMove is returned by ChooseMove when the board has no empty cell.
const NoMove = -1

const winScore = 10

// ChooseMove - picks the best cell for MarkO by exhaustive minimax
// search. Candidate cells are tried in ascending index order and a
// later candidate replaces the current best only on a strictly higher
// score, so among equally good moves the lowest index is kept. The
// caller's board is never modified: the search mutates this function's
// own copy.
func ChooseMove(board Board) int {
	bestMove := NoMove
	bestScore := math.MinInt

	for i := range board {
		if board[i] != Empty {
			continue
		}

		board[i] = MarkO
		moveScore := score(&board, 0, false)
		board[i] = Empty

		if moveScore > bestScore {
			bestScore = moveScore
			bestMove = i
		}
	}

	return bestMove
}

// score - evaluates a position depth plies below the real board.
// Wins for MarkO count winScore-depth so nearer wins score higher;
// wins for MarkX count -winScore+depth so later losses score higher.
// The board is shared across sibling branches: each candidate mark is
// placed, scored and taken back, leaving the board unchanged on return.
func score(board *Board, depth int, maximizing bool) int {
	if result, ok := EvaluateLines(*board); ok {
		if result.Winner == MarkO {
			return winScore - depth
		}
		return -winScore + depth
	}

	if IsDraw(*board) {
		return 0
	}

	best := math.MinInt
	mark := MarkO
	if !maximizing {
		best = math.MaxInt
		mark = MarkX
	}

	for i := range board {
		if board[i] != Empty {
			continue
		}

		board[i] = mark
		childScore := score(board, depth+1, !maximizing)
		board[i] = Empty

		if maximizing && childScore > best || !maximizing && childScore < best {
			best = childScore
		}
	}

	return best
}
