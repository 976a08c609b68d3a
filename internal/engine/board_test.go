package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateLines(t *testing.T) {
	t.Run("Returns X win on the top row", func(t *testing.T) {
		// Given: a board where X holds the whole top row
		board := Board{
			MarkX, MarkX, MarkX,
			Empty, MarkO, Empty,
			MarkO, Empty, Empty,
		}

		// When: evaluating the lines
		result, ok := EvaluateLines(board)

		// Then: the win and the exact line should be reported
		require.True(t, ok)
		assert.Equal(t, MarkX, result.Winner)
		assert.Equal(t, [3]int{0, 1, 2}, result.Line)
	})

	t.Run("Returns O win on a column", func(t *testing.T) {
		// Given: a board where O holds the middle column
		board := Board{
			MarkX, MarkO, Empty,
			MarkX, MarkO, Empty,
			Empty, MarkO, MarkX,
		}

		// When: evaluating the lines
		result, ok := EvaluateLines(board)

		// Then: the win and the exact line should be reported
		require.True(t, ok)
		assert.Equal(t, MarkO, result.Winner)
		assert.Equal(t, [3]int{1, 4, 7}, result.Line)
	})

	t.Run("Returns O win on a diagonal", func(t *testing.T) {
		// Given: a board where O holds the main diagonal
		board := Board{
			MarkO, MarkX, MarkX,
			Empty, MarkO, Empty,
			Empty, Empty, MarkO,
		}

		// When: evaluating the lines
		result, ok := EvaluateLines(board)

		// Then: the win and the exact line should be reported
		require.True(t, ok)
		assert.Equal(t, MarkO, result.Winner)
		assert.Equal(t, [3]int{0, 4, 8}, result.Line)
	})

	t.Run("Reports every winning combo for both marks", func(t *testing.T) {
		for _, combo := range WinCombos {
			for _, mark := range []Mark{MarkX, MarkO} {
				// Given: a board with only one combo filled
				board := Board{}
				for _, cell := range combo {
					board[cell] = mark
				}

				// When: evaluating the lines
				result, ok := EvaluateLines(board)

				// Then: exactly that combo should be reported
				require.True(t, ok)
				assert.Equal(t, mark, result.Winner)
				assert.Equal(t, combo, result.Line)
			}
		}
	})

	t.Run("Earlier combo wins when two lines are complete", func(t *testing.T) {
		// Given: a board where X completes both the top row and the left column
		board := Board{
			MarkX, MarkX, MarkX,
			MarkX, Empty, Empty,
			MarkX, Empty, Empty,
		}

		// When: evaluating the lines
		result, ok := EvaluateLines(board)

		// Then: the top row should win, since it comes first in WinCombos
		require.True(t, ok)
		assert.Equal(t, [3]int{0, 1, 2}, result.Line)
	})

	t.Run("Returns nothing on a board with no complete line", func(t *testing.T) {
		// Given: an ongoing board
		board := Board{
			MarkX, MarkO, Empty,
			Empty, MarkX, Empty,
			Empty, Empty, MarkO,
		}

		// When: evaluating the lines
		_, ok := EvaluateLines(board)

		// Then: no win should be reported
		assert.False(t, ok)
	})

	t.Run("Returns nothing on an empty board", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: evaluating the lines
		_, ok := EvaluateLines(board)

		// Then: no win should be reported
		assert.False(t, ok)
	})
}

func TestIsDraw(t *testing.T) {
	t.Run("Returns true on a full board with no winner", func(t *testing.T) {
		// Given: a full board with no complete line
		board := Board{
			MarkX, MarkO, MarkX,
			MarkO, MarkX, MarkO,
			MarkO, MarkX, MarkO,
		}

		// When: checking for a draw
		isDraw := IsDraw(board)

		// Then: it should be a draw
		assert.True(t, isDraw)
	})

	t.Run("Returns false when a line is complete even on a full board", func(t *testing.T) {
		// Given: a full board where X holds the bottom row
		board := Board{
			MarkO, MarkX, MarkO,
			MarkO, MarkO, MarkX,
			MarkX, MarkX, MarkX,
		}

		// When: checking for a draw
		isDraw := IsDraw(board)

		// Then: it should not be a draw
		assert.False(t, isDraw)
	})

	t.Run("Returns false while empty cells remain", func(t *testing.T) {
		// Given: an ongoing board with one empty cell
		board := Board{
			MarkX, MarkO, MarkX,
			MarkO, MarkX, MarkO,
			MarkO, MarkX, Empty,
		}

		// When: checking for a draw
		isDraw := IsDraw(board)

		// Then: it should not be a draw
		assert.False(t, isDraw)
	})
}
