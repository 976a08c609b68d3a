package engine

// Mark is the state of a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// Board is a tic-tac-toe grid in row-major order: index = row*3 + col.
type Board [9]Mark

// WinCombos lists every winning line. The order is fixed: when two
// lines are complete at once, the earlier entry wins.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// WinResult holds the winning mark and the line that produced it.
type WinResult struct {
	Winner Mark
	Line   [3]int
}

// EvaluateLines - reports the first completed line on the board, if any.
func EvaluateLines(board Board) (WinResult, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return WinResult{Winner: a, Line: combo}, true
		}
	}

	return WinResult{}, false
}

// IsDraw - reports whether the game ended with no winner. A won board
// is never a draw, even when it is also full.
func IsDraw(board Board) bool {
	if _, ok := EvaluateLines(board); ok {
		return false
	}

	for _, cell := range board {
		if cell == Empty {
			return false
		}
	}

	return true
}
