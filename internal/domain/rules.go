package domain

// The run checks below are anchored on one cell known to hold player. A run
// is only reported when the window reaches exactly ToWin matching cells, and
// no window ever steps outside the grid.

// HasVerticalRun reports whether the anchor sits inside a vertical run.
func HasVerticalRun(b Board, player Occupant, row, column int) bool {
	return anchoredRun(b, player, row, column, 1, 0)
}

// HasHorizontalRun reports whether the anchor sits inside a horizontal run.
func HasHorizontalRun(b Board, player Occupant, row, column int) bool {
	return anchoredRun(b, player, row, column, 0, 1)
}

var diagonals = [4][2]int{
	{-1, -1}, // up-left
	{-1, 1},  // up-right
	{1, 1},   // down-right
	{1, -1},  // down-left
}

// HasDiagonalRun checks the four diagonal windows that start at the anchor.
// Each window is skipped unless its far end is on the board.
func HasDiagonalRun(b Board, player Occupant, row, column int) bool {
	if !InBounds(row, column) || b[row][column] != player {
		return false
	}
	for _, d := range diagonals {
		endRow, endCol := row+d[0]*(ToWin-1), column+d[1]*(ToWin-1)
		if !InBounds(endRow, endCol) {
			continue
		}
		count := 0
		for i := 0; i < ToWin; i++ {
			if b[row+d[0]*i][column+d[1]*i] == player {
				count++
			}
		}
		if count == ToWin {
			return true
		}
	}
	return false
}

// AnyLineThrough is the unit used by win evaluation.
func AnyLineThrough(b Board, player Occupant, row, column int) bool {
	if !InBounds(row, column) || b[row][column] != player {
		return false
	}
	return HasVerticalRun(b, player, row, column) ||
		HasHorizontalRun(b, player, row, column) ||
		HasDiagonalRun(b, player, row, column)
}

// HasWon tests every cell owned by player. Anchors do not guarantee detection
// on their own, so the whole board has to be scanned.
func HasWon(b Board, player Occupant) bool {
	if player == Empty {
		return false
	}
	for row := 0; row < Rows; row++ {
		for column := 0; column < Columns; column++ {
			if b[row][column] == player && AnyLineThrough(b, player, row, column) {
				return true
			}
		}
	}
	return false
}

// WinsAt only looks at the lines passing through (row, column). For boards
// reached by legal play it agrees with HasWon for the player who just moved.
func WinsAt(b Board, row, column int) bool {
	if !InBounds(row, column) {
		return false
	}
	player := b[row][column]
	if player == Empty {
		return false
	}
	directions := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for _, d := range directions {
		total := 1 + CountDiskInDirection(b, row, column, d[0], d[1], player) +
			CountDiskInDirection(b, row, column, -d[0], -d[1], player)
		if total >= ToWin {
			return true
		}
	}
	return false
}

// this counts the number of disks in a specific direction
func CountDiskInDirection(b Board, row, column, deltaRow, deltaCol int, player Occupant) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for InBounds(r, c) && b[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// anchoredRun extends from the anchor both ways along (dr, dc), stopping at
// the edge, at the first foreign cell, or once the window holds ToWin cells.
func anchoredRun(b Board, player Occupant, row, column, dr, dc int) bool {
	if !InBounds(row, column) || b[row][column] != player {
		return false
	}
	count := 1
	for r, c := row-dr, column-dc; count < ToWin && InBounds(r, c) && b[r][c] == player; r, c = r-dr, c-dc {
		count++
	}
	for r, c := row+dr, column+dc; count < ToWin && InBounds(r, c) && b[r][c] == player; r, c = r+dr, c+dc {
		count++
	}
	return count == ToWin
}
