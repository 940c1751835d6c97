package domain

import (
	"math/rand"
	"testing"
)

// boardFrom reads rows top to bottom: '.' empty, 'X' PlayerOne, 'O' PlayerTwo,
// 'C' Computer.
func boardFrom(t *testing.T, rows ...string) Board {
	t.Helper()
	if len(rows) != Rows {
		t.Fatalf("need %d rows, got %d", Rows, len(rows))
	}
	var b Board
	for r, line := range rows {
		if len(line) != Columns {
			t.Fatalf("row %d has %d cells", r, len(line))
		}
		for c, ch := range line {
			switch ch {
			case 'X':
				b[r][c] = PlayerOne
			case 'O':
				b[r][c] = PlayerTwo
			case 'C':
				b[r][c] = Computer
			}
		}
	}
	return b
}

func TestHasWonEveryOrientation(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		who   Occupant
		other Occupant
	}{
		{"horizontal", []string{
			".......",
			".......",
			".......",
			".......",
			".......",
			".XXXX..",
		}, PlayerOne, PlayerTwo},
		{"vertical", []string{
			".......",
			".......",
			"O......",
			"O......",
			"O......",
			"O......",
		}, PlayerTwo, PlayerOne},
		{"diagonal down-right", []string{
			".......",
			".......",
			"C......",
			"XC.....",
			"XXC....",
			"XXXC...",
		}, Computer, PlayerOne},
		{"diagonal up-right", []string{
			".......",
			".......",
			"...X...",
			"..XO...",
			".XOO...",
			"XOOO...",
		}, PlayerOne, PlayerTwo},
		{"right edge of top row", []string{
			"...OOOO",
			"...XXXO",
			"...XXXO",
			"...OOOX",
			"...XXXO",
			"...XXXO",
		}, PlayerTwo, Computer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom(t, tc.rows...)
			if !HasWon(b, tc.who) {
				t.Errorf("HasWon(%v) = false", tc.who)
			}
			if HasWon(b, tc.other) {
				t.Errorf("HasWon(%v) = true", tc.other)
			}
		})
	}
}

func TestAnchoredRuns(t *testing.T) {
	b := boardFrom(t,
		".......",
		".......",
		"X......",
		"X..C...",
		"X.C....",
		"XC..OOO",
	)
	for row := 2; row < Rows; row++ {
		if !HasVerticalRun(b, PlayerOne, row, 0) {
			t.Errorf("vertical run not seen from row %d", row)
		}
	}
	if HasVerticalRun(b, PlayerOne, 1, 0) {
		t.Error("empty anchor reported a run")
	}
	if HasHorizontalRun(b, PlayerTwo, 5, 5) {
		t.Error("three in a row reported as a run")
	}
	if HasDiagonalRun(b, Computer, 5, 1) || HasDiagonalRun(b, Computer, 3, 3) {
		t.Error("three on a diagonal reported as a run")
	}
}

func TestDiagonalWindowsStartAtTheAnchor(t *testing.T) {
	b := boardFrom(t,
		".......",
		".......",
		"C......",
		".C.....",
		"..C....",
		"...C...",
	)
	if !HasDiagonalRun(b, Computer, 2, 0) {
		t.Error("top end of the diagonal should see the run")
	}
	if !HasDiagonalRun(b, Computer, 5, 3) {
		t.Error("bottom end of the diagonal should see the run")
	}
	// inner cells have no in-bounds 4-window starting at them in this corner
	if HasDiagonalRun(b, Computer, 3, 1) {
		t.Error("inner anchor unexpectedly saw the run")
	}
	if !HasWon(b, Computer) {
		t.Error("full scan missed the diagonal")
	}
}

func TestRunsLongerThanFourStillCount(t *testing.T) {
	b := boardFrom(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"XXXXX..",
	)
	for c := 0; c < 5; c++ {
		if !HasHorizontalRun(b, PlayerOne, 5, c) {
			t.Errorf("cell %d of a five run not detected", c)
		}
	}
}

func TestBrokenLinesDoNotWin(t *testing.T) {
	b := boardFrom(t,
		".......",
		".......",
		"X......",
		"O......",
		"X......",
		"XX.XX.X",
	)
	if HasWon(b, PlayerOne) {
		t.Error("gapped line counted as a win")
	}
}

func TestAnyLineThroughRequiresOwnedAnchor(t *testing.T) {
	b := boardFrom(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"OOOO...",
	)
	if AnyLineThrough(b, PlayerOne, 5, 0) {
		t.Error("anchor owned by someone else")
	}
	if AnyLineThrough(b, PlayerTwo, -1, 0) || AnyLineThrough(b, PlayerTwo, 5, Columns) {
		t.Error("out of bounds anchor")
	}
	if !AnyLineThrough(b, PlayerTwo, 5, 0) {
		t.Error("run through (5, 0) not seen")
	}
}

func TestFullBoardWithoutRunIsNoWin(t *testing.T) {
	b := boardFrom(t,
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
		"XXOOXXO",
		"OOXXOOX",
	)
	if HasWon(b, PlayerOne) || HasWon(b, PlayerTwo) {
		t.Fatal("draw board reported a win")
	}
	if !GridFromBoard(b).IsFull() {
		t.Fatal("board should be full")
	}
}

// The local check around the last disc must agree with the full scan for
// every position reached by legal play.
func TestWinsAtMatchesFullScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	players := []Occupant{PlayerOne, PlayerTwo}

	for game := 0; game < 2000; game++ {
		g := NewGrid()
		turn := rng.Intn(2)
		for {
			cols := g.ValidColumns()
			if len(cols) == 0 {
				break
			}
			player := players[turn]
			col := cols[rng.Intn(len(cols))]
			row, err := g.Drop(col, player)
			if err != nil {
				t.Fatalf("drop: %v", err)
			}
			b := g.Snapshot()
			full, local := HasWon(b, player), WinsAt(b, row, col)
			if full != local {
				t.Fatalf("game %d: HasWon=%v WinsAt=%v on\n%v", game, full, local, b)
			}
			if full {
				break
			}
			turn = 1 - turn
		}
	}
}
