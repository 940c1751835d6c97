package bot

import (
	"math/rand"
	"testing"

	"github.com/iamasit07/connectfour/internal/domain"
)

// drawBoard is full with no four in a row for anyone.
func drawBoard() domain.Board {
	a := []domain.Occupant{1, 1, 2, 2, 1, 1, 2}
	b := []domain.Occupant{2, 2, 1, 1, 2, 2, 1}
	var board domain.Board
	for r := 0; r < domain.Rows; r++ {
		row := a
		if r%2 == 1 {
			row = b
		}
		copy(board[r][:], row)
	}
	return board
}

func TestEasyTakesLeftmostWinningColumn(t *testing.T) {
	var board domain.Board
	for _, c := range []int{1, 2, 3} {
		board[5][c] = domain.Computer
	}
	for _, r := range []int{3, 4, 5} {
		board[r][6] = domain.Computer
	}

	got, err := NewEasy(rand.New(rand.NewSource(1))).ChooseColumn(board, domain.Computer)
	if err != nil {
		t.Fatalf("ChooseColumn: %v", err)
	}
	if got != 0 {
		t.Errorf("column = %d, want 0", got)
	}
}

func TestEasyIgnoresOpponentThreats(t *testing.T) {
	var board domain.Board
	for _, c := range []int{0, 1, 2} {
		board[5][c] = domain.PlayerOne
	}
	// with a seeded rng the pick must still be a legal column, blocking or not
	easy := NewEasy(rand.New(rand.NewSource(7)))
	for i := 0; i < 50; i++ {
		col, err := easy.ChooseColumn(board, domain.Computer)
		if err != nil {
			t.Fatalf("ChooseColumn: %v", err)
		}
		if col < 0 || col >= domain.Columns {
			t.Fatalf("column %d off the board", col)
		}
	}
}

func TestEasyOnlyPicksOpenColumns(t *testing.T) {
	board := drawBoard()
	for r := 0; r < 3; r++ {
		board[r][4] = domain.Empty
	}

	easy := NewEasy(rand.New(rand.NewSource(3)))
	for i := 0; i < 20; i++ {
		col, err := easy.ChooseColumn(board, domain.Computer)
		if err != nil {
			t.Fatalf("ChooseColumn: %v", err)
		}
		if col != 4 {
			t.Fatalf("column = %d, want 4", col)
		}
	}
}

func TestEasyRandomFallbackIsSeeded(t *testing.T) {
	var board domain.Board
	first := NewEasy(rand.New(rand.NewSource(99)))
	second := NewEasy(rand.New(rand.NewSource(99)))
	for i := 0; i < 10; i++ {
		a, _ := first.ChooseColumn(board, domain.Computer)
		b, _ := second.ChooseColumn(board, domain.Computer)
		if a != b {
			t.Fatalf("move %d: %d != %d with the same seed", i, a, b)
		}
	}
}

func TestEasyFullBoardHasNoMove(t *testing.T) {
	col, err := NewEasy(nil).ChooseColumn(drawBoard(), domain.Computer)
	if err != domain.ErrNoValidMove {
		t.Errorf("err = %v, want ErrNoValidMove", err)
	}
	if col != domain.NotFound {
		t.Errorf("column = %d, want NotFound", col)
	}
}
