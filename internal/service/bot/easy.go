package bot

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/iamasit07/connectfour/internal/domain"
)

// Easy looks one ply ahead for its own win and otherwise plays a random open
// column. It never looks at the opponent's threats.
type Easy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEasy uses rng for the random fallback. A nil rng is seeded from the clock.
func NewEasy(rng *rand.Rand) *Easy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Easy{rng: rng}
}

func (e *Easy) ChooseColumn(board domain.Board, me domain.Occupant) (int, error) {
	validColumns := domain.GridFromBoard(board).ValidColumns()
	if len(validColumns) == 0 {
		return domain.NotFound, domain.ErrNoValidMove
	}

	for _, col := range validColumns {
		testBoard, _, err := domain.SimulateMove(board, col, me)
		if err != nil {
			continue
		}
		if domain.HasWon(testBoard, me) {
			log.Printf("[BOT] Winning move found in column %d", col)
			return col, nil
		}
	}

	e.mu.Lock()
	col := validColumns[e.rng.Intn(len(validColumns))]
	e.mu.Unlock()
	return col, nil
}
