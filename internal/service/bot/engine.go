package bot

import (
	"github.com/iamasit07/connectfour/internal/domain"
)

// Strategy picks the column the computer plays next.
type Strategy interface {
	ChooseColumn(board domain.Board, me domain.Occupant) (int, error)
}
