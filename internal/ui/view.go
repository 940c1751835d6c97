package ui

import (
	"fmt"

	"github.com/iamasit07/connectfour/internal/domain"
)

const maxLogLines = 8

// View is one player's window onto the game. It implements domain.Listener.
type View struct {
	player   domain.Occupant
	board    domain.Board
	log      []string
	enabled  bool
	disposed bool

	onDispose func(*View)
}

func NewView(player domain.Occupant) *View {
	return &View{player: player}
}

func (v *View) Player() domain.Occupant {
	return v.player
}

func (v *View) Board() domain.Board {
	return v.board
}

// Log returns the most recent status lines, oldest first.
func (v *View) Log() []string {
	return append([]string(nil), v.log...)
}

// Enabled is true after a clear and false once the game is over.
func (v *View) Enabled() bool {
	return v.enabled && !v.disposed
}

func (v *View) Disposed() bool {
	return v.disposed
}

func (v *View) say(format string, args ...interface{}) {
	v.log = append(v.log, fmt.Sprintf(format, args...))
	if len(v.log) > maxLogLines {
		v.log = v.log[len(v.log)-maxLogLines:]
	}
}

func label(o domain.Occupant) string {
	return fmt.Sprintf("(%s:%s)", o, o.Color())
}

func (v *View) GameStarted(mode domain.Mode) {
	v.say("You are %s", label(v.player))
	v.say("%s starting now.....", mode)
}

func (v *View) BoardUpdated(board domain.Board, player domain.Occupant, row, column int) {
	v.board = board
}

func (v *View) GameOver(status domain.Status, player domain.Occupant) {
	switch status {
	case domain.Win:
		if player == v.player {
			v.say("You %s have won! Press s or m to restart.", label(v.player))
		} else {
			v.say("You %s have lost! Press s or m to restart.", label(v.player))
		}
	case domain.Draw:
		v.say("Draw! Press s or m to restart.")
	}
	v.enabled = false
}

func (v *View) ColumnFull(player domain.Occupant) {
	if player == v.player {
		v.say("This column is already full.")
	}
}

func (v *View) NotYourTurn(player domain.Occupant) {
	if player == v.player {
		v.say("Please wait for your opponent to go first.")
	}
}

func (v *View) BoardCleared() {
	v.board = domain.Board{}
	v.enabled = true
}

func (v *View) Dispose() {
	v.disposed = true
	if v.onDispose != nil {
		v.onDispose(v)
	}
}
