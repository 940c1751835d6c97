package notifier

import "github.com/iamasit07/connectfour/internal/domain"

// Notifier keeps the ordered set of listeners for one engine.
type Notifier struct {
	listeners []domain.Listener
}

func New() *Notifier {
	return &Notifier{}
}

// Subscribe appends l. Subscribing twice means being notified twice.
func (n *Notifier) Subscribe(l domain.Listener) {
	n.listeners = append(n.listeners, l)
}

// Unsubscribe removes the first registration of l, if any.
func (n *Notifier) Unsubscribe(l domain.Listener) bool {
	for i, existing := range n.listeners {
		if existing == l {
			n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (n *Notifier) Len() int {
	return len(n.listeners)
}

// At returns the listener registered at position i.
func (n *Notifier) At(i int) (domain.Listener, bool) {
	if i < 0 || i >= len(n.listeners) {
		return nil, false
	}
	return n.listeners[i], true
}

// Dispatch calls fn for every listener in registration order. The registry is
// copied first, so changes made by a handler only apply to the next pass.
func (n *Notifier) Dispatch(fn func(domain.Listener)) {
	snapshot := make([]domain.Listener, len(n.listeners))
	copy(snapshot, n.listeners)
	for _, l := range snapshot {
		fn(l)
	}
}

func (n *Notifier) GameStarted(mode domain.Mode) {
	n.Dispatch(func(l domain.Listener) { l.GameStarted(mode) })
}

func (n *Notifier) BoardUpdated(board domain.Board, player domain.Occupant, row, column int) {
	n.Dispatch(func(l domain.Listener) { l.BoardUpdated(board, player, row, column) })
}

func (n *Notifier) GameOver(status domain.Status, player domain.Occupant) {
	n.Dispatch(func(l domain.Listener) { l.GameOver(status, player) })
}

func (n *Notifier) ColumnFull(player domain.Occupant) {
	n.Dispatch(func(l domain.Listener) { l.ColumnFull(player) })
}

func (n *Notifier) NotYourTurn(player domain.Occupant) {
	n.Dispatch(func(l domain.Listener) { l.NotYourTurn(player) })
}

func (n *Notifier) BoardCleared() {
	n.Dispatch(func(l domain.Listener) { l.BoardCleared() })
}
