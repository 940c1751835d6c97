package event

import (
	"context"
	"log"
	"time"

	"github.com/iamasit07/connectfour/internal/domain"
)

// Sink receives engine events outside the engine's goroutine.
type Sink interface {
	Publish(ctx context.Context, msg domain.ServerMessage) error
}

const publishTimeout = 5 * time.Second

// Forwarder is a listener that turns engine callbacks into ServerMessages and
// hands them to a Sink from its own goroutine. Dispatch never waits on the
// sink: when the queue is full the message is dropped.
type Forwarder struct {
	name   string
	sink   Sink
	gameID func() string
	queue  chan domain.ServerMessage
}

// NewForwarder builds a forwarder; gameID is read at event time so the id
// follows the engine across restarts.
func NewForwarder(name string, sink Sink, buffer int, gameID func() string) *Forwarder {
	if buffer <= 0 {
		buffer = 64
	}
	if gameID == nil {
		gameID = func() string { return "" }
	}
	return &Forwarder{
		name:   name,
		sink:   sink,
		gameID: gameID,
		queue:  make(chan domain.ServerMessage, buffer),
	}
}

// Run publishes queued messages until ctx is done.
func (f *Forwarder) Run(ctx context.Context) {
	log.Printf("[%s] Forwarder started", f.name)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[%s] Forwarder stopped", f.name)
			return
		case msg := <-f.queue:
			pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
			if err := f.sink.Publish(pubCtx, msg); err != nil {
				log.Printf("[%s] Failed to publish %s: %v", f.name, msg.Type, err)
			}
			cancel()
		}
	}
}

func (f *Forwarder) enqueue(msg domain.ServerMessage) {
	msg.GameID = f.gameID()
	select {
	case f.queue <- msg:
	default:
		log.Printf("[%s] Queue full, dropping %s", f.name, msg.Type)
	}
}

func (f *Forwarder) GameStarted(mode domain.Mode) {
	f.enqueue(GameStartedMessage(mode))
}

func (f *Forwarder) BoardUpdated(board domain.Board, player domain.Occupant, row, column int) {
	f.enqueue(BoardUpdatedMessage(board, player, row, column))
}

func (f *Forwarder) GameOver(status domain.Status, player domain.Occupant) {
	f.enqueue(GameOverMessage(status, player))
}

func (f *Forwarder) ColumnFull(player domain.Occupant) {
	f.enqueue(domain.ServerMessage{Type: domain.MsgColumnFull, Player: int(player)})
}

func (f *Forwarder) NotYourTurn(player domain.Occupant) {
	f.enqueue(domain.ServerMessage{Type: domain.MsgNotYourTurn, Player: int(player)})
}

func (f *Forwarder) BoardCleared() {
	f.enqueue(BoardClearedMessage())
}

// Dispose is a no-op: forwarders are not views.
func (f *Forwarder) Dispose() {}
