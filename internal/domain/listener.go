package domain

// Listener is the contract every presentation layer implements. The engine
// calls these synchronously, in subscription order.
type Listener interface {
	GameStarted(mode Mode)
	BoardUpdated(board Board, player Occupant, row, column int)
	GameOver(status Status, player Occupant)
	ColumnFull(player Occupant)
	NotYourTurn(player Occupant)
	BoardCleared()
	// Dispose is sent to a single view when it is torn down on a mode switch.
	Dispose()
}

// NopListener can be embedded by listeners that only care about a few events.
type NopListener struct{}

func (NopListener) GameStarted(Mode)                      {}
func (NopListener) BoardUpdated(Board, Occupant, int, int) {}
func (NopListener) GameOver(Status, Occupant)             {}
func (NopListener) ColumnFull(Occupant)                   {}
func (NopListener) NotYourTurn(Occupant)                  {}
func (NopListener) BoardCleared()                         {}
func (NopListener) Dispose()                              {}
