package domain

// Occupant is whatever fills a cell of the grid.
type Occupant int

const (
	Empty Occupant = iota
	PlayerOne
	PlayerTwo
	Computer
)

var occupantNames = map[Occupant]string{
	Empty:     "No Player Yet",
	PlayerOne: "Player One",
	PlayerTwo: "Player Two",
	Computer:  "Alpha 4",
}

var occupantColors = map[Occupant]string{
	Empty:     "WHITE",
	PlayerOne: "BLUE",
	PlayerTwo: "RED",
	Computer:  "GREEN",
}

func (o Occupant) String() string {
	if name, ok := occupantNames[o]; ok {
		return name
	}
	return "Unknown"
}

// Color returns the disc color name used by presentation layers.
func (o Occupant) Color() string {
	if color, ok := occupantColors[o]; ok {
		return color
	}
	return occupantColors[Empty]
}

// IsPlayer reports whether o is one of the three disc owners.
func (o Occupant) IsPlayer() bool {
	return o == PlayerOne || o == PlayerTwo || o == Computer
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4

	// NotFound is returned by TopAvailableRow for a full column
	NotFound = -1
)

// Mode is picked once per game start.
type Mode int

const (
	MultiPlayer Mode = iota
	SinglePlayer
)

func (m Mode) String() string {
	if m == SinglePlayer {
		return "Single Player Mode"
	}
	return "Multi Player Mode"
}

// Key is the short form used in configuration and wire messages.
func (m Mode) Key() string {
	if m == SinglePlayer {
		return "single"
	}
	return "multi"
}

// ParseMode maps "single"/"multi" back to a Mode, defaulting to MultiPlayer.
func ParseMode(s string) Mode {
	if s == "single" || s == "ai" {
		return SinglePlayer
	}
	return MultiPlayer
}

// to represent the game status
type Status int

const (
	InProgress Status = iota
	Win
	Draw
)

func (s Status) String() string {
	switch s {
	case Win:
		return "win"
	case Draw:
		return "draw"
	default:
		return "in_progress"
	}
}

// IsTerminal is true once the game has been won or drawn.
func (s Status) IsTerminal() bool {
	return s == Win || s == Draw
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfBounds   Error = "cell out of bounds"
	ErrColumnFull    Error = "column is full"
	ErrInvalidPlayer Error = "invalid player"
	ErrGameOver      Error = "game is over"
	ErrNoValidMove   Error = "no valid move"
)
