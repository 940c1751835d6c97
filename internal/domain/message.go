package domain

// Message types carried by ServerMessage.Type
const (
	MsgGameStarted  = "game_started"
	MsgBoardUpdated = "board_updated"
	MsgGameOver     = "game_over"
	MsgColumnFull   = "column_full"
	MsgNotYourTurn  = "not_your_turn"
	MsgBoardCleared = "board_cleared"
	MsgSnapshot     = "snapshot"
)

// ServerMessage is the JSON envelope for engine events sent outside the process.
type ServerMessage struct {
	Type    string  `json:"type"`
	GameID  string  `json:"gameId,omitempty"`
	Mode    string  `json:"mode,omitempty"`
	Player  int     `json:"player,omitempty"`
	Row     *int    `json:"row,omitempty"`
	Column  *int    `json:"column,omitempty"`
	Board   [][]int `json:"board,omitempty"`
	Status  string  `json:"status,omitempty"`
	Winner  int     `json:"winner,omitempty"`
	Message string  `json:"message,omitempty"`
}
