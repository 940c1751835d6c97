package event

import "github.com/iamasit07/connectfour/internal/domain"

func GameStartedMessage(mode domain.Mode) domain.ServerMessage {
	return domain.ServerMessage{
		Type:    domain.MsgGameStarted,
		Mode:    mode.Key(),
		Status:  domain.InProgress.String(),
		Message: mode.String(),
	}
}

func BoardUpdatedMessage(board domain.Board, player domain.Occupant, row, column int) domain.ServerMessage {
	return domain.ServerMessage{
		Type:   domain.MsgBoardUpdated,
		Player: int(player),
		Row:    &row,
		Column: &column,
		Board:  board.Ints(),
	}
}

func GameOverMessage(status domain.Status, player domain.Occupant) domain.ServerMessage {
	msg := domain.ServerMessage{
		Type:   domain.MsgGameOver,
		Player: int(player),
		Status: status.String(),
	}
	if status == domain.Win {
		msg.Winner = int(player)
	}
	return msg
}

func BoardClearedMessage() domain.ServerMessage {
	return domain.ServerMessage{
		Type:   domain.MsgBoardCleared,
		Board:  domain.Board{}.Ints(),
		Status: domain.InProgress.String(),
	}
}
