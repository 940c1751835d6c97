package game

import (
	"log"

	"github.com/pkg/errors"

	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/service/bot"
	"github.com/iamasit07/connectfour/internal/service/notifier"
	"github.com/iamasit07/connectfour/pkg/uid"
)

// Service is the single authority over turn order, placement and status of
// one game. It is not safe for concurrent use: every call, and every
// listener callback it triggers, happens on the caller's goroutine.
type Service struct {
	id        string
	grid      *domain.Grid
	notifier  *notifier.Notifier
	strategy  bot.Strategy
	mode      domain.Mode
	status    domain.Status
	winner    domain.Occupant
	lastMover domain.Occupant

	secondView    domain.Listener
	newSecondView func() domain.Listener
}

func New(opts ...Option) *Service {
	s := &Service{
		id:        uid.GenerateGameID(),
		grid:      domain.NewGrid(),
		notifier:  notifier.New(),
		mode:      domain.MultiPlayer,
		status:    domain.InProgress,
		winner:    domain.Empty,
		lastMover: domain.Empty,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.strategy == nil {
		s.strategy = bot.NewEasy(nil)
	}
	return s
}

// StartGame resets the board and turn state and switches to mode. Either
// player may open, since the last mover is reset to Empty.
func (s *Service) StartGame(mode domain.Mode) {
	s.id = uid.GenerateGameID()
	s.mode = mode
	s.lastMover = domain.Empty

	switch mode {
	case domain.SinglePlayer:
		if s.secondView != nil {
			view := s.secondView
			s.secondView = nil
			s.notifier.Unsubscribe(view)
			view.Dispose()
			log.Printf("[GAME] Second view disposed for single player game %s", s.id)
		}
	default:
		if s.secondView == nil && s.newSecondView != nil {
			if view := s.newSecondView(); view != nil {
				s.AttachSecondView(view)
				log.Printf("[GAME] Second view created for multi player game %s", s.id)
			}
		}
	}

	s.ClearBoard()
	s.notifier.GameStarted(mode)
	log.Printf("[GAME] Game %s started: %s", s.id, mode)
}

// PlaceDisc drops player's disc into column. Gameplay rejections (wrong turn,
// full column) return false and notify listeners. A non-nil error means the
// caller broke the contract: unknown or inactive player, a column off the
// board, or a move after the game ended.
func (s *Service) PlaceDisc(player domain.Occupant, column int) (bool, error) {
	if err := s.checkPlayer(player); err != nil {
		return false, err
	}
	if column < 0 || column >= domain.Columns {
		return false, errors.Wrapf(domain.ErrOutOfBounds, "column %d", column)
	}
	if s.status.IsTerminal() {
		return false, domain.ErrGameOver
	}

	if player == s.lastMover {
		s.notifier.NotYourTurn(player)
		return false, nil
	}
	if s.grid.IsColumnFull(column) {
		s.notifier.ColumnFull(player)
		return false, nil
	}

	if err := s.commit(player, column); err != nil {
		return false, err
	}

	if s.mode == domain.SinglePlayer && player != domain.Computer && s.status == domain.InProgress {
		if err := s.computerTurn(); err != nil {
			log.Printf("[GAME] Computer could not move in game %s: %v", s.id, err)
		}
	}
	return true, nil
}

// ClearBoard empties the grid and puts the game back in progress.
func (s *Service) ClearBoard() {
	s.grid.Clear()
	s.status = domain.InProgress
	s.winner = domain.Empty
	s.notifier.BoardCleared()
}

func (s *Service) commit(player domain.Occupant, column int) error {
	row, err := s.grid.Drop(column, player)
	if err != nil {
		return errors.Wrapf(err, "drop %s in column %d", player, column)
	}
	s.notifier.BoardUpdated(s.grid.Snapshot(), player, row, column)
	s.evaluateStatus(player)
	s.lastMover = player
	return nil
}

func (s *Service) computerTurn() error {
	column, err := s.strategy.ChooseColumn(s.grid.Snapshot(), domain.Computer)
	if err != nil {
		return err
	}
	if s.grid.IsColumnFull(column) {
		return errors.Wrapf(domain.ErrColumnFull, "computer chose column %d", column)
	}
	return s.commit(domain.Computer, column)
}

func (s *Service) evaluateStatus(player domain.Occupant) {
	board := s.grid.Snapshot()
	switch {
	case domain.HasWon(board, player):
		s.status = domain.Win
		s.winner = player
		log.Printf("[GAME] Game %s won by %s", s.id, player)
		s.notifier.GameOver(domain.Win, player)
	case s.grid.IsFull():
		s.status = domain.Draw
		log.Printf("[GAME] Game %s ended in a draw", s.id)
		s.notifier.GameOver(domain.Draw, player)
	}
}

// checkPlayer accepts only the two occupants active in the current mode.
func (s *Service) checkPlayer(player domain.Occupant) error {
	switch player {
	case domain.PlayerOne:
		return nil
	case domain.PlayerTwo:
		if s.mode == domain.SinglePlayer {
			return errors.Wrap(domain.ErrInvalidPlayer, "player two does not play in single player mode")
		}
		return nil
	case domain.Computer:
		if s.mode != domain.SinglePlayer {
			return errors.Wrap(domain.ErrInvalidPlayer, "computer only plays in single player mode")
		}
		return nil
	default:
		return errors.Wrapf(domain.ErrInvalidPlayer, "occupant %d", int(player))
	}
}

func (s *Service) Subscribe(l domain.Listener) {
	s.notifier.Subscribe(l)
}

func (s *Service) Unsubscribe(l domain.Listener) {
	if s.secondView == l {
		s.secondView = nil
	}
	s.notifier.Unsubscribe(l)
}

// AttachSecondView subscribes l as the second human view, the one removed
// when a single player game starts.
func (s *Service) AttachSecondView(l domain.Listener) {
	s.secondView = l
	s.notifier.Subscribe(l)
}

func (s *Service) HasSecondView() bool {
	return s.secondView != nil
}

func (s *Service) Listeners() int {
	return s.notifier.Len()
}

func (s *Service) ID() string {
	return s.id
}

func (s *Service) Board() domain.Board {
	return s.grid.Snapshot()
}

func (s *Service) OccupantAt(row, column int) (domain.Occupant, error) {
	return s.grid.OccupantAt(row, column)
}

func (s *Service) TopAvailableRow(column int) int {
	return s.grid.TopAvailableRow(column)
}

func (s *Service) IsColumnFull(column int) bool {
	return s.grid.IsColumnFull(column)
}

func (s *Service) Rows() int {
	return domain.Rows
}

func (s *Service) Columns() int {
	return domain.Columns
}

func (s *Service) Status() domain.Status {
	return s.status
}

// Winner is Empty unless Status is Win.
func (s *Service) Winner() domain.Occupant {
	return s.winner
}

func (s *Service) Mode() domain.Mode {
	return s.mode
}

func (s *Service) IsSinglePlayer() bool {
	return s.mode == domain.SinglePlayer
}

func (s *Service) LastMover() domain.Occupant {
	return s.lastMover
}

func (s *Service) MoveCount() int {
	return s.grid.Count()
}
