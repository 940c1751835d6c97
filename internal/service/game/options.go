package game

import (
	"github.com/iamasit07/connectfour/internal/domain"
	"github.com/iamasit07/connectfour/internal/service/bot"
	"github.com/iamasit07/connectfour/internal/service/notifier"
)

type Option func(*Service)

// WithStrategy replaces the computer player used in single player mode.
func WithStrategy(strategy bot.Strategy) Option {
	return func(s *Service) {
		if strategy != nil {
			s.strategy = strategy
		}
	}
}

// WithNotifier lets the caller own the listener registry.
func WithNotifier(n *notifier.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithSecondView registers the factory used to bring the second human view
// back when a multi player game starts without one.
func WithSecondView(factory func() domain.Listener) Option {
	return func(s *Service) {
		s.newSecondView = factory
	}
}
