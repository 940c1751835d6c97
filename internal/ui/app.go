package ui

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/iamasit07/connectfour/internal/domain"
)

const helpLine = "1-7 drop  Tab switch view  s single  m multi  c clear  q quit"

// Engine is the part of the game service the terminal needs.
type Engine interface {
	StartGame(mode domain.Mode)
	PlaceDisc(player domain.Occupant, column int) (bool, error)
	ClearBoard()
	Subscribe(l domain.Listener)
	AttachSecondView(l domain.Listener)
	Status() domain.Status
	Mode() domain.Mode
}

// App runs the tcell event loop and owns the player views.
type App struct {
	screen tcell.Screen
	engine Engine
	views  []*View
	focus  int
}

func NewApp(screen tcell.Screen) *App {
	return &App{screen: screen}
}

// Attach subscribes the two starting views, one per human player.
func (a *App) Attach(engine Engine) {
	a.engine = engine
	engine.Subscribe(a.newView(domain.PlayerOne))
	engine.AttachSecondView(a.newView(domain.PlayerTwo))
}

// SecondView is the factory handed to the engine for multi player restarts.
func (a *App) SecondView() domain.Listener {
	return a.newView(domain.PlayerTwo)
}

func (a *App) Views() []*View {
	return append([]*View(nil), a.views...)
}

// Focused is the view that digit keys play for.
func (a *App) Focused() *View {
	if len(a.views) == 0 {
		return nil
	}
	return a.views[a.focus]
}

func (a *App) newView(player domain.Occupant) *View {
	v := NewView(player)
	v.onDispose = a.removeView
	a.views = append(a.views, v)
	return v
}

func (a *App) removeView(v *View) {
	for i, existing := range a.views {
		if existing == v {
			a.views = append(a.views[:i], a.views[i+1:]...)
			break
		}
	}
	if a.focus >= len(a.views) {
		a.focus = 0
	}
}

// HandleKey applies one key press. It returns false when the user quits.
func (a *App) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		if len(a.views) > 0 {
			a.focus = (a.focus + 1) % len(a.views)
		}
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r := ev.Rune(); {
	case r == 'q':
		return false
	case r == 's':
		a.engine.StartGame(domain.SinglePlayer)
	case r == 'm':
		a.engine.StartGame(domain.MultiPlayer)
	case r == 'c':
		a.engine.ClearBoard()
	case r >= '1' && r < '1'+domain.Columns:
		a.drop(int(r - '1'))
	}
	return true
}

func (a *App) drop(column int) {
	view := a.Focused()
	if view == nil {
		return
	}
	if !view.Enabled() {
		view.say("Press s or m to start a game.")
		return
	}
	if _, err := a.engine.PlaceDisc(view.player, column); err != nil {
		if errors.Is(err, domain.ErrGameOver) {
			view.say("The game is over. Press s or m to restart.")
			return
		}
		log.Printf("[UI] Move rejected: %v", err)
		view.say("Move rejected: %v", err)
	}
}

// Draw repaints every view side by side.
func (a *App) Draw() {
	a.screen.Clear()
	height := 0
	for i, v := range a.views {
		if h := drawPane(a.screen, i*paneWidth, 0, v, i == a.focus); h > height {
			height = h
		}
	}
	status := a.engine.Mode().String() + " | " + a.engine.Status().String()
	drawText(a.screen, 0, height+1, tcell.StyleDefault.Bold(true), status)
	drawText(a.screen, 0, height+2, tcell.StyleDefault.Dim(true), helpLine)
	a.screen.Show()
}

// Run blocks until the user quits, the screen is finalized or an interrupt
// event is posted.
func (a *App) Run() {
	for {
		a.Draw()
		switch ev := a.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			return
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if !a.HandleKey(ev) {
				return
			}
		}
	}
}
