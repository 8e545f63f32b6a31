package gui

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/notnil/chess"
	"github.com/rivo/tview"

	"github.com/qnkhuat/chessboard/pkg"
	"github.com/qnkhuat/chessboard/pkg/snapshot"
)

// App is the terminal front end: it owns the tview application, feeds
// pointer and key input to the board controller, drives the tick loop and
// redraws from the controller's state every frame.
type App struct {
	App    *tview.Application
	Board  *tview.Table
	Layout *tview.Grid

	board  *pkg.Board
	theme  Theme
	cfg    pkg.Config
	status *tview.TextView
	clocks *tview.TextView

	white *pkg.Clock
	black *pkg.Clock

	done     chan struct{}
	stopOnce sync.Once
}

// NewApp wires the UI around an existing board controller.
func NewApp(cfg pkg.Config, board *pkg.Board) (*App, error) {
	theme, err := LoadTheme(cfg.Theme)
	if err != nil {
		return nil, err
	}

	table := tview.NewTable()

	status := tview.NewTextView().SetTextColor(theme.Status)
	clocks := tview.NewTextView().SetTextColor(theme.Clock)

	layout := tview.NewGrid().
		SetRows(-1, 10, 1, 1, -1).
		SetColumns(-1, 20, -1).
		AddItem(table, 1, 1, 1, 1, 0, 0, true).
		AddItem(clocks, 2, 1, 1, 1, 0, 0, false).
		AddItem(status, 3, 1, 1, 1, 0, 0, false)

	base, inc := cfg.ClockTime()
	a := &App{
		App:    tview.NewApplication(),
		Board:  table,
		Layout: layout,
		board:  board,
		theme:  theme,
		cfg:    cfg,
		status: status,
		clocks: clocks,
		white:  pkg.NewClock(base, inc),
		black:  pkg.NewClock(base, inc),
		done:   make(chan struct{}),
	}
	a.initTable()
	a.white.Resume()
	return a, nil
}

func (a *App) initTable() {
	Render(a.Board, a.board, a.theme)
	a.Board.SetSelectable(true, true)
	a.Board.Select(6, 1).SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			a.Stop()
		}
	}).SetSelectedFunc(func(row, col int) {
		if a.board.Done() {
			// The game is over; the board stays navigable but
			// takes no more moves.
			return
		}
		a.board.OnSquareClicked(posToSquare(row, col))
	})

	a.Board.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch ev.Key() {
		case tcell.KeyLeft:
			a.board.OnHistoryBack()
			return nil
		case tcell.KeyRight:
			a.board.OnHistoryForward()
			return nil
		}
		switch ev.Rune() {
		case 's':
			a.saveSnapshot()
			return nil
		case 'q':
			a.Stop()
			return nil
		}
		return ev
	})
}

// Run starts the tick loop and the tview event loop. Blocks until the app
// stops.
func (a *App) Run() error {
	go a.tickLoop()
	return a.App.SetRoot(a.Layout, true).EnableMouse(true).Run()
}

// Stop shuts the app down. Safe to call more than once; Escape and 'q'
// both reach it.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		close(a.done)
		a.App.Stop()
	})
}

// tickLoop drives the board's animations and the clocks. Every state
// transition happens inside QueueUpdateDraw, so the UI thread is the only
// one touching the controller.
func (a *App) tickLoop() {
	dt := a.cfg.TickInterval()
	ticker := time.NewTicker(dt)
	defer ticker.Stop()
	for {
		select {
		case <-a.done:
			return
		case <-ticker.C:
			a.App.QueueUpdateDraw(func() {
				a.tick(dt)
			})
		}
	}
}

func (a *App) tick(dt time.Duration) {
	a.board.OnTick(dt)
	a.white.Advance(dt)
	a.black.Advance(dt)
	a.drainEvents()
	Render(a.Board, a.board, a.theme)
	a.renderStatus()
}

// drainEvents applies every notification the controller queued since the
// last frame.
func (a *App) drainEvents() {
	for {
		select {
		case ev := <-a.board.Events():
			a.handleEvent(ev)
		default:
			return
		}
	}
}

func (a *App) handleEvent(ev pkg.Event) {
	switch e := ev.(type) {
	case pkg.EventMoveCommitted:
		log.Printf("Move: %s", e.Move)
		a.switchClocks()
	case pkg.EventGameEnded:
		log.Printf("Game over: %s", e.Reason)
		a.white.Pause()
		a.black.Pause()
		a.status.SetText(e.Reason.String())
	case pkg.EventSelectionChanged:
		if e.Selected {
			log.Printf("Selected %s", e.Square)
		}
	}
}

// switchClocks pauses the side that just moved and starts the other.
func (a *App) switchClocks() {
	mover, next := a.white, a.black
	if a.board.Position().Turn() == chess.White {
		mover, next = a.black, a.white
	}
	mover.Pause()
	mover.Credit()
	next.Resume()
}

func (a *App) renderStatus() {
	a.clocks.SetText(fmt.Sprintf("White %s   Black %s", a.white, a.black))
	if a.board.Done() {
		return
	}
	turn := "White to move"
	if a.board.Position().Turn() == chess.Black {
		turn = "Black to move"
	}
	if a.board.InCheck() {
		turn += " (check)"
	}
	a.status.SetText(turn)
}

// saveSnapshot writes an SVG picture of the displayed position next to the
// binary.
func (a *App) saveSnapshot() {
	name := snapshot.FileName(a.board)
	f, err := os.Create(name)
	if err != nil {
		log.Printf("Failed to create snapshot %s: %v", name, err)
		return
	}
	defer f.Close()
	snapshot.WriteSVG(f, a.board)
	log.Printf("Saved snapshot %s", name)
}
