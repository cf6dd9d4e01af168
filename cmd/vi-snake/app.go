package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// App owns the visible view and runs the single-threaded event loop.
// It is the engine's Presenter
type App struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	machine  *input.Machine
	ctx      *engine.GameContext

	view   core.View
	result *engine.RunResult
	debug  bool
}

var _ engine.Presenter = (*App)(nil)

// NewApp creates an app on the title view; Attach must be called before Run
func NewApp(screen tcell.Screen, debug bool) *App {
	return &App{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		machine:  input.NewMachine(nil),
		view:     core.ViewTitle,
		debug:    debug,
	}
}

// Attach binds the session the app drives
func (a *App) Attach(ctx *engine.GameContext) {
	a.ctx = ctx
}

// View returns the visible view
func (a *App) View() core.View {
	return a.view
}

func (a *App) Show(view core.View) {
	a.view = view
	if view != core.ViewGameOver {
		a.result = nil
	}
}

func (a *App) GameOver(result engine.RunResult) {
	a.view = core.ViewGameOver
	a.result = &result
}

// Run processes events and ticks until quit or the event channel closes
func (a *App) Run(events <-chan tcell.Event) {
	a.Render()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if in := a.machine.Process(ev, a.view); in != nil {
				if a.HandleIntent(in) {
					return
				}
			}
			a.Render()

		case <-a.ctx.Scheduler().Ticks():
			if err := a.ctx.Tick(); err != nil && !engine.IsRunOver(err) {
				log.Printf("tick: %v", err)
			}
			a.Render()
		}
	}
}

// HandleIntent applies one intent; returns true when the app should quit
func (a *App) HandleIntent(in *input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		if a.ctx.State.Running {
			a.ctx.Abort()
		}
		return true

	case input.IntentToggleSound:
		a.ctx.ToggleSound()

	case input.IntentResize:
		a.screen.Sync()

	case input.IntentInstructions:
		a.Show(core.ViewInstructions)

	case input.IntentStart, input.IntentRestart:
		a.startRun()

	case input.IntentMenu:
		a.Show(core.ViewTitle)

	case input.IntentSteer:
		a.ctx.Steer(in.Direction)

	case input.IntentPause:
		a.ctx.TogglePause()

	case input.IntentAbort:
		a.ctx.Abort()
	}
	return false
}

// startRun sizes the board to the current terminal and starts a run
func (a *App) startRun() {
	w, h := a.screen.Size()
	board := render.FitBoard(w, h)
	if err := a.ctx.Start(board); err != nil {
		log.Printf("start run: %v", err)
	}
}

// Render draws the visible view
func (a *App) Render() {
	frame := render.FrameFromContext(a.ctx, a.view, a.result)
	if a.debug {
		frame.Debug = a.ctx.Status.Summary()
	}
	a.renderer.RenderFrame(frame)
}
