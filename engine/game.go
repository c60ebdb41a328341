package engine

import (
	"github.com/bloeys/nmage-recipes/input"
	"github.com/bloeys/nmage-recipes/timing"
)

var (
	isRunning = false
)

type Game interface {
	Init()

	Update()
	Render()
	// FrameEnd is called after Render and before the buffers are swapped, so the finished frame
	// is still readable from the back buffer
	FrameEnd()

	DeInit()
}

// Run calls game.Init and then runs the frame loop until Quit is called or the window is closed.
// ui may be nil
func Run(g Game, w *Window, ui UI) {

	isRunning = true
	g.Init()

	for isRunning {

		timing.FrameStarted()

		w.handleInputs(ui)
		if input.IsQuitClicked() {
			Quit()
		}

		g.Update()
		g.Render()
		g.FrameEnd()

		w.SDLWin.GLSwap()
		w.Rend.FrameEnd()

		timing.FrameEnded()
	}

	g.DeInit()
}

// Quit stops the loop started by Run once the current frame ends
func Quit() {
	isRunning = false
}
