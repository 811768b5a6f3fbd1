package core

import "errors"

// ErrAborted is returned by an Input when the player force-quits the program
// (ctrl+c on the terminal, end of input on the console).
var ErrAborted = errors.New("input aborted")

// Display is the drawing surface programs render onto. Frames are built with
// Clear and the draw calls, then made visible with Commit.
type Display interface {
	Clear()
	DrawText(x, y int, text string)
	DrawLine(x0, y0, x1, y1 int, r rune)
	Commit() error
}

// Input is the blocking player-input collaborator. Each call yields exactly
// one discrete answer.
type Input interface {
	// Choose shows the prompt lines and returns one of options.
	Choose(prompt []string, options []string) (string, error)

	// Number returns a value in [min, max] reachable from min in step
	// increments.
	Number(prompt string, min, max, step float64) (float64, error)

	// Pages shows text paragraphs and returns once the player dismisses them.
	Pages(lines []string) error
}
