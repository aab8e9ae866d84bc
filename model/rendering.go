package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	clearCmd      = "clear"
	ansiClearHome = "\033[H\033[2J"
)

// TerminalRenderer writes frames of a World to a terminal
type TerminalRenderer struct {
	Out io.Writer
}

// NewTerminalRenderer returns a renderer writing to stdout
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout}
}

// Display renders the world to the output
func (r *TerminalRenderer) Display(w *World) error {
	if _, err := io.WriteString(r.Out, w.Render()); err != nil {
		return errors.Wrap(err, "[TerminalRenderer.Display] failed to write frame")
	}
	return nil
}

// Clear clears the terminal screen, falling back to an ANSI escape when the clear command is unavailable
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprint(r.Out, ansiClearHome)
	}
}
