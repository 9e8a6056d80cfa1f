// This file is part of Memview.
//
// Memview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Memview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Memview.  If not, see <https://www.gnu.org/licenses/>.

// Package terminal is a front end for the memory viewer that runs in a
// terminal. The terminal is put into raw mode and the viewer is redrawn in
// the alternate screen every frame.
//
// Keys when no cursor is active:
//
//	up/down      scroll one row
//	pgup/pgdown  scroll one page
//	n            edit the numbers pane
//	t            edit the text pane
//	g            goto address
//	s            step the debuggee
//	r z e        cycle representation, size and endianness
//	c p a        cycle columns and panes, toggle aligned rows
//	l            show the log
//	q            quit
//
// When a cursor is active the arrow keys and tab move the cursor, escape
// leaves the cursor and any other key is typed into memory.
//
// The WriteLines() function renders a frame without the need for a terminal.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jetsetilly/memview/gui"
	"github.com/jetsetilly/memview/logger"
	"github.com/jetsetilly/memview/terminal/easyterm"
	"github.com/jetsetilly/memview/terminal/easyterm/ansi"
	"github.com/jetsetilly/memview/viewer"
)

// the period after which a frame is drawn even if there has been no input
const pollPeriod = 50 * time.Millisecond

// the number of rows given over to the log when it is showing
const logRows = 6

// Terminal implements the gui.GUI interface.
type Terminal struct {
	easyterm.EasyTerm

	viewer    *viewer.Viewer
	transport gui.Transport

	style Style
	dec   decoder
	ctl   controls

	// bytes read from the input file by the reader goroutine. closed when the
	// input file can no longer be read
	input chan []byte

	frame viewer.Frame
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The terminal is in raw mode when the function returns.
func NewTerminal(v *viewer.Viewer, t gui.Transport, color bool) (*Terminal, error) {
	term := &Terminal{
		viewer:    v,
		transport: t,
		style:     Plain,
		input:     make(chan []byte, 16),
	}

	if color {
		term.style = Color
	}

	if !easyterm.IsTerminal(os.Stdin) || !easyterm.IsTerminal(os.Stdout) {
		return nil, fmt.Errorf("terminal: stdin and stdout must be a terminal")
	}

	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	term.RawMode()
	io.WriteString(term.Output(), ansi.AltScreen+ansi.HideCursor)

	go func() {
		defer close(term.input)
		buf := make([]byte, 64)
		for {
			n, err := term.Input().Read(buf)
			if err != nil {
				return
			}
			b := make([]byte, n)
			copy(b, buf[:n])
			term.input <- b
		}
	}()

	return term, nil
}

// Destroy implements the gui.GUI interface.
func (term *Terminal) Destroy(output io.Writer) {
	io.WriteString(term.Output(), ansi.NormalPen+ansi.ShowCursor+ansi.MainScreen)
	term.CleanUp()
}

// Service implements the gui.GUI interface.
func (term *Terminal) Service() bool {
	var keys []key

	select {
	case b, ok := <-term.input:
		if !ok {
			return false
		}
		keys = term.dec.decode(b)
	case <-term.Resized():
	case <-time.After(pollPeriod):
	}

	actions := term.ctl.translate(keys, term.frame)

	if term.ctl.suspend {
		term.ctl.suspend = false
		io.WriteString(term.Output(), ansi.ShowCursor+ansi.MainScreen)
		term.CanonicalMode()
		easyterm.SuspendProcess()
		term.RawMode()
		io.WriteString(term.Output(), ansi.AltScreen+ansi.HideCursor)
	}

	g := term.Geometry()

	// the viewer leaves one row of the height unused
	term.frame = gui.Exchange(term.viewer, term.transport, viewer.Input{
		Actions:    actions,
		Width:      float32(g.Cols),
		GlyphWidth: 1,
		Height:     float32(rowsAvailable(g, term.ctl.showLog) + 1),
		LineHeight: 1,
	})

	var b strings.Builder
	screen(&b, term.frame, &term.ctl, term.style, g)
	io.WriteString(term.Output(), b.String())

	return !term.ctl.quit
}

// rowsAvailable returns the number of rows of the terminal that can be used
// for memory. One row is used for the header and one for the status line.
func rowsAvailable(g easyterm.Geometry, showLog bool) int {
	rows := g.Rows - 2
	if showLog {
		rows -= logRows
	}
	return max(rows, 1)
}

// screen composes the entire screen for the frame. Every row is positioned
// and cleared explicitly because the terminal is in raw mode.
func screen(b *strings.Builder, f viewer.Frame, ctl *controls, s Style, g easyterm.Geometry) {
	row := 0
	line := func(text string) {
		b.WriteString(ansi.CursorMove(row, 0))
		b.WriteString(ansi.ClearLine)
		b.WriteString(text)
		row++
	}

	var hb strings.Builder
	s.pen(&hb, s.Status, header(f))
	line(hb.String())

	rows := rowsAvailable(g, ctl.showLog)
	for i := 0; i < rows; i++ {
		if i < len(f.Lines) {
			var lb strings.Builder
			renderLine(&lb, f, f.Lines[i], s)
			line(lb.String())
		} else {
			line("")
		}
	}

	if ctl.showLog {
		var lb strings.Builder
		logger.Tail(&lb, logRows)
		entries := strings.Split(strings.TrimRight(lb.String(), "\n"), "\n")
		for i := 0; i < logRows; i++ {
			if i < len(entries) {
				line(entries[i])
			} else {
				line("")
			}
		}
	}

	line(status(f, ctl))
}

// status returns the text of the bottom line of the screen.
func status(f viewer.Frame, ctl *controls) string {
	switch {
	case ctl.prompting:
		return fmt.Sprintf("goto: %s", string(ctl.prompt))
	case f.Cursor != nil:
		return fmt.Sprintf("editing %s (esc to leave)", f.Cursor)
	}
	return "q quit  s step  g goto  n/t edit  r/z/e/c/p/a view  l log"
}
