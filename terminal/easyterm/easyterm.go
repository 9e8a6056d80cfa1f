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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides the terminal geometry, which is not present in the third-party
// package, and wraps the termios functions with friendlier names.
package easyterm

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Geometry is the size of the terminal in characters.
type Geometry struct {
	Rows int
	Cols int
}

// EasyTerm is the main container for posix terminals. Usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	// the attributes of the terminal when it was initialised. these are
	// restored by CanonicalMode()
	canAttr unix.Termios
	rawAttr unix.Termios

	mu       sync.Mutex
	geometry Geometry

	// resized is sent a value (without blocking) every time the geometry is
	// updated by the signal handler
	resized chan bool

	terminateHandlerSig chan bool
	terminateHandlerAck chan bool
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	et.rawAttr = et.canAttr
	termios.Cfmakeraw(&et.rawAttr)

	if err := et.UpdateGeometry(); err != nil {
		return err
	}

	et.resized = make(chan bool, 1)
	et.terminateHandlerSig = make(chan bool)
	et.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				if et.UpdateGeometry() == nil {
					select {
					case et.resized <- true:
					default:
					}
				}
			case <-et.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp restores canonical mode and stops the signal handler started by
// Initialise().
func (et *EasyTerm) CleanUp() {
	et.CanonicalMode()
	et.terminateHandlerSig <- true
	<-et.terminateHandlerAck
}

// Resized returns a channel that receives a value when the terminal changes
// size.
func (et *EasyTerm) Resized() <-chan bool {
	return et.resized
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(et.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return fmt.Errorf("easyterm: updating geometry: %w", err)
	}

	et.mu.Lock()
	defer et.mu.Unlock()
	et.geometry = Geometry{Rows: int(ws.Row), Cols: int(ws.Col)}

	return nil
}

// Geometry returns the most recent dimensions of the output terminal.
func (et *EasyTerm) Geometry() Geometry {
	et.mu.Lock()
	defer et.mu.Unlock()
	return et.geometry
}

// Output returns the output file as an io.Writer.
func (et *EasyTerm) Output() io.Writer {
	return et.output
}

// Input returns the input file as an io.Reader.
func (et *EasyTerm) Input() io.Reader {
	return et.input
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// RawMode puts terminal into raw mode.
func (et *EasyTerm) RawMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.rawAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (et *EasyTerm) Flush() error {
	if err := termios.Tcflush(et.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	if err := termios.Tcflush(et.output.Fd(), termios.TCOFLUSH); err != nil {
		return err
	}
	return nil
}

// IsTerminal returns true if the file is connected to a terminal.
func IsTerminal(f *os.File) bool {
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}
