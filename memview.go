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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/memview/debuggee"
	"github.com/jetsetilly/memview/gui"
	"github.com/jetsetilly/memview/gui/sdlimgui"
	"github.com/jetsetilly/memview/logger"
	"github.com/jetsetilly/memview/modalflag"
	"github.com/jetsetilly/memview/paths"
	"github.com/jetsetilly/memview/prefs"
	"github.com/jetsetilly/memview/statsview"
	"github.com/jetsetilly/memview/terminal"
	"github.com/jetsetilly/memview/version"
	"github.com/jetsetilly/memview/viewer"
	"github.com/jetsetilly/memview/viewer/viewport"
)

// the capacity of the queues between the viewer and the debuggee
const queueLen = 64

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (gui.GUI, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan gui.GUI
	creationError chan error

	// the gui has stopped because the user asked it to
	ended chan bool
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (gui.GUI, error)),
		creation:      make(chan gui.GUI),
		creationError: make(chan error),
		ended:         make(chan bool),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	// if there is no gui then the loop blocks until one of the first three
	// happens
	done := false
	var g gui.GUI
	for !done {
		var service bool

		if g == nil {
			select {
			case <-intChan:
				done = true
			case creator := <-sync.creator:
				g = create(sync, creator)
			case state := <-sync.state:
				done, exitVal = quit(state)
			}
		} else {
			select {
			case <-intChan:
				g.Destroy(os.Stderr)
				g = nil
				done = true
			case creator := <-sync.creator:
				g.Destroy(os.Stderr)
				g = create(sync, creator)
			case state := <-sync.state:
				g.Destroy(os.Stderr)
				g = nil
				done, exitVal = quit(state)
			default:
				service = true
			}
		}

		if service && !g.Service() {
			g.Destroy(os.Stderr)
			g = nil
			sync.ended <- true
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

func create(sync *mainSync, creator func() (gui.GUI, error)) gui.GUI {
	g, err := creator()
	if err != nil {
		sync.creationError <- err
		return nil
	}
	sync.creation <- g
	return g
}

func quit(state stateRequest) (bool, int) {
	if state.args == nil {
		return true, 0
	}
	if v, ok := state.args.(int); ok {
		return true, v
	}
	panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("GUI", "TERM", "DUMP", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "GUI":
		err = interactive(md, sync, false)
	case "TERM":
		err = interactive(md, sync, true)
	case "DUMP":
		err = dump(md)
	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// prepareViewer creates a viewer with preferences loaded from the default
// preferences file. The prefs string is a list of preference values that
// override those in the file.
func prepareViewer(prefsString string, address string) (*viewer.Viewer, error) {
	if prefsString != "" {
		prefs.PushCommandLineStack(prefsString)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	pth, err := viewer.DefaultPrefsPath()
	if err != nil {
		return nil, err
	}

	v, err := viewer.NewViewer(pth)
	if err != nil {
		return nil, err
	}

	if address != "" {
		a, err := viewport.ParseAddress(address)
		if err != nil {
			return nil, err
		}
		v.SetStartAddress(a)
	}

	return v, nil
}

func interactive(md *modalflag.Modes, sync *mainSync, term bool) error {
	md.NewMode()

	prefsString := md.AddString("prefs", "", "preferences for this session (eg. \"viewer.columns::16\")")
	address := md.AddString("address", "", "address of the first visible byte (hex)")
	step := md.AddDuration("step", 0, "step the debuggee automatically at this interval")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	viz := md.AddBool("memviz", false, "write a graph of the viewer to a dot file on exit")
	log := md.AddBool("log", false, "echo log to stdout")
	color := md.AddBool("color", true, "use colour in the terminal (TERM mode only)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log && !term {
		logger.SetEcho(os.Stdout)
	}

	if *stats {
		stop := statsview.Launch(os.Stdout)
		defer stop()
	}

	v, err := prepareViewer(*prefsString, *address)
	if err != nil {
		return err
	}

	svc := debuggee.NewService(debuggee.NewDemoTarget(), queueLen)
	svc.SetStepInterval(*step)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = svc.Run(ctx)
	}()

	sync.creator <- func() (gui.GUI, error) {
		if term {
			return terminal.NewTerminal(v, svc, *color)
		}
		return sdlimgui.NewSdlImgui(v, svc)
	}

	select {
	case <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	<-sync.ended

	if err := v.Prefs.Save(); err != nil {
		return err
	}

	if *viz {
		fn := fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", ""))
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, v)
		fmt.Printf("! viewer graph written to %s\n", fn)
	}

	return nil
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	prefsString := md.AddString("prefs", "", "preferences for this dump (eg. \"viewer.representation::1\")")
	address := md.AddString("address", "1000", "address of the first byte (hex)")
	rows := md.AddInt("rows", 16, "number of rows to dump")
	columns := md.AddInt("columns", 16, "number of columns in a row (zero to use the preferred value)")
	steps := md.AddInt("steps", 0, "number of times to step the debuggee before the dump")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if *rows < 1 {
		return fmt.Errorf("rows must be at least one")
	}

	v, err := prepareViewer(*prefsString, *address)
	if err != nil {
		return err
	}

	if *columns > 0 {
		if err := v.Prefs.Columns.Set(*columns); err != nil {
			return err
		}
	}

	tgt := debuggee.NewDemoTarget()
	for i := 0; i < *steps; i++ {
		tgt.Step()
	}

	lb := gui.NewLoopback(debuggee.NewService(tgt, queueLen))

	return terminal.Dump(os.Stdout, v, lb, *rows)
}
