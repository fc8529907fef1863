// This file is part of m8link.
//
// m8link is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// m8link is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with m8link.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/m8link/capture"
	"github.com/jetsetilly/m8link/curated"
	"github.com/jetsetilly/m8link/gui"
	"github.com/jetsetilly/m8link/gui/sdlscreen"
	"github.com/jetsetilly/m8link/gui/termscreen"
	"github.com/jetsetilly/m8link/logger"
	"github.com/jetsetilly/m8link/modalflag"
	"github.com/jetsetilly/m8link/prefs"
	"github.com/jetsetilly/m8link/render"
	"github.com/jetsetilly/m8link/session"
	"github.com/jetsetilly/m8link/statsview"
	"github.com/jetsetilly/m8link/transport"
	"github.com/jetsetilly/m8link/transport/serialport"
	"github.com/jetsetilly/m8link/transport/termport"
	"github.com/jetsetilly/m8link/userinput"
	"github.com/jetsetilly/m8link/version"
)

// exit values
const (
	exitOK        = 0
	exitArguments = 10
	exitMode      = 20
)

// the session runs in the main goroutine. SDL requires that window and event
// handling happen on the thread that initialised it.
//
// #mainthread
func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PORTS", "REPLAY")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArguments
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "PORTS":
		err = ports(md, output)
	case "REPLAY":
		err = replay(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitMode
	}

	return exitOK
}

// options shared by the RUN and REPLAY modes.
type options struct {
	gui      *string
	scale    *int
	record   *string
	echo     *bool
	stats    *bool
	prefs    *string
	memviz   *string
	noSave   *bool
	deviceCL *string
	backend  *string
}

func addOptions(md *modalflag.Modes, withDevice bool) options {
	var opts options
	if withDevice {
		opts.deviceCL = md.AddString("device", "", "serial device (default: find automatically)")
		opts.backend = md.AddString("backend", "", "serial backend: serial, termios (default: from preferences)")
	}
	opts.gui = md.AddString("gui", "sdl", "user interface: sdl, term, none")
	opts.scale = md.AddInt("scale", 2, "window scaling (sdl only)")
	opts.record = md.AddString("record", "", "record display commands to file")
	opts.echo = md.AddBool("echo", false, "echo log to stderr (not with term gui)")
	opts.prefs = md.AddString("prefs", "", "preferences for this session only (key::value; key::value)")
	opts.memviz = md.AddString("memviz", "", "write graph of final session state to file")
	opts.noSave = md.AddBool("nosave", false, "do not save preferences on exit")

	if statsview.Available() {
		opts.stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	return opts
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	opts := addOptions(md, true)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		defer popPrefs()
	}

	tp, err := transport.NewPreferences()
	if err != nil {
		return err
	}
	open, err := selectOpener(tp, *opts.deviceCL, *opts.backend)
	if err != nil {
		return err
	}

	err = connect(opts, output, open)
	if err != nil {
		return err
	}

	return nil
}

func replay(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	opts := addOptions(md, false)
	chunk := md.AddInt("chunk", 64, "bytes delivered by each read")
	md.AdditionalHelp("Replays a file created with the -record flag of the RUN mode.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("capture file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *opts.prefs != "" {
		prefs.PushCommandLineStack(*opts.prefs)
		defer popPrefs()
	}

	filename := md.GetArg(0)
	open := func() (transport.Port, error) {
		pb, err := capture.Open(filename)
		if err != nil {
			return nil, err
		}
		pb.SetChunk(*chunk)
		return pb, nil
	}

	err = connect(opts, output, open)
	if err != nil {
		// the end of the capture is the normal end of a replay
		if curated.Has(err, capture.EndOfCapture) {
			fmt.Fprintf(output, "! end of %s\n", filename)
			return nil
		}
		return err
	}

	return nil
}

func ports(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	all := md.AddBool("all", false, "list every serial port and not just matching devices")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	details, err := serialport.List()
	if err != nil {
		return err
	}

	var n int
	for _, d := range details {
		if d.Device || *all {
			fmt.Fprintln(output, d.String())
			n++
		}
	}
	if n == 0 {
		fmt.Fprintln(output, "no device found")
	}

	return nil
}

// popPrefs removes the command line preferences and logs any that were not
// used by any preferences instance.
func popPrefs() {
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "m8link", "unused preferences: %s", unused)
	}
}

// selectOpener returns the transport.Opener for the backend named by the
// preferences. Non-empty device and backend arguments override the
// preferences for this session only.
func selectOpener(tp *transport.Preferences, device string, backend string) (transport.Opener, error) {
	cfg := tp.Config()
	if device != "" {
		cfg.Device = device
	}
	if backend == "" {
		backend = tp.Backend.String()
	}

	switch strings.ToLower(backend) {
	case transport.BackendSerial:
		return serialport.Opener(cfg), nil
	case transport.BackendTermios:
		return termport.Opener(cfg), nil
	}

	return nil, curated.Errorf(transport.UnknownBackend, backend)
}

// newGUI creates the named user interface.
func newGUI(name string, scale int) (gui.GUI, error) {
	switch strings.ToLower(name) {
	case "sdl":
		scr, err := sdlscreen.NewScreen(scale)
		if err != nil {
			return nil, err
		}
		return scr, nil
	case "term":
		scr, err := termscreen.NewScreen()
		if err != nil {
			return nil, err
		}
		return scr, nil
	case "none":
		return gui.NewHeadless(), nil
	}
	return nil, curated.Errorf(gui.UnsupportedGUI, name)
}

// connect to the device with the supplied transport.Opener and run a session
// until the user quits, the process is signalled or a fatal error occurs.
func connect(opts options, output io.Writer, open transport.Opener) error {
	sp, err := session.NewPreferences()
	if err != nil {
		return err
	}

	bindings := userinput.NewBindings()
	kp, err := userinput.NewPreferences(bindings)
	if err != nil {
		return err
	}

	// the terminal gui owns the terminal so the log cannot be echoed
	term := strings.EqualFold(*opts.gui, "term")
	if *opts.echo && !term {
		logger.SetEcho(logger.NewColorizer(os.Stderr), true)
	} else {
		logger.SetEcho(nil, false)
	}

	if opts.stats != nil && *opts.stats {
		statsview.Launch(output)
	}

	scr, err := newGUI(*opts.gui, *opts.scale)
	if err != nil {
		return err
	}

	var renderer render.Renderer = scr
	var rec *capture.Recorder
	if *opts.record != "" {
		rec, err = capture.Create(*opts.record, scr)
		if err != nil {
			scr.Close()
			return err
		}
		renderer = rec
	}

	input := userinput.NewTranslator(scr, scr.Gamepads(), bindings)
	logger.Logf(logger.Allow, "m8link", "%s: %s", version.String(), sp)
	logger.Logf(logger.Allow, "m8link", "key bindings: %s", kp)

	sess := session.NewSession(sp.Config(), open, input, renderer)

	// stop the session on an interrupt or termination signal. the session
	// itself is not touched other than to ask it to stop
	sig := make(chan os.Signal, 1)
	done := make(chan bool)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	go func() {
		select {
		case <-sig:
			sess.Stop()
		case <-done:
		}
	}()

	err = sess.Run()
	close(done)

	if !term {
		fmt.Fprintf(output, "! %s\n", sess.Stats())
	}
	if rec != nil {
		fmt.Fprintf(output, "! recorded %d frames to %s\n", rec.Frames(), *opts.record)
		if rec.Err() != nil {
			fmt.Fprintf(output, "* recording incomplete: %v\n", rec.Err())
		}
	}

	if *opts.memviz != "" {
		if err := writeMemviz(*opts.memviz, sess.Snapshot()); err != nil {
			fmt.Fprintf(output, "* %v\n", err)
		}
	}

	if !*opts.noSave {
		if err := kp.Save(); err != nil {
			logger.Logf(logger.Allow, "m8link", "could not save preferences: %v", err)
		}
	}

	return err
}

// writeMemviz writes a graphviz description of the session state to the
// named file.
func writeMemviz(filename string, snap session.Snapshot) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	memviz.Map(f, &snap)
	if err := f.Close(); err != nil {
		return fmt.Errorf("memviz: %w", err)
	}
	return nil
}
