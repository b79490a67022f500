package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cansyan/cellgrid/ui"
)

// demo is the sample application: a few labels and buttons placed by the
// configured template.
type demo struct {
	tmpl      *ui.Template
	log       *slog.Logger
	copyText  func(string) error
	pasteText func() (string, error)
	screen    *ui.Screen // set by run

	title   *ui.Label
	status  *ui.Label
	fill    *ui.Spacer
	copyBtn *ui.Button
	quitBtn *ui.Button
	frame   *ui.Frame

	clicks int
}

// newDemo builds the widgets. A nil copyText or pasteText means there is no
// clipboard.
func newDemo(tmpl *ui.Template, copyText func(string) error, pasteText func() (string, error), log *slog.Logger) *demo {
	d := &demo{
		tmpl:      tmpl,
		log:       log,
		copyText:  copyText,
		pasteText: pasteText,
		title:     ui.NewLabel("cellgrid: widgets placed on a text grid"),
		status:    ui.NewLabel("Ready"),
		copyBtn:   ui.NewButton("Copy status", nil),
		quitBtn:   ui.NewButton("Quit", nil),
		frame:     ui.NewFrame(ui.LineDouble).WithAccents(ui.EdgeBottomRight),
	}
	d.copyBtn.Name = "copy"
	d.copyBtn.OnClick = func() { d.clicks++ }
	d.quitBtn.Name = "quit"
	d.fill, _ = ui.NewSpacer().WithFill('.')
	if copyText == nil {
		d.copyBtn.Disable()
	}
	return d
}

func (d *demo) widgets() map[string]ui.Widget {
	return map[string]ui.Widget{
		"t": ui.PadH(d.title, 1),
		"s": d.status,
		"p": d.fill,
		"c": d.copyBtn,
		"q": d.quitBtn,
		"f": d.frame,
	}
}

// grid binds the widgets for the next frame.
func (d *demo) grid() (*ui.Grid, error) {
	return d.tmpl.Bind(d.widgets())
}

// handle reacts to one action and reports whether to keep running.
func (d *demo) handle(a ui.Action) bool {
	switch a.Kind {
	case ui.ActionQuit:
		return false
	case ui.ActionResize:
		d.status.Text = fmt.Sprintf("Screen is %dx%d", a.Dim.Width, a.Dim.Height)
	case ui.ActionCustom:
		switch a.Name {
		case "quit":
			return false
		case "copy":
			d.copyStatus()
		case "paste":
			d.pasteStatus()
		case "theme":
			d.toggleTheme()
		default:
			d.log.Warn("unhandled action", "name", a.Name)
		}
	}
	return true
}

func (d *demo) copyStatus() {
	if d.copyText == nil {
		d.status.Text = "Clipboard unavailable"
		return
	}
	text := d.status.Text
	if err := d.copyText(text); err != nil {
		d.log.Error("copy failed", "error", err)
		d.status.Text = "Copy failed"
		return
	}
	d.log.Debug("copied", "text", text)
	d.status.Text = fmt.Sprintf("Copied %q", text)
}

func (d *demo) pasteStatus() {
	if d.pasteText == nil {
		d.status.Text = "Clipboard unavailable"
		return
	}
	text, err := d.pasteText()
	if err != nil {
		d.log.Error("paste failed", "error", err)
		d.status.Text = "Paste failed"
		return
	}
	if text == "" {
		d.status.Text = "Clipboard is empty"
		return
	}
	d.status.Text = text
}

// toggleTheme switches between the dark and the light theme.
func (d *demo) toggleTheme() {
	if d.screen == nil {
		return
	}
	next := ui.DarkTheme()
	if d.screen.Theme().Name == next.Name {
		next = ui.LightTheme()
	}
	d.screen.SetTheme(next)
	d.log.Debug("theme switched", "theme", next.Name)
}

// run drives the screen until the demo quits. The cooperative mode waits
// through the context-aware loop, the other one through blocking steps.
func run(ctx context.Context, s *ui.Screen, d *demo, cooperative bool) error {
	d.screen = s
	if cooperative {
		err := s.Run(ctx, d.grid, d.handle)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	defer s.Close()
	for {
		g, err := d.grid()
		if err != nil {
			return err
		}
		a, err := s.Step(g)
		if err != nil {
			return err
		}
		if !d.handle(a) {
			return nil
		}
	}
}
