package ui

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Screen manages the terminal: every step lays out a grid, draws it and
// turns the next input event into an Action.
type Screen struct {
	term   Terminal
	dim    Dim
	theme  *Theme
	keymap *KeyMap
	log    *slog.Logger
	tr     translator
	boxes  []Placement // placements of the last frame, used for hit testing
	mouse  bool

	// event pump, started by the first cancellable wait
	events chan tcell.Event
	quit   chan struct{}

	closeOnce sync.Once
	closed    bool
}

// Option configures a Screen.
type Option func(*Screen)

func WithTheme(t *Theme) Option        { return func(s *Screen) { s.theme = t } }
func WithKeyMap(km *KeyMap) Option     { return func(s *Screen) { s.keymap = km } }
func WithLogger(l *slog.Logger) Option { return func(s *Screen) { s.log = l } }
func WithMouse(enabled bool) Option    { return func(s *Screen) { s.mouse = enabled } }

// NewScreen takes over the controlling terminal. Call Close to restore it.
func NewScreen(opts ...Option) (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, E(Op("ui.NewScreen"), KindIO, err)
	}
	return NewScreenWith(term, opts...)
}

// NewScreenWith initializes term and wraps it. Call Close to release it.
func NewScreenWith(term Terminal, opts ...Option) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, E(Op("ui.NewScreenWith"), KindIO, err)
	}
	s := &Screen{
		term:   term,
		theme:  DetectTheme(),
		keymap: DefaultKeyMap(),
		log:    slog.New(slog.DiscardHandler),
		mouse:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.mouse {
		term.EnableMouse()
	}
	term.HideCursor()
	term.SetStyle(s.theme.Style(GroupEnabled).Apply())
	term.Clear()
	w, h := term.Size()
	s.dim = Dim{Width: clampInt(w), Height: clampInt(h)}
	s.log.Debug("screen initialized", "width", s.dim.Width, "height", s.dim.Height, "theme", s.theme.Name)
	return s, nil
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() {
	s.closeOnce.Do(func() {
		s.closed = true
		if s.quit != nil {
			close(s.quit)
		}
		s.term.DisableMouse()
		s.term.ShowCursor(0, 0)
		s.term.Fini()
		s.log.Debug("screen closed")
	})
}

// BBox returns the area of the whole screen.
func (s *Screen) BBox() Area { return Area{Dim: s.dim} }

// Theme returns the theme in use.
func (s *Screen) Theme() *Theme { return s.theme }

// SetTheme replaces the theme from the next frame on.
func (s *Screen) SetTheme(t *Theme) { s.theme = t }

// Step draws the grid and blocks until an input event produces an action.
func (s *Screen) Step(g *Grid) (Action, error) {
	return s.step(context.Background(), g)
}

// StepContext is Step that gives up when ctx is done. While waiting it only
// parks the calling goroutine.
func (s *Screen) StepContext(ctx context.Context, g *Grid) (Action, error) {
	return s.step(ctx, g)
}

// Run steps frames until handle returns false. The grid is rebuilt by frame
// before each step, so widgets and templates may change between frames. With
// a nil handle it runs until a Quit action. The screen is closed when Run
// returns, whatever the reason.
func (s *Screen) Run(ctx context.Context, frame func() (*Grid, error), handle func(Action) bool) error {
	defer s.Close()
	for {
		g, err := frame()
		if err != nil {
			return err
		}
		a, err := s.StepContext(ctx, g)
		if err != nil {
			return err
		}
		if handle == nil {
			if a.Kind == ActionQuit {
				return nil
			}
			continue
		}
		if !handle(a) {
			return nil
		}
	}
}

func (s *Screen) step(ctx context.Context, g *Grid) (Action, error) {
	if s.closed {
		return Action{}, E(Op("ui.Screen.step"), KindIO, ErrClosed)
	}
	s.boxes = g.solve(s.BBox(), s.log)
	if err := s.draw(s.boxes); err != nil {
		return Action{}, err
	}
	for {
		ev, err := s.nextEvent(ctx)
		if err != nil {
			return Action{}, err
		}
		a, err := s.eventAction(ev)
		if err != nil {
			return Action{}, err
		}
		if !a.IsNone() {
			s.log.Debug("action", "action", a.String())
			return a, nil
		}
	}
}

// draw renders every placement into a view clipped to its area.
func (s *Screen) draw(boxes []Placement) error {
	const op Op = "ui.Screen.draw"
	s.term.SetStyle(s.theme.Style(GroupEnabled).Apply())
	s.term.Clear()
	bbox := s.BBox()
	for _, p := range boxes {
		area := bbox.Clip(p.Area)
		if area.IsEmpty() {
			continue
		}
		if b := p.Widget.Border(); b != nil {
			drawBorder(newCells(s.term, s.theme, area), b)
			area = area.Inset(b)
			if area.IsEmpty() {
				continue
			}
		}
		if err := p.Widget.Render(newCells(s.term, s.theme, area)); err != nil {
			return E(op, KindIO, err)
		}
	}
	s.term.Show()
	return nil
}

// nextEvent waits for one terminal event. An uncancellable wait polls the
// terminal directly; a cancellable one starts the event pump and selects on
// it, and every later wait reads from the pump as well.
func (s *Screen) nextEvent(ctx context.Context) (tcell.Event, error) {
	const op Op = "ui.Screen.nextEvent"
	if s.closed {
		return nil, E(op, KindIO, ErrClosed)
	}
	if s.events == nil && ctx.Done() == nil {
		ev := s.term.PollEvent()
		if ev == nil {
			return nil, E(op, KindIO, ErrClosed)
		}
		return ev, nil
	}
	if s.events == nil {
		s.events = make(chan tcell.Event, 16)
		s.quit = make(chan struct{})
		go s.term.ChannelEvents(s.events, s.quit)
	}
	select {
	case ev, ok := <-s.events:
		if !ok {
			return nil, E(op, KindIO, ErrClosed)
		}
		return ev, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// eventAction classifies one event and routes it. A resize to the size the
// screen already has yields no action: tcell reports the initial size as a
// resize, and the first frame was drawn at that size already.
func (s *Screen) eventAction(ev tcell.Event) (Action, error) {
	e, err := s.tr.translate(ev)
	if err != nil {
		return Action{}, E(Op("ui.Screen.eventAction"), KindIO, err)
	}
	switch e.kind {
	case eventResize:
		if e.dim == s.dim {
			return Action{}, nil
		}
		s.dim = e.dim
		s.term.Sync()
		return Resize(e.dim), nil
	case eventKey:
		return s.keymap.Lookup(e.key, e.mods), nil
	case eventMouse:
		return dispatchMouse(e.mouse, e.mods, e.pos, s.boxes), nil
	}
	return Action{}, nil
}

// dispatchMouse offers a mouse event to every placement. Widgets under the
// pointer get the inside focus notification and the event itself, all others
// the outside notification, so only the widget under the pointer keeps
// focus. A widget's own action wins over a focus action.
func dispatchMouse(mev MouseEvent, mods ModKeys, pos Pos, boxes []Placement) Action {
	var action, redraw Action
	for _, p := range boxes {
		rel, inside := p.Area.Within(pos)
		if fev, ok := focusFor(mev, inside); ok {
			redraw = redraw.Or(p.Widget.Focus(fev))
		}
		if inside {
			action = action.Or(p.Widget.Mouse(mev, mods, p.Area.Dim, rel))
		}
	}
	return action.Or(redraw)
}

func focusFor(mev MouseEvent, inside bool) (FocusEvent, bool) {
	switch mev.Kind {
	case ButtonDown:
		if inside {
			return FocusOffer, true
		}
		return FocusTake, true
	case Drag:
		if !inside {
			return FocusHoverOutside, true
		}
		if mev.Button == MouseNone {
			return FocusHoverInside, true
		}
	case ButtonUp:
		if inside {
			return FocusHoverInside, true
		}
		return FocusHoverOutside, true
	}
	return 0, false
}
