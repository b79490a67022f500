package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Label is a block of word-wrapped text.
type Label struct {
	BaseWidget
	Text  string
	Group StyleGroup
}

// NewLabel returns a label showing text.
func NewLabel(text string) *Label {
	return &Label{Text: text}
}

// Bounds prefers a block about 24 columns wide per row of text.
func (l *Label) Bounds() SizeBound {
	return labelBounds(l.Text)
}

func labelBounds(text string) SizeBound {
	w := clampInt(runewidth.StringWidth(text))
	rows := w/24 + 1
	cols := w/rows + 1
	return DefaultBound().WithColumns(cols, satAdd(cols, 2)).WithRows(rows, rows)
}

func (l *Label) Render(c *Cells) error {
	c.SetGroup(l.Group)
	printWrapped(c, l.Text)
	return nil
}

func printWrapped(c *Cells, text string) {
	for row, line := range wrap(text, int(c.Width())) {
		if row >= int(c.Height()) {
			break
		}
		c.MoveTo(0, row)
		c.PrintStr(line)
	}
}

// wrap breaks text into lines no wider than width, greedily by words.
// Words wider than a line are broken where they overflow.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var line strings.Builder
		lw := 0
		flush := func() {
			lines = append(lines, line.String())
			line.Reset()
			lw = 0
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			flush()
			continue
		}
		for _, word := range words {
			ww := runewidth.StringWidth(word)
			if lw > 0 && lw+1+ww > width {
				flush()
			}
			for ww > width {
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					// a single glyph wider than the line
					head = string([]rune(word)[:1])
				}
				if lw > 0 {
					flush()
				}
				line.WriteString(head)
				flush()
				word = word[len(head):]
				ww = runewidth.StringWidth(word)
			}
			if word == "" {
				continue
			}
			if lw > 0 {
				line.WriteByte(' ')
				lw++
			}
			line.WriteString(word)
			lw += ww
		}
		if lw > 0 {
			flush()
		}
	}
	return lines
}

// ButtonState is the interaction state of a Button.
type ButtonState int

const (
	ButtonDisabled ButtonState = iota
	ButtonEnabled
	ButtonHovered
	ButtonFocused
	ButtonPressed
)

func (s ButtonState) String() string {
	switch s {
	case ButtonDisabled:
		return "disabled"
	case ButtonEnabled:
		return "enabled"
	case ButtonHovered:
		return "hovered"
	case ButtonFocused:
		return "focused"
	case ButtonPressed:
		return "pressed"
	default:
		return fmt.Sprintf("ButtonState(%d)", int(s))
	}
}

// Button is a clickable label. A click is a button press and release
// inside the button; it calls OnClick and, when Name is set, yields
// Custom(Name).
type Button struct {
	Text    string
	Name    string
	OnClick func()

	state ButtonState
}

// NewButton returns an enabled button.
func NewButton(text string, onClick func()) *Button {
	return &Button{Text: text, OnClick: onClick, state: ButtonEnabled}
}

// State returns the current state.
func (b *Button) State() ButtonState { return b.state }

func (b *Button) Disable() { b.state = ButtonDisabled }

// Enable re-enables a disabled button. Other states are kept.
func (b *Button) Enable() {
	if b.state == ButtonDisabled {
		b.state = ButtonEnabled
	}
}

func (b *Button) Bounds() SizeBound {
	return labelBounds(b.Text)
}

func (b *Button) Border() *Border {
	switch b.state {
	case ButtonDisabled:
		return NewBorder(LineEmpty)
	case ButtonPressed:
		return NewBorder(LineHeavy)
	default:
		return NewBorder(LineSolid)
	}
}

func (b *Button) Render(c *Cells) error {
	c.SetGroup(b.group())
	c.Fill(' ')
	printWrapped(c, b.Text)
	return nil
}

func (b *Button) group() StyleGroup {
	switch b.state {
	case ButtonDisabled:
		return GroupDisabled
	case ButtonHovered:
		return GroupHovered
	case ButtonFocused:
		return GroupFocused
	case ButtonPressed:
		return GroupPressed
	default:
		return GroupEnabled
	}
}

func (b *Button) Focus(ev FocusEvent) Action {
	next := b.state
	switch ev {
	case FocusOffer:
		if b.state == ButtonEnabled {
			next = ButtonFocused
		}
	case FocusTake:
		switch b.state {
		case ButtonFocused, ButtonHovered, ButtonPressed:
			next = ButtonEnabled
		}
	case FocusHoverInside:
		if b.state == ButtonEnabled {
			next = ButtonHovered
		}
	case FocusHoverOutside:
		switch b.state {
		case ButtonPressed:
			next = ButtonFocused
		case ButtonHovered:
			next = ButtonEnabled
		}
	}
	return b.setState(next)
}

func (b *Button) Mouse(ev MouseEvent, _ ModKeys, _ Dim, _ Pos) Action {
	if b.state == ButtonDisabled {
		return Action{}
	}
	switch ev.Kind {
	case ButtonDown:
		return b.setState(ButtonPressed)
	case ButtonUp:
		if b.state != ButtonPressed {
			return Action{}
		}
		redraw := b.setState(ButtonFocused)
		return b.click().Or(redraw)
	}
	return Action{}
}

func (b *Button) click() Action {
	if b.OnClick != nil {
		b.OnClick()
	}
	if b.Name != "" {
		return Custom(b.Name)
	}
	return Action{}
}

func (b *Button) setState(s ButtonState) Action {
	if s == b.state {
		return Action{}
	}
	b.state = s
	return Redraw()
}

// Spacer takes up space, optionally filled with a glyph.
type Spacer struct {
	BaseWidget
	fill rune
}

// NewSpacer returns a blank spacer.
func NewSpacer() *Spacer { return &Spacer{} }

// WithFill sets the fill glyph, which must be one cell wide.
func (s *Spacer) WithFill(r rune) (*Spacer, error) {
	if runewidth.RuneWidth(r) != 1 {
		return nil, E(Op("ui.Spacer.WithFill"), KindTemplate, ErrInvalidFill, fmt.Sprintf("%q", r))
	}
	s.fill = r
	return s, nil
}

func (s *Spacer) Render(c *Cells) error {
	if s.fill != 0 {
		c.Fill(s.fill)
	}
	return nil
}

// Frame draws a border across its whole area. It spans template cells
// like any other widget and draws nothing inside.
type Frame struct {
	BaseWidget
	border Border
}

// NewFrame returns a frame with all edges drawn in line style.
func NewFrame(line LineStyle) *Frame {
	return &Frame{border: *NewBorder(line)}
}

// WithEdges selects the drawn edges.
func (f *Frame) WithEdges(e Edge) *Frame {
	f.border.Edges = e
	return f
}

// WithAccents selects edges drawn in the accent style.
func (f *Frame) WithAccents(e Edge) *Frame {
	f.border.Accents = e
	return f
}

func (f *Frame) Border() *Border { return &f.border }

func (f *Frame) Render(*Cells) error { return nil }
