package ui

import (
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

func TestLabel_Bounds(t *testing.T) {
	tests := []struct {
		text string
		want SizeBound
	}{
		{"", SizeBound{Cols: Between(1, 3), Rows: Fixed(1)}},
		{"hello", SizeBound{Cols: Between(6, 8), Rows: Fixed(1)}},
		{"This is a bit of test text inside of a label", SizeBound{Cols: Between(23, 25), Rows: Fixed(2)}},
		{"日本語", SizeBound{Cols: Between(7, 9), Rows: Fixed(1)}},
	}
	for _, tt := range tests {
		if got := NewLabel(tt.text).Bounds(); got != tt.want {
			t.Errorf("Bounds(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "hello world", 20, []string{"hello world"}},
		{"breaks at spaces", "hello big world", 9, []string{"hello big", "world"}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word after text", "ab cdefgh", 4, []string{"ab", "cdef", "gh"}},
		{"newlines", "a\n\nb", 5, []string{"a", "", "b"}},
		{"wide glyphs", "日本語", 4, []string{"日本", "語"}},
		{"no room", "abc", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, wrap(tt.text, tt.width)); diff != "" {
				t.Errorf("wrap() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestButton_Focus(t *testing.T) {
	tests := []struct {
		from ButtonState
		ev   FocusEvent
		to   ButtonState
	}{
		{ButtonEnabled, FocusOffer, ButtonFocused},
		{ButtonHovered, FocusOffer, ButtonHovered},
		{ButtonFocused, FocusTake, ButtonEnabled},
		{ButtonHovered, FocusTake, ButtonEnabled},
		{ButtonPressed, FocusTake, ButtonEnabled},
		{ButtonEnabled, FocusHoverInside, ButtonHovered},
		{ButtonFocused, FocusHoverInside, ButtonFocused},
		{ButtonPressed, FocusHoverOutside, ButtonFocused},
		{ButtonHovered, FocusHoverOutside, ButtonEnabled},
		{ButtonDisabled, FocusOffer, ButtonDisabled},
		{ButtonDisabled, FocusHoverInside, ButtonDisabled},
	}
	for _, tt := range tests {
		b := &Button{state: tt.from}
		a := b.Focus(tt.ev)
		if b.State() != tt.to {
			t.Errorf("%v + focus %d = %v, want %v", tt.from, tt.ev, b.State(), tt.to)
		}
		if changed := tt.from != tt.to; changed != (a == Redraw()) {
			t.Errorf("%v + focus %d returned %v", tt.from, tt.ev, a)
		}
	}
}

func TestButton_Click(t *testing.T) {
	clicks := 0
	b := NewButton("ok", func() { clicks++ })
	b.Name = "ok"
	down := MouseEvent{Kind: ButtonDown, Button: MouseLeft}
	up := MouseEvent{Kind: ButtonUp, Button: MouseLeft}

	if a := b.Mouse(down, 0, Dim{}, Pos{}); a != Redraw() || b.State() != ButtonPressed {
		t.Fatalf("press: %v, %v", a, b.State())
	}
	if a := b.Mouse(down, 0, Dim{}, Pos{}); !a.IsNone() {
		t.Errorf("second press = %v, want none", a)
	}
	if a := b.Mouse(up, 0, Dim{}, Pos{}); a != Custom("ok") || b.State() != ButtonFocused {
		t.Errorf("release: %v, %v", a, b.State())
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
	if a := b.Mouse(up, 0, Dim{}, Pos{}); !a.IsNone() || clicks != 1 {
		t.Errorf("release without press: %v, clicks %d", a, clicks)
	}
}

func TestButton_ReleaseOutside(t *testing.T) {
	clicks := 0
	b := NewButton("ok", func() { clicks++ })
	b.Mouse(MouseEvent{Kind: ButtonDown, Button: MouseLeft}, 0, Dim{}, Pos{})
	// the pointer left before the release
	b.Focus(FocusHoverOutside)
	if b.State() != ButtonFocused || clicks != 0 {
		t.Errorf("state %v, clicks %d", b.State(), clicks)
	}
}

func TestButton_Disabled(t *testing.T) {
	b := NewButton("ok", nil)
	b.Disable()
	if a := b.Mouse(MouseEvent{Kind: ButtonDown}, 0, Dim{}, Pos{}); !a.IsNone() {
		t.Errorf("disabled press = %v", a)
	}
	if b.Border().Line != LineEmpty {
		t.Errorf("disabled border = %v", b.Border().Line)
	}
	b.Enable()
	if b.State() != ButtonEnabled {
		t.Errorf("Enable() state = %v", b.State())
	}
	b.Mouse(MouseEvent{Kind: ButtonDown}, 0, Dim{}, Pos{})
	if b.Border().Line != LineHeavy {
		t.Errorf("pressed border = %v", b.Border().Line)
	}
	b.Enable()
	if b.State() != ButtonPressed {
		t.Errorf("Enable() should keep %v", ButtonPressed)
	}
}

func TestSpacer_WithFill(t *testing.T) {
	if _, err := NewSpacer().WithFill('.'); err != nil {
		t.Errorf("WithFill('.') error = %v", err)
	}
	for _, r := range []rune{'語', '\t', 0x0301} {
		_, err := NewSpacer().WithFill(r)
		if !errors.Is(err, ErrInvalidFill) {
			t.Errorf("WithFill(%q) error = %v, want ErrInvalidFill", r, err)
		}
	}
}

func TestFrame(t *testing.T) {
	f := NewFrame(LineDouble).WithEdges(EdgeTopBottom).WithAccents(EdgeBottom)
	want := Border{Edges: EdgeTopBottom, Accents: EdgeBottom, Line: LineDouble}
	if *f.Border() != want {
		t.Errorf("Border() = %v, want %v", *f.Border(), want)
	}
	if b := f.Bounds().Inflate(f.Border()); b.Rows.Min != 2 || b.Cols.Min != 0 {
		t.Errorf("bounds with border = %v", b)
	}
}

func TestDecorator(t *testing.T) {
	lbl := NewLabel("hello")
	w := PadH(Pad(lbl, 1), 2)
	want := SizeBound{Cols: Between(10, 12), Rows: Fixed(3)}
	if got := w.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if _, ok := w.(*decorator).Widget.(*Label); !ok {
		t.Error("padding twice should not nest decorators")
	}

	if got := Sized(lbl, 4, 0).Bounds(); got.Cols != Fixed(4) || got.Rows != Fixed(1) {
		t.Errorf("Sized() bounds = %v", got)
	}
	if got := Grow(lbl).Bounds(); !got.Cols.Flexible() || !got.Rows.Flexible() {
		t.Errorf("Grow() bounds = %v", got)
	}
}

func TestDecorator_Mouse(t *testing.T) {
	p := &recorder{action: Custom("hit")}
	w := Pad(p, 1)
	dim := Dim{Width: 5, Height: 3}
	if a := w.Mouse(MouseEvent{Kind: ButtonDown}, 0, dim, Pos{Col: 0, Row: 0}); !a.IsNone() {
		t.Errorf("click on the padding = %v", a)
	}
	if a := w.Mouse(MouseEvent{Kind: ButtonDown}, 0, dim, Pos{Col: 2, Row: 1}); a != Custom("hit") {
		t.Errorf("click inside = %v", a)
	}
	if diff := cmp.Diff([]Pos{{Col: 1, Row: 0}}, p.mouse); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestDecorator_MouseInsideBorder(t *testing.T) {
	p := &recorder{action: Custom("hit"), border: NewBorder(LineSolid)}
	w := Pad(p, 1)
	dim := Dim{Width: 10, Height: 5}
	tests := []struct {
		col  uint16
		want Action
	}{
		{0, Action{}},      // border
		{1, Action{}},      // padding
		{2, Custom("hit")}, // first content column
		{3, Custom("hit")},
	}
	for _, tt := range tests {
		if a := w.Mouse(MouseEvent{Kind: ButtonDown}, 0, dim, Pos{Col: tt.col, Row: 2}); a != tt.want {
			t.Errorf("click at column %d = %v, want %v", tt.col, a, tt.want)
		}
	}
	if diff := cmp.Diff([]Pos{{Col: 0, Row: 0}, {Col: 1, Row: 0}}, p.mouse); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestDecorator_Render(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	defer sim.Fini()
	sim.SetSize(6, 3)

	c := newCells(sim, DarkTheme(), NewArea(0, 0, 6, 3))
	if err := Pad(NewLabel("ab"), 1).Render(c); err != nil {
		t.Fatal(err)
	}
	r, _, _, _ := sim.GetContent(1, 1)
	if r != 'a' {
		t.Errorf("content at 1,1 = %q, want 'a'", r)
	}
}
