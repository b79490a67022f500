package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cells is a view of the terminal clipped to one widget area. Coordinates
// are relative to the top-left cell of the area and writes outside of it are
// dropped.
type Cells struct {
	term  Terminal
	theme *Theme
	area  Area
	style tcell.Style
	col   int // cursor, relative
	row   int
}

func newCells(term Terminal, theme *Theme, area Area) *Cells {
	return &Cells{term: term, theme: theme, area: area, style: theme.Style(GroupEnabled).Apply()}
}

// sub returns a view of the part a of c, a being relative to c.
func (c *Cells) sub(a Area) *Cells {
	a.Col = satAdd(a.Col, c.area.Col)
	a.Row = satAdd(a.Row, c.area.Row)
	return &Cells{term: c.term, theme: c.theme, area: c.area.Clip(a), style: c.style}
}

// Width returns the width of the view.
func (c *Cells) Width() uint16 { return c.area.Width }

// Height returns the height of the view.
func (c *Cells) Height() uint16 { return c.area.Height }

// Dim returns the size of the view.
func (c *Cells) Dim() Dim { return c.area.Dim }

// Theme returns the theme in use.
func (c *Cells) Theme() *Theme { return c.theme }

// SetStyle sets the style of following writes.
func (c *Cells) SetStyle(s Style) { c.style = s.Apply() }

// SetGroup sets the style of following writes from the theme.
func (c *Cells) SetGroup(g StyleGroup) { c.SetStyle(c.theme.Style(g)) }

// MoveTo moves the cursor.
func (c *Cells) MoveTo(col, row int) {
	c.col, c.row = col, row
}

// MoveRight moves the cursor right by n columns.
func (c *Cells) MoveRight(n int) { c.col += n }

// Set writes one glyph at col, row without moving the cursor.
func (c *Cells) Set(col, row int, r rune) {
	c.put(col, row, r, nil)
}

// PrintChar writes a glyph at the cursor and advances it.
func (c *Cells) PrintChar(r rune) {
	w := runewidth.RuneWidth(r)
	if c.fits(w) {
		c.put(c.col, c.row, r, nil)
	}
	c.col += max(w, 1)
}

// PrintStr writes text at the cursor, one grapheme cluster per glyph, and
// advances the cursor by its display width. Glyphs that would straddle the
// right edge are not drawn.
func (c *Cells) PrintStr(s string) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		rs := g.Runes()
		w := runewidth.StringWidth(g.Str())
		if w == 0 {
			continue
		}
		if c.fits(w) {
			c.put(c.col, c.row, rs[0], rs[1:])
		}
		c.col += w
	}
}

// Fill sets every cell of the view to r.
func (c *Cells) Fill(r rune) {
	for y := range int(c.area.Height) {
		for x := range int(c.area.Width) {
			c.put(x, y, r, nil)
		}
	}
}

func (c *Cells) fits(w int) bool {
	return c.col >= 0 && c.col+w <= int(c.area.Width)
}

func (c *Cells) put(col, row int, r rune, comb []rune) {
	if col < 0 || row < 0 || col >= int(c.area.Width) || row >= int(c.area.Height) {
		return
	}
	c.term.SetContent(int(c.area.Col)+col, int(c.area.Row)+row, r, comb, c.style)
}
