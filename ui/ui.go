// Package ui provides a grid-layout text user interface toolkit built on top of tcell.
// Widgets are placed with an ASCII template, sized from their min/max
// preferences, drawn into clipped views and fed semantic input events.
package ui

import "github.com/gdamore/tcell/v2"

type Terminal = tcell.Screen

// Widget is the interface implemented by all visual elements.
type Widget interface {
	// Bounds returns the acceptable size range. It may change between frames.
	Bounds() SizeBound
	// Border returns the decoration drawn around the widget, or nil.
	// The view passed to Render is inset by one cell per bordered edge.
	Border() *Border
	// Render draws the widget into a view clipped to its area.
	Render(c *Cells) error
	// Focus handles a focus transition.
	Focus(ev FocusEvent) Action
	// Mouse handles a mouse event; pos is relative to the widget area of size dim.
	Mouse(ev MouseEvent, mods ModKeys, dim Dim, pos Pos) Action
}

// BaseWidget provides default implementations for the optional parts of
// Widget. Embed it and implement Render.
type BaseWidget struct{}

func (BaseWidget) Bounds() SizeBound                          { return DefaultBound() }
func (BaseWidget) Border() *Border                            { return nil }
func (BaseWidget) Focus(FocusEvent) Action                    { return Action{} }
func (BaseWidget) Mouse(MouseEvent, ModKeys, Dim, Pos) Action { return Action{} }

// LineStyle selects the glyphs of a border.
type LineStyle int

const (
	LineSolid LineStyle = iota
	LineRounded
	LineDouble
	LineHeavy
	LineDashed
	LineEmpty // blank cells, keeps the spacing of a border
)

// Border is a decoration drawn on some edges of a widget area.
// Accent edges are drawn with the accent style group.
type Border struct {
	Edges   Edge
	Accents Edge
	Line    LineStyle
}

// NewBorder returns a border on all edges.
func NewBorder(line LineStyle) *Border {
	return &Border{Edges: EdgeAll, Line: line}
}

type borderGlyphs struct {
	h, v           rune
	tl, tr, bl, br rune
}

var glyphSets = map[LineStyle]borderGlyphs{
	LineSolid:   {'─', '│', '┌', '┐', '└', '┘'},
	LineRounded: {'─', '│', '╭', '╮', '╰', '╯'},
	LineDouble:  {'═', '║', '╔', '╗', '╚', '╝'},
	LineHeavy:   {'━', '┃', '┏', '┓', '┗', '┛'},
	LineDashed:  {'╌', '╎', '┌', '┐', '└', '┘'},
	LineEmpty:   {' ', ' ', ' ', ' ', ' ', ' '},
}

// drawBorder draws b on the edges of c. Corners are only drawn where both
// adjoining edges are present.
func drawBorder(c *Cells, b *Border) {
	w, h := int(c.Width()), int(c.Height())
	if w == 0 || h == 0 {
		return
	}
	g := glyphSets[b.Line]
	th := c.Theme()
	style := func(e Edge) Style {
		if b.Accents&e != 0 {
			return th.Style(GroupAccent)
		}
		return th.Style(GroupBorder)
	}
	if b.Edges.Has(EdgeTop) {
		c.SetStyle(style(EdgeTop))
		for x := range w {
			c.Set(x, 0, g.h)
		}
	}
	if b.Edges.Has(EdgeBottom) {
		c.SetStyle(style(EdgeBottom))
		for x := range w {
			c.Set(x, h-1, g.h)
		}
	}
	if b.Edges.Has(EdgeLeft) {
		c.SetStyle(style(EdgeLeft))
		for y := range h {
			c.Set(0, y, g.v)
		}
	}
	if b.Edges.Has(EdgeRight) {
		c.SetStyle(style(EdgeRight))
		for y := range h {
			c.Set(w-1, y, g.v)
		}
	}
	corner := func(e Edge, x, y int, r rune) {
		if b.Edges.Has(e) {
			c.SetStyle(style(e))
			c.Set(x, y, r)
		}
	}
	corner(EdgeTopLeft, 0, 0, g.tl)
	corner(EdgeTopRight, w-1, 0, g.tr)
	corner(EdgeBottomLeft, 0, h-1, g.bl)
	corner(EdgeBottomRight, w-1, h-1, g.br)
}
