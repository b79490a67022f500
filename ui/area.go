package ui

import "math"

// Edge is a set of area sides.
type Edge uint8

const (
	EdgeNone   Edge = 0
	EdgeTop    Edge = 1 << 0
	EdgeBottom Edge = 1 << 1
	EdgeLeft   Edge = 1 << 2
	EdgeRight  Edge = 1 << 3

	EdgeTopLeft     = EdgeTop | EdgeLeft
	EdgeTopRight    = EdgeTop | EdgeRight
	EdgeBottomLeft  = EdgeBottom | EdgeLeft
	EdgeBottomRight = EdgeBottom | EdgeRight
	EdgeTopBottom   = EdgeTop | EdgeBottom
	EdgeLeftRight   = EdgeLeft | EdgeRight
	EdgeAll         = EdgeTopBottom | EdgeLeftRight
)

// Has reports whether every side in o is part of e.
func (e Edge) Has(o Edge) bool { return e&o == o }

// Count returns the number of sides in the set.
func (e Edge) Count() uint16 {
	var n uint16
	for _, s := range []Edge{EdgeTop, EdgeBottom, EdgeLeft, EdgeRight} {
		if e&s != 0 {
			n++
		}
	}
	return n
}

// Dim is a size in text cells.
type Dim struct {
	Width, Height uint16
}

// IsEmpty reports whether nothing fits in d.
func (d Dim) IsEmpty() bool { return d.Width == 0 || d.Height == 0 }

// Pos is a cell position.
type Pos struct {
	Col, Row uint16
}

// Area is a rectangle of text cells anchored at its top-left cell.
// A zero-sized area is valid and means there is nothing to draw.
type Area struct {
	Col, Row uint16
	Dim
}

// NewArea returns an area at col, row with the given size.
func NewArea(col, row, width, height uint16) Area {
	return Area{Col: col, Row: row, Dim: Dim{Width: width, Height: height}}
}

// End returns the column just past the right edge.
func (a Area) End() uint16 { return satAdd(a.Col, a.Width) }

// Bottom returns the row just past the bottom edge.
func (a Area) Bottom() uint16 { return satAdd(a.Row, a.Height) }

// Split divides the area starting from the given edge.
//
// For EdgeLeft/EdgeTop the near part is the left/top part of at most cells,
// for EdgeRight/EdgeBottom it is the right/bottom part. EdgeLeftRight and
// EdgeTopBottom split exactly in half. Any other edge set is a programming
// error and panics.
func (a Area) Split(edge Edge, cells uint16) (near, far Area) {
	switch edge {
	case EdgeLeft:
		return a.splitLeft(cells)
	case EdgeRight:
		return a.splitRight(cells)
	case EdgeLeftRight:
		return a.splitLeft(a.Width / 2)
	case EdgeTop:
		return a.splitTop(cells)
	case EdgeBottom:
		return a.splitBottom(cells)
	case EdgeTopBottom:
		return a.splitTop(a.Height / 2)
	default:
		panic("ui: invalid split edges")
	}
}

func (a Area) splitLeft(width uint16) (Area, Area) {
	left := a
	left.Width = min(a.Width, width)
	right := a
	right.Col = a.Col + left.Width
	right.Width = a.Width - left.Width
	return left, right
}

func (a Area) splitRight(width uint16) (Area, Area) {
	right := a
	right.Width = min(a.Width, width)
	right.Col = a.Col + a.Width - right.Width
	left := a
	left.Width = a.Width - right.Width
	return right, left
}

func (a Area) splitTop(height uint16) (Area, Area) {
	top := a
	top.Height = min(a.Height, height)
	bottom := a
	bottom.Row = a.Row + top.Height
	bottom.Height = a.Height - top.Height
	return top, bottom
}

func (a Area) splitBottom(height uint16) (Area, Area) {
	bottom := a
	bottom.Height = min(a.Height, height)
	bottom.Row = a.Row + a.Height - bottom.Height
	top := a
	top.Height = a.Height - bottom.Height
	return bottom, top
}

// Trim removes cells from each of the given edges. Every edge is clamped to
// the extent left over, so trimming too much yields a zero width or height.
func (a Area) Trim(edge Edge, cells uint16) Area {
	if edge.Has(EdgeLeft) {
		n := min(a.Width, cells)
		a.Col += n
		a.Width -= n
	}
	if edge.Has(EdgeRight) {
		a.Width -= min(a.Width, cells)
	}
	if edge.Has(EdgeTop) {
		n := min(a.Height, cells)
		a.Row += n
		a.Height -= n
	}
	if edge.Has(EdgeBottom) {
		a.Height -= min(a.Height, cells)
	}
	return a
}

// Inset returns the area inside a border.
func (a Area) Inset(b *Border) Area {
	if b == nil {
		return a
	}
	return a.Trim(b.Edges, 1)
}

// Clip returns the intersection of two areas.
func (a Area) Clip(o Area) Area {
	col := max(a.Col, o.Col)
	row := max(a.Row, o.Row)
	end := min(a.End(), o.End())
	bottom := min(a.Bottom(), o.Bottom())
	c := Area{Col: col, Row: row}
	if end > col {
		c.Width = end - col
	}
	if bottom > row {
		c.Height = bottom - row
	}
	return c
}

// Contains reports whether p lies inside the area.
func (a Area) Contains(p Pos) bool {
	return p.Col >= a.Col && p.Col < a.End() && p.Row >= a.Row && p.Row < a.Bottom()
}

// Within returns p relative to the top-left cell, if p lies inside the area.
func (a Area) Within(p Pos) (Pos, bool) {
	if !a.Contains(p) {
		return Pos{}, false
	}
	return Pos{Col: p.Col - a.Col, Row: p.Row - a.Row}, true
}

func satAdd(a, b uint16) uint16 {
	if a > math.MaxUint16-b {
		return math.MaxUint16
	}
	return a + b
}

// clampInt converts a terminal coordinate into the cell range.
func clampInt(v int) uint16 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(v)
}
