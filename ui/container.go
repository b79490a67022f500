package ui

// decorator wraps a Widget and changes its size preference or adds
// padding around it. Focus and borders are those of the wrapped widget.
type decorator struct {
	Widget
	padT, padB, padL, padR uint16
	cols, rows             *LengthBound // replace the wrapped bound when set
	grow                   bool
}

// decorate returns a copy of w's decorator, so wrapping twice merges the
// settings instead of nesting.
func decorate(w Widget) *decorator {
	if d, ok := w.(*decorator); ok {
		c := *d
		return &c
	}
	return &decorator{Widget: w}
}

func (d *decorator) Bounds() SizeBound {
	b := d.Widget.Bounds()
	if d.cols != nil {
		b.Cols = *d.cols
	}
	if d.rows != nil {
		b.Rows = *d.rows
	}
	if d.grow {
		b.Cols.Max = Unbounded
		b.Rows.Max = Unbounded
	}
	b.Cols = b.Cols.grow(d.padL + d.padR)
	b.Rows = b.Rows.grow(d.padT + d.padB)
	return b
}

// inner returns the content area within a, which is already inside the
// border.
func (d *decorator) inner(a Area) Area {
	return a.
		Trim(EdgeLeft, d.padL).
		Trim(EdgeRight, d.padR).
		Trim(EdgeTop, d.padT).
		Trim(EdgeBottom, d.padB)
}

func (d *decorator) Render(c *Cells) error {
	in := d.inner(Area{Dim: c.Dim()})
	if in.IsEmpty() {
		return nil
	}
	return d.Widget.Render(c.sub(in))
}

// Mouse gets positions in the whole placement, border included, and hands
// the wrapped widget positions in its content area.
func (d *decorator) Mouse(ev MouseEvent, mods ModKeys, dim Dim, pos Pos) Action {
	in := d.inner(Area{Dim: dim}.Inset(d.Border()))
	rel, ok := in.Within(pos)
	if !ok {
		return Action{}
	}
	return d.Widget.Mouse(ev, mods, in.Dim, rel)
}

// Pad surrounds w with n blank cells on every side.
func Pad(w Widget, n uint16) Widget {
	d := decorate(w)
	d.padT, d.padB, d.padL, d.padR = n, n, n, n
	return d
}

// PadH adds n blank columns left and right of w.
func PadH(w Widget, n uint16) Widget {
	d := decorate(w)
	d.padL, d.padR = n, n
	return d
}

// PadV adds n blank rows above and below w.
func PadV(w Widget, n uint16) Widget {
	d := decorate(w)
	d.padT, d.padB = n, n
	return d
}

// Grow lets w take any leftover space on both axes.
func Grow(w Widget) Widget {
	d := decorate(w)
	d.grow = true
	return d
}

// Sized fixes the content size of w. Zero keeps the widget's own bound on
// that axis.
func Sized(w Widget, cols, rows uint16) Widget {
	d := decorate(w)
	if cols > 0 {
		b := Fixed(cols)
		d.cols = &b
	}
	if rows > 0 {
		b := Fixed(rows)
		d.rows = &b
	}
	return d
}
