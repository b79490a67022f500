package ui

import "log/slog"

// Grid is a template whose labels are bound to widgets.
type Grid struct {
	tmpl    *Template
	widgets []Widget // parallel to tmpl.spans
}

// Placement is a widget and the area it was given.
type Placement struct {
	Widget Widget
	Area   Area
}

// Template returns the grid's template.
func (g *Grid) Template() *Template { return g.tmpl }

// Solve computes the area of every widget within bbox. The result is in
// first-occurrence order of the template labels, which is also the order
// mouse events are dispatched in.
func (g *Grid) Solve(bbox Area) []Placement {
	return g.solve(bbox, nil)
}

func (g *Grid) solve(bbox Area, log *slog.Logger) []Placement {
	spans := g.tmpl.spans
	colSpans := make([]axisSpan, len(spans))
	rowSpans := make([]axisSpan, len(spans))
	for i, s := range spans {
		w := g.widgets[i]
		b := w.Bounds().Inflate(w.Border())
		colSpans[i] = axisSpan{Extent: s.Cols, bound: b.Cols}
		rowSpans[i] = axisSpan{Extent: s.Rows, bound: b.Rows}
	}
	cols := solveAxis(g.tmpl.cols, colSpans, bbox.Col, bbox.Width)
	rows := solveAxis(g.tmpl.rows, rowSpans, bbox.Row, bbox.Height)

	out := make([]Placement, len(spans))
	for i, s := range spans {
		out[i] = Placement{
			Widget: g.widgets[i],
			Area: Area{
				Col: cols[s.Cols.Start],
				Row: rows[s.Rows.Start],
				Dim: Dim{
					Width:  cols[s.Cols.End] - cols[s.Cols.Start],
					Height: rows[s.Rows.End] - rows[s.Rows.Start],
				},
			},
		}
	}
	if log != nil {
		log.Debug("layout solved", "bbox", bbox, "columns", cols, "rows", rows, "widgets", len(out))
	}
	return out
}

// solveAxis returns n+1 absolute offsets: the start of every track followed
// by the end of the last one.
func solveAxis(n int, spans []axisSpan, origin, avail uint16) []uint16 {
	tracks := trackLimits(n, spans)
	var sum uint32
	for i := range tracks {
		tracks[i].size = tracks[i].min
		sum += uint32(tracks[i].min)
	}
	if sum > uint32(avail) {
		shrink(tracks, sum, avail)
	} else {
		grow(tracks, spans, uint32(avail)-sum)
	}

	offsets := make([]uint16, n+1)
	offsets[0] = origin
	for i, t := range tracks {
		offsets[i+1] = satAdd(offsets[i], t.size)
	}
	return offsets
}

// shrink scales every minimum down so the sizes add up to avail exactly.
func shrink(tracks []track, sum uint32, avail uint16) {
	var used uint32
	for i := range tracks {
		scaled := float64(uint32(tracks[i].min)*uint32(avail)) / float64(sum)
		tracks[i].size = uint16(scaled)
		used += uint32(tracks[i].size)
	}
	rem := uint32(avail) - used
	for rem > 0 {
		given := false
		for i := range tracks {
			if rem == 0 {
				break
			}
			if tracks[i].size < tracks[i].min {
				tracks[i].size++
				rem--
				given = true
			}
		}
		if !given {
			break
		}
	}
}

// grow hands leftover cells to the flexible tracks, water-filling: equal
// shares each round, remainder to the first tracks, and tracks that reach a
// limit drop out so later rounds redistribute what they could not take.
func grow(tracks []track, spans []axisSpan, leftover uint32) {
	// bounded spanning widgets cap the sum of their tracks
	var caps []axisSpan
	for _, s := range spans {
		if s.Len() > 1 && !s.bound.Flexible() {
			caps = append(caps, s)
		}
	}
	headroom := func(t int) uint32 {
		if !tracks[t].flexible {
			return 0
		}
		room := uint32(tracks[t].max - tracks[t].size)
		for _, s := range caps {
			if t < s.Start || t >= s.End {
				continue
			}
			var sum uint32
			for i := s.Start; i < s.End; i++ {
				sum += uint32(tracks[i].size)
			}
			if sum >= uint32(s.bound.Max) {
				return 0
			}
			room = min(room, uint32(s.bound.Max)-sum)
		}
		return room
	}

	for leftover > 0 {
		var open int
		for t := range tracks {
			if headroom(t) > 0 {
				open++
			}
		}
		if open == 0 {
			return
		}
		share := max(leftover/uint32(open), 1)
		for t := range tracks {
			if leftover == 0 {
				return
			}
			g := min(share, headroom(t), leftover)
			tracks[t].size += uint16(g)
			leftover -= g
		}
	}
}
