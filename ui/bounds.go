package ui

import "math"

// Unbounded is the maximum of a length that can grow without limit.
const Unbounded uint16 = math.MaxUint16

// LengthBound is an inclusive range of acceptable cell counts on one axis.
type LengthBound struct {
	Min, Max uint16
}

// Fixed returns a rigid bound of exactly n cells.
func Fixed(n uint16) LengthBound { return LengthBound{Min: n, Max: n} }

// AtLeast returns a flexible bound of at least n cells.
func AtLeast(n uint16) LengthBound { return LengthBound{Min: n, Max: Unbounded} }

// Between returns a bound from lo to hi; hi below lo is raised to lo.
func Between(lo, hi uint16) LengthBound { return LengthBound{Min: lo, Max: max(lo, hi)} }

// Flexible reports whether the length absorbs any leftover space.
func (b LengthBound) Flexible() bool { return b.Max == Unbounded }

// Rigid reports whether exactly one length is acceptable.
func (b LengthBound) Rigid() bool { return b.Min == b.Max }

// Clamp limits v to the bound.
func (b LengthBound) Clamp(v uint16) uint16 {
	return min(max(v, b.Min), max(b.Min, b.Max))
}

func (b LengthBound) grow(n uint16) LengthBound {
	b.Min = satAdd(b.Min, n)
	if b.Max != Unbounded {
		b.Max = satAdd(b.Max, n)
	}
	return b
}

// SizeBound is a widget's size preference: independent column and row ranges.
type SizeBound struct {
	Cols, Rows LengthBound
}

// DefaultBound accepts any size.
func DefaultBound() SizeBound {
	return SizeBound{Cols: AtLeast(0), Rows: AtLeast(0)}
}

// WithColumns returns b with a new column range.
func (b SizeBound) WithColumns(lo, hi uint16) SizeBound {
	b.Cols = Between(lo, hi)
	return b
}

// WithRows returns b with a new row range.
func (b SizeBound) WithRows(lo, hi uint16) SizeBound {
	b.Rows = Between(lo, hi)
	return b
}

// Inflate reserves room for a border around the widget content.
func (b SizeBound) Inflate(bdr *Border) SizeBound {
	if bdr == nil {
		return b
	}
	var cols, rows uint16
	if bdr.Edges.Has(EdgeLeft) {
		cols++
	}
	if bdr.Edges.Has(EdgeRight) {
		cols++
	}
	if bdr.Edges.Has(EdgeTop) {
		rows++
	}
	if bdr.Edges.Has(EdgeBottom) {
		rows++
	}
	b.Cols = b.Cols.grow(cols)
	b.Rows = b.Rows.grow(rows)
	return b
}

// track is one column or row while an axis is being solved.
type track struct {
	min, max uint16
	flexible bool
	size     uint16
}

// axisSpan is a widget's footprint on one axis.
type axisSpan struct {
	Extent
	bound LengthBound
}

// trackLimits aggregates span bounds into per-track minimums and maximums.
//
// Single-track spans are applied first. A spanning widget whose minimum is not
// yet covered by its tracks raises their minimums through spreadMin. A
// track's maximum is the smallest maximum of the widgets sitting only in it;
// a track is flexible when any widget touching it is unbounded.
func trackLimits(n int, spans []axisSpan) []track {
	tracks := make([]track, n)
	for i := range tracks {
		tracks[i].max = Unbounded
	}
	for _, s := range spans {
		flex := s.bound.Flexible()
		for t := s.Start; t < s.End; t++ {
			if flex {
				tracks[t].flexible = true
			}
		}
		if s.Len() != 1 {
			continue
		}
		t := &tracks[s.Start]
		t.min = max(t.min, s.bound.Min)
		if !flex {
			t.max = min(t.max, s.bound.Max)
		}
	}
	for _, s := range spans {
		if s.Len() < 2 {
			continue
		}
		var have uint32
		for t := s.Start; t < s.End; t++ {
			have += uint32(tracks[t].min)
		}
		if have >= uint32(s.bound.Min) {
			continue
		}
		spreadMin(tracks[s.Start:s.End], uint32(s.bound.Min)-have)
	}
	for i := range tracks {
		tracks[i].max = max(tracks[i].max, tracks[i].min)
		if !tracks[i].flexible && tracks[i].max == Unbounded {
			// nothing touching the track asks for room beyond its minimum
			tracks[i].max = tracks[i].min
		}
	}
	return tracks
}

// spreadMin raises the minimums of tracks by deficit in total. It is shared
// evenly, remainder to the first tracks, among the tracks still below their
// maximum, and no track is raised past it. What those tracks cannot take is
// then shared the same way among all of them.
func spreadMin(tracks []track, deficit uint32) {
	room := func(t track) uint32 {
		if t.max == Unbounded {
			return uint32(Unbounded)
		}
		if t.max <= t.min {
			return 0
		}
		return uint32(t.max - t.min)
	}
	open := make([]int, 0, len(tracks))
	for deficit > 0 {
		open = open[:0]
		for i, t := range tracks {
			if room(t) > 0 {
				open = append(open, i)
			}
		}
		if len(open) == 0 {
			break
		}
		n := uint32(len(open))
		share, rem := deficit/n, deficit%n
		for k, i := range open {
			add := share
			if uint32(k) < rem {
				add++
			}
			add = min(add, room(tracks[i]))
			tracks[i].min = satAdd(tracks[i].min, uint16(add))
			deficit -= add
		}
	}
	if deficit == 0 {
		return
	}
	n := uint32(len(tracks))
	share, rem := deficit/n, deficit%n
	for i := range tracks {
		add := share
		if uint32(i) < rem {
			add++
		}
		tracks[i].min = satAdd(tracks[i].min, uint16(add))
	}
}
