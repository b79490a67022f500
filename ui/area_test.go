package ui

import (
	"math"
	"testing"
)

func TestEdge(t *testing.T) {
	if !EdgeAll.Has(EdgeTopLeft) {
		t.Error("EdgeAll should have EdgeTopLeft")
	}
	if EdgeTop.Has(EdgeTopLeft) {
		t.Error("EdgeTop should not have EdgeTopLeft")
	}
	tests := []struct {
		edge Edge
		want uint16
	}{
		{EdgeNone, 0},
		{EdgeLeft, 1},
		{EdgeTopBottom, 2},
		{EdgeBottomRight | EdgeTop, 3},
		{EdgeAll, 4},
	}
	for _, tt := range tests {
		if got := tt.edge.Count(); got != tt.want {
			t.Errorf("Edge(%04b).Count() = %d, want %d", tt.edge, got, tt.want)
		}
	}
}

func TestArea_Split(t *testing.T) {
	a := NewArea(2, 3, 10, 6)
	tests := []struct {
		name      string
		edge      Edge
		cells     uint16
		near, far Area
	}{
		{"left", EdgeLeft, 4, NewArea(2, 3, 4, 6), NewArea(6, 3, 6, 6)},
		{"right", EdgeRight, 4, NewArea(8, 3, 4, 6), NewArea(2, 3, 6, 6)},
		{"top", EdgeTop, 2, NewArea(2, 3, 10, 2), NewArea(2, 5, 10, 4)},
		{"bottom", EdgeBottom, 2, NewArea(2, 7, 10, 2), NewArea(2, 3, 10, 4)},
		{"left too wide", EdgeLeft, 20, a, NewArea(12, 3, 0, 6)},
		{"bottom too tall", EdgeBottom, 20, a, NewArea(2, 3, 10, 0)},
		{"left right halves", EdgeLeftRight, 0, NewArea(2, 3, 5, 6), NewArea(7, 3, 5, 6)},
		{"top bottom halves", EdgeTopBottom, 0, NewArea(2, 3, 10, 3), NewArea(2, 6, 10, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			near, far := a.Split(tt.edge, tt.cells)
			if near != tt.near || far != tt.far {
				t.Errorf("Split() = %v, %v; want %v, %v", near, far, tt.near, tt.far)
			}
			if near.Width+far.Width != a.Width && near.Height+far.Height != a.Height {
				t.Errorf("Split() parts do not cover the area")
			}
		})
	}
}

func TestArea_SplitOdd(t *testing.T) {
	left, right := NewArea(0, 0, 7, 1).Split(EdgeLeftRight, 0)
	if left.Width != 3 || right.Width != 4 || right.Col != 3 {
		t.Errorf("Split(EdgeLeftRight) = %v, %v", left, right)
	}
}

func TestArea_SplitInvalid(t *testing.T) {
	for _, e := range []Edge{EdgeNone, EdgeTopLeft, EdgeAll, EdgeTop | EdgeLeftRight} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Split(%04b) should panic", e)
				}
			}()
			NewArea(0, 0, 4, 4).Split(e, 1)
		}()
	}
}

func TestArea_Trim(t *testing.T) {
	a := NewArea(1, 1, 10, 5)
	tests := []struct {
		name  string
		edge  Edge
		cells uint16
		want  Area
	}{
		{"none", EdgeNone, 3, a},
		{"left", EdgeLeft, 2, NewArea(3, 1, 8, 5)},
		{"right", EdgeRight, 2, NewArea(1, 1, 8, 5)},
		{"top bottom", EdgeTopBottom, 1, NewArea(1, 2, 10, 3)},
		{"all", EdgeAll, 1, NewArea(2, 2, 8, 3)},
		{"too much", EdgeAll, 4, NewArea(5, 5, 2, 0)},
		{"far too much", EdgeAll, 100, NewArea(11, 6, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Trim(tt.edge, tt.cells); got != tt.want {
				t.Errorf("Trim() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArea_Inset(t *testing.T) {
	a := NewArea(0, 0, 6, 4)
	if got := a.Inset(nil); got != a {
		t.Errorf("Inset(nil) = %v, want %v", got, a)
	}
	b := &Border{Edges: EdgeTopLeft}
	if got, want := a.Inset(b), NewArea(1, 1, 5, 3); got != want {
		t.Errorf("Inset() = %v, want %v", got, want)
	}
}

func TestArea_Clip(t *testing.T) {
	tests := []struct {
		name string
		a, b Area
		want Area
	}{
		{"inside", NewArea(0, 0, 10, 10), NewArea(2, 2, 3, 3), NewArea(2, 2, 3, 3)},
		{"overlap", NewArea(0, 0, 5, 5), NewArea(3, 3, 5, 5), NewArea(3, 3, 2, 2)},
		{"disjoint", NewArea(0, 0, 2, 2), NewArea(5, 5, 2, 2), NewArea(5, 5, 0, 0)},
		{"at the end of the range", NewArea(0, 0, 10, 10), NewArea(math.MaxUint16-1, 0, 5, 5), NewArea(math.MaxUint16-1, 0, 0, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Clip(tt.b)
			if got.Dim != tt.want.Dim {
				t.Errorf("Clip() = %v, want %v", got, tt.want)
			}
			if !got.IsEmpty() && got != tt.want {
				t.Errorf("Clip() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestArea_Within(t *testing.T) {
	a := NewArea(4, 2, 3, 2)
	tests := []struct {
		p      Pos
		want   Pos
		inside bool
	}{
		{Pos{4, 2}, Pos{0, 0}, true},
		{Pos{6, 3}, Pos{2, 1}, true},
		{Pos{7, 3}, Pos{}, false},
		{Pos{6, 4}, Pos{}, false},
		{Pos{3, 2}, Pos{}, false},
	}
	for _, tt := range tests {
		got, ok := a.Within(tt.p)
		if ok != tt.inside || got != tt.want {
			t.Errorf("Within(%v) = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.inside)
		}
		if a.Contains(tt.p) != tt.inside {
			t.Errorf("Contains(%v) = %v", tt.p, !tt.inside)
		}
	}
	if _, ok := NewArea(0, 0, 0, 5).Within(Pos{0, 0}); ok {
		t.Error("an empty area contains nothing")
	}
}

func TestSatAdd(t *testing.T) {
	if got := satAdd(math.MaxUint16-1, 5); got != math.MaxUint16 {
		t.Errorf("satAdd overflow = %d", got)
	}
	if got := NewArea(math.MaxUint16-2, 0, 10, 1).End(); got != math.MaxUint16 {
		t.Errorf("End() = %d, want saturation", got)
	}
}
