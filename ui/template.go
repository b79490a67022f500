package ui

import (
	"fmt"
	"strings"
)

// Filler is the template label for an empty cell.
const Filler = "."

// Extent is a half-open range of tracks.
type Extent struct {
	Start, End int
}

// Len returns the number of tracks in the range.
func (e Extent) Len() int { return e.End - e.Start }

// Span is the rectangle of template cells one label occupies.
type Span struct {
	Label string
	Cols  Extent
	Rows  Extent
}

// Template is a validated grid of labels. It is immutable once parsed.
type Template struct {
	cols, rows int
	spans      []Span
}

// ParseTemplate parses one string per template row. Labels are separated by
// whitespace and a row may be wrapped in brackets:
//
//	ParseTemplate(
//		"[a a . b]",
//		"[. c c b]",
//	)
func ParseTemplate(rows ...string) (*Template, error) {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		r = strings.TrimSpace(r)
		r = strings.TrimPrefix(r, "[")
		r = strings.TrimSuffix(r, "]")
		cells = append(cells, strings.Fields(r))
	}
	return NewTemplate(cells)
}

// NewTemplate validates a matrix of labels.
func NewTemplate(cells [][]string) (*Template, error) {
	const op Op = "ui.NewTemplate"
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, E(op, KindTemplate, ErrEmptyTemplate)
	}
	cols := len(cells[0])
	for i, row := range cells {
		if len(row) != cols {
			return nil, E(op, KindTemplate, ErrRaggedRows,
				fmt.Sprintf("row %d has %d cells, want %d", i+1, len(row), cols))
		}
	}

	// bounding rectangle of every label, in first-occurrence order
	var spans []Span
	index := make(map[string]int)
	for r, row := range cells {
		for c, lbl := range row {
			if lbl == Filler {
				continue
			}
			i, ok := index[lbl]
			if !ok {
				index[lbl] = len(spans)
				spans = append(spans, Span{
					Label: lbl,
					Cols:  Extent{Start: c, End: c + 1},
					Rows:  Extent{Start: r, End: r + 1},
				})
				continue
			}
			s := &spans[i]
			s.Cols.Start = min(s.Cols.Start, c)
			s.Cols.End = max(s.Cols.End, c+1)
			s.Rows.End = max(s.Rows.End, r+1)
		}
	}

	for _, s := range spans {
		for r := s.Rows.Start; r < s.Rows.End; r++ {
			for c := s.Cols.Start; c < s.Cols.End; c++ {
				if cells[r][c] != s.Label {
					return nil, E(op, KindTemplate, ErrLabelSpan,
						fmt.Sprintf("label %q at row %d", s.Label, r+1))
				}
			}
		}
	}
	return &Template{cols: cols, rows: len(cells), spans: spans}, nil
}

// Columns returns the number of template columns.
func (t *Template) Columns() int { return t.cols }

// Rows returns the number of template rows.
func (t *Template) Rows() int { return t.rows }

// Spans returns the label rectangles in first-occurrence order.
func (t *Template) Spans() []Span {
	return append([]Span(nil), t.spans...)
}

// Bind resolves every label to a widget.
func (t *Template) Bind(widgets map[string]Widget) (*Grid, error) {
	const op Op = "ui.Template.Bind"
	g := &Grid{tmpl: t, widgets: make([]Widget, len(t.spans))}
	for i, s := range t.spans {
		w, ok := widgets[s.Label]
		if !ok || w == nil {
			return nil, E(op, KindTemplate, ErrUnmappedLabel, fmt.Sprintf("label %q", s.Label))
		}
		g.widgets[i] = w
	}
	return g, nil
}

// NewGrid parses rows and binds the labels to widgets in one go.
func NewGrid(widgets map[string]Widget, rows ...string) (*Grid, error) {
	t, err := ParseTemplate(rows...)
	if err != nil {
		return nil, err
	}
	return t.Bind(widgets)
}
