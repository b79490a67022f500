package ui

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindTemplate
	KindIO
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindTemplate:
		return "template error"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	default:
		return "unknown error"
	}
}

var (
	ErrEmptyTemplate = errors.New("empty template")
	ErrRaggedRows    = errors.New("template rows differ in length")
	ErrLabelSpan     = errors.New("label does not span a rectangle")
	ErrUnmappedLabel = errors.New("label has no widget")
	ErrClosed        = errors.New("screen closed")
	ErrInvalidFill   = errors.New("fill glyph must be one cell wide")
	ErrUnknownKey    = errors.New("unknown key name")
)

// Error is the structured error type of the toolkit.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Err, e.Context)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// E creates a new Error. Arguments can be an Op, a Kind, a context string
// or the underlying error.
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
