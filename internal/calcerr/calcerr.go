package calcerr

import (
	"errors"
	"fmt"
)

// Kind classifies a calculation failure
type Kind int

const (
	InvalidGeometry Kind = iota + 1
	InvalidWindScale
	InvalidLashingGeometry
	EmptyLashingSet
	NonTerminatingSearch
	RemedyUnreachable
	UnmappedOrientation
)

var kindNames = map[Kind]string{
	InvalidGeometry:        "invalid geometry",
	InvalidWindScale:       "invalid wind scale",
	InvalidLashingGeometry: "invalid lashing geometry",
	EmptyLashingSet:        "empty lashing set",
	NonTerminatingSearch:   "non-terminating search",
	RemedyUnreachable:      "remedy unreachable",
	UnmappedOrientation:    "unmapped orientation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Sentinels for errors.Is. Any *Error with the same Kind matches.
var (
	ErrInvalidGeometry        = &Error{Kind: InvalidGeometry}
	ErrInvalidWindScale       = &Error{Kind: InvalidWindScale}
	ErrInvalidLashingGeometry = &Error{Kind: InvalidLashingGeometry}
	ErrEmptyLashingSet        = &Error{Kind: EmptyLashingSet}
	ErrNonTerminatingSearch   = &Error{Kind: NonTerminatingSearch}
	ErrRemedyUnreachable      = &Error{Kind: RemedyUnreachable}
	ErrUnmappedOrientation    = &Error{Kind: UnmappedOrientation}
)

// Error is a classified calculation error
type Error struct {
	Kind Kind
	msg  string
}

// New creates an error of the given kind
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.msg
}

// Is reports whether target is a calculation error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of err, or 0 if err is not a calculation error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
