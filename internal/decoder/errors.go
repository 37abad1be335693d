package decoder

import "fmt"

// Kind classifies structural errors.
type Kind uint8

const (
	// KindMissingEnd: input ended while elements were still open, or
	// before any element was opened.
	KindMissingEnd Kind = iota + 1
	// KindExtraEnd: an end row after the root element already closed.
	KindExtraEnd
	// KindBadRoot: an end row or attribute row with no open element.
	KindBadRoot
	// KindNullTitle: an element row whose only cell is null.
	KindNullTitle
	// KindNullAttribute: an attribute row whose name cell is null.
	KindNullAttribute
	// KindTooManyRoots: a non-empty row after the root element closed.
	KindTooManyRoots
	// KindLimitExceeded: a configured limit was exceeded.
	KindLimitExceeded
)

func (k Kind) String() string {
	switch k {
	case KindMissingEnd:
		return "missing end"
	case KindExtraEnd:
		return "extra end"
	case KindBadRoot:
		return "no open element"
	case KindNullTitle:
		return "null element title"
	case KindNullAttribute:
		return "null attribute name"
	case KindTooManyRoots:
		return "more than one root element"
	case KindLimitExceeded:
		return "limit exceeded"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// StructuralError reports a row that violates the element structure.
// Errors compare equal under errors.Is when their kinds match.
type StructuralError struct {
	Kind Kind
	Err  error // optional underlying cause, e.g. *ast.LimitError
}

func (e *StructuralError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *StructuralError) Unwrap() error { return e.Err }

// Is matches any *StructuralError of the same kind.
func (e *StructuralError) Is(target error) bool {
	t, ok := target.(*StructuralError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrMissingEnd    = &StructuralError{Kind: KindMissingEnd}
	ErrExtraEnd      = &StructuralError{Kind: KindExtraEnd}
	ErrBadRoot       = &StructuralError{Kind: KindBadRoot}
	ErrNullTitle     = &StructuralError{Kind: KindNullTitle}
	ErrNullAttribute = &StructuralError{Kind: KindNullAttribute}
	ErrTooManyRoots  = &StructuralError{Kind: KindTooManyRoots}
	ErrLimitExceeded = &StructuralError{Kind: KindLimitExceeded}
)
