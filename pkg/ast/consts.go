package ast

const (
	// NullSentinel is the WSV spelling of a null cell.
	NullSentinel = "-"

	// EndKeyword closes the innermost open element. Matched case-insensitively.
	EndKeyword = "End"

	// ============================================================================
	// Limits
	// ============================================================================

	// DefaultMaxDepth allows nesting far beyond anything written by hand.
	DefaultMaxDepth = 512

	// DefaultMaxChildren bounds the children of a single element.
	DefaultMaxChildren = 1 << 16

	// DefaultMaxValues bounds the values of a single attribute.
	DefaultMaxValues = 1 << 16

	// DefaultMaxNameLen bounds titles and attribute names, in characters.
	DefaultMaxNameLen = 1 << 12

	// RelaxedMaxDepth is used for deeply nested generated documents.
	RelaxedMaxDepth = 1 << 14

	// RelaxedMaxChildren is used for very wide generated documents.
	RelaxedMaxChildren = 1 << 24

	// RelaxedMaxValues is used for attributes carrying bulk data.
	RelaxedMaxValues = 1 << 24

	// StrictMaxDepth is a conservative nesting bound for untrusted input.
	StrictMaxDepth = 64

	// StrictMaxChildren is a conservative width bound for untrusted input.
	StrictMaxChildren = 4096

	// StrictMaxValues is a conservative attribute length for untrusted input.
	StrictMaxValues = 1024

	// StrictMaxNameLen is a conservative name length for untrusted input.
	StrictMaxNameLen = 255
)
