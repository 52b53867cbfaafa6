package lanes

import "strconv"

// Bracket selects the enclosing pair for the textual vector form.
type Bracket int

const (
	// BracketParen encloses the lanes in "(...)" (the canonical form).
	BracketParen Bracket = iota

	// BracketSquare encloses the lanes in "[...]".
	BracketSquare

	// BracketNone emits the lanes bare.
	BracketNone
)

// FormatOptions controls the textual rendering of a vector: the bracket
// pair, the lane separator, and the numeric base for integer kinds.
// Float and complex lanes always render in Go's shortest decimal form;
// the base applies to integer kinds only.
type FormatOptions struct {
	Bracket Bracket
	Sep     string
	Base    int
}

// DefaultFormat is the canonical convention: "(" lanes ")" separated by
// ";" in decimal, e.g. "(1;2;3;4)".
func DefaultFormat() FormatOptions {
	return FormatOptions{Bracket: BracketParen, Sep: ";", Base: 10}
}

// Format renders the vector as text under the given options. Narrow
// integer kinds are promoted to a printable integer width, so single-byte
// lanes render as numbers, never as characters.
func Format[T Lanes](v Vec[T], o FormatOptions) string {
	return string(AppendFormat(nil, v, o))
}

// AppendFormat appends the textual form of v to dst and returns the
// extended buffer.
func AppendFormat[T Lanes](dst []byte, v Vec[T], o FormatOptions) []byte {
	base := o.Base
	if base == 0 {
		base = 10
	}
	switch o.Bracket {
	case BracketParen:
		dst = append(dst, '(')
	case BracketSquare:
		dst = append(dst, '[')
	}
	for i, x := range v.data {
		if i > 0 {
			dst = append(dst, o.Sep...)
		}
		dst = appendLane(dst, x, base)
	}
	switch o.Bracket {
	case BracketParen:
		dst = append(dst, ')')
	case BracketSquare:
		dst = append(dst, ']')
	}
	return dst
}

func appendLane[T Lanes](dst []byte, x T, base int) []byte {
	switch v := any(x).(type) {
	case int8:
		return strconv.AppendInt(dst, int64(v), base)
	case int16:
		return strconv.AppendInt(dst, int64(v), base)
	case int32:
		return strconv.AppendInt(dst, int64(v), base)
	case int64:
		return strconv.AppendInt(dst, v, base)
	case uint8:
		return strconv.AppendUint(dst, uint64(v), base)
	case uint16:
		return strconv.AppendUint(dst, uint64(v), base)
	case uint32:
		return strconv.AppendUint(dst, uint64(v), base)
	case uint64:
		return strconv.AppendUint(dst, v, base)
	case float32:
		return strconv.AppendFloat(dst, float64(v), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, v, 'g', -1, 64)
	case complex64:
		return append(dst, strconv.FormatComplex(complex128(v), 'g', -1, 64)...)
	case complex128:
		return append(dst, strconv.FormatComplex(v, 'g', -1, 128)...)
	default:
		return dst
	}
}
