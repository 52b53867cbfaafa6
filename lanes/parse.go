package lanes

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Parsing errors. All failures wrap one of these sentinels; the Parser
// keeps the first failure as a sticky, recoverable flag and never yields a
// partial vector.
var (
	// ErrSyntax marks a non-numeric lane token.
	ErrSyntax = errors.New("lanes: malformed vector text")

	// ErrLaneCount marks input ending before the shape's lane count was read.
	ErrLaneCount = errors.New("lanes: wrong lane count")

	// ErrBracket marks a missing or mismatched closing bracket.
	ErrBracket = errors.New("lanes: mismatched bracket")
)

// ParseOptions controls lane-token interpretation. Base is the numeric
// base for integer kinds (0 means decimal); float and complex tokens are
// always parsed in Go's literal syntax.
type ParseOptions struct {
	Base int
}

// Parser reads vectors from a rune stream. The grammar accepts an
// optional enclosing bracket pair from {none, "[...]", "(...)"} and lane
// separators from {whitespace run, ",", ";"}, each optionally followed by
// extra whitespace. On success the stream is positioned immediately after
// the closing bracket, or after the last lane token when unbracketed.
//
// A failed parse sets a sticky error, leaves the result untouched, and
// makes every subsequent call a no-op until ClearErr; this mirrors a
// stream fail flag, so callers inspect Err and decide whether to retry,
// skip, or abort.
type Parser struct {
	r   io.RuneScanner
	err error
}

// NewParser returns a Parser reading from r.
func NewParser(r io.RuneScanner) *Parser {
	return &Parser{r: r}
}

// Err returns the sticky parse error, or nil.
func (p *Parser) Err() error { return p.err }

// ClearErr resets the sticky error so the caller can retry or skip.
func (p *Parser) ClearErr() { p.err = nil }

func (p *Parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// readRune returns the next rune, or ok == false at end of input.
func (p *Parser) readRune() (rune, bool) {
	r, _, err := p.r.ReadRune()
	if err != nil {
		return 0, false
	}
	return r, true
}

// skipSpace consumes a whitespace run, leaving the stream at the first
// non-space rune.
func (p *Parser) skipSpace() {
	for {
		r, ok := p.readRune()
		if !ok {
			return
		}
		if !unicode.IsSpace(r) {
			p.r.UnreadRune()
			return
		}
	}
}

// readToken collects one lane token: runes up to a separator, closing
// bracket, whitespace, or end of input. Complex tokens may be
// parenthesized ("(1+2i)"), so a token opening with '(' runs through the
// matching ')'.
func (p *Parser) readToken() string {
	var sb strings.Builder
	first, ok := p.readRune()
	if !ok {
		return ""
	}
	if first == '(' {
		sb.WriteRune(first)
		for {
			r, ok := p.readRune()
			if !ok {
				return sb.String()
			}
			sb.WriteRune(r)
			if r == ')' {
				return sb.String()
			}
		}
	}
	p.r.UnreadRune()
	for {
		r, ok := p.readRune()
		if !ok {
			return sb.String()
		}
		if unicode.IsSpace(r) || r == ',' || r == ';' || r == ')' || r == ']' {
			p.r.UnreadRune()
			return sb.String()
		}
		sb.WriteRune(r)
	}
}

// ParseVec reads one vector of shape d from the parser's stream. On any
// deviation from the grammar it sets the parser's sticky error and
// returns the zero Vec.
func ParseVec[T Lanes](p *Parser, d Desc, o ParseOptions) Vec[T] {
	if p.err != nil {
		return Vec[T]{}
	}
	base := o.Base
	if base == 0 {
		base = 10
	}

	p.skipSpace()
	var closing rune
	if r, ok := p.readRune(); ok {
		switch r {
		case '[':
			closing = ']'
		case '(':
			// A leading '(' is ambiguous for complex kinds, where the lane
			// token itself may be parenthesized. A complex vector in the
			// canonical convention is always bracketed, so treat '(' as the
			// vector bracket here as well.
			closing = ')'
		default:
			p.r.UnreadRune()
		}
	}

	data := make([]T, d.Lanes)
	for i := 0; i < d.Lanes; i++ {
		p.skipSpace()
		if i > 0 {
			// One ',' or ';' separator; a bare whitespace run also counts.
			if r, ok := p.readRune(); ok {
				if r != ',' && r != ';' {
					p.r.UnreadRune()
				}
			}
			p.skipSpace()
		}
		// A closing bracket or end of input here means too few tokens.
		if r, ok := p.readRune(); !ok {
			p.fail(fmt.Errorf("%w: got %d of %d lanes", ErrLaneCount, i, d.Lanes))
			return Vec[T]{}
		} else if r == ')' || r == ']' {
			p.fail(fmt.Errorf("%w: got %d of %d lanes", ErrLaneCount, i, d.Lanes))
			return Vec[T]{}
		} else {
			p.r.UnreadRune()
		}
		tok := p.readToken()
		x, err := parseLane[T](tok, base)
		if err != nil {
			p.fail(fmt.Errorf("%w: lane %d token %q", ErrSyntax, i, tok))
			return Vec[T]{}
		}
		data[i] = x
	}

	if closing != 0 {
		p.skipSpace()
		r, ok := p.readRune()
		if !ok || r != closing {
			if ok {
				p.r.UnreadRune()
			}
			p.fail(fmt.Errorf("%w: expected %q", ErrBracket, closing))
			return Vec[T]{}
		}
	}

	out := allocLanes[T](d.Lanes)
	copy(out, data)
	return Vec[T]{data: out}
}

// Parse reads one vector of shape d from a string and reports the
// remainder-independent result. It is a convenience wrapper over Parser.
func Parse[T Lanes](d Desc, s string, o ParseOptions) (Vec[T], error) {
	p := NewParser(strings.NewReader(s))
	v := ParseVec[T](p, d, o)
	if p.err != nil {
		return Vec[T]{}, p.err
	}
	return v, nil
}

// parseLane interprets one token as a lane value of T's kind. Integer
// kinds honor base; float and complex kinds use strconv literal syntax.
func parseLane[T Lanes](tok string, base int) (T, error) {
	var zero T
	if tok == "" {
		return zero, ErrSyntax
	}
	switch any(zero).(type) {
	case int8:
		v, err := strconv.ParseInt(tok, base, 8)
		return any(int8(v)).(T), err
	case int16:
		v, err := strconv.ParseInt(tok, base, 16)
		return any(int16(v)).(T), err
	case int32:
		v, err := strconv.ParseInt(tok, base, 32)
		return any(int32(v)).(T), err
	case int64:
		v, err := strconv.ParseInt(tok, base, 64)
		return any(v).(T), err
	case uint8:
		v, err := strconv.ParseUint(tok, base, 8)
		return any(uint8(v)).(T), err
	case uint16:
		v, err := strconv.ParseUint(tok, base, 16)
		return any(uint16(v)).(T), err
	case uint32:
		v, err := strconv.ParseUint(tok, base, 32)
		return any(uint32(v)).(T), err
	case uint64:
		v, err := strconv.ParseUint(tok, base, 64)
		return any(v).(T), err
	case float32:
		v, err := strconv.ParseFloat(tok, 32)
		return any(float32(v)).(T), err
	case float64:
		v, err := strconv.ParseFloat(tok, 64)
		return any(v).(T), err
	case complex64:
		v, err := strconv.ParseComplex(tok, 64)
		return any(complex64(v)).(T), err
	default:
		v, err := strconv.ParseComplex(tok, 128)
		return any(v).(T), err
	}
}
