package crypto

import (
	"math/bits"

	"github.com/pkg/errors"
)

const (
	hyphen    = '-'
	backslash = '\\'
	caret     = '^'
)

// charsetBits is a bit set over the low 128 byte values, one bit per
// possible charset member.
type charsetBits [2]uint64

// typeable marks the 95 printable, non-control ASCII characters
// (0x20-0x7E). Charset specifications may only reference these.
var typeable = charsetBits{0xffff_ffff_0000_0000, 0x7fff_ffff_ffff_ffff}

func (b *charsetBits) set(c byte) {
	b[c/64] |= 1 << (c % 64)
}

// setRange marks the open-ended interval (start, end]. The start byte is
// already marked by the time a range is recognized, so this covers the
// whole inclusive range without re-marking it. A range whose end sorts
// below its start marks nothing.
func (b *charsetBits) setRange(start, end byte) {
	for c := start + 1; c <= end && c < 128; c++ {
		b.set(c)
	}
}

func (b *charsetBits) has(c byte) bool {
	return c < 128 && b[c/64]&(1<<(c%64)) != 0
}

func (b *charsetBits) empty() bool {
	return b[0] == 0 && b[1] == 0
}

// invert complements the set within the typeable universe.
func (b *charsetBits) invert() {
	b[0] = typeable[0] &^ b[0]
	b[1] = typeable[1] &^ b[1]
}

// bytes flattens the set into an ascending, deduplicated byte sequence.
func (b *charsetBits) bytes() []byte {
	out := make([]byte, 0, bits.OnesCount64(b[0])+bits.OnesCount64(b[1]))
	for c := byte(0); c < 128; c++ {
		if b.has(c) {
			out = append(out, c)
		}
	}
	return out
}

var (
	ErrEmptyCharsetSpec    = errors.New("empty charset specification")
	ErrUntypeableCharacter = errors.New("found untypeable or non-ASCII character")
	ErrUnescapedHyphen     = errors.New("hyphens must be escaped")
	ErrUnterminatedEscape  = errors.New("unterminated escape sequence")
	ErrUnterminatedRange   = errors.New("unterminated character range")
	ErrEmptyCharset        = errors.New("character set is empty")
)

func errInvalidEscape(c byte) error {
	return errors.Errorf("invalid escape sequence: \"\\%c\"", c)
}

// parserState enumerates the cursor states of the charset specification
// parser. charPrev and rangeStart payloads travel alongside in
// ParseCharsetSpec.
type parserState int

const (
	stateStart parserState = iota
	stateChar
	stateEscape
	stateRange
	stateRangeEscape
)

// TypeableCharset returns the full typeable set as an ascending byte
// sequence, the default alphabet when no specification is given.
func TypeableCharset() []byte {
	return typeable.bytes()
}

// ParseCharsetSpec compiles a charset specification into an ascending,
// deduplicated sequence of allowed bytes.
//
// The specification language is a subset of the character set language for
// regular expressions: single characters, ranges written a-b, and the
// escapes \- and \\. A leading caret inverts the set with respect to
// typeable ASCII. Any untypeable byte, malformed escape, or unterminated
// construct aborts compilation.
func ParseCharsetSpec(spec string) ([]byte, error) {
	if spec == "" {
		return nil, ErrEmptyCharsetSpec
	}

	raw := []byte(spec)
	invert := raw[0] == caret
	if invert {
		raw = raw[1:]
	}

	var result charsetBits
	state := stateStart
	var prev byte // range start while in stateRange/stateRangeEscape

	for _, c := range raw {
		if !typeable.has(c) {
			return nil, ErrUntypeableCharacter
		}

		switch state {
		case stateStart:
			switch c {
			case hyphen:
				return nil, ErrUnescapedHyphen
			case backslash:
				state = stateEscape
			default:
				result.set(c)
				prev = c
				state = stateChar
			}

		case stateChar:
			switch c {
			case hyphen:
				state = stateRange
			case backslash:
				state = stateEscape
			default:
				result.set(c)
				prev = c
			}

		case stateEscape:
			if c != hyphen && c != backslash {
				return nil, errInvalidEscape(c)
			}
			result.set(c)
			prev = c
			state = stateChar

		case stateRange:
			switch c {
			case hyphen:
				return nil, ErrUnescapedHyphen
			case backslash:
				state = stateRangeEscape
			default:
				result.setRange(prev, c)
				state = stateStart
			}

		case stateRangeEscape:
			if c != hyphen && c != backslash {
				return nil, errInvalidEscape(c)
			}
			result.setRange(prev, c)
			state = stateStart
		}
	}

	switch state {
	case stateEscape, stateRangeEscape:
		return nil, ErrUnterminatedEscape
	case stateRange:
		return nil, ErrUnterminatedRange
	}

	if invert {
		result.invert()
	}
	if result.empty() {
		return nil, ErrEmptyCharset
	}
	return result.bytes(), nil
}
