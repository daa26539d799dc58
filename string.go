// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

package jsoncur

import (
	"unicode/utf8"

	"github.com/lazyseq/jsoncur/internal/escape"
)

// A Text is a lazy cursor over the decoded content of one JSON string
// literal, between but not including the enclosing quotes. Each step yields
// one code point with all escape sequences resolved.
//
// Two consecutive \uXXXX escapes encoding a surrogate pair are not combined
// into one code point: each escape yields the value of its own four hex
// digits. When such a value is copied into an owned buffer it is encoded as
// the Unicode replacement character, since a surrogate half is not a valid
// scalar value.
type Text struct {
	r     *Reader
	cur   rune
	width int // escape width of cur: 0 literal, 1 two-character escape, 5 \uXXXX
	pos   int // input offset of the first raw unit of cur
	done  bool
	err   error
}

// newText is constructed positioned on the opening quote, which it consumes
// immediately.
func newText(r *Reader) (*Text, error) {
	r.enter()
	t := &Text{r: r}
	if err := r.src.advance(); err != nil {
		return nil, err
	}
	return t, nil
}

// Next decodes the next content code point. It returns false at the closing
// quote, which it consumes, or when an error occurs; use Err to distinguish.
func (t *Text) Next() bool {
	if t.done || t.err != nil {
		return false
	}
	src := t.r.src
	if src.empty() {
		return t.fail(eofErr(ErrBadString, src.offset(), "unterminated string"))
	}
	t.pos = src.offset()
	switch ch := src.front(); {
	case ch == '"':
		if err := src.advance(); err != nil {
			return t.fail(err)
		}
		t.done = true
		t.r.leave()
		return false

	case ch == '\\':
		if err := src.advance(); err != nil {
			return t.fail(err)
		}
		if src.empty() {
			return t.fail(eofErr(ErrBadString, src.offset(), "incomplete escape sequence"))
		}
		sel := src.front()
		if err := src.advance(); err != nil {
			return t.fail(err)
		}
		if sel == 'u' {
			v, err := t.readHex4()
			if err != nil {
				return t.fail(err)
			}
			t.cur, t.width = rune(v), 5
		} else {
			rep, ok := escape.Resolve(sel)
			if !ok {
				return t.fail(syntaxErr(ErrBadString, t.pos, "invalid %q (%d) after escape", sel, sel))
			}
			t.cur, t.width = rep, 1
		}
		return true

	case ch < ' ':
		return t.fail(syntaxErr(ErrBadString, t.pos, "unescaped control %q (%d)", ch, ch))

	default:
		if err := src.advance(); err != nil {
			return t.fail(err)
		}
		t.cur, t.width = ch, 0
		return true
	}
}

// Rune returns the current decoded code point. It is valid after a call to
// Next that returned true.
func (t *Text) Rune() rune { return t.cur }

// Width reports how many raw input units beyond a backslash were consumed
// to produce the current code point: 0 for a literal character, 1 for a
// two-character escape, 5 for a \uXXXX escape.
func (t *Text) Width() int { return t.width }

// Err returns the first error encountered while decoding, or nil.
func (t *Text) Err() error { return t.err }

func (t *Text) fail(err error) bool {
	t.err = err
	return false
}

// readHex4 consumes exactly four hexadecimal digits.
func (t *Text) readHex4() (int, error) {
	src := t.r.src
	var v int
	for i := 0; i < 4; i++ {
		if src.empty() {
			return 0, eofErr(ErrBadString, src.offset(), "incomplete Unicode escape")
		}
		d, ok := escape.HexValue(src.front())
		if !ok {
			return 0, syntaxErr(ErrBadString, src.offset(),
				"not a hex digit: %q (%d)", src.front(), src.front())
		}
		v = v<<4 | d
		if err := src.advance(); err != nil {
			return 0, err
		}
	}
	return v, nil
}

// Bytes drains t and returns its remaining content with all escapes
// resolved. If the input is held in memory and the drained region contains
// no escapes, the result is a subslice of the original input sharing its
// storage; otherwise it is an owned buffer. The escape widths tracked per
// code point bound the literal runs copied between escapes.
func (t *Text) Bytes() ([]byte, error) {
	if t.err != nil {
		return nil, t.err
	}
	if t.done {
		return nil, nil
	}
	sl, ok := t.r.src.(slicer)
	if !ok {
		var buf []byte
		for t.Next() {
			buf = utf8.AppendRune(buf, t.cur)
		}
		return buf, t.err
	}

	var buf []byte
	copied := false
	run := t.r.src.offset() // start of the pending literal run
	for t.Next() {
		if t.width == 0 {
			continue // literal character, run grows
		}
		buf = append(buf, sl.slice(run, t.pos)...)
		buf = utf8.AppendRune(buf, t.cur)
		run = t.pos + 1 + t.width // skip the escape's raw units
		copied = true
	}
	if t.err != nil {
		return nil, t.err
	}
	// After the drain t.pos is the offset of the closing quote.
	if !copied {
		return sl.slice(run, t.pos), nil
	}
	return append(buf, sl.slice(run, t.pos)...), nil
}

// Unescape drains t and returns its remaining content as an owned string
// with all escapes resolved.
func (t *Text) Unescape() (string, error) {
	b, err := t.Bytes()
	return string(b), err
}
