// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

package jsoncur

import (
	"strconv"
)

// Stages of the number-literal grammar. A stage either accepts a terminator
// (the literal may end there) or requires at least one more digit.
const (
	numStart    = iota // before any code point
	numSign            // after a leading "-": digit required
	numZero            // after a leading zero: only ".", "e"/"E", or a terminator
	numInt             // in integer digits
	numDot             // after ".": digit required
	numFrac            // in fraction digits
	numExp             // after "e"/"E": sign or digit required
	numExpSign         // after an exponent sign: digit required
	numExpDigit        // in exponent digits
)

// A Number is a lazy cursor over the code points of one JSON number
// literal, validated incrementally against the grammar. The literal ends at
// the first code point that is not part of it; that terminator is peeked
// but never consumed, so it remains visible to the parent cursor.
type Number struct {
	r     *Reader
	stage int
	span  []byte // the literal consumed so far (digits, sign, ".", "e"/"E")
	cur   rune
	done  bool
	err   error
}

func newNumber(r *Reader) *Number {
	r.enter()
	return &Number{r: r, stage: numStart}
}

// Next consumes the next code point of the literal. It returns false when
// the literal has ended or the grammar is violated; use Err to distinguish.
func (n *Number) Next() bool {
	if n.done || n.err != nil {
		return false
	}
	src := n.r.src
	if src.empty() {
		n.finish(0, true)
		return false
	}
	ch := src.front()
	next, ok := numStep(n.stage, ch)
	if !ok {
		if n.stage == numZero && isDigit(ch) {
			n.err = syntaxErr(ErrBadNumber, src.offset(), "extra leading zeroes")
			return false
		}
		n.finish(ch, false)
		return false
	}
	if err := src.advance(); err != nil {
		n.err = err
		return false
	}
	n.cur = ch
	n.stage = next
	n.span = append(n.span, byte(ch))
	return true
}

// Rune returns the current code point of the literal. It is valid after a
// call to Next that returned true.
func (n *Number) Rune() rune { return n.cur }

// Span returns the text of the literal consumed so far. After the cursor is
// drained it is the complete literal.
func (n *Number) Span() []byte { return n.span }

// Err returns the first error encountered, or nil.
func (n *Number) Err() error { return n.err }

// Float64 drains the cursor and parses its span as an IEEE double. Integer
// and fractional literals are not distinguished; precision and overflow
// follow strconv.ParseFloat.
func (n *Number) Float64() (float64, error) {
	for n.Next() {
	}
	if n.err != nil {
		return 0, n.err
	}
	v, err := strconv.ParseFloat(string(n.span), 64)
	if err != nil {
		return 0, syntaxErr(ErrBadNumber, n.r.src.offset(), "parsing %q: %v", n.span, err)
	}
	return v, nil
}

// finish ends the literal at a terminator (or end of input). Ending in a
// stage that still requires a digit is a grammar violation.
func (n *Number) finish(ch rune, atEOF bool) {
	off := n.r.src.offset()
	switch n.stage {
	case numZero, numInt, numFrac, numExpDigit:
		n.done = true
		n.r.leave()
	case numStart, numSign:
		if atEOF {
			n.err = eofErr(ErrBadNumber, off, "want digit")
		} else {
			n.err = syntaxErr(ErrBadNumber, off, "got %q (%d), want digit", ch, ch)
		}
	case numDot:
		if atEOF {
			n.err = eofErr(ErrBadNumber, off, "no digits after decimal point")
		} else {
			n.err = syntaxErr(ErrBadNumber, off, "no digits after decimal point (got %q)", ch)
		}
	case numExp:
		if atEOF {
			n.err = eofErr(ErrBadNumber, off, "want sign or digit")
		} else {
			n.err = syntaxErr(ErrBadNumber, off, "got %q (%d), want sign or digit", ch, ch)
		}
	case numExpSign:
		if atEOF {
			n.err = eofErr(ErrBadNumber, off, "missing exponent digits")
		} else {
			n.err = syntaxErr(ErrBadNumber, off, "missing exponent digits (got %q)", ch)
		}
	}
}

// numStep reports the stage reached by consuming ch in the given stage, or
// false if ch is not part of the literal there. A digit after a leading
// zero is reported by Next as a grammar violation, not a terminator.
func numStep(stage int, ch rune) (int, bool) {
	switch stage {
	case numStart:
		switch {
		case ch == '-':
			return numSign, true
		case ch == '0':
			return numZero, true
		case isDigit(ch):
			return numInt, true
		}
	case numSign:
		switch {
		case ch == '0':
			return numZero, true
		case isDigit(ch):
			return numInt, true
		}
	case numZero:
		switch {
		case ch == '.':
			return numDot, true
		case ch == 'e' || ch == 'E':
			return numExp, true
		}
	case numInt:
		switch {
		case isDigit(ch):
			return numInt, true
		case ch == '.':
			return numDot, true
		case ch == 'e' || ch == 'E':
			return numExp, true
		}
	case numDot:
		if isDigit(ch) {
			return numFrac, true
		}
	case numFrac:
		switch {
		case isDigit(ch):
			return numFrac, true
		case ch == 'e' || ch == 'E':
			return numExp, true
		}
	case numExp:
		switch {
		case ch == '+' || ch == '-':
			return numExpSign, true
		case isDigit(ch):
			return numExpDigit, true
		}
	case numExpSign:
		if isDigit(ch) {
			return numExpDigit, true
		}
	case numExpDigit:
		if isDigit(ch) {
			return numExpDigit, true
		}
	}
	return 0, false
}
