// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

package jsoncur

import (
	"github.com/lazyseq/jsoncur/ast"
)

// Kind classifies the JSON value under a cursor.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindInvalid Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

var kindStr = [...]string{
	KindInvalid: "invalid",
	KindObject:  "object",
	KindArray:   "array",
	KindString:  "string",
	KindNumber:  "number",
	KindBool:    "boolean",
	KindNull:    "null",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return kindStr[KindInvalid]
	}
	return kindStr[int(k)]
}

// A Cursor is a single-pass view of one as-yet-unconsumed JSON value. Its
// kind is fixed at creation by peeking at the first significant code point.
// The value is consumed either by narrowing into a typed sub-cursor and
// draining it, or by calling Whole. A cursor may be consumed at most once;
// consuming it again panics.
type Cursor struct {
	r    *Reader
	kind Kind
	used bool
}

// newCursor classifies the value at the current position. The caller must
// already have skipped any leading whitespace.
func newCursor(r *Reader) (*Cursor, error) {
	if r.src.empty() {
		return nil, eofErr(ErrBadSyntax, r.src.offset(), "end of input, want a value")
	}
	var kind Kind
	switch ch := r.src.front(); {
	case ch == '{':
		kind = KindObject
	case ch == '[':
		kind = KindArray
	case ch == '"':
		kind = KindString
	case ch == '-' || isDigit(ch):
		kind = KindNumber
	case ch == 't' || ch == 'f':
		kind = KindBool
	case ch == 'n':
		kind = KindNull
	default:
		return nil, syntaxErr(ErrBadSyntax, r.src.offset(), "unexpected %q (%d), want a value", ch, ch)
	}
	return &Cursor{r: r, kind: kind}, nil
}

// Kind reports the kind of the value under c.
func (c *Cursor) Kind() Kind { return c.kind }

func (c *Cursor) narrow(want Kind) error {
	if c.kind != want {
		return syntaxErr(ErrWrongKind, c.r.src.offset(), "value is %v, not %v", c.kind, want)
	}
	c.consume()
	return nil
}

func (c *Cursor) consume() {
	if c.used {
		usage("cursor already consumed")
	}
	c.used = true
}

// Text narrows c into a cursor over the code points of its string value.
// It reports ErrWrongKind if c is not a string.
func (c *Cursor) Text() (*Text, error) {
	if err := c.narrow(KindString); err != nil {
		return nil, err
	}
	return newText(c.r)
}

// Number narrows c into a cursor over the code points of its number
// literal. It reports ErrWrongKind if c is not a number.
func (c *Cursor) Number() (*Number, error) {
	if err := c.narrow(KindNumber); err != nil {
		return nil, err
	}
	return newNumber(c.r), nil
}

// Members narrows c into an iterator over the members of its object,
// consuming the opening brace. It reports ErrWrongKind if c is not an
// object.
func (c *Cursor) Members() (*Members, error) {
	if err := c.narrow(KindObject); err != nil {
		return nil, err
	}
	if err := c.r.src.advance(); err != nil { // consume "{"
		return nil, err
	}
	return newMembers(c.r)
}

// Elements narrows c into an iterator over the elements of its array,
// consuming the opening bracket. It reports ErrWrongKind if c is not an
// array.
func (c *Cursor) Elements() (*Elements, error) {
	if err := c.narrow(KindArray); err != nil {
		return nil, err
	}
	if err := c.r.src.advance(); err != nil { // consume "["
		return nil, err
	}
	return newElements(c.r)
}

// Whole consumes c entirely and returns its value as an owned tree. Arrays
// and objects are materialized by recursively draining each element and
// member. Object members preserve source order; a duplicate key overwrites
// the earlier member in place.
//
// Numbers are parsed as IEEE doubles; a caller that needs exact integers
// beyond double precision must narrow to the Number cursor and reparse its
// span itself.
func (c *Cursor) Whole() (ast.Value, error) {
	switch c.kind {
	case KindNull:
		c.consume()
		if err := c.r.expect(litNull); err != nil {
			return nil, err
		}
		return ast.Null{}, nil

	case KindBool:
		c.consume()
		want, val := litTrue, true
		if c.r.src.front() == 'f' {
			want, val = litFalse, false
		}
		if err := c.r.expect(want); err != nil {
			return nil, err
		}
		return ast.Bool(val), nil

	case KindNumber:
		n, err := c.Number()
		if err != nil {
			return nil, err
		}
		v, err := n.Float64()
		if err != nil {
			return nil, err
		}
		return ast.Number(v), nil

	case KindString:
		t, err := c.Text()
		if err != nil {
			return nil, err
		}
		s, err := t.Unescape()
		if err != nil {
			return nil, err
		}
		return ast.String(s), nil

	case KindArray:
		es, err := c.Elements()
		if err != nil {
			return nil, err
		}
		arr := new(ast.Array)
		for es.Next() {
			v, err := es.Value().Whole()
			if err != nil {
				return nil, err
			}
			arr.Values = append(arr.Values, v)
		}
		if es.Err() != nil {
			return nil, es.Err()
		}
		return arr, nil

	case KindObject:
		ms, err := c.Members()
		if err != nil {
			return nil, err
		}
		obj := new(ast.Object)
		for ms.Next() {
			key, val, err := ms.Member().Whole()
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		if ms.Err() != nil {
			return nil, ms.Err()
		}
		return obj, nil
	}
	panic("jsoncur: invalid cursor kind")
}
