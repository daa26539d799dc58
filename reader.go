// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

package jsoncur

import (
	"io"

	"go4.org/mem"
)

// Literal texts matched by Reader.expect.
var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

// A Reader owns the input of one parse and hands out the root cursor. All
// cursors derived from the same Reader share its input position; a Reader
// must not be shared between goroutines.
type Reader struct {
	src   source
	depth int  // count of live draining sub-cursors
	root  bool // Root has been called
}

// New constructs a Reader decoding UTF-8 input from r. It fails if, after
// leading whitespace, the input does not begin with "{" or "[".
func New(r io.Reader) (*Reader, error) {
	src, err := newReadSource(r)
	return newReader(src, err)
}

// NewBytes constructs a Reader over data, which must be UTF-8 encoded. It
// fails if, after leading whitespace, the input does not begin with "{" or
// "[". String values without escapes are extracted as subslices of data.
func NewBytes(data []byte) (*Reader, error) {
	src, err := newByteSource(data)
	return newReader(src, err)
}

// NewRunes constructs a Reader over a sequence of already-decoded code
// points. It fails if, after leading whitespace, the input does not begin
// with "{" or "[".
func NewRunes(rs []rune) (*Reader, error) {
	return newReader(newRuneSource(rs), nil)
}

func newReader(src source, err error) (*Reader, error) {
	if err != nil {
		return nil, err
	}
	rd := &Reader{src: src}
	if err := rd.skipSpace(); err != nil {
		return nil, err
	}
	if src.empty() {
		return nil, eofErr(ErrBadSyntax, src.offset(), "empty document")
	}
	if ch := src.front(); ch != '{' && ch != '[' {
		return nil, syntaxErr(ErrBadSyntax, src.offset(), `unexpected %q (%d), want "{" or "["`, ch, ch)
	}
	return rd, nil
}

// Root returns the cursor for the document's single root value. Root may be
// called at most once; a second call panics.
func (r *Reader) Root() (*Cursor, error) {
	if r.root {
		usage("Root called twice")
	}
	r.root = true
	return newCursor(r)
}

// skipSpace consumes whitespace greedily. Space, tab, LF and CR are the only
// code points treated as whitespace, per the JSON grammar.
func (r *Reader) skipSpace() error {
	for !r.src.empty() && isSpace(r.src.front()) {
		if err := r.src.advance(); err != nil {
			return err
		}
	}
	return nil
}

// expect consumes the code points of want from the input, failing on the
// first one that does not match.
func (r *Reader) expect(want mem.RO) error {
	for i := 0; i < want.Len(); i++ {
		if r.src.empty() {
			return eofErr(ErrBadLiteral, r.src.offset(), "end of input in %q", want.StringCopy())
		}
		if ch := r.src.front(); ch != rune(want.At(i)) {
			return syntaxErr(ErrBadLiteral, r.src.offset(),
				"unexpected %q (%d) in %q", ch, ch, want.StringCopy())
		}
		if err := r.src.advance(); err != nil {
			return err
		}
	}
	return nil
}

// enter records a new live sub-cursor and returns the depth the parent
// should see restored once that sub-cursor is exhausted.
func (r *Reader) enter() int {
	r.depth++
	return r.depth
}

func (r *Reader) leave() { r.depth-- }

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isDigit(ch rune) bool { return '0' <= ch && ch <= '9' }
