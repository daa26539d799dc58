// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

package jsoncur

import (
	"io"
	"unicode/utf8"
)

// A source is a lazy sequence of decoded code points. A source is primed on
// construction so that front is immediately valid; advance moves to the next
// code point. Once empty reports true, front and advance must not be called.
type source interface {
	// empty reports whether the input is exhausted.
	empty() bool

	// front returns the current code point.
	front() rune

	// advance decodes the next code point, or marks the source empty.
	advance() error

	// offset returns the input offset of front, or of the end of input once
	// the source is empty. Offsets are in bytes for encoded inputs and in
	// code points for rune inputs.
	offset() int
}

// slicer is the optional capability of a source whose input is held in
// memory: slice returns a subrange of the original input, aliasing its
// storage. Offsets are those reported by offset. The string cursor uses this
// for zero-copy extraction.
type slicer interface {
	slice(pos, end int) []byte
}

// byteSource decodes UTF-8 code points from a byte slice held in memory.
type byteSource struct {
	data []byte
	pos  int // offset of the first byte of cur
	next int // offset of the first undecoded byte
	cur  rune
	done bool
}

func newByteSource(data []byte) (*byteSource, error) {
	s := &byteSource{data: data}
	return s, s.advance()
}

func (s *byteSource) empty() bool { return s.done }
func (s *byteSource) front() rune { return s.cur }
func (s *byteSource) offset() int { return s.pos }

func (s *byteSource) slice(pos, end int) []byte { return s.data[pos:end] }

func (s *byteSource) advance() error {
	s.pos = s.next
	if s.next >= len(s.data) {
		s.done = true
		return nil
	}
	r, n := utf8.DecodeRune(s.data[s.next:])
	if r == utf8.RuneError && n == 1 {
		if !utf8.FullRune(s.data[s.next:]) {
			return eofErr(ErrBadEncoding, s.next, "truncated UTF-8 sequence")
		}
		return syntaxErr(ErrBadEncoding, s.next, "invalid UTF-8 byte 0x%02x", s.data[s.next])
	}
	s.cur = r
	s.next += n
	return nil
}

// readSource decodes UTF-8 code points from an io.Reader through a small
// ring buffer. A refill shifts any undecoded tail to the front of the buffer
// before topping it up, so multi-byte sequences may span read boundaries.
type readSource struct {
	r      io.Reader
	buf    [4 * utf8.UTFMax]byte
	lo, hi int // undecoded bytes are buf[lo:hi]
	cur    rune
	pos    int  // input offset of cur
	n      int  // input offset of buf[lo]
	eof    bool // underlying reader exhausted
	done   bool
}

func newReadSource(r io.Reader) (*readSource, error) {
	s := &readSource{r: r}
	return s, s.advance()
}

func (s *readSource) empty() bool { return s.done }
func (s *readSource) front() rune { return s.cur }
func (s *readSource) offset() int { return s.pos }

func (s *readSource) advance() error {
	s.pos = s.n
	for !s.eof && !utf8.FullRune(s.buf[s.lo:s.hi]) {
		if err := s.fill(); err != nil {
			return err
		}
	}
	if s.lo == s.hi {
		s.done = true
		return nil
	}
	r, n := utf8.DecodeRune(s.buf[s.lo:s.hi])
	if r == utf8.RuneError && n == 1 {
		if !utf8.FullRune(s.buf[s.lo:s.hi]) {
			// eof is set, or the loop above would have refilled.
			return eofErr(ErrBadEncoding, s.n, "truncated UTF-8 sequence")
		}
		return syntaxErr(ErrBadEncoding, s.n, "invalid UTF-8 byte 0x%02x", s.buf[s.lo])
	}
	s.cur = r
	s.lo += n
	s.n += n
	return nil
}

// fill moves the undecoded tail to the start of the buffer and reads more
// input behind it.
func (s *readSource) fill() error {
	if s.lo > 0 {
		s.hi = copy(s.buf[:], s.buf[s.lo:s.hi])
		s.lo = 0
	}
	nr, err := s.r.Read(s.buf[s.hi:])
	s.hi += nr
	if err == io.EOF {
		s.eof = true
	} else if err != nil {
		return err
	}
	return nil
}

// runeSource is the pass-through source for input that already consists of
// decoded code points. It is not sliceable, so string extraction from it
// always copies. Offsets count code points, not bytes.
type runeSource struct {
	rs  []rune
	pos int
}

func newRuneSource(rs []rune) *runeSource { return &runeSource{rs: rs} }

func (s *runeSource) empty() bool { return s.pos >= len(s.rs) }
func (s *runeSource) front() rune { return s.rs[s.pos] }
func (s *runeSource) offset() int { return s.pos }

func (s *runeSource) advance() error { s.pos++; return nil }
