// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

// Package escape handles the escape sequences of JSON string literals.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

// Resolve maps a single-character escape selector (the code point after a
// backslash) to the character it denotes. It reports false for a selector
// that is not part of the JSON grammar. The "u" selector is not handled
// here; Unicode escapes carry four hex digits and are decoded by the
// caller.
func Resolve(sel rune) (rune, bool) {
	switch sel {
	case '"', '\\', '/':
		return sel, true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// HexValue returns the value of one hexadecimal digit.
func HexValue(ch rune) (int, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0'), true
	case 'a' <= ch && ch <= 'f':
		return int(ch-'a') + 10, true
	case 'A' <= ch && ch <= 'F':
		return int(ch-'A') + 10, true
	}
	return 0, false
}

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Quote encodes a string for inclusion in JSON text, escaping characters as
// required by the grammar. The enclosing quotation marks are not added.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())

	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		if r >= utf8.RuneSelf {
			var rbuf [utf8.UTFMax]byte
			nr := utf8.EncodeRune(rbuf[:], r)
			buf = append(buf, rbuf[:nr]...)
			continue
		}
		switch {
		case r < ' ':
			if b := controlEsc[r]; b != 0 {
				buf = append(buf, '\\', b)
			} else {
				buf = append(buf, '\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
			}
		case r == '\\' || r == '"':
			buf = append(buf, '\\', byte(r))
		default:
			buf = append(buf, byte(r))
		}
	}
	return buf
}
