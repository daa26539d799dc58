// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

// Package jsoncur implements a lazy, single-pass JSON parser.
//
// Instead of building a parse tree, the parser exposes the input as a
// cascade of cursors, one per JSON value. A cursor classifies its value by
// peeking at the first significant code point, and on demand narrows into a
// typed sub-cursor that consumes the value: a [Text] for strings, a [Number]
// for number literals, a [Members] iterator for objects, and an [Elements]
// iterator for arrays. Every cursor derived from the same parse shares one
// input position; advancing any of them advances the parse.
//
// # Reading
//
// Construct a [Reader] from the input and ask it for the root cursor. Only
// documents whose root is an object or an array are accepted:
//
//	rd, err := jsoncur.NewBytes(data)
//	if err != nil {
//	   log.Fatalf("Invalid document: %v", err)
//	}
//	root, err := rd.Root()
//
// To descend into the document, narrow the cursor and iterate:
//
//	ms, err := root.Members()
//	for ms.Next() {
//	   key, err := ms.Member().Name().Unescape()
//	   ...
//	   vc, err := ms.Member().Value()
//	   ...
//	}
//	if ms.Err() != nil { ... }
//
// To materialize an entire value, including the root, call Whole. It drains
// the cursor recursively into an owned [ast.Value]:
//
//	v, err := root.Whole()
//
// # Single-pass discipline
//
// A cursor may be consumed exactly once, and a sub-cursor must be exhausted
// before its parent can produce the next sibling. Parse failures (malformed
// input) are reported as errors of type [*SyntaxError]. Violations of the
// consumption contract by the caller are programming errors and panic.
//
// # Zero copies
//
// When the input is a byte slice, a string value containing no escape
// sequences is extracted as a subslice of the original input, with no
// allocation. Strings with escapes, and all strings read from an io.Reader
// or a rune slice, are copied into an owned buffer.
package jsoncur
