// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

package jsoncur

// Elements is a lazy iterator over the elements of one JSON array, with the
// same single-pass discipline as Members: finite, non-restartable, and one
// live element at a time.
type Elements struct {
	r     *Reader
	depth int
	cur   *Cursor
	done  bool
	err   error
}

// newElements is constructed immediately after the opening bracket has been
// consumed. An empty array is detected here by peeking for the closing
// bracket.
func newElements(r *Reader) (*Elements, error) {
	e := &Elements{r: r, depth: r.enter()}
	if err := r.skipSpace(); err != nil {
		return nil, err
	}
	if r.src.empty() {
		return nil, eofErr(ErrBadSyntax, r.src.offset(), `end of input, want "]" or a value`)
	}
	if r.src.front() == ']' {
		if err := r.src.advance(); err != nil {
			return nil, err
		}
		e.done = true
		r.leave()
	}
	return e, nil
}

// Next advances to the next element of the array. It returns false when the
// array is exhausted or when an error occurs; use Err to distinguish.
func (e *Elements) Next() bool {
	if e.done || e.err != nil {
		return false
	}
	if e.cur != nil {
		if e.r.depth != e.depth {
			usage("previous element not fully consumed")
		}
		if err := e.r.skipSpace(); err != nil {
			return e.fail(err)
		}
		if e.r.src.empty() {
			return e.fail(eofErr(ErrBadSyntax, e.r.src.offset(), `end of input, want "," or "]"`))
		}
		switch ch := e.r.src.front(); ch {
		case ']':
			if err := e.r.src.advance(); err != nil {
				return e.fail(err)
			}
			e.done = true
			e.r.leave()
			return false
		case ',':
			if err := e.r.src.advance(); err != nil {
				return e.fail(err)
			}
			if err := e.r.skipSpace(); err != nil {
				return e.fail(err)
			}
		default:
			return e.fail(syntaxErr(ErrBadSyntax, e.r.src.offset(),
				`unexpected %q (%d), want "," or "]"`, ch, ch))
		}
	}
	cur, err := newCursor(e.r)
	if err != nil {
		return e.fail(err)
	}
	e.cur = cur
	return true
}

// Value returns the cursor for the current element. It is valid after a
// call to Next that returned true.
func (e *Elements) Value() *Cursor { return e.cur }

// Err returns the first error encountered while iterating, or nil.
func (e *Elements) Err() error { return e.err }

func (e *Elements) fail(err error) bool {
	e.err = err
	return false
}
