// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

package jsoncur

import (
	"github.com/lazyseq/jsoncur/ast"
)

// Members is a lazy iterator over the members of one JSON object. It is
// finite and non-restartable: each call to Next produces the next member
// exactly once. Only one member is live at a time; calling Next before the
// previous member's name and value cursors are exhausted panics.
type Members struct {
	r     *Reader
	depth int
	cur   *Member
	done  bool
	err   error
}

// newMembers is constructed immediately after the opening brace has been
// consumed. An empty object is detected here by peeking for the closing
// brace.
func newMembers(r *Reader) (*Members, error) {
	m := &Members{r: r, depth: r.enter()}
	if err := r.skipSpace(); err != nil {
		return nil, err
	}
	if r.src.empty() {
		return nil, eofErr(ErrBadSyntax, r.src.offset(), `end of input, want "}" or a member`)
	}
	if r.src.front() == '}' {
		if err := r.src.advance(); err != nil {
			return nil, err
		}
		m.done = true
		r.leave()
	}
	return m, nil
}

// Next advances to the next member of the object. It returns false when the
// object is exhausted or when an error occurs; use Err to distinguish.
func (m *Members) Next() bool {
	if m.done || m.err != nil {
		return false
	}
	if m.cur != nil {
		if m.r.depth != m.depth {
			usage("previous member not fully consumed")
		}
		if !m.cur.gotVal {
			usage("previous member's value not consumed")
		}
		if err := m.r.skipSpace(); err != nil {
			return m.fail(err)
		}
		if m.r.src.empty() {
			return m.fail(eofErr(ErrBadSyntax, m.r.src.offset(), `end of input, want "," or "}"`))
		}
		switch ch := m.r.src.front(); ch {
		case '}':
			if err := m.r.src.advance(); err != nil {
				return m.fail(err)
			}
			m.done = true
			m.r.leave()
			return false
		case ',':
			if err := m.r.src.advance(); err != nil {
				return m.fail(err)
			}
			if err := m.r.skipSpace(); err != nil {
				return m.fail(err)
			}
			if m.r.src.empty() {
				return m.fail(eofErr(ErrBadSyntax, m.r.src.offset(), "end of input, want a member name"))
			}
		default:
			return m.fail(syntaxErr(ErrBadSyntax, m.r.src.offset(),
				`unexpected %q (%d), want "," or "}"`, ch, ch))
		}
	}
	if ch := m.r.src.front(); ch != '"' {
		return m.fail(syntaxErr(ErrBadSyntax, m.r.src.offset(),
			"unexpected %q (%d), want a member name", ch, ch))
	}
	name, err := newText(m.r)
	if err != nil {
		return m.fail(err)
	}
	m.cur = &Member{r: m.r, name: name}
	return true
}

// Member returns the current member. It is valid after a call to Next that
// returned true.
func (m *Members) Member() *Member { return m.cur }

// Err returns the first error encountered while iterating, or nil.
func (m *Members) Err() error { return m.err }

func (m *Members) fail(err error) bool {
	m.err = err
	return false
}

// A Member is one "name": value pair of an object. The name cursor must be
// fully consumed before the value can be fetched, mirroring the order of
// the source text.
type Member struct {
	r      *Reader
	name   *Text
	gotVal bool
}

// Name returns the string cursor over the member's key.
func (m *Member) Name() *Text { return m.name }

// Value consumes the separating colon and returns the cursor for the
// member's value. It panics if the name cursor has not been fully consumed,
// or if the value was already taken.
func (m *Member) Value() (*Cursor, error) {
	if m.gotVal {
		usage("member value already consumed")
	}
	if err := m.name.Err(); err != nil {
		return nil, err
	}
	if !m.name.done {
		usage("member name not fully consumed")
	}
	m.gotVal = true
	if err := m.r.skipSpace(); err != nil {
		return nil, err
	}
	if m.r.src.empty() {
		return nil, eofErr(ErrBadSyntax, m.r.src.offset(), `end of input, want ":"`)
	}
	if ch := m.r.src.front(); ch != ':' {
		return nil, syntaxErr(ErrBadSyntax, m.r.src.offset(), `unexpected %q (%d), want ":"`, ch, ch)
	}
	if err := m.r.src.advance(); err != nil {
		return nil, err
	}
	if err := m.r.skipSpace(); err != nil {
		return nil, err
	}
	return newCursor(m.r)
}

// Whole materializes the member, returning its decoded key and its value as
// an owned tree.
func (m *Member) Whole() (string, ast.Value, error) {
	key, err := m.name.Unescape()
	if err != nil {
		return "", nil, err
	}
	vc, err := m.Value()
	if err != nil {
		return "", nil, err
	}
	v, err := vc.Whole()
	if err != nil {
		return "", nil, err
	}
	return key, v, nil
}
