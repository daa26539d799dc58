// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

package jsoncur_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lazyseq/jsoncur"
)

// textOf parses doc, which must be an array whose first element is a
// string, and returns that string's cursor.
func textOf(t *testing.T, doc []byte) (*jsoncur.Text, error) {
	t.Helper()
	rd, err := jsoncur.NewBytes(doc)
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	root, err := rd.Root()
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	es, err := root.Elements()
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	if !es.Next() {
		t.Fatalf("Next: no element (err=%v)", es.Err())
	}
	return es.Value().Text()
}

func TestTextDecoding(t *testing.T) {
	tests := []struct {
		input string // a string literal, with quotes
		want  string
	}{
		{`""`, ""},
		{`"a b c"`, "a b c"},
		{"\"\\u0041\"", "A"},
		{"\"\\u005c\"", `\`},
		{`"\n\t\\\\"`, "\n\t\\\\"},
		{`"\"\\\/\b\f\n\r\t"`, "\"\\/\b\f\n\r\t"},
		{`"é café"`, "é café"},
		{`"päx π €"`, "päx π €"},
		{"\"ends with escape\\u0021\"", "ends with escape!"},
	}

	for _, test := range tests {
		tc, err := textOf(t, []byte("["+test.input+"]"))
		if err != nil {
			t.Errorf("Input %#q: Text failed: %v", test.input, err)
			continue
		}
		got, err := tc.Unescape()
		if err != nil {
			t.Errorf("Input %#q: Unescape failed: %v", test.input, err)
		} else if got != test.want {
			t.Errorf("Input %#q: got %q, want %q", test.input, got, test.want)
		}
	}
}

func TestTextErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
	}{
		{`"\x"`, jsoncur.ErrBadString},        // invalid escape selector
		{`"\u00"]`, jsoncur.ErrBadString},     // incomplete Unicode escape
		{`"\u00ZZ"`, jsoncur.ErrBadString},    // bad hex digit
		{"\"a\x01b\"", jsoncur.ErrBadString},  // unescaped control
		{`"no closing quote`, jsoncur.ErrBadString},
		{`"ends in backslash\`, jsoncur.ErrBadString},
	}

	for _, test := range tests {
		tc, err := textOf(t, []byte("["+test.input+"]"))
		if err != nil {
			t.Errorf("Input %#q: Text failed early: %v", test.input, err)
			continue
		}
		_, err = tc.Unescape()
		if err == nil {
			t.Errorf("Input %#q: got nil, want error", test.input)
		} else if !errors.Is(err, test.kind) {
			t.Errorf("Input %#q: error %v, want %v", test.input, err, test.kind)
		}
	}
}

func TestTextWidths(t *testing.T) {
	type step struct {
		Rune  rune
		Width int
	}
	tc, err := textOf(t, []byte("[\"a\\nb\\u0041ç\"]"))
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	var got []step
	for tc.Next() {
		got = append(got, step{tc.Rune(), tc.Width()})
	}
	if tc.Err() != nil {
		t.Fatalf("Next failed: %v", tc.Err())
	}
	want := []step{
		{'a', 0}, {'\n', 1}, {'b', 0}, {'A', 5}, {'ç', 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Steps: (-want, +got)\n%s", diff)
	}
}

func TestTextZeroCopy(t *testing.T) {
	data := []byte(`{"name": "no escapes in here"}`)
	rd, err := jsoncur.NewBytes(data)
	if err != nil {
		t.Fatalf("NewBytes: %v", err)
	}
	root, _ := rd.Root()
	ms, err := root.Members()
	if err != nil {
		t.Fatalf("Members: %v", err)
	}
	if !ms.Next() {
		t.Fatalf("Next: no member (err=%v)", ms.Err())
	}
	if _, err := ms.Member().Name().Bytes(); err != nil {
		t.Fatalf("Name: %v", err)
	}
	vc, err := ms.Member().Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	tc, err := vc.Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	got, err := tc.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	const want = "no escapes in here"
	if string(got) != want {
		t.Fatalf("Bytes: got %q, want %q", got, want)
	}
	// The result must alias the original input, not a copy of it.
	sub := data[bytes.Index(data, []byte(want)):]
	if &got[0] != &sub[0] {
		t.Error("Bytes: result does not share storage with the input")
	}
}

func TestTextCopyOnEscape(t *testing.T) {
	data := []byte("[\"has \\u0061n escape\"]")
	orig := string(data)
	tc, err := textOf(t, data)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	got, err := tc.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if string(got) != "has an escape" {
		t.Fatalf("Bytes: got %q", got)
	}
	// The decoded form is shorter than the source span, so it cannot alias
	// the input; corrupting it must leave the input intact.
	got[0] = 'X'
	if string(data) != orig {
		t.Error("Bytes: mutating the result corrupted the input")
	}
}

func TestTextSurrogateHalves(t *testing.T) {
	// Surrogate pairs are not recombined: each \uXXXX escape yields the code
	// point of its own four hex digits.
	tc, err := textOf(t, []byte("[\"\\ud83d\\ude00\"]"))
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	var got []rune
	for tc.Next() {
		got = append(got, tc.Rune())
	}
	if tc.Err() != nil {
		t.Fatalf("Next failed: %v", tc.Err())
	}
	if diff := cmp.Diff([]rune{0xd83d, 0xde00}, got); diff != "" {
		t.Errorf("Runes: (-want, +got)\n%s", diff)
	}
}

func TestTextFromRunes(t *testing.T) {
	// A rune input is not sliceable, so extraction always copies.
	rd, err := jsoncur.NewRunes([]rune(`["päx A"]`))
	if err != nil {
		t.Fatalf("NewRunes: %v", err)
	}
	root, _ := rd.Root()
	es, err := root.Elements()
	if err != nil {
		t.Fatalf("Elements: %v", err)
	}
	if !es.Next() {
		t.Fatalf("Next: no element (err=%v)", es.Err())
	}
	tc, err := es.Value().Text()
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	got, err := tc.Unescape()
	if err != nil {
		t.Fatalf("Unescape: %v", err)
	}
	if want := "päx A"; got != want {
		t.Errorf("Unescape: got %q, want %q", got, want)
	}
}
