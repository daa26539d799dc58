// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lazyseq/jsoncur/ast"
)

func TestObjectSet(t *testing.T) {
	obj := new(ast.Object)
	obj.Set("a", ast.Number(1))
	obj.Set("b", ast.Bool(true))
	obj.Set("a", ast.Number(2)) // overwrite keeps position

	if got, want := obj.Len(), 2; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
	m := obj.Find("a")
	if m == nil {
		t.Fatal(`Find "a": not found`)
	}
	if diff := cmp.Diff(ast.Number(2), m.Value); diff != "" {
		t.Errorf(`Value of "a": (-want, +got)%s`, diff)
	}
	if obj.Members[0].Key != "a" || obj.Members[1].Key != "b" {
		t.Errorf("Member order: got %q, %q; want a, b", obj.Members[0].Key, obj.Members[1].Key)
	}
	if obj.Find("missing") != nil {
		t.Error(`Find "missing": unexpectedly found`)
	}
}

func TestJSON(t *testing.T) {
	tests := []struct {
		value ast.Value
		want  string
	}{
		{ast.Null{}, "null"},
		{ast.Bool(true), "true"},
		{ast.Bool(false), "false"},
		{ast.Number(0), "0"},
		{ast.Number(3.5), "3.5"},
		{ast.Number(1e10), "1e+10"},
		{ast.Number(-0.25), "-0.25"},
		{ast.String(""), `""`},
		{ast.String("a b"), `"a b"`},
		{ast.String("tab\there"), `"tab\there"`},
		{ast.String(`back\slash "quoted"`), `"back\\slash \"quoted\""`},
		{ast.String("\x01"), "\"\\u0001\""},
		{ast.String("päx π"), `"päx π"`},
		{&ast.Array{}, "[]"},
		{&ast.Array{Values: []ast.Value{ast.Number(1), ast.String("s"), ast.Null{}}},
			`[1,"s",null]`},
		{&ast.Object{Members: []*ast.Member{
			{Key: "a", Value: ast.Number(1)},
			{Key: "b", Value: &ast.Array{Values: []ast.Value{ast.Bool(false)}}},
		}}, `{"a":1,"b":[false]}`},
	}

	for _, test := range tests {
		if got := test.value.JSON(); got != test.want {
			t.Errorf("JSON of %+v: got %s, want %s", test.value, got, test.want)
		}
	}
}
