// Copyright (C) 2024 The jsoncur Authors. All Rights Reserved.

// Package ast defines the materialized form of JSON values produced by
// draining cursors.
package ast

import (
	"strconv"
	"strings"

	"go4.org/mem"

	"github.com/lazyseq/jsoncur/internal/escape"
)

// A Value is an owned, materialized JSON value. The concrete types are
// [*Object], [*Array], [Number], [String], [Bool], and [Null]. A value owns
// its children exclusively; the tree has no cycles.
type Value interface {
	// JSON renders the value as JSON text.
	JSON() string
}

// An Object is a collection of key-value members in source order.
type Object struct {
	Members []*Member
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Set adds a member with the given key and value. If a member with that key
// already exists, its value is replaced and its position preserved.
func (o *Object) Set(key string, v Value) {
	if m := o.Find(key); m != nil {
		m.Value = v
		return
	}
	o.Members = append(o.Members, &Member{Key: key, Value: v})
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.Members) }

// JSON satisfies the Value interface.
func (o *Object) JSON() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(String(m.Key).JSON())
		sb.WriteByte(':')
		sb.WriteString(m.Value.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

// An Array is a sequence of values.
type Array struct {
	Values []Value
}

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.Values) }

// JSON satisfies the Value interface.
func (a *Array) JSON() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

// A Number is a numeric value. All JSON numbers materialize as IEEE
// doubles; the source text's integer/float distinction is not preserved.
type Number float64

// Float64 returns the value of n.
func (n Number) Float64() float64 { return float64(n) }

// JSON satisfies the Value interface.
func (n Number) JSON() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// A String is a string value, with escapes already resolved.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string {
	q := escape.Quote(mem.S(string(s)))
	return `"` + string(q) + `"`
}

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }
