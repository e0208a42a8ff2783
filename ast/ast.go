// Copyright (C) 2025 The jsonfront Authors. All Rights Reserved.

// Package ast defines a tree of typed JSON values, a parser that constructs
// trees from a byte buffer, and lookup over the result.
package ast

import "fmt"

// Kind identifies the kind of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	KindError   Kind = iota // failed parse
	KindObject              // object: { ... }
	KindArray               // array: [ ... ]
	KindString              // string value
	KindInteger             // integer value
	KindFloat               // reserved: the grammar produces only integers
	KindTrue                // constant: true
	KindFalse               // constant: false
	KindNull                // constant: null
)

var kindStr = [...]string{
	KindError:   "error",
	KindObject:  "object",
	KindArray:   "array",
	KindString:  "string",
	KindInteger: "integer",
	KindFloat:   "float",
	KindTrue:    "true",
	KindFalse:   "false",
	KindNull:    "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[KindError]
	}
	return kindStr[v]
}

// A Value is one node of a parsed JSON tree. Every tree is owned by the
// caller that parsed it; no node is shared between trees.
type Value interface{ Kind() Kind }

// An Object is a collection of key-value members. An empty object has no
// members. Member order is insertion order, and duplicate keys are legal.
type Object struct {
	Members []*Member
}

// Kind satisfies the Value interface.
func (*Object) Kind() Kind { return KindObject }

// Find returns the first member of o with the given key, matched by exact
// byte equality, or nil if no member matches. Members are scanned in
// insertion order, so for duplicate keys the earliest wins.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// An Array is an ordered sequence of values. An empty array has no backing
// storage.
type Array struct {
	Values []Value
}

// Kind satisfies the Value interface.
func (*Array) Kind() Kind { return KindArray }

// Len returns the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

// A String is a string value. Its text is the decoded content of the
// literal under the scan rule of this grammar: a backslash is dropped and
// the byte following it is copied verbatim. Escape sequences are NOT
// decoded to their semantic characters; see Parse.
type String struct {
	text string
}

// Kind satisfies the Value interface.
func (*String) Kind() Kind { return KindString }

// Text returns the decoded text of s.
func (s *String) Text() string { return s.text }

// An Integer is an integer value.
type Integer struct {
	value int64
}

// Kind satisfies the Value interface.
func (*Integer) Kind() Kind { return KindInteger }

// Int64 returns the value of z as an int64.
func (z *Integer) Int64() int64 { return z.value }

// A Bool is a Boolean constant. Its kind is KindTrue or KindFalse
// according to its value.
type Bool struct {
	value bool
}

// Kind satisfies the Value interface.
func (b *Bool) Kind() Kind {
	if b.value {
		return KindTrue
	}
	return KindFalse
}

// Value returns the truth value of b.
func (b *Bool) Value() bool { return b.value }

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (*Null) Kind() Kind { return KindNull }

// An Error is the result of a failed parse. It is a Value, so that Parse
// always returns a tagged result, and also an error reporting the cause.
type Error struct {
	err error
}

// Kind satisfies the Value interface.
func (*Error) Kind() Kind { return KindError }

// Err returns the error that caused the parse to fail.
func (e *Error) Err() error { return e.err }

func (e *Error) Error() string { return e.err.Error() }

func (e *Error) Unwrap() error { return e.err }

// Lookup returns the value of the first member of v whose key equals key.
// The flag reports whether a match was found; it is false when v is not an
// object or no member matches. Lookup reads the tree without allocating,
// and the result remains owned by the tree.
func Lookup(v Value, key string) (Value, bool) {
	obj, ok := v.(*Object)
	if !ok {
		return nil, false
	}
	if m := obj.Find(key); m != nil {
		return m.Value, true
	}
	return nil, false
}

// Walk visits v and, recursively, every value it owns: member values in
// member order for objects, elements in index order for arrays. Walk stops
// early and returns false if f returns false for any visited value.
func Walk(v Value, f func(Value) bool) bool {
	if !f(v) {
		return false
	}
	switch t := v.(type) {
	case *Object:
		for _, m := range t.Members {
			if !Walk(m.Value, f) {
				return false
			}
		}
	case *Array:
		for _, e := range t.Values {
			if !Walk(e, f) {
				return false
			}
		}
	}
	return true
}

// ToValue converts a plain Go value into the corresponding tree node.
// It accepts nil, bool, string, int, and int64, and panics for any other
// type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return &Null{}
	case bool:
		return &Bool{value: t}
	case string:
		return &String{text: t}
	case int:
		return &Integer{value: int64(t)}
	case int64:
		return &Integer{value: t}
	default:
		panic(fmt.Sprintf("cannot convert %T to a value", v))
	}
}
