// Copyright (C) 2025 The jsonfront Authors. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"

	"github.com/jsonfront/jsonfront/ast"
)

const testJSON = `{
  "list": [
    {
      "x": 1
    },
    {
      "x": 2
    }
  ],
  "y": {
    "hello": "there"
  },
  "a": 1,
  "a": 2
}`

func TestKindString(t *testing.T) {
	tests := []struct {
		kind ast.Kind
		want string
	}{
		{ast.KindError, "error"},
		{ast.KindObject, "object"},
		{ast.KindArray, "array"},
		{ast.KindString, "string"},
		{ast.KindInteger, "integer"},
		{ast.KindFloat, "float"},
		{ast.KindTrue, "true"},
		{ast.KindFalse, "false"},
		{ast.KindNull, "null"},
		{ast.Kind(255), "error"},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.want {
			t.Errorf("Kind %d: got %q, want %q", test.kind, got, test.want)
		}
	}
}

func TestFind(t *testing.T) {
	obj, ok := mustParse(t, testJSON).(*ast.Object)
	if !ok {
		t.Fatal("Root is not an object")
	}

	if m := obj.Find("nonesuch"); m != nil {
		t.Errorf(`Find "nonesuch": got %+v, want nil`, m)
	}

	// Duplicate keys: the first member in insertion order wins.
	m := obj.Find("a")
	if m == nil {
		t.Fatal(`Find "a": not found`)
	}
	if z := m.Value.(*ast.Integer); z.Int64() != 1 {
		t.Errorf(`Find "a": got %d, want 1`, z.Int64())
	}
}

func TestLookup(t *testing.T) {
	root := mustParse(t, testJSON)

	v, ok := ast.Lookup(root, "y")
	if !ok {
		t.Fatal(`Lookup "y": not found`)
	}
	hello, ok := ast.Lookup(v, "hello")
	if !ok {
		t.Fatal(`Lookup "hello": not found`)
	}
	if diff := cmp.Diff(ast.ToValue("there"), hello, cmpOpts); diff != "" {
		t.Errorf("Lookup \"hello\": (-want, +got)\n%s", diff)
	}

	// Lookup on non-objects reports not found rather than failing.
	for _, v := range []ast.Value{
		mustParse(t, `[1, 2]`),
		ast.ToValue(25),
		ast.ToValue("text"),
		ast.ToValue(nil),
	} {
		if got, ok := ast.Lookup(v, "a"); ok || got != nil {
			t.Errorf("Lookup on %v: got %v, %v; want nil, false", v.Kind(), got, ok)
		}
	}

	if _, ok := ast.Lookup(mustParse(t, `{}`), "a"); ok {
		t.Error("Lookup on empty object: unexpectedly found a member")
	}
}

func TestWalk(t *testing.T) {
	root := mustParse(t, testJSON)

	// One root, one array, three objects under the root, two integers in the
	// array objects, one string, and the two duplicate-key integers.
	var count int
	ast.Walk(root, func(ast.Value) bool { count++; return true })
	if want := 10; count != want {
		t.Errorf("Walk visited %d values, want %d", count, want)
	}

	// Early termination.
	count = 0
	done := ast.Walk(root, func(v ast.Value) bool {
		count++
		return v.Kind() != ast.KindInteger
	})
	if done {
		t.Error("Walk: got true, want early stop")
	}
	if count >= 10 {
		t.Errorf("Walk visited %d values after stopping", count)
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Kind
	}{
		{nil, ast.KindNull},
		{true, ast.KindTrue},
		{false, ast.KindFalse},
		{"pelican", ast.KindString},
		{25, ast.KindInteger},
		{int64(-3), ast.KindInteger},
	}
	for _, test := range tests {
		if got := ast.ToValue(test.input).Kind(); got != test.want {
			t.Errorf("ToValue(%v): got %v, want %v", test.input, got, test.want)
		}
	}

	mtest.MustPanic(t, func() { ast.ToValue(3.2) })
	mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
	mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
}
