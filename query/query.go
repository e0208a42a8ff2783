// Copyright (C) 2025 The jsonfront Authors. All Rights Reserved.

// Package query implements structural queries over parsed JSON values.
//
// A query describes a path through a JSON tree, as a sequence of object
// keys and/or array indices from the root. For example, given the value:
//
//	[{"a": 1, "b": 2}, {"c": {"d": true}, "e": false}]
//
// the query
//
//	query.Path(1, "c", "d")
//
// yields the value "true".
package query

import (
	"fmt"

	"github.com/jsonfront/jsonfront/ast"
)

// Eval evaluates the given query beginning from root, returning the
// resulting value or an error.
func Eval(root ast.Value, q Query) (ast.Value, error) {
	return q.eval(root)
}

// A Query describes a traversal of a JSON value.
type Query interface {
	eval(ast.Value) (ast.Value, error)
}

// Path traverses a sequence of nested object keys or array indices from
// the root. If no keys are specified, the root is returned. Each key must
// be a string, an int, or a Query.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return objKey(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	default:
		panic("invalid path element")
	}
}

// A Seq is a query that applies each of its subqueries in order, feeding
// the result of each to the next.
type Seq []Query

func (q Seq) eval(v ast.Value) (ast.Value, error) {
	for _, sub := range q {
		next, err := sub.eval(v)
		if err != nil {
			return nil, err
		}
		v = next
	}
	return v, nil
}

type objKey string

func (o objKey) eval(v ast.Value) (ast.Value, error) {
	found, ok := ast.Lookup(v, string(o))
	if !ok {
		if v.Kind() != ast.KindObject {
			return nil, fmt.Errorf("got %v, want object", v.Kind())
		}
		return nil, fmt.Errorf("key %q not found", string(o))
	}
	return found, nil
}

type nthQuery int

func (nq nthQuery) eval(v ast.Value) (ast.Value, error) {
	arr, ok := v.(*ast.Array)
	if !ok {
		return nil, fmt.Errorf("got %v, want array", v.Kind())
	}
	idx := int(nq)
	if idx < 0 {
		idx += arr.Len()
	}
	if idx < 0 || idx >= arr.Len() {
		return nil, fmt.Errorf("index %d out of range (0..%d)", nq, arr.Len())
	}
	return arr.Values[idx], nil
}
