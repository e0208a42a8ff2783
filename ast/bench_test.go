// Copyright (C) 2025 The jsonfront Authors. All Rights Reserved.

package ast_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/jsonfront/jsonfront/ast"
)

// benchInput builds a moderately nested document of objects, arrays,
// strings, integers, and constants (the full value set of this grammar).
func benchInput() []byte {
	var sb strings.Builder
	sb.WriteString(`{"records":[`)
	for i := 0; i < 200; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"id":%d,"name":"record-%d","tags":["a","b","c"],"active":%v,"meta":null}`,
			i, i, i%2 == 0)
	}
	sb.WriteString(`]}`)
	return []byte(sb.String())
}

func BenchmarkParse(b *testing.B) {
	input := benchInput()
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Parse", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if e, ok := ast.Parse(input).(*ast.Error); ok {
				b.Fatalf("Parse failed: %v", e.Err())
			}
		}
	})

	// The standard library as a baseline.
	b.Run("Stdlib", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var v any
			if err := json.Unmarshal(input, &v); err != nil {
				b.Fatalf("Unmarshal failed: %v", err)
			}
		}
	})
}
