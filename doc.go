// Copyright (C) 2025 The jsonfront Authors. All Rights Reserved.

// Package jsonfront implements a cursor scanner over an in-memory JSON
// buffer. It provides the low-level primitives used by the parser in the
// ast subpackage: end-of-input checks, single-byte expectations, whitespace
// skipping, and exact keyword matching.
//
// # Scanning
//
// A Scanner reads a byte buffer held entirely in memory; there is no
// streaming or incremental input. Construct one with NewScanner and consume
// input with the primitive operations:
//
//	s := jsonfront.NewScanner(data)
//	s.SkipSpace()
//	if err := s.Expect('{'); err != nil {
//	   log.Fatalf("Scan failed: %v", err)
//	}
//
// Every primitive that can fail returns an error and consumes nothing on
// failure. Errors have concrete type *SyntaxError and carry the byte offset
// at which scanning stopped. A caller that receives an error must stop
// consuming input; the cursor remains where the failure occurred.
//
// # Resource bounds
//
// Neither the scanner nor the parser built on it imposes any limit on input
// size, value nesting depth, or total allocation. Deeply nested input can
// exhaust the goroutine stack, and a large buffer allocates in proportion
// to its content. Callers parsing untrusted input must bound the buffer
// before handing it over (for example with http.MaxBytesReader).
package jsonfront
