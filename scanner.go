// Copyright (C) 2025 The jsonfront Authors. All Rights Reserved.

package jsonfront

import (
	"fmt"

	"go4.org/mem"
)

// A SyntaxError describes a scan failure at a specific byte offset of the
// input buffer.
type SyntaxError struct {
	Offset int    // byte offset at which scanning stopped, 0-based
	Msg    string // description of the failure
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Msg, e.Offset)
}

// A Scanner is a cursor over an in-memory input buffer. Each primitive
// either consumes input and returns nil, or consumes nothing and returns a
// *SyntaxError. The zero Scanner is empty; use NewScanner.
type Scanner struct {
	data []byte
	pos  int
}

// NewScanner constructs a scanner positioned at the start of data.
// The scanner reads but never modifies data; the caller must not mutate the
// buffer while the scanner is in use.
func NewScanner(data []byte) *Scanner { return &Scanner{data: data} }

// More reports whether any input remains at the cursor.
func (s *Scanner) More() bool { return s.pos < len(s.data) }

// Pos returns the current cursor offset.
func (s *Scanner) Pos() int { return s.pos }

// Seek repositions the cursor at offset pos. It is the caller's
// responsibility that pos is within the buffer; Seek supports rewinding to
// an offset previously obtained from Pos.
func (s *Scanner) Seek(pos int) { s.pos = pos }

// Peek returns the byte at the cursor without consuming it, or reports
// end of input.
func (s *Scanner) Peek() (byte, error) {
	if !s.More() {
		return 0, s.fail("unexpected end of input")
	}
	return s.data[s.pos], nil
}

// Expect consumes the byte at the cursor if it equals want. On failure the
// cursor does not move.
func (s *Scanner) Expect(want byte) error {
	if !s.More() {
		return s.failf("want %q, got end of input", want)
	}
	if s.data[s.pos] != want {
		return s.failf("want %q, got %q", want, s.data[s.pos])
	}
	s.pos++
	return nil
}

// Next consumes and returns the byte at the cursor, or reports end of
// input.
func (s *Scanner) Next() (byte, error) {
	if !s.More() {
		return 0, s.fail("unexpected end of input")
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

// Require consumes a single byte matching f, or reports an error naming the
// wanted label. On failure the cursor does not move.
func (s *Scanner) Require(f func(byte) bool, label string) (byte, error) {
	if !s.More() {
		return 0, s.failf("want %s, got end of input", label)
	}
	b := s.data[s.pos]
	if !f(b) {
		return 0, s.failf("got %q, want %s", b, label)
	}
	s.pos++
	return b, nil
}

// SkipSpace advances the cursor past any run of whitespace. It never fails;
// at end of input it is a no-op.
func (s *Scanner) SkipSpace() {
	for s.pos < len(s.data) && isSpace(s.data[s.pos]) {
		s.pos++
	}
}

// Literal consumes input exactly matching want, verifying both that enough
// input remains and that every byte matches. On failure the cursor does not
// move. It is used for the constants true, false, and null.
func (s *Scanner) Literal(want mem.RO) error {
	end := s.pos + want.Len()
	if end > len(s.data) {
		return s.failf("truncated %q", want.StringCopy())
	}
	if !mem.B(s.data[s.pos:end]).Equal(want) {
		return s.failf("unknown constant %q", string(s.data[s.pos:end]))
	}
	s.pos = end
	return nil
}

func (s *Scanner) fail(msg string) error {
	return &SyntaxError{Offset: s.pos, Msg: msg}
}

func (s *Scanner) failf(msg string, args ...any) error {
	return &SyntaxError{Offset: s.pos, Msg: fmt.Sprintf(msg, args...)}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
