// Copyright (C) 2025 The jsonfront Authors. All Rights Reserved.

package ast

import (
	"go4.org/mem"

	"github.com/jsonfront/jsonfront"
)

// The backing storage of a non-empty array starts at this capacity and
// doubles whenever an append would exceed it.
const arrayInitialCap = 16

var (
	litTrue  = mem.S("true")
	litFalse = mem.S("false")
	litNull  = mem.S("null")
)

// Parse parses a single JSON value from the front of data and returns its
// tree. Parse never returns nil: on any failure the result is an *Error
// value whose Err method reports the cause, and no partially built tree is
// retained. Input following the parsed value and its trailing whitespace is
// ignored.
//
// String literals are decoded with a restricted scan rule: a backslash is
// dropped and the byte after it is copied verbatim, so escape sequences
// such as \n, \t, and \uXXXX are not translated to their semantic
// characters. Numbers are signed decimal integers with no fraction or
// exponent, and overflow is not detected.
//
// Parse places no limit on nesting depth or allocation; see the jsonfront
// package documentation for the bounds callers must impose on untrusted
// input.
func Parse(data []byte) Value {
	v, err := parseElement(jsonfront.NewScanner(data))
	if err != nil {
		return &Error{err: err}
	}
	return v
}

// parseElement parses a value surrounded by optional whitespace.
func parseElement(s *jsonfront.Scanner) (Value, error) {
	s.SkipSpace()
	v, err := parseValue(s)
	if err != nil {
		return nil, err
	}
	s.SkipSpace()
	return v, nil
}

// parseValue parses one value starting at the first significant byte.
// Dispatch is on a single byte of lookahead; anything that does not open an
// object, array, string, or constant is taken to be a number.
func parseValue(s *jsonfront.Scanner) (Value, error) {
	next, err := s.Peek()
	if err != nil {
		return nil, err
	}
	switch next {
	case '{':
		return parseObject(s)
	case '[':
		return parseArray(s)
	case '"':
		text, err := parseString(s)
		if err != nil {
			return nil, err
		}
		return &String{text: text}, nil
	case 't':
		if err := s.Literal(litTrue); err != nil {
			return nil, err
		}
		return &Bool{value: true}, nil
	case 'f':
		if err := s.Literal(litFalse); err != nil {
			return nil, err
		}
		return &Bool{value: false}, nil
	case 'n':
		if err := s.Literal(litNull); err != nil {
			return nil, err
		}
		return &Null{}, nil
	default:
		num, err := parseInt(s)
		if err != nil {
			return nil, err
		}
		return &Integer{value: num}, nil
	}
}

// parseObject parses "{", then either "}" or a non-empty comma-separated
// list of members followed by "}".
func parseObject(s *jsonfront.Scanner) (*Object, error) {
	if err := s.Expect('{'); err != nil {
		return nil, err
	}
	s.SkipSpace()
	next, err := s.Peek()
	if err != nil {
		return nil, err
	}
	obj := new(Object)
	if next == '}' {
		s.Next()
		return obj, nil
	}
	for {
		m, err := parseMember(s)
		if err != nil {
			return nil, err
		}
		obj.Members = append(obj.Members, m)

		// Scan for the separator. End of input here is a parse failure,
		// not a fall-through.
		next, err := s.Peek()
		if err != nil {
			return nil, err
		}
		if next == '}' {
			break
		}
		if err := s.Expect(','); err != nil {
			return nil, err
		}
	}
	if err := s.Expect('}'); err != nil {
		return nil, err
	}
	return obj, nil
}

// parseMember parses a single "key : element" pair.
func parseMember(s *jsonfront.Scanner) (*Member, error) {
	s.SkipSpace()
	key, err := parseString(s)
	if err != nil {
		return nil, err
	}
	s.SkipSpace()
	if err := s.Expect(':'); err != nil {
		return nil, err
	}
	v, err := parseElement(s)
	if err != nil {
		return nil, err
	}
	return &Member{Key: key, Value: v}, nil
}

// parseArray parses "[", then either "]" or a non-empty comma-separated
// list of elements followed by "]".
func parseArray(s *jsonfront.Scanner) (*Array, error) {
	if err := s.Expect('['); err != nil {
		return nil, err
	}
	s.SkipSpace()
	next, err := s.Peek()
	if err != nil {
		return nil, err
	}
	arr := new(Array)
	if next == ']' {
		s.Next()
		return arr, nil
	}
	arr.Values = make([]Value, 0, arrayInitialCap)
	for {
		v, err := parseElement(s)
		if err != nil {
			return nil, err
		}
		if len(arr.Values) == cap(arr.Values) {
			grown := make([]Value, len(arr.Values), 2*cap(arr.Values))
			copy(grown, arr.Values)
			arr.Values = grown
		}
		arr.Values = append(arr.Values, v)

		next, err := s.Peek()
		if err != nil {
			return nil, err
		}
		if next == ']' {
			break
		}
		if err := s.Expect(','); err != nil {
			return nil, err
		}
	}
	if err := s.Expect(']'); err != nil {
		return nil, err
	}
	return arr, nil
}

// parseString parses a quoted string in two passes: the first measures the
// decoded length, the second rewinds to the opening quote and copies into a
// buffer of exactly that size. A backslash causes the byte after it to be
// copied verbatim without further interpretation. An unterminated string is
// a failure.
func parseString(s *jsonfront.Scanner) (string, error) {
	if err := s.Expect('"'); err != nil {
		return "", err
	}
	start := s.Pos()

	count := 0
	for {
		b, err := s.Next()
		if err != nil {
			return "", err
		}
		if b == '"' {
			break
		}
		if b == '\\' {
			if _, err := s.Next(); err != nil {
				return "", err
			}
		}
		count++
	}

	s.Seek(start)
	buf := make([]byte, 0, count)
	for len(buf) < count {
		b, err := s.Next()
		if err != nil {
			return "", err
		}
		if b == '\\' {
			b, err = s.Next()
			if err != nil {
				return "", err
			}
		}
		buf = append(buf, b)
	}
	if err := s.Expect('"'); err != nil {
		return "", err
	}
	return string(buf), nil
}

// parseInt parses a signed decimal integer: an optional "-" followed by one
// or more digits. Overflow is not detected.
func parseInt(s *jsonfront.Scanner) (int64, error) {
	next, err := s.Peek()
	if err != nil {
		return 0, err
	}
	neg := next == '-'
	if neg {
		s.Next()
	}

	b, err := s.Require(isDigit, "digit")
	if err != nil {
		return 0, err
	}
	num := int64(b - '0')
	for {
		b, err := s.Peek()
		if err != nil || !isDigit(b) {
			break
		}
		s.Next()
		num = num*10 + int64(b-'0')
	}
	if neg {
		num = -num
	}
	return num, nil
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
