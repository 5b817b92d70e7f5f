package valid

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Bool returns a boolean validator.
func Bool() *BoolSchema { return &BoolSchema{} }

// BoolSchema validates boolean values, optionally narrowed to one literal.
type BoolSchema struct {
	hasConst bool
	constVal bool
}

// Const narrows acceptance to exactly the given literal.
func (b *BoolSchema) Const(v bool) *BoolSchema {
	b.hasConst = true
	b.constVal = v
	return b
}

func (b *BoolSchema) Validate(ctx context.Context, v any) error {
	t, ok := v.(bool)
	if !ok {
		return fail(CodeInvalidType, "expected boolean")
	}
	if b.hasConst && t != b.constVal {
		return fail(CodeInvalidLiteral, "expected "+strconv.FormatBool(b.constVal))
	}
	return nil
}

// Integer returns an integer validator.
func Integer() *IntegerSchema { return &IntegerSchema{} }

// IntegerSchema validates integral numbers. Const overrides every other
// check, enum membership overrides range checks, and minimum/maximum are
// inclusive bounds.
type IntegerSchema struct {
	hasConst bool
	constVal int64
	enum     []int64
	min      *int64
	max      *int64
}

// Const narrows acceptance to exactly the given literal.
func (n *IntegerSchema) Const(v int64) *IntegerSchema {
	n.hasConst = true
	n.constVal = v
	return n
}

// Enum restricts acceptance to membership in the given literal set.
func (n *IntegerSchema) Enum(vals []int64) *IntegerSchema { n.enum = vals; return n }

// Min sets the inclusive lower bound.
func (n *IntegerSchema) Min(v int64) *IntegerSchema { n.min = &v; return n }

// Max sets the inclusive upper bound.
func (n *IntegerSchema) Max(v int64) *IntegerSchema { n.max = &v; return n }

func (n *IntegerSchema) Validate(ctx context.Context, v any) error {
	i, ok := AsInt64(v)
	if !ok {
		return fail(CodeInvalidType, "expected integer")
	}
	if n.hasConst {
		if i != n.constVal {
			return fail(CodeInvalidLiteral, "expected "+strconv.FormatInt(n.constVal, 10))
		}
		return nil
	}
	if len(n.enum) > 0 {
		for _, e := range n.enum {
			if i == e {
				return nil
			}
		}
		return fail(CodeInvalidEnum, "value not in enum")
	}
	if n.min != nil && i < *n.min {
		return fail(CodeTooSmall, fmt.Sprintf("must be >= %d", *n.min))
	}
	if n.max != nil && i > *n.max {
		return fail(CodeTooBig, fmt.Sprintf("must be <= %d", *n.max))
	}
	return nil
}

// AsInt64 converts the JSON-shaped numeric kinds to int64, rejecting
// fractional floats.
func AsInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int64:
		return t, true
	case float64:
		if math.Trunc(t) != t {
			return 0, false
		}
		return int64(t), true
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// String returns a string validator.
func String() *StringSchema { return &StringSchema{} }

// StringSchema validates strings with the same const/enum precedence as
// IntegerSchema. Lengths are measured in UTF-8 bytes. Format applies exactly
// one additional named check.
type StringSchema struct {
	hasConst   bool
	constVal   string
	enum       []string
	minLen     *int
	maxLen     *int
	formatName string
	formatFn   func(string) bool
}

// Const narrows acceptance to exactly the given literal.
func (s *StringSchema) Const(v string) *StringSchema {
	s.hasConst = true
	s.constVal = v
	return s
}

// Enum restricts acceptance to membership in the given literal set.
func (s *StringSchema) Enum(vals []string) *StringSchema { s.enum = vals; return s }

// Min sets the minimum length in bytes.
func (s *StringSchema) Min(n int) *StringSchema { s.minLen = &n; return s }

// Max sets the maximum length in bytes.
func (s *StringSchema) Max(n int) *StringSchema { s.maxLen = &n; return s }

// Format attaches a named format check.
func (s *StringSchema) Format(name string, fn func(string) bool) *StringSchema {
	s.formatName = name
	s.formatFn = fn
	return s
}

func (s *StringSchema) Validate(ctx context.Context, v any) error {
	t, ok := v.(string)
	if !ok {
		return fail(CodeInvalidType, "expected string")
	}
	if s.hasConst {
		if t != s.constVal {
			return fail(CodeInvalidLiteral, "expected "+strconv.Quote(s.constVal))
		}
		return nil
	}
	if len(s.enum) > 0 {
		for _, e := range s.enum {
			if t == e {
				return nil
			}
		}
		return fail(CodeInvalidEnum, "value not in enum")
	}
	if s.minLen != nil && len(t) < *s.minLen {
		return fail(CodeTooShort, fmt.Sprintf("must be at least %d bytes", *s.minLen))
	}
	if s.maxLen != nil && len(t) > *s.maxLen {
		return fail(CodeTooLong, fmt.Sprintf("must be at most %d bytes", *s.maxLen))
	}
	if s.formatFn != nil && !s.formatFn(t) {
		return fail(CodeInvalidFormat, "invalid "+s.formatName)
	}
	return nil
}

// Bytes returns a byte-sequence validator.
func Bytes() *BytesSchema { return &BytesSchema{} }

// BytesSchema validates raw byte sequences. Anything that is not []byte is
// rejected, including base64 strings and numeric arrays.
type BytesSchema struct {
	minLen *int
	maxLen *int
}

// Min sets the minimum length.
func (b *BytesSchema) Min(n int) *BytesSchema { b.minLen = &n; return b }

// Max sets the maximum length.
func (b *BytesSchema) Max(n int) *BytesSchema { b.maxLen = &n; return b }

func (b *BytesSchema) Validate(ctx context.Context, v any) error {
	t, ok := v.([]byte)
	if !ok {
		return fail(CodeInvalidType, "expected byte sequence")
	}
	if b.minLen != nil && len(t) < *b.minLen {
		return fail(CodeTooShort, fmt.Sprintf("must be at least %d bytes", *b.minLen))
	}
	if b.maxLen != nil && len(t) > *b.maxLen {
		return fail(CodeTooLong, fmt.Sprintf("must be at most %d bytes", *b.maxLen))
	}
	return nil
}
