package valid

import (
	"context"
	"fmt"
)

// Any returns a validator that accepts everything, including nil.
func Any() Validator { return anySchema{} }

type anySchema struct{}

func (anySchema) Validate(ctx context.Context, v any) error { return nil }

// Never returns a validator that rejects every input.
func Never() Validator { return neverSchema{} }

type neverSchema struct{}

func (neverSchema) Validate(ctx context.Context, v any) error {
	return fail(CodeNoMatch, "no value is accepted")
}

// Literal returns a validator accepting exactly the given scalar value.
// Numeric kinds compare by numeric value, not representation.
func Literal(want any) Validator { return literalSchema{want: want} }

type literalSchema struct{ want any }

func (l literalSchema) Validate(ctx context.Context, v any) error {
	if literalEqual(l.want, v) {
		return nil
	}
	return fail(CodeInvalidLiteral, fmt.Sprintf("expected %v", l.want))
}

func literalEqual(want, got any) bool {
	switch w := want.(type) {
	case nil:
		return got == nil
	case string:
		g, ok := got.(string)
		return ok && g == w
	case bool:
		g, ok := got.(bool)
		return ok && g == w
	default:
		wi, wok := AsInt64(want)
		gi, gok := AsInt64(got)
		return wok && gok && wi == gi
	}
}

// Predicate returns a custom-predicate validator. On reject it produces a
// single issue with the given code and message.
func Predicate(code, message string, fn func(v any) bool) Validator {
	return predicateSchema{code: code, message: message, fn: fn}
}

type predicateSchema struct {
	code    string
	message string
	fn      func(v any) bool
}

func (p predicateSchema) Validate(ctx context.Context, v any) error {
	if p.fn(v) {
		return nil
	}
	return fail(p.code, p.message)
}

// Optional marks a property validator so the enclosing Object accepts the
// property being absent. For present values it delegates unchanged. Wrapping
// an already optional validator is a no-op.
func Optional(v Validator) Validator {
	if _, ok := v.(*optionalSchema); ok {
		return v
	}
	return &optionalSchema{inner: v}
}

// IsOptional reports whether v tolerates absence inside an object.
func IsOptional(v Validator) bool {
	_, ok := v.(*optionalSchema)
	return ok
}

type optionalSchema struct{ inner Validator }

func (s *optionalSchema) Validate(ctx context.Context, v any) error {
	return s.inner.Validate(ctx, v)
}

// Nullable wraps a validator to additionally accept null (nil).
func Nullable(v Validator) Validator { return &nullableSchema{inner: v} }

type nullableSchema struct{ inner Validator }

func (s *nullableSchema) Validate(ctx context.Context, v any) error {
	if v == nil {
		return nil
	}
	return s.inner.Validate(ctx, v)
}

// NewLazy returns an unbound lazy cell. The cell defers dereferencing its
// target until the validator is invoked, so construction of a
// self-referential validator graph always terminates; only value-level checks
// recurse, bounded by the depth of the actual input.
func NewLazy() *LazyCell { return &LazyCell{} }

// LazyCell is a memoized indirection to a validator bound after construction.
// Bind must happen before the first Validate and is not re-entrant.
type LazyCell struct{ target Validator }

// Bind sets the cell's target.
func (c *LazyCell) Bind(v Validator) { c.target = v }

func (c *LazyCell) Validate(ctx context.Context, v any) error {
	if c.target == nil {
		return fail(CodeParseError, "lazy validator was never bound")
	}
	return c.target.Validate(ctx, v)
}

// compile-time interface checks
var (
	_ Validator = (*BoolSchema)(nil)
	_ Validator = (*IntegerSchema)(nil)
	_ Validator = (*StringSchema)(nil)
	_ Validator = (*BytesSchema)(nil)
	_ Validator = (*ArraySchema)(nil)
	_ Validator = (*ObjectSchema)(nil)
	_ Validator = (*unionSchema)(nil)
	_ Validator = (*LazyCell)(nil)
	_ error     = (Issues)(nil)
)
