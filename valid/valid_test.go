package valid_test

import (
	"context"
	"testing"

	"github.com/reoring/lexema/valid"
)

func TestInteger_ConstOverridesEverything(t *testing.T) {
	ctx := context.Background()

	// const wins even when the value violates the range
	n := valid.Integer().Const(5).Min(100)
	if err := n.Validate(ctx, 5); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := n.Validate(ctx, 100); err == nil {
		t.Fatalf("expected invalid_literal for non-const value")
	}
}

func TestInteger_EnumOverridesRange(t *testing.T) {
	ctx := context.Background()

	n := valid.Integer().Enum([]int64{1, 2}).Min(100)
	if err := n.Validate(ctx, int64(2)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := n.Validate(ctx, int64(150)); err == nil {
		t.Fatalf("expected invalid_enum, enum should override range")
	}
}

func TestInteger_RangeAndIntegerness(t *testing.T) {
	ctx := context.Background()

	n := valid.Integer().Min(0).Max(10)
	if err := n.Validate(ctx, float64(7)); err != nil {
		t.Fatalf("integral float should pass: %v", err)
	}
	if err := n.Validate(ctx, float64(7.5)); err == nil {
		t.Fatalf("fractional value must be rejected")
	}
	if err := n.Validate(ctx, int64(11)); err == nil {
		t.Fatalf("expected too_big")
	}
	if err := n.Validate(ctx, "7"); err == nil {
		t.Fatalf("string is not an integer")
	}
}

func TestString_LengthAndFormat(t *testing.T) {
	ctx := context.Background()

	s := valid.String().Min(2).Max(4).Format("upper", func(v string) bool { return v == "AB" || v == "ABC" })
	if err := s.Validate(ctx, "AB"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := s.Validate(ctx, "a"); err == nil {
		t.Fatalf("expected too_short")
	}
	if err := s.Validate(ctx, "toolong"); err == nil {
		t.Fatalf("expected too_long")
	}
	if err := s.Validate(ctx, "ab"); err == nil {
		t.Fatalf("expected invalid_format")
	}
}

func TestBytes_RejectsNonByteSequences(t *testing.T) {
	ctx := context.Background()

	b := valid.Bytes().Max(2)
	if err := b.Validate(ctx, []byte{1, 2}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := b.Validate(ctx, "AQI="); err == nil {
		t.Fatalf("base64 string is not a byte sequence")
	}
	if err := b.Validate(ctx, []any{float64(1), float64(2)}); err == nil {
		t.Fatalf("numeric array is not a byte sequence")
	}
	if err := b.Validate(ctx, []byte{1, 2, 3}); err == nil {
		t.Fatalf("expected too_long")
	}
}

func TestArray_BoundsAndItemPaths(t *testing.T) {
	ctx := context.Background()

	a := valid.Array(valid.String()).Min(1).Max(2)
	if err := a.Validate(ctx, []any{"x"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := a.Validate(ctx, []any{}); err == nil {
		t.Fatalf("expected too_short")
	}
	err := a.Validate(ctx, []any{"ok", float64(1)})
	iss, ok := valid.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("expected exactly one issue, got %v", err)
	}
	if iss[0].Path != "/1" || iss[0].Code != valid.CodeInvalidType {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
}

func TestObject_RequiredAndChildPaths(t *testing.T) {
	ctx := context.Background()

	o := valid.Object().
		Field("name", valid.String()).
		Field("age", valid.Optional(valid.Integer()))
	if err := o.Validate(ctx, map[string]any{"name": "a"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	err := o.Validate(ctx, map[string]any{"age": "old"})
	iss, ok := valid.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("expected two issues, got %v", err)
	}
	if iss[0].Path != "/age" || iss[0].Code != valid.CodeInvalidType {
		t.Fatalf("unexpected issue: %+v", iss[0])
	}
	if iss[1].Path != "/name" || iss[1].Code != valid.CodeRequired {
		t.Fatalf("unexpected issue: %+v", iss[1])
	}
	if err := o.Validate(ctx, "not an object"); err == nil {
		t.Fatalf("expected invalid_type")
	}
}

func TestObject_NoFieldsAcceptsAnyObject(t *testing.T) {
	ctx := context.Background()

	o := valid.Object()
	if err := o.Validate(ctx, map[string]any{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := o.Validate(ctx, map[string]any{"extra": true}); err != nil {
		t.Fatalf("unknown keys are ignored: %v", err)
	}
	if err := o.Validate(ctx, []any{}); err == nil {
		t.Fatalf("expected invalid_type for non-object")
	}
}

func TestUnion_FirstMatchOrder(t *testing.T) {
	ctx := context.Background()

	u := valid.Union(valid.String(), valid.Integer())
	if err := u.Validate(ctx, "x"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := u.Validate(ctx, int64(1)); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := u.Validate(ctx, true); err == nil {
		t.Fatalf("expected no_match")
	}
}

func TestUnion_ZeroAndOneBranch(t *testing.T) {
	ctx := context.Background()

	empty := valid.Union()
	if err := empty.Validate(ctx, "anything"); err == nil {
		t.Fatalf("empty union must reject every value")
	}

	one := valid.Union(valid.String())
	if _, ok := one.(*valid.StringSchema); !ok {
		t.Fatalf("single-branch union should collapse to the branch, got %T", one)
	}
}

func TestNullableAndOptionalWraps(t *testing.T) {
	ctx := context.Background()

	nv := valid.Nullable(valid.String())
	if err := nv.Validate(ctx, nil); err != nil {
		t.Fatalf("nullable must accept nil: %v", err)
	}
	if err := nv.Validate(ctx, "x"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := nv.Validate(ctx, 1); err == nil {
		t.Fatalf("expected invalid_type")
	}

	ov := valid.Optional(valid.String())
	if !valid.IsOptional(ov) {
		t.Fatalf("expected optional wrap to be detectable")
	}
	if valid.IsOptional(valid.Optional(ov)) && ov != valid.Optional(ov) {
		t.Fatalf("double optional wrap should be a no-op")
	}
}

func TestLiteral_NumericEquivalence(t *testing.T) {
	ctx := context.Background()

	l := valid.Literal("blob")
	if err := l.Validate(ctx, "blob"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := l.Validate(ctx, "other"); err == nil {
		t.Fatalf("expected invalid_literal")
	}

	n := valid.Literal(3)
	if err := n.Validate(ctx, float64(3)); err != nil {
		t.Fatalf("numeric literals compare by value: %v", err)
	}
}

func TestLazyCell_BindAndValidate(t *testing.T) {
	ctx := context.Background()

	cell := valid.NewLazy()
	if err := cell.Validate(ctx, "x"); err == nil {
		t.Fatalf("unbound cell must reject")
	}
	cell.Bind(valid.String())
	if err := cell.Validate(ctx, "x"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := valid.Issues{
		{Path: "/a", Code: valid.CodeRequired},
		{Path: "/b", Code: valid.CodeTooLong},
		{Path: "/c", Code: valid.CodeInvalidType},
		{Path: "/d", Code: valid.CodeInvalidType},
	}
	msg := iss.Error()
	if msg == "" || len(msg) < len("required at /a") {
		t.Fatalf("unexpected summary: %q", msg)
	}
}
