package valid

import (
	"context"
	"fmt"
	"strconv"
)

// Array returns an array validator with the given item validator.
func Array(item Validator) *ArraySchema {
	return &ArraySchema{item: item, minLen: -1, maxLen: -1}
}

// ArraySchema validates []any values. Length bounds are runtime checks on the
// value, never construction-time failures.
type ArraySchema struct {
	item   Validator
	minLen int
	maxLen int
}

// Min sets the minimum length.
func (a *ArraySchema) Min(n int) *ArraySchema { a.minLen = n; return a }

// Max sets the maximum length.
func (a *ArraySchema) Max(n int) *ArraySchema { a.maxLen = n; return a }

func (a *ArraySchema) Validate(ctx context.Context, v any) error {
	items, ok := v.([]any)
	if !ok {
		return fail(CodeInvalidType, "expected array")
	}
	var iss Issues
	if a.minLen >= 0 && len(items) < a.minLen {
		iss = AppendIssues(iss, Issue{Path: "/", Code: CodeTooShort, Message: fmt.Sprintf("must have at least %d items", a.minLen)})
	}
	if a.maxLen >= 0 && len(items) > a.maxLen {
		iss = AppendIssues(iss, Issue{Path: "/", Code: CodeTooLong, Message: fmt.Sprintf("must have at most %d items", a.maxLen)})
	}
	for i, it := range items {
		if err := a.item.Validate(ctx, it); err != nil {
			iss = AppendIssues(iss, rebaseIssues("/"+strconv.Itoa(i), err)...)
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
