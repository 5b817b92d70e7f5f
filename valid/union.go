package valid

import "context"

// Union returns an ordered untagged alternation over the given branches. A
// value is accepted iff at least one branch, tried in declared order, accepts
// it; no discriminant field is consulted, so ambiguous inputs silently take
// the first match. Zero branches yield a validator that rejects every input;
// one branch is returned as-is with no union wrapper.
func Union(branches ...Validator) Validator {
	switch len(branches) {
	case 0:
		return Never()
	case 1:
		return branches[0]
	default:
		return &unionSchema{branches: branches}
	}
}

type unionSchema struct {
	branches []Validator
}

func (u *unionSchema) Validate(ctx context.Context, v any) error {
	for _, b := range u.branches {
		if b.Validate(ctx, v) == nil {
			return nil
		}
	}
	return fail(CodeNoMatch, "no union branch accepted the value")
}
