package valid

import "context"

// Validator decides whether a value is acceptable. A nil return means accept;
// a reject returns Issues describing every failed check.
type Validator interface {
	Validate(ctx context.Context, v any) error
}

// Is reports whether v conforms to the validator.
func Is(ctx context.Context, s Validator, v any) bool {
	return s.Validate(ctx, v) == nil
}
