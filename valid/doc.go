// Package valid is the validator runtime the lexicon compiler composes into.
//
// It provides:
//
//   - The Validator capability: decide accept/reject for an untyped value and,
//     on reject, return structured Issues (JSON Pointer, code, message).
//   - Primitive builders (Bool, Integer, String, Bytes) with chained
//     constraint options.
//   - Composite builders (Array, Object, Union) plus the Optional, Nullable,
//     Literal, Predicate, Any, Never and Lazy combinators.
//
// Values are the generic JSON-shaped representation: bool, numeric kinds,
// string, []byte, []any, map[string]any and nil. Validators never mutate the
// value and never mutate themselves after construction, so a built validator
// is safe for concurrent use.
package valid
