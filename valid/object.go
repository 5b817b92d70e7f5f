package valid

import (
	"context"
	"sort"
)

// Object returns an object validator. Declared fields are required unless
// wrapped with Optional; unknown keys are ignored. An object with no declared
// fields accepts any object-shaped value.
func Object() *ObjectSchema {
	return &ObjectSchema{fields: map[string]Validator{}}
}

// ObjectSchema validates map[string]any values property by property.
type ObjectSchema struct {
	fields     map[string]Validator
	sortedKeys []string
}

// Field declares a property validator and returns the schema for chaining.
func (o *ObjectSchema) Field(name string, v Validator) *ObjectSchema {
	o.fields[name] = v
	o.sortedKeys = nil
	return o
}

// sortedFieldKeys returns field names in ascending order for deterministic
// issue ordering.
func (o *ObjectSchema) sortedFieldKeys() []string {
	if o.sortedKeys != nil {
		return o.sortedKeys
	}
	ks := make([]string, 0, len(o.fields))
	for k := range o.fields {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	o.sortedKeys = ks
	return o.sortedKeys
}

func (o *ObjectSchema) Validate(ctx context.Context, v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return fail(CodeInvalidType, "expected object")
	}
	var iss Issues
	for _, k := range o.sortedFieldKeys() {
		fv := o.fields[k]
		val, exists := m[k]
		if !exists {
			if IsOptional(fv) {
				continue
			}
			iss = AppendIssues(iss, Issue{Path: "/" + k, Code: CodeRequired, Message: "required property missing"})
			continue
		}
		if err := fv.Validate(ctx, val); err != nil {
			iss = AppendIssues(iss, rebaseIssues("/"+k, err)...)
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
