package lexema

import (
	"fmt"

	"github.com/reoring/lexema/valid"
)

func (c *compiler) buildArray(n *SchemaNode) (valid.Validator, error) {
	if n.Items == nil {
		return nil, fmt.Errorf("array requires items: %w", ErrMalformedNode)
	}
	item, err := c.buildNode(n.Items)
	if err != nil {
		return nil, err
	}
	a := valid.Array(item)
	if n.MinLength != nil {
		a.Min(*n.MinLength)
	}
	if n.MaxLength != nil {
		a.Max(*n.MaxLength)
	}
	return a, nil
}

// buildObject composes an object validator from the node's declared
// properties. Each property validator gets the nullable wrap first (when the
// name is in the nullable set) and the optional wrap second (when the name is
// not in the required set). extra properties are merged in as-is and are
// always required; the record wire wrap uses this for $type.
func (c *compiler) buildObject(n *SchemaNode, extra map[string]valid.Validator) (valid.Validator, error) {
	if n == nil || n.Type != KindObject {
		return nil, fmt.Errorf("object body required: %w", ErrMalformedNode)
	}
	required := nameSet(n.Required)
	nullable := nameSet(n.Nullable)
	o := valid.Object()
	for name, prop := range n.Properties {
		pv, err := c.buildNode(prop)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		if nullable[name] {
			pv = valid.Nullable(pv)
		}
		if !required[name] {
			pv = valid.Optional(pv)
		}
		o.Field(name, pv)
	}
	for name, pv := range extra {
		o.Field(name, pv)
	}
	return o, nil
}

// buildParams composes the shallow parameter validator of an endpoint.
// Parameters know required/optional only; nullable is an object-body-only
// concept. A nil block accepts a missing or empty parameter set.
func (c *compiler) buildParams(n *SchemaNode) (valid.Validator, error) {
	if n == nil {
		return valid.Nullable(valid.Object()), nil
	}
	if n.Type != KindParams {
		return nil, fmt.Errorf("parameters must be a params node: %w", ErrMalformedNode)
	}
	required := nameSet(n.Required)
	o := valid.Object()
	for name, prop := range n.Properties {
		pv, err := c.buildNode(prop)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", name, err)
		}
		if !required[name] {
			pv = valid.Optional(pv)
		}
		o.Field(name, pv)
	}
	return o, nil
}

func nameSet(names []string) map[string]bool {
	if len(names) == 0 {
		return nil
	}
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
