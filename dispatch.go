package lexema

import (
	"fmt"

	"github.com/reoring/lexema/valid"
)

// buildNode routes a schema node to the builder for its kind. This is the
// spine every composite builder calls back into for nested types. Every kind
// of the recognized set is enumerated; an unlisted tag is ErrUnknownKind and
// a structurally unusable node is ErrMalformedNode.
func (c *compiler) buildNode(n *SchemaNode) (valid.Validator, error) {
	if n == nil {
		return nil, fmt.Errorf("nil node: %w", ErrMalformedNode)
	}
	if n.Type == "" {
		return nil, fmt.Errorf("node missing kind tag: %w", ErrMalformedNode)
	}
	switch n.Type {
	case KindBoolean:
		return c.buildBoolean(n)
	case KindInteger:
		return c.buildInteger(n)
	case KindString:
		return c.buildString(n)
	case KindUnknown:
		return valid.Any(), nil
	case KindBytes:
		return c.buildBytes(n), nil
	case KindBlob:
		return c.buildBlob(), nil
	case KindCIDLink:
		return cidLinkValidator(), nil
	case KindToken:
		return tokenValidator(), nil
	case KindArray:
		return c.buildArray(n)
	case KindObject:
		return c.buildObject(n, nil)
	case KindRef:
		return c.resolveRef(n.Ref)
	case KindUnion:
		return c.buildUnion(n)
	case KindRecord:
		// A record definition is its record body for validation purposes.
		return c.buildObject(n.Record, nil)
	case KindParams:
		return c.buildParams(n)
	case KindQuery, KindProcedure, KindSubscription:
		return nil, fmt.Errorf("%s definition is not a value schema: %w", n.Type, ErrMalformedNode)
	default:
		return nil, fmt.Errorf("%q: %w", string(n.Type), ErrUnknownKind)
	}
}

// buildUnion builds an ordered untagged alternation over the node's refs.
// Zero refs deliberately dead-end into a reject-everything validator; one
// ref collapses to the (lazily resolved) ref itself.
func (c *compiler) buildUnion(n *SchemaNode) (valid.Validator, error) {
	branches := make([]valid.Validator, 0, len(n.Refs))
	for _, ref := range n.Refs {
		b, err := c.resolveRef(ref)
		if err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return valid.Union(branches...), nil
}
