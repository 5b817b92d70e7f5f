package lexema

import (
	"fmt"

	"github.com/reoring/lexema/syntax"
	"github.com/reoring/lexema/valid"
)

func (c *compiler) buildBoolean(n *SchemaNode) (valid.Validator, error) {
	b := valid.Bool()
	if n.Const != nil {
		cv, ok := n.Const.(bool)
		if !ok {
			return nil, fmt.Errorf("boolean const must be a boolean: %w", ErrMalformedNode)
		}
		b.Const(cv)
	}
	return b, nil
}

func (c *compiler) buildInteger(n *SchemaNode) (valid.Validator, error) {
	i := valid.Integer()
	if n.Const != nil {
		cv, ok := valid.AsInt64(n.Const)
		if !ok {
			return nil, fmt.Errorf("integer const must be an integer: %w", ErrMalformedNode)
		}
		i.Const(cv)
	}
	if len(n.Enum) > 0 {
		vals := make([]int64, 0, len(n.Enum))
		for _, e := range n.Enum {
			ev, ok := valid.AsInt64(e)
			if !ok {
				return nil, fmt.Errorf("integer enum entry must be an integer: %w", ErrMalformedNode)
			}
			vals = append(vals, ev)
		}
		i.Enum(vals)
	}
	if n.Minimum != nil {
		i.Min(*n.Minimum)
	}
	if n.Maximum != nil {
		i.Max(*n.Maximum)
	}
	return i, nil
}

func (c *compiler) buildString(n *SchemaNode) (valid.Validator, error) {
	s := valid.String()
	if n.Const != nil {
		cv, ok := n.Const.(string)
		if !ok {
			return nil, fmt.Errorf("string const must be a string: %w", ErrMalformedNode)
		}
		s.Const(cv)
	}
	if len(n.Enum) > 0 {
		vals := make([]string, 0, len(n.Enum))
		for _, e := range n.Enum {
			ev, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("string enum entry must be a string: %w", ErrMalformedNode)
			}
			vals = append(vals, ev)
		}
		s.Enum(vals)
	}
	if n.MinLength != nil {
		s.Min(*n.MinLength)
	}
	if n.MaxLength != nil {
		s.Max(*n.MaxLength)
	}
	if n.Format != "" {
		fn, ok := formatCheck(n.Format)
		if !ok {
			return nil, fmt.Errorf("unrecognized string format %q: %w", n.Format, ErrMalformedNode)
		}
		s.Format(n.Format, fn)
	}
	return s, nil
}

func (c *compiler) buildBytes(n *SchemaNode) valid.Validator {
	b := valid.Bytes()
	if n.MinLength != nil {
		b.Min(*n.MinLength)
	}
	if n.MaxLength != nil {
		b.Max(*n.MaxLength)
	}
	return b
}

// formatCheck maps a format name to its checker. Each format is exactly one
// additional acceptance check on top of the plain string constraints.
func formatCheck(name string) (func(string) bool, bool) {
	switch name {
	case "datetime":
		return syntax.IsDatetime, true
	case "uri":
		return syntax.IsURI, true
	case "at-uri":
		return syntax.IsATURI, true
	case "did":
		return syntax.IsDID, true
	case "handle":
		return syntax.IsHandle, true
	case "at-identifier":
		return syntax.IsATIdentifier, true
	case "nsid":
		return syntax.IsNSID, true
	case "cid":
		return syntax.IsCID, true
	case "tid":
		return syntax.IsTID, true
	case "record-key":
		return syntax.IsRecordKey, true
	case "language":
		return syntax.IsLanguage, true
	default:
		return nil, false
	}
}
