package lexema

import (
	"fmt"

	"github.com/reoring/lexema/valid"
)

// compiler carries the state of one compilation call: the document, the
// options, the resolution cache and the collected diagnostics. It is created
// per entry-point call and discarded at the end; nothing is shared across
// compilations.
type compiler struct {
	doc   *Document
	opt   Options
	cache map[string]valid.Validator // resolved "ns#def" key -> validator
	diags []Diagnostic
}

func newCompiler(doc *Document, opt Options) (*compiler, error) {
	if doc == nil || doc.ID == "" {
		return nil, fmt.Errorf("document with a namespaced id required: %w", ErrInvalidDocument)
	}
	return &compiler{
		doc:   doc,
		opt:   opt,
		cache: map[string]valid.Validator{},
	}, nil
}

// compileDef compiles one data-type definition. Resolution goes through the
// ref cache so defs referencing each other share one validator instance. In
// wire format a record def is re-wrapped to require a literal $type property
// equal to the def's fully qualified name; refs to the def keep using the
// unwrapped validator.
func (c *compiler) compileDef(name string, node *SchemaNode) (valid.Validator, error) {
	v, err := c.resolveRef("#" + name)
	if err != nil {
		return nil, err
	}
	if node.Type == KindRecord && c.opt.Format == FormatWire {
		return c.buildObject(node.Record, map[string]valid.Validator{
			"$type": valid.Literal(c.qualifiedName(name)),
		})
	}
	return v, nil
}

// qualifiedName returns the def's fully qualified name: the document id for
// "main", id#name otherwise.
func (c *compiler) qualifiedName(name string) string {
	if name == "main" {
		return c.doc.ID
	}
	return c.doc.ID + "#" + name
}
