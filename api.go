package lexema

import (
	"fmt"
	"sort"

	"github.com/reoring/lexema/valid"
)

// Format selects the acceptance mode for blob references and record
// wrapping.
type Format int

const (
	// FormatSDK is the permissive structural mode for already-deserialized
	// host values. Default.
	FormatSDK Format = iota
	// FormatWire is the strict discriminated mode for on-the-wire JSON. It
	// also injects the literal $type property into record validators.
	FormatWire
)

func (f Format) String() string {
	switch f {
	case FormatWire:
		return "wire"
	default:
		return "sdk"
	}
}

// Options bundles compilation options. The zero value compiles in sdk format
// with no external refs.
type Options struct {
	// ExternalRefs maps ref strings (bare "ns" or "ns#def") to pre-built
	// validators consulted before local resolution.
	ExternalRefs map[string]valid.Validator
	// Format selects blob-reference and record-wrapping behavior.
	Format Format
}

// EndpointBundle holds the validators of one endpoint definition. Fields not
// applicable to the endpoint's kind are nil: queries carry Parameters and
// Output, procedures add Input, subscriptions carry Parameters and Message.
type EndpointBundle struct {
	Type       Kind
	Parameters valid.Validator
	Input      valid.Validator
	Output     valid.Validator
	Message    valid.Validator
}

// CompileDataTypes compiles every data-type definition of the document into
// a validator, keyed by def name. Endpoint definitions are skipped entirely.
// Fatal structural errors abort the compilation with no partial map;
// unresolved external references are returned as diagnostics.
func CompileDataTypes(doc *Document, opt Options) (map[string]valid.Validator, []Diagnostic, error) {
	c, err := newCompiler(doc, opt)
	if err != nil {
		return nil, nil, err
	}
	out := make(map[string]valid.Validator, len(doc.Defs))
	for _, name := range sortedDefNames(doc) {
		node := doc.Defs[name]
		if node == nil {
			return nil, nil, fmt.Errorf("def %q is empty: %w", name, ErrMalformedNode)
		}
		if node.Type.IsEndpoint() {
			continue
		}
		v, err := c.compileDef(name, node)
		if err != nil {
			return nil, nil, fmt.Errorf("def %q: %w", name, err)
		}
		out[name] = v
	}
	return out, c.diags, nil
}

// CompileEndpoints compiles every query, procedure and subscription
// definition of the document into an EndpointBundle, keyed by def name.
// Data-type definitions are skipped entirely.
func CompileEndpoints(doc *Document, opt Options) (map[string]*EndpointBundle, []Diagnostic, error) {
	c, err := newCompiler(doc, opt)
	if err != nil {
		return nil, nil, err
	}
	out := make(map[string]*EndpointBundle, len(doc.Defs))
	for _, name := range sortedDefNames(doc) {
		node := doc.Defs[name]
		if node == nil {
			return nil, nil, fmt.Errorf("def %q is empty: %w", name, ErrMalformedNode)
		}
		if !node.Type.IsEndpoint() {
			continue
		}
		b, err := c.buildEndpoint(node)
		if err != nil {
			return nil, nil, fmt.Errorf("def %q: %w", name, err)
		}
		out[name] = b
	}
	return out, c.diags, nil
}

// sortedDefNames returns def names in ascending order so compilation order,
// caching and diagnostics are deterministic.
func sortedDefNames(doc *Document) []string {
	names := make([]string, 0, len(doc.Defs))
	for name := range doc.Defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
