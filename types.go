package lexema

// Kind is the tag of a schema node variant.
type Kind string

// The recognized kind set. The dispatcher enumerates every kind explicitly;
// anything outside this set fails compilation with ErrUnknownKind.
const (
	KindBoolean      Kind = "boolean"
	KindInteger      Kind = "integer"
	KindString       Kind = "string"
	KindUnknown      Kind = "unknown"
	KindBytes        Kind = "bytes"
	KindBlob         Kind = "blob"
	KindCIDLink      Kind = "cid-link"
	KindToken        Kind = "token"
	KindArray        Kind = "array"
	KindObject       Kind = "object"
	KindRef          Kind = "ref"
	KindUnion        Kind = "union"
	KindRecord       Kind = "record"
	KindParams       Kind = "params"
	KindQuery        Kind = "query"
	KindProcedure    Kind = "procedure"
	KindSubscription Kind = "subscription"
)

// IsEndpoint reports whether the kind describes an RPC-style operation
// rather than a storable value shape.
func (k Kind) IsEndpoint() bool {
	return k == KindQuery || k == KindProcedure || k == KindSubscription
}

// SchemaNode is a tagged variant over the kind set. Fields are kind-specific;
// unrelated fields are ignored by the builders.
type SchemaNode struct {
	Type        Kind   `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// boolean / integer / string
	Const   any    `json:"const,omitempty" yaml:"const,omitempty"`
	Enum    []any  `json:"enum,omitempty" yaml:"enum,omitempty"`
	Minimum *int64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum *int64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`

	// string / bytes / array
	MinLength *int   `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Format    string `json:"format,omitempty" yaml:"format,omitempty"`

	// blob; informational only, blob bytes are never inspected
	Accept  []string `json:"accept,omitempty" yaml:"accept,omitempty"`
	MaxSize *int64   `json:"maxSize,omitempty" yaml:"maxSize,omitempty"`

	// array
	Items *SchemaNode `json:"items,omitempty" yaml:"items,omitempty"`

	// object / params
	Properties map[string]*SchemaNode `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required   []string               `json:"required,omitempty" yaml:"required,omitempty"`
	Nullable   []string               `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	// ref / union
	Ref    string   `json:"ref,omitempty" yaml:"ref,omitempty"`
	Refs   []string `json:"refs,omitempty" yaml:"refs,omitempty"`
	Closed bool     `json:"closed,omitempty" yaml:"closed,omitempty"`

	// record
	Key    string      `json:"key,omitempty" yaml:"key,omitempty"`
	Record *SchemaNode `json:"record,omitempty" yaml:"record,omitempty"`

	// query / procedure / subscription
	Parameters *SchemaNode   `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Input      *EndpointBody `json:"input,omitempty" yaml:"input,omitempty"`
	Output     *EndpointBody `json:"output,omitempty" yaml:"output,omitempty"`
	Message    *EndpointBody `json:"message,omitempty" yaml:"message,omitempty"`
}

// EndpointBody describes an input, output or message block of an endpoint
// definition.
type EndpointBody struct {
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Encoding    string      `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Schema      *SchemaNode `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// Document is a lexicon document: one or more named definitions under a
// namespaced identifier.
type Document struct {
	Lexicon     int                    `json:"lexicon" yaml:"lexicon"`
	ID          string                 `json:"id" yaml:"id"`
	Revision    *int                   `json:"revision,omitempty" yaml:"revision,omitempty"`
	Description string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Defs        map[string]*SchemaNode `json:"defs" yaml:"defs"`
}

// MainDef returns the document's primary definition, or nil.
func (d *Document) MainDef() *SchemaNode {
	if d == nil {
		return nil
	}
	return d.Defs["main"]
}
