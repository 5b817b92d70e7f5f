package lexema_test

import (
	"context"
	"testing"

	lexema "github.com/reoring/lexema"
)

func TestCompileEndpoints_Bundles(t *testing.T) {
	ctx := context.Background()

	doc := &lexema.Document{
		Lexicon: 1,
		ID:      "ex.app.feed",
		Defs: map[string]*lexema.SchemaNode{
			"post": {
				Type:       lexema.KindObject,
				Required:   []string{"text"},
				Properties: map[string]*lexema.SchemaNode{"text": strNode()},
			},
			"getFeed": {
				Type: lexema.KindQuery,
				Parameters: &lexema.SchemaNode{
					Type:     lexema.KindParams,
					Required: []string{"limit"},
					Properties: map[string]*lexema.SchemaNode{
						"limit":  {Type: lexema.KindInteger},
						"cursor": strNode(),
					},
				},
				Output: &lexema.EndpointBody{
					Encoding: "application/json",
					Schema: &lexema.SchemaNode{
						Type: lexema.KindObject,
						Properties: map[string]*lexema.SchemaNode{
							"posts": {
								Type:  lexema.KindArray,
								Items: &lexema.SchemaNode{Type: lexema.KindRef, Ref: "#post"},
							},
						},
					},
				},
			},
			"createPost": {
				Type: lexema.KindProcedure,
				Input: &lexema.EndpointBody{
					Encoding: "application/json",
					Schema:   &lexema.SchemaNode{Type: lexema.KindRef, Ref: "#post"},
				},
			},
			"subscribe": {
				Type:    lexema.KindSubscription,
				Message: &lexema.EndpointBody{Schema: &lexema.SchemaNode{Type: lexema.KindRef, Ref: "#post"}},
			},
		},
	}

	bundles, diags, err := lexema.CompileEndpoints(doc, lexema.Options{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(bundles) != 3 {
		t.Fatalf("data-type defs must be skipped, got %v", bundles)
	}

	q := bundles["getFeed"]
	if q.Type != lexema.KindQuery || q.Parameters == nil || q.Output == nil {
		t.Fatalf("query bundle incomplete: %+v", q)
	}
	if q.Input != nil || q.Message != nil {
		t.Fatalf("query must not carry input or message: %+v", q)
	}
	if err := q.Parameters.Validate(ctx, map[string]any{"limit": int64(10)}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := q.Parameters.Validate(ctx, map[string]any{"cursor": "abc"}); err == nil {
		t.Fatalf("missing required parameter must be rejected")
	}
	if err := q.Output.Validate(ctx, map[string]any{"posts": []any{map[string]any{"text": "hi"}}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	p := bundles["createPost"]
	if p.Type != lexema.KindProcedure || p.Input == nil || p.Output == nil {
		t.Fatalf("procedure bundle incomplete: %+v", p)
	}
	// a body without a declared schema accepts anything
	if err := p.Output.Validate(ctx, 42); err != nil {
		t.Fatalf("schemaless body must accept any value: %v", err)
	}
	if err := p.Input.Validate(ctx, map[string]any{}); err == nil {
		t.Fatalf("input schema must be enforced")
	}
	// a nil parameter block accepts missing params
	if err := p.Parameters.Validate(ctx, nil); err != nil {
		t.Fatalf("absent parameters accepted: %v", err)
	}

	s := bundles["subscribe"]
	if s.Type != lexema.KindSubscription || s.Message == nil {
		t.Fatalf("subscription bundle incomplete: %+v", s)
	}
	if s.Input != nil || s.Output != nil {
		t.Fatalf("subscription must not carry input or output: %+v", s)
	}
	if err := s.Message.Validate(ctx, map[string]any{"text": "hi"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestCompileDataTypes_SkipsEndpoints(t *testing.T) {
	doc := &lexema.Document{
		Lexicon: 1,
		ID:      "ex.app.feed",
		Defs: map[string]*lexema.SchemaNode{
			"getFeed": {Type: lexema.KindQuery},
			"post":    {Type: lexema.KindObject},
		},
	}
	vs, _, err := lexema.CompileDataTypes(doc, lexema.Options{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := vs["getFeed"]; ok {
		t.Fatalf("endpoint def must not appear among data types")
	}
	if _, ok := vs["post"]; !ok {
		t.Fatalf("data-type def missing")
	}
}

func TestCompile_EndpointKindInsideValuePosition(t *testing.T) {
	doc := &lexema.Document{
		Lexicon: 1,
		ID:      "ex.app.bad",
		Defs: map[string]*lexema.SchemaNode{
			"main": {
				Type: lexema.KindObject,
				Properties: map[string]*lexema.SchemaNode{
					"q": {Type: lexema.KindQuery},
				},
			},
		},
	}
	_, _, err := lexema.CompileDataTypes(doc, lexema.Options{})
	if err == nil {
		t.Fatalf("endpoint kind nested in a value schema must be fatal")
	}
}
