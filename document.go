package lexema

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/lexema/syntax"
)

// ReadDocument parses a JSON-encoded lexicon document and applies the
// structural checks of CheckDocument.
func ReadDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("lexema: parse document: %w", err)
	}
	if err := CheckDocument(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadDocumentYAML parses a YAML-authored lexicon document.
func ReadDocumentYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("lexema: parse document: %w", err)
	}
	if err := CheckDocument(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CheckDocument verifies the document envelope: lexicon version 1, an
// NSID-shaped id, and a defs mapping. Individual defs are checked during
// compilation, not here.
func CheckDocument(doc *Document) error {
	if doc == nil {
		return fmt.Errorf("nil document: %w", ErrInvalidDocument)
	}
	if doc.Lexicon != 1 {
		return fmt.Errorf("unsupported lexicon version %d: %w", doc.Lexicon, ErrInvalidDocument)
	}
	if !syntax.IsNSID(doc.ID) {
		return fmt.Errorf("id %q is not an NSID: %w", doc.ID, ErrInvalidDocument)
	}
	if doc.Defs == nil {
		return fmt.Errorf("defs mapping required: %w", ErrInvalidDocument)
	}
	return nil
}
