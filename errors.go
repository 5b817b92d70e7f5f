package lexema

import "errors"

// Fatal construction-time errors. All of them abort the whole compilation;
// the entry points return no partial output.
var (
	// ErrMalformedNode marks a schema node that is not a well-formed object
	// or lacks a usable kind-specific shape.
	ErrMalformedNode = errors.New("lexema: malformed schema node")

	// ErrUnknownKind marks a kind tag outside the recognized set.
	ErrUnknownKind = errors.New("lexema: unknown schema kind")

	// ErrRefNotFound marks a local reference naming a def that does not exist
	// in the current document.
	ErrRefNotFound = errors.New("lexema: ref not found")

	// ErrInvalidDocument marks a document failing the structural checks of
	// the readers (lexicon version, NSID id).
	ErrInvalidDocument = errors.New("lexema: invalid lexicon document")
)

// Diagnostic codes.
const (
	DiagUnresolvedExternalRef = "unresolved_external_ref"
)

// Diagnostic is a non-fatal compilation event, returned alongside the
// compiled output.
type Diagnostic struct {
	Code    string // one of the Diag* codes
	Ref     string // normalized ns#def key the event concerns
	Message string
}
