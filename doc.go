// Package lexema compiles declarative lexicon documents into runtime
// validators.
//
// - CompileDataTypes turns a document's data-type definitions into validators
// - CompileEndpoints turns query/procedure/subscription definitions into
//   parameter/input/output/message validator bundles
// - References (local and cross-document) are resolved through a
//   per-compilation cache with lazy indirection, so cyclic definitions
//   compile in finite time
// - Unresolved external references degrade to accept-any validators and are
//   reported as diagnostics alongside the output, never via a global log
//
// Design policy:
// - Keep the compiler and its public API in the root package; the validator
//   runtime lives under valid/ and the string-format checkers under syntax/.
// - Compilation is pure and synchronous: no I/O, no shared state across
//   calls. Compile each document with its own call; the built validators are
//   immutable and safe to share afterwards.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	doc, err := lexema.ReadDocument(data)
//	vs, diags, err := lexema.CompileDataTypes(doc, lexema.Options{
//		ExternalRefs: lexema.KnownExternalRefs(),
//	})
//	err = vs["main"].Validate(ctx, value)
package lexema
