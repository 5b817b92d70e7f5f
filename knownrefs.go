package lexema

import "github.com/reoring/lexema/valid"

// KnownExternalRefs returns a ready-made external-ref fragment for common
// cross-namespace shapes: the strong-reference object {uri, cid} (registered
// under both its bare namespace and the #main form) and the self-label
// wrappers. Callers may merge it into Options.ExternalRefs; nothing consults
// it implicitly.
func KnownExternalRefs() map[string]valid.Validator {
	strongRef := valid.Object().
		Field("uri", valid.String()).
		Field("cid", valid.String())
	selfLabel := valid.Object().
		Field("val", valid.String())
	selfLabels := valid.Object().
		Field("values", valid.Array(selfLabel))
	return map[string]valid.Validator{
		"com.atproto.repo.strongRef":        strongRef,
		"com.atproto.repo.strongRef#main":   strongRef,
		"com.atproto.label.defs#selfLabel":  selfLabel,
		"com.atproto.label.defs#selfLabels": selfLabels,
	}
}
