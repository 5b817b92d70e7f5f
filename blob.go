package lexema

import "github.com/reoring/lexema/valid"

// buildBlob selects the blob-reference check for the active format. Both
// modes also accept the legacy untyped shape {cid, mimeType}, recognized by
// the absence of a $type discriminator. The reference is validated
// structurally only; blob bytes are never inspected.
func (c *compiler) buildBlob() valid.Validator {
	if c.opt.Format == FormatWire {
		return valid.Predicate(valid.CodeInvalidType, "expected blob ref", isWireBlob)
	}
	return valid.Predicate(valid.CodeInvalidType, "expected blob ref", isSDKBlob)
}

// isWireBlob requires the explicit discriminated shape
// {$type: "blob", ref: {$link}, mimeType, size}.
func isWireBlob(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if _, tagged := m["$type"]; !tagged {
		return isLegacyBlob(m)
	}
	if t, _ := m["$type"].(string); t != "blob" {
		return false
	}
	ref, ok := m["ref"].(map[string]any)
	if !ok || !isCIDLink(ref) {
		return false
	}
	if _, ok := m["mimeType"].(string); !ok {
		return false
	}
	return isNumber(m["size"])
}

// isSDKBlob is the duck-typed structural check: a ref-like object field plus
// string mimeType and numeric size. Richer host-side blob handles pass as
// long as they expose those three fields, and so does the wire shape, whose
// non-discriminator fields satisfy the same predicate.
func isSDKBlob(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if _, tagged := m["$type"]; !tagged {
		if isLegacyBlob(m) {
			return true
		}
	}
	if _, ok := m["ref"].(map[string]any); !ok {
		return false
	}
	if _, ok := m["mimeType"].(string); !ok {
		return false
	}
	return isNumber(m["size"])
}

// isLegacyBlob matches the historical untyped shape {cid, mimeType}.
func isLegacyBlob(m map[string]any) bool {
	if _, ok := m["cid"].(string); !ok {
		return false
	}
	_, ok := m["mimeType"].(string)
	return ok
}

func isCIDLink(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	_, ok = m["$link"].(string)
	return ok
}

func isNumber(v any) bool {
	_, ok := valid.AsInt64(v)
	if ok {
		return true
	}
	_, ok = v.(float64)
	return ok
}

// cidLinkValidator accepts {$link: string}; nothing else is inspected.
func cidLinkValidator() valid.Validator {
	return valid.Predicate(valid.CodeInvalidType, "expected cid-link", isCIDLink)
}

// tokenValidator accepts any string. The specific token literal is
// informational and not enforced at validation time.
func tokenValidator() valid.Validator {
	return valid.Predicate(valid.CodeInvalidType, "expected token string", func(v any) bool {
		_, ok := v.(string)
		return ok
	})
}
