package lexema

import (
	"fmt"
	"strings"

	"github.com/reoring/lexema/valid"
)

// resolveRef resolves a reference string to a validator.
//
// Grammar: "#name" is a local def in the current document, "ns" is shorthand
// for "ns#main", "ns#name" is fully qualified. Lookup order: the
// per-compilation cache, the caller-supplied external registry (original ref
// string first, then the normalized key), then the current document's defs.
// A reference into a foreign namespace with no registry entry is non-fatal:
// it resolves to an accept-any validator and records a diagnostic. A local
// name that does not exist is fatal.
func (c *compiler) resolveRef(ref string) (valid.Validator, error) {
	ns, name, err := splitRef(ref, c.doc.ID)
	if err != nil {
		return nil, err
	}
	key := ns + "#" + name

	if v, ok := c.cache[key]; ok {
		return v, nil
	}
	if ext := c.opt.ExternalRefs; ext != nil {
		if v, ok := ext[ref]; ok {
			c.cache[key] = v
			return v, nil
		}
		if v, ok := ext[key]; ok {
			c.cache[key] = v
			return v, nil
		}
	}
	if ns != c.doc.ID {
		// Unresolved external reference. Tolerated so evolving cross-document
		// schemas keep compiling when the caller did not supply the def.
		v := valid.Any()
		c.cache[key] = v
		c.diags = append(c.diags, Diagnostic{
			Code:    DiagUnresolvedExternalRef,
			Ref:     key,
			Message: "no validator supplied for external ref " + key,
		})
		return v, nil
	}

	node, ok := c.doc.Defs[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", key, ErrRefNotFound)
	}
	// Publish a lazy cell before building so a cycle through this key
	// terminates at the cache instead of recursing forever.
	cell := valid.NewLazy()
	c.cache[key] = cell
	built, err := c.buildNode(node)
	if err != nil {
		delete(c.cache, key)
		return nil, err
	}
	cell.Bind(built)
	return cell, nil
}

// splitRef normalizes a ref string into its namespace and def name.
func splitRef(ref, currentID string) (ns, name string, err error) {
	switch {
	case ref == "":
		return "", "", fmt.Errorf("empty ref: %w", ErrMalformedNode)
	case strings.HasPrefix(ref, "#"):
		ns, name = currentID, ref[1:]
	default:
		i := strings.IndexByte(ref, '#')
		if i < 0 {
			ns, name = ref, "main"
		} else {
			ns, name = ref[:i], ref[i+1:]
		}
	}
	if ns == "" || name == "" || strings.Contains(name, "#") {
		return "", "", fmt.Errorf("ref %q: %w", ref, ErrMalformedNode)
	}
	return ns, name, nil
}
