package openapi

import "strings"

// propertyNames recursively collects the dotted-path property names
// reachable from a schema: following $ref, descending into `properties`
// and `items`. Recursive $ref chains are cut at first re-entry (the
// `visiting` set) so cyclic schemas terminate instead of recursing
// forever, per the reader/normalizer contract.
func (d *Document) propertyNames(schema raw, prefix string, visiting map[string]bool, out map[string]bool) {
	if schema == nil {
		return
	}
	if ref, ok := asString(schema["$ref"]); ok {
		resolved, ok := d.resolveRef(ref, visiting)
		if !ok {
			d.Warnings = append(d.Warnings, ReferenceWarning{Pointer: ref, Reason: "unresolved component schema"})
			return
		}
		if visiting[ref] {
			// already on the path to this $ref: cut re-entry to guarantee
			// termination on recursive schemas.
			return
		}
		visiting[ref] = true
		d.propertyNames(resolved, prefix, visiting, out)
		delete(visiting, ref)
		return
	}

	switch t, _ := asString(schema["type"]); t {
	case "array":
		d.propertyNames(asMap(schema["items"]), prefix, visiting, out)
		return
	}

	props := asMap(schema["properties"])
	if len(props) == 0 {
		// schema with no nested properties (scalar, or object with no
		// declared properties): the prefix itself, if any, is the leaf name.
		if prefix != "" {
			out[prefix] = true
		}
		return
	}
	for name, propSchema := range props {
		dotted := name
		if prefix != "" {
			dotted = prefix + "." + name
		}
		out[dotted] = true
		d.propertyNames(asMap(propSchema), dotted, visiting, out)
	}
}

// resolveRef resolves a local `#/components/schemas/Foo` pointer (the only
// ref form OpenAPI v3 documents commonly use for schema reuse). Any other
// form (external file refs, non-schema refs) is reported as unresolved.
func (d *Document) resolveRef(ref string, visiting map[string]bool) (raw, bool) {
	const prefix = "#/components/schemas/"
	if !strings.HasPrefix(ref, prefix) {
		return nil, false
	}
	name := strings.TrimPrefix(ref, prefix)
	schema, ok := d.componentSchemas()[name]
	if !ok {
		return nil, false
	}
	return asMap(schema), true
}

// extractSchemaNames is the entry point used by operation extraction: it
// walks a schema (request body or response content) and returns the
// flattened dotted-path property names it reaches.
func (d *Document) extractSchemaNames(schema raw) map[string]bool {
	out := map[string]bool{}
	d.propertyNames(schema, "", map[string]bool{}, out)
	return out
}
