package openapi

import (
	"github.com/viant/depgraph/model"
)

// Options configures operation extraction; IgnoreSegments implements the
// resource_type configuration hook (see SPEC_FULL §6.4 / design notes Open
// Question on query-only endpoints).
type Options struct {
	IgnoreSegments map[string]bool
}

// Extract turns a normalized Document into the operation model: one
// Operation per path x method pair, per spec §4.1.
func Extract(doc *Document, opts Options) ([]*model.Operation, error) {
	paths := doc.paths()
	if len(paths) == 0 {
		return nil, newInputError("document has no paths")
	}

	seen := map[string]bool{}
	var ops []*model.Operation

	for path, pathItemRaw := range paths {
		pathItem := asMap(pathItemRaw)
		for _, method := range model.Methods {
			opRaw, ok := pathItem[lowerMethod(method)]
			if !ok {
				continue
			}
			op := extractOperation(doc, path, method, asMap(opRaw), opts)
			if seen[op.ID] {
				return nil, newOperationIDCollision(op.ID)
			}
			seen[op.ID] = true
			ops = append(ops, op)
		}
	}
	return ops, nil
}

func lowerMethod(m model.Method) string {
	s := string(m)
	b := make([]byte, len(s))
	for i, c := range []byte(s) {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}

func extractOperation(doc *Document, path string, method model.Method, opRaw raw, opts Options) *model.Operation {
	id, _ := asString(opRaw["operationId"])
	if id == "" {
		id = model.DefaultOperationID(method, path)
	}

	op := model.NewOperation(id, method, path)
	op.ResourceType = model.ResourceTypeOf(path, opts.IgnoreSegments)

	for _, p := range asSlice(opRaw["parameters"]) {
		param := extractParameter(asMap(p))
		op.Parameters = append(op.Parameters, param)
		op.Consumes[param.Name] = true
		if param.In == "path" {
			op.PathParams[param.Name] = true
		}
	}

	if body := asMap(opRaw["requestBody"]); len(body) > 0 {
		for _, names := range schemaNamesByContent(doc, asMap(body["content"])) {
			for n := range names {
				op.Consumes[n] = true
			}
		}
	}

	for _, respRaw := range asMap(opRaw["responses"]) {
		resp := asMap(respRaw)
		for _, names := range schemaNamesByContent(doc, asMap(resp["content"])) {
			for n := range names {
				op.Produces[n] = true
			}
		}
	}

	op.Security = extractSecurity(asSlice(opRaw["security"]))
	for _, t := range asSlice(opRaw["tags"]) {
		if s, ok := asString(t); ok {
			op.Tags = append(op.Tags, s)
		}
	}

	return op
}

func schemaNamesByContent(doc *Document, content raw) []map[string]bool {
	var out []map[string]bool
	for _, mediaRaw := range content {
		media := asMap(mediaRaw)
		schema := asMap(media["schema"])
		out = append(out, doc.extractSchemaNames(schema))
	}
	return out
}

func extractParameter(p raw) model.Parameter {
	name, _ := asString(p["name"])
	in, _ := asString(p["in"])
	param := model.Parameter{
		Name:     name,
		In:       in,
		Required: asBool(p["required"], in == "path"),
		Example:  p["example"],
	}
	schema := asMap(p["schema"])
	if enum := asSlice(schema["enum"]); len(enum) > 0 {
		param.Enum = enum
	}
	return param
}

func extractSecurity(list []interface{}) []model.SecurityRequirement {
	var out []model.SecurityRequirement
	for _, entry := range list {
		req := model.SecurityRequirement{}
		for scheme, scopesRaw := range asMap(entry) {
			var scopes []string
			for _, s := range asSlice(scopesRaw) {
				if str, ok := asString(s); ok {
					scopes = append(scopes, str)
				}
			}
			req[scheme] = scopes
		}
		out = append(out, req)
	}
	return out
}
