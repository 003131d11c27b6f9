package openapi

// raw is the generic decoded shape of a YAML or JSON OpenAPI document: a
// tree of maps/slices/scalars. gopkg.in/yaml.v3 decodes both formats into
// this shape since JSON is representable as flow-style YAML.
type raw = map[string]interface{}

// Document is the normalizer's opaque root: the decoded document plus the
// warnings accumulated while resolving schemas.
type Document struct {
	root     raw
	Warnings []ReferenceWarning
}

func (d *Document) paths() raw {
	return asMap(d.root["paths"])
}

func (d *Document) components() raw {
	return asMap(d.root["components"])
}

func (d *Document) componentSchemas() raw {
	return asMap(d.components()["schemas"])
}

func asMap(v interface{}) raw {
	if m, ok := v.(raw); ok {
		return m
	}
	if m, ok := v.(map[string]interface{}); ok {
		return raw(m)
	}
	return raw{}
}

func asSlice(v interface{}) []interface{} {
	if s, ok := v.([]interface{}); ok {
		return s
	}
	return nil
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v interface{}, def bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return def
}
