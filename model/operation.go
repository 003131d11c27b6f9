package model

import (
	"sort"
	"strings"
)

// Verified is a tri-state set by the optional dynamic-update layer.
type Verified int

const (
	VerifiedUnknown Verified = iota
	VerifiedTrue
	VerifiedFalse
)

// SecurityRequirement mirrors a single entry of an OpenAPI `security` array:
// scheme name to the list of required scopes.
type SecurityRequirement map[string][]string

// Operation is one HTTP method at one path in the source document. It is
// immutable per build except for Annotations and, through the optional
// dynamic layer, Produces/Consumes.
type Operation struct {
	ID           string
	Method       Method
	Path         string
	ResourceType string // "" means unset

	Consumes   map[string]bool
	Produces   map[string]bool
	PathParams map[string]bool

	Parameters []Parameter
	Security   []SecurityRequirement
	Tags       []string

	Annotations map[string]interface{}
}

// Parameter is a named, located input to an operation.
type Parameter struct {
	Name     string
	In       string // path, query, header, cookie
	Required bool
	Example  interface{}
	Enum     []interface{}
}

// NewOperation returns an Operation with initialized maps, ready for
// extraction to populate.
func NewOperation(id string, method Method, path string) *Operation {
	return &Operation{
		ID:          id,
		Method:      method,
		Path:        path,
		Consumes:    map[string]bool{},
		Produces:    map[string]bool{},
		PathParams:  map[string]bool{},
		Annotations: map[string]interface{}{},
	}
}

// IsInteresting reports whether this operation is surfaced to downstream
// test tooling: POST, PUT, or a GET with path parameters.
func (o *Operation) IsInteresting() bool {
	if o.Method == POST || o.Method == PUT {
		return true
	}
	return o.Method == GET && len(o.PathParams) > 0
}

// Param looks up a declared parameter by name.
func (o *Operation) Param(name string) (Parameter, bool) {
	for _, p := range o.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

// IsTerminal reports whether the operation was annotated terminal (e.g. a
// logout) by the logical analyzer.
func (o *Operation) IsTerminal() bool {
	v, _ := o.Annotations["terminal"].(bool)
	return v
}

// HasKeyword reports whether any of the keywords substring-match (case
// insensitively) operation_id, path, or any tag.
func (o *Operation) HasKeyword(keywords ...string) bool {
	haystacks := make([]string, 0, len(o.Tags)+2)
	haystacks = append(haystacks, strings.ToLower(o.ID), strings.ToLower(o.Path))
	for _, t := range o.Tags {
		haystacks = append(haystacks, strings.ToLower(t))
	}
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		for _, h := range haystacks {
			if strings.Contains(h, kw) {
				return true
			}
		}
	}
	return false
}

// SortedConsumes and SortedProduces give deterministic iteration order for
// export and hashing.
func (o *Operation) SortedConsumes() []string { return sortedKeys(o.Consumes) }
func (o *Operation) SortedProduces() []string { return sortedKeys(o.Produces) }

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// PathSegments splits the path template into its slash-separated segments,
// dropping empty segments from a leading slash.
func PathSegments(path string) []string {
	var segs []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// IsPathParamSegment reports whether a path segment is a `{param}` template.
func IsPathParamSegment(seg string) bool {
	return strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}")
}

// ResourceTypeOf derives the resource_type for path: the last non-parameter
// segment, or "" if every segment is a parameter (or the path is "/").
// ignoreSegments lets callers exclude query-only/search-style tail segments
// per the configuration hook named in the design notes.
func ResourceTypeOf(path string, ignoreSegments map[string]bool) string {
	segs := PathSegments(path)
	for i := len(segs) - 1; i >= 0; i-- {
		seg := segs[i]
		if IsPathParamSegment(seg) {
			continue
		}
		if ignoreSegments[strings.ToLower(seg)] {
			continue
		}
		return seg
	}
	return ""
}

// DefaultOperationID builds the fallback operation_id: method + "_" + path
// with slashes replaced, used when the document omits operationId.
func DefaultOperationID(method Method, path string) string {
	replaced := strings.ReplaceAll(strings.Trim(path, "/"), "/", "_")
	return string(method) + "_" + replaced
}
