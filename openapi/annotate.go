package openapi

import (
	"github.com/viant/depgraph/export"
	"github.com/viant/depgraph/graph"
)

// Annotate returns the original document with the x-operation-annotation
// and x-parameter-annotation extensions (§6) injected per operation,
// ready for YAML/JSON marshaling. It mutates the document's own decoded
// tree in place: a Document is consumed once per build, so there is no
// second reader to observe the pre-annotation state.
func (d *Document) Annotate(g *graph.Graph) interface{} {
	opAnn := export.OperationAnnotations(g)
	paths := d.paths()

	for id, op := range g.Nodes {
		pathItem := asMap(paths[op.Path])
		method := lowerMethod(op.Method)
		opRaw := asMap(pathItem[method])
		if len(opRaw) == 0 {
			continue
		}

		if ann, ok := opAnn[id]; ok {
			opRaw["x-operation-annotation"] = ann
		}

		paramAnn := export.ParameterAnnotations(op)
		for _, p := range asSlice(opRaw["parameters"]) {
			pm := asMap(p)
			name, _ := asString(pm["name"])
			if a, ok := paramAnn[name]; ok {
				pm["x-parameter-annotation"] = a
			}
		}

		pathItem[method] = opRaw
		paths[op.Path] = pathItem
	}

	d.root["paths"] = paths
	return d.root
}
