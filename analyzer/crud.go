package analyzer

import (
	"fmt"

	"github.com/viant/depgraph/model"
)

// CRUD infers creator-before-reader/updater/deleter orderings within a
// resource (§4.3).
type CRUD struct{}

func (CRUD) Name() string { return "crud" }

func (CRUD) Analyze(ops []*model.Operation) ([]*Candidate, error) {
	groups := map[string][]*model.Operation{}
	for _, op := range ops {
		if op.ResourceType == "" {
			continue
		}
		groups[op.ResourceType] = append(groups[op.ResourceType], op)
	}

	var out []*Candidate
	for _, group := range groups {
		creates, reads, updates, deletes := classifyCRUD(group)
		for _, create := range creates {
			for _, other := range concatOps(reads, updates, deletes) {
				if !crudRelated(create, other) {
					continue
				}
				out = append(out, &Candidate{
					Source:     create,
					Target:     other,
					Kind:       model.CRUD,
					Confidence: 0.9,
					Reason:     fmt.Sprintf("%s creates the resource %s operates on", create.ID, other.ID),
				})
			}
		}
		for _, read := range reads {
			for _, update := range updates {
				if read.ID == update.ID || !crudRelated(read, update) {
					continue
				}
				out = append(out, &Candidate{
					Source:     read,
					Target:     update,
					Kind:       model.CRUD,
					Confidence: 0.6,
					Reason:     fmt.Sprintf("%s reads state later mutated by %s", read.ID, update.ID),
				})
			}
		}
	}
	return out, nil
}

// isTrueCreate reports whether op is a POST whose path's last segment is
// not itself a path parameter and has no path parameter before it (§4.3),
// distinguishing `POST /pet` from `POST /pet/{id}/uploadImage`.
func isTrueCreate(op *model.Operation) bool {
	if op.Method != model.POST {
		return false
	}
	segs := model.PathSegments(op.Path)
	if len(segs) == 0 {
		return false
	}
	if model.IsPathParamSegment(segs[len(segs)-1]) {
		return false
	}
	for _, seg := range segs[:len(segs)-1] {
		if model.IsPathParamSegment(seg) {
			return false
		}
	}
	return true
}

func classifyCRUD(group []*model.Operation) (creates, reads, updates, deletes []*model.Operation) {
	for _, op := range group {
		switch {
		case isTrueCreate(op):
			creates = append(creates, op)
		case op.Method == model.GET:
			reads = append(reads, op)
		case op.Method == model.PUT, op.Method == model.PATCH:
			updates = append(updates, op)
		case op.Method == model.POST:
			// a POST that isn't a true-create is classified as an update
			// (e.g. an action endpoint like POST /pet/{id}/uploadImage).
			updates = append(updates, op)
		case op.Method == model.DELETE:
			deletes = append(deletes, op)
		}
	}
	return
}

func concatOps(groups ...[]*model.Operation) []*model.Operation {
	var out []*model.Operation
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// crudRelated reports whether a and b share resource_type and their
// non-parameter path segment sequences are equal, or one is a prefix of
// the other (§4.3).
func crudRelated(a, b *model.Operation) bool {
	if a.ResourceType != b.ResourceType {
		return false
	}
	as, bs := nonParamSegments(a.Path), nonParamSegments(b.Path)
	shorter, longer := as, bs
	if len(as) > len(bs) {
		shorter, longer = bs, as
	}
	for i, seg := range shorter {
		if longer[i] != seg {
			return false
		}
	}
	return true
}

func nonParamSegments(path string) []string {
	var out []string
	for _, seg := range model.PathSegments(path) {
		if !model.IsPathParamSegment(seg) {
			out = append(out, seg)
		}
	}
	return out
}
