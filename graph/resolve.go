package graph

import (
	"sort"

	"github.com/viant/depgraph/analyzer"
	"github.com/viant/depgraph/model"
)

// Resolve reduces a raw candidate list down to a conflict-free set,
// sorted priority-ascending then confidence-descending, ready for the
// DAG builder (§4.7).
func Resolve(candidates []*analyzer.Candidate) []*Edge {
	merged := mergeSameDirection(candidates)
	resolved := resolveOpposing(merged)

	sort.SliceStable(resolved, func(i, j int) bool {
		pi, pj := model.Priority(resolved[i].Kind), model.Priority(resolved[j].Kind)
		if pi != pj {
			return pi < pj
		}
		return resolved[i].Confidence > resolved[j].Confidence
	})
	return resolved
}

type pairKey struct{ source, target string }

// mergeSameDirection implements Step A: group by (source.id, target.id),
// pick the minimum-kind-priority member (ties by max confidence) as the
// base, and union parameter mappings with lower-priority members winning
// key collisions.
func mergeSameDirection(candidates []*analyzer.Candidate) []*Edge {
	groups := map[pairKey][]*analyzer.Candidate{}
	var order []pairKey
	for _, c := range candidates {
		k := pairKey{c.Source.ID, c.Target.ID}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], c)
	}

	out := make([]*Edge, 0, len(order))
	for _, k := range order {
		group := groups[k]
		base := group[0]
		for _, c := range group[1:] {
			if lessPriority(c, base) {
				base = c
			}
		}
		maxConfidence := group[0].Confidence
		for _, c := range group[1:] {
			if c.Confidence > maxConfidence {
				maxConfidence = c.Confidence
			}
		}

		// union parameter mappings; apply weakest (highest-number)
		// priority first so the strongest member, applied last, wins
		// key collisions as required by §4.7.
		byPriorityDesc := append([]*analyzer.Candidate(nil), group...)
		sort.SliceStable(byPriorityDesc, func(i, j int) bool {
			return model.Priority(byPriorityDesc[i].Kind) > model.Priority(byPriorityDesc[j].Kind)
		})
		paramUnion := map[string]string{}
		for _, c := range byPriorityDesc {
			for k, v := range c.ParameterMapping {
				paramUnion[k] = v
			}
		}

		reasonSet := map[string]bool{}
		for _, c := range group {
			if c.Reason != "" {
				reasonSet[c.Reason] = true
			}
		}
		var reasons []string
		for r := range reasonSet {
			reasons = append(reasons, r)
		}
		sort.Strings(reasons)

		out = append(out, &Edge{
			Source:           base.Source,
			Target:           base.Target,
			Kind:             base.Kind,
			Confidence:       model.Clamp(maxConfidence),
			ParameterMapping: paramUnion,
			Constraint:       base.Constraint,
			Reasons:          reasons,
		})
	}
	return out
}

// lessPriority reports whether a should replace b as the group base:
// lower kind priority wins, ties broken by higher confidence.
func lessPriority(a, b *analyzer.Candidate) bool {
	pa, pb := model.Priority(a.Kind), model.Priority(b.Kind)
	if pa != pb {
		return pa < pb
	}
	return a.Confidence > b.Confidence
}

// resolveOpposing implements Step B: for every (u,v)/(v,u) pair both
// present, keep the lower kind priority, breaking ties by higher
// confidence, and on a further tie keep (u,v).
func resolveOpposing(edges []*Edge) []*Edge {
	byPair := map[pairKey]*Edge{}
	for _, e := range edges {
		byPair[pairKey{e.Source.ID, e.Target.ID}] = e
	}

	discard := map[*Edge]bool{}
	seen := map[pairKey]bool{}
	for _, e := range edges {
		k := pairKey{e.Source.ID, e.Target.ID}
		if seen[k] {
			continue
		}
		seen[k] = true
		rk := pairKey{e.Target.ID, e.Source.ID}
		opposite, ok := byPair[rk]
		if !ok || discard[e] {
			continue
		}
		seen[rk] = true

		pf, pb := model.Priority(e.Kind), model.Priority(opposite.Kind)
		switch {
		case pf < pb:
			discard[opposite] = true
		case pb < pf:
			discard[e] = true
		case opposite.Confidence > e.Confidence:
			discard[e] = true
		default:
			// tie, or (u,v) strictly wins: keep e, drop opposite.
			discard[opposite] = true
		}
	}

	out := make([]*Edge, 0, len(edges))
	for _, e := range edges {
		if !discard[e] {
			out = append(out, e)
		}
	}
	return out
}
