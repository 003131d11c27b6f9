package analyzer

import (
	"fmt"
	"strings"

	"github.com/viant/depgraph/model"
)

// backwardActionWords exempt an operation's path from semantic-backward
// suppression: a GET may legitimately precede these POSTs (§4.2).
var backwardActionWords = []string{"login", "logout", "search", "find"}

// ParameterFlow infers source -> target when source produces a value
// target consumes, subject to the scoping and semantic-backward rules in
// spec §4.2.
type ParameterFlow struct{}

func (ParameterFlow) Name() string { return "parameter-flow" }

func (ParameterFlow) Analyze(ops []*model.Operation) ([]*Candidate, error) {
	producers := map[string][]*model.Operation{}
	consumers := map[string][]*model.Operation{}
	// per-name producer ambiguity: count of distinct response occurrences is
	// not tracked by the flattened Produces set, so approximate "same name
	// produced by multiple response schemas" at the operation level by
	// reusing the set membership (a name present in Produces at all counts
	// as one occurrence; ambiguity is instead measured across producers of
	// the same name below).
	for _, op := range ops {
		for name := range op.Produces {
			producers[name] = append(producers[name], op)
		}
		for name := range op.Consumes {
			consumers[name] = append(consumers[name], op)
		}
	}

	var out []*Candidate
	for name, prodOps := range producers {
		consOps, ok := consumers[name]
		if !ok {
			continue
		}
		for _, producer := range prodOps {
			for _, consumer := range consOps {
				if producer.ID == consumer.ID {
					continue
				}
				if !shouldLink(name, producer.ResourceType, consumer.ResourceType) {
					continue
				}
				if isSemanticBackward(producer, consumer) {
					continue
				}
				out = append(out, &Candidate{
					Source:           producer,
					Target:           consumer,
					Kind:             model.ParameterData,
					Confidence:       exactConfidence(prodOps, consumer, name),
					ParameterMapping: map[string]string{name: name},
					Reason:           fmt.Sprintf("parameter %q produced by %s and consumed by %s", name, producer.ID, consumer.ID),
				})
			}
		}
	}

	out = append(out, fuzzyMatches(ops, producers, consumers)...)
	return out, nil
}

// shouldLink applies the §4.2 scoping rules.
func shouldLink(name, prodResource, consResource string) bool {
	if prodResource == consResource {
		return true
	}
	if isGeneric(name) {
		return false
	}
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, "id") && len(lower) > 2 {
		return true
	}
	return false
}

// isSemanticBackward rejects a GET producing for a POST on the same
// resource, unless the POST's path contains one of backwardActionWords
// (§4.2).
func isSemanticBackward(producer, consumer *model.Operation) bool {
	if producer.ResourceType != consumer.ResourceType {
		return false
	}
	if producer.Method != model.GET || consumer.Method != model.POST {
		return false
	}
	pathLower := strings.ToLower(consumer.Path)
	for _, action := range backwardActionWords {
		if strings.Contains(pathLower, action) {
			return false
		}
	}
	return true
}

// exactConfidence computes the §4.2 confidence for an exact-name match.
func exactConfidence(producers []*model.Operation, consumer *model.Operation, name string) float64 {
	confidence := 1.0
	if len(producers) > 1 {
		confidence *= 0.8
	}
	if p, ok := consumer.Param(name); ok && !p.Required {
		confidence *= 0.7
	}
	return model.Clamp(confidence)
}

// fuzzyMatches emits 0.6-confidence candidates for same-resource parameter
// names that are variants of each other (§4.2).
func fuzzyMatches(ops []*model.Operation, producers, consumers map[string][]*model.Operation) []*Candidate {
	var out []*Candidate
	for prodName, prodOps := range producers {
		for consName, consOps := range consumers {
			if prodName == consName {
				continue
			}
			if !areVariants(prodName, consName) {
				continue
			}
			for _, producer := range prodOps {
				for _, consumer := range consOps {
					if producer.ID == consumer.ID {
						continue
					}
					if producer.ResourceType != consumer.ResourceType {
						continue
					}
					if isSemanticBackward(producer, consumer) {
						continue
					}
					out = append(out, &Candidate{
						Source:           producer,
						Target:           consumer,
						Kind:             model.ParameterData,
						Confidence:       0.6,
						ParameterMapping: map[string]string{prodName: consName},
						Reason:           fmt.Sprintf("fuzzy match: %q -> %q", prodName, consName),
					})
				}
			}
		}
	}
	return out
}
