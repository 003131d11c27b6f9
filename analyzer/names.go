package analyzer

import "strings"

// genericParams never induce cross-resource PARAMETER_DATA edges (§4.2).
var genericParams = map[string]bool{
	"id": true, "name": true, "status": true, "type": true, "description": true,
	"created_at": true, "updated_at": true, "timestamp": true, "count": true,
	"total": true, "data": true, "result": true, "message": true, "code": true,
	"error": true, "success": true, "page": true, "limit": true, "offset": true,
}

func isGeneric(name string) bool {
	return genericParams[strings.ToLower(name)]
}

// variantGroups lists canonical-variant tables: two names are fuzzy variants
// of each other when both, after canonicalization, belong to the same
// group (§4.2).
var variantGroups = [][]string{
	{"id", "id", "_id", "identifier"},
	{"userid", "userid", "uid"},
	{"petid", "petid"},
	{"orderid", "orderid"},
	{"username", "username", "login"},
}

// canonicalize lower-cases and strips `_`/`-`, per the fuzzy-matching rule.
func canonicalize(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "")
	name = strings.ReplaceAll(name, "-", "")
	return name
}

// areVariants reports whether a and b are variants of the same canonical
// identifier: either they share a canonical-variant table entry, or their
// longest-common-subsequence similarity is >= 0.8.
func areVariants(a, b string) bool {
	if a == b {
		return false // identical names are handled by exact matching, not fuzzy
	}
	ca, cb := canonicalize(a), canonicalize(b)
	if ca == cb {
		return true
	}
	for _, group := range variantGroups {
		inA, inB := false, false
		for _, v := range group {
			cv := canonicalize(v)
			if cv == ca {
				inA = true
			}
			if cv == cb {
				inB = true
			}
		}
		if inA && inB {
			return true
		}
	}
	// short-circuit on length-ratio mismatch to bound the O(n^2 * len^2) cost
	// of the LCS pass (design notes, "fuzzy matching cost").
	shorter, longer := len(ca), len(cb)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if longer == 0 || float64(shorter)/float64(longer) < 0.5 {
		return false
	}
	return lcsSimilarity(ca, cb) >= 0.8
}

// lcsSimilarity returns 2*|LCS(a,b)| / (len(a)+len(b)), the standard
// normalized longest-common-subsequence similarity ratio.
func lcsSimilarity(a, b string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	lcsLen := prev[len(b)]
	return 2 * float64(lcsLen) / float64(len(a)+len(b))
}
