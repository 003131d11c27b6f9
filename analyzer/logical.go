package analyzer

import (
	"fmt"

	"github.com/viant/depgraph/model"
)

var (
	authKeywords   = []string{"login", "signin", "authenticate", "auth"}
	signupKeywords = []string{"signup", "register", "create_account"}
	logoutKeywords = []string{"logout", "signout"}
	adminKeywords  = []string{"admin", "administrator"}
)

// Logical infers authentication/authorization prerequisites, signup-before
// -login, and marks logout operations terminal (§4.4).
type Logical struct{}

func (Logical) Name() string { return "logical" }

func (Logical) Analyze(ops []*model.Operation) ([]*Candidate, error) {
	var auth, signup, logout, admin []*model.Operation
	for _, op := range ops {
		switch {
		case op.HasKeyword(authKeywords...):
			auth = append(auth, op)
		}
		if op.HasKeyword(signupKeywords...) {
			signup = append(signup, op)
		}
		if op.HasKeyword(logoutKeywords...) {
			logout = append(logout, op)
			op.Annotations["terminal"] = true
		}
		if op.HasKeyword(adminKeywords...) {
			admin = append(admin, op)
		}
	}

	var out []*Candidate
	for _, s := range signup {
		for _, l := range auth {
			if s.ID == l.ID {
				continue
			}
			out = append(out, &Candidate{
				Source: s, Target: l, Kind: model.Workflow, Confidence: 0.8,
				Reason: fmt.Sprintf("%s must sign up before %s authenticates", s.ID, l.ID),
			})
		}
	}

	for _, a := range auth {
		for _, ad := range admin {
			if a.ID == ad.ID {
				continue
			}
			out = append(out, &Candidate{
				Source: a, Target: ad, Kind: model.Authorization, Confidence: 0.9,
				Reason: fmt.Sprintf("%s authenticates before admin operation %s", a.ID, ad.ID),
			})
		}
	}

	isAuth := map[string]bool{}
	for _, a := range auth {
		isAuth[a.ID] = true
	}
	isLogout := map[string]bool{}
	for _, l := range logout {
		isLogout[l.ID] = true
	}
	for _, a := range auth {
		for _, op := range ops {
			if isAuth[op.ID] || a.ID == op.ID || isLogout[op.ID] {
				continue
			}
			if len(op.Security) > 0 {
				out = append(out, &Candidate{
					Source: a, Target: op, Kind: model.Authentication, Confidence: 0.95,
					Reason: fmt.Sprintf("%s authenticates before %s, which declares security requirements", a.ID, op.ID),
				})
				continue
			}
			if len(op.PathParams) > 0 && op.Method != model.GET {
				out = append(out, &Candidate{
					Source: a, Target: op, Kind: model.Authentication, Confidence: 0.7,
					Reason: fmt.Sprintf("%s authenticates before %s, a parameterized mutation with no declared security", a.ID, op.ID),
				})
			}
		}
	}

	return out, nil
}
