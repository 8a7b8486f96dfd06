// Package policy holds the static route authorization table. The table is
// built once at startup and consulted on every request after authentication;
// it is the single place where a request is rejected, keeping the
// authentication middleware fail-open and the policy fail-closed.
package policy

import (
	"sort"

	"github.com/velostore/commerce-api/internal/core/domain"
)

// Access classifies a route prefix.
type Access int

const (
	// Public routes are always allowed, authenticated or not.
	Public Access = iota
	// AuthenticatedOnly routes require a non-empty security context.
	AuthenticatedOnly
	// RequiresRole routes additionally require a specific role.
	RequiresRole
)

// Rule maps a path prefix to an access requirement.
type Rule struct {
	Prefix string
	Access Access
	Role   domain.AppRole
}

// Table is an immutable longest-prefix route-matching table. Paths matching
// no rule default to AuthenticatedOnly. Safe for concurrent use.
type Table struct {
	rules []Rule
}

// NewTable builds a Table from rules. Rules are ordered longest prefix
// first so the most specific prefix wins; declaration order breaks ties.
func NewTable(rules []Rule) *Table {
	ordered := make([]Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Prefix) > len(ordered[j].Prefix)
	})
	return &Table{rules: ordered}
}

// Match returns the rule governing path. Unmatched paths fall back to the
// AuthenticatedOnly default.
func (t *Table) Match(path string) Rule {
	for _, r := range t.rules {
		if hasPrefix(path, r.Prefix) {
			return r
		}
	}
	return Rule{Access: AuthenticatedOnly}
}

// Evaluate decides whether the principal may reach path. A nil principal is
// the anonymous state. The two denial errors stay distinct so the responder
// can tell missing authentication (401) from a role mismatch (403).
func (t *Table) Evaluate(path string, p *domain.Principal) error {
	rule := t.Match(path)
	switch rule.Access {
	case Public:
		return nil
	case AuthenticatedOnly:
		if p == nil {
			return domain.ErrAuthenticationRequired
		}
		return nil
	case RequiresRole:
		if p == nil {
			return domain.ErrAuthenticationRequired
		}
		if !p.HasRole(rule.Role) {
			return domain.ErrInsufficientRole
		}
		return nil
	}
	return domain.ErrAuthenticationRequired
}

func hasPrefix(path, prefix string) bool {
	return len(path) >= len(prefix) && path[:len(prefix)] == prefix
}
