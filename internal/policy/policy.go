// AngelaMos | 2026
// policy.go

// Package policy is the single source of truth for which dashboard
// widgets a (role, tier) pair unlocks. Both the composer and any
// client-facing upsell logic consult this table; the gating rules are
// defined here once, as data, and nowhere else.
package policy

import (
	"github.com/bite-platform/bite-backend/internal/role"
)

type requirementKind int8

const (
	reqAlways requirementKind = iota
	reqAnyPaid
	reqExactTier
)

// Requirement is a predicate over a role-scoped tier label.
type Requirement struct {
	kind requirementKind
	tier string
}

func Always() Requirement {
	return Requirement{kind: reqAlways}
}

// AnyPaid matches every recognized tier except Free. Unrecognized tier
// labels never match, so a stale tier degrades to Free access.
func AnyPaid() Requirement {
	return Requirement{kind: reqAnyPaid}
}

func ExactTier(tier string) Requirement {
	return Requirement{kind: reqExactTier, tier: tier}
}

func (q Requirement) Satisfied(r role.Role, tier string) bool {
	switch q.kind {
	case reqAlways:
		return true
	case reqAnyPaid:
		return role.IsPaidTier(r, tier)
	case reqExactTier:
		return role.ValidTier(r, tier) && tier == q.tier
	default:
		return false
	}
}

// RequiredTier names the cheapest tier that satisfies the requirement,
// for upsell copy. Empty for unconditional widgets.
func (q Requirement) RequiredTier(r role.Role) string {
	switch q.kind {
	case reqAnyPaid:
		tiers := role.Tiers(r)
		if len(tiers) > 1 {
			return tiers[1]
		}
		return ""
	case reqExactTier:
		return q.tier
	default:
		return ""
	}
}

// WidgetRule declares one gated widget. Declaration order within a
// role's list is the order widgets appear on the dashboard.
type WidgetRule struct {
	ID       string
	Title    string
	Type     string
	Requires Requirement
}

var widgetRules = map[role.Role][]WidgetRule{
	role.Student: {
		{ID: "project-showcase", Title: "Project Showcase", Type: "projects", Requires: Always()},
		{ID: "career-analytics", Title: "Career Analytics", Type: "analytics", Requires: AnyPaid()},
		{ID: "global-certificates", Title: "Global Certificates", Type: "certificates", Requires: ExactTier(role.TierCareerPlus)},
	},
	role.Startup: {
		{ID: "tailored-matching", Title: "Tailored Matching", Type: "matching", Requires: AnyPaid()},
		{ID: "project-management", Title: "Project Management", Type: "projects", Requires: AnyPaid()},
		{ID: "investor-discovery", Title: "Investor Discovery", Type: "investors", Requires: ExactTier(role.TierProFounder)},
	},
	role.Business: {
		{ID: "internship-pipeline", Title: "Internship Pipeline", Type: "pipeline", Requires: AnyPaid()},
		{ID: "mentor-analytics", Title: "Mentor Analytics", Type: "analytics", Requires: AnyPaid()},
		{ID: "global-access", Title: "Global Access", Type: "global", Requires: ExactTier(role.TierTalentPlus)},
	},
	role.Investor: {
		{ID: "investment-analytics", Title: "Investment Analytics", Type: "analytics", Requires: AnyPaid()},
		{ID: "portfolio-tracking", Title: "Portfolio Tracking", Type: "portfolio", Requires: AnyPaid()},
		{ID: "exclusive-pitches", Title: "Exclusive Pitches", Type: "pitches", Requires: ExactTier(role.TierProInvestor)},
	},
}

// RulesFor returns the role's gated widgets in declaration order.
// Unknown roles (admin included) have none.
func RulesFor(r role.Role) []WidgetRule {
	rules := widgetRules[r]
	out := make([]WidgetRule, len(rules))
	copy(out, rules)
	return out
}

// Unlocked reports whether the widget's gate opens for the tier. It is
// the one predicate both widget composition and rendering rely on.
func Unlocked(r role.Role, tier, widgetID string) bool {
	for _, rule := range widgetRules[r] {
		if rule.ID == widgetID {
			return rule.Requires.Satisfied(r, tier)
		}
	}
	return false
}
