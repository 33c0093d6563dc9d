// AngelaMos | 2026
// policy_test.go

package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bite-platform/bite-backend/internal/policy"
	"github.com/bite-platform/bite-backend/internal/role"
)

func TestRequirementSatisfied(t *testing.T) {
	tests := []struct {
		name string
		req  policy.Requirement
		role role.Role
		tier string
		want bool
	}{
		{"always free", policy.Always(), role.Student, role.TierFree, true},
		{"always unknown tier", policy.Always(), role.Student, "bogus", true},
		{"any paid rejects free", policy.AnyPaid(), role.Student, role.TierFree, false},
		{"any paid accepts mid tier", policy.AnyPaid(), role.Student, role.TierProStudent, true},
		{"any paid accepts top tier", policy.AnyPaid(), role.Student, role.TierCareerPlus, true},
		{"any paid rejects unknown tier", policy.AnyPaid(), role.Student, "bogus", false},
		{"any paid rejects cross-role tier", policy.AnyPaid(), role.Student, role.TierProFounder, false},
		{"exact tier match", policy.ExactTier(role.TierCareerPlus), role.Student, role.TierCareerPlus, true},
		{"exact tier rejects lower paid", policy.ExactTier(role.TierCareerPlus), role.Student, role.TierProStudent, false},
		{"exact tier rejects free", policy.ExactTier(role.TierCareerPlus), role.Student, role.TierFree, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Satisfied(tt.role, tt.tier))
		})
	}
}

func TestRulesForDeclarationOrder(t *testing.T) {
	ids := func(r role.Role) []string {
		rules := policy.RulesFor(r)
		out := make([]string, len(rules))
		for i, rule := range rules {
			out[i] = rule.ID
		}
		return out
	}

	assert.Equal(t,
		[]string{"project-showcase", "career-analytics", "global-certificates"},
		ids(role.Student))
	assert.Equal(t,
		[]string{"tailored-matching", "project-management", "investor-discovery"},
		ids(role.Startup))
	assert.Equal(t,
		[]string{"internship-pipeline", "mentor-analytics", "global-access"},
		ids(role.Business))
	assert.Equal(t,
		[]string{"investment-analytics", "portfolio-tracking", "exclusive-pitches"},
		ids(role.Investor))
}

func TestRulesForUnknownRole(t *testing.T) {
	assert.Empty(t, policy.RulesFor(role.Admin))
	assert.Empty(t, policy.RulesFor(role.Role("unicorn")))
}

func TestUnlocked(t *testing.T) {
	// The single predicate both composition and rendering consult.
	assert.True(t, policy.Unlocked(role.Student, role.TierFree, "project-showcase"))
	assert.False(t, policy.Unlocked(role.Student, role.TierFree, "career-analytics"))
	assert.True(t, policy.Unlocked(role.Student, role.TierProStudent, "career-analytics"))
	assert.False(t, policy.Unlocked(role.Student, role.TierProStudent, "global-certificates"))
	assert.True(t, policy.Unlocked(role.Student, role.TierCareerPlus, "global-certificates"))

	assert.False(t, policy.Unlocked(role.Startup, role.TierScaleFaster, "investor-discovery"))
	assert.True(t, policy.Unlocked(role.Startup, role.TierProFounder, "investor-discovery"))

	// Widgets belong to their role's list only.
	assert.False(t, policy.Unlocked(role.Investor, role.TierProInvestor, "project-showcase"))
	assert.False(t, policy.Unlocked(role.Student, role.TierCareerPlus, "no-such-widget"))
}

func TestRequiredTier(t *testing.T) {
	rules := policy.RulesFor(role.Student)

	byID := make(map[string]policy.WidgetRule, len(rules))
	for _, rule := range rules {
		byID[rule.ID] = rule
	}

	assert.Equal(t, "", byID["project-showcase"].Requires.RequiredTier(role.Student))
	assert.Equal(t, role.TierProStudent, byID["career-analytics"].Requires.RequiredTier(role.Student))
	assert.Equal(t, role.TierCareerPlus, byID["global-certificates"].Requires.RequiredTier(role.Student))
}
