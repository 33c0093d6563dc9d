// AngelaMos | 2026
// composer_test.go

package dashboard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bite-platform/bite-backend/internal/dashboard"
	"github.com/bite-platform/bite-backend/internal/policy"
	"github.com/bite-platform/bite-backend/internal/profile"
	"github.com/bite-platform/bite-backend/internal/role"
)

func widgetIDs(widgets []dashboard.Widget) []string {
	ids := make([]string, len(widgets))
	for i, w := range widgets {
		ids[i] = w.ID
	}
	return ids
}

func TestComposeFreeStudent(t *testing.T) {
	prof := &profile.StudentProfile{Institution: "MIT"}

	widgets := dashboard.Compose(role.Student, role.TierFree, prof)

	ids := widgetIDs(widgets)
	assert.Contains(t, ids, "project-showcase")
	assert.NotContains(t, ids, "career-analytics")
	assert.NotContains(t, ids, "global-certificates")
	assert.Equal(t,
		[]string{"project-showcase", "recent-activity", "quick-actions"},
		ids)
}

func TestComposeCareerPlusStudent(t *testing.T) {
	prof := &profile.StudentProfile{Institution: "MIT"}

	widgets := dashboard.Compose(role.Student, role.TierCareerPlus, prof)

	assert.Equal(t,
		[]string{
			"project-showcase",
			"career-analytics",
			"global-certificates",
			"recent-activity",
			"quick-actions",
		},
		widgetIDs(widgets))
}

func TestComposeBaseWidgetsAlwaysLast(t *testing.T) {
	for _, r := range role.Applicants {
		for _, tier := range role.Tiers(r) {
			widgets := dashboard.Compose(r, tier, nil)
			require.GreaterOrEqual(t, len(widgets), 2)

			n := len(widgets)
			assert.Equal(t, "recent-activity", widgets[n-2].ID)
			assert.Equal(t, "quick-actions", widgets[n-1].ID)
		}
	}
}

func TestComposeUnknownRoleBaseOnly(t *testing.T) {
	for _, r := range []role.Role{role.Admin, role.Role("unicorn"), role.Role("")} {
		widgets := dashboard.Compose(r, role.TierFree, nil)
		assert.Equal(t, []string{"recent-activity", "quick-actions"}, widgetIDs(widgets))
	}
}

func TestComposeUnknownTierTreatedAsFree(t *testing.T) {
	stale := dashboard.Compose(role.Startup, "Legacy Gold", nil)
	free := dashboard.Compose(role.Startup, role.TierFree, nil)

	assert.Equal(t, widgetIDs(free), widgetIDs(stale))
}

func TestComposeCrossRoleTierDoesNotUnlock(t *testing.T) {
	// "Pro Founder" means nothing to a student account.
	widgets := dashboard.Compose(role.Student, role.TierProFounder, nil)
	assert.Equal(t,
		[]string{"project-showcase", "recent-activity", "quick-actions"},
		widgetIDs(widgets))
}

func TestComposeDeterministic(t *testing.T) {
	prof := &profile.InvestorProfile{FirmName: "Acme Capital"}

	first := dashboard.Compose(role.Investor, role.TierProInvestor, prof)
	second := dashboard.Compose(role.Investor, role.TierProInvestor, prof)

	assert.Equal(t, first, second)
}

func TestComposeMonotonicAcrossTiers(t *testing.T) {
	// Composition preserves the policy table's ordering: whenever the
	// table unlocks a superset at the higher tier, the composed widgets
	// do too. Exact-tier widgets (business global-access, for one) make
	// some adjacent pairs incomparable, so those pairs are skipped.
	unlockedSet := func(r role.Role, tier string) map[string]struct{} {
		set := make(map[string]struct{})
		for _, rule := range policy.RulesFor(r) {
			if policy.Unlocked(r, tier, rule.ID) {
				set[rule.ID] = struct{}{}
			}
		}
		return set
	}
	subset := func(a, b map[string]struct{}) bool {
		for id := range a {
			if _, ok := b[id]; !ok {
				return false
			}
		}
		return true
	}

	for _, r := range role.Applicants {
		tiers := role.Tiers(r)
		compared := 0
		for i := 1; i < len(tiers); i++ {
			lowerSet := unlockedSet(r, tiers[i-1])
			higherSet := unlockedSet(r, tiers[i])
			if !subset(lowerSet, higherSet) {
				continue
			}
			compared++

			higher := make(map[string]struct{})
			for _, id := range widgetIDs(dashboard.Compose(r, tiers[i], nil)) {
				higher[id] = struct{}{}
			}

			for _, id := range widgetIDs(dashboard.Compose(r, tiers[i-1], nil)) {
				_, ok := higher[id]
				assert.True(t, ok,
					"widget %s present at %s but missing at %s for %s",
					id, tiers[i-1], tiers[i], r)
			}
		}
		assert.Positive(t, compared, "no comparable tier pairs for %s", r)
	}
}

func TestComposeProfilePayload(t *testing.T) {
	prof := &profile.StartupProfile{CompanyName: "Acme"}

	widgets := dashboard.Compose(role.Startup, role.TierProFounder, prof)

	for _, w := range widgets {
		switch w.ID {
		case "recent-activity", "quick-actions":
			assert.Nil(t, w.Data)
		default:
			require.NotNil(t, w.Data)
			assert.Equal(t, prof, w.Data["profile"])
		}
	}
}
