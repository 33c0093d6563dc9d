// AngelaMos | 2026
// role_test.go

package role_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bite-platform/bite-backend/internal/role"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  role.Role
		ok    bool
	}{
		{"student", role.Student, true},
		{"startup", role.Startup, true},
		{"business", role.Business, true},
		{"investor", role.Investor, true},
		{"admin", role.Admin, true},
		{"", "", false},
		{"Student", "", false},
		{"unicorn", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := role.Parse(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsApplicant(t *testing.T) {
	assert.True(t, role.Student.IsApplicant())
	assert.True(t, role.Startup.IsApplicant())
	assert.True(t, role.Business.IsApplicant())
	assert.True(t, role.Investor.IsApplicant())
	assert.False(t, role.Admin.IsApplicant())
}

func TestTiersAreRoleScoped(t *testing.T) {
	tests := []struct {
		role role.Role
		want []string
	}{
		{role.Student, []string{role.TierFree, role.TierProStudent, role.TierCareerPlus}},
		{role.Startup, []string{role.TierFree, role.TierScaleFaster, role.TierProFounder}},
		{role.Business, []string{role.TierFree, role.TierTalentPlus, role.TierInvestorPlus}},
		{role.Investor, []string{role.TierFree, role.TierExplorer, role.TierProInvestor}},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, role.Tiers(tt.role))
		})
	}
}

func TestValidTier(t *testing.T) {
	assert.True(t, role.ValidTier(role.Student, role.TierFree))
	assert.True(t, role.ValidTier(role.Student, role.TierCareerPlus))
	assert.True(t, role.ValidTier(role.Startup, role.TierProFounder))

	// A tier is only meaningful relative to its own role.
	assert.False(t, role.ValidTier(role.Student, role.TierProFounder))
	assert.False(t, role.ValidTier(role.Investor, role.TierCareerPlus))
	assert.False(t, role.ValidTier(role.Student, "Platinum"))
	assert.False(t, role.ValidTier(role.Admin, role.TierFree))
}

func TestIsPaidTier(t *testing.T) {
	assert.False(t, role.IsPaidTier(role.Student, role.TierFree))
	assert.True(t, role.IsPaidTier(role.Student, role.TierProStudent))
	assert.True(t, role.IsPaidTier(role.Student, role.TierCareerPlus))

	// Unrecognized tiers gate like Free.
	assert.False(t, role.IsPaidTier(role.Student, "Gold"))
	assert.False(t, role.IsPaidTier(role.Student, role.TierProFounder))
}

func TestTiersReturnsCopy(t *testing.T) {
	first := role.Tiers(role.Student)
	first[0] = "mutated"

	second := role.Tiers(role.Student)
	assert.Equal(t, role.TierFree, second[0])
}
