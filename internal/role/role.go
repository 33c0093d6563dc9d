// AngelaMos | 2026
// role.go

package role

// Role is the closed set of account categories. Every role except admin
// pairs with exactly one profile table and one tier vocabulary.
type Role string

const (
	Student  Role = "student"
	Startup  Role = "startup"
	Business Role = "business"
	Investor Role = "investor"
	Admin    Role = "admin"
)

// Applicants are the four non-admin roles, in registration-form order.
var Applicants = []Role{Student, Startup, Business, Investor}

func Parse(s string) (Role, bool) {
	switch Role(s) {
	case Student, Startup, Business, Investor, Admin:
		return Role(s), true
	default:
		return "", false
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	_, ok := Parse(string(r))
	return ok
}

func (r Role) IsApplicant() bool {
	return r.Valid() && r != Admin
}

// Tier labels. A label is only meaningful relative to its role's
// vocabulary; "Pro Founder" is not a valid business tier.
const (
	TierFree         = "Free"
	TierProStudent   = "Pro Student"
	TierCareerPlus   = "Career+"
	TierScaleFaster  = "Scale Faster"
	TierProFounder   = "Pro Founder"
	TierTalentPlus   = "Talent+"
	TierInvestorPlus = "Investor+"
	TierExplorer     = "Explorer"
	TierProInvestor  = "Pro Investor"
)

var tierVocabulary = map[Role][]string{
	Student:  {TierFree, TierProStudent, TierCareerPlus},
	Startup:  {TierFree, TierScaleFaster, TierProFounder},
	Business: {TierFree, TierTalentPlus, TierInvestorPlus},
	Investor: {TierFree, TierExplorer, TierProInvestor},
}

// Tiers returns the role's tier vocabulary in ascending price order.
// Admin (and unknown roles) have none.
func Tiers(r Role) []string {
	tiers := tierVocabulary[r]
	out := make([]string, len(tiers))
	copy(out, tiers)
	return out
}

func ValidTier(r Role, tier string) bool {
	for _, t := range tierVocabulary[r] {
		if t == tier {
			return true
		}
	}
	return false
}

// IsPaidTier reports whether tier is a recognized non-Free tier for the
// role. Unrecognized tiers count as Free rather than erroring.
func IsPaidTier(r Role, tier string) bool {
	return ValidTier(r, tier) && tier != TierFree
}
