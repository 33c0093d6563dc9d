// AngelaMos | 2026
// dto.go

package profile

import (
	"github.com/bite-platform/bite-backend/internal/role"
)

// Numeric fields are typed ints so malformed input fails JSON decoding
// with a 400 instead of silently persisting NULL.

type StudentInput struct {
	Institution     string  `json:"institution"      validate:"required,max=200"`
	Degree          string  `json:"degree"           validate:"required,max=200"`
	GraduationYear  int     `json:"graduation_year"  validate:"required,min=1950,max=2100"`
	Skills          string  `json:"skills"           validate:"required,max=1000"`
	CareerGoals     string  `json:"career_goals"     validate:"required,max=2000"`
	Availability    string  `json:"availability"     validate:"required,max=100"`
	LinkedinProfile *string `json:"linkedin_profile" validate:"omitempty,url,max=300"`
	PortfolioURL    *string `json:"portfolio_url"    validate:"omitempty,url,max=300"`
}

type StartupInput struct {
	CompanyName        string  `json:"company_name"        validate:"required,max=200"`
	Industry           string  `json:"industry"            validate:"required,max=100"`
	CompanySize        string  `json:"company_size"        validate:"required,max=50"`
	TeamSize           int     `json:"team_size"           validate:"required,min=1,max=100000"`
	FundingStage       string  `json:"funding_stage"       validate:"required,max=100"`
	Website            *string `json:"website"             validate:"omitempty,url,max=300"`
	HiringNeeds        string  `json:"hiring_needs"        validate:"required,max=2000"`
	ProjectDescription string  `json:"project_description" validate:"required,max=5000"`
}

type BusinessInput struct {
	CompanyName       string  `json:"company_name"       validate:"required,max=200"`
	Industry          string  `json:"industry"           validate:"required,max=100"`
	CompanySize       string  `json:"company_size"       validate:"required,max=50"`
	YearsInBusiness   int     `json:"years_in_business"  validate:"min=0,max=500"`
	Website           *string `json:"website"            validate:"omitempty,url,max=300"`
	MentorshipProgram string  `json:"mentorship_program" validate:"required,max=1000"`
	InternshipProgram string  `json:"internship_program" validate:"required,max=1000"`
	GlobalPresence    string  `json:"global_presence"    validate:"required,max=1000"`
}

type InvestorInput struct {
	FirmName            string  `json:"firm_name"            validate:"required,max=200"`
	InvestmentFocus     string  `json:"investment_focus"     validate:"required,max=500"`
	PortfolioSize       string  `json:"portfolio_size"       validate:"required,max=100"`
	AverageInvestment   string  `json:"average_investment"   validate:"required,max=100"`
	PreferredIndustries string  `json:"preferred_industries" validate:"required,max=500"`
	InvestmentStage     string  `json:"investment_stage"     validate:"required,max=100"`
	GeographicFocus     string  `json:"geographic_focus"     validate:"required,max=200"`
	Website             *string `json:"website"              validate:"omitempty,url,max=300"`
}

// NewProfile carries the role-specific sub-object of a registration
// payload. Exactly one variant must be set, and it must match the
// declared role; anything else is rejected before the transaction opens
// so a user row can never exist without its profile row.
type NewProfile struct {
	Student  *StudentInput  `json:"student_data,omitempty"  validate:"omitempty"`
	Startup  *StartupInput  `json:"startup_data,omitempty"  validate:"omitempty"`
	Business *BusinessInput `json:"business_data,omitempty" validate:"omitempty"`
	Investor *InvestorInput `json:"investor_data,omitempty" validate:"omitempty"`
}

// Matches reports whether the sub-object for r is present and no other
// variant is. The switch is exhaustive over the applicant roles.
func (p NewProfile) Matches(r role.Role) bool {
	set := 0
	if p.Student != nil {
		set++
	}
	if p.Startup != nil {
		set++
	}
	if p.Business != nil {
		set++
	}
	if p.Investor != nil {
		set++
	}
	if set != 1 {
		return false
	}

	switch r {
	case role.Student:
		return p.Student != nil
	case role.Startup:
		return p.Startup != nil
	case role.Business:
		return p.Business != nil
	case role.Investor:
		return p.Investor != nil
	case role.Admin:
		return false
	default:
		return false
	}
}
