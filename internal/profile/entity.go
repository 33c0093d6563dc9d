// AngelaMos | 2026
// entity.go

package profile

import (
	"time"
)

type StudentProfile struct {
	UserID          string    `db:"user_id"          json:"user_id"`
	Institution     string    `db:"institution"      json:"institution"`
	Degree          string    `db:"degree"           json:"degree"`
	GraduationYear  int       `db:"graduation_year"  json:"graduation_year"`
	Skills          string    `db:"skills"           json:"skills"`
	CareerGoals     string    `db:"career_goals"     json:"career_goals"`
	Availability    string    `db:"availability"     json:"availability"`
	LinkedinProfile *string   `db:"linkedin_profile" json:"linkedin_profile,omitempty"`
	PortfolioURL    *string   `db:"portfolio_url"    json:"portfolio_url,omitempty"`
	CreatedAt       time.Time `db:"created_at"       json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"       json:"updated_at"`
}

type StartupProfile struct {
	UserID             string    `db:"user_id"             json:"user_id"`
	CompanyName        string    `db:"company_name"        json:"company_name"`
	Industry           string    `db:"industry"            json:"industry"`
	CompanySize        string    `db:"company_size"        json:"company_size"`
	TeamSize           int       `db:"team_size"           json:"team_size"`
	FundingStage       string    `db:"funding_stage"       json:"funding_stage"`
	Website            *string   `db:"website"             json:"website,omitempty"`
	HiringNeeds        string    `db:"hiring_needs"        json:"hiring_needs"`
	ProjectDescription string    `db:"project_description" json:"project_description"`
	CreatedAt          time.Time `db:"created_at"          json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"          json:"updated_at"`
}

type BusinessProfile struct {
	UserID            string    `db:"user_id"            json:"user_id"`
	CompanyName       string    `db:"company_name"       json:"company_name"`
	Industry          string    `db:"industry"           json:"industry"`
	CompanySize       string    `db:"company_size"       json:"company_size"`
	YearsInBusiness   int       `db:"years_in_business"  json:"years_in_business"`
	Website           *string   `db:"website"            json:"website,omitempty"`
	MentorshipProgram string    `db:"mentorship_program" json:"mentorship_program"`
	InternshipProgram string    `db:"internship_program" json:"internship_program"`
	GlobalPresence    string    `db:"global_presence"    json:"global_presence"`
	CreatedAt         time.Time `db:"created_at"         json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"         json:"updated_at"`
}

type InvestorProfile struct {
	UserID              string    `db:"user_id"              json:"user_id"`
	FirmName            string    `db:"firm_name"            json:"firm_name"`
	InvestmentFocus     string    `db:"investment_focus"     json:"investment_focus"`
	PortfolioSize       string    `db:"portfolio_size"       json:"portfolio_size"`
	AverageInvestment   string    `db:"average_investment"   json:"average_investment"`
	PreferredIndustries string    `db:"preferred_industries" json:"preferred_industries"`
	InvestmentStage     string    `db:"investment_stage"     json:"investment_stage"`
	GeographicFocus     string    `db:"geographic_focus"     json:"geographic_focus"`
	Website             *string   `db:"website"              json:"website,omitempty"`
	CreatedAt           time.Time `db:"created_at"           json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"           json:"updated_at"`
}
