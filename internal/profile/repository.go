// AngelaMos | 2026
// repository.go

package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bite-platform/bite-backend/internal/core"
	"github.com/bite-platform/bite-backend/internal/role"
)

type Repository interface {
	Create(ctx context.Context, userID string, r role.Role, input NewProfile) error
	GetStudent(ctx context.Context, userID string) (*StudentProfile, error)
	GetStartup(ctx context.Context, userID string) (*StartupProfile, error)
	GetBusiness(ctx context.Context, userID string) (*BusinessProfile, error)
	GetInvestor(ctx context.Context, userID string) (*InvestorProfile, error)
}

type repository struct {
	db core.DBTX
}

// NewRepository also works over a *sqlx.Tx, which is how registration
// writes the profile row inside the user-creation transaction.
func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// Create inserts the profile row matching r. Callers must have checked
// input.Matches(r); a mismatch here is a programming error.
func (repo *repository) Create(
	ctx context.Context,
	userID string,
	r role.Role,
	input NewProfile,
) error {
	switch r {
	case role.Student:
		return repo.createStudent(ctx, userID, input.Student)
	case role.Startup:
		return repo.createStartup(ctx, userID, input.Startup)
	case role.Business:
		return repo.createBusiness(ctx, userID, input.Business)
	case role.Investor:
		return repo.createInvestor(ctx, userID, input.Investor)
	case role.Admin:
		return fmt.Errorf("create profile: admin has no profile: %w", core.ErrInvalidInput)
	default:
		return fmt.Errorf("create profile: unknown role %q: %w", r, core.ErrInvalidInput)
	}
}

func (repo *repository) createStudent(
	ctx context.Context,
	userID string,
	in *StudentInput,
) error {
	if in == nil {
		return fmt.Errorf("create student profile: %w", core.ErrInvalidInput)
	}

	query := `
		INSERT INTO student_profiles (
			user_id, institution, degree, graduation_year, skills,
			career_goals, availability, linkedin_profile, portfolio_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := repo.db.ExecContext(ctx, query,
		userID,
		in.Institution,
		in.Degree,
		in.GraduationYear,
		in.Skills,
		in.CareerGoals,
		in.Availability,
		in.LinkedinProfile,
		in.PortfolioURL,
	)
	if err != nil {
		return fmt.Errorf("create student profile: %w", err)
	}

	return nil
}

func (repo *repository) createStartup(
	ctx context.Context,
	userID string,
	in *StartupInput,
) error {
	if in == nil {
		return fmt.Errorf("create startup profile: %w", core.ErrInvalidInput)
	}

	query := `
		INSERT INTO startup_profiles (
			user_id, company_name, industry, company_size, team_size,
			funding_stage, website, hiring_needs, project_description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := repo.db.ExecContext(ctx, query,
		userID,
		in.CompanyName,
		in.Industry,
		in.CompanySize,
		in.TeamSize,
		in.FundingStage,
		in.Website,
		in.HiringNeeds,
		in.ProjectDescription,
	)
	if err != nil {
		return fmt.Errorf("create startup profile: %w", err)
	}

	return nil
}

func (repo *repository) createBusiness(
	ctx context.Context,
	userID string,
	in *BusinessInput,
) error {
	if in == nil {
		return fmt.Errorf("create business profile: %w", core.ErrInvalidInput)
	}

	query := `
		INSERT INTO business_profiles (
			user_id, company_name, industry, company_size, years_in_business,
			website, mentorship_program, internship_program, global_presence
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := repo.db.ExecContext(ctx, query,
		userID,
		in.CompanyName,
		in.Industry,
		in.CompanySize,
		in.YearsInBusiness,
		in.Website,
		in.MentorshipProgram,
		in.InternshipProgram,
		in.GlobalPresence,
	)
	if err != nil {
		return fmt.Errorf("create business profile: %w", err)
	}

	return nil
}

func (repo *repository) createInvestor(
	ctx context.Context,
	userID string,
	in *InvestorInput,
) error {
	if in == nil {
		return fmt.Errorf("create investor profile: %w", core.ErrInvalidInput)
	}

	query := `
		INSERT INTO investor_profiles (
			user_id, firm_name, investment_focus, portfolio_size,
			average_investment, preferred_industries, investment_stage,
			geographic_focus, website
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := repo.db.ExecContext(ctx, query,
		userID,
		in.FirmName,
		in.InvestmentFocus,
		in.PortfolioSize,
		in.AverageInvestment,
		in.PreferredIndustries,
		in.InvestmentStage,
		in.GeographicFocus,
		in.Website,
	)
	if err != nil {
		return fmt.Errorf("create investor profile: %w", err)
	}

	return nil
}

func (repo *repository) GetStudent(
	ctx context.Context,
	userID string,
) (*StudentProfile, error) {
	query := `
		SELECT user_id, institution, degree, graduation_year, skills,
		       career_goals, availability, linkedin_profile, portfolio_url,
		       created_at, updated_at
		FROM student_profiles
		WHERE user_id = $1`

	var p StudentProfile
	err := repo.db.GetContext(ctx, &p, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get student profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get student profile: %w", err)
	}

	return &p, nil
}

func (repo *repository) GetStartup(
	ctx context.Context,
	userID string,
) (*StartupProfile, error) {
	query := `
		SELECT user_id, company_name, industry, company_size, team_size,
		       funding_stage, website, hiring_needs, project_description,
		       created_at, updated_at
		FROM startup_profiles
		WHERE user_id = $1`

	var p StartupProfile
	err := repo.db.GetContext(ctx, &p, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get startup profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get startup profile: %w", err)
	}

	return &p, nil
}

func (repo *repository) GetBusiness(
	ctx context.Context,
	userID string,
) (*BusinessProfile, error) {
	query := `
		SELECT user_id, company_name, industry, company_size,
		       years_in_business, website, mentorship_program,
		       internship_program, global_presence, created_at, updated_at
		FROM business_profiles
		WHERE user_id = $1`

	var p BusinessProfile
	err := repo.db.GetContext(ctx, &p, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get business profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get business profile: %w", err)
	}

	return &p, nil
}

func (repo *repository) GetInvestor(
	ctx context.Context,
	userID string,
) (*InvestorProfile, error) {
	query := `
		SELECT user_id, firm_name, investment_focus, portfolio_size,
		       average_investment, preferred_industries, investment_stage,
		       geographic_focus, website, created_at, updated_at
		FROM investor_profiles
		WHERE user_id = $1`

	var p InvestorProfile
	err := repo.db.GetContext(ctx, &p, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get investor profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get investor profile: %w", err)
	}

	return &p, nil
}
