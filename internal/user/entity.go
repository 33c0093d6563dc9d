// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/bite-platform/bite-backend/internal/role"
)

type User struct {
	ID                string     `db:"id"`
	Email             string     `db:"email"`
	PasswordHash      string     `db:"password_hash"`
	FullName          string     `db:"full_name"`
	PhoneNumber       string     `db:"phone_number"`
	City              string     `db:"city"`
	Country           string     `db:"country"`
	AvatarKey         *string    `db:"avatar_key"`
	Role              string     `db:"role"`
	Tier              string     `db:"tier"`
	ResetTokenHash    *string    `db:"reset_token_hash"`
	ResetTokenExpires *time.Time `db:"reset_token_expires"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
	DeletedAt         *time.Time `db:"deleted_at"`
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) IsAdmin() bool {
	return u.Role == role.Admin.String()
}

func (u *User) RoleValue() role.Role {
	r, _ := role.Parse(u.Role)
	return r
}

func (u *User) ResetTokenExpired() bool {
	return u.ResetTokenExpires == nil || time.Now().After(*u.ResetTokenExpires)
}
