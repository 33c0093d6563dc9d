// AngelaMos | 2026
// service_test.go

package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bite-platform/bite-backend/internal/profile"
	"github.com/bite-platform/bite-backend/internal/role"
)

// A corrupt role string on a stored user degrades the dashboard to
// base widgets; it must not surface as an error.
func TestFetchOrNilUnknownRole(t *testing.T) {
	svc := profile.NewService(nil)

	data, err := svc.FetchOrNil(context.Background(), role.Role("unicorn"), "user-1")

	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestFetchUnknownRoleErrors(t *testing.T) {
	svc := profile.NewService(nil)

	_, err := svc.Fetch(context.Background(), role.Role("unicorn"), "user-1")

	assert.Error(t, err)
}

func TestFetchOrNilAdmin(t *testing.T) {
	svc := profile.NewService(nil)

	data, err := svc.FetchOrNil(context.Background(), role.Admin, "admin-1")

	require.NoError(t, err)
	assert.Nil(t, data)
}
