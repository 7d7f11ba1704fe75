//go:build unit

package auth_test

import (
	"testing"

	"carconnect/internal/domain/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	role, err := auth.NewRole("admin")
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, role)

	_, err = auth.NewRole("Admin")
	require.ErrorIs(t, err, auth.ErrInvalidRole)
}

func TestPrincipal_IsAdmin(t *testing.T) {
	assert.True(t, auth.Principal{ID: 1, Role: auth.RoleAdmin}.IsAdmin())
	assert.False(t, auth.Principal{ID: 1, Role: auth.RoleCustomer}.IsAdmin())
}

func TestNewCredentials(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		errIs    error
	}{
		{name: "valid", username: " jdoe ", password: "secret"},
		{name: "blank username", username: "  ", password: "secret", errIs: auth.ErrEmptyUsername},
		{name: "empty password", username: "jdoe", password: "", errIs: auth.ErrEmptyPassword},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			creds, err := auth.NewCredentials(c.username, c.password)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "jdoe", creds.Username())
			assert.Equal(t, "secret", creds.Password())
		})
	}
}
