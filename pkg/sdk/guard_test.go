package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize_NoPrincipalAlwaysDeniesToLogin(t *testing.T) {
	cases := []struct {
		name  string
		roles []string
		perms []string
	}{
		{"no restrictions", nil, nil},
		{"role restriction", []string{"ROLE_ADMIN"}, nil},
		{"permission restriction", nil, []string{"USER_READ"}},
		{"both", []string{"ROLE_ADMIN"}, []string{"USER_READ"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, DenyToLogin, Authorize(nil, tc.roles, tc.perms))
		})
	}

	// An incomplete principal counts as absent.
	assert.Equal(t, DenyToLogin, Authorize(&Credentials{Username: "ghost"}, nil, nil))
}

func TestAuthorize_Roles(t *testing.T) {
	receptionist := &Credentials{Username: "r", Token: "t", Roles: []string{"ROLE_RECEPTIONIST"}}

	assert.Equal(t, DenyToHome, Authorize(receptionist, []string{"ROLE_ADMIN"}, nil))
	assert.Equal(t, Allow, Authorize(receptionist, []string{"ROLE_ADMIN", "ROLE_RECEPTIONIST"}, nil))
	// No restriction admits any authenticated user.
	assert.Equal(t, Allow, Authorize(receptionist, nil, nil))
}

func TestAuthorize_Permissions(t *testing.T) {
	t.Run("explicit permission list", func(t *testing.T) {
		creds := &Credentials{
			Username:    "m",
			Token:       "t",
			Roles:       []string{"ROLE_MEDECIN"},
			Permissions: []string{"PATIENT_READ"},
		}
		assert.Equal(t, Allow, Authorize(creds, nil, []string{"PATIENT_READ"}))
		assert.Equal(t, DenyToHome, Authorize(creds, nil, []string{"PATIENT_WRITE"}))
	})

	t.Run("roles double as permissions without a list", func(t *testing.T) {
		creds := &Credentials{Username: "a", Token: "t", Roles: []string{"ROLE_ADMIN"}}
		assert.Equal(t, Allow, Authorize(creds, nil, []string{"ROLE_ADMIN"}))
		assert.Equal(t, DenyToHome, Authorize(creds, nil, []string{"PATIENT_READ"}))
	})

	t.Run("role check runs before permission check", func(t *testing.T) {
		creds := &Credentials{Username: "r", Token: "t", Roles: []string{"ROLE_RECEPTIONIST"}}
		assert.Equal(t, DenyToHome, Authorize(creds, []string{"ROLE_ADMIN"}, []string{"ROLE_RECEPTIONIST"}))
	})
}
