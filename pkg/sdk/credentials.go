package sdk

// Credentials is the authenticated principal held client-side. It mirrors the
// signin response payload and is persisted as-is by CredentialStore
// implementations.
type Credentials struct {
	Username    string   `json:"username"`
	Email       string   `json:"email,omitempty"`
	Roles       []string `json:"roles"`
	Token       string   `json:"token"`
	Permissions []string `json:"permissions,omitempty"`
}

// Valid reports whether the credentials are complete enough to authenticate
// requests. Stores refuse to persist invalid credentials, so a loaded
// principal is either fully usable or absent, never half-populated.
func (c *Credentials) Valid() bool {
	return c != nil && c.Username != "" && c.Token != ""
}

// HasRole reports whether the principal carries the named role.
func (c *Credentials) HasRole(name string) bool {
	if c == nil {
		return false
	}
	for _, role := range c.Roles {
		if role == name {
			return true
		}
	}
	return false
}

// HasPermission reports whether the principal carries the named permission.
// When the backend sent no explicit permission list, role names are matched
// as permission names: the backend's authority names double as permissions
// (ROLE_ADMIN, USER_READ, ...), so the fallback keeps authorization outcomes
// identical for builds that only send roles.
func (c *Credentials) HasPermission(name string) bool {
	if c == nil {
		return false
	}
	if c.Permissions != nil {
		for _, perm := range c.Permissions {
			if perm == name {
				return true
			}
		}
		return false
	}
	return c.HasRole(name)
}
