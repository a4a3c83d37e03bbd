package sdk

import "fmt"

// Decision is the outcome of an access check for a protected surface.
type Decision int

const (
	// Allow renders the protected content.
	Allow Decision = iota
	// DenyToLogin sends the user to the login surface: no authenticated
	// principal is present.
	DenyToLogin
	// DenyToHome sends an authenticated user back to a safe surface: the
	// principal lacks a required role or permission.
	DenyToHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyToLogin:
		return "deny-to-login"
	case DenyToHome:
		return "deny-to-home"
	default:
		return fmt.Sprintf("decision %d", int(d))
	}
}

// Authorize decides whether the current principal may use a surface guarded
// by the given restrictions. Empty restrictions admit any authenticated
// principal; role and permission lists are satisfied by any single match.
// Authorize is a pure function: the caller performs whatever redirect the
// decision indicates.
func Authorize(creds *Credentials, requiredRoles, requiredPermissions []string) Decision {
	if !creds.Valid() {
		return DenyToLogin
	}
	if len(requiredRoles) > 0 && !anyMatch(requiredRoles, creds.HasRole) {
		return DenyToHome
	}
	if len(requiredPermissions) > 0 && !anyMatch(requiredPermissions, creds.HasPermission) {
		return DenyToHome
	}
	return Allow
}

func anyMatch(names []string, has func(string) bool) bool {
	for _, name := range names {
		if has(name) {
			return true
		}
	}
	return false
}
