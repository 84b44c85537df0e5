package domain

import "time"

// Staff roles. Role names are stored verbatim on the profile row; there is
// no separate roles table because the set is fixed by the business.
const (
	RoleDirektur  = "Direktur"
	RoleAdmin     = "Admin"
	RoleMarketing = "Marketing"
	RoleSales     = "Sales"
	RoleProduksi  = "Produksi"
)

// Roles lists every valid staff role.
var Roles = []string{RoleDirektur, RoleAdmin, RoleMarketing, RoleSales, RoleProduksi}

// ValidRole reports whether name is one of the known staff roles.
func ValidRole(name string) bool {
	for _, r := range Roles {
		if r == name {
			return true
		}
	}
	return false
}

// Profile is a staff account.
type Profile struct {
	ID           string
	Email        string // unique, used for login
	DisplayName  string
	Role         string
	PasswordHash string // argon2 encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
