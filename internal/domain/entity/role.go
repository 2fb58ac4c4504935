package entity

// Role represents the access level of a client profile.
type Role string

const (
	// RoleUser indicates a regular client.
	RoleUser Role = "USER"
	// RoleAdmin indicates a client with catalog moderation rights.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
