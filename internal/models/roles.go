package models

// API key roles
const (
	RoleAdmin = "admin" // Key management and usage reporting
	RoleUser  = "user"  // Generation endpoints only
)

// ValidRole reports whether role is one the API understands.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
