package common

// Role is the closed set of user categories. It determines which dashboard
// a session may open and which API operations it may call. Adding a role
// means touching every exhaustive switch over this type, which is the point.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleTeacher   Role = "teacher"
	RoleStudent   Role = "student"
	RoleDeveloper Role = "developer"
)

// ParseRole maps a raw string onto a known Role. Unknown values return
// ok=false rather than an error so callers can fall back to anonymous
// handling without an errors.Is dance.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleDeveloper:
		return Role(s), true
	}
	return "", false
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}
