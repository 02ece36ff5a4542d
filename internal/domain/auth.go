package domain

// Role tags a principal as one of the two account kinds. The set is closed:
// anything else fails validation.
type Role string

const (
	RoleStudent   Role = "Student"
	RoleProfessor Role = "Professor"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleProfessor
}

// Principal is the authenticated identity of one request, derived from a
// validated access token. It is never persisted.
type Principal struct {
	ID    string
	Role  Role
	Email string
}

// Credential is a stored password: the PBKDF2-derived hash and the per-user
// salt, both base64-encoded.
type Credential struct {
	Hash string
	Salt string
}
