package domain

import "time"

// Role is the enumerated authorization tier. The set is fixed; anything
// else must be rejected at the boundary.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleGestor      Role = "gestor"
	RoleColaborador Role = "colaborador"
	RoleCliente     Role = "cliente"
	RoleVisitante   Role = "visitante"
)

// Roles lists every valid role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleGestor, RoleColaborador, RoleCliente, RoleVisitante}
}

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGestor, RoleColaborador, RoleCliente, RoleVisitante:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// EmploymentType tags collaborators with their contract kind. Empty for
// non-collaborator accounts.
type EmploymentType string

const (
	EmploymentCLT EmploymentType = "CLT"
	EmploymentPJ  EmploymentType = "PJ"
)

// Valid reports whether t is a known employment type.
func (t EmploymentType) Valid() bool {
	return t == EmploymentCLT || t == EmploymentPJ
}

// User is the credential-store record. Email is unique; the password is
// stored only as an Argon2id hash.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role

	EmploymentType EmploymentType // empty unless the user is a collaborator
	JobTitle       string
	Department     string
	Phone          string

	// Active is the soft-delete switch; inactive users keep their history
	// but cannot authenticate.
	Active bool
	// FirstLoginPending forces a password change before normal use.
	FirstLoginPending bool

	CreatedAt time.Time
	UpdatedAt time.Time
	LastLogin *time.Time
}
