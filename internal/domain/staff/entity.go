package staff

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole  = errors.New("invalid staff role")
	ErrInvalidEmail = errors.New("invalid email")
)

type Role string

const (
	RoleServer  Role = "server"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func NewRole(value string) (Role, error) {
	switch Role(value) {
	case RoleServer, RoleManager, RoleAdmin:
		return Role(value), nil
	default:
		return "", ErrInvalidRole
	}
}

type Staff struct {
	id           uuid.UUID
	email        string
	passwordHash string
	role         Role
	isActive     bool
}

func ReconstructStaff(id uuid.UUID, email, passwordHash string, role Role, isActive bool) *Staff {
	return &Staff{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
	}
}

func (s *Staff) ID() uuid.UUID        { return s.id }
func (s *Staff) Email() string        { return s.email }
func (s *Staff) PasswordHash() string { return s.passwordHash }
func (s *Staff) Role() Role           { return s.role }
func (s *Staff) IsActive() bool       { return s.isActive }
