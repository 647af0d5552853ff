package service

import (
	"context"
	"errors"
	"strings"

	"github.com/cfohub/cfohub/internal/hub/domain"
	"github.com/cfohub/cfohub/internal/hub/store"
	"github.com/cfohub/cfohub/pkg/cryptox"
	"github.com/cfohub/cfohub/pkg/idx"
)

type UserService struct {
	Store  store.Store
	Hasher *cryptox.Hasher
}

// RegisterParams holds the fields accepted when creating a user. Role
// defaults to colaborador when empty; EmploymentType and the remaining
// profile fields are optional.
type RegisterParams struct {
	Email          string
	Name           string
	Password       string
	Role           string
	EmploymentType string
	JobTitle       string
	Department     string
	Phone          string
}

// Register creates a new active account. The password must pass the strength
// policy, including the rule that it may not contain segments of the new
// account's own email address.
func (s *UserService) Register(ctx context.Context, p RegisterParams) (domain.User, error) {
	email := strings.TrimSpace(p.Email)

	role := domain.RoleColaborador
	if p.Role != "" {
		role = domain.Role(p.Role)
		if !role.Valid() {
			return domain.User{}, ErrInvalidRole
		}
	}

	var empType domain.EmploymentType
	if p.EmploymentType != "" {
		empType = domain.EmploymentType(p.EmploymentType)
		if !empType.Valid() {
			return domain.User{}, ErrInvalidEmploymentType
		}
	}

	if ok, reason := cryptox.ValidatePolicy(p.Password, email); !ok {
		return domain.User{}, &PasswordPolicyError{Reason: reason}
	}

	hash, err := s.Hasher.Hash(p.Password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:             idx.New().String(),
		Email:          email,
		Name:           strings.TrimSpace(p.Name),
		PasswordHash:   hash,
		Role:           role,
		EmploymentType: empType,
		JobTitle:       p.JobTitle,
		Department:     p.Department,
		Phone:          p.Phone,

		Active:            true,
		FirstLoginPending: true,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, u.ID)
}

// ChangePassword replaces the user's password after re-verifying the current
// one. The new password must pass the policy and must differ from the
// current one. Existing refresh tokens stay valid.
func (s *UserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.Hasher.Verify(current, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return ErrInvalidCredentials
		}
		return err
	}

	if ok, reason := cryptox.ValidatePolicy(next, u.Email); !ok {
		return &PasswordPolicyError{Reason: reason}
	}

	if err := s.Hasher.Verify(next, u.PasswordHash); err == nil {
		return ErrPasswordReuse
	} else if !errors.Is(err, cryptox.ErrPasswordMismatch) {
		return err
	}

	hash, err := s.Hasher.Hash(next)
	if err != nil {
		return err
	}

	return s.Store.Users().UpdatePasswordHash(ctx, userID, hash)
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
