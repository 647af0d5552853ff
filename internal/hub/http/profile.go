package http

import (
	"github.com/cfohub/cfohub/internal/hub/domain"
	"github.com/cfohub/cfohub/pkg/hubsdk"
)

// toProfile projects a user onto its public wire shape. The password hash
// stays server-side.
func toProfile(u domain.User) hubsdk.UserProfile {
	return hubsdk.UserProfile{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		Role:              u.Role.String(),
		EmploymentType:    string(u.EmploymentType),
		JobTitle:          u.JobTitle,
		Department:        u.Department,
		Phone:             u.Phone,
		Active:            u.Active,
		FirstLoginPending: u.FirstLoginPending,
		LastLogin:         u.LastLogin,
		CreatedAt:         u.CreatedAt,
	}
}
