package dto

import (
	"time"

	"salesdesk/internal/domains/user/model"
	"salesdesk/shared/constant"
)

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName,omitempty"`
	Role      string `json:"role"`
	Tier      string `json:"tier"`
	LastLogin string `json:"lastLogin,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Email = user.Email
	r.Role = user.Role
	r.Tier = user.Tier
	r.CreatedAt = user.CreatedAt.Format(time.RFC3339)

	if user.FullName != nil {
		r.FullName = *user.FullName
	}

	if user.LastLogin != nil {
		r.LastLogin = user.LastLogin.Format(time.RFC3339)
	}
}

type UpdateTierRequest struct {
	Tier string `json:"tier" validate:"required,oneof=free premium enterprise"`
}

func (r UpdateTierRequest) Valid() bool {
	switch r.Tier {
	case constant.TierFree, constant.TierPremium, constant.TierEnterprise:
		return true
	}

	return false
}
