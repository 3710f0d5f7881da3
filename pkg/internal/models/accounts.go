package models

import (
	"strings"

	"gorm.io/datatypes"
)

type Account struct {
	BaseModel

	Username  string `json:"username" gorm:"uniqueIndex" validate:"required,max=30"`
	Email     string `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	FirstName string `json:"first_name" validate:"max=30"`
	LastName  string `json:"last_name" validate:"max=30"`

	// Bcrypt digest of the password, never the plaintext.
	Password string `json:"-"`

	IsStaff     bool `json:"is_staff"`
	IsSuperuser bool `json:"is_superuser"`

	// IsActive acts as the deletion marker. Deactivated accounts keep
	// their row so votes and social links stay resolvable.
	IsActive bool `json:"is_active" gorm:"default:true"`
}

func (v Account) FullName() string {
	return strings.TrimSpace(v.FirstName + " " + v.LastName)
}

// SocialLink ties a third-party provider identity to a local account.
type SocialLink struct {
	BaseModel

	Provider  string            `json:"provider" gorm:"uniqueIndex:idx_social_identity" validate:"required"`
	UID       string            `json:"uid" gorm:"uniqueIndex:idx_social_identity" validate:"required"`
	AccountID uint              `json:"account_id"`
	Account   Account           `json:"account"`
	ExtraData datatypes.JSONMap `json:"extra_data"`
}
