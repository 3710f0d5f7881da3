package services

import (
	"errors"

	"github.com/solarvale/agora/pkg/internal/database"
	"github.com/solarvale/agora/pkg/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SocialResolution is handed to the login pipeline, which either signs
// the resolved user in or starts the account-creation flow when IsNew
// is set. NewAssociation stays false, linking an extra provider onto an
// existing account is not supported through this flow.
type SocialResolution struct {
	User           *models.Account    `json:"user"`
	Social         *models.SocialLink `json:"social"`
	IsNew          bool               `json:"is_new"`
	NewAssociation bool               `json:"new_association"`
}

func GetSocialLink(provider, uid string) (models.SocialLink, error) {
	var link models.SocialLink
	if err := database.C.Preload("Account").
		Where("provider = ? AND uid = ?", provider, uid).
		First(&link).Error; err != nil {
		return link, err
	}
	return link, nil
}

func NewSocialLink(account models.Account, provider, uid string, extra datatypes.JSONMap) (models.SocialLink, error) {
	link := models.SocialLink{
		Provider:  provider,
		UID:       uid,
		AccountID: account.ID,
		ExtraData: extra,
	}
	if err := database.C.Create(&link).Error; err != nil {
		return link, err
	}
	link.Account = account
	return link, nil
}

// ResolveSocialIdentity reconciles a provider assertion with the local
// accounts. When the link belongs to someone other than the in-session
// user the session is terminated but the in-session user is still the
// one returned; signing in over another live account is a known broken
// flow upstream of here and is kept as-is rather than merged or
// re-linked. When no link exists the session is terminated and the
// resolution is flagged as a new account.
func ResolveSocialIdentity(provider, uid string, current *models.Account, session *models.AuthSession) (SocialResolution, error) {
	resolution := SocialResolution{User: current}

	link, err := GetSocialLink(provider, uid)
	if err == nil {
		resolution.Social = &link
		if current != nil && link.AccountID != current.ID {
			if session != nil {
				_ = TerminateSession(*session)
			}
		} else if current == nil {
			resolution.User = &link.Account
		}
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		if session != nil {
			_ = TerminateSession(*session)
		}
		resolution.User = nil
	} else {
		return resolution, err
	}

	resolution.IsNew = resolution.User == nil
	return resolution, nil
}
