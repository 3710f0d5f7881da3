package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/solarvale/agora/pkg/internal/database"
	"github.com/solarvale/agora/pkg/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var usernameRegexp = regexp.MustCompile(`^[\w.]+$`)

// CreateAccount persists a new account with a hashed password. Username
// and email are both required, unique collisions surface as
// gorm.ErrDuplicatedKey.
func CreateAccount(account models.Account, password string) (models.Account, error) {
	if len(account.Username) == 0 {
		return account, fmt.Errorf("the given username must be set")
	}
	if len(account.Email) == 0 {
		return account, fmt.Errorf("the given email must be set")
	}
	if !usernameRegexp.MatchString(account.Username) {
		return account, fmt.Errorf("username may only contain letters, numbers and ./_ characters")
	}

	account.Email = NormalizeEmail(account.Email)
	account.IsActive = true

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return account, err
	}
	account.Password = string(hash)

	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}

	return account, nil
}

func NewAccount(username, email, password string) (models.Account, error) {
	return CreateAccount(models.Account{
		Username: username,
		Email:    email,
	}, password)
}

func NewSuperuserAccount(username, email, password string) (models.Account, error) {
	return CreateAccount(models.Account{
		Username:    username,
		Email:       email,
		IsStaff:     true,
		IsSuperuser: true,
	}, password)
}

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, ErrAccountNotFound
	}
	return account, nil
}

// DeactivateAccount marks the account inactive instead of deleting the
// row, so votes and social links keep resolving. Any live sessions of
// the account are terminated alongside.
func DeactivateAccount(account models.Account) error {
	if err := database.C.Model(&account).Update("is_active", false).Error; err != nil {
		return err
	}
	if err := TerminateSessionsWithAccount(account.ID); err != nil {
		log.Warn().Err(err).Uint("uid", account.ID).Msg("An error occurred when terminating sessions of deactivated account...")
	}
	return nil
}

// EmailAccount delivers a notice to the account's mailbox,
// fire-and-forget from the caller's perspective.
func EmailAccount(account models.Account, subject, message string) {
	if err := SendMail(account.Email, subject, message); err != nil {
		log.Warn().Err(err).Str("email", account.Email).Msg("An error occurred when emailing account...")
	} else {
		log.Debug().Uint("uid", account.ID).Msg("Emailed account.")
	}
}

// NormalizeEmail lowercases the domain part of the address, the local
// part is kept as-is.
func NormalizeEmail(email string) string {
	segments := strings.SplitN(email, "@", 2)
	if len(segments) != 2 {
		return email
	}
	return segments[0] + "@" + strings.ToLower(segments[1])
}
