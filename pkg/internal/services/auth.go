package services

import (
	"strings"

	"github.com/solarvale/agora/pkg/internal/database"
	"github.com/solarvale/agora/pkg/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateCredentials resolves a login identifier to an account and
// verifies the password against the stored hash. Identifiers containing
// an "@" are looked up by email, anything else by username. A missing
// account and a mismatched password fail identically so callers cannot
// probe which identifiers are registered.
func AuthenticateCredentials(identifier, password string) (models.Account, error) {
	var account models.Account

	field := "username"
	if strings.Contains(identifier, "@") {
		field = "email"
		identifier = NormalizeEmail(identifier)
	}

	if err := database.C.Where(field+" = ?", identifier).First(&account).Error; err != nil {
		return account, ErrAuthenticationFailed
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return account, ErrAuthenticationFailed
	}

	return account, nil
}
