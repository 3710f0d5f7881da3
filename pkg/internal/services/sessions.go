package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/solarvale/agora/pkg/internal/database"
	"github.com/solarvale/agora/pkg/internal/models"
	"github.com/spf13/viper"
)

const sessionTokenLength = 32

// NewSession opens a login session for the account and mints the opaque
// token handed back to the client.
func NewSession(account models.Account) (models.AuthSession, error) {
	buf := make([]byte, sessionTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return models.AuthSession{}, err
	}

	lifetime := viper.GetDuration("security.session_lifetime")
	if lifetime <= 0 {
		lifetime = 7 * 24 * time.Hour
	}

	session := models.AuthSession{
		Token:     hex.EncodeToString(buf),
		AccountID: account.ID,
		ExpiredAt: time.Now().Add(lifetime),
	}

	if err := database.C.Create(&session).Error; err != nil {
		return session, err
	}

	session.Account = account
	return session, nil
}

func GetSessionWithToken(token string) (models.AuthSession, error) {
	var session models.AuthSession
	if err := database.C.Preload("Account").Where("token = ?", token).First(&session).Error; err != nil {
		return session, err
	}
	if time.Now().After(session.ExpiredAt) {
		return session, fmt.Errorf("session has expired")
	}
	if !session.Account.IsActive {
		return session, fmt.Errorf("account has been deactivated")
	}
	return session, nil
}

func TerminateSession(session models.AuthSession) error {
	return database.C.Delete(&models.AuthSession{}, "id = ?", session.ID).Error
}

func TerminateSessionsWithAccount(accountId uint) error {
	return database.C.Delete(&models.AuthSession{}, "account_id = ?", accountId).Error
}

// DoAutoDatabaseCleanup drops sessions that outlived their expiry, it
// runs on the shared cron schedule.
func DoAutoDatabaseCleanup() {
	log.Debug().Msg("Now cleaning up expired sessions...")

	tx := database.C.Delete(&models.AuthSession{}, "expired_at < ?", time.Now())
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when cleaning up expired sessions.")
		return
	}

	log.Debug().Int64("affected", tx.RowsAffected).Msg("Cleaned up expired sessions.")
}
