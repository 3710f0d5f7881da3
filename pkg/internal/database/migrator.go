package database

import (
	"github.com/solarvale/agora/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.SocialLink{},
	&models.AuthSession{},
	&models.Category{},
	&models.Poll{},
	&models.PollOption{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Vote{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
