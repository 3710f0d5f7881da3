package database

import (
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var C *gorm.DB

func NewGorm() error {
	var err error

	dialector := postgres.Open(viper.GetString("database.dsn"))
	C, err = gorm.Open(dialector, &gorm.Config{
		// Unique violations come back as gorm.ErrDuplicatedKey, the
		// vote ledger and account factory rely on that.
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
		PrepareStmt:    viper.GetBool("database.prepare_stmt"),
	})

	return err
}
