package dbmysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coursehub/internal/config"
)

// NewMySQL returns a GORM DB instance connected to MySQL
func NewMySQL(cnf *config.Config) (*gorm.DB, error) {
	dsn := cnf.DSN()

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Warn),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot connect to MySQL: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sql.DB error: %w", err)
	}
	sqlDB.SetMaxOpenConns(cnf.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	log.Println("Connected to MySQL")
	return db, nil
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Course{},
		&Enrollment{},
		&MessageType{},
		&ChatMessage{},
		&ChatMessageText{},
		&ChatMessageFile{},
		&ChatMessageAudio{},
		&ChatMessageVideo{},
	)
}

// SeedMessageTypes inserts the supported message types if missing.
func SeedMessageTypes(db *gorm.DB) error {
	for _, name := range []string{TypeText, TypeFile, TypeAudio, TypeVideo} {
		var count int64
		if err := db.Model(&MessageType{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&MessageType{Name: name}).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
