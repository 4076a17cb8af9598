package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStudent    = "STUDENT"
	RoleInstructor = "INSTRUCTOR"
	RoleAdmin      = "ADMIN"
)

type User struct {
	ID           string  `gorm:"primaryKey;size:36"`
	Name         string  `gorm:"size:255"`
	Email        string  `gorm:"uniqueIndex;size:255"`
	PasswordHash string  `gorm:"size:255"`
	Role         string  `gorm:"size:20"`
	ThumbnailURL *string `gorm:"size:512"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleStudent
	}
	return nil
}
