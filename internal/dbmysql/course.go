package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Course struct {
	ID           string `gorm:"primaryKey;size:36"`
	Slug         string `gorm:"uniqueIndex;size:255"`
	Title        string `gorm:"size:255"`
	InstructorID string `gorm:"index;size:36"`
	Instructor   *User  `gorm:"foreignKey:InstructorID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

const EnrollmentActive = "ACTIVE"

type Enrollment struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"index:idx_enrollment_user_course;size:36"`
	CourseID  string `gorm:"index:idx_enrollment_user_course;size:36"`
	Status    string `gorm:"size:20"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *Enrollment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = EnrollmentActive
	}
	return nil
}
