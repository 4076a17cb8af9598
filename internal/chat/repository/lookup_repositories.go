package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"coursehub/internal/dbmysql"
)

// CourseRepository resolves course references. Finders return (nil, nil)
// when the record is absent.
type CourseRepository interface {
	FindByID(ctx context.Context, id string) (*dbmysql.Course, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*dbmysql.User, error)
	FindByEmail(ctx context.Context, email string) (*dbmysql.User, error)
}

type EnrollmentRepository interface {
	IsEnrolled(ctx context.Context, userID, courseID string) (bool, error)
}

type MessageTypeRepository interface {
	// FindByName matches case-insensitively.
	FindByName(ctx context.Context, name string) (*dbmysql.MessageType, error)
}

type courseRepo struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) FindByID(ctx context.Context, id string) (*dbmysql.Course, error) {
	var course dbmysql.Course
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type enrollmentRepo struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) IsEnrolled(ctx context.Context, userID, courseID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Enrollment{}).
		Where("user_id = ? AND course_id = ? AND status = ?", userID, courseID, dbmysql.EnrollmentActive).
		Count(&count).Error
	return count > 0, err
}

type messageTypeRepo struct {
	db *gorm.DB
}

func NewMessageTypeRepository(db *gorm.DB) MessageTypeRepository {
	return &messageTypeRepo{db: db}
}

func (r *messageTypeRepo) FindByName(ctx context.Context, name string) (*dbmysql.MessageType, error) {
	var messageType dbmysql.MessageType
	err := r.db.WithContext(ctx).
		Where("UPPER(name) = ?", strings.ToUpper(name)).
		First(&messageType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &messageType, nil
}
