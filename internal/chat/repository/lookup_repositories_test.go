package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursehub/internal/dbmysql"
)

func TestCourseRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT \\* FROM `courses`").
			WithArgs("course-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "instructor_id"}).
				AddRow("course-1", "Distributed Systems", "instructor-1"))

		course, err := NewCourseRepository(db).FindByID(context.Background(), "course-1")
		require.NoError(t, err)
		require.NotNil(t, course)
		assert.Equal(t, "instructor-1", course.InstructorID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent returns nil without error", func(t *testing.T) {
		db, mock, cleanup := setupTestDB(t)
		defer cleanup()

		mock.ExpectQuery("SELECT \\* FROM `courses`").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "instructor_id"}))

		course, err := NewCourseRepository(db).FindByID(context.Background(), "missing")
		require.NoError(t, err)
		assert.Nil(t, course)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEnrollmentRepository_IsEnrolled(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  bool
	}{
		{name: "active enrollment", count: 1, want: true},
		{name: "no enrollment", count: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			mock.ExpectQuery("SELECT count\\(\\*\\) FROM `enrollments`").
				WithArgs("student-1", "course-1", dbmysql.EnrollmentActive).
				WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(tt.count))

			enrolled, err := NewEnrollmentRepository(db).IsEnrolled(context.Background(), "student-1", "course-1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, enrolled)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMessageTypeRepository_FindByName(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	// Lookup is case-insensitive; the query always compares uppercase.
	mock.ExpectQuery("SELECT \\* FROM `message_types` WHERE UPPER\\(name\\)").
		WithArgs("TEXT").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("type-text", dbmysql.TypeText))

	messageType, err := NewMessageTypeRepository(db).FindByName(context.Background(), "text")
	require.NoError(t, err)
	require.NotNil(t, messageType)
	assert.Equal(t, dbmysql.TypeText, messageType.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `users`").
		WithArgs("asha@example.edu").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "role"}).
			AddRow("student-1", "Asha Rao", "asha@example.edu", dbmysql.RoleStudent))

	user, err := NewUserRepository(db).FindByEmail(context.Background(), "asha@example.edu")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "student-1", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
