package service

import (
	"context"
	"fmt"

	"coursehub/internal/common"
	"coursehub/internal/dbmysql"
)

// resolveParticipants loads the course and the user, mapping absence to
// NotFound.
func (s *chatService) resolveParticipants(ctx context.Context, courseID, userID string) (*dbmysql.Course, *dbmysql.User, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, nil, common.Internal("failed to load course", err)
	}
	if course == nil {
		return nil, nil, common.NotFound("Course not found")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, common.Internal("failed to load user", err)
	}
	if user == nil {
		return nil, nil, common.NotFound("User not found")
	}
	return course, user, nil
}

// authorize grants course access iff the user is the course instructor or
// has an active enrollment.
func (s *chatService) authorize(ctx context.Context, course *dbmysql.Course, user *dbmysql.User) error {
	if course.InstructorID == user.ID {
		return nil
	}
	enrolled, err := s.enrollments.IsEnrolled(ctx, user.ID, course.ID)
	if err != nil {
		return common.Internal("failed to check enrollment", err)
	}
	if !enrolled {
		return common.Forbidden("User not authorized to access messages in this course")
	}
	return nil
}

// AuthorizeCourseAccess exposes the access policy to the WebSocket
// subscribe endpoint.
func (s *chatService) AuthorizeCourseAccess(ctx context.Context, courseID, userID string) error {
	course, user, err := s.resolveParticipants(ctx, courseID, userID)
	if err != nil {
		return err
	}
	return s.authorize(ctx, course, user)
}

// Only the original sender, the course instructor, or a platform admin may
// delete a message.
func canDeleteMessage(msg *dbmysql.ChatMessage, user *dbmysql.User, course *dbmysql.Course) bool {
	return msg.SenderID == user.ID ||
		course.InstructorID == user.ID ||
		user.Role == dbmysql.RoleAdmin
}

// resolveType maps a type name to its lookup row, case-insensitively.
func (s *chatService) resolveType(ctx context.Context, name string) (*dbmysql.MessageType, error) {
	messageType, err := s.types.FindByName(ctx, name)
	if err != nil {
		return nil, common.Internal("failed to load message type", err)
	}
	if messageType == nil {
		return nil, common.NotFound(fmt.Sprintf("Invalid message type: %s", name))
	}
	return messageType, nil
}
