package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"coursehub/internal/chat/service/mocks"
	"coursehub/internal/common"
	"coursehub/internal/dbmysql"
)

// eventRecorder is a Broadcaster stub that records published events and
// exposes the course channel as a Go channel so tests can wait on
// background publishes.
type eventRecorder struct {
	mu         sync.Mutex
	userEvents []interface{}
	courseCh   chan interface{}
}

func newEventRecorder() *eventRecorder {
	return &eventRecorder{courseCh: make(chan interface{}, 32)}
}

func (r *eventRecorder) PublishToCourse(courseID string, event interface{}) {
	r.courseCh <- event
}

func (r *eventRecorder) PublishToUser(userID string, event interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.userEvents = append(r.userEvents, event)
	return nil
}

func (r *eventRecorder) nextCourseEvent(t *testing.T) interface{} {
	t.Helper()
	select {
	case ev := <-r.courseCh:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for course event")
		return nil
	}
}

func (r *eventRecorder) assertNoCourseEvent(t *testing.T) {
	t.Helper()
	select {
	case ev := <-r.courseCh:
		t.Fatalf("unexpected course event: %#v", ev)
	default:
	}
}

type serviceFixture struct {
	messages    *mocks.MockMessageRepository
	courses     *mocks.MockCourseRepository
	users       *mocks.MockUserRepository
	enrollments *mocks.MockEnrollmentRepository
	types       *mocks.MockMessageTypeRepository
	broadcaster *eventRecorder
	dispatcher  *Dispatcher
	svc         ChatService
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		messages:    mocks.NewMockMessageRepository(ctrl),
		courses:     mocks.NewMockCourseRepository(ctrl),
		users:       mocks.NewMockUserRepository(ctrl),
		enrollments: mocks.NewMockEnrollmentRepository(ctrl),
		types:       mocks.NewMockMessageTypeRepository(ctrl),
		broadcaster: newEventRecorder(),
		dispatcher:  NewDispatcher(2, 16),
	}
	t.Cleanup(f.dispatcher.Shutdown)

	f.svc = NewChatService(f.messages, f.courses, f.users, f.enrollments, f.types, f.broadcaster, f.dispatcher)
	return f
}

func testCourse() *dbmysql.Course {
	return &dbmysql.Course{ID: "course-1", Title: "Distributed Systems", InstructorID: "instructor-1"}
}

func testStudent() *dbmysql.User {
	return &dbmysql.User{ID: "student-1", Name: "Asha Rao", Role: dbmysql.RoleStudent}
}

func testTextType() *dbmysql.MessageType {
	return &dbmysql.MessageType{ID: "type-text", Name: dbmysql.TypeText}
}

// expectStudentAccess wires the happy-path lookups for an enrolled student.
func (f *serviceFixture) expectStudentAccess() {
	f.courses.EXPECT().FindByID(gomock.Any(), "course-1").Return(testCourse(), nil)
	f.users.EXPECT().FindByID(gomock.Any(), "student-1").Return(testStudent(), nil)
	f.enrollments.EXPECT().IsEnrolled(gomock.Any(), "student-1", "course-1").Return(true, nil)
}

func storedTextMessage(id, content string) *dbmysql.ChatMessage {
	return &dbmysql.ChatMessage{
		ID:         id,
		CourseID:   "course-1",
		SenderID:   "student-1",
		SenderRole: dbmysql.RoleStudent,
		Sender:     testStudent(),
		Type:       testTextType(),
		TextDetail: &dbmysql.ChatMessageText{MessageID: id, Content: content},
		CreatedAt:  time.Now().UTC(),
	}
}

func TestSendMessage_Text(t *testing.T) {
	f := newServiceFixture(t)
	f.expectStudentAccess()
	f.types.EXPECT().FindByName(gomock.Any(), dbmysql.TypeText).Return(testTextType(), nil)

	f.messages.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *dbmysql.ChatMessage) error {
			require.NotNil(t, msg.TextDetail)
			assert.Equal(t, "hello class", msg.TextDetail.Content)
			assert.Equal(t, dbmysql.RoleStudent, msg.SenderRole)
			msg.ID = "msg-1"
			return nil
		})
	f.messages.EXPECT().FindByID(gomock.Any(), "msg-1").Return(storedTextMessage("msg-1", "hello class"), nil)

	resp, err := f.svc.SendMessage(context.Background(), "course-1", "student-1", &SendMessageRequest{
		Type:    "TEXT",
		Content: "hello class",
	})
	require.NoError(t, err)

	assert.Equal(t, "msg-1", resp.ID)
	assert.Equal(t, "TEXT", resp.Type)
	assert.Equal(t, "Asha Rao", resp.SenderName)
	require.NotNil(t, resp.Content)
	assert.Equal(t, "hello class", *resp.Content)

	// The persisted snapshot is broadcast on the course channel once.
	ev := f.broadcaster.nextCourseEvent(t)
	broadcast, ok := ev.(*ChatMessageResponse)
	require.True(t, ok)
	assert.Equal(t, "msg-1", broadcast.ID)
	f.broadcaster.assertNoCourseEvent(t)
}

func TestSendMessage_NotEnrolled(t *testing.T) {
	f := newServiceFixture(t)
	f.courses.EXPECT().FindByID(gomock.Any(), "course-1").Return(testCourse(), nil)
	f.users.EXPECT().FindByID(gomock.Any(), "student-1").Return(testStudent(), nil)
	f.types.EXPECT().FindByName(gomock.Any(), dbmysql.TypeText).Return(testTextType(), nil)
	f.enrollments.EXPECT().IsEnrolled(gomock.Any(), "student-1", "course-1").Return(false, nil)

	_, err := f.svc.SendMessage(context.Background(), "course-1", "student-1", &SendMessageRequest{
		Type:    "TEXT",
		Content: "hi",
	})
	require.Error(t, err)
	assert.Equal(t, common.KindForbidden, common.KindOf(err))
	f.broadcaster.assertNoCourseEvent(t)
}

func TestSendMessage_InstructorBypassesEnrollment(t *testing.T) {
	f := newServiceFixture(t)
	instructor := &dbmysql.User{ID: "instructor-1", Name: "Dr. Mehta", Role: dbmysql.RoleInstructor}

	f.courses.EXPECT().FindByID(gomock.Any(), "course-1").Return(testCourse(), nil)
	f.users.EXPECT().FindByID(gomock.Any(), "instructor-1").Return(instructor, nil)
	f.types.EXPECT().FindByName(gomock.Any(), dbmysql.TypeText).Return(testTextType(), nil)
	// No IsEnrolled expectation: the instructor path never checks it.

	f.messages.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *dbmysql.ChatMessage) error {
			msg.ID = "msg-2"
			return nil
		})
	stored := storedTextMessage("msg-2", "welcome")
	stored.SenderID = "instructor-1"
	stored.SenderRole = dbmysql.RoleInstructor
	stored.Sender = instructor
	f.messages.EXPECT().FindByID(gomock.Any(), "msg-2").Return(stored, nil)

	resp, err := f.svc.SendMessage(context.Background(), "course-1", "instructor-1", &SendMessageRequest{
		Type:    "TEXT",
		Content: "welcome",
	})
	require.NoError(t, err)
	assert.Equal(t, dbmysql.RoleInstructor, resp.SenderRole)
	f.broadcaster.nextCourseEvent(t)
}

func TestSendMessage_LookupFailures(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(f *serviceFixture)
		wantKind  common.ErrorKind
		wantMsg   string
	}{
		{
			name: "course missing",
			mockSetup: func(f *serviceFixture) {
				f.courses.EXPECT().FindByID(gomock.Any(), "course-1").Return(nil, nil)
			},
			wantKind: common.KindNotFound,
			wantMsg:  "Course not found",
		},
		{
			name: "user missing",
			mockSetup: func(f *serviceFixture) {
				f.courses.EXPECT().FindByID(gomock.Any(), "course-1").Return(testCourse(), nil)
				f.users.EXPECT().FindByID(gomock.Any(), "student-1").Return(nil, nil)
			},
			wantKind: common.KindNotFound,
			wantMsg:  "User not found",
		},
		{
			name: "unknown type",
			mockSetup: func(f *serviceFixture) {
				f.courses.EXPECT().FindByID(gomock.Any(), "course-1").Return(testCourse(), nil)
				f.users.EXPECT().FindByID(gomock.Any(), "student-1").Return(testStudent(), nil)
				f.types.EXPECT().FindByName(gomock.Any(), "STICKER").Return(nil, nil)
			},
			wantKind: common.KindNotFound,
			wantMsg:  "Invalid message type: STICKER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			tt.mockSetup(f)

			req := &SendMessageRequest{Type: "TEXT", Content: "hi"}
			if tt.name == "unknown type" {
				req.Type = "STICKER"
			}
			_, err := f.svc.SendMessage(context.Background(), "course-1", "student-1", req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, common.KindOf(err))
			assert.Equal(t, tt.wantMsg, common.MessageOf(err))
		})
	}
}

func TestGetMessages_OffsetMode(t *testing.T) {
	f := newServiceFixture(t)
	f.expectStudentAccess()

	window := []*dbmysql.ChatMessage{
		storedTextMessage("msg-1", "first"),
		storedTextMessage("msg-2", "second"),
	}
	f.messages.EXPECT().ListByCourseAsc(gomock.Any(), "course-1", 2, 20).Return(window, nil)
	f.messages.EXPECT().CountByCourse(gomock.Any(), "course-1").Return(int64(45), nil)

	resp, err := f.svc.GetMessages(context.Background(), "course-1", "student-1", &HistoryQuery{Page: 2, Size: 20})
	require.NoError(t, err)

	assert.Len(t, resp.Messages, 2)
	require.NotNil(t, resp.Page)
	assert.Equal(t, 2, *resp.Page)
	require.NotNil(t, resp.TotalElements)
	assert.Equal(t, int64(45), *resp.TotalElements)
	require.NotNil(t, resp.TotalPages)
	assert.Equal(t, 3, *resp.TotalPages)
	assert.Equal(t, "text", resp.Messages[0].Type)
}

func TestGetMessages_BothCursorsRejected(t *testing.T) {
	f := newServiceFixture(t)
	f.expectStudentAccess()

	_, err := f.svc.GetMessages(context.Background(), "course-1", "student-1", &HistoryQuery{
		Size:            20,
		BeforeMessageID: "msg-5",
		AfterMessageID:  "msg-9",
	})
	require.Error(t, err)
	assert.Equal(t, common.KindBadRequest, common.KindOf(err))
}

func TestGetMessages_KeysetBefore(t *testing.T) {
	f := newServiceFixture(t)
	f.expectStudentAccess()

	ref := storedTextMessage("msg-5", "anchor")
	f.messages.EXPECT().FindByID(gomock.Any(), "msg-5").Return(ref, nil)

	older := []*dbmysql.ChatMessage{
		storedTextMessage("msg-3", "older"),
		storedTextMessage("msg-4", "newer"),
	}
	f.messages.EXPECT().ListBefore(gomock.Any(), "course-1", ref, 20).Return(older, nil)

	resp, err := f.svc.GetMessages(context.Background(), "course-1", "student-1", &HistoryQuery{
		Size:            20,
		BeforeMessageID: "msg-5",
	})
	require.NoError(t, err)

	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "msg-3", resp.Messages[0].ID)
	assert.Equal(t, "msg-4", resp.Messages[1].ID)
	// Cursor mode carries no totals.
	assert.Nil(t, resp.Page)
	assert.Nil(t, resp.TotalElements)
	assert.Nil(t, resp.TotalPages)
}

func TestGetMessages_ReferenceNotFound(t *testing.T) {
	tests := []struct {
		name string
		ref  *dbmysql.ChatMessage
	}{
		{name: "missing reference", ref: nil},
		{name: "reference in another course", ref: &dbmysql.ChatMessage{ID: "msg-5", CourseID: "course-other"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			f.expectStudentAccess()
			f.messages.EXPECT().FindByID(gomock.Any(), "msg-5").Return(tt.ref, nil)

			_, err := f.svc.GetMessages(context.Background(), "course-1", "student-1", &HistoryQuery{
				Size:           20,
				AfterMessageID: "msg-5",
			})
			require.Error(t, err)
			assert.Equal(t, common.KindNotFound, common.KindOf(err))
		})
	}
}

func TestGetMessages_PageBounds(t *testing.T) {
	tests := []struct {
		name  string
		query *HistoryQuery
	}{
		{name: "negative page", query: &HistoryQuery{Page: -1, Size: 20}},
		{name: "zero size", query: &HistoryQuery{Size: 0}},
		{name: "oversized page", query: &HistoryQuery{Size: 101}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			_, err := f.svc.GetMessages(context.Background(), "course-1", "student-1", tt.query)
			require.Error(t, err)
			assert.Equal(t, common.KindBadRequest, common.KindOf(err))
		})
	}
}

func TestListMessages_PageInfo(t *testing.T) {
	f := newServiceFixture(t)
	f.expectStudentAccess()

	f.messages.EXPECT().
		PageByCourse(gomock.Any(), "course-1", "FILE", 1, 10).
		Return([]*dbmysql.ChatMessage{storedTextMessage("msg-9", "x")}, int64(11), nil)

	resp, err := f.svc.ListMessages(context.Background(), "course-1", "student-1", "file", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Page.Number)
	assert.Equal(t, int64(11), resp.Page.TotalElements)
	assert.Equal(t, 2, resp.Page.TotalPages)
	assert.False(t, resp.Page.First)
	assert.True(t, resp.Page.Last)
}

func TestUpdateMessage_Rules(t *testing.T) {
	fileType := &dbmysql.MessageType{ID: "type-file", Name: dbmysql.TypeFile}

	tests := []struct {
		name     string
		stored   *dbmysql.ChatMessage
		req      *UpdateMessageRequest
		wantKind common.ErrorKind
	}{
		{
			name: "not the owner",
			stored: &dbmysql.ChatMessage{
				ID: "msg-1", CourseID: "course-1", SenderID: "someone-else", Type: testTextType(),
			},
			req:      &UpdateMessageRequest{Type: "TEXT", Content: "edited"},
			wantKind: common.KindForbidden,
		},
		{
			name: "non-text message",
			stored: &dbmysql.ChatMessage{
				ID: "msg-1", CourseID: "course-1", SenderID: "student-1", Type: fileType,
			},
			req:      &UpdateMessageRequest{Type: "TEXT", Content: "edited"},
			wantKind: common.KindBadRequest,
		},
		{
			name: "request type not text",
			stored: &dbmysql.ChatMessage{
				ID: "msg-1", CourseID: "course-1", SenderID: "student-1", Type: testTextType(),
			},
			req:      &UpdateMessageRequest{Type: "FILE", Content: "edited"},
			wantKind: common.KindBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			f.expectStudentAccess()
			f.messages.EXPECT().FindByID(gomock.Any(), "msg-1").Return(tt.stored, nil)

			_, err := f.svc.UpdateMessage(context.Background(), "course-1", "msg-1", "student-1", tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, common.KindOf(err))
			f.broadcaster.assertNoCourseEvent(t)
		})
	}
}

func TestUpdateMessage_Success(t *testing.T) {
	f := newServiceFixture(t)
	f.expectStudentAccess()

	f.messages.EXPECT().FindByID(gomock.Any(), "msg-1").Return(storedTextMessage("msg-1", "original"), nil)
	f.messages.EXPECT().UpdateText(gomock.Any(), "msg-1", "edited").Return(nil)
	f.messages.EXPECT().FindByID(gomock.Any(), "msg-1").Return(storedTextMessage("msg-1", "edited"), nil)

	resp, err := f.svc.UpdateMessage(context.Background(), "course-1", "msg-1", "student-1", &UpdateMessageRequest{
		Type:    "TEXT",
		Content: "edited",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Content)
	assert.Equal(t, "edited", *resp.Content)

	ev := f.broadcaster.nextCourseEvent(t)
	updated, ok := ev.(*MessageUpdatedEvent)
	require.True(t, ok)
	assert.Equal(t, "messageUpdated", updated.Type)
	assert.Equal(t, "msg-1", updated.MessageID)
	assert.Equal(t, "edited", updated.Content)
}

func TestDeleteMessage_Permissions(t *testing.T) {
	tests := []struct {
		name      string
		userID    string
		user      *dbmysql.User
		canDelete bool
	}{
		{
			name:      "message owner",
			userID:    "student-1",
			user:      testStudent(),
			canDelete: true,
		},
		{
			name:      "course instructor",
			userID:    "instructor-1",
			user:      &dbmysql.User{ID: "instructor-1", Role: dbmysql.RoleInstructor},
			canDelete: true,
		},
		{
			name:      "platform admin",
			userID:    "admin-1",
			user:      &dbmysql.User{ID: "admin-1", Role: dbmysql.RoleAdmin},
			canDelete: true,
		},
		{
			name:      "another student",
			userID:    "student-2",
			user:      &dbmysql.User{ID: "student-2", Role: dbmysql.RoleStudent},
			canDelete: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t)
			f.courses.EXPECT().FindByID(gomock.Any(), "course-1").Return(testCourse(), nil)
			f.users.EXPECT().FindByID(gomock.Any(), tt.userID).Return(tt.user, nil)
			if tt.userID != "instructor-1" {
				f.enrollments.EXPECT().IsEnrolled(gomock.Any(), tt.userID, "course-1").Return(true, nil)
			}

			stored := storedTextMessage("msg-1", "bye")
			f.messages.EXPECT().FindByID(gomock.Any(), "msg-1").Return(stored, nil)
			if tt.canDelete {
				f.messages.EXPECT().Delete(gomock.Any(), stored).Return(nil)
			}

			err := f.svc.DeleteMessage(context.Background(), "course-1", "msg-1", tt.userID)
			if !tt.canDelete {
				require.Error(t, err)
				assert.Equal(t, common.KindForbidden, common.KindOf(err))
				f.broadcaster.assertNoCourseEvent(t)
				return
			}
			require.NoError(t, err)

			ev := f.broadcaster.nextCourseEvent(t)
			deleted, ok := ev.(*MessageDeletedEvent)
			require.True(t, ok)
			assert.Equal(t, "messageDeleted", deleted.Type)
			assert.Equal(t, tt.userID, deleted.DeletedBy)
		})
	}
}

func TestDeleteMessage_WrongCourse(t *testing.T) {
	f := newServiceFixture(t)
	f.expectStudentAccess()

	foreign := storedTextMessage("msg-1", "elsewhere")
	foreign.CourseID = "course-other"
	f.messages.EXPECT().FindByID(gomock.Any(), "msg-1").Return(foreign, nil)

	err := f.svc.DeleteMessage(context.Background(), "course-1", "msg-1", "student-1")
	require.Error(t, err)
	assert.Equal(t, common.KindNotFound, common.KindOf(err))
}

func TestAuthorizeCourseAccess(t *testing.T) {
	f := newServiceFixture(t)
	f.expectStudentAccess()

	require.NoError(t, f.svc.AuthorizeCourseAccess(context.Background(), "course-1", "student-1"))

	f.courses.EXPECT().FindByID(gomock.Any(), "course-1").Return(testCourse(), nil)
	f.users.EXPECT().FindByID(gomock.Any(), "student-2").Return(&dbmysql.User{ID: "student-2"}, nil)
	f.enrollments.EXPECT().IsEnrolled(gomock.Any(), "student-2", "course-1").Return(false, nil)

	err := f.svc.AuthorizeCourseAccess(context.Background(), "course-1", "student-2")
	require.Error(t, err)
	assert.Equal(t, common.KindForbidden, common.KindOf(err))
}

// A course discussion from both sides: the instructor posts, the student
// reads and replies, and moderation rules hold.
func TestCourseChatScenario(t *testing.T) {
	f := newServiceFixture(t)
	instructor := &dbmysql.User{ID: "instructor-1", Name: "Dr. Mehta", Role: dbmysql.RoleInstructor}

	// Instructor opens the discussion.
	f.courses.EXPECT().FindByID(gomock.Any(), "course-1").Return(testCourse(), nil)
	f.users.EXPECT().FindByID(gomock.Any(), "instructor-1").Return(instructor, nil)
	f.types.EXPECT().FindByName(gomock.Any(), dbmysql.TypeText).Return(testTextType(), nil)
	f.messages.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *dbmysql.ChatMessage) error {
			msg.ID = "msg-1"
			return nil
		})
	welcome := storedTextMessage("msg-1", "welcome everyone")
	welcome.SenderID = "instructor-1"
	welcome.Sender = instructor
	welcome.SenderRole = dbmysql.RoleInstructor
	f.messages.EXPECT().FindByID(gomock.Any(), "msg-1").Return(welcome, nil)

	_, err := f.svc.SendMessage(context.Background(), "course-1", "instructor-1", &SendMessageRequest{
		Type: "TEXT", Content: "welcome everyone",
	})
	require.NoError(t, err)
	f.broadcaster.nextCourseEvent(t)

	// An enrolled student reads the history.
	f.expectStudentAccess()
	f.messages.EXPECT().ListByCourseAsc(gomock.Any(), "course-1", 0, 20).
		Return([]*dbmysql.ChatMessage{welcome}, nil)
	f.messages.EXPECT().CountByCourse(gomock.Any(), "course-1").Return(int64(1), nil)

	history, err := f.svc.GetMessages(context.Background(), "course-1", "student-1", &HistoryQuery{Size: 20})
	require.NoError(t, err)
	require.Len(t, history.Messages, 1)
	assert.Equal(t, "welcome everyone", *history.Messages[0].Content)

	// The student cannot delete the instructor's message.
	f.expectStudentAccess()
	f.messages.EXPECT().FindByID(gomock.Any(), "msg-1").Return(welcome, nil)
	err = f.svc.DeleteMessage(context.Background(), "course-1", "msg-1", "student-1")
	require.Error(t, err)
	assert.Equal(t, common.KindForbidden, common.KindOf(err))

	// The instructor can.
	f.courses.EXPECT().FindByID(gomock.Any(), "course-1").Return(testCourse(), nil)
	f.users.EXPECT().FindByID(gomock.Any(), "instructor-1").Return(instructor, nil)
	f.messages.EXPECT().FindByID(gomock.Any(), "msg-1").Return(welcome, nil)
	f.messages.EXPECT().Delete(gomock.Any(), welcome).Return(nil)
	require.NoError(t, f.svc.DeleteMessage(context.Background(), "course-1", "msg-1", "instructor-1"))
	f.broadcaster.nextCourseEvent(t)
}

func TestSendMessage_RepositoryFailure(t *testing.T) {
	f := newServiceFixture(t)
	f.expectStudentAccess()
	f.types.EXPECT().FindByName(gomock.Any(), dbmysql.TypeText).Return(testTextType(), nil)
	f.messages.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected"))

	_, err := f.svc.SendMessage(context.Background(), "course-1", "student-1", &SendMessageRequest{
		Type:    "TEXT",
		Content: "hi",
	})
	require.Error(t, err)
	assert.Equal(t, common.KindInternal, common.KindOf(err))
	// Internal details never leak to the client message.
	assert.NotContains(t, common.MessageOf(err), "deadlock")
	f.broadcaster.assertNoCourseEvent(t)
}
