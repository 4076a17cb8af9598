package service

import (
	"context"
	"log"
	"strings"
	"time"

	"coursehub/internal/chat/repository"
	"coursehub/internal/common"
	"coursehub/internal/dbmysql"
)

// Broadcaster publishes domain events to course-scoped and user-scoped
// channels.
type Broadcaster interface {
	PublishToCourse(courseID string, event interface{})
	PublishToUser(userID string, event interface{}) error
}

// ChatService defines the interface exposed to the handler layer
type ChatService interface {
	SendMessage(ctx context.Context, courseID, senderID string, req *SendMessageRequest) (*ChatMessageResponse, error)
	SendMessageAsync(ctx context.Context, courseID, senderID string, req *AsyncSendMessageRequest) (*AsyncMessageAcknowledgment, error)
	ListMessages(ctx context.Context, courseID, userID, typeFilter string, page, size int) (*PaginatedMessages, error)
	GetMessages(ctx context.Context, courseID, userID string, query *HistoryQuery) (*ChatMessagesListResponse, error)
	UpdateMessage(ctx context.Context, courseID, messageID, userID string, req *UpdateMessageRequest) (*ChatMessageResponse, error)
	DeleteMessage(ctx context.Context, courseID, messageID, userID string) error
	AuthorizeCourseAccess(ctx context.Context, courseID, userID string) error
}

type chatService struct {
	messages    repository.MessageRepository
	courses     repository.CourseRepository
	users       repository.UserRepository
	enrollments repository.EnrollmentRepository
	types       repository.MessageTypeRepository
	broadcaster Broadcaster
	dispatcher  *Dispatcher
}

// Constructor used in DI/wire
func NewChatService(
	messages repository.MessageRepository,
	courses repository.CourseRepository,
	users repository.UserRepository,
	enrollments repository.EnrollmentRepository,
	types repository.MessageTypeRepository,
	broadcaster Broadcaster,
	dispatcher *Dispatcher,
) ChatService {
	return &chatService{
		messages:    messages,
		courses:     courses,
		users:       users,
		enrollments: enrollments,
		types:       types,
		broadcaster: broadcaster,
		dispatcher:  dispatcher,
	}
}

// SendMessage validates, persists and immediately broadcasts a complete
// message.
func (s *chatService) SendMessage(ctx context.Context, courseID, senderID string, req *SendMessageRequest) (*ChatMessageResponse, error) {
	course, sender, err := s.resolveParticipants(ctx, courseID, senderID)
	if err != nil {
		return nil, err
	}
	messageType, err := s.resolveType(ctx, req.Type)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, course, sender); err != nil {
		return nil, err
	}

	msg := &dbmysql.ChatMessage{
		CourseID:   course.ID,
		SenderID:   sender.ID,
		SenderRole: sender.Role,
		TypeID:     messageType.ID,
	}
	if err := attachRequestDetail(msg, messageType.Name, req); err != nil {
		return nil, err
	}

	// Skeleton and detail are written in one transaction; a detail failure
	// rolls back the skeleton insert.
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, common.Internal("Failed to send message. Please try again later.", err)
	}

	full, err := s.messages.FindByID(ctx, msg.ID)
	if err != nil || full == nil {
		return nil, common.Internal("Failed to send message. Please try again later.", err)
	}

	resp := toResponse(full)
	log.Printf("message sent: course=%s message=%s type=%s", courseID, msg.ID, messageType.Name)
	s.broadcaster.PublishToCourse(courseID, resp)

	return resp, nil
}

// attachRequestDetail constructs the detail variant matching the type tag.
// The sync request carries the media URL in the content field.
func attachRequestDetail(msg *dbmysql.ChatMessage, typeName string, req *SendMessageRequest) error {
	switch typeName {
	case dbmysql.TypeText:
		msg.TextDetail = &dbmysql.ChatMessageText{Content: req.Content}
	case dbmysql.TypeFile:
		msg.FileDetail = &dbmysql.ChatMessageFile{
			FileURL:  req.Content,
			FileName: req.FileName,
			FileSize: req.FileSize,
		}
	case dbmysql.TypeAudio:
		msg.AudioDetail = &dbmysql.ChatMessageAudio{
			AudioURL: req.Content,
			FileName: req.FileName,
			FileSize: req.FileSize,
			Duration: durationSeconds(req.Duration),
		}
	case dbmysql.TypeVideo:
		msg.VideoDetail = &dbmysql.ChatMessageVideo{
			VideoURL:     req.Content,
			FileName:     req.FileName,
			FileSize:     req.FileSize,
			ThumbnailURL: req.ThumbnailURL,
			Duration:     durationSeconds(req.Duration),
		}
	default:
		return common.BadRequest("Unsupported message type: " + typeName)
	}
	return nil
}

// ListMessages returns offset-paginated full responses, optionally filtered
// by type.
func (s *chatService) ListMessages(ctx context.Context, courseID, userID, typeFilter string, page, size int) (*PaginatedMessages, error) {
	if err := validatePageBounds(page, size); err != nil {
		return nil, err
	}
	course, user, err := s.resolveParticipants(ctx, courseID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, course, user); err != nil {
		return nil, err
	}

	messages, total, err := s.messages.PageByCourse(ctx, courseID, strings.ToUpper(typeFilter), page, size)
	if err != nil {
		return nil, common.Internal("Failed to retrieve messages. Please try again later.", err)
	}

	content := make([]*ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		content = append(content, toResponse(m))
	}

	totalPages := pageCount(total, size)
	return &PaginatedMessages{
		Content: content,
		Page: PageInfo{
			Number:        page,
			Size:          size,
			TotalElements: total,
			TotalPages:    totalPages,
			First:         page == 0,
			Last:          page >= totalPages-1,
		},
	}, nil
}

// GetMessages retrieves history in offset mode or keyset mode. Supplying
// both cursors is a BadRequest; supplying neither falls back to offset mode.
func (s *chatService) GetMessages(ctx context.Context, courseID, userID string, query *HistoryQuery) (*ChatMessagesListResponse, error) {
	if err := validatePageBounds(query.Page, query.Size); err != nil {
		return nil, err
	}
	course, user, err := s.resolveParticipants(ctx, courseID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, course, user); err != nil {
		return nil, err
	}

	if query.BeforeMessageID != "" || query.AfterMessageID != "" {
		return s.getMessagesKeyset(ctx, courseID, query)
	}

	messages, err := s.messages.ListByCourseAsc(ctx, courseID, query.Page, query.Size)
	if err != nil {
		return nil, common.Internal("Failed to retrieve messages. Please try again later.", err)
	}
	total, err := s.messages.CountByCourse(ctx, courseID)
	if err != nil {
		return nil, common.Internal("Failed to retrieve messages. Please try again later.", err)
	}

	page := query.Page
	totalPages := pageCount(total, query.Size)
	return &ChatMessagesListResponse{
		Messages:      simpleResponses(messages),
		Page:          &page,
		Size:          query.Size,
		TotalElements: &total,
		TotalPages:    &totalPages,
	}, nil
}

func (s *chatService) getMessagesKeyset(ctx context.Context, courseID string, query *HistoryQuery) (*ChatMessagesListResponse, error) {
	if query.BeforeMessageID != "" && query.AfterMessageID != "" {
		return nil, common.BadRequest("Invalid query parameters: cannot specify both beforeMessageId and afterMessageId")
	}

	refID := query.BeforeMessageID
	if refID == "" {
		refID = query.AfterMessageID
	}
	ref, err := s.messages.FindByID(ctx, refID)
	if err != nil {
		return nil, common.Internal("Failed to retrieve messages. Please try again later.", err)
	}
	if ref == nil || ref.CourseID != courseID {
		return nil, common.NotFound("Message not found")
	}

	var messages []*dbmysql.ChatMessage
	if query.BeforeMessageID != "" {
		messages, err = s.messages.ListBefore(ctx, courseID, ref, query.Size)
	} else {
		messages, err = s.messages.ListAfter(ctx, courseID, ref, query.Size)
	}
	if err != nil {
		return nil, common.Internal("Failed to retrieve messages. Please try again later.", err)
	}

	// Totals are unknown in cursor mode.
	return &ChatMessagesListResponse{
		Messages: simpleResponses(messages),
		Size:     query.Size,
	}, nil
}

// UpdateMessage edits the content of a TEXT message. Only the original
// sender may update.
func (s *chatService) UpdateMessage(ctx context.Context, courseID, messageID, userID string, req *UpdateMessageRequest) (*ChatMessageResponse, error) {
	course, user, err := s.resolveParticipants(ctx, courseID, userID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, course, user); err != nil {
		return nil, err
	}

	msg, err := s.findCourseMessage(ctx, courseID, messageID)
	if err != nil {
		return nil, err
	}
	if msg.SenderID != user.ID {
		return nil, common.Forbidden("User is not the message owner")
	}
	if msg.TypeName() != dbmysql.TypeText {
		return nil, common.BadRequest("Only TEXT messages can be updated")
	}
	if req.Type != dbmysql.TypeText {
		return nil, common.BadRequest("Message type must be TEXT")
	}

	if err := s.messages.UpdateText(ctx, messageID, req.Content); err != nil {
		return nil, common.Internal("Failed to update message. Please try again later.", err)
	}
	updated, err := s.messages.FindByID(ctx, messageID)
	if err != nil || updated == nil {
		return nil, common.Internal("Failed to update message. Please try again later.", err)
	}

	s.broadcaster.PublishToCourse(courseID, &MessageUpdatedEvent{
		Type:      "messageUpdated",
		MessageID: messageID,
		CourseID:  courseID,
		UpdatedBy: user.ID,
		Content:   req.Content,
		Timestamp: time.Now().UTC(),
	})

	return toResponse(updated), nil
}

// DeleteMessage removes a message and its detail atomically. Allowed for
// the sender, the course instructor, or an admin.
func (s *chatService) DeleteMessage(ctx context.Context, courseID, messageID, userID string) error {
	course, user, err := s.resolveParticipants(ctx, courseID, userID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, course, user); err != nil {
		return err
	}

	msg, err := s.findCourseMessage(ctx, courseID, messageID)
	if err != nil {
		return err
	}
	if !canDeleteMessage(msg, user, course) {
		return common.Forbidden("User is not the message owner or lacks permission")
	}

	if err := s.messages.Delete(ctx, msg); err != nil {
		return common.Internal("Failed to delete message. Please try again later.", err)
	}

	s.broadcaster.PublishToCourse(courseID, &MessageDeletedEvent{
		Type:      "messageDeleted",
		MessageID: messageID,
		CourseID:  courseID,
		DeletedBy: user.ID,
		Timestamp: time.Now().UTC(),
	})

	return nil
}

func (s *chatService) findCourseMessage(ctx context.Context, courseID, messageID string) (*dbmysql.ChatMessage, error) {
	msg, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return nil, common.Internal("failed to load message", err)
	}
	if msg == nil {
		return nil, common.NotFound("Message not found")
	}
	if msg.CourseID != courseID {
		return nil, common.NotFound("Message not found in this course")
	}
	return msg, nil
}

func simpleResponses(messages []*dbmysql.ChatMessage) []*SimpleChatMessageResponse {
	out := make([]*SimpleChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toSimpleResponse(m))
	}
	return out
}

func validatePageBounds(page, size int) error {
	if page < 0 {
		return common.BadRequest("Invalid query parameters: page must be non-negative")
	}
	if size < 1 || size > 100 {
		return common.BadRequest("Invalid query parameters: size must be between 1 and 100")
	}
	return nil
}

func pageCount(total int64, size int) int {
	return int((total + int64(size) - 1) / int64(size))
}

func durationSeconds(d *int) *int64 {
	if d == nil {
		return nil
	}
	v := int64(*d)
	return &v
}
