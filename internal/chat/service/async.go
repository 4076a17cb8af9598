package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"coursehub/internal/common"
	"coursehub/internal/dbmysql"
)

// Dispatcher is a bounded worker pool for background send tasks. The caller
// holds no handle to a submitted task; completion is observable only on the
// event channel.
type Dispatcher struct {
	tasks  chan func()
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 64
	}
	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		tasks:  make(chan func(), queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
	return d
}

// Submit enqueues a task without blocking. Returns false when the queue is
// saturated or the dispatcher is shut down.
func (d *Dispatcher) Submit(task func()) bool {
	select {
	case <-d.ctx.Done():
		return false
	default:
	}
	select {
	case d.tasks <- task:
		return true
	default:
		return false
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for {
		select {
		case task := <-d.tasks:
			start := time.Now()
			task()
			log.Printf("async task completed in %v", time.Since(start))
		case <-d.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers. Queued tasks that have not started are
// dropped; running tasks finish.
func (d *Dispatcher) Shutdown() {
	d.cancel()
	d.wg.Wait()
	log.Println("async dispatcher shutdown complete")
}

// SendMessageAsync validates the request synchronously and defers the
// actual send to a background task. The returned acknowledgment means
// "accepted for processing", not "processed".
func (s *chatService) SendMessageAsync(ctx context.Context, courseID, senderID string, req *AsyncSendMessageRequest) (*AsyncMessageAcknowledgment, error) {
	if courseID == "" {
		return nil, common.BadRequest("Invalid courseId format")
	}
	if req.TempID == "" {
		return nil, common.BadRequest("TempId is required")
	}
	typeName, err := parseMessageType(req.Type)
	if err != nil {
		return nil, err
	}

	course, sender, err := s.resolveParticipants(ctx, courseID, senderID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, course, sender); err != nil {
		return nil, err
	}

	ack := &AsyncMessageAcknowledgment{
		TempID: req.TempID,
		Status: StatusPending,
	}

	submitted := s.dispatcher.Submit(func() {
		s.processAsync(course, sender, typeName, req)
	})
	if !submitted {
		// The 202 still goes out; the outcome is reported on the channel
		// like any other background failure.
		log.Printf("async queue saturated, rejecting tempId=%s", req.TempID)
		s.broadcastStatus(courseID, sender, &AsyncMessageStatusEvent{
			TempID: req.TempID,
			Status: StatusFailed,
			Error:  "Processing error: send queue is full",
		})
	}

	return ack, nil
}

// parseMessageType validates the type name against the supported tags.
func parseMessageType(name string) (string, error) {
	switch strings.ToUpper(name) {
	case dbmysql.TypeText:
		return dbmysql.TypeText, nil
	case dbmysql.TypeFile:
		return dbmysql.TypeFile, nil
	case dbmysql.TypeAudio:
		return dbmysql.TypeAudio, nil
	case dbmysql.TypeVideo:
		return dbmysql.TypeVideo, nil
	default:
		return "", common.BadRequest("Invalid message type: " + name)
	}
}

// processAsync runs off the request thread. Failures are converted to a
// FAILED status event and never surface to the original caller.
func (s *chatService) processAsync(course *dbmysql.Course, sender *dbmysql.User, typeName string, req *AsyncSendMessageRequest) {
	ctx := context.Background()

	s.broadcastStatus(course.ID, sender, &AsyncMessageStatusEvent{
		TempID: req.TempID,
		Status: StatusPending,
	})

	messageID, err := s.createPendingMessage(ctx, course, sender, typeName)
	if err != nil {
		s.failAsync(course.ID, sender, req.TempID, "", err)
		return
	}

	if typeName == dbmysql.TypeText {
		s.processTextMessage(ctx, course, sender, req, messageID)
	} else {
		s.processMediaMessage(ctx, course, sender, req, messageID, typeName)
	}
}

// createPendingMessage persists the skeleton record to obtain the permanent
// id. The tempId is never stored.
func (s *chatService) createPendingMessage(ctx context.Context, course *dbmysql.Course, sender *dbmysql.User, typeName string) (string, error) {
	messageType, err := s.resolveType(ctx, typeName)
	if err != nil {
		return "", err
	}
	msg := &dbmysql.ChatMessage{
		CourseID:   course.ID,
		SenderID:   sender.ID,
		SenderRole: sender.Role,
		TypeID:     messageType.ID,
	}
	if err := s.messages.CreateSkeleton(ctx, msg); err != nil {
		return "", err
	}
	return msg.ID, nil
}

func (s *chatService) processTextMessage(ctx context.Context, course *dbmysql.Course, sender *dbmysql.User, req *AsyncSendMessageRequest, messageID string) {
	msg := &dbmysql.ChatMessage{
		ID:         messageID,
		TextDetail: &dbmysql.ChatMessageText{Content: req.Content},
	}
	if err := s.messages.AttachDetail(ctx, msg); err != nil {
		s.failAsync(course.ID, sender, req.TempID, messageID, err)
		return
	}

	resp, err := s.broadcastFullMessage(ctx, course.ID, messageID)
	if err != nil {
		s.failAsync(course.ID, sender, req.TempID, messageID, err)
		return
	}

	event := &AsyncMessageStatusEvent{
		TempID:    req.TempID,
		Status:    StatusSent,
		MessageID: messageID,
	}
	if resp.Content != nil {
		event.Content = *resp.Content
	}
	applySenderSnapshot(event, resp)
	s.broadcastStatus(course.ID, sender, event)
}

func (s *chatService) processMediaMessage(ctx context.Context, course *dbmysql.Course, sender *dbmysql.User, req *AsyncSendMessageRequest, messageID, typeName string) {
	// The bytes were uploaded out-of-band; UPLOADING is still reported so
	// consumers see a uniform sequence.
	s.broadcastStatus(course.ID, sender, &AsyncMessageStatusEvent{
		TempID:    req.TempID,
		Status:    StatusUploading,
		MessageID: messageID,
	})

	msg := &dbmysql.ChatMessage{ID: messageID}
	switch typeName {
	case dbmysql.TypeFile:
		msg.FileDetail = &dbmysql.ChatMessageFile{
			FileURL:  req.FileURL,
			FileName: req.FileName,
			FileSize: req.FileSize,
			MimeType: req.MimeType,
		}
	case dbmysql.TypeAudio:
		msg.AudioDetail = &dbmysql.ChatMessageAudio{
			AudioURL:     req.FileURL,
			FileName:     req.FileName,
			FileSize:     req.FileSize,
			Duration:     durationSeconds(req.Duration),
			MimeType:     req.MimeType,
			ThumbnailURL: req.ThumbnailURL,
		}
	case dbmysql.TypeVideo:
		msg.VideoDetail = &dbmysql.ChatMessageVideo{
			VideoURL:     req.FileURL,
			FileName:     req.FileName,
			FileSize:     req.FileSize,
			ThumbnailURL: req.ThumbnailURL,
			Duration:     durationSeconds(req.Duration),
			MimeType:     req.MimeType,
			Resolution:   req.Resolution,
		}
	default:
		s.failAsync(course.ID, sender, req.TempID, messageID, fmt.Errorf("unsupported media type %q", typeName))
		return
	}

	if err := s.messages.AttachDetail(ctx, msg); err != nil {
		s.failAsync(course.ID, sender, req.TempID, messageID, err)
		return
	}

	resp, err := s.broadcastFullMessage(ctx, course.ID, messageID)
	if err != nil {
		s.failAsync(course.ID, sender, req.TempID, messageID, err)
		return
	}

	event := &AsyncMessageStatusEvent{
		TempID:    req.TempID,
		Status:    StatusSent,
		MessageID: messageID,
		FileURL:   req.FileURL,
	}
	applySenderSnapshot(event, resp)
	s.broadcastStatus(course.ID, sender, event)
}

// broadcastFullMessage reloads the completed message and publishes the full
// snapshot on the course channel.
func (s *chatService) broadcastFullMessage(ctx context.Context, courseID, messageID string) (*ChatMessageResponse, error) {
	full, err := s.messages.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if full == nil {
		return nil, fmt.Errorf("message %s disappeared during processing", messageID)
	}
	resp := toResponse(full)
	s.broadcaster.PublishToCourse(courseID, resp)
	return resp, nil
}

func (s *chatService) failAsync(courseID string, sender *dbmysql.User, tempID, messageID string, err error) {
	log.Printf("async send failed: tempId=%s messageId=%q: %v", tempID, messageID, err)
	s.broadcastStatus(courseID, sender, &AsyncMessageStatusEvent{
		TempID:    tempID,
		Status:    StatusFailed,
		MessageID: messageID,
		Error:     "Processing error: " + err.Error(),
	})
}

// broadcastStatus publishes the event on the course channel and, when the
// sender is known, on their personal channel. Personal-channel failures are
// logged and swallowed.
func (s *chatService) broadcastStatus(courseID string, sender *dbmysql.User, event *AsyncMessageStatusEvent) {
	s.broadcaster.PublishToCourse(courseID, event)

	if sender == nil {
		return
	}
	if err := s.broadcaster.PublishToUser(sender.ID, event); err != nil {
		log.Printf("failed to send personal status update to sender %s: %v", sender.ID, err)
	}
}

func applySenderSnapshot(event *AsyncMessageStatusEvent, resp *ChatMessageResponse) {
	event.SenderName = resp.SenderName
	event.SenderRole = resp.SenderRole
	if resp.SenderThumbnailURL != nil {
		event.SenderThumbnailURL = *resp.SenderThumbnailURL
	}
}
