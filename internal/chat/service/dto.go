package service

import (
	"time"

	"coursehub/internal/dbmysql"
)

// Async send statuses. Order per tempId is strictly
// PENDING -> [UPLOADING] -> SENT | FAILED.
const (
	StatusPending   = "PENDING"
	StatusUploading = "UPLOADING"
	StatusSent      = "SENT"
	StatusFailed    = "FAILED"
)

type SendMessageRequest struct {
	Type         string  `json:"type"`
	Content      string  `json:"content"`
	FileName     string  `json:"fileName,omitempty"`
	FileSize     int64   `json:"fileSize,omitempty"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
	Duration     *int    `json:"duration,omitempty"` // seconds
}

// AsyncSendMessageRequest carries the payload for the async pipeline. Media
// bytes are uploaded out-of-band beforehand; only URLs and metadata arrive
// here.
type AsyncSendMessageRequest struct {
	TempID       string  `json:"tempId"`
	Type         string  `json:"type"`
	Content      string  `json:"content,omitempty"`
	FileURL      string  `json:"fileUrl,omitempty"`
	FileName     string  `json:"fileName,omitempty"`
	FileSize     int64   `json:"fileSize,omitempty"`
	MimeType     *string `json:"mimeType,omitempty"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
	Duration     *int    `json:"duration,omitempty"`
	Resolution   *string `json:"resolution,omitempty"`
}

type UpdateMessageRequest struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type ChatMessageResponse struct {
	ID                 string    `json:"id"`
	CourseID           string    `json:"courseId"`
	SenderID           string    `json:"senderId"`
	SenderName         string    `json:"senderName"`
	SenderRole         string    `json:"senderRole"`
	SenderThumbnailURL *string   `json:"senderThumbnailUrl,omitempty"`
	Type               string    `json:"type"`
	Content            *string   `json:"content,omitempty"`
	FileURL            *string   `json:"fileUrl,omitempty"`
	FileName           *string   `json:"fileName,omitempty"`
	FileSize           *int64    `json:"fileSize,omitempty"`
	FileType           *string   `json:"fileType,omitempty"`
	AudioURL           *string   `json:"audioUrl,omitempty"`
	AudioDuration      *int      `json:"audioDuration,omitempty"`
	VideoURL           *string   `json:"videoUrl,omitempty"`
	VideoThumbnailURL  *string   `json:"videoThumbnailUrl,omitempty"`
	VideoDuration      *int      `json:"videoDuration,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// SimpleChatMessageResponse collapses the type to "text" or "file", mapping
// audio/video details onto the generic file fields.
type SimpleChatMessageResponse struct {
	ID                 string    `json:"id"`
	SenderID           string    `json:"senderId"`
	SenderName         string    `json:"senderName"`
	SenderThumbnailURL *string   `json:"senderThumbnailUrl,omitempty"`
	SenderRole         string    `json:"senderRole"`
	Type               string    `json:"type"`
	Content            *string   `json:"content,omitempty"`
	FileURL            *string   `json:"fileUrl,omitempty"`
	FileName           *string   `json:"fileName,omitempty"`
	FileSize           *int64    `json:"fileSize,omitempty"`
	MimeType           *string   `json:"mimeType,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ChatMessagesListResponse is the getMessages envelope. Totals are set only
// in offset mode; keyset mode leaves them nil.
type ChatMessagesListResponse struct {
	Messages      []*SimpleChatMessageResponse `json:"messages"`
	Page          *int                         `json:"page,omitempty"`
	Size          int                          `json:"size"`
	TotalElements *int64                       `json:"totalElements,omitempty"`
	TotalPages    *int                         `json:"totalPages,omitempty"`
}

// PageInfo describes an offset-paginated window.
type PageInfo struct {
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// PaginatedMessages is the listMessages envelope of full responses.
type PaginatedMessages struct {
	Content []*ChatMessageResponse `json:"content"`
	Page    PageInfo               `json:"page"`
}

// HistoryQuery selects between offset and keyset retrieval.
type HistoryQuery struct {
	Page            int
	Size            int
	BeforeMessageID string
	AfterMessageID  string
}

type AsyncMessageAcknowledgment struct {
	TempID string `json:"tempId"`
	Status string `json:"status"`
}

// AsyncMessageStatusEvent reports background progress on the event channel.
// Absent fields mean "not yet known", never "cleared".
type AsyncMessageStatusEvent struct {
	TempID             string `json:"tempId"`
	Status             string `json:"status"`
	MessageID          string `json:"messageId,omitempty"`
	Content            string `json:"content,omitempty"`
	SenderName         string `json:"senderName,omitempty"`
	SenderRole         string `json:"senderRole,omitempty"`
	SenderThumbnailURL string `json:"senderThumbnailUrl,omitempty"`
	FileURL            string `json:"fileUrl,omitempty"`
	Error              string `json:"error,omitempty"`
}

type MessageDeletedEvent struct {
	Type      string    `json:"type"`
	MessageID string    `json:"messageId"`
	CourseID  string    `json:"courseId"`
	DeletedBy string    `json:"deletedBy"`
	Timestamp time.Time `json:"timestamp"`
}

type MessageUpdatedEvent struct {
	Type      string    `json:"type"`
	MessageID string    `json:"messageId"`
	CourseID  string    `json:"courseId"`
	UpdatedBy string    `json:"updatedBy"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

func toResponse(m *dbmysql.ChatMessage) *ChatMessageResponse {
	resp := &ChatMessageResponse{
		ID:         m.ID,
		CourseID:   m.CourseID,
		SenderID:   m.SenderID,
		SenderRole: m.SenderRole,
		Type:       m.TypeName(),
		CreatedAt:  m.CreatedAt,
	}
	if m.Sender != nil {
		resp.SenderName = m.Sender.Name
		resp.SenderThumbnailURL = m.Sender.ThumbnailURL
	}
	if m.TextDetail != nil {
		resp.Content = &m.TextDetail.Content
	}
	if m.FileDetail != nil {
		resp.FileURL = &m.FileDetail.FileURL
		resp.FileName = &m.FileDetail.FileName
		resp.FileSize = &m.FileDetail.FileSize
		resp.FileType = m.FileDetail.MimeType
	}
	if m.AudioDetail != nil {
		resp.AudioURL = &m.AudioDetail.AudioURL
		resp.AudioDuration = secondsInt(m.AudioDetail.Duration)
	}
	if m.VideoDetail != nil {
		resp.VideoURL = &m.VideoDetail.VideoURL
		resp.VideoThumbnailURL = m.VideoDetail.ThumbnailURL
		resp.VideoDuration = secondsInt(m.VideoDetail.Duration)
	}
	return resp
}

func toSimpleResponse(m *dbmysql.ChatMessage) *SimpleChatMessageResponse {
	resp := &SimpleChatMessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		SenderRole: m.SenderRole,
		Type:       "text",
		CreatedAt:  m.CreatedAt,
	}
	if m.Sender != nil {
		resp.SenderName = m.Sender.Name
		resp.SenderThumbnailURL = m.Sender.ThumbnailURL
	}
	switch {
	case m.TextDetail != nil:
		resp.Content = &m.TextDetail.Content
	case m.FileDetail != nil:
		resp.Type = "file"
		resp.FileURL = &m.FileDetail.FileURL
		resp.FileName = &m.FileDetail.FileName
		resp.FileSize = &m.FileDetail.FileSize
		resp.MimeType = m.FileDetail.MimeType
	case m.AudioDetail != nil:
		resp.Type = "file"
		resp.FileURL = &m.AudioDetail.AudioURL
		resp.FileName = &m.AudioDetail.FileName
		resp.FileSize = &m.AudioDetail.FileSize
		resp.MimeType = m.AudioDetail.MimeType
	case m.VideoDetail != nil:
		resp.Type = "file"
		resp.FileURL = &m.VideoDetail.VideoURL
		resp.FileName = &m.VideoDetail.FileName
		resp.FileSize = &m.VideoDetail.FileSize
		resp.MimeType = m.VideoDetail.MimeType
	}
	return resp
}

func secondsInt(d *int64) *int {
	if d == nil {
		return nil
	}
	v := int(*d)
	return &v
}
