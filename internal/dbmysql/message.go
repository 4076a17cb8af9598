package dbmysql

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TypeText  = "TEXT"
	TypeFile  = "FILE"
	TypeAudio = "AUDIO"
	TypeVideo = "VIDEO"
)

// MessageType is the lookup table of supported message kinds.
type MessageType struct {
	ID   string `gorm:"primaryKey;size:36"`
	Name string `gorm:"uniqueIndex;size:20"`
}

func (t *MessageType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ChatMessage is the message aggregate root. Exactly one detail variant is
// set, and its kind must match Type.Name.
type ChatMessage struct {
	ID         string       `gorm:"primaryKey;size:36"`
	CourseID   string       `gorm:"index;size:36"`
	Course     *Course      `gorm:"foreignKey:CourseID"`
	SenderID   string       `gorm:"index;size:36"`
	Sender     *User        `gorm:"foreignKey:SenderID"`
	SenderRole string       `gorm:"size:20"` // snapshot at creation, not re-derived
	TypeID     string       `gorm:"size:36"`
	Type       *MessageType `gorm:"foreignKey:TypeID"`

	TextDetail  *ChatMessageText  `gorm:"foreignKey:MessageID"`
	FileDetail  *ChatMessageFile  `gorm:"foreignKey:MessageID"`
	AudioDetail *ChatMessageAudio `gorm:"foreignKey:MessageID"`
	VideoDetail *ChatMessageVideo `gorm:"foreignKey:MessageID"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// TypeName returns the type tag when the Type association is loaded.
func (m *ChatMessage) TypeName() string {
	if m.Type == nil {
		return ""
	}
	return m.Type.Name
}

type ChatMessageText struct {
	MessageID string `gorm:"primaryKey;size:36"`
	Content   string `gorm:"type:text"`
}

type ChatMessageFile struct {
	MessageID string  `gorm:"primaryKey;size:36"`
	FileURL   string  `gorm:"size:512"`
	FileName  string  `gorm:"size:255"`
	FileSize  int64
	MimeType  *string `gorm:"size:100"`
}

type ChatMessageAudio struct {
	MessageID    string  `gorm:"primaryKey;size:36"`
	AudioURL     string  `gorm:"size:512"`
	FileName     string  `gorm:"size:255"`
	FileSize     int64
	Duration     *int64  // seconds
	MimeType     *string `gorm:"size:100"`
	ThumbnailURL *string `gorm:"size:512"`
}

type ChatMessageVideo struct {
	MessageID    string  `gorm:"primaryKey;size:36"`
	VideoURL     string  `gorm:"size:512"`
	FileName     string  `gorm:"size:255"`
	FileSize     int64
	ThumbnailURL *string `gorm:"size:512"`
	Duration     *int64  // seconds
	MimeType     *string `gorm:"size:100"`
	Resolution   *string `gorm:"size:20"`
}
