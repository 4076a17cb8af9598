package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"coursehub/internal/dbmysql"
)

// MessageRepository is the message store. Every write is a single
// transaction scoped to one message aggregate.
type MessageRepository interface {
	// Create persists the message and any detail variant already set on it
	// in one transaction.
	Create(ctx context.Context, msg *dbmysql.ChatMessage) error
	// CreateSkeleton persists the bare message without details. Used by the
	// async pipeline, where the detail is attached in a later transaction.
	CreateSkeleton(ctx context.Context, msg *dbmysql.ChatMessage) error
	// AttachDetail persists the detail variant set on msg for an already
	// stored skeleton.
	AttachDetail(ctx context.Context, msg *dbmysql.ChatMessage) error
	// FindByID loads a message with sender, type and detail associations.
	// Returns (nil, nil) when no such message exists.
	FindByID(ctx context.Context, id string) (*dbmysql.ChatMessage, error)
	// UpdateText replaces the text detail content and bumps the message
	// timestamp. Last writer wins.
	UpdateText(ctx context.Context, messageID, content string) error
	// Delete removes the message and its detail variant atomically.
	Delete(ctx context.Context, msg *dbmysql.ChatMessage) error

	ListByCourseAsc(ctx context.Context, courseID string, page, size int) ([]*dbmysql.ChatMessage, error)
	PageByCourse(ctx context.Context, courseID, typeName string, page, size int) ([]*dbmysql.ChatMessage, int64, error)
	CountByCourse(ctx context.Context, courseID string) (int64, error)
	// ListBefore returns up to limit messages strictly before ref's
	// position, ascending. ListAfter is the mirror image.
	ListBefore(ctx context.Context, courseID string, ref *dbmysql.ChatMessage, limit int) ([]*dbmysql.ChatMessage, error)
	ListAfter(ctx context.Context, courseID string, ref *dbmysql.ChatMessage, limit int) ([]*dbmysql.ChatMessage, error)
}

type messageRepo struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepo{db: db}
}

func (r *messageRepo) Create(ctx context.Context, msg *dbmysql.ChatMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Course, sender and type rows already exist; only the message and
		// its detail variant are written here.
		return tx.Omit("Course", "Sender", "Type").Create(msg).Error
	})
}

func (r *messageRepo) CreateSkeleton(ctx context.Context, msg *dbmysql.ChatMessage) error {
	return r.db.WithContext(ctx).Omit(
		"Course", "Sender", "Type",
		"TextDetail", "FileDetail", "AudioDetail", "VideoDetail",
	).Create(msg).Error
}

func (r *messageRepo) AttachDetail(ctx context.Context, msg *dbmysql.ChatMessage) error {
	detail, err := detailRecord(msg)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(detail).Error; err != nil {
			return err
		}
		return tx.Model(&dbmysql.ChatMessage{}).
			Where("id = ?", msg.ID).
			Update("updated_at", time.Now()).Error
	})
}

// detailRecord returns the single detail variant set on msg with its
// foreign key filled. Zero or multiple variants is a programming error.
func detailRecord(msg *dbmysql.ChatMessage) (interface{}, error) {
	var detail interface{}
	count := 0
	if msg.TextDetail != nil {
		msg.TextDetail.MessageID = msg.ID
		detail = msg.TextDetail
		count++
	}
	if msg.FileDetail != nil {
		msg.FileDetail.MessageID = msg.ID
		detail = msg.FileDetail
		count++
	}
	if msg.AudioDetail != nil {
		msg.AudioDetail.MessageID = msg.ID
		detail = msg.AudioDetail
		count++
	}
	if msg.VideoDetail != nil {
		msg.VideoDetail.MessageID = msg.ID
		detail = msg.VideoDetail
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("message %s has %d detail variants, want exactly 1", msg.ID, count)
	}
	return detail, nil
}

func (r *messageRepo) FindByID(ctx context.Context, id string) (*dbmysql.ChatMessage, error) {
	var msg dbmysql.ChatMessage
	err := r.withAssociations(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&msg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *messageRepo) UpdateText(ctx context.Context, messageID, content string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&dbmysql.ChatMessageText{}).
			Where("message_id = ?", messageID).
			Update("content", content).Error; err != nil {
			return err
		}
		return tx.Model(&dbmysql.ChatMessage{}).
			Where("id = ?", messageID).
			Update("updated_at", time.Now()).Error
	})
}

func (r *messageRepo) Delete(ctx context.Context, msg *dbmysql.ChatMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, detail := range []interface{}{
			&dbmysql.ChatMessageText{},
			&dbmysql.ChatMessageFile{},
			&dbmysql.ChatMessageAudio{},
			&dbmysql.ChatMessageVideo{},
		} {
			if err := tx.Where("message_id = ?", msg.ID).Delete(detail).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&dbmysql.ChatMessage{}, "id = ?", msg.ID).Error
	})
}

func (r *messageRepo) ListByCourseAsc(ctx context.Context, courseID string, page, size int) ([]*dbmysql.ChatMessage, error) {
	var messages []*dbmysql.ChatMessage
	err := r.withAssociations(r.db.WithContext(ctx)).
		Where("course_id = ?", courseID).
		Order("created_at ASC, id ASC").
		Offset(page * size).
		Limit(size).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepo) PageByCourse(ctx context.Context, courseID, typeName string, page, size int) ([]*dbmysql.ChatMessage, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&dbmysql.ChatMessage{}).
		Where("chat_messages.course_id = ?", courseID)
	if typeName != "" {
		query = query.
			Joins("JOIN message_types ON message_types.id = chat_messages.type_id").
			Where("message_types.name = ?", typeName)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []*dbmysql.ChatMessage
	err := r.withAssociations(query.Session(&gorm.Session{})).
		Order("chat_messages.created_at ASC, chat_messages.id ASC").
		Offset(page * size).
		Limit(size).
		Find(&messages).Error
	return messages, total, err
}

func (r *messageRepo) CountByCourse(ctx context.Context, courseID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.ChatMessage{}).
		Where("course_id = ?", courseID).
		Count(&total).Error
	return total, err
}

func (r *messageRepo) ListBefore(ctx context.Context, courseID string, ref *dbmysql.ChatMessage, limit int) ([]*dbmysql.ChatMessage, error) {
	var messages []*dbmysql.ChatMessage
	err := r.withAssociations(r.db.WithContext(ctx)).
		Where("course_id = ?", courseID).
		Where("created_at < ? OR (created_at = ? AND id < ?)", ref.CreatedAt, ref.CreatedAt, ref.ID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	// Window is taken closest-first; flip it back to ascending.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *messageRepo) ListAfter(ctx context.Context, courseID string, ref *dbmysql.ChatMessage, limit int) ([]*dbmysql.ChatMessage, error) {
	var messages []*dbmysql.ChatMessage
	err := r.withAssociations(r.db.WithContext(ctx)).
		Where("course_id = ?", courseID).
		Where("created_at > ? OR (created_at = ? AND id > ?)", ref.CreatedAt, ref.CreatedAt, ref.ID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

func (r *messageRepo) withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Sender").
		Preload("Type").
		Preload("TextDetail").
		Preload("FileDetail").
		Preload("AudioDetail").
		Preload("VideoDetail")
}
