package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiaryEntry is a single journal entry together with its AI companion reply.
// An entry is only ever written once a reply has been obtained, so AIReply is
// non-empty for every stored row.
type DiaryEntry struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"-" gorm:"type:char(36);not null;index:idx_entries_user_created,priority:1"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AIReply   string    `json:"aiReply" gorm:"size:1000;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index:idx_entries_user_created,priority:2,sort:desc"`
}

// BeforeCreate sets UUID before creating the record.
func (e *DiaryEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
