package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/navyashreebh2-create/diary-baby/internal/model"
)

// DiaryEntryRepository defines persistence operations for diary entries.
// Every query is scoped to a single owner; there is no unscoped read path.
type DiaryEntryRepository interface {
	Create(ctx context.Context, entry *model.DiaryEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.DiaryEntry, error)
	ListCreationTimes(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
}

type diaryEntryRepository struct {
	db *gorm.DB
}

// NewDiaryEntryRepository builds a GORM-backed repository.
func NewDiaryEntryRepository(db *gorm.DB) DiaryEntryRepository {
	return &diaryEntryRepository{db: db}
}

func (r *diaryEntryRepository) Create(ctx context.Context, entry *model.DiaryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByUser returns the owner's entries newest first.
func (r *diaryEntryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.DiaryEntry, error) {
	var entries []model.DiaryEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListCreationTimes returns only the creation timestamps of the owner's
// entries, for calendar-date grouping.
func (r *diaryEntryRepository) ListCreationTimes(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	var times []time.Time
	if err := r.db.WithContext(ctx).
		Model(&model.DiaryEntry{}).
		Where("user_id = ?", userID).
		Pluck("created_at", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}
