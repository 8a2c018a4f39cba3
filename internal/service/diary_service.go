package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/navyashreebh2-create/diary-baby/internal/ai"
	apperrors "github.com/navyashreebh2-create/diary-baby/internal/errors"
	"github.com/navyashreebh2-create/diary-baby/internal/model"
	"github.com/navyashreebh2-create/diary-baby/internal/repository"
)

const maxContentLength = 5000

// ReplyGenerator produces one supportive reply for an entry, using the
// caller-supplied API key. Failures are classified *ai.Error values.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, content, apiKey string) (string, error)
}

// DiaryService orchestrates the entry pipeline: validate, obtain the AI
// reply, then persist. An entry is never written without a reply.
type DiaryService interface {
	Create(ctx context.Context, userID uuid.UUID, content, apiKey string) (*model.DiaryEntry, error)
	List(ctx context.Context, userID uuid.UUID) ([]model.DiaryEntry, error)
	ListEntryDates(ctx context.Context, userID uuid.UUID) ([]string, error)
}

type diaryService struct {
	entries repository.DiaryEntryRepository
	replies ReplyGenerator
	log     *zap.Logger
}

// NewDiaryService creates a new diary service.
func NewDiaryService(entries repository.DiaryEntryRepository, replies ReplyGenerator, log *zap.Logger) DiaryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &diaryService{entries: entries, replies: replies, log: log}
}

// Create validates the content, obtains the AI reply and persists the entry.
// Any reply failure aborts before the write, so entry and reply land together
// or not at all. The API key is forwarded to the generator and never stored.
func (s *diaryService) Create(ctx context.Context, userID uuid.UUID, content, apiKey string) (*model.DiaryEntry, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidation("Please write something before submitting")
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return nil, apperrors.NewValidation("Entry content is too long. Maximum 5000 characters allowed.")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, apperrors.NewValidation("OpenAI API key is required to generate AI responses")
	}

	reply, err := s.replies.GenerateReply(ctx, content, strings.TrimSpace(apiKey))
	if err != nil {
		var aiErr *ai.Error
		if errors.As(err, &aiErr) {
			// Category only; neither the key nor the entry content is logged.
			s.log.Warn("ai reply failed", zap.String("kind", aiErr.Kind.String()))
		} else {
			s.log.Error("ai reply failed", zap.Error(err))
		}
		return nil, err
	}

	entry := &model.DiaryEntry{
		ID:      uuid.New(),
		UserID:  userID,
		Content: content,
		AIReply: reply,
	}
	if err := s.entries.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	return entry, nil
}

// List returns the owner's entries newest first.
func (s *diaryService) List(ctx context.Context, userID uuid.UUID) ([]model.DiaryEntry, error) {
	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// ListEntryDates returns the distinct local calendar dates (YYYY-MM-DD) on
// which the owner wrote at least one entry, sorted ascending.
func (s *diaryService) ListEntryDates(ctx context.Context, userID uuid.UUID) ([]string, error) {
	times, err := s.entries.ListCreationTimes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entry dates: %w", err)
	}

	seen := make(map[string]struct{}, len(times))
	dates := make([]string, 0, len(times))
	for _, t := range times {
		date := t.Local().Format("2006-01-02")
		if _, ok := seen[date]; ok {
			continue
		}
		seen[date] = struct{}{}
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}
