package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/navyashreebh2-create/diary-baby/internal/ai"
	apperrors "github.com/navyashreebh2-create/diary-baby/internal/errors"
	"github.com/navyashreebh2-create/diary-baby/internal/model"
)

// memoryEntryRepo is an in-memory DiaryEntryRepository honoring the
// owner-scoping and ordering contracts of the real one.
type memoryEntryRepo struct {
	entries []model.DiaryEntry
}

func (r *memoryEntryRepo) Create(ctx context.Context, entry *model.DiaryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *memoryEntryRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.DiaryEntry, error) {
	var out []model.DiaryEntry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryEntryRepo) ListCreationTimes(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	var out []time.Time
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e.CreatedAt)
		}
	}
	return out, nil
}

// MockReplyGenerator is a mock implementation of ReplyGenerator.
type MockReplyGenerator struct {
	mock.Mock
}

func (m *MockReplyGenerator) GenerateReply(ctx context.Context, content, apiKey string) (string, error) {
	args := m.Called(ctx, content, apiKey)
	return args.String(0), args.Error(1)
}

func TestDiaryService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		apiKey  string
		wantErr string
	}{
		{
			name:    "empty content",
			content: "   ",
			apiKey:  "sk-test",
			wantErr: "Please write something before submitting",
		},
		{
			name:    "content too long",
			content: strings.Repeat("a", 5001),
			apiKey:  "sk-test",
			wantErr: "Entry content is too long. Maximum 5000 characters allowed.",
		},
		{
			name:    "missing api key",
			content: "dear diary",
			apiKey:  "  ",
			wantErr: "OpenAI API key is required to generate AI responses",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryEntryRepo{}
			replies := new(MockReplyGenerator)
			svc := NewDiaryService(repo, replies, zap.NewNop())
			userID := uuid.New()

			_, err := svc.Create(context.Background(), userID, tt.content, tt.apiKey)
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)

			var validation *apperrors.ValidationError
			assert.ErrorAs(t, err, &validation)

			// Validation fails fast: no AI call, no storage write.
			replies.AssertNotCalled(t, "GenerateReply", mock.Anything, mock.Anything, mock.Anything)
			entries, listErr := svc.List(context.Background(), userID)
			require.NoError(t, listErr)
			assert.Empty(t, entries)
		})
	}
}

func TestDiaryService_Create_AIFailureWritesNothing(t *testing.T) {
	repo := &memoryEntryRepo{}
	replies := new(MockReplyGenerator)
	replies.On("GenerateReply", mock.Anything, "hello", "sk-bad").
		Return("", &ai.Error{Kind: ai.KindInvalidKey, Message: "Invalid OpenAI API key. Please check your API key and try again."})

	svc := NewDiaryService(repo, replies, zap.NewNop())
	userID := uuid.New()

	_, err := svc.Create(context.Background(), userID, "hello", "sk-bad")
	require.Error(t, err)

	var aiErr *ai.Error
	require.ErrorAs(t, err, &aiErr)
	assert.Equal(t, ai.KindInvalidKey, aiErr.Kind)

	entries, listErr := svc.List(context.Background(), userID)
	require.NoError(t, listErr)
	assert.Empty(t, entries)
}

func TestDiaryService_Create_PersistsReplyAndOrdersNewestFirst(t *testing.T) {
	repo := &memoryEntryRepo{}
	replies := new(MockReplyGenerator)
	replies.On("GenerateReply", mock.Anything, mock.Anything, "sk-test").
		Return("You are not alone.", nil)

	svc := NewDiaryService(repo, replies, zap.NewNop())
	userID := uuid.New()

	first, err := svc.Create(context.Background(), userID, "  hello  ", "sk-test")
	require.NoError(t, err)
	assert.Equal(t, "hello", first.Content)
	assert.Equal(t, "You are not alone.", first.AIReply)

	// Force distinct timestamps so ordering is deterministic.
	repo.entries[0].CreatedAt = time.Now().Add(-time.Hour)

	second, err := svc.Create(context.Background(), userID, "another day", "sk-test")
	require.NoError(t, err)

	entries, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}

func TestDiaryService_ListEntryDates(t *testing.T) {
	userID := uuid.New()
	day1 := time.Date(2025, 3, 9, 22, 15, 0, 0, time.Local)
	day2 := time.Date(2025, 3, 10, 8, 30, 0, 0, time.Local)

	repo := &memoryEntryRepo{entries: []model.DiaryEntry{
		{ID: uuid.New(), UserID: userID, Content: "a", AIReply: "r", CreatedAt: day2},
		{ID: uuid.New(), UserID: userID, Content: "b", AIReply: "r", CreatedAt: day1},
		{ID: uuid.New(), UserID: userID, Content: "c", AIReply: "r", CreatedAt: day1.Add(2 * time.Hour)},
	}}

	svc := NewDiaryService(repo, new(MockReplyGenerator), zap.NewNop())

	dates, err := svc.ListEntryDates(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-09", "2025-03-10"}, dates)
}

func TestDiaryService_CrossUserIsolation(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()

	repo := &memoryEntryRepo{entries: []model.DiaryEntry{
		{ID: uuid.New(), UserID: userA, Content: "mine", AIReply: "r", CreatedAt: time.Now()},
	}}
	svc := NewDiaryService(repo, new(MockReplyGenerator), zap.NewNop())

	entries, err := svc.List(context.Background(), userB)
	require.NoError(t, err)
	assert.Empty(t, entries)

	dates, err := svc.ListEntryDates(context.Background(), userB)
	require.NoError(t, err)
	assert.Empty(t, dates)
}
