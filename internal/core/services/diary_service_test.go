package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kokorolog/kokorolog/internal/apperrors"
	"github.com/kokorolog/kokorolog/internal/core/domain"
	portssvc "github.com/kokorolog/kokorolog/internal/core/ports/services"
	"github.com/kokorolog/kokorolog/internal/core/services"
	"github.com/kokorolog/kokorolog/internal/dto"
	"github.com/kokorolog/kokorolog/internal/metrics"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByDate(ctx context.Context, day time.Time) (*domain.Entry, error) {
	args := m.Called(ctx, day)
	var entry *domain.Entry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.Entry)
	}
	return entry, args.Error(1)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, entryID)
	var entry *domain.Entry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.Entry)
	}
	return entry, args.Error(1)
}

func (m *MockEntryRepository) ListEntries(ctx context.Context, limit int) ([]domain.Entry, error) {
	args := m.Called(ctx, limit)
	var entries []domain.Entry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.Entry)
	}
	return entries, args.Error(1)
}

func (m *MockEntryRepository) UpsertEntryByDate(ctx context.Context, entry domain.Entry) (*domain.Entry, bool, error) {
	args := m.Called(ctx, entry)
	var saved *domain.Entry
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Entry)
	}
	return saved, args.Bool(1), args.Error(2)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, entryID string) (bool, error) {
	args := m.Called(ctx, entryID)
	return args.Bool(0), args.Error(1)
}

// --- Mock CommentaryGenerator ---
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// --- Test Suite ---
type DiaryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	mockGenerator *MockGenerator
	service       portssvc.DiarySvcFacade
}

func (suite *DiaryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockGenerator = new(MockGenerator)
	suite.service = services.NewDiaryService(suite.mockEntryRepo, suite.mockGenerator, metrics.Noop{})
}

// --- SaveForDate Tests ---

func (suite *DiaryServiceTestSuite) TestSaveForDate_CreatesWhenDateUnused() {
	ctx := context.Background()
	day, _ := time.Parse(time.DateOnly, "2024-01-01")
	req := dto.SaveDiaryRequest{Date: "2024-01-01", Emotion: domain.EmotionHappy, Title: "T", Content: "hello"}

	suite.mockEntryRepo.On("FindEntryByDate", ctx, day).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockGenerator.On("GenerateText", ctx, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, domain.EmotionHappy) &&
			strings.Contains(prompt, "T") &&
			strings.Contains(prompt, "hello")
	})).Return("A lovely day!", nil).Once()
	suite.mockEntryRepo.On("UpsertEntryByDate", ctx, mock.MatchedBy(func(entry domain.Entry) bool {
		return entry.EntryID != "" &&
			entry.EntryDate.Equal(day) &&
			entry.Content == "hello" &&
			entry.AIComment == "A lovely day!"
	})).Return(&domain.Entry{EntryID: "new-id", EntryDate: day}, true, nil).Once()

	resp, err := suite.service.SaveForDate(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("new-id", resp.ID)
	suite.Equal("A lovely day!", resp.AIComment)
	suite.Equal("created", resp.Message)

	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockGenerator.AssertExpectations(suite.T())
}

func (suite *DiaryServiceTestSuite) TestSaveForDate_UpdatesExistingInPlace() {
	ctx := context.Background()
	day, _ := time.Parse(time.DateOnly, "2024-01-01")
	existingID := uuid.NewString()
	createdAt := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	existing := &domain.Entry{
		EntryID:   existingID,
		EntryDate: day,
		Emotion:   domain.EmotionSad,
		Title:     "T",
		Content:   "hello",
		AuditFields: domain.AuditFields{
			CreatedAt: createdAt,
		},
	}
	req := dto.SaveDiaryRequest{Date: "2024-01-01", Emotion: domain.EmotionHappy, Title: "T", Content: "updated"}

	suite.mockEntryRepo.On("FindEntryByDate", ctx, day).Return(existing, nil).Once()
	// The prompt is always built from the new field values, not the stored ones.
	suite.mockGenerator.On("GenerateText", ctx, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "updated") && !strings.Contains(prompt, "hello")
	})).Return("Keep going!", nil).Once()
	suite.mockEntryRepo.On("UpsertEntryByDate", ctx, mock.MatchedBy(func(entry domain.Entry) bool {
		return entry.EntryID == existingID &&
			entry.EntryDate.Equal(day) &&
			entry.CreatedAt.Equal(createdAt) &&
			entry.Content == "updated"
	})).Return(&domain.Entry{EntryID: existingID, EntryDate: day}, false, nil).Once()

	resp, err := suite.service.SaveForDate(ctx, req)

	suite.Require().NoError(err)
	suite.Empty(resp.ID)
	suite.Equal("updated", resp.Message)
	suite.Equal("Keep going!", resp.AIComment)

	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockGenerator.AssertExpectations(suite.T())
}

func (suite *DiaryServiceTestSuite) TestSaveForDate_GenerationFailureLeavesStoreUntouched() {
	ctx := context.Background()
	day, _ := time.Parse(time.DateOnly, "2024-01-01")
	req := dto.SaveDiaryRequest{Date: "2024-01-01", Emotion: domain.EmotionHappy, Title: "T", Content: "hello"}

	suite.mockEntryRepo.On("FindEntryByDate", ctx, day).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockGenerator.On("GenerateText", ctx, mock.AnythingOfType("string")).
		Return("", apperrors.ErrGeneration).Once()

	resp, err := suite.service.SaveForDate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrGeneration)

	suite.mockEntryRepo.AssertNotCalled(suite.T(), "UpsertEntryByDate", mock.Anything, mock.Anything)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *DiaryServiceTestSuite) TestSaveForDate_InvalidDate() {
	ctx := context.Background()
	req := dto.SaveDiaryRequest{Date: "not-a-date", Emotion: domain.EmotionHappy, Title: "T", Content: "hello"}

	resp, err := suite.service.SaveForDate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockGenerator.AssertNotCalled(suite.T(), "GenerateText", mock.Anything, mock.Anything)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "FindEntryByDate", mock.Anything, mock.Anything)
}

func (suite *DiaryServiceTestSuite) TestSaveForDate_LookupFailure() {
	ctx := context.Background()
	day, _ := time.Parse(time.DateOnly, "2024-01-01")
	req := dto.SaveDiaryRequest{Date: "2024-01-01", Emotion: domain.EmotionHappy, Title: "T", Content: "hello"}

	suite.mockEntryRepo.On("FindEntryByDate", ctx, day).Return(nil, errors.New("connection lost")).Once()

	resp, err := suite.service.SaveForDate(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)

	suite.mockGenerator.AssertNotCalled(suite.T(), "GenerateText", mock.Anything, mock.Anything)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

// --- CreateToday Tests ---

func (suite *DiaryServiceTestSuite) TestCreateToday_AllowsEmptyTitle() {
	ctx := context.Background()
	req := dto.CreateDiaryRequest{Emotion: domain.EmotionGood, Content: "short note"}

	suite.mockEntryRepo.On("FindEntryByDate", ctx, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockGenerator.On("GenerateText", ctx, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "short note") && !strings.Contains(prompt, "Title:")
	})).Return("Nice note.", nil).Once()
	suite.mockEntryRepo.On("UpsertEntryByDate", ctx, mock.MatchedBy(func(entry domain.Entry) bool {
		return entry.Title == "" && entry.Day() == time.Now().Format(time.DateOnly)
	})).Return(&domain.Entry{EntryID: "today-id"}, true, nil).Once()

	resp, err := suite.service.CreateToday(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("today-id", resp.ID)
	suite.Equal("Nice note.", resp.AIComment)

	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockGenerator.AssertExpectations(suite.T())
}

// --- UpdateByID Tests ---

func (suite *DiaryServiceTestSuite) TestUpdateByID_Success() {
	ctx := context.Background()
	day, _ := time.Parse(time.DateOnly, "2024-02-10")
	entryID := uuid.NewString()
	existing := &domain.Entry{EntryID: entryID, EntryDate: day, Emotion: domain.EmotionSad, Title: "Old", Content: "old"}
	req := dto.UpdateDiaryRequest{Emotion: domain.EmotionHappy, Title: "New", Content: "new"}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(existing, nil).Once()
	suite.mockGenerator.On("GenerateText", ctx, mock.AnythingOfType("string")).Return("Fresh comment.", nil).Once()
	suite.mockEntryRepo.On("UpdateEntry", ctx, mock.MatchedBy(func(entry domain.Entry) bool {
		return entry.EntryID == entryID &&
			entry.EntryDate.Equal(day) &&
			entry.Title == "New" &&
			entry.AIComment == "Fresh comment."
	})).Return(nil).Once()

	resp, err := suite.service.UpdateByID(ctx, entryID, req)

	suite.Require().NoError(err)
	suite.Equal("updated", resp.Message)
	suite.Equal("Fresh comment.", resp.AIComment)

	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockGenerator.AssertExpectations(suite.T())
}

func (suite *DiaryServiceTestSuite) TestUpdateByID_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.UpdateByID(ctx, entryID, dto.UpdateDiaryRequest{Title: "T", Content: "c"})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockGenerator.AssertNotCalled(suite.T(), "GenerateText", mock.Anything, mock.Anything)
}

// --- Read/Delete Tests ---

func (suite *DiaryServiceTestSuite) TestGetEntryByDate_NotFound() {
	ctx := context.Background()
	day, _ := time.Parse(time.DateOnly, "2099-01-01")

	suite.mockEntryRepo.On("FindEntryByDate", ctx, day).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntryByDate(ctx, day)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DiaryServiceTestSuite) TestDeleteEntry_NoMatchIsNotAnError() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockEntryRepo.On("DeleteEntry", ctx, entryID).Return(false, nil).Once()

	deleted, err := suite.service.DeleteEntry(ctx, entryID)

	suite.Require().NoError(err)
	suite.False(deleted)
}

func (suite *DiaryServiceTestSuite) TestListEntries_Unbounded() {
	ctx := context.Background()
	entries := []domain.Entry{{EntryID: "a"}, {EntryID: "b"}}

	suite.mockEntryRepo.On("ListEntries", ctx, 0).Return(entries, nil).Once()

	got, err := suite.service.ListEntries(ctx)

	suite.Require().NoError(err)
	suite.Equal(entries, got)
}

func TestDiaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DiaryServiceTestSuite))
}
