package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kokorolog/kokorolog/internal/apperrors"
	"github.com/kokorolog/kokorolog/internal/core/domain"
	portssvc "github.com/kokorolog/kokorolog/internal/core/ports/services"
	"github.com/kokorolog/kokorolog/internal/core/services"
	"github.com/kokorolog/kokorolog/internal/metrics"
)

type SummaryServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	mockGenerator *MockGenerator
	service       portssvc.SummarySvcFacade
}

func (suite *SummaryServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockGenerator = new(MockGenerator)
	suite.service = services.NewSummaryService(suite.mockEntryRepo, suite.mockGenerator, metrics.Noop{}, 30)
}

func (suite *SummaryServiceTestSuite) TestSummarize_EmptyDiarySkipsGenerator() {
	ctx := context.Background()

	suite.mockEntryRepo.On("ListEntries", ctx, 30).Return([]domain.Entry{}, nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.Equal(services.NoEntriesSummary, summary)

	suite.mockGenerator.AssertNotCalled(suite.T(), "GenerateText", mock.Anything, mock.Anything)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *SummaryServiceTestSuite) TestSummarize_PromptKeepsStoreOrder() {
	ctx := context.Background()
	entries := []domain.Entry{
		{Emotion: domain.EmotionHappy, Title: "Third day", Content: "newest entry"},
		{Emotion: domain.EmotionNeutral, Title: "Second day", Content: "middle entry"},
		{Emotion: domain.EmotionSad, Title: "First day", Content: "oldest entry"},
	}

	suite.mockEntryRepo.On("ListEntries", ctx, 30).Return(entries, nil).Once()
	suite.mockGenerator.On("GenerateText", ctx, mock.MatchedBy(func(prompt string) bool {
		newest := strings.Index(prompt, "newest entry")
		middle := strings.Index(prompt, "middle entry")
		oldest := strings.Index(prompt, "oldest entry")
		if newest < 0 || middle < 0 || oldest < 0 {
			return false
		}
		// Store order is date-descending: newest first, oldest last.
		return newest < middle && middle < oldest &&
			strings.Contains(prompt, domain.EmotionHappy) &&
			strings.Contains(prompt, domain.EmotionSad)
	})).Return("A calm week overall.", nil).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().NoError(err)
	suite.Equal("A calm week overall.", summary)

	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockGenerator.AssertExpectations(suite.T())
	suite.mockGenerator.AssertNumberOfCalls(suite.T(), "GenerateText", 1)
}

func (suite *SummaryServiceTestSuite) TestSummarize_GeneratorFailure() {
	ctx := context.Background()
	entries := []domain.Entry{{Emotion: domain.EmotionGood, Title: "T", Content: "c"}}

	suite.mockEntryRepo.On("ListEntries", ctx, 30).Return(entries, nil).Once()
	suite.mockGenerator.On("GenerateText", ctx, mock.AnythingOfType("string")).
		Return("", apperrors.ErrGeneration).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().Error(err)
	suite.Empty(summary)
	suite.ErrorIs(err, apperrors.ErrGeneration)
}

func (suite *SummaryServiceTestSuite) TestSummarize_StoreFailure() {
	ctx := context.Background()

	suite.mockEntryRepo.On("ListEntries", ctx, 30).Return(nil, assert.AnError).Once()

	summary, err := suite.service.Summarize(ctx)

	suite.Require().Error(err)
	suite.Empty(summary)

	suite.mockGenerator.AssertNotCalled(suite.T(), "GenerateText", mock.Anything, mock.Anything)
}

func (suite *SummaryServiceTestSuite) TestNewSummaryService_DefaultsLimit() {
	ctx := context.Background()
	svc := services.NewSummaryService(suite.mockEntryRepo, suite.mockGenerator, metrics.Noop{}, 0)

	suite.mockEntryRepo.On("ListEntries", ctx, 30).Return([]domain.Entry{}, nil).Once()

	_, err := svc.Summarize(ctx)

	suite.Require().NoError(err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func TestSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SummaryServiceTestSuite))
}
