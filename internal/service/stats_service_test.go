// internal/service/stats_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"polingo/internal/model"
	"polingo/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBStats() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// --- Test GetWordStats ---
func Test_statsService_GetWordStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBStats()
	mockWordRepo := new(mocks.WordRepository)
	mockVerbRepo := new(mocks.VerbRepository)
	mockPracticeRepo := new(mocks.PracticeRepository)
	mockVerbPracticeRepo := new(mocks.VerbPracticeRepository)
	statsService := NewStatsService(db, mockWordRepo, mockVerbRepo, mockPracticeRepo, mockVerbPracticeRepo)

	today := model.PracticeDay(time.Now())
	yesterday := model.PracticeDay(time.Now().AddDate(0, 0, -1))

	t.Run("正常系: 今日と昨日の正答率の差がトレンドになる", func(t *testing.T) {
		mockWordRepo.Mock = mock.Mock{}
		mockPracticeRepo.Mock = mock.Mock{}

		// 今日 1/3 = 33.3%、昨日 2/2 = 100% なのでトレンドは -66.7
		mockPracticeRepo.On("CountByDate", ctx, db, today).Return(int64(3), int64(1), nil).Once()
		mockPracticeRepo.On("CountByDate", ctx, db, yesterday).Return(int64(2), int64(2), nil).Once()
		mockPracticeRepo.On("CountOverall", ctx, db).Return(int64(5), int64(3), nil).Once()
		mockWordRepo.On("Count", ctx, db).Return(int64(7), nil).Once()

		stats, err := statsService.GetWordStats(ctx)

		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 33.3, stats.TodayPercentage)
		assert.Equal(t, -66.7, stats.Trend)
		assert.Equal(t, 60.0, stats.OverallPercentage)
		assert.Equal(t, int64(7), stats.AvailableWords)
		mockPracticeRepo.AssertExpectations(t)
		mockWordRepo.AssertExpectations(t)
	})

	t.Run("正常系: 記録のない日は 0.0 として扱う", func(t *testing.T) {
		mockWordRepo.Mock = mock.Mock{}
		mockPracticeRepo.Mock = mock.Mock{}

		mockPracticeRepo.On("CountByDate", ctx, db, today).Return(int64(0), int64(0), nil).Once()
		mockPracticeRepo.On("CountByDate", ctx, db, yesterday).Return(int64(0), int64(0), nil).Once()
		mockPracticeRepo.On("CountOverall", ctx, db).Return(int64(0), int64(0), nil).Once()
		mockWordRepo.On("Count", ctx, db).Return(int64(0), nil).Once()

		stats, err := statsService.GetWordStats(ctx)

		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 0.0, stats.TodayPercentage)
		assert.Equal(t, 0.0, stats.Trend)
		assert.Equal(t, 0.0, stats.OverallPercentage)
		assert.Equal(t, int64(0), stats.AvailableWords)
	})

	t.Run("異常系: 集計でDBエラー", func(t *testing.T) {
		mockWordRepo.Mock = mock.Mock{}
		mockPracticeRepo.Mock = mock.Mock{}

		mockPracticeRepo.On("CountByDate", ctx, db, today).
			Return(int64(0), int64(0), errors.New("db error")).Once()

		stats, err := statsService.GetWordStats(ctx)

		requireAppErrorCode(t, err, "INTERNAL_SERVER_ERROR")
		assert.Nil(t, stats)
	})
}

// --- Test GetEndingsStats ---
func Test_statsService_GetEndingsStats(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBStats()
	mockWordRepo := new(mocks.WordRepository)
	mockVerbRepo := new(mocks.VerbRepository)
	mockPracticeRepo := new(mocks.PracticeRepository)
	mockVerbPracticeRepo := new(mocks.VerbPracticeRepository)
	statsService := NewStatsService(db, mockWordRepo, mockVerbRepo, mockPracticeRepo, mockVerbPracticeRepo)

	today := model.PracticeDay(time.Now())
	yesterday := model.PracticeDay(time.Now().AddDate(0, 0, -1))

	t.Run("正常系: 単語練習とは独立に集計される", func(t *testing.T) {
		mockVerbRepo.Mock = mock.Mock{}
		mockVerbPracticeRepo.Mock = mock.Mock{}

		mockVerbPracticeRepo.On("CountByDate", ctx, db, today).Return(int64(4), int64(3), nil).Once()
		mockVerbPracticeRepo.On("CountByDate", ctx, db, yesterday).Return(int64(0), int64(0), nil).Once()
		mockVerbPracticeRepo.On("CountOverall", ctx, db).Return(int64(4), int64(3), nil).Once()
		mockVerbRepo.On("Count", ctx, db).Return(int64(2), nil).Once()

		stats, err := statsService.GetEndingsStats(ctx)

		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, 75.0, stats.TodayPercentage)
		assert.Equal(t, 75.0, stats.Trend)
		assert.Equal(t, 75.0, stats.OverallPercentage)
		assert.Equal(t, int64(2), stats.AvailableVerbs)
		// 単語側のリポジトリには触れない
		mockPracticeRepo.AssertNotCalled(t, "CountByDate", mock.Anything, mock.Anything, mock.Anything)
		mockWordRepo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
		mockVerbPracticeRepo.AssertExpectations(t)
		mockVerbRepo.AssertExpectations(t)
	})

	t.Run("異常系: 集計でDBエラー", func(t *testing.T) {
		mockVerbRepo.Mock = mock.Mock{}
		mockVerbPracticeRepo.Mock = mock.Mock{}

		mockVerbPracticeRepo.On("CountByDate", ctx, db, today).
			Return(int64(0), int64(0), errors.New("db error")).Once()

		stats, err := statsService.GetEndingsStats(ctx)

		requireAppErrorCode(t, err, "INTERNAL_SERVER_ERROR")
		assert.Nil(t, stats)
	})
}
