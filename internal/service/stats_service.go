// internal/service/stats_service.go
package service

import (
	"context"
	"math"
	"time"

	"polingo/internal/middleware"
	"polingo/internal/model"
	"polingo/internal/repository"

	"gorm.io/gorm"
)

// StatsService は練習成績の集計を提供します。
type StatsService interface {
	GetWordStats(ctx context.Context) (*model.StatsResponse, error)
	GetEndingsStats(ctx context.Context) (*model.EndingsStatsResponse, error)
}

type statsService struct {
	db               *gorm.DB
	wordRepo         repository.WordRepository
	verbRepo         repository.VerbRepository
	practiceRepo     repository.PracticeRepository
	verbPracticeRepo repository.VerbPracticeRepository
}

func NewStatsService(
	db *gorm.DB,
	wordRepo repository.WordRepository,
	verbRepo repository.VerbRepository,
	practiceRepo repository.PracticeRepository,
	verbPracticeRepo repository.VerbPracticeRepository,
) StatsService {
	return &statsService{
		db:               db,
		wordRepo:         wordRepo,
		verbRepo:         verbRepo,
		practiceRepo:     practiceRepo,
		verbPracticeRepo: verbPracticeRepo,
	}
}

func (s *statsService) GetWordStats(ctx context.Context) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx)

	stats, err := buildWordStats(ctx, s.db, s.practiceRepo, s.wordRepo, time.Now())
	if err != nil {
		logger.Error("Failed to build word stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の集計に失敗しました。", "", err)
	}
	return stats, nil
}

func (s *statsService) GetEndingsStats(ctx context.Context) (*model.EndingsStatsResponse, error) {
	logger := middleware.GetLogger(ctx)

	stats, err := buildEndingsStats(ctx, s.db, s.verbPracticeRepo, s.verbRepo, time.Now())
	if err != nil {
		logger.Error("Failed to build endings stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "語尾クイズ統計の集計に失敗しました。", "", err)
	}
	return stats, nil
}

// buildWordStats は単語練習の統計を組み立てます。回答記録と同一トランザクションで
// 呼べるよう、db にはトランザクションも渡せます。
func buildWordStats(
	ctx context.Context,
	db *gorm.DB,
	practiceRepo repository.PracticeRepository,
	wordRepo repository.WordRepository,
	now time.Time,
) (*model.StatsResponse, error) {
	today := model.PracticeDay(now)
	yesterday := model.PracticeDay(now.AddDate(0, 0, -1))

	totalToday, correctToday, err := practiceRepo.CountByDate(ctx, db, today)
	if err != nil {
		return nil, err
	}
	totalYesterday, correctYesterday, err := practiceRepo.CountByDate(ctx, db, yesterday)
	if err != nil {
		return nil, err
	}
	totalOverall, correctOverall, err := practiceRepo.CountOverall(ctx, db)
	if err != nil {
		return nil, err
	}
	available, err := wordRepo.Count(ctx, db)
	if err != nil {
		return nil, err
	}

	todayRaw := rawPercent(correctToday, totalToday)
	yesterdayRaw := rawPercent(correctYesterday, totalYesterday)

	return &model.StatsResponse{
		TodayPercentage: roundPercent(todayRaw),
		// トレンドは符号付きの生差分を丸める（クランプしない）
		Trend:             roundPercent(todayRaw - yesterdayRaw),
		OverallPercentage: roundPercent(rawPercent(correctOverall, totalOverall)),
		AvailableWords:    available,
	}, nil
}

// buildEndingsStats は語尾クイズの統計を組み立てます。単語練習とは独立した集計です。
func buildEndingsStats(
	ctx context.Context,
	db *gorm.DB,
	verbPracticeRepo repository.VerbPracticeRepository,
	verbRepo repository.VerbRepository,
	now time.Time,
) (*model.EndingsStatsResponse, error) {
	today := model.PracticeDay(now)
	yesterday := model.PracticeDay(now.AddDate(0, 0, -1))

	totalToday, correctToday, err := verbPracticeRepo.CountByDate(ctx, db, today)
	if err != nil {
		return nil, err
	}
	totalYesterday, correctYesterday, err := verbPracticeRepo.CountByDate(ctx, db, yesterday)
	if err != nil {
		return nil, err
	}
	totalOverall, correctOverall, err := verbPracticeRepo.CountOverall(ctx, db)
	if err != nil {
		return nil, err
	}
	available, err := verbRepo.Count(ctx, db)
	if err != nil {
		return nil, err
	}

	todayRaw := rawPercent(correctToday, totalToday)
	yesterdayRaw := rawPercent(correctYesterday, totalYesterday)

	return &model.EndingsStatsResponse{
		TodayPercentage:   roundPercent(todayRaw),
		Trend:             roundPercent(todayRaw - yesterdayRaw),
		OverallPercentage: roundPercent(rawPercent(correctOverall, totalOverall)),
		AvailableVerbs:    available,
	}, nil
}

// rawPercent は丸め前の正答率（パーセント）を返します。0/0 は 0.0 です。
func rawPercent(correct, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(correct) / float64(total) * 100
}

func roundPercent(v float64) float64 {
	return math.Round(v*10) / 10
}
