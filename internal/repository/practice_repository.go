//go:generate mockery --name PracticeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"polingo/internal/middleware"
	"polingo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// practiceCounts は集計クエリのスキャン先です。
type practiceCounts struct {
	Total   int64
	Correct int64
}

// PracticeRepository は翻訳練習の成績記録を管理します。
type PracticeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *model.PracticeRecord) error
	// CountByDate は指定日の全回答数と正解数を返します。記録がない場合はともに 0 です。
	CountByDate(ctx context.Context, db *gorm.DB, date string) (total, correct int64, err error)
	CountOverall(ctx context.Context, db *gorm.DB) (total, correct int64, err error)
	DeleteByWord(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
}

type gormPracticeRepository struct{}

func NewGormPracticeRepository() PracticeRepository {
	return &gormPracticeRepository{}
}

func (r *gormPracticeRepository) Create(ctx context.Context, tx *gorm.DB, record *model.PracticeRecord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(record)
	if result.Error != nil {
		logger.Error("Error creating practice record in DB",
			"error", result.Error,
			"word_id", record.WordID.String(),
		)
		return fmt.Errorf("gormPracticeRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormPracticeRepository) CountByDate(ctx context.Context, db *gorm.DB, date string) (int64, int64, error) {
	logger := middleware.GetLogger(ctx)
	var counts practiceCounts
	// was_correct は sqlite では 1/0、postgres では true/false のため CASE 式で吸収する
	result := db.WithContext(ctx).
		Model(&model.PracticeRecord{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN was_correct THEN 1 ELSE 0 END), 0) AS correct").
		Where("practice_date = ?", date).
		Scan(&counts)
	if result.Error != nil {
		logger.Error("Error counting practice records by date in DB",
			"error", result.Error,
			"date", date,
		)
		return 0, 0, fmt.Errorf("gormPracticeRepository.CountByDate: %w", result.Error)
	}
	return counts.Total, counts.Correct, nil
}

func (r *gormPracticeRepository) CountOverall(ctx context.Context, db *gorm.DB) (int64, int64, error) {
	logger := middleware.GetLogger(ctx)
	var counts practiceCounts
	result := db.WithContext(ctx).
		Model(&model.PracticeRecord{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN was_correct THEN 1 ELSE 0 END), 0) AS correct").
		Scan(&counts)
	if result.Error != nil {
		logger.Error("Error counting practice records in DB",
			"error", result.Error,
		)
		return 0, 0, fmt.Errorf("gormPracticeRepository.CountOverall: %w", result.Error)
	}
	return counts.Total, counts.Correct, nil
}

func (r *gormPracticeRepository) DeleteByWord(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.PracticeRecord{})
	if result.Error != nil {
		logger.Error("Error deleting practice records in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormPracticeRepository.DeleteByWord: %w", result.Error)
	}
	return nil
}
