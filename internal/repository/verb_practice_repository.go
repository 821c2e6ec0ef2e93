//go:generate mockery --name VerbPracticeRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"polingo/internal/middleware"
	"polingo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerbPracticeRepository は語尾練習（人称変化）の成績記録を管理します。
type VerbPracticeRepository interface {
	Create(ctx context.Context, tx *gorm.DB, record *model.VerbPracticeRecord) error
	CountByDate(ctx context.Context, db *gorm.DB, date string) (total, correct int64, err error)
	CountOverall(ctx context.Context, db *gorm.DB) (total, correct int64, err error)
	CountByVerb(ctx context.Context, db *gorm.DB, verbID uuid.UUID) (total, correct int64, err error)
	DeleteByVerb(ctx context.Context, tx *gorm.DB, verbID uuid.UUID) error
}

type gormVerbPracticeRepository struct{}

func NewGormVerbPracticeRepository() VerbPracticeRepository {
	return &gormVerbPracticeRepository{}
}

func (r *gormVerbPracticeRepository) Create(ctx context.Context, tx *gorm.DB, record *model.VerbPracticeRecord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(record)
	if result.Error != nil {
		logger.Error("Error creating verb practice record in DB",
			"error", result.Error,
			"verb_id", record.VerbID.String(),
		)
		return fmt.Errorf("gormVerbPracticeRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVerbPracticeRepository) CountByDate(ctx context.Context, db *gorm.DB, date string) (int64, int64, error) {
	logger := middleware.GetLogger(ctx)
	var counts practiceCounts
	result := db.WithContext(ctx).
		Model(&model.VerbPracticeRecord{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN was_correct THEN 1 ELSE 0 END), 0) AS correct").
		Where("practice_date = ?", date).
		Scan(&counts)
	if result.Error != nil {
		logger.Error("Error counting verb practice records by date in DB",
			"error", result.Error,
			"date", date,
		)
		return 0, 0, fmt.Errorf("gormVerbPracticeRepository.CountByDate: %w", result.Error)
	}
	return counts.Total, counts.Correct, nil
}

func (r *gormVerbPracticeRepository) CountOverall(ctx context.Context, db *gorm.DB) (int64, int64, error) {
	logger := middleware.GetLogger(ctx)
	var counts practiceCounts
	result := db.WithContext(ctx).
		Model(&model.VerbPracticeRecord{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN was_correct THEN 1 ELSE 0 END), 0) AS correct").
		Scan(&counts)
	if result.Error != nil {
		logger.Error("Error counting verb practice records in DB", "error", result.Error)
		return 0, 0, fmt.Errorf("gormVerbPracticeRepository.CountOverall: %w", result.Error)
	}
	return counts.Total, counts.Correct, nil
}

func (r *gormVerbPracticeRepository) CountByVerb(ctx context.Context, db *gorm.DB, verbID uuid.UUID) (int64, int64, error) {
	logger := middleware.GetLogger(ctx)
	var counts practiceCounts
	result := db.WithContext(ctx).
		Model(&model.VerbPracticeRecord{}).
		Select("COUNT(*) AS total, COALESCE(SUM(CASE WHEN was_correct THEN 1 ELSE 0 END), 0) AS correct").
		Where("verb_id = ?", verbID).
		Scan(&counts)
	if result.Error != nil {
		logger.Error("Error counting verb practice records by verb in DB",
			"error", result.Error,
			"verb_id", verbID.String(),
		)
		return 0, 0, fmt.Errorf("gormVerbPracticeRepository.CountByVerb: %w", result.Error)
	}
	return counts.Total, counts.Correct, nil
}

func (r *gormVerbPracticeRepository) DeleteByVerb(ctx context.Context, tx *gorm.DB, verbID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("verb_id = ?", verbID).Delete(&model.VerbPracticeRecord{})
	if result.Error != nil {
		logger.Error("Error deleting verb practice records in DB",
			"error", result.Error,
			"verb_id", verbID.String(),
		)
		return fmt.Errorf("gormVerbPracticeRepository.DeleteByVerb: %w", result.Error)
	}
	return nil
}
