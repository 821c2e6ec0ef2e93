//go:generate mockery --name WordOptionRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"polingo/internal/middleware"
	"polingo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WordOptionRepository は単語ごとの許容される別解を管理します。
type WordOptionRepository interface {
	// Create は別解を1件登録します。同じ (word, language, value) が既に
	// 存在する場合は何もせず成功します（別解学習は冪等）。
	Create(ctx context.Context, tx *gorm.DB, option *model.WordOption) error
	FindByWordAndLanguage(ctx context.Context, db *gorm.DB, wordID uuid.UUID, language model.WordLanguage) ([]*model.WordOption, error)
	DeleteByWord(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
}

type gormWordOptionRepository struct{}

func NewGormWordOptionRepository() WordOptionRepository {
	return &gormWordOptionRepository{}
}

func (r *gormWordOptionRepository) Create(ctx context.Context, tx *gorm.DB, option *model.WordOption) error {
	logger := middleware.GetLogger(ctx)
	// 成績記録と同一トランザクション内で呼ばれるため、重複はエラーにせず
	// ON CONFLICT DO NOTHING で吸収する
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "word_id"}, {Name: "language"}, {Name: "value"}},
			DoNothing: true,
		}).
		Create(option)
	if result.Error != nil {
		logger.Error("Error creating word option in DB",
			"error", result.Error,
			"word_id", option.WordID.String(),
		)
		return fmt.Errorf("gormWordOptionRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordOptionRepository) FindByWordAndLanguage(ctx context.Context, db *gorm.DB, wordID uuid.UUID, language model.WordLanguage) ([]*model.WordOption, error) {
	logger := middleware.GetLogger(ctx)
	var options []*model.WordOption
	result := db.WithContext(ctx).
		Where("word_id = ? AND language = ?", wordID, language).
		Order("created_at ASC").
		Find(&options)
	if result.Error != nil {
		logger.Error("Error finding word options in DB",
			"error", result.Error,
			"word_id", wordID.String(),
			"language", string(language),
		)
		return nil, fmt.Errorf("gormWordOptionRepository.FindByWordAndLanguage: %w", result.Error)
	}
	return options, nil
}

func (r *gormWordOptionRepository) DeleteByWord(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.WordOption{})
	if result.Error != nil {
		logger.Error("Error deleting word options in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordOptionRepository.DeleteByWord: %w", result.Error)
	}
	return nil
}
