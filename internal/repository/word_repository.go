//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	// middleware.GetLoggerが返す型として必要
	"polingo/internal/middleware"
	"polingo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordRepository インターフェース
type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error)
	FindInitial(ctx context.Context, db *gorm.DB, limit int) ([]*model.Word, error)
	// FindByNormalizedText は polish → english → ukrainian の優先順で
	// 正規化一致する単語を探し、マッチした言語カラムも返します。
	FindByNormalizedText(ctx context.Context, db *gorm.DB, text string) (*model.Word, model.WordLanguage, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate key error on create word",
				"error", result.Error,
				"polish", word.Polish,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"polish", word.Polish,
		)
		return fmt.Errorf("gormWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) FindInitial(ctx context.Context, db *gorm.DB, limit int) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).Order("created_at ASC").Limit(limit).Find(&words)
	if result.Error != nil {
		logger.Error("Error finding initial words in DB",
			"error", result.Error,
			"limit", limit,
		)
		return nil, fmt.Errorf("gormWordRepository.FindInitial: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) FindByNormalizedText(ctx context.Context, db *gorm.DB, text string) (*model.Word, model.WordLanguage, error) {
	logger := middleware.GetLogger(ctx)
	normalized := model.Normalize(text)

	// カラム名は WordLanguages の固定値のみを使う
	for _, lang := range model.WordLanguages {
		var word model.Word
		result := db.WithContext(ctx).Where(fmt.Sprintf("LOWER(%s) = ?", string(lang)), normalized).First(&word)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				continue
			}
			logger.Error("Error finding word by text in DB",
				"error", result.Error,
				"language", string(lang),
			)
			return nil, "", fmt.Errorf("gormWordRepository.FindByNormalizedText: %w", result.Error)
		}
		return &word, lang, nil
	}
	return nil, "", model.ErrNotFound
}

func (r *gormWordRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting words in DB",
			"error", result.Error,
		)
		return 0, fmt.Errorf("gormWordRepository.Count: %w", result.Error)
	}
	return count, nil
}

func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.Word{})
	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
