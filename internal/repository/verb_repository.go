//go:generate mockery --name VerbRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"polingo/internal/middleware"
	"polingo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerbRepository インターフェース
type VerbRepository interface {
	Create(ctx context.Context, tx *gorm.DB, verb *model.Verb) error
	FindByID(ctx context.Context, db *gorm.DB, verbID uuid.UUID) (*model.Verb, error)
	FindByInfinitive(ctx context.Context, db *gorm.DB, infinitive string) (*model.Verb, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, verbID uuid.UUID) error
}

type gormVerbRepository struct{}

func NewGormVerbRepository() VerbRepository {
	return &gormVerbRepository{}
}

func (r *gormVerbRepository) Create(ctx context.Context, tx *gorm.DB, verb *model.Verb) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(verb)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate key error on create verb",
				"error", result.Error,
				"infinitive", verb.Infinitive,
			)
			return model.ErrConflict
		}
		logger.Error("Error creating verb in DB",
			"error", result.Error,
			"infinitive", verb.Infinitive,
		)
		return fmt.Errorf("gormVerbRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVerbRepository) FindByID(ctx context.Context, db *gorm.DB, verbID uuid.UUID) (*model.Verb, error) {
	logger := middleware.GetLogger(ctx)
	var verb model.Verb
	result := db.WithContext(ctx).Where("verb_id = ?", verbID).First(&verb)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding verb by ID in DB",
			"error", result.Error,
			"verb_id", verbID.String(),
		)
		return nil, fmt.Errorf("gormVerbRepository.FindByID: %w", result.Error)
	}
	return &verb, nil
}

func (r *gormVerbRepository) FindByInfinitive(ctx context.Context, db *gorm.DB, infinitive string) (*model.Verb, error) {
	logger := middleware.GetLogger(ctx)
	var verb model.Verb
	result := db.WithContext(ctx).Where("LOWER(infinitive) = ?", model.Normalize(infinitive)).First(&verb)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding verb by infinitive in DB",
			"error", result.Error,
			"infinitive", infinitive,
		)
		return nil, fmt.Errorf("gormVerbRepository.FindByInfinitive: %w", result.Error)
	}
	return &verb, nil
}

func (r *gormVerbRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Verb{}).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting verbs in DB",
			"error", result.Error,
		)
		return 0, fmt.Errorf("gormVerbRepository.Count: %w", result.Error)
	}
	return count, nil
}

func (r *gormVerbRepository) Delete(ctx context.Context, tx *gorm.DB, verbID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("verb_id = ?", verbID).Delete(&model.Verb{})
	if result.Error != nil {
		logger.Error("Error deleting verb in DB",
			"error", result.Error,
			"verb_id", verbID.String(),
		)
		return fmt.Errorf("gormVerbRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
