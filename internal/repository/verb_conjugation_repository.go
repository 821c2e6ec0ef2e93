//go:generate mockery --name VerbConjugationRepository --output ./mocks --outpkg mocks --case=underscore
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

// VerbConjugationRepository は動詞の人称変化形を管理します。
// 人称の正規順序 (model.Pronouns) への並べ替えは Service 層で行います。
type VerbConjugationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, conjugation *model.VerbConjugation) error
	FindByVerb(ctx context.Context, db *gorm.DB, verbID uuid.UUID) ([]*model.VerbConjugation, error)
	FindByVerbIDs(ctx context.Context, db *gorm.DB, verbIDs []uuid.UUID) ([]*model.VerbConjugation, error)
	FindByVerbAndPronoun(ctx context.Context, db *gorm.DB, verbID uuid.UUID, pronoun model.Pronoun) (*model.VerbConjugation, error)
	DeleteByVerb(ctx context.Context, tx *gorm.DB, verbID uuid.UUID) error
}

type gormVerbConjugationRepository struct{}

func NewGormVerbConjugationRepository() VerbConjugationRepository {
	return &gormVerbConjugationRepository{}
}

func (r *gormVerbConjugationRepository) Create(ctx context.Context, tx *gorm.DB, conjugation *model.VerbConjugation) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(conjugation)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate key error on create verb conjugation",
				"error", result.Error,
				"verb_id", conjugation.VerbID.String(),
				"pronoun", string(conjugation.Pronoun),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating verb conjugation in DB",
			"error", result.Error,
			"verb_id", conjugation.VerbID.String(),
		)
		return fmt.Errorf("gormVerbConjugationRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormVerbConjugationRepository) FindByVerb(ctx context.Context, db *gorm.DB, verbID uuid.UUID) ([]*model.VerbConjugation, error) {
	logger := middleware.GetLogger(ctx)
	var conjugations []*model.VerbConjugation
	result := db.WithContext(ctx).Where("verb_id = ?", verbID).Find(&conjugations)
	if result.Error != nil {
		logger.Error("Error finding verb conjugations in DB",
			"error", result.Error,
			"verb_id", verbID.String(),
		)
		return nil, fmt.Errorf("gormVerbConjugationRepository.FindByVerb: %w", result.Error)
	}
	return conjugations, nil
}

func (r *gormVerbConjugationRepository) FindByVerbIDs(ctx context.Context, db *gorm.DB, verbIDs []uuid.UUID) ([]*model.VerbConjugation, error) {
	logger := middleware.GetLogger(ctx)
	if len(verbIDs) == 0 {
		return nil, nil
	}
	var conjugations []*model.VerbConjugation
	result := db.WithContext(ctx).Where("verb_id IN ?", verbIDs).Find(&conjugations)
	if result.Error != nil {
		logger.Error("Error finding verb conjugations by IDs in DB",
			"error", result.Error,
			"verb_count", len(verbIDs),
		)
		return nil, fmt.Errorf("gormVerbConjugationRepository.FindByVerbIDs: %w", result.Error)
	}
	return conjugations, nil
}

func (r *gormVerbConjugationRepository) FindByVerbAndPronoun(ctx context.Context, db *gorm.DB, verbID uuid.UUID, pronoun model.Pronoun) (*model.VerbConjugation, error) {
	logger := middleware.GetLogger(ctx)
	var conjugation model.VerbConjugation
	result := db.WithContext(ctx).Where("verb_id = ? AND pronoun = ?", verbID, pronoun).First(&conjugation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding verb conjugation in DB",
			"error", result.Error,
			"verb_id", verbID.String(),
			"pronoun", string(pronoun),
		)
		return nil, fmt.Errorf("gormVerbConjugationRepository.FindByVerbAndPronoun: %w", result.Error)
	}
	return &conjugation, nil
}

func (r *gormVerbConjugationRepository) DeleteByVerb(ctx context.Context, tx *gorm.DB, verbID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("verb_id = ?", verbID).Delete(&model.VerbConjugation{})
	if result.Error != nil {
		logger.Error("Error deleting verb conjugations in DB",
			"error", result.Error,
			"verb_id", verbID.String(),
		)
		return fmt.Errorf("gormVerbConjugationRepository.DeleteByVerb: %w", result.Error)
	}
	return nil
}
