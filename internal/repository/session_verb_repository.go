//go:generate mockery --name SessionVerbRepository --output ./mocks --outpkg mocks --case=underscore
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

// SessionVerbRepository はセッションと動詞の紐付け（語尾練習の対象リスト）を管理します。
type SessionVerbRepository interface {
	Create(ctx context.Context, tx *gorm.DB, link *model.UserSessionVerb) error
	Find(ctx context.Context, db *gorm.DB, sessionID, verbID uuid.UUID) (*model.UserSessionVerb, error)
	// FindWithStats はセッション内の全動詞を成績集計付きで返します。
	// Conjugations は空のまま返すため、必要なら呼び出し側で別途取得します。
	FindWithStats(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.VerbWithConjugations, error)
	SetEnabled(ctx context.Context, tx *gorm.DB, sessionID, verbID uuid.UUID, enabled bool) error
	Delete(ctx context.Context, tx *gorm.DB, sessionID, verbID uuid.UUID) error
	DeleteByVerb(ctx context.Context, tx *gorm.DB, verbID uuid.UUID) error
}

type gormSessionVerbRepository struct{}

func NewGormSessionVerbRepository() SessionVerbRepository {
	return &gormSessionVerbRepository{}
}

func (r *gormSessionVerbRepository) Create(ctx context.Context, tx *gorm.DB, link *model.UserSessionVerb) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(link)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate key error on create session verb",
				"error", result.Error,
				"verb_id", link.VerbID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating session verb in DB",
			"error", result.Error,
			"verb_id", link.VerbID.String(),
		)
		return fmt.Errorf("gormSessionVerbRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSessionVerbRepository) Find(ctx context.Context, db *gorm.DB, sessionID, verbID uuid.UUID) (*model.UserSessionVerb, error) {
	logger := middleware.GetLogger(ctx)
	var link model.UserSessionVerb
	result := db.WithContext(ctx).Where("session_id = ? AND verb_id = ?", sessionID, verbID).First(&link)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding session verb in DB",
			"error", result.Error,
			"verb_id", verbID.String(),
		)
		return nil, fmt.Errorf("gormSessionVerbRepository.Find: %w", result.Error)
	}
	return &link, nil
}

func (r *gormSessionVerbRepository) FindWithStats(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.VerbWithConjugations, error) {
	logger := middleware.GetLogger(ctx)
	var rows []*model.VerbWithConjugations

	result := db.WithContext(ctx).
		Table("user_session_verbs AS usv").
		Select(`verbs.verb_id AS id,
			verbs.infinitive,
			verbs.english,
			verbs.ukrainian,
			usv.enabled,
			usv.added_at,
			COALESCE(vpr.total, 0) AS total_attempts,
			COALESCE(vpr.correct, 0) AS correct_attempts`).
		Joins("JOIN verbs ON verbs.verb_id = usv.verb_id").
		Joins(`LEFT JOIN (
			SELECT verb_id,
				COUNT(*) AS total,
				SUM(CASE WHEN was_correct THEN 1 ELSE 0 END) AS correct
			FROM verb_practice_records
			GROUP BY verb_id
		) vpr ON vpr.verb_id = usv.verb_id`).
		Where("usv.session_id = ?", sessionID).
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error finding session verbs with stats in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormSessionVerbRepository.FindWithStats: %w", result.Error)
	}
	return rows, nil
}

func (r *gormSessionVerbRepository) SetEnabled(ctx context.Context, tx *gorm.DB, sessionID, verbID uuid.UUID, enabled bool) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.UserSessionVerb{}).
		Where("session_id = ? AND verb_id = ?", sessionID, verbID).
		Update("enabled", enabled)
	if result.Error != nil {
		logger.Error("Error updating session verb enabled flag in DB",
			"error", result.Error,
			"verb_id", verbID.String(),
		)
		return fmt.Errorf("gormSessionVerbRepository.SetEnabled: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSessionVerbRepository) Delete(ctx context.Context, tx *gorm.DB, sessionID, verbID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("session_id = ? AND verb_id = ?", sessionID, verbID).
		Delete(&model.UserSessionVerb{})
	if result.Error != nil {
		logger.Error("Error deleting session verb in DB",
			"error", result.Error,
			"verb_id", verbID.String(),
		)
		return fmt.Errorf("gormSessionVerbRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSessionVerbRepository) DeleteByVerb(ctx context.Context, tx *gorm.DB, verbID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("verb_id = ?", verbID).Delete(&model.UserSessionVerb{})
	if result.Error != nil {
		logger.Error("Error deleting session verbs by verb in DB",
			"error", result.Error,
			"verb_id", verbID.String(),
		)
		return fmt.Errorf("gormSessionVerbRepository.DeleteByVerb: %w", result.Error)
	}
	return nil
}

