//go:generate mockery --name SessionWordRepository --output ./mocks --outpkg mocks --case=underscore
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

// SessionWordRepository はセッションと単語の紐付け（練習対象リスト）を管理します。
type SessionWordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, link *model.UserSessionWord) error
	Find(ctx context.Context, db *gorm.DB, sessionID, wordID uuid.UUID) (*model.UserSessionWord, error)
	// FindWithStats はセッション内の全単語を成績集計付きで返します。
	// 並び順は保証しません。優先度順の整列は Service 層で行います。
	FindWithStats(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.WordWithStats, error)
	SetEnabled(ctx context.Context, tx *gorm.DB, sessionID, wordID uuid.UUID, enabled bool) error
	Delete(ctx context.Context, tx *gorm.DB, sessionID, wordID uuid.UUID) error
	DeleteByWord(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
}

type gormSessionWordRepository struct{}

func NewGormSessionWordRepository() SessionWordRepository {
	return &gormSessionWordRepository{}
}

func (r *gormSessionWordRepository) Create(ctx context.Context, tx *gorm.DB, link *model.UserSessionWord) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(link)
	if result.Error != nil {
		if isDuplicateKey(result.Error) {
			logger.Warn("Duplicate key error on create session word",
				"error", result.Error,
				"word_id", link.WordID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating session word in DB",
			"error", result.Error,
			"word_id", link.WordID.String(),
		)
		return fmt.Errorf("gormSessionWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormSessionWordRepository) Find(ctx context.Context, db *gorm.DB, sessionID, wordID uuid.UUID) (*model.UserSessionWord, error) {
	logger := middleware.GetLogger(ctx)
	var link model.UserSessionWord
	result := db.WithContext(ctx).Where("session_id = ? AND word_id = ?", sessionID, wordID).First(&link)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding session word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormSessionWordRepository.Find: %w", result.Error)
	}
	return &link, nil
}

func (r *gormSessionWordRepository) FindWithStats(ctx context.Context, db *gorm.DB, sessionID uuid.UUID) ([]*model.WordWithStats, error) {
	logger := middleware.GetLogger(ctx)
	var rows []*model.WordWithStats

	// 成績は単語単位の全期間集計。正答率の計算と優先度順の整列は都度 Service 層で行い、
	// キャッシュは持ちません。
	result := db.WithContext(ctx).
		Table("user_session_words AS usw").
		Select(`words.word_id AS id,
			words.polish,
			words.english,
			words.ukrainian,
			usw.enabled,
			usw.added_at,
			COALESCE(pr.total, 0) AS total_attempts,
			COALESCE(pr.correct, 0) AS correct_attempts`).
		Joins("JOIN words ON words.word_id = usw.word_id").
		Joins(`LEFT JOIN (
			SELECT word_id,
				COUNT(*) AS total,
				SUM(CASE WHEN was_correct THEN 1 ELSE 0 END) AS correct
			FROM practice_records
			GROUP BY word_id
		) pr ON pr.word_id = usw.word_id`).
		Where("usw.session_id = ?", sessionID).
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error finding session words with stats in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return nil, fmt.Errorf("gormSessionWordRepository.FindWithStats: %w", result.Error)
	}
	return rows, nil
}

func (r *gormSessionWordRepository) SetEnabled(ctx context.Context, tx *gorm.DB, sessionID, wordID uuid.UUID, enabled bool) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.UserSessionWord{}).
		Where("session_id = ? AND word_id = ?", sessionID, wordID).
		Update("enabled", enabled)
	if result.Error != nil {
		logger.Error("Error updating session word enabled flag in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormSessionWordRepository.SetEnabled: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSessionWordRepository) Delete(ctx context.Context, tx *gorm.DB, sessionID, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Where("session_id = ? AND word_id = ?", sessionID, wordID).
		Delete(&model.UserSessionWord{})
	if result.Error != nil {
		logger.Error("Error deleting session word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormSessionWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormSessionWordRepository) DeleteByWord(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.UserSessionWord{})
	if result.Error != nil {
		logger.Error("Error deleting session words by word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormSessionWordRepository.DeleteByWord: %w", result.Error)
	}
	return nil
}
