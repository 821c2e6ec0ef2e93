//go:generate mockery --name SessionRepository --output ./mocks --outpkg mocks --case=underscore
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

// SessionRepository は単一利用者の学習セッションを管理します。
type SessionRepository interface {
	// GetOrCreate は既存のセッションを返し、なければデフォルト設定で作成します。
	GetOrCreate(ctx context.Context, db *gorm.DB) (*model.UserSession, error)
	UpdateLanguageSet(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, set model.LanguageSet) error
}

type gormSessionRepository struct{}

func NewGormSessionRepository() SessionRepository {
	return &gormSessionRepository{}
}

func (r *gormSessionRepository) GetOrCreate(ctx context.Context, db *gorm.DB) (*model.UserSession, error) {
	logger := middleware.GetLogger(ctx)
	var session model.UserSession
	result := db.WithContext(ctx).Order("updated_at ASC").First(&session)
	if result.Error == nil {
		return &session, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		logger.Error("Error finding user session in DB", "error", result.Error)
		return nil, fmt.Errorf("gormSessionRepository.GetOrCreate: %w", result.Error)
	}

	session = model.UserSession{
		SessionID:   uuid.New(),
		LanguageSet: model.LanguageSetEnglish,
	}
	if err := db.WithContext(ctx).Create(&session).Error; err != nil {
		logger.Error("Error creating user session in DB", "error", err)
		return nil, fmt.Errorf("gormSessionRepository.GetOrCreate: %w", err)
	}
	logger.Info("Created new user session", "session_id", session.SessionID.String())
	return &session, nil
}

func (r *gormSessionRepository) UpdateLanguageSet(ctx context.Context, tx *gorm.DB, sessionID uuid.UUID, set model.LanguageSet) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).
		Model(&model.UserSession{}).
		Where("session_id = ?", sessionID).
		Update("language_set", set)
	if result.Error != nil {
		logger.Error("Error updating session language set in DB",
			"error", result.Error,
			"session_id", sessionID.String(),
		)
		return fmt.Errorf("gormSessionRepository.UpdateLanguageSet: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}
