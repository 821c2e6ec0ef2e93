// internal/service/session_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"polingo/internal/middleware"
	"polingo/internal/model"
	"polingo/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionService は学習セッション（練習対象の単語リストと対象言語）を管理します。
type SessionService interface {
	GetState(ctx context.Context) (*model.SessionState, error)
	UpdateLanguage(ctx context.Context, set model.LanguageSet) (*model.SessionState, error)
	AddWord(ctx context.Context, wordID uuid.UUID) (*model.SessionState, error)
	AddWordsBulk(ctx context.Context, wordIDs []uuid.UUID) (*model.SessionState, error)
	ToggleWord(ctx context.Context, wordID uuid.UUID, enabled bool) (*model.SessionState, error)
	RemoveWord(ctx context.Context, wordID uuid.UUID) (*model.SessionState, error)
}

type sessionService struct {
	db              *gorm.DB
	sessionRepo     repository.SessionRepository
	sessionWordRepo repository.SessionWordRepository
	wordRepo        repository.WordRepository
}

func NewSessionService(
	db *gorm.DB,
	sessionRepo repository.SessionRepository,
	sessionWordRepo repository.SessionWordRepository,
	wordRepo repository.WordRepository,
) SessionService {
	return &sessionService{
		db:              db,
		sessionRepo:     sessionRepo,
		sessionWordRepo: sessionWordRepo,
		wordRepo:        wordRepo,
	}
}

func (s *sessionService) GetState(ctx context.Context) (*model.SessionState, error) {
	logger := middleware.GetLogger(ctx)

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}
	return s.buildState(ctx, session)
}

func (s *sessionService) UpdateLanguage(ctx context.Context, set model.LanguageSet) (*model.SessionState, error) {
	logger := middleware.GetLogger(ctx)

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}

	if err := s.sessionRepo.UpdateLanguageSet(ctx, s.db, session.SessionID, set); err != nil {
		logger.Error("Failed to update session language set", "error", err, "language_set", string(set))
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "対象言語の更新に失敗しました。", "", err)
	}
	session.LanguageSet = set

	logger.Info("Session language set updated", "language_set", string(set))
	return s.buildState(ctx, session)
}

func (s *sessionService) AddWord(ctx context.Context, wordID uuid.UUID) (*model.SessionState, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID.String())

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}

	if _, err := s.wordRepo.FindByID(ctx, s.db, wordID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
		}
		logger.Error("Failed to find word", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}

	link := &model.UserSessionWord{
		ID:        uuid.New(),
		SessionID: session.SessionID,
		WordID:    wordID,
		Enabled:   true,
		AddedAt:   time.Now(),
	}
	if err := s.sessionWordRepo.Create(ctx, s.db, link); err != nil {
		// 既にセッションに入っている場合は追加済みとして扱う
		if !errors.Is(err, model.ErrConflict) {
			logger.Error("Failed to add word to session", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションへの単語追加に失敗しました。", "", err)
		}
	}

	return s.buildState(ctx, session)
}

// AddWordsBulk は複数の単語をまとめてセッションに追加します。
// 存在しない単語IDが1つでも含まれる場合、リクエスト全体を失敗させて何も追加しません。
func (s *sessionService) AddWordsBulk(ctx context.Context, wordIDs []uuid.UUID) (*model.SessionState, error) {
	logger := middleware.GetLogger(ctx)

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, wordID := range wordIDs {
			if _, err := s.wordRepo.FindByID(ctx, tx, wordID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("WORD_NOT_FOUND",
						fmt.Sprintf("単語 %s が見つかりません。", wordID), "word_ids", model.ErrNotFound)
				}
				return err
			}

			_, err := s.sessionWordRepo.Find(ctx, tx, session.SessionID, wordID)
			if err == nil {
				continue // 追加済み
			}
			if !errors.Is(err, model.ErrNotFound) {
				return err
			}

			link := &model.UserSessionWord{
				ID:        uuid.New(),
				SessionID: session.SessionID,
				WordID:    wordID,
				Enabled:   true,
				AddedAt:   time.Now(),
			}
			if err := s.sessionWordRepo.Create(ctx, tx, link); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Failed to add words to session in transaction", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションへの単語一括追加に失敗しました。", "", err)
	}

	logger.Info("Words added to session", "count", len(wordIDs))
	return s.buildState(ctx, session)
}

func (s *sessionService) ToggleWord(ctx context.Context, wordID uuid.UUID, enabled bool) (*model.SessionState, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID.String())

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}

	if err := s.sessionWordRepo.SetEnabled(ctx, s.db, session.SessionID, wordID, enabled); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_IN_SESSION", "指定された単語はセッションにありません。", "word_id", model.ErrNotFound)
		}
		logger.Error("Failed to toggle session word", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "出題対象フラグの更新に失敗しました。", "", err)
	}

	return s.buildState(ctx, session)
}

func (s *sessionService) RemoveWord(ctx context.Context, wordID uuid.UUID) (*model.SessionState, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID.String())

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}

	if err := s.sessionWordRepo.Delete(ctx, s.db, session.SessionID, wordID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_IN_SESSION", "指定された単語はセッションにありません。", "word_id", model.ErrNotFound)
		}
		logger.Error("Failed to remove word from session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションからの単語削除に失敗しました。", "", err)
	}

	logger.Info("Word removed from session")
	return s.buildState(ctx, session)
}

// buildState はセッション内の単語を成績付きで取得し、出題優先度順に整列します。
// 並び順はキャッシュせず、読み出しのたびに計算し直します。
func (s *sessionService) buildState(ctx context.Context, session *model.UserSession) (*model.SessionState, error) {
	logger := middleware.GetLogger(ctx)

	words, err := s.sessionWordRepo.FindWithStats(ctx, s.db, session.SessionID)
	if err != nil {
		logger.Error("Failed to find session words with stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッション単語の取得に失敗しました。", "", err)
	}

	for _, w := range words {
		w.ErrorRate = errorRatePercent(w.TotalAttempts, w.CorrectAttempts)
	}
	sort.SliceStable(words, func(i, j int) bool {
		return priorityLess(
			words[i].TotalAttempts, words[i].CorrectAttempts, words[i].AddedAt,
			words[j].TotalAttempts, words[j].CorrectAttempts, words[j].AddedAt,
		)
	})

	return &model.SessionState{
		LanguageSet: session.LanguageSet,
		Words:       words,
	}, nil
}
