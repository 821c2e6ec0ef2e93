// internal/service/word_service.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"polingo/internal/config"
	"polingo/internal/llm"
	"polingo/internal/middleware"
	"polingo/internal/model"
	"polingo/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordService インターフェース
type WordService interface {
	GetInitialWords(ctx context.Context, count int) ([]*model.Word, error)
	CheckWord(ctx context.Context, text string) (*model.WordCheckResponse, error)
	CheckWordsBulk(ctx context.Context, text string) (*model.WordCheckBulkResponse, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
}

type wordService struct {
	db              *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo        repository.WordRepository
	optionRepo      repository.WordOptionRepository
	sessionWordRepo repository.SessionWordRepository
	practiceRepo    repository.PracticeRepository
	llmClient       llm.Client
	cfg             *config.Config
}

func NewWordService(
	db *gorm.DB,
	wordRepo repository.WordRepository,
	optionRepo repository.WordOptionRepository,
	sessionWordRepo repository.SessionWordRepository,
	practiceRepo repository.PracticeRepository,
	llmClient llm.Client,
	cfg *config.Config,
) WordService {
	return &wordService{
		db:              db,
		wordRepo:        wordRepo,
		optionRepo:      optionRepo,
		sessionWordRepo: sessionWordRepo,
		practiceRepo:    practiceRepo,
		llmClient:       llmClient,
		cfg:             cfg,
	}
}

func (s *wordService) GetInitialWords(ctx context.Context, count int) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	if count <= 0 {
		count = s.cfg.App.InitialWordsLimit
	}

	words, err := s.wordRepo.FindInitial(ctx, s.db, count)
	if err != nil {
		logger.Error("Failed to find initial words from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語リストの取得に失敗しました。", "", err)
	}
	return words, nil
}

// CheckWord は入力テキストを単語帳と照合し、未登録なら解決オラクルで
// 三言語に展開して登録します。オラクル呼び出しは永続化の前に行い、
// 失敗した場合は何も保存しません。
func (s *wordService) CheckWord(ctx context.Context, text string) (*model.WordCheckResponse, error) {
	logger := middleware.GetLogger(ctx)

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, model.NewAppError("INVALID_INPUT", "テキストを入力してください。", "text", model.ErrInvalidInput)
	}

	word, lang, err := s.wordRepo.FindByNormalizedText(ctx, s.db, trimmed)
	if err == nil {
		return &model.WordCheckResponse{
			Found:        true,
			Word:         word,
			MatchedField: &lang,
			Created:      false,
			Source:       model.WordSourceDatabase,
		}, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to look up word by text", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の検索に失敗しました。", "", err)
	}

	resolution, err := s.llmClient.ResolveWord(ctx, trimmed)
	if err != nil {
		return nil, wrapOracleError(logger, err, "単語の解決")
	}

	// 入力の綴りをオラクルが補正した場合、補正後の基本形が既に登録済みのことがある
	existing, matched, err := s.wordRepo.FindByNormalizedText(ctx, s.db, resolution.Polish)
	if err == nil {
		return &model.WordCheckResponse{
			Found:        true,
			Word:         existing,
			MatchedField: &matched,
			Created:      false,
			Source:       model.WordSourceDatabase,
		}, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to look up resolved word", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の検索に失敗しました。", "", err)
	}

	word = &model.Word{
		WordID:    uuid.New(),
		Polish:    resolution.Polish,
		English:   resolution.English,
		Ukrainian: resolution.Ukrainian,
	}
	if err := s.wordRepo.Create(ctx, s.db, word); err != nil {
		logger.Error("Failed to create resolved word", "error", err, "polish", resolution.Polish)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の登録に失敗しました。", "", err)
	}

	logger.Info("Word created from oracle resolution",
		"word_id", word.WordID.String(),
		"polish", word.Polish,
		"detected_language", resolution.DetectedLanguage,
	)

	return &model.WordCheckResponse{
		Found:        true,
		Word:         word,
		MatchedField: nil,
		Created:      true,
		Source:       model.WordSourceLLM,
	}, nil
}

// CheckWordsBulk はカンマ・改行区切りの複数フレーズをまとめて照合します。
// 1フレーズの失敗は他のフレーズの処理を止めません。
// added + duplicate + failed は空でないフレーズ数と常に一致します。
func (s *wordService) CheckWordsBulk(ctx context.Context, text string) (*model.WordCheckBulkResponse, error) {
	logger := middleware.GetLogger(ctx)

	if strings.TrimSpace(text) == "" {
		return nil, model.NewAppError("INVALID_INPUT", "テキストを入力してください。", "text", model.ErrInvalidInput)
	}

	phrases := splitPhrases(text)
	resp := &model.WordCheckBulkResponse{
		Results: make([]model.WordCheckResult, 0, len(phrases)),
	}

	// 同一リクエスト内で同じ単語に解決されたフレーズは重複として数える
	seenWords := make(map[uuid.UUID]bool)

	for _, phrase := range phrases {
		checked, err := s.CheckWord(ctx, phrase)
		if err != nil {
			logger.Warn("Bulk check failed for phrase", "phrase", phrase, "error", err)
			resp.Results = append(resp.Results, model.WordCheckResult{
				Text:  phrase,
				Found: false,
			})
			resp.FailedCount++
			continue
		}

		repeated := seenWords[checked.Word.WordID]
		seenWords[checked.Word.WordID] = true

		result := model.WordCheckResult{
			Text:         phrase,
			Found:        checked.Found,
			Word:         checked.Word,
			MatchedField: checked.MatchedField,
			Created:      checked.Created,
			Source:       checked.Source,
		}
		if checked.Created && !repeated {
			resp.AddedCount++
		} else {
			result.Duplicate = true
			resp.DuplicateCount++
		}
		resp.Results = append(resp.Results, result)
	}

	logger.Info("Bulk word check finished",
		"phrases", len(phrases),
		"added", resp.AddedCount,
		"duplicate", resp.DuplicateCount,
		"failed", resp.FailedCount,
	)
	return resp, nil
}

// DeleteWord は単語本体と、その別解・成績記録・セッション紐付けを
// 同一トランザクションで削除します。
func (s *wordService) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("word_id", wordID.String())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.optionRepo.DeleteByWord(ctx, tx, wordID); err != nil {
			return err
		}
		if err := s.practiceRepo.DeleteByWord(ctx, tx, wordID); err != nil {
			return err
		}
		if err := s.sessionWordRepo.DeleteByWord(ctx, tx, wordID); err != nil {
			return err
		}
		return s.wordRepo.Delete(ctx, tx, wordID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
		}
		logger.Error("Failed to delete word in transaction", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の削除に失敗しました。", "", err)
	}

	logger.Info("Word deleted")
	return nil
}

// splitPhrases はカンマまたは改行で区切られた入力を個々のフレーズに分割し、
// 前後の空白を除いた空でないものだけを返します。
func splitPhrases(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
	phrases := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			phrases = append(phrases, trimmed)
		}
	}
	return phrases
}

// wrapOracleError はオラクル呼び出しの失敗を種別ごとの AppError に変換します。
// オラクルの失敗は「不正解」には変換しません。
func wrapOracleError(logger *slog.Logger, err error, operation string) error {
	switch {
	case errors.Is(err, model.ErrOracleUnavailable):
		logger.Error("Oracle unavailable", "operation", operation, "error", err)
		return model.NewAppError("ORACLE_UNAVAILABLE", "判定サービスに接続できませんでした。時間をおいて再度お試しください。", "", err)
	case errors.Is(err, model.ErrOracleIncomplete):
		logger.Error("Oracle returned incomplete response", "operation", operation, "error", err)
		return model.NewAppError("ORACLE_INCOMPLETE", "判定サービスの応答が不完全でした。", "", err)
	default:
		logger.Error("Oracle call failed", "operation", operation, "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", operation+"に失敗しました。", "", err)
	}
}
