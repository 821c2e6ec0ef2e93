// internal/service/practice_service.go
package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"polingo/internal/llm"
	"polingo/internal/middleware"
	"polingo/internal/model"
	"polingo/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PracticeService は回答の採点・記録と出題を提供します。
type PracticeService interface {
	Submit(ctx context.Context, req *model.PracticeSubmission) (*model.StatsResponse, error)
	// Validate は回答を直接一致 → 別解一致 → オラクル判定の順で採点し、
	// 結果を記録して統計とともに返します。
	Validate(ctx context.Context, req *model.PracticeValidationRequest) (*model.PracticeValidationResponse, error)
	Skip(ctx context.Context, req *model.PracticeSkipRequest) (*model.PracticeValidationResponse, error)
	GetQuestion(ctx context.Context, direction string) (*model.TranslationQuestion, error)
	ValidatePronunciation(ctx context.Context, wordID uuid.UUID, audio []byte, filename string) (*model.PronunciationValidationResponse, error)
}

type practiceService struct {
	db              *gorm.DB
	wordRepo        repository.WordRepository
	optionRepo      repository.WordOptionRepository
	practiceRepo    repository.PracticeRepository
	sessionRepo     repository.SessionRepository
	sessionWordRepo repository.SessionWordRepository
	llmClient       llm.Client
}

func NewPracticeService(
	db *gorm.DB,
	wordRepo repository.WordRepository,
	optionRepo repository.WordOptionRepository,
	practiceRepo repository.PracticeRepository,
	sessionRepo repository.SessionRepository,
	sessionWordRepo repository.SessionWordRepository,
	llmClient llm.Client,
) PracticeService {
	return &practiceService{
		db:              db,
		wordRepo:        wordRepo,
		optionRepo:      optionRepo,
		practiceRepo:    practiceRepo,
		sessionRepo:     sessionRepo,
		sessionWordRepo: sessionWordRepo,
		llmClient:       llmClient,
	}
}

// Submit はクライアント側で判定済みの結果をそのまま記録します。
func (s *practiceService) Submit(ctx context.Context, req *model.PracticeSubmission) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx).With("word_id", req.WordID.String())

	if _, err := s.wordRepo.FindByID(ctx, s.db, req.WordID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
		}
		logger.Error("Failed to find word for submission", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}

	record := &model.PracticeRecord{
		RecordID:     uuid.New(),
		WordID:       req.WordID,
		LanguageSet:  req.LanguageSet,
		Direction:    req.Direction,
		WasCorrect:   *req.WasCorrect,
		PracticeDate: model.PracticeDay(time.Now()),
	}

	stats, err := s.recordPractice(ctx, record, nil)
	if err != nil {
		logger.Error("Failed to record practice submission", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "成績の記録に失敗しました。", "", err)
	}
	return stats, nil
}

// Validate は (出題方向, 対象言語) から期待解を決め、
// 期待解 → 登録済み別解の順で正規化一致を試し、どちらにも当たらなければ
// オラクルに意味的な判定を依頼します。オラクルが正解と認めた表現は
// 別解として学習し、次回からはオラクルなしで正解になります。
func (s *practiceService) Validate(ctx context.Context, req *model.PracticeValidationRequest) (*model.PracticeValidationResponse, error) {
	logger := middleware.GetLogger(ctx).With("word_id", req.WordID.String())

	answer := strings.TrimSpace(req.Answer)
	if answer == "" {
		return nil, model.NewAppError("INVALID_INPUT", "回答を入力してください。", "answer", model.ErrInvalidInput)
	}

	word, err := s.wordRepo.FindByID(ctx, s.db, req.WordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
		}
		logger.Error("Failed to find word for validation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}

	target := model.ResolveTargetLanguage(req.Direction, req.LanguageSet)
	expected := word.ValueFor(target)

	options, err := s.optionRepo.FindByWordAndLanguage(ctx, s.db, word.WordID, target)
	if err != nil {
		logger.Error("Failed to find word options", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "別解の取得に失敗しました。", "", err)
	}

	// 期待解を先頭に、別解を登録順に並べた受理集合の最初の一致が判定結果になる
	wasCorrect := false
	matchedVia := model.MatchedViaNone
	if model.Normalize(answer) == model.Normalize(expected) {
		wasCorrect = true
		matchedVia = model.MatchedViaDirect
	} else {
		for _, opt := range options {
			if model.Normalize(answer) == model.Normalize(opt.Value) {
				wasCorrect = true
				matchedVia = model.MatchedViaOption
				break
			}
		}
	}

	// 保存はオラクル判定が済んでから行う。オラクルが失敗した場合は何も記録しない。
	var learned *model.WordOption
	if !wasCorrect {
		judgement, err := s.llmClient.ValidateTranslation(ctx, llm.TranslationInput{
			Polish:         word.Polish,
			Answer:         answer,
			Direction:      req.Direction,
			TargetLanguage: target,
			Expected:       expected,
		})
		if err != nil {
			return nil, wrapOracleError(logger, err, "回答の判定")
		}

		if judgement.IsCorrect {
			wasCorrect = true
			matchedVia = model.MatchedViaLLM

			candidate := strings.TrimSpace(judgement.NormalizedAnswer)
			if candidate == "" {
				candidate = answer
			}
			if shouldLearnOption(candidate, expected, options) {
				learned = &model.WordOption{
					OptionID: uuid.New(),
					WordID:   word.WordID,
					Language: target,
					Value:    candidate,
				}
			}
		}
	}

	record := &model.PracticeRecord{
		RecordID:     uuid.New(),
		WordID:       word.WordID,
		LanguageSet:  req.LanguageSet,
		Direction:    req.Direction,
		WasCorrect:   wasCorrect,
		PracticeDate: model.PracticeDay(time.Now()),
	}

	stats, err := s.recordPractice(ctx, record, learned)
	if err != nil {
		logger.Error("Failed to record practice result", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "成績の記録に失敗しました。", "", err)
	}

	alternatives := make([]string, 0, len(options)+1)
	for _, opt := range options {
		alternatives = append(alternatives, opt.Value)
	}
	if learned != nil {
		alternatives = append(alternatives, learned.Value)
		logger.Info("Learned new alternative from oracle",
			"language", string(target),
			"value", learned.Value,
		)
	}

	return &model.PracticeValidationResponse{
		WasCorrect:    wasCorrect,
		CorrectAnswer: expected,
		MatchedVia:    matchedVia,
		Alternatives:  alternatives,
		Stats:         stats,
	}, nil
}

// Skip は「わからない」を不正解として記録します。オラクルは呼びません。
func (s *practiceService) Skip(ctx context.Context, req *model.PracticeSkipRequest) (*model.PracticeValidationResponse, error) {
	logger := middleware.GetLogger(ctx).With("word_id", req.WordID.String())

	word, err := s.wordRepo.FindByID(ctx, s.db, req.WordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
		}
		logger.Error("Failed to find word for skip", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}

	target := model.ResolveTargetLanguage(req.Direction, req.LanguageSet)
	expected := word.ValueFor(target)

	options, err := s.optionRepo.FindByWordAndLanguage(ctx, s.db, word.WordID, target)
	if err != nil {
		logger.Error("Failed to find word options", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "別解の取得に失敗しました。", "", err)
	}

	record := &model.PracticeRecord{
		RecordID:     uuid.New(),
		WordID:       word.WordID,
		LanguageSet:  req.LanguageSet,
		Direction:    req.Direction,
		WasCorrect:   false,
		PracticeDate: model.PracticeDay(time.Now()),
	}

	stats, err := s.recordPractice(ctx, record, nil)
	if err != nil {
		logger.Error("Failed to record skipped practice", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "成績の記録に失敗しました。", "", err)
	}

	alternatives := make([]string, 0, len(options))
	for _, opt := range options {
		alternatives = append(alternatives, opt.Value)
	}

	return &model.PracticeValidationResponse{
		WasCorrect:    false,
		CorrectAnswer: expected,
		MatchedVia:    model.MatchedViaNone,
		Alternatives:  alternatives,
		Stats:         stats,
	}, nil
}

// GetQuestion はセッションの有効な単語から翻訳4択問題を生成します。
// 有効な単語が4つ未満の場合は出題できません。
func (s *practiceService) GetQuestion(ctx context.Context, direction string) (*model.TranslationQuestion, error) {
	logger := middleware.GetLogger(ctx)

	switch direction {
	case model.QuestionFromPolish, model.QuestionToPolish:
	case "":
		if rand.Intn(2) == 0 {
			direction = model.QuestionFromPolish
		} else {
			direction = model.QuestionToPolish
		}
	default:
		return nil, model.NewAppError("INVALID_INPUT", "direction に指定できない値が入力されました。", "direction", model.ErrInvalidInput)
	}

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}

	words, err := s.sessionWordRepo.FindWithStats(ctx, s.db, session.SessionID)
	if err != nil {
		logger.Error("Failed to find session words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッション単語の取得に失敗しました。", "", err)
	}

	enabled := make([]*model.WordWithStats, 0, len(words))
	for _, w := range words {
		if w.Enabled {
			enabled = append(enabled, w)
		}
	}
	if len(enabled) < 4 {
		return nil, model.NewAppError("NOT_ENOUGH_WORDS",
			"出題には有効な単語が4つ以上必要です。セッションに単語を追加してください。", "", model.ErrInvalidInput)
	}

	targetLang := session.LanguageSet.WordLanguage()
	pick := enabled[rand.Intn(len(enabled))]

	var prompt, correct string
	if direction == model.QuestionFromPolish {
		prompt = pick.Polish
		correct = pick.ValueFor(targetLang)
	} else {
		prompt = pick.ValueFor(targetLang)
		correct = pick.Polish
	}

	// 誤答の選択肢は他の有効な単語から重複なしで3つ抽出する
	others := make([]*model.WordWithStats, 0, len(enabled)-1)
	for _, w := range enabled {
		if w.ID != pick.ID {
			others = append(others, w)
		}
	}
	rand.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})

	options := []string{correct}
	for _, w := range others[:3] {
		if direction == model.QuestionFromPolish {
			options = append(options, w.ValueFor(targetLang))
		} else {
			options = append(options, w.Polish)
		}
	}
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &model.TranslationQuestion{
		WordID:        pick.ID,
		Polish:        pick.Polish,
		English:       pick.English,
		Ukrainian:     pick.Ukrainian,
		Prompt:        prompt,
		CorrectAnswer: correct,
		Options:       options,
		Direction:     direction,
	}, nil
}

// ValidatePronunciation は音声を文字起こしし、期待する単語と比較して採点します。
// 文字起こしと評価のどちらかが失敗した場合は何も記録しません。
func (s *practiceService) ValidatePronunciation(ctx context.Context, wordID uuid.UUID, audio []byte, filename string) (*model.PronunciationValidationResponse, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID.String())

	if len(audio) == 0 {
		return nil, model.NewAppError("INVALID_INPUT", "音声データが空です。", "audio", model.ErrInvalidInput)
	}

	word, err := s.wordRepo.FindByID(ctx, s.db, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
		}
		logger.Error("Failed to find word for pronunciation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}

	transcribed, err := s.llmClient.Transcribe(ctx, audio, filename)
	if err != nil {
		return nil, wrapOracleError(logger, err, "音声の文字起こし")
	}

	judgement, err := s.llmClient.EvaluatePronunciation(ctx, word.Polish, transcribed)
	if err != nil {
		return nil, wrapOracleError(logger, err, "発音の判定")
	}

	record := &model.PracticeRecord{
		RecordID:     uuid.New(),
		WordID:       word.WordID,
		LanguageSet:  session.LanguageSet,
		Direction:    model.DirectionWriting,
		WasCorrect:   judgement.IsCorrect,
		PracticeDate: model.PracticeDay(time.Now()),
	}

	stats, err := s.recordPractice(ctx, record, nil)
	if err != nil {
		logger.Error("Failed to record pronunciation result", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "成績の記録に失敗しました。", "", err)
	}

	logger.Info("Pronunciation validated",
		"was_correct", judgement.IsCorrect,
		"transcribed", transcribed,
	)

	return &model.PronunciationValidationResponse{
		WasCorrect:      judgement.IsCorrect,
		ExpectedWord:    word.Polish,
		TranscribedText: transcribed,
		Feedback:        judgement.Feedback,
		SimilarityScore: judgement.SimilarityScore,
		Stats:           stats,
	}, nil
}

// recordPractice は成績記録・学習した別解の保存・統計の再集計を
// 同一トランザクションで行います。learned が nil の場合は記録と集計のみです。
func (s *practiceService) recordPractice(ctx context.Context, record *model.PracticeRecord, learned *model.WordOption) (*model.StatsResponse, error) {
	var stats *model.StatsResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if learned != nil {
			if err := s.optionRepo.Create(ctx, tx, learned); err != nil {
				return err
			}
		}
		if err := s.practiceRepo.Create(ctx, tx, record); err != nil {
			return err
		}
		var err error
		stats, err = buildWordStats(ctx, tx, s.practiceRepo, s.wordRepo, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// shouldLearnOption はオラクルが認めた表現を別解として保存すべきか判定します。
// 期待解そのものや、登録済みの別解と正規化一致するものは保存しません。
func shouldLearnOption(candidate, expected string, options []*model.WordOption) bool {
	normalized := model.Normalize(candidate)
	if normalized == "" || normalized == model.Normalize(expected) {
		return false
	}
	for _, opt := range options {
		if normalized == model.Normalize(opt.Value) {
			return false
		}
	}
	return true
}
