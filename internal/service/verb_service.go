// internal/service/verb_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"polingo/internal/llm"
	"polingo/internal/middleware"
	"polingo/internal/model"
	"polingo/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerbService は動詞の登録・セッション管理と語尾クイズを提供します。
type VerbService interface {
	AddVerb(ctx context.Context, req *model.VerbAddRequest) (*model.VerbAddResponse, error)
	GetSession(ctx context.Context) (*model.VerbSessionState, error)
	AddToSession(ctx context.Context, verbID uuid.UUID) (*model.VerbSessionState, error)
	ToggleVerb(ctx context.Context, verbID uuid.UUID, enabled bool) (*model.VerbSessionState, error)
	RemoveFromSession(ctx context.Context, verbID uuid.UUID) (*model.VerbSessionState, error)
	DeleteVerb(ctx context.Context, verbID uuid.UUID) error
	GetEndingsQuestion(ctx context.Context) (*model.EndingsQuestion, error)
	ValidateEndings(ctx context.Context, req *model.EndingsValidationRequest) (*model.EndingsValidationResponse, error)
}

type verbService struct {
	db               *gorm.DB
	verbRepo         repository.VerbRepository
	conjugationRepo  repository.VerbConjugationRepository
	sessionRepo      repository.SessionRepository
	sessionVerbRepo  repository.SessionVerbRepository
	verbPracticeRepo repository.VerbPracticeRepository
	llmClient        llm.Client
}

func NewVerbService(
	db *gorm.DB,
	verbRepo repository.VerbRepository,
	conjugationRepo repository.VerbConjugationRepository,
	sessionRepo repository.SessionRepository,
	sessionVerbRepo repository.SessionVerbRepository,
	verbPracticeRepo repository.VerbPracticeRepository,
	llmClient llm.Client,
) VerbService {
	return &verbService{
		db:               db,
		verbRepo:         verbRepo,
		conjugationRepo:  conjugationRepo,
		sessionRepo:      sessionRepo,
		sessionVerbRepo:  sessionVerbRepo,
		verbPracticeRepo: verbPracticeRepo,
		llmClient:        llmClient,
	}
}

// AddVerb は英語またはウクライナ語の動詞からオラクルで現在形の活用一式を生成し、
// 原形・訳語・活用形をまとめて登録します。オラクルが動詞を特定できなかった場合は
// エラーではなく success=false の応答を返します。
func (s *verbService) AddVerb(ctx context.Context, req *model.VerbAddRequest) (*model.VerbAddResponse, error) {
	logger := middleware.GetLogger(ctx)

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, model.NewAppError("INVALID_INPUT", "テキストを入力してください。", "text", model.ErrInvalidInput)
	}

	generated, err := s.llmClient.GenerateConjugations(ctx, text, model.LanguageSet(req.SourceLanguage))
	if err != nil {
		return nil, wrapOracleError(logger, err, "活用形の生成")
	}

	if generated.Infinitive == "" {
		logger.Warn("Oracle could not identify a verb", "text", text)
		return &model.VerbAddResponse{
			Success:   false,
			Message:   "Could not generate conjugations. Please check the input.",
			Duplicate: false,
		}, nil
	}

	existing, err := s.verbRepo.FindByInfinitive(ctx, s.db, generated.Infinitive)
	if err == nil {
		view, err := s.buildVerbView(ctx, s.db, existing)
		if err != nil {
			logger.Error("Failed to build verb view", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "動詞情報の取得に失敗しました。", "", err)
		}
		return &model.VerbAddResponse{
			Success:   true,
			Verb:      view,
			Message:   fmt.Sprintf("Verb '%s' already exists.", existing.Infinitive),
			Duplicate: true,
		}, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to look up verb by infinitive", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "動詞の検索に失敗しました。", "", err)
	}

	verb := &model.Verb{
		VerbID:     uuid.New(),
		Infinitive: generated.Infinitive,
		English:    generated.English,
		Ukrainian:  generated.Ukrainian,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.verbRepo.Create(ctx, tx, verb); err != nil {
			return err
		}
		// 既知の人称スロットのみ、定義順で保存する
		for _, pronoun := range model.Pronouns {
			form, ok := generated.Conjugations[pronoun]
			if !ok || strings.TrimSpace(form) == "" {
				continue
			}
			conjugation := &model.VerbConjugation{
				ConjugationID:  uuid.New(),
				VerbID:         verb.VerbID,
				Pronoun:        pronoun,
				ConjugatedForm: strings.TrimSpace(form),
			}
			if err := s.conjugationRepo.Create(ctx, tx, conjugation); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to create verb with conjugations", "error", err, "infinitive", verb.Infinitive)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "動詞の登録に失敗しました。", "", err)
	}

	logger.Info("Verb created with conjugations",
		"verb_id", verb.VerbID.String(),
		"infinitive", verb.Infinitive,
		"conjugations", len(generated.Conjugations),
	)

	view, err := s.buildVerbView(ctx, s.db, verb)
	if err != nil {
		logger.Error("Failed to build verb view", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "動詞情報の取得に失敗しました。", "", err)
	}
	return &model.VerbAddResponse{
		Success:   true,
		Verb:      view,
		Message:   fmt.Sprintf("Added verb '%s' with all conjugations.", verb.Infinitive),
		Duplicate: false,
	}, nil
}

func (s *verbService) GetSession(ctx context.Context) (*model.VerbSessionState, error) {
	logger := middleware.GetLogger(ctx)

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}
	return s.buildSessionState(ctx, session)
}

func (s *verbService) AddToSession(ctx context.Context, verbID uuid.UUID) (*model.VerbSessionState, error) {
	logger := middleware.GetLogger(ctx).With("verb_id", verbID.String())

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}

	if _, err := s.verbRepo.FindByID(ctx, s.db, verbID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("VERB_NOT_FOUND", "指定された動詞が見つかりません。", "verb_id", model.ErrNotFound)
		}
		logger.Error("Failed to find verb", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "動詞の取得に失敗しました。", "", err)
	}

	link := &model.UserSessionVerb{
		ID:        uuid.New(),
		SessionID: session.SessionID,
		VerbID:    verbID,
		Enabled:   true,
		AddedAt:   time.Now(),
	}
	if err := s.sessionVerbRepo.Create(ctx, s.db, link); err != nil {
		// 既にセッションに入っている場合は追加済みとして扱う
		if !errors.Is(err, model.ErrConflict) {
			logger.Error("Failed to add verb to session", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションへの動詞追加に失敗しました。", "", err)
		}
	}

	return s.buildSessionState(ctx, session)
}

func (s *verbService) ToggleVerb(ctx context.Context, verbID uuid.UUID, enabled bool) (*model.VerbSessionState, error) {
	logger := middleware.GetLogger(ctx).With("verb_id", verbID.String())

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}

	if err := s.sessionVerbRepo.SetEnabled(ctx, s.db, session.SessionID, verbID, enabled); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("VERB_NOT_IN_SESSION", "指定された動詞はセッションにありません。", "verb_id", model.ErrNotFound)
		}
		logger.Error("Failed to toggle session verb", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "出題対象フラグの更新に失敗しました。", "", err)
	}

	return s.buildSessionState(ctx, session)
}

func (s *verbService) RemoveFromSession(ctx context.Context, verbID uuid.UUID) (*model.VerbSessionState, error) {
	logger := middleware.GetLogger(ctx).With("verb_id", verbID.String())

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}

	if err := s.sessionVerbRepo.Delete(ctx, s.db, session.SessionID, verbID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("VERB_NOT_IN_SESSION", "指定された動詞はセッションにありません。", "verb_id", model.ErrNotFound)
		}
		logger.Error("Failed to remove verb from session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションからの動詞削除に失敗しました。", "", err)
	}

	return s.buildSessionState(ctx, session)
}

// DeleteVerb は動詞本体と、その活用形・成績記録・セッション紐付けを
// 同一トランザクションで削除します。
func (s *verbService) DeleteVerb(ctx context.Context, verbID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("verb_id", verbID.String())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.conjugationRepo.DeleteByVerb(ctx, tx, verbID); err != nil {
			return err
		}
		if err := s.verbPracticeRepo.DeleteByVerb(ctx, tx, verbID); err != nil {
			return err
		}
		if err := s.sessionVerbRepo.DeleteByVerb(ctx, tx, verbID); err != nil {
			return err
		}
		return s.verbRepo.Delete(ctx, tx, verbID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("VERB_NOT_FOUND", "指定された動詞が見つかりません。", "verb_id", model.ErrNotFound)
		}
		logger.Error("Failed to delete verb in transaction", "error", err)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "動詞の削除に失敗しました。", "", err)
	}

	logger.Info("Verb deleted")
	return nil
}

// GetEndingsQuestion はセッションの有効な動詞からランダムに1つ選び、
// その活用形1つを問う4択問題を生成します。誤答の選択肢は同じ動詞の他の
// 活用形から抽出し、足りない分は疑問符付きの変形で埋めます。
func (s *verbService) GetEndingsQuestion(ctx context.Context) (*model.EndingsQuestion, error) {
	logger := middleware.GetLogger(ctx)

	session, err := s.sessionRepo.GetOrCreate(ctx, s.db)
	if err != nil {
		logger.Error("Failed to get or create session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッションの取得に失敗しました。", "", err)
	}

	verbs, err := s.sessionVerbRepo.FindWithStats(ctx, s.db, session.SessionID)
	if err != nil {
		logger.Error("Failed to find session verbs", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッション動詞の取得に失敗しました。", "", err)
	}

	enabled := make([]*model.VerbWithConjugations, 0, len(verbs))
	for _, v := range verbs {
		if v.Enabled {
			enabled = append(enabled, v)
		}
	}
	if len(enabled) == 0 {
		return nil, model.NewAppError("NO_VERBS_IN_SESSION",
			"セッションに出題できる動詞がありません。動詞を追加してください。", "", model.ErrInvalidInput)
	}

	pick := enabled[rand.Intn(len(enabled))]

	conjugations, err := s.conjugationRepo.FindByVerb(ctx, s.db, pick.ID)
	if err != nil {
		logger.Error("Failed to find verb conjugations", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "活用形の取得に失敗しました。", "", err)
	}
	if len(conjugations) == 0 {
		return nil, model.NewAppError("VERB_HAS_NO_CONJUGATIONS",
			"この動詞には活用形が登録されていません。", "", model.ErrInvalidInput)
	}

	target := conjugations[rand.Intn(len(conjugations))]

	others := make([]string, 0, len(conjugations)-1)
	for _, c := range conjugations {
		if c.ConjugationID != target.ConjugationID {
			others = append(others, c.ConjugatedForm)
		}
	}
	rand.Shuffle(len(others), func(i, j int) {
		others[i], others[j] = others[j], others[i]
	})
	if len(others) > 3 {
		others = others[:3]
	}
	// 活用形が足りない場合は正解の変形で4択まで埋める
	for len(others) < 3 {
		others = append(others, target.ConjugatedForm+"?")
	}

	options := append([]string{target.ConjugatedForm}, others...)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &model.EndingsQuestion{
		VerbID:        pick.ID,
		Infinitive:    pick.Infinitive,
		English:       pick.English,
		Ukrainian:     pick.Ukrainian,
		Pronoun:       target.Pronoun,
		CorrectAnswer: target.ConjugatedForm,
		Options:       options,
	}, nil
}

// ValidateEndings は語尾クイズの回答を正規化一致のみで採点します。
// オラクルは使いません。
func (s *verbService) ValidateEndings(ctx context.Context, req *model.EndingsValidationRequest) (*model.EndingsValidationResponse, error) {
	logger := middleware.GetLogger(ctx).With("verb_id", req.VerbID.String())

	answer := strings.TrimSpace(req.Answer)
	if answer == "" {
		return nil, model.NewAppError("INVALID_INPUT", "回答を入力してください。", "answer", model.ErrInvalidInput)
	}

	pronoun, ok := model.ParsePronoun(req.Pronoun)
	if !ok {
		return nil, model.NewAppError("INVALID_INPUT", "人称代名詞に指定できない値が入力されました。", "pronoun", model.ErrInvalidInput)
	}

	verb, err := s.verbRepo.FindByID(ctx, s.db, req.VerbID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("VERB_NOT_FOUND", "指定された動詞が見つかりません。", "verb_id", model.ErrNotFound)
		}
		logger.Error("Failed to find verb for validation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "動詞の取得に失敗しました。", "", err)
	}

	conjugation, err := s.conjugationRepo.FindByVerbAndPronoun(ctx, s.db, verb.VerbID, pronoun)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("CONJUGATION_NOT_FOUND", "指定された人称の活用形が見つかりません。", "pronoun", model.ErrNotFound)
		}
		logger.Error("Failed to find conjugation", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "活用形の取得に失敗しました。", "", err)
	}

	wasCorrect := model.Normalize(answer) == model.Normalize(conjugation.ConjugatedForm)

	record := &model.VerbPracticeRecord{
		RecordID:     uuid.New(),
		VerbID:       verb.VerbID,
		Pronoun:      pronoun,
		WasCorrect:   wasCorrect,
		PracticeDate: model.PracticeDay(time.Now()),
	}

	var stats *model.EndingsStatsResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.verbPracticeRepo.Create(ctx, tx, record); err != nil {
			return err
		}
		var err error
		stats, err = buildEndingsStats(ctx, tx, s.verbPracticeRepo, s.verbRepo, time.Now())
		return err
	})
	if err != nil {
		logger.Error("Failed to record endings practice", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "成績の記録に失敗しました。", "", err)
	}

	return &model.EndingsValidationResponse{
		WasCorrect:    wasCorrect,
		CorrectAnswer: conjugation.ConjugatedForm,
		Stats:         stats,
	}, nil
}

// buildSessionState はセッション内の動詞を活用形・成績付きで取得し、
// 出題優先度順に整列します。
func (s *verbService) buildSessionState(ctx context.Context, session *model.UserSession) (*model.VerbSessionState, error) {
	logger := middleware.GetLogger(ctx)

	verbs, err := s.sessionVerbRepo.FindWithStats(ctx, s.db, session.SessionID)
	if err != nil {
		logger.Error("Failed to find session verbs with stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "セッション動詞の取得に失敗しました。", "", err)
	}

	verbIDs := make([]uuid.UUID, 0, len(verbs))
	for _, v := range verbs {
		verbIDs = append(verbIDs, v.ID)
	}
	conjugations, err := s.conjugationRepo.FindByVerbIDs(ctx, s.db, verbIDs)
	if err != nil {
		logger.Error("Failed to find conjugations for session verbs", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "活用形の取得に失敗しました。", "", err)
	}
	grouped := make(map[uuid.UUID][]*model.VerbConjugation, len(verbs))
	for _, c := range conjugations {
		grouped[c.VerbID] = append(grouped[c.VerbID], c)
	}

	for _, v := range verbs {
		v.Conjugations = orderedConjugationReads(grouped[v.ID])
		v.ErrorRate = errorRatePercent(v.TotalAttempts, v.CorrectAttempts)
	}
	sort.SliceStable(verbs, func(i, j int) bool {
		return priorityLess(
			verbs[i].TotalAttempts, verbs[i].CorrectAttempts, verbs[i].AddedAt,
			verbs[j].TotalAttempts, verbs[j].CorrectAttempts, verbs[j].AddedAt,
		)
	})

	return &model.VerbSessionState{Verbs: verbs}, nil
}

// buildVerbView は単一動詞の表示用ビュー（活用形 + 全期間成績）を組み立てます。
func (s *verbService) buildVerbView(ctx context.Context, db *gorm.DB, verb *model.Verb) (*model.VerbWithConjugations, error) {
	conjugations, err := s.conjugationRepo.FindByVerb(ctx, db, verb.VerbID)
	if err != nil {
		return nil, err
	}
	total, correct, err := s.verbPracticeRepo.CountByVerb(ctx, db, verb.VerbID)
	if err != nil {
		return nil, err
	}

	return &model.VerbWithConjugations{
		ID:              verb.VerbID,
		Infinitive:      verb.Infinitive,
		English:         verb.English,
		Ukrainian:       verb.Ukrainian,
		Conjugations:    orderedConjugationReads(conjugations),
		TotalAttempts:   total,
		CorrectAttempts: correct,
		ErrorRate:       errorRatePercent(total, correct),
		Enabled:         true,
	}, nil
}

// orderedConjugationReads は活用形を人称スロットの定義順に並べた表示用DTOに変換します。
func orderedConjugationReads(conjugations []*model.VerbConjugation) []model.VerbConjugationRead {
	byPronoun := make(map[model.Pronoun]string, len(conjugations))
	for _, c := range conjugations {
		byPronoun[c.Pronoun] = c.ConjugatedForm
	}

	reads := make([]model.VerbConjugationRead, 0, len(conjugations))
	for _, pronoun := range model.Pronouns {
		if form, ok := byPronoun[pronoun]; ok {
			reads = append(reads, model.VerbConjugationRead{
				Pronoun:        pronoun,
				ConjugatedForm: form,
			})
		}
	}
	return reads
}
