// internal/service/verb_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"polingo/internal/llm"
	llm_mocks "polingo/internal/llm/mocks"
	"polingo/internal/model"
	"polingo/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBVerb() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// expectEndingsStatsRecalc は語尾クイズ記録トランザクション内の統計再集計を登録します。
func expectEndingsStatsRecalc(ctx context.Context, verbPracticeRepo *mocks.VerbPracticeRepository, verbRepo *mocks.VerbRepository) {
	today := model.PracticeDay(time.Now())
	yesterday := model.PracticeDay(time.Now().AddDate(0, 0, -1))
	verbPracticeRepo.On("CountByDate", ctx, mock.AnythingOfType("*gorm.DB"), today).
		Return(int64(1), int64(1), nil).Once()
	verbPracticeRepo.On("CountByDate", ctx, mock.AnythingOfType("*gorm.DB"), yesterday).
		Return(int64(0), int64(0), nil).Once()
	verbPracticeRepo.On("CountOverall", ctx, mock.AnythingOfType("*gorm.DB")).
		Return(int64(1), int64(1), nil).Once()
	verbRepo.On("Count", ctx, mock.AnythingOfType("*gorm.DB")).
		Return(int64(3), nil).Once()
}

// --- Test AddVerb ---
func Test_verbService_AddVerb(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVerb()
	mockVerbRepo := new(mocks.VerbRepository)
	mockConjugationRepo := new(mocks.VerbConjugationRepository)
	mockSessionRepo := new(mocks.SessionRepository)
	mockSessionVerbRepo := new(mocks.SessionVerbRepository)
	mockVerbPracticeRepo := new(mocks.VerbPracticeRepository)
	mockLLM := new(llm_mocks.Client)
	verbService := NewVerbService(db, mockVerbRepo, mockConjugationRepo, mockSessionRepo, mockSessionVerbRepo, mockVerbPracticeRepo, mockLLM)

	resetMocks := func() {
		mockVerbRepo.Mock = mock.Mock{}
		mockConjugationRepo.Mock = mock.Mock{}
		mockVerbPracticeRepo.Mock = mock.Mock{}
		mockLLM.Mock = mock.Mock{}
	}

	t.Run("正常系: 生成された活用形を人称スロットの定義順に登録する", func(t *testing.T) {
		resetMocks()

		mockLLM.On("GenerateConjugations", ctx, "to speak", model.LanguageSetEnglish).
			Return(&llm.ConjugationResult{
				Infinitive: "mówić",
				English:    "to speak",
				Ukrainian:  "говорити",
				Conjugations: map[model.Pronoun]string{
					model.PronounJa:       "mówię",
					model.PronounTy:       "mówisz",
					model.PronounOnOnaOno: "mówi",
					model.PronounMy:       " mówimy ",
					model.PronounWy:       "   ",
				},
			}, nil).Once()
		mockVerbRepo.On("FindByInfinitive", ctx, db, "mówić").
			Return(nil, model.ErrNotFound).Once()
		mockVerbRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Verb")).
			Run(func(args mock.Arguments) {
				verb := args.Get(2).(*model.Verb)
				assert.Equal(t, "mówić", verb.Infinitive)
				assert.Equal(t, "to speak", verb.English)
				assert.Equal(t, "говорити", verb.Ukrainian)
			}).Return(nil).Once()

		var createdPronouns []model.Pronoun
		var createdForms []string
		mockConjugationRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.VerbConjugation")).
			Run(func(args mock.Arguments) {
				c := args.Get(2).(*model.VerbConjugation)
				createdPronouns = append(createdPronouns, c.Pronoun)
				createdForms = append(createdForms, c.ConjugatedForm)
			}).Return(nil).Times(4)

		savedConjugations := []*model.VerbConjugation{
			{ConjugationID: uuid.New(), Pronoun: model.PronounMy, ConjugatedForm: "mówimy"},
			{ConjugationID: uuid.New(), Pronoun: model.PronounJa, ConjugatedForm: "mówię"},
			{ConjugationID: uuid.New(), Pronoun: model.PronounOnOnaOno, ConjugatedForm: "mówi"},
			{ConjugationID: uuid.New(), Pronoun: model.PronounTy, ConjugatedForm: "mówisz"},
		}
		mockConjugationRepo.On("FindByVerb", ctx, db, mock.AnythingOfType("uuid.UUID")).
			Return(savedConjugations, nil).Once()
		mockVerbPracticeRepo.On("CountByVerb", ctx, db, mock.AnythingOfType("uuid.UUID")).
			Return(int64(0), int64(0), nil).Once()

		resp, err := verbService.AddVerb(ctx, &model.VerbAddRequest{Text: " to speak ", SourceLanguage: "english"})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.True(t, resp.Success)
		assert.False(t, resp.Duplicate)
		assert.Equal(t, "Added verb 'mówić' with all conjugations.", resp.Message)

		// 空白のみの wy と未生成の oni_one は登録されない
		assert.Equal(t, []model.Pronoun{model.PronounJa, model.PronounTy, model.PronounOnOnaOno, model.PronounMy}, createdPronouns)
		assert.Equal(t, []string{"mówię", "mówisz", "mówi", "mówimy"}, createdForms, "活用形は前後の空白を除いて保存されること")

		require.NotNil(t, resp.Verb)
		assert.Equal(t, "mówić", resp.Verb.Infinitive)
		assert.True(t, resp.Verb.Enabled)
		assert.Equal(t, []model.VerbConjugationRead{
			{Pronoun: model.PronounJa, ConjugatedForm: "mówię"},
			{Pronoun: model.PronounTy, ConjugatedForm: "mówisz"},
			{Pronoun: model.PronounOnOnaOno, ConjugatedForm: "mówi"},
			{Pronoun: model.PronounMy, ConjugatedForm: "mówimy"},
		}, resp.Verb.Conjugations, "活用形は人称スロットの定義順に並ぶこと")

		mockLLM.AssertExpectations(t)
		mockVerbRepo.AssertExpectations(t)
		mockConjugationRepo.AssertExpectations(t)
	})

	t.Run("正常系: 登録済みの動詞は重複として返す", func(t *testing.T) {
		resetMocks()

		existing := &model.Verb{VerbID: uuid.New(), Infinitive: "mówić", English: "to speak", Ukrainian: "говорити"}
		mockLLM.On("GenerateConjugations", ctx, "to speak", model.LanguageSetEnglish).
			Return(&llm.ConjugationResult{Infinitive: "mówić", English: "to speak", Ukrainian: "говорити"}, nil).Once()
		mockVerbRepo.On("FindByInfinitive", ctx, db, "mówić").Return(existing, nil).Once()
		mockConjugationRepo.On("FindByVerb", ctx, db, existing.VerbID).
			Return([]*model.VerbConjugation{
				{ConjugationID: uuid.New(), VerbID: existing.VerbID, Pronoun: model.PronounJa, ConjugatedForm: "mówię"},
			}, nil).Once()
		mockVerbPracticeRepo.On("CountByVerb", ctx, db, existing.VerbID).
			Return(int64(4), int64(3), nil).Once()

		resp, err := verbService.AddVerb(ctx, &model.VerbAddRequest{Text: "to speak", SourceLanguage: "english"})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.True(t, resp.Success)
		assert.True(t, resp.Duplicate)
		assert.Equal(t, "Verb 'mówić' already exists.", resp.Message)
		require.NotNil(t, resp.Verb)
		assert.Equal(t, 25.0, resp.Verb.ErrorRate)
		mockVerbRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("正常系: オラクルが動詞を特定できない場合はエラーにしない", func(t *testing.T) {
		resetMocks()

		mockLLM.On("GenerateConjugations", ctx, "xyzzy", model.LanguageSetEnglish).
			Return(&llm.ConjugationResult{Infinitive: ""}, nil).Once()

		resp, err := verbService.AddVerb(ctx, &model.VerbAddRequest{Text: "xyzzy", SourceLanguage: "english"})

		require.NoError(t, err)
		require.NotNil(t, resp)
		assert.False(t, resp.Success)
		assert.Equal(t, "Could not generate conjugations. Please check the input.", resp.Message)
		assert.Nil(t, resp.Verb)
		mockVerbRepo.AssertNotCalled(t, "FindByInfinitive", mock.Anything, mock.Anything, mock.Anything)
		mockVerbRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 空テキスト", func(t *testing.T) {
		resetMocks()

		resp, err := verbService.AddVerb(ctx, &model.VerbAddRequest{Text: "   ", SourceLanguage: "english"})

		requireAppErrorCode(t, err, "INVALID_INPUT")
		assert.Nil(t, resp)
		mockLLM.AssertNotCalled(t, "GenerateConjugations", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: オラクルに接続できない場合は何も登録しない", func(t *testing.T) {
		resetMocks()

		mockLLM.On("GenerateConjugations", ctx, "to speak", model.LanguageSetEnglish).
			Return(nil, model.ErrOracleUnavailable).Once()

		resp, err := verbService.AddVerb(ctx, &model.VerbAddRequest{Text: "to speak", SourceLanguage: "english"})

		requireAppErrorCode(t, err, "ORACLE_UNAVAILABLE")
		assert.Nil(t, resp)
		mockVerbRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
		mockConjugationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- Test GetSession ---
func Test_verbService_GetSession(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVerb()
	mockVerbRepo := new(mocks.VerbRepository)
	mockConjugationRepo := new(mocks.VerbConjugationRepository)
	mockSessionRepo := new(mocks.SessionRepository)
	mockSessionVerbRepo := new(mocks.SessionVerbRepository)
	mockVerbPracticeRepo := new(mocks.VerbPracticeRepository)
	mockLLM := new(llm_mocks.Client)
	verbService := NewVerbService(db, mockVerbRepo, mockConjugationRepo, mockSessionRepo, mockSessionVerbRepo, mockVerbPracticeRepo, mockLLM)

	session := &model.UserSession{SessionID: uuid.New(), LanguageSet: model.LanguageSetEnglish}

	t.Run("正常系: 活用形がまとまり誤答率の高い順に並ぶ", func(t *testing.T) {
		mockSessionRepo.Mock = mock.Mock{}
		mockSessionVerbRepo.Mock = mock.Mock{}
		mockConjugationRepo.Mock = mock.Mock{}

		now := time.Now()
		struggled := &model.VerbWithConjugations{ID: uuid.New(), Infinitive: "mówić", TotalAttempts: 2, CorrectAttempts: 0, AddedAt: now}
		untried := &model.VerbWithConjugations{ID: uuid.New(), Infinitive: "jeść", AddedAt: now}

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionVerbRepo.On("FindWithStats", ctx, db, session.SessionID).
			Return([]*model.VerbWithConjugations{untried, struggled}, nil).Once()
		mockConjugationRepo.On("FindByVerbIDs", ctx, db, []uuid.UUID{untried.ID, struggled.ID}).
			Return([]*model.VerbConjugation{
				{ConjugationID: uuid.New(), VerbID: struggled.ID, Pronoun: model.PronounTy, ConjugatedForm: "mówisz"},
				{ConjugationID: uuid.New(), VerbID: untried.ID, Pronoun: model.PronounJa, ConjugatedForm: "jem"},
				{ConjugationID: uuid.New(), VerbID: struggled.ID, Pronoun: model.PronounJa, ConjugatedForm: "mówię"},
			}, nil).Once()

		state, err := verbService.GetSession(ctx)

		require.NoError(t, err)
		require.NotNil(t, state)
		require.Len(t, state.Verbs, 2)
		assert.Equal(t, "mówić", state.Verbs[0].Infinitive, "誤答率の高い動詞が先頭に来ること")
		assert.Equal(t, 100.0, state.Verbs[0].ErrorRate)
		assert.Equal(t, []model.VerbConjugationRead{
			{Pronoun: model.PronounJa, ConjugatedForm: "mówię"},
			{Pronoun: model.PronounTy, ConjugatedForm: "mówisz"},
		}, state.Verbs[0].Conjugations)
		assert.Equal(t, "jeść", state.Verbs[1].Infinitive)
		assert.Equal(t, 0.0, state.Verbs[1].ErrorRate)

		mockSessionVerbRepo.AssertExpectations(t)
		mockConjugationRepo.AssertExpectations(t)
	})
}

// --- Test AddToSession / ToggleVerb / RemoveFromSession ---
func Test_verbService_SessionMembership(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVerb()
	mockVerbRepo := new(mocks.VerbRepository)
	mockConjugationRepo := new(mocks.VerbConjugationRepository)
	mockSessionRepo := new(mocks.SessionRepository)
	mockSessionVerbRepo := new(mocks.SessionVerbRepository)
	mockVerbPracticeRepo := new(mocks.VerbPracticeRepository)
	mockLLM := new(llm_mocks.Client)
	verbService := NewVerbService(db, mockVerbRepo, mockConjugationRepo, mockSessionRepo, mockSessionVerbRepo, mockVerbPracticeRepo, mockLLM)

	session := &model.UserSession{SessionID: uuid.New(), LanguageSet: model.LanguageSetEnglish}
	verbID := uuid.New()
	verb := &model.Verb{VerbID: verbID, Infinitive: "mówić"}

	resetMocks := func() {
		mockVerbRepo.Mock = mock.Mock{}
		mockConjugationRepo.Mock = mock.Mock{}
		mockSessionRepo.Mock = mock.Mock{}
		mockSessionVerbRepo.Mock = mock.Mock{}
	}
	expectEmptyState := func() {
		mockSessionVerbRepo.On("FindWithStats", ctx, db, session.SessionID).
			Return([]*model.VerbWithConjugations{}, nil).Once()
		mockConjugationRepo.On("FindByVerbIDs", ctx, db, []uuid.UUID{}).
			Return([]*model.VerbConjugation{}, nil).Once()
	}

	t.Run("正常系: セッションに動詞を追加", func(t *testing.T) {
		resetMocks()

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockVerbRepo.On("FindByID", ctx, db, verbID).Return(verb, nil).Once()
		mockSessionVerbRepo.On("Create", ctx, db, mock.AnythingOfType("*model.UserSessionVerb")).
			Run(func(args mock.Arguments) {
				link := args.Get(2).(*model.UserSessionVerb)
				assert.Equal(t, verbID, link.VerbID)
				assert.True(t, link.Enabled)
			}).Return(nil).Once()
		expectEmptyState()

		state, err := verbService.AddToSession(ctx, verbID)

		require.NoError(t, err)
		require.NotNil(t, state)
		mockSessionVerbRepo.AssertExpectations(t)
	})

	t.Run("正常系: 追加済みの動詞はそのまま成功", func(t *testing.T) {
		resetMocks()

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockVerbRepo.On("FindByID", ctx, db, verbID).Return(verb, nil).Once()
		mockSessionVerbRepo.On("Create", ctx, db, mock.AnythingOfType("*model.UserSessionVerb")).
			Return(model.ErrConflict).Once()
		expectEmptyState()

		state, err := verbService.AddToSession(ctx, verbID)

		require.NoError(t, err)
		require.NotNil(t, state)
	})

	t.Run("異常系: 存在しない動詞は追加できない", func(t *testing.T) {
		resetMocks()

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockVerbRepo.On("FindByID", ctx, db, verbID).Return(nil, model.ErrNotFound).Once()

		state, err := verbService.AddToSession(ctx, verbID)

		requireAppErrorCode(t, err, "VERB_NOT_FOUND")
		assert.Nil(t, state)
	})

	t.Run("正常系: 出題対象フラグを切り替える", func(t *testing.T) {
		resetMocks()

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionVerbRepo.On("SetEnabled", ctx, db, session.SessionID, verbID, false).Return(nil).Once()
		expectEmptyState()

		state, err := verbService.ToggleVerb(ctx, verbID, false)

		require.NoError(t, err)
		require.NotNil(t, state)
	})

	t.Run("異常系: セッションにない動詞のフラグは切り替えられない", func(t *testing.T) {
		resetMocks()

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionVerbRepo.On("SetEnabled", ctx, db, session.SessionID, verbID, true).
			Return(model.ErrNotFound).Once()

		state, err := verbService.ToggleVerb(ctx, verbID, true)

		requireAppErrorCode(t, err, "VERB_NOT_IN_SESSION")
		assert.Nil(t, state)
	})

	t.Run("正常系: セッションから外しても動詞は残る", func(t *testing.T) {
		resetMocks()

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionVerbRepo.On("Delete", ctx, db, session.SessionID, verbID).Return(nil).Once()
		expectEmptyState()

		state, err := verbService.RemoveFromSession(ctx, verbID)

		require.NoError(t, err)
		require.NotNil(t, state)
		mockVerbRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: セッションにない動詞は外せない", func(t *testing.T) {
		resetMocks()

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionVerbRepo.On("Delete", ctx, db, session.SessionID, verbID).
			Return(model.ErrNotFound).Once()

		state, err := verbService.RemoveFromSession(ctx, verbID)

		requireAppErrorCode(t, err, "VERB_NOT_IN_SESSION")
		assert.Nil(t, state)
	})
}

// --- Test DeleteVerb ---
func Test_verbService_DeleteVerb(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVerb()
	mockVerbRepo := new(mocks.VerbRepository)
	mockConjugationRepo := new(mocks.VerbConjugationRepository)
	mockSessionRepo := new(mocks.SessionRepository)
	mockSessionVerbRepo := new(mocks.SessionVerbRepository)
	mockVerbPracticeRepo := new(mocks.VerbPracticeRepository)
	mockLLM := new(llm_mocks.Client)
	verbService := NewVerbService(db, mockVerbRepo, mockConjugationRepo, mockSessionRepo, mockSessionVerbRepo, mockVerbPracticeRepo, mockLLM)

	verbID := uuid.New()

	t.Run("正常系: 活用形・成績・セッション紐付けごと削除", func(t *testing.T) {
		mockVerbRepo.Mock = mock.Mock{}
		mockConjugationRepo.Mock = mock.Mock{}
		mockSessionVerbRepo.Mock = mock.Mock{}
		mockVerbPracticeRepo.Mock = mock.Mock{}

		mockConjugationRepo.On("DeleteByVerb", ctx, mock.AnythingOfType("*gorm.DB"), verbID).Return(nil).Once()
		mockVerbPracticeRepo.On("DeleteByVerb", ctx, mock.AnythingOfType("*gorm.DB"), verbID).Return(nil).Once()
		mockSessionVerbRepo.On("DeleteByVerb", ctx, mock.AnythingOfType("*gorm.DB"), verbID).Return(nil).Once()
		mockVerbRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), verbID).Return(nil).Once()

		err := verbService.DeleteVerb(ctx, verbID)

		require.NoError(t, err)
		mockVerbRepo.AssertExpectations(t)
		mockConjugationRepo.AssertExpectations(t)
		mockSessionVerbRepo.AssertExpectations(t)
		mockVerbPracticeRepo.AssertExpectations(t)
	})

	t.Run("異常系: 動詞が見つからない", func(t *testing.T) {
		mockVerbRepo.Mock = mock.Mock{}
		mockConjugationRepo.Mock = mock.Mock{}
		mockSessionVerbRepo.Mock = mock.Mock{}
		mockVerbPracticeRepo.Mock = mock.Mock{}

		mockConjugationRepo.On("DeleteByVerb", ctx, mock.AnythingOfType("*gorm.DB"), verbID).Return(nil).Once()
		mockVerbPracticeRepo.On("DeleteByVerb", ctx, mock.AnythingOfType("*gorm.DB"), verbID).Return(nil).Once()
		mockSessionVerbRepo.On("DeleteByVerb", ctx, mock.AnythingOfType("*gorm.DB"), verbID).Return(nil).Once()
		mockVerbRepo.On("Delete", ctx, mock.AnythingOfType("*gorm.DB"), verbID).Return(model.ErrNotFound).Once()

		err := verbService.DeleteVerb(ctx, verbID)

		requireAppErrorCode(t, err, "VERB_NOT_FOUND")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

// --- Test GetEndingsQuestion ---
func Test_verbService_GetEndingsQuestion(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVerb()
	mockVerbRepo := new(mocks.VerbRepository)
	mockConjugationRepo := new(mocks.VerbConjugationRepository)
	mockSessionRepo := new(mocks.SessionRepository)
	mockSessionVerbRepo := new(mocks.SessionVerbRepository)
	mockVerbPracticeRepo := new(mocks.VerbPracticeRepository)
	mockLLM := new(llm_mocks.Client)
	verbService := NewVerbService(db, mockVerbRepo, mockConjugationRepo, mockSessionRepo, mockSessionVerbRepo, mockVerbPracticeRepo, mockLLM)

	session := &model.UserSession{SessionID: uuid.New(), LanguageSet: model.LanguageSetEnglish}
	verbID := uuid.New()
	sessionVerb := &model.VerbWithConjugations{ID: verbID, Infinitive: "mówić", English: "to speak", Ukrainian: "говорити", Enabled: true}

	fullConjugations := []*model.VerbConjugation{
		{ConjugationID: uuid.New(), VerbID: verbID, Pronoun: model.PronounJa, ConjugatedForm: "mówię"},
		{ConjugationID: uuid.New(), VerbID: verbID, Pronoun: model.PronounTy, ConjugatedForm: "mówisz"},
		{ConjugationID: uuid.New(), VerbID: verbID, Pronoun: model.PronounOnOnaOno, ConjugatedForm: "mówi"},
		{ConjugationID: uuid.New(), VerbID: verbID, Pronoun: model.PronounMy, ConjugatedForm: "mówimy"},
		{ConjugationID: uuid.New(), VerbID: verbID, Pronoun: model.PronounWy, ConjugatedForm: "mówicie"},
		{ConjugationID: uuid.New(), VerbID: verbID, Pronoun: model.PronounOniOne, ConjugatedForm: "mówią"},
	}
	formByPronoun := make(map[model.Pronoun]string, len(fullConjugations))
	for _, c := range fullConjugations {
		formByPronoun[c.Pronoun] = c.ConjugatedForm
	}

	resetMocks := func() {
		mockConjugationRepo.Mock = mock.Mock{}
		mockSessionRepo.Mock = mock.Mock{}
		mockSessionVerbRepo.Mock = mock.Mock{}
	}

	t.Run("正常系: 同じ動詞の他の活用形が誤答候補になる", func(t *testing.T) {
		resetMocks()

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionVerbRepo.On("FindWithStats", ctx, db, session.SessionID).
			Return([]*model.VerbWithConjugations{sessionVerb}, nil).Once()
		mockConjugationRepo.On("FindByVerb", ctx, db, verbID).Return(fullConjugations, nil).Once()

		q, err := verbService.GetEndingsQuestion(ctx)

		require.NoError(t, err)
		require.NotNil(t, q)
		assert.Equal(t, verbID, q.VerbID)
		assert.Equal(t, "mówić", q.Infinitive)
		assert.Equal(t, formByPronoun[q.Pronoun], q.CorrectAnswer, "正解は出題された人称の活用形であること")

		require.Len(t, q.Options, 4)
		assert.Contains(t, q.Options, q.CorrectAnswer)
		seen := make(map[string]bool)
		for _, opt := range q.Options {
			assert.False(t, seen[opt], "選択肢に重複がないこと")
			seen[opt] = true
			assert.Contains(t, []string{"mówię", "mówisz", "mówi", "mówimy", "mówicie", "mówią"}, opt)
		}
	})

	t.Run("正常系: 活用形が足りない場合は疑問符付きの変形で埋める", func(t *testing.T) {
		resetMocks()

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionVerbRepo.On("FindWithStats", ctx, db, session.SessionID).
			Return([]*model.VerbWithConjugations{sessionVerb}, nil).Once()
		mockConjugationRepo.On("FindByVerb", ctx, db, verbID).
			Return(fullConjugations[:2], nil).Once()

		q, err := verbService.GetEndingsQuestion(ctx)

		require.NoError(t, err)
		require.NotNil(t, q)
		require.Len(t, q.Options, 4)
		assert.Contains(t, q.Options, q.CorrectAnswer)

		padded := 0
		for _, opt := range q.Options {
			if opt == q.CorrectAnswer+"?" {
				padded++
			}
		}
		assert.Equal(t, 2, padded, "不足分は正解の疑問符付き変形で埋められること")
	})

	t.Run("異常系: 有効な動詞がない", func(t *testing.T) {
		resetMocks()

		disabled := &model.VerbWithConjugations{ID: uuid.New(), Infinitive: "jeść", Enabled: false}
		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionVerbRepo.On("FindWithStats", ctx, db, session.SessionID).
			Return([]*model.VerbWithConjugations{disabled}, nil).Once()

		q, err := verbService.GetEndingsQuestion(ctx)

		requireAppErrorCode(t, err, "NO_VERBS_IN_SESSION")
		assert.Nil(t, q)
		mockConjugationRepo.AssertNotCalled(t, "FindByVerb", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: 活用形が未登録", func(t *testing.T) {
		resetMocks()

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionVerbRepo.On("FindWithStats", ctx, db, session.SessionID).
			Return([]*model.VerbWithConjugations{sessionVerb}, nil).Once()
		mockConjugationRepo.On("FindByVerb", ctx, db, verbID).
			Return([]*model.VerbConjugation{}, nil).Once()

		q, err := verbService.GetEndingsQuestion(ctx)

		requireAppErrorCode(t, err, "VERB_HAS_NO_CONJUGATIONS")
		assert.Nil(t, q)
	})
}

// --- Test ValidateEndings ---
func Test_verbService_ValidateEndings(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBVerb()
	mockVerbRepo := new(mocks.VerbRepository)
	mockConjugationRepo := new(mocks.VerbConjugationRepository)
	mockSessionRepo := new(mocks.SessionRepository)
	mockSessionVerbRepo := new(mocks.SessionVerbRepository)
	mockVerbPracticeRepo := new(mocks.VerbPracticeRepository)
	mockLLM := new(llm_mocks.Client)
	verbService := NewVerbService(db, mockVerbRepo, mockConjugationRepo, mockSessionRepo, mockSessionVerbRepo, mockVerbPracticeRepo, mockLLM)

	verbID := uuid.New()
	verb := &model.Verb{VerbID: verbID, Infinitive: "mówić", English: "to speak", Ukrainian: "говорити"}
	conjugation := &model.VerbConjugation{
		ConjugationID:  uuid.New(),
		VerbID:         verbID,
		Pronoun:        model.PronounJa,
		ConjugatedForm: "mówię",
	}

	tests := []struct {
		name        string
		pronoun     string
		answer      string
		setupMock   func()
		wantCode    string
		wantField   string
		wantCorrect bool
	}{
		{
			name:    "正常系: 大文字小文字と前後空白を無視して正解",
			pronoun: "ja",
			answer:  " MÓWIĘ ",
			setupMock: func() {
				mockVerbRepo.On("FindByID", ctx, db, verbID).Return(verb, nil).Once()
				mockConjugationRepo.On("FindByVerbAndPronoun", ctx, db, verbID, model.PronounJa).
					Return(conjugation, nil).Once()
				mockVerbPracticeRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.VerbPracticeRecord")).
					Run(func(args mock.Arguments) {
						record := args.Get(2).(*model.VerbPracticeRecord)
						assert.Equal(t, verbID, record.VerbID)
						assert.Equal(t, model.PronounJa, record.Pronoun)
						assert.True(t, record.WasCorrect)
					}).Return(nil).Once()
				expectEndingsStatsRecalc(ctx, mockVerbPracticeRepo, mockVerbRepo)
			},
			wantCorrect: true,
		},
		{
			name:    "正常系: 不正解も記録される",
			pronoun: "ja",
			answer:  "mówisz",
			setupMock: func() {
				mockVerbRepo.On("FindByID", ctx, db, verbID).Return(verb, nil).Once()
				mockConjugationRepo.On("FindByVerbAndPronoun", ctx, db, verbID, model.PronounJa).
					Return(conjugation, nil).Once()
				mockVerbPracticeRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.VerbPracticeRecord")).
					Run(func(args mock.Arguments) {
						record := args.Get(2).(*model.VerbPracticeRecord)
						assert.False(t, record.WasCorrect)
					}).Return(nil).Once()
				expectEndingsStatsRecalc(ctx, mockVerbPracticeRepo, mockVerbRepo)
			},
			wantCorrect: false,
		},
		{
			name:      "異常系: 空回答",
			pronoun:   "ja",
			answer:    "   ",
			setupMock: func() {},
			wantCode:  "INVALID_INPUT",
			wantField: "answer",
		},
		{
			name:      "異常系: 不正な人称代名詞",
			pronoun:   "vy",
			answer:    "mówię",
			setupMock: func() {},
			wantCode:  "INVALID_INPUT",
			wantField: "pronoun",
		},
		{
			name:    "異常系: 動詞が見つからない",
			pronoun: "ja",
			answer:  "mówię",
			setupMock: func() {
				mockVerbRepo.On("FindByID", ctx, db, verbID).Return(nil, model.ErrNotFound).Once()
			},
			wantCode: "VERB_NOT_FOUND",
		},
		{
			name:    "異常系: 指定された人称の活用形がない",
			pronoun: "wy",
			answer:  "mówicie",
			setupMock: func() {
				mockVerbRepo.On("FindByID", ctx, db, verbID).Return(verb, nil).Once()
				mockConjugationRepo.On("FindByVerbAndPronoun", ctx, db, verbID, model.PronounWy).
					Return(nil, model.ErrNotFound).Once()
			},
			wantCode: "CONJUGATION_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockVerbRepo.Mock = mock.Mock{}
			mockConjugationRepo.Mock = mock.Mock{}
			mockVerbPracticeRepo.Mock = mock.Mock{}
			tt.setupMock()

			resp, err := verbService.ValidateEndings(ctx, &model.EndingsValidationRequest{
				VerbID:  verbID,
				Pronoun: tt.pronoun,
				Answer:  tt.answer,
			})

			if tt.wantCode != "" {
				requireAppErrorCode(t, err, tt.wantCode)
				if tt.wantField != "" {
					var appErr *model.AppError
					require.ErrorAs(t, err, &appErr)
					assert.Equal(t, tt.wantField, appErr.Detail.Field)
				}
				assert.Nil(t, resp)
				mockVerbPracticeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.Equal(t, tt.wantCorrect, resp.WasCorrect)
				assert.Equal(t, "mówię", resp.CorrectAnswer)
				require.NotNil(t, resp.Stats)
				assert.Equal(t, int64(3), resp.Stats.AvailableVerbs)
			}

			mockVerbRepo.AssertExpectations(t)
			mockConjugationRepo.AssertExpectations(t)
			mockVerbPracticeRepo.AssertExpectations(t)
		})
	}
}

// --- Test orderedConjugationReads ---
func Test_orderedConjugationReads(t *testing.T) {
	verbID := uuid.New()

	reads := orderedConjugationReads([]*model.VerbConjugation{
		{ConjugationID: uuid.New(), VerbID: verbID, Pronoun: model.PronounOniOne, ConjugatedForm: "mówią"},
		{ConjugationID: uuid.New(), VerbID: verbID, Pronoun: model.PronounJa, ConjugatedForm: "mówię"},
		{ConjugationID: uuid.New(), VerbID: verbID, Pronoun: model.PronounMy, ConjugatedForm: "mówimy"},
	})

	assert.Equal(t, []model.VerbConjugationRead{
		{Pronoun: model.PronounJa, ConjugatedForm: "mówię"},
		{Pronoun: model.PronounMy, ConjugatedForm: "mówimy"},
		{Pronoun: model.PronounOniOne, ConjugatedForm: "mówią"},
	}, reads)
}
