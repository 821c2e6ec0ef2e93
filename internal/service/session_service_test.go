// internal/service/session_service_test.go
package service

import (
	"context"
	"testing"
	"time"

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

func setupTestDBSession() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

// --- Test GetState ---
func Test_sessionService_GetState(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSession()
	mockSessionRepo := new(mocks.SessionRepository)
	mockSessionWordRepo := new(mocks.SessionWordRepository)
	mockWordRepo := new(mocks.WordRepository)
	sessionService := NewSessionService(db, mockSessionRepo, mockSessionWordRepo, mockWordRepo)

	session := &model.UserSession{SessionID: uuid.New(), LanguageSet: model.LanguageSetEnglish}

	t.Run("正常系: 単語は出題優先度の高い順に並ぶ", func(t *testing.T) {
		mockSessionRepo.Mock = mock.Mock{}
		mockSessionWordRepo.Mock = mock.Mock{}

		now := time.Now()
		worst := &model.WordWithStats{ID: uuid.New(), Polish: "a", TotalAttempts: 4, CorrectAttempts: 1, AddedAt: now}
		perfect := &model.WordWithStats{ID: uuid.New(), Polish: "b", TotalAttempts: 2, CorrectAttempts: 2, AddedAt: now}
		untriedOld := &model.WordWithStats{ID: uuid.New(), Polish: "c", AddedAt: now.Add(-time.Hour)}
		halfMany := &model.WordWithStats{ID: uuid.New(), Polish: "d", TotalAttempts: 4, CorrectAttempts: 2, AddedAt: now}
		halfFew := &model.WordWithStats{ID: uuid.New(), Polish: "e", TotalAttempts: 2, CorrectAttempts: 1, AddedAt: now}
		untriedNew := &model.WordWithStats{ID: uuid.New(), Polish: "f", AddedAt: now}

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionWordRepo.On("FindWithStats", ctx, db, session.SessionID).
			Return([]*model.WordWithStats{perfect, untriedNew, worst, halfFew, untriedOld, halfMany}, nil).Once()

		state, err := sessionService.GetState(ctx)

		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Equal(t, model.LanguageSetEnglish, state.LanguageSet)

		// 誤答率が高い順 → 同率なら挑戦回数が多い順 → 未挑戦は最後に追加が古い順
		require.Len(t, state.Words, 6)
		assert.Equal(t, "a", state.Words[0].Polish)
		assert.Equal(t, "d", state.Words[1].Polish)
		assert.Equal(t, "e", state.Words[2].Polish)
		assert.Equal(t, "b", state.Words[3].Polish)
		assert.Equal(t, "c", state.Words[4].Polish)
		assert.Equal(t, "f", state.Words[5].Polish)

		assert.Equal(t, 75.0, state.Words[0].ErrorRate)
		assert.Equal(t, 50.0, state.Words[1].ErrorRate)
		assert.Equal(t, 0.0, state.Words[3].ErrorRate)
		assert.Equal(t, 0.0, state.Words[4].ErrorRate, "未挑戦の誤答率は 0.0 であること")

		mockSessionRepo.AssertExpectations(t)
		mockSessionWordRepo.AssertExpectations(t)
	})

	t.Run("正常系: 空のセッション", func(t *testing.T) {
		mockSessionRepo.Mock = mock.Mock{}
		mockSessionWordRepo.Mock = mock.Mock{}

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionWordRepo.On("FindWithStats", ctx, db, session.SessionID).
			Return([]*model.WordWithStats{}, nil).Once()

		state, err := sessionService.GetState(ctx)

		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Empty(t, state.Words)
	})
}

// --- Test UpdateLanguage ---
func Test_sessionService_UpdateLanguage(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSession()
	mockSessionRepo := new(mocks.SessionRepository)
	mockSessionWordRepo := new(mocks.SessionWordRepository)
	mockWordRepo := new(mocks.WordRepository)
	sessionService := NewSessionService(db, mockSessionRepo, mockSessionWordRepo, mockWordRepo)

	session := &model.UserSession{SessionID: uuid.New(), LanguageSet: model.LanguageSetEnglish}

	t.Run("正常系: 対象言語を切り替える", func(t *testing.T) {
		mockSessionRepo.Mock = mock.Mock{}
		mockSessionWordRepo.Mock = mock.Mock{}

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionRepo.On("UpdateLanguageSet", ctx, db, session.SessionID, model.LanguageSetUkrainian).
			Return(nil).Once()
		mockSessionWordRepo.On("FindWithStats", ctx, db, session.SessionID).
			Return([]*model.WordWithStats{}, nil).Once()

		state, err := sessionService.UpdateLanguage(ctx, model.LanguageSetUkrainian)

		require.NoError(t, err)
		require.NotNil(t, state)
		assert.Equal(t, model.LanguageSetUkrainian, state.LanguageSet)
		mockSessionRepo.AssertExpectations(t)
	})
}

// --- Test AddWord ---
func Test_sessionService_AddWord(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSession()
	mockSessionRepo := new(mocks.SessionRepository)
	mockSessionWordRepo := new(mocks.SessionWordRepository)
	mockWordRepo := new(mocks.WordRepository)
	sessionService := NewSessionService(db, mockSessionRepo, mockSessionWordRepo, mockWordRepo)

	session := &model.UserSession{SessionID: uuid.New(), LanguageSet: model.LanguageSetEnglish}
	wordID := uuid.New()
	word := &model.Word{WordID: wordID, Polish: "kot", English: "cat", Ukrainian: "кіт"}

	tests := []struct {
		name      string
		setupMock func()
		wantCode  string
	}{
		{
			name: "正常系: 単語を追加",
			setupMock: func() {
				mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
				mockWordRepo.On("FindByID", ctx, db, wordID).Return(word, nil).Once()
				mockSessionWordRepo.On("Create", ctx, db, mock.AnythingOfType("*model.UserSessionWord")).
					Run(func(args mock.Arguments) {
						link := args.Get(2).(*model.UserSessionWord)
						assert.Equal(t, session.SessionID, link.SessionID)
						assert.Equal(t, wordID, link.WordID)
						assert.True(t, link.Enabled, "追加直後は出題対象であること")
					}).Return(nil).Once()
				mockSessionWordRepo.On("FindWithStats", ctx, db, session.SessionID).
					Return([]*model.WordWithStats{}, nil).Once()
			},
		},
		{
			name: "正常系: 追加済みの単語はそのまま成功",
			setupMock: func() {
				mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
				mockWordRepo.On("FindByID", ctx, db, wordID).Return(word, nil).Once()
				mockSessionWordRepo.On("Create", ctx, db, mock.AnythingOfType("*model.UserSessionWord")).
					Return(model.ErrConflict).Once()
				mockSessionWordRepo.On("FindWithStats", ctx, db, session.SessionID).
					Return([]*model.WordWithStats{}, nil).Once()
			},
		},
		{
			name: "異常系: 単語が見つからない",
			setupMock: func() {
				mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
				mockWordRepo.On("FindByID", ctx, db, wordID).Return(nil, model.ErrNotFound).Once()
			},
			wantCode: "WORD_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSessionRepo.Mock = mock.Mock{}
			mockSessionWordRepo.Mock = mock.Mock{}
			mockWordRepo.Mock = mock.Mock{}
			tt.setupMock()

			state, err := sessionService.AddWord(ctx, wordID)

			if tt.wantCode != "" {
				requireAppErrorCode(t, err, tt.wantCode)
				assert.Nil(t, state)
			} else {
				require.NoError(t, err)
				require.NotNil(t, state)
			}

			mockSessionRepo.AssertExpectations(t)
			mockSessionWordRepo.AssertExpectations(t)
			mockWordRepo.AssertExpectations(t)
		})
	}
}

// --- Test AddWordsBulk ---
func Test_sessionService_AddWordsBulk(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSession()
	mockSessionRepo := new(mocks.SessionRepository)
	mockSessionWordRepo := new(mocks.SessionWordRepository)
	mockWordRepo := new(mocks.WordRepository)
	sessionService := NewSessionService(db, mockSessionRepo, mockSessionWordRepo, mockWordRepo)

	session := &model.UserSession{SessionID: uuid.New(), LanguageSet: model.LanguageSetEnglish}
	wordID1 := uuid.New()
	wordID2 := uuid.New()
	word1 := &model.Word{WordID: wordID1, Polish: "kot"}
	word2 := &model.Word{WordID: wordID2, Polish: "pies"}

	t.Run("正常系: 未追加は追加し追加済みはスキップ", func(t *testing.T) {
		mockSessionRepo.Mock = mock.Mock{}
		mockSessionWordRepo.Mock = mock.Mock{}
		mockWordRepo.Mock = mock.Mock{}

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockWordRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), wordID1).Return(word1, nil).Once()
		mockWordRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), wordID2).Return(word2, nil).Once()
		// 1つ目は追加済み、2つ目は未追加
		mockSessionWordRepo.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), session.SessionID, wordID1).
			Return(&model.UserSessionWord{ID: uuid.New(), SessionID: session.SessionID, WordID: wordID1}, nil).Once()
		mockSessionWordRepo.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), session.SessionID, wordID2).
			Return(nil, model.ErrNotFound).Once()
		mockSessionWordRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSessionWord")).
			Run(func(args mock.Arguments) {
				link := args.Get(2).(*model.UserSessionWord)
				assert.Equal(t, wordID2, link.WordID)
			}).Return(nil).Once()
		mockSessionWordRepo.On("FindWithStats", ctx, db, session.SessionID).
			Return([]*model.WordWithStats{}, nil).Once()

		state, err := sessionService.AddWordsBulk(ctx, []uuid.UUID{wordID1, wordID2})

		require.NoError(t, err)
		require.NotNil(t, state)
		mockSessionWordRepo.AssertExpectations(t)
		mockWordRepo.AssertExpectations(t)
	})

	t.Run("異常系: 存在しないIDが1つでもあれば全体を失敗させる", func(t *testing.T) {
		mockSessionRepo.Mock = mock.Mock{}
		mockSessionWordRepo.Mock = mock.Mock{}
		mockWordRepo.Mock = mock.Mock{}

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockWordRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), wordID1).Return(word1, nil).Once()
		mockSessionWordRepo.On("Find", ctx, mock.AnythingOfType("*gorm.DB"), session.SessionID, wordID1).
			Return(nil, model.ErrNotFound).Once()
		mockSessionWordRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.UserSessionWord")).
			Return(nil).Once()
		mockWordRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), wordID2).
			Return(nil, model.ErrNotFound).Once()

		state, err := sessionService.AddWordsBulk(ctx, []uuid.UUID{wordID1, wordID2})

		requireAppErrorCode(t, err, "WORD_NOT_FOUND")
		assert.Contains(t, err.Error(), wordID2.String())
		assert.Nil(t, state)
		// 途中で失敗したのでセッション状態の再取得は行われない
		mockSessionWordRepo.AssertNotCalled(t, "FindWithStats", mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- Test ToggleWord ---
func Test_sessionService_ToggleWord(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSession()
	mockSessionRepo := new(mocks.SessionRepository)
	mockSessionWordRepo := new(mocks.SessionWordRepository)
	mockWordRepo := new(mocks.WordRepository)
	sessionService := NewSessionService(db, mockSessionRepo, mockSessionWordRepo, mockWordRepo)

	session := &model.UserSession{SessionID: uuid.New(), LanguageSet: model.LanguageSetEnglish}
	wordID := uuid.New()

	tests := []struct {
		name      string
		enabled   bool
		setupMock func()
		wantCode  string
	}{
		{
			name:    "正常系: 出題対象から外す",
			enabled: false,
			setupMock: func() {
				mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
				mockSessionWordRepo.On("SetEnabled", ctx, db, session.SessionID, wordID, false).Return(nil).Once()
				mockSessionWordRepo.On("FindWithStats", ctx, db, session.SessionID).
					Return([]*model.WordWithStats{}, nil).Once()
			},
		},
		{
			name:    "異常系: セッションにない単語",
			enabled: true,
			setupMock: func() {
				mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
				mockSessionWordRepo.On("SetEnabled", ctx, db, session.SessionID, wordID, true).
					Return(model.ErrNotFound).Once()
			},
			wantCode: "WORD_NOT_IN_SESSION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSessionRepo.Mock = mock.Mock{}
			mockSessionWordRepo.Mock = mock.Mock{}
			tt.setupMock()

			state, err := sessionService.ToggleWord(ctx, wordID, tt.enabled)

			if tt.wantCode != "" {
				requireAppErrorCode(t, err, tt.wantCode)
				assert.ErrorIs(t, err, model.ErrNotFound)
				assert.Nil(t, state)
			} else {
				require.NoError(t, err)
				require.NotNil(t, state)
			}

			mockSessionRepo.AssertExpectations(t)
			mockSessionWordRepo.AssertExpectations(t)
		})
	}
}

// --- Test RemoveWord ---
func Test_sessionService_RemoveWord(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBSession()
	mockSessionRepo := new(mocks.SessionRepository)
	mockSessionWordRepo := new(mocks.SessionWordRepository)
	mockWordRepo := new(mocks.WordRepository)
	sessionService := NewSessionService(db, mockSessionRepo, mockSessionWordRepo, mockWordRepo)

	session := &model.UserSession{SessionID: uuid.New(), LanguageSet: model.LanguageSetEnglish}
	wordID := uuid.New()

	t.Run("正常系: セッションから外しても単語帳には残る", func(t *testing.T) {
		mockSessionRepo.Mock = mock.Mock{}
		mockSessionWordRepo.Mock = mock.Mock{}
		mockWordRepo.Mock = mock.Mock{}

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionWordRepo.On("Delete", ctx, db, session.SessionID, wordID).Return(nil).Once()
		mockSessionWordRepo.On("FindWithStats", ctx, db, session.SessionID).
			Return([]*model.WordWithStats{}, nil).Once()

		state, err := sessionService.RemoveWord(ctx, wordID)

		require.NoError(t, err)
		require.NotNil(t, state)
		// 単語そのものは削除しない
		mockWordRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
		mockSessionWordRepo.AssertExpectations(t)
	})

	t.Run("異常系: セッションにない単語", func(t *testing.T) {
		mockSessionRepo.Mock = mock.Mock{}
		mockSessionWordRepo.Mock = mock.Mock{}

		mockSessionRepo.On("GetOrCreate", ctx, db).Return(session, nil).Once()
		mockSessionWordRepo.On("Delete", ctx, db, session.SessionID, wordID).
			Return(model.ErrNotFound).Once()

		state, err := sessionService.RemoveWord(ctx, wordID)

		requireAppErrorCode(t, err, "WORD_NOT_IN_SESSION")
		assert.Nil(t, state)
	})
}
