// internal/handlers/practice_handler_test.go
package handlers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"polingo/internal/handlers"
	"polingo/internal/model"

	svc_mocks "polingo/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: 発音採点用の multipart リクエストを組み立てる ---
func newMultipartAudioRequest(t *testing.T, wordID string, withAudio bool, audio []byte, filename string) *http.Request {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if wordID != "" {
		require.NoError(t, writer.WriteField("word_id", wordID))
	}
	if withAudio {
		part, err := writer.CreateFormFile("audio", filename)
		require.NoError(t, err)
		_, err = part.Write(audio)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/practice/pronunciation", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// --- Test Submit ---
func TestPracticeHandler_Submit(t *testing.T) {
	mockService := new(svc_mocks.PracticeService)
	handler := handlers.NewPracticeHandler(mockService)

	testWordID := uuid.New()
	sampleStats := &model.StatsResponse{
		TodayPercentage:   100.0,
		OverallPercentage: 80.0,
		AvailableWords:    5,
	}

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "正常系: 正解を記録",
			reqBody: &model.PracticeSubmission{
				WordID:      testWordID,
				LanguageSet: model.LanguageSetEnglish,
				Direction:   model.DirectionTranslation,
				WasCorrect:  boolPtr(true),
			},
			setupMock: func() {
				mockService.On("Submit", mock.Anything, mock.AnythingOfType("*model.PracticeSubmission")).
					Run(func(args mock.Arguments) {
						req := args.Get(1).(*model.PracticeSubmission)
						assert.Equal(t, testWordID, req.WordID)
						assert.True(t, *req.WasCorrect)
					}).
					Return(sampleStats, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"today_percentage":100`,
		},
		{
			name:           "異常系: 不正なJSON",
			reqBody:        `{"word_id":`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "リクエストボディの形式が正しくありません。",
		},
		{
			name: "異常系: was_correctが欠落",
			reqBody: fmt.Sprintf(`{"word_id":%q,"language_set":"english","direction":"translation"}`,
				testWordID.String()),
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: language_setが対象外",
			reqBody: fmt.Sprintf(`{"word_id":%q,"language_set":"german","direction":"translation","was_correct":true}`,
				testWordID.String()),
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: 単語が存在しない",
			reqBody: &model.PracticeSubmission{
				WordID:      testWordID,
				LanguageSet: model.LanguageSetEnglish,
				Direction:   model.DirectionTranslation,
				WasCorrect:  boolPtr(false),
			},
			setupMock: func() {
				appErr := model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
				mockService.On("Submit", mock.Anything, mock.AnythingOfType("*model.PracticeSubmission")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "WORD_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodPost, "/api/practice/submit", tt.reqBody)

			rr := httptest.NewRecorder()
			handler.Submit(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test Validate ---
func TestPracticeHandler_Validate(t *testing.T) {
	mockService := new(svc_mocks.PracticeService)
	handler := handlers.NewPracticeHandler(mockService)

	testWordID := uuid.New()

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "正常系: 回答を採点",
			reqBody: &model.PracticeValidationRequest{
				WordID:      testWordID,
				LanguageSet: model.LanguageSetEnglish,
				Direction:   model.DirectionTranslation,
				Answer:      "cat",
			},
			setupMock: func() {
				resp := &model.PracticeValidationResponse{
					WasCorrect:    true,
					CorrectAnswer: "cat",
					MatchedVia:    model.MatchedViaDirect,
					Alternatives:  []string{},
					Stats:         &model.StatsResponse{TodayPercentage: 100.0, AvailableWords: 5},
				}
				mockService.On("Validate", mock.Anything, mock.AnythingOfType("*model.PracticeValidationRequest")).
					Run(func(args mock.Arguments) {
						req := args.Get(1).(*model.PracticeValidationRequest)
						assert.Equal(t, testWordID, req.WordID)
						assert.Equal(t, "cat", req.Answer)
					}).
					Return(resp, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"matched_via":"direct"`,
		},
		{
			name:           "異常系: 不正なJSON",
			reqBody:        `{"answer":`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "リクエストボディの形式が正しくありません。",
		},
		{
			name: "異常系: answerが空",
			reqBody: fmt.Sprintf(`{"word_id":%q,"language_set":"english","direction":"translation","answer":""}`,
				testWordID.String()),
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: オラクル接続エラー",
			reqBody: &model.PracticeValidationRequest{
				WordID:      testWordID,
				LanguageSet: model.LanguageSetEnglish,
				Direction:   model.DirectionTranslation,
				Answer:      "kitten",
			},
			setupMock: func() {
				appErr := model.NewAppError("ORACLE_UNAVAILABLE", "判定サービスに接続できませんでした。時間をおいて再度お試しください。", "", model.ErrOracleUnavailable)
				mockService.On("Validate", mock.Anything, mock.AnythingOfType("*model.PracticeValidationRequest")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "ORACLE_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodPost, "/api/practice/validate", tt.reqBody)

			rr := httptest.NewRecorder()
			handler.Validate(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test Skip ---
func TestPracticeHandler_Skip(t *testing.T) {
	mockService := new(svc_mocks.PracticeService)
	handler := handlers.NewPracticeHandler(mockService)

	testWordID := uuid.New()

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "正常系: スキップを不正解として記録",
			reqBody: &model.PracticeSkipRequest{
				WordID:      testWordID,
				LanguageSet: model.LanguageSetEnglish,
				Direction:   model.DirectionTranslation,
			},
			setupMock: func() {
				resp := &model.PracticeValidationResponse{
					WasCorrect:    false,
					CorrectAnswer: "cat",
					MatchedVia:    model.MatchedViaNone,
					Alternatives:  []string{},
					Stats:         &model.StatsResponse{AvailableWords: 5},
				}
				mockService.On("Skip", mock.Anything, mock.AnythingOfType("*model.PracticeSkipRequest")).
					Run(func(args mock.Arguments) {
						req := args.Get(1).(*model.PracticeSkipRequest)
						assert.Equal(t, testWordID, req.WordID)
					}).
					Return(resp, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"was_correct":false`,
		},
		{
			name: "異常系: directionが対象外",
			reqBody: fmt.Sprintf(`{"word_id":%q,"language_set":"english","direction":"sideways"}`,
				testWordID.String()),
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "VALIDATION_ERROR",
		},
		{
			name: "異常系: 単語が存在しない",
			reqBody: &model.PracticeSkipRequest{
				WordID:      testWordID,
				LanguageSet: model.LanguageSetEnglish,
				Direction:   model.DirectionTranslation,
			},
			setupMock: func() {
				appErr := model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
				mockService.On("Skip", mock.Anything, mock.AnythingOfType("*model.PracticeSkipRequest")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "WORD_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodPost, "/api/practice/skip", tt.reqBody)

			rr := httptest.NewRecorder()
			handler.Skip(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test GetQuestion ---
func TestPracticeHandler_GetQuestion(t *testing.T) {
	mockService := new(svc_mocks.PracticeService)
	handler := handlers.NewPracticeHandler(mockService)

	sampleQuestion := &model.TranslationQuestion{
		WordID:        uuid.New(),
		Polish:        "kot",
		English:       "cat",
		Ukrainian:     "кіт",
		Prompt:        "kot",
		CorrectAnswer: "cat",
		Options:       []string{"cat", "dog", "house", "milk"},
		Direction:     model.QuestionFromPolish,
	}

	tests := []struct {
		name           string
		query          string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "正常系: direction指定なし",
			query: "",
			setupMock: func() {
				mockService.On("GetQuestion", mock.Anything, "").Return(sampleQuestion, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"prompt":"kot"`,
		},
		{
			name:  "正常系: direction指定あり",
			query: "?direction=from_polish",
			setupMock: func() {
				mockService.On("GetQuestion", mock.Anything, "from_polish").Return(sampleQuestion, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"direction":"from_polish"`,
		},
		{
			name:  "異常系: 有効な単語が不足",
			query: "",
			setupMock: func() {
				appErr := model.NewAppError("NOT_ENOUGH_WORDS",
					"出題には有効な単語が4つ以上必要です。セッションに単語を追加してください。", "", model.ErrInvalidInput)
				mockService.On("GetQuestion", mock.Anything, "").Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "NOT_ENOUGH_WORDS",
		},
		{
			name:  "異常系: directionが対象外",
			query: "?direction=sideways",
			setupMock: func() {
				appErr := model.NewAppError("INVALID_INPUT", "direction に指定できない値が入力されました。", "direction", model.ErrInvalidInput)
				mockService.On("GetQuestion", mock.Anything, "sideways").Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodGet, "/api/practice/question"+tt.query, nil)

			rr := httptest.NewRecorder()
			handler.GetQuestion(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test ValidatePronunciation ---
func TestPracticeHandler_ValidatePronunciation(t *testing.T) {
	mockService := new(svc_mocks.PracticeService)
	handler := handlers.NewPracticeHandler(mockService)

	testWordID := uuid.New()
	audioBytes := []byte("fake-webm-bytes")

	tests := []struct {
		name           string
		newRequest     func(t *testing.T) *http.Request
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "正常系: 発音を採点",
			newRequest: func(t *testing.T) *http.Request {
				return newMultipartAudioRequest(t, testWordID.String(), true, audioBytes, "rec.webm")
			},
			setupMock: func() {
				resp := &model.PronunciationValidationResponse{
					WasCorrect:      true,
					ExpectedWord:    "kot",
					TranscribedText: "kot",
					Feedback:        "Dobrze!",
					SimilarityScore: 0.95,
					Stats:           &model.StatsResponse{AvailableWords: 5},
				}
				mockService.On("ValidatePronunciation", mock.Anything, testWordID, audioBytes, "rec.webm").
					Return(resp, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"transcribed_text":"kot"`,
		},
		{
			name: "異常系: マルチパートフォームでない",
			newRequest: func(t *testing.T) *http.Request {
				return newJsonRequest(t, http.MethodPost, "/api/practice/pronunciation",
					map[string]string{"word_id": testWordID.String()})
			},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "マルチパートフォームの形式が正しくありません。",
		},
		{
			name: "異常系: word_idが不正",
			newRequest: func(t *testing.T) *http.Request {
				return newMultipartAudioRequest(t, "not-a-uuid", true, audioBytes, "rec.webm")
			},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "word_idの形式が正しくありません。",
		},
		{
			name: "異常系: 音声ファイルが未添付",
			newRequest: func(t *testing.T) *http.Request {
				return newMultipartAudioRequest(t, testWordID.String(), false, nil, "")
			},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "音声ファイルが添付されていません。",
		},
		{
			name: "異常系: 文字起こしサービスに接続できない",
			newRequest: func(t *testing.T) *http.Request {
				return newMultipartAudioRequest(t, testWordID.String(), true, audioBytes, "rec.webm")
			},
			setupMock: func() {
				appErr := model.NewAppError("ORACLE_UNAVAILABLE", "判定サービスに接続できませんでした。時間をおいて再度お試しください。", "", model.ErrOracleUnavailable)
				mockService.On("ValidatePronunciation", mock.Anything, testWordID, audioBytes, "rec.webm").
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "ORACLE_UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := tt.newRequest(t)

			rr := httptest.NewRecorder()
			handler.ValidatePronunciation(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
