// internal/handlers/practice_handler.go
package handlers

import (
	"errors"
	"io"
	"net/http"

	"polingo/internal/middleware"
	"polingo/internal/model"
	"polingo/internal/service"
	"polingo/internal/webutil"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// 音声ファイルの受け付け上限 (10MB)
const maxAudioUploadBytes = 10 << 20

type PracticeHandler struct {
	service service.PracticeService
}

func NewPracticeHandler(s service.PracticeService) *PracticeHandler {
	return &PracticeHandler{service: s}
}

// Submit は判定済みの練習結果を記録します
func (h *PracticeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PracticeSubmission
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for practice submission", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for practice submission", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	stats, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		logger.Error("Error submitting practice result in service", "error", err, "word_id", req.WordID.String())
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Practice result submitted", "word_id", req.WordID.String(), "was_correct", *req.WasCorrect)
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

// Validate は自由入力の回答を採点して記録します
func (h *PracticeHandler) Validate(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PracticeValidationRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for answer validation", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for answer validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.Validate(r.Context(), &req)
	if err != nil {
		logger.Error("Error validating answer in service", "error", err, "word_id", req.WordID.String())
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Answer validated",
		"word_id", req.WordID.String(),
		"was_correct", result.WasCorrect,
		"matched_via", string(result.MatchedVia),
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// Skip は問題のスキップを不正解として記録します
func (h *PracticeHandler) Skip(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.PracticeSkipRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for practice skip", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for practice skip", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.Skip(r.Context(), &req)
	if err != nil {
		logger.Error("Error skipping question in service", "error", err, "word_id", req.WordID.String())
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Question skipped", "word_id", req.WordID.String())
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetQuestion は翻訳4択問題を1問生成します
func (h *PracticeHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	direction := r.URL.Query().Get("direction")

	question, err := h.service.GetQuestion(r.Context(), direction)
	if err != nil {
		logger.Error("Error generating translation question in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Translation question generated",
		"word_id", question.WordID.String(),
		"direction", question.Direction,
	)
	webutil.RespondWithJSON(w, http.StatusOK, question, logger)
}

// ValidatePronunciation は音声ファイルを受け取り発音を採点します。
// multipart/form-data の audio フィールドに音声、word_id フィールドに単語IDを載せます。
func (h *PracticeHandler) ValidatePronunciation(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	if err := r.ParseMultipartForm(maxAudioUploadBytes); err != nil {
		logger.Warn("Failed to parse multipart form", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "マルチパートフォームの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	wordIDStr := r.FormValue("word_id")
	wordID, err := uuid.Parse(wordIDStr)
	if err != nil {
		logger.Warn("Invalid word ID in multipart form", "word_id_str", wordIDStr, "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "word_idの形式が正しくありません。", "word_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("word_id", wordID.String())

	file, header, err := r.FormFile("audio")
	if err != nil {
		logger.Warn("Audio file missing from multipart form", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "音声ファイルが添付されていません。", "audio", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read uploaded audio", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "音声ファイルの読み込みに失敗しました。", "audio", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	result, err := h.service.ValidatePronunciation(r.Context(), wordID, audio, header.Filename)
	if err != nil {
		logger.Error("Error validating pronunciation in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Pronunciation validated", "was_correct", result.WasCorrect)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
