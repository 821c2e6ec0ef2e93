// internal/handlers/word_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"polingo/internal/middleware"
	"polingo/internal/model"
	"polingo/internal/service"
	"polingo/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type WordHandler struct {
	service service.WordService
}

func NewWordHandler(s service.WordService) *WordHandler {
	return &WordHandler{service: s}
}

// GetInitialWords は導入用の単語リストを返します
func (h *WordHandler) GetInitialWords(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	count := 0
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.Warn("Invalid count query parameter", "count", raw)
			appErr := model.NewAppError("INVALID_QUERY_PARAM", "countの形式が正しくありません。", "count", model.ErrInvalidInput)
			webutil.HandleError(w, logger, appErr)
			return
		}
		count = parsed
	}

	words, err := h.service.GetInitialWords(r.Context(), count)
	if err != nil {
		logger.Error("Error getting initial words in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	if words == nil {
		words = []*model.Word{}
	}
	logger.Info("Initial words listed", "count", len(words))
	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

// CheckWord は入力テキストを単語帳と照合します
func (h *WordHandler) CheckWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.WordCheckRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for word check", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for word check", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.CheckWord(r.Context(), req.Text)
	if err != nil {
		logger.Error("Error checking word in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word checked", "found", result.Found, "created", result.Created)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// CheckWordsBulk はカンマ区切りの複数語をまとめて照合します
func (h *WordHandler) CheckWordsBulk(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.WordCheckBulkRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for bulk word check", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for bulk word check", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.CheckWordsBulk(r.Context(), req.Text)
	if err != nil {
		logger.Error("Error checking words in bulk in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Bulk word check finished",
		"added", result.AddedCount,
		"duplicates", result.DuplicateCount,
		"failed", result.FailedCount,
	)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// DeleteWord は単語本体と関連データを削除します
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	wordIDStr := chi.URLParam(r, "word_id")
	wordID, err := uuid.Parse(wordIDStr)
	if err != nil {
		logger.Warn("Invalid word ID format in URL", "word_id_str", wordIDStr, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", "word_idの形式が正しくありません。", "word_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("word_id", wordID.String())

	if err := h.service.DeleteWord(r.Context(), wordID); err != nil {
		logger.Error("Error deleting word in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted")
	w.WriteHeader(http.StatusNoContent)
}
