// internal/handlers/session_handler.go
package handlers

import (
	"errors"
	"net/http"

	"polingo/internal/middleware"
	"polingo/internal/model"
	"polingo/internal/service"
	"polingo/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(s service.SessionService) *SessionHandler {
	return &SessionHandler{service: s}
}

// GetSession は学習セッションの現在の状態を返します
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	state, err := h.service.GetState(r.Context())
	if err != nil {
		logger.Error("Error getting session state in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// UpdateLanguage は出題対象の言語セットを切り替えます
func (h *SessionHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.SessionLanguageUpdate
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for language update", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for language update", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	state, err := h.service.UpdateLanguage(r.Context(), req.LanguageSet)
	if err != nil {
		logger.Error("Error updating session language in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session language updated", "language_set", string(req.LanguageSet))
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// AddWord はセッションに単語を1つ追加します
func (h *SessionHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.SessionWordAdd
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for session word add", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for session word add", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	state, err := h.service.AddWord(r.Context(), req.WordID)
	if err != nil {
		logger.Error("Error adding word to session in service", "error", err, "word_id", req.WordID.String())
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word added to session", "word_id", req.WordID.String())
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// AddWordsBulk はセッションに複数の単語をまとめて追加します
func (h *SessionHandler) AddWordsBulk(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.SessionWordBulkAdd
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for session bulk add", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for session bulk add", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	state, err := h.service.AddWordsBulk(r.Context(), req.WordIDs)
	if err != nil {
		logger.Error("Error adding words to session in service", "error", err, "count", len(req.WordIDs))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Words added to session", "count", len(req.WordIDs))
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// ToggleWord はセッション内の単語の出題対象フラグを切り替えます
func (h *SessionHandler) ToggleWord(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.WordToggleRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for word toggle", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for word toggle", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	state, err := h.service.ToggleWord(r.Context(), req.WordID, *req.Enabled)
	if err != nil {
		logger.Error("Error toggling session word in service", "error", err, "word_id", req.WordID.String())
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session word toggled", "word_id", req.WordID.String(), "enabled", *req.Enabled)
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// RemoveWord はセッションから単語を外します（単語自体は残ります）
func (h *SessionHandler) RemoveWord(w http.ResponseWriter, r *http.Request) {
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

	state, err := h.service.RemoveWord(r.Context(), wordID)
	if err != nil {
		logger.Error("Error removing word from session in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word removed from session")
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}
