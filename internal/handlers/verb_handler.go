// internal/handlers/verb_handler.go
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

type VerbHandler struct {
	service service.VerbService
}

func NewVerbHandler(s service.VerbService) *VerbHandler {
	return &VerbHandler{service: s}
}

// AddVerb は動詞をオラクルで解決し、活用形一式とともに登録します
func (h *VerbHandler) AddVerb(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.VerbAddRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for verb add", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for verb add", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.AddVerb(r.Context(), &req)
	if err != nil {
		logger.Error("Error adding verb in service", "error", err, "text", req.Text)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Verb add processed", "success", result.Success, "duplicate", result.Duplicate)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// GetSession は動詞セッションの現在の状態を返します
func (h *VerbHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	state, err := h.service.GetSession(r.Context())
	if err != nil {
		logger.Error("Error getting verb session in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// AddToSession はセッションに動詞を追加します
func (h *VerbHandler) AddToSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.SessionVerbAdd
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for session verb add", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for session verb add", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	state, err := h.service.AddToSession(r.Context(), req.VerbID)
	if err != nil {
		logger.Error("Error adding verb to session in service", "error", err, "verb_id", req.VerbID.String())
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Verb added to session", "verb_id", req.VerbID.String())
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// ToggleVerb はセッション内の動詞の出題対象フラグを切り替えます
func (h *VerbHandler) ToggleVerb(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.VerbToggleRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for verb toggle", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for verb toggle", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	state, err := h.service.ToggleVerb(r.Context(), req.VerbID, *req.Enabled)
	if err != nil {
		logger.Error("Error toggling session verb in service", "error", err, "verb_id", req.VerbID.String())
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session verb toggled", "verb_id", req.VerbID.String(), "enabled", *req.Enabled)
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// RemoveFromSession はセッションから動詞を外します（動詞自体は残ります）
func (h *VerbHandler) RemoveFromSession(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	verbIDStr := chi.URLParam(r, "verb_id")
	verbID, err := uuid.Parse(verbIDStr)
	if err != nil {
		logger.Warn("Invalid verb ID format in URL", "verb_id_str", verbIDStr, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", "verb_idの形式が正しくありません。", "verb_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("verb_id", verbID.String())

	state, err := h.service.RemoveFromSession(r.Context(), verbID)
	if err != nil {
		logger.Error("Error removing verb from session in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Verb removed from session")
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// DeleteVerb は動詞本体と関連データを削除します
func (h *VerbHandler) DeleteVerb(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	verbIDStr := chi.URLParam(r, "verb_id")
	verbID, err := uuid.Parse(verbIDStr)
	if err != nil {
		logger.Warn("Invalid verb ID format in URL", "verb_id_str", verbIDStr, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", "verb_idの形式が正しくありません。", "verb_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("verb_id", verbID.String())

	if err := h.service.DeleteVerb(r.Context(), verbID); err != nil {
		logger.Error("Error deleting verb in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Verb deleted")
	w.WriteHeader(http.StatusNoContent)
}

// GetQuestion は語尾クイズを1問生成します
func (h *VerbHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	question, err := h.service.GetEndingsQuestion(r.Context())
	if err != nil {
		logger.Error("Error generating endings question in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Endings question generated",
		"verb_id", question.VerbID.String(),
		"pronoun", string(question.Pronoun),
	)
	webutil.RespondWithJSON(w, http.StatusOK, question, logger)
}

// ValidateEndings は語尾クイズの回答を採点して記録します
func (h *VerbHandler) ValidateEndings(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.EndingsValidationRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for endings validation", "errors", validationErrors.Error())
			appErr := webutil.NewValidationErrorResponse(validationErrors)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation for endings validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	result, err := h.service.ValidateEndings(r.Context(), &req)
	if err != nil {
		logger.Error("Error validating endings answer in service", "error", err, "verb_id", req.VerbID.String())
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Endings answer validated", "verb_id", req.VerbID.String(), "was_correct", result.WasCorrect)
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
