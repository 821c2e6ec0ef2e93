// internal/handlers/admin_handler.go
package handlers

import (
	"net/http"

	"polingo/internal/middleware"
	"polingo/internal/model"
	"polingo/internal/service"
	"polingo/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(s service.AdminService) *AdminHandler {
	return &AdminHandler{service: s}
}

// GetDevices は記録済みの接続端末を一覧します
func (h *AdminHandler) GetDevices(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	devices, err := h.service.ListDevices(r.Context())
	if err != nil {
		logger.Error("Error listing devices in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Devices listed", "total", devices.TotalCount, "active", devices.ActiveCount)
	webutil.RespondWithJSON(w, http.StatusOK, devices, logger)
}

// DeleteDevice は端末記録を1件削除します
func (h *AdminHandler) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	deviceIDStr := chi.URLParam(r, "device_id")
	deviceID, err := uuid.Parse(deviceIDStr)
	if err != nil {
		logger.Warn("Invalid device ID format in URL", "device_id_str", deviceIDStr, "error", err)
		appErr := model.NewAppError("INVALID_URL_PARAM", "device_idの形式が正しくありません。", "device_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With("device_id", deviceID.String())

	result, err := h.service.DeleteDevice(r.Context(), deviceID)
	if err != nil {
		logger.Error("Error deleting device in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Device deleted")
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// ClearDevices は端末記録を全件削除します
func (h *AdminHandler) ClearDevices(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	result, err := h.service.ClearDevices(r.Context())
	if err != nil {
		logger.Error("Error clearing devices in service", "error", err)
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Devices cleared")
	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}
