// internal/service/admin_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"polingo/internal/config"
	"polingo/internal/middleware"
	"polingo/internal/model"
	"polingo/internal/repository"

	"github.com/google/uuid"
	"github.com/mileusna/useragent"
	"gorm.io/gorm"
)

// AdminService は接続端末の記録と一覧・削除を提供します。
type AdminService interface {
	// TrackDevice はAPIリクエスト1件分の端末アクセスを記録します。
	TrackDevice(ctx context.Context, ipAddress, userAgent string) error
	ListDevices(ctx context.Context) (*model.DevicesResponse, error)
	DeleteDevice(ctx context.Context, deviceID uuid.UUID) (*model.AdminActionResponse, error)
	ClearDevices(ctx context.Context) (*model.AdminActionResponse, error)
}

type adminService struct {
	db         *gorm.DB
	deviceRepo repository.DeviceRepository
	cfg        *config.Config
}

func NewAdminService(db *gorm.DB, deviceRepo repository.DeviceRepository, cfg *config.Config) AdminService {
	return &adminService{db: db, deviceRepo: deviceRepo, cfg: cfg}
}

func (s *adminService) TrackDevice(ctx context.Context, ipAddress, userAgentString string) error {
	ua := useragent.Parse(userAgentString)
	now := time.Now()
	device := &model.ConnectedDevice{
		DeviceID:     uuid.New(),
		IPAddress:    ipAddress,
		UserAgent:    userAgentString,
		DeviceType:   classifyDevice(ua),
		Browser:      ua.Name,
		OS:           ua.OS,
		FirstSeen:    now,
		LastActivity: now,
		RequestCount: 1,
	}
	return s.deviceRepo.Upsert(ctx, s.db, device)
}

func (s *adminService) ListDevices(ctx context.Context) (*model.DevicesResponse, error) {
	logger := middleware.GetLogger(ctx)

	devices, err := s.deviceRepo.FindAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list connected devices", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "接続端末の取得に失敗しました。", "", err)
	}

	threshold := time.Now().Add(-time.Duration(s.cfg.App.DeviceActiveThresholdMinutes) * time.Minute)

	list := make([]model.DeviceResponse, 0, len(devices))
	activeCount := 0
	for _, d := range devices {
		isActive := !d.LastActivity.Before(threshold)
		if isActive {
			activeCount++
		}
		list = append(list, model.DeviceResponse{
			ID:           d.DeviceID,
			IPAddress:    d.IPAddress,
			UserAgent:    d.UserAgent,
			DeviceType:   d.DeviceType,
			Browser:      d.Browser,
			OS:           d.OS,
			FirstSeen:    d.FirstSeen,
			LastActivity: d.LastActivity,
			RequestCount: d.RequestCount,
			IsActive:     isActive,
		})
	}

	return &model.DevicesResponse{
		Devices:     list,
		TotalCount:  len(list),
		ActiveCount: activeCount,
	}, nil
}

func (s *adminService) DeleteDevice(ctx context.Context, deviceID uuid.UUID) (*model.AdminActionResponse, error) {
	logger := middleware.GetLogger(ctx).With("device_id", deviceID.String())

	if err := s.deviceRepo.Delete(ctx, s.db, deviceID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("DEVICE_NOT_FOUND", "指定された端末が見つかりません。", "device_id", model.ErrNotFound)
		}
		logger.Error("Failed to delete device", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "端末記録の削除に失敗しました。", "", err)
	}

	logger.Info("Device removed from tracking")
	return &model.AdminActionResponse{Success: true, Message: "Device removed"}, nil
}

func (s *adminService) ClearDevices(ctx context.Context) (*model.AdminActionResponse, error) {
	logger := middleware.GetLogger(ctx)

	removed, err := s.deviceRepo.DeleteAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to clear device tracking data", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "端末記録の全削除に失敗しました。", "", err)
	}

	logger.Info("Device tracking data cleared", "removed", removed)
	return &model.AdminActionResponse{
		Success: true,
		Message: fmt.Sprintf("Removed %d devices", removed),
	}, nil
}

// classifyDevice はUser-Agentの解析結果を端末区分に落とします。
func classifyDevice(ua useragent.UserAgent) string {
	switch {
	case ua.Bot:
		return "bot"
	case ua.Mobile:
		return "mobile"
	case ua.Tablet:
		return "tablet"
	case ua.Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}
