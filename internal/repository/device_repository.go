//go:generate mockery --name DeviceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"polingo/internal/middleware"
	"polingo/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeviceRepository はAPIにアクセスした端末の記録を管理します。
type DeviceRepository interface {
	// Upsert は (ip_address, user_agent) をキーに端末を登録し、
	// 既存ならリクエスト数と最終アクセス時刻のみを更新します。
	Upsert(ctx context.Context, db *gorm.DB, device *model.ConnectedDevice) error
	FindAll(ctx context.Context, db *gorm.DB) ([]*model.ConnectedDevice, error)
	Delete(ctx context.Context, db *gorm.DB, deviceID uuid.UUID) error
	// DeleteAll は全端末記録を削除し、削除した件数を返します。
	DeleteAll(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormDeviceRepository struct{}

func NewGormDeviceRepository() DeviceRepository {
	return &gormDeviceRepository{}
}

func (r *gormDeviceRepository) Upsert(ctx context.Context, db *gorm.DB, device *model.ConnectedDevice) error {
	logger := middleware.GetLogger(ctx)
	// 同時アクセスでも一意制約違反にならないよう ON CONFLICT で更新する
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ip_address"}, {Name: "user_agent"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"request_count": gorm.Expr("connected_devices.request_count + 1"),
			"last_activity": time.Now(),
		}),
	}).Create(device)
	if result.Error != nil {
		logger.Error("Error upserting connected device in DB",
			"error", result.Error,
			"ip_address", device.IPAddress,
		)
		return fmt.Errorf("gormDeviceRepository.Upsert: %w", result.Error)
	}
	return nil
}

func (r *gormDeviceRepository) FindAll(ctx context.Context, db *gorm.DB) ([]*model.ConnectedDevice, error) {
	logger := middleware.GetLogger(ctx)
	var devices []*model.ConnectedDevice
	result := db.WithContext(ctx).Order("last_activity DESC").Find(&devices)
	if result.Error != nil {
		logger.Error("Error finding connected devices in DB", "error", result.Error)
		return nil, fmt.Errorf("gormDeviceRepository.FindAll: %w", result.Error)
	}
	return devices, nil
}

func (r *gormDeviceRepository) Delete(ctx context.Context, db *gorm.DB, deviceID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("device_id = ?", deviceID).Delete(&model.ConnectedDevice{})
	if result.Error != nil {
		logger.Error("Error deleting connected device in DB",
			"error", result.Error,
			"device_id", deviceID.String(),
		)
		return fmt.Errorf("gormDeviceRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormDeviceRepository) DeleteAll(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("1 = 1").Delete(&model.ConnectedDevice{})
	if result.Error != nil {
		logger.Error("Error deleting all connected devices in DB", "error", result.Error)
		return 0, fmt.Errorf("gormDeviceRepository.DeleteAll: %w", result.Error)
	}
	return result.RowsAffected, nil
}
