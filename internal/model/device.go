// internal/model/device.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ConnectedDevice はAPIにアクセスしてきた端末の記録。(ip, user_agent) で同一端末とみなす。
type ConnectedDevice struct {
	DeviceID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	IPAddress    string    `gorm:"not null;uniqueIndex:idx_devices_identity" json:"ip_address"`
	UserAgent    string    `gorm:"not null;uniqueIndex:idx_devices_identity" json:"user_agent"`
	DeviceType   string    `json:"device_type"`
	Browser      string    `json:"browser"`
	OS           string    `json:"os"`
	FirstSeen    time.Time `json:"first_seen"`
	LastActivity time.Time `gorm:"index" json:"last_activity"`
	RequestCount int64     `gorm:"not null;default:0" json:"request_count"`
}

func (ConnectedDevice) TableName() string {
	return "connected_devices"
}

// DeviceResponse は端末一覧の1件分。is_active は閾値内に活動があったかどうか。
type DeviceResponse struct {
	ID           uuid.UUID `json:"id"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	DeviceType   string    `json:"device_type"`
	Browser      string    `json:"browser"`
	OS           string    `json:"os"`
	FirstSeen    time.Time `json:"first_seen"`
	LastActivity time.Time `json:"last_activity"`
	RequestCount int64     `json:"request_count"`
	IsActive     bool      `json:"is_active"`
}

// 端末一覧レスポンスDTO
type DevicesResponse struct {
	Devices     []DeviceResponse `json:"devices"`
	TotalCount  int              `json:"total_count"`
	ActiveCount int              `json:"active_count"`
}

// 管理操作の結果DTO
type AdminActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
