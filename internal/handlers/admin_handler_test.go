// internal/handlers/admin_handler_test.go
package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"polingo/internal/handlers"
	"polingo/internal/model"

	svc_mocks "polingo/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Test GetDevices ---
func TestAdminHandler_GetDevices(t *testing.T) {
	mockService := new(svc_mocks.AdminService)
	handler := handlers.NewAdminHandler(mockService)

	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "正常系: 端末一覧を取得",
			setupMock: func() {
				resp := &model.DevicesResponse{
					Devices: []model.DeviceResponse{
						{
							ID:           uuid.New(),
							IPAddress:    "203.0.113.7",
							UserAgent:    "Mozilla/5.0",
							DeviceType:   "desktop",
							Browser:      "Chrome",
							OS:           "Windows",
							LastActivity: time.Now(),
							RequestCount: 42,
							IsActive:     true,
						},
					},
					TotalCount:  1,
					ActiveCount: 1,
				}
				mockService.On("ListDevices", mock.Anything).Return(resp, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_count":1`,
		},
		{
			name: "正常系: 端末が未記録でも空配列",
			setupMock: func() {
				resp := &model.DevicesResponse{Devices: []model.DeviceResponse{}}
				mockService.On("ListDevices", mock.Anything).Return(resp, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"devices":[]`,
		},
		{
			name: "異常系: サービスエラー",
			setupMock: func() {
				appErr := model.NewAppError("INTERNAL_SERVER_ERROR", "接続端末の取得に失敗しました。", "", errors.New("db error"))
				mockService.On("ListDevices", mock.Anything).Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "接続端末の取得に失敗しました。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodGet, "/api/admin/devices", nil)

			rr := httptest.NewRecorder()
			handler.GetDevices(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test DeleteDevice ---
func TestAdminHandler_DeleteDevice(t *testing.T) {
	mockService := new(svc_mocks.AdminService)
	handler := handlers.NewAdminHandler(mockService)

	testDeviceID := uuid.New()

	tests := []struct {
		name           string
		deviceIDParam  string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:          "正常系: 端末記録を削除",
			deviceIDParam: testDeviceID.String(),
			setupMock: func() {
				resp := &model.AdminActionResponse{Success: true, Message: "Device removed"}
				mockService.On("DeleteDevice", mock.Anything, testDeviceID).Return(resp, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"success":true`,
		},
		{
			name:           "異常系: 不正なUUID形式",
			deviceIDParam:  "invalid-uuid",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "device_idの形式が正しくありません。",
		},
		{
			name:          "異常系: 端末記録が存在しない",
			deviceIDParam: testDeviceID.String(),
			setupMock: func() {
				appErr := model.NewAppError("DEVICE_NOT_FOUND", "指定された端末が見つかりません。", "device_id", model.ErrNotFound)
				mockService.On("DeleteDevice", mock.Anything, testDeviceID).Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "DEVICE_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			ctx := contextWithChiURLParam(context.Background(), "device_id", tt.deviceIDParam)
			req := newJsonRequest(t, http.MethodDelete, "/api/admin/devices/"+tt.deviceIDParam, nil)
			req = req.WithContext(ctx)

			rr := httptest.NewRecorder()
			handler.DeleteDevice(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}

// --- Test ClearDevices ---
func TestAdminHandler_ClearDevices(t *testing.T) {
	mockService := new(svc_mocks.AdminService)
	handler := handlers.NewAdminHandler(mockService)

	tests := []struct {
		name           string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "正常系: 全端末記録を削除",
			setupMock: func() {
				resp := &model.AdminActionResponse{Success: true, Message: "Removed 4 devices"}
				mockService.On("ClearDevices", mock.Anything).Return(resp, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Removed 4 devices",
		},
		{
			name: "異常系: サービスエラー",
			setupMock: func() {
				appErr := model.NewAppError("INTERNAL_SERVER_ERROR", "端末記録の全削除に失敗しました。", "", errors.New("db error"))
				mockService.On("ClearDevices", mock.Anything).Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "端末記録の全削除に失敗しました。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.Mock = mock.Mock{}
			tt.setupMock()

			req := newJsonRequest(t, http.MethodDelete, "/api/admin/devices", nil)

			rr := httptest.NewRecorder()
			handler.ClearDevices(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
