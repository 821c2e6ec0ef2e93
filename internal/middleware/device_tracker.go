package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
)

// DeviceRecorder は接続元デバイスの記録処理を提供します。
type DeviceRecorder interface {
	TrackDevice(ctx context.Context, ipAddress, userAgent string) error
}

// DeviceTrackingMiddleware はAPIへのアクセス元デバイスを記録します。
// 記録に失敗した場合はログに残し、リクエスト処理自体は続行します。
func DeviceTrackingMiddleware(recorder DeviceRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := recorder.TrackDevice(r.Context(), clientIP(r), r.UserAgent()); err != nil {
				GetLogger(r.Context()).Warn("Failed to track device", slog.Any("error", err))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP は RemoteAddr からポート部を取り除いたIPアドレスを返します。
// RealIP ミドルウェア適用後はポートなしの値になることがあるため、その場合はそのまま返します。
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
