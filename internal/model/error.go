// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrConflict       = errors.New("resource conflict") // 重複エラー用

	// 外部オラクル（LLM・音声認識）呼び出しのエラー。
	// ErrOracleUnavailable は呼び出し自体の失敗（ネットワーク・タイムアウト・非2xx）、
	// ErrOracleIncomplete は応答は返ったが必須フィールドが欠けている場合。
	// どちらも「不正解」には変換しない。
	ErrOracleUnavailable = errors.New("oracle unavailable")
	ErrOracleIncomplete  = errors.New("oracle response incomplete")
)

// ErrorDetail はクライアントに返すエラーの詳細情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコード・メッセージと根本原因のエラーを保持するアプリケーションエラー。
// errors.Is / errors.As でセンチネルエラーまで辿れるように Unwrap を実装する。
type AppError struct {
	Detail  ErrorDetail
	Wrapped error
}

func NewAppError(code, message, field string, wrapped error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Wrapped: wrapped,
	}
}

func (e *AppError) Error() string {
	if e.Wrapped != nil {
		return e.Detail.Code + ": " + e.Detail.Message + " (" + e.Wrapped.Error() + ")"
	}
	return e.Detail.Code + ": " + e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Wrapped
}
