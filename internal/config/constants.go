// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "polingo"
	AppVersion = "0.3.0"
)

// デフォルト設定値
const (
	DefaultServerPort  = ":8080"
	DefaultDatabaseURL = "file:polingo.db?_pragma=foreign_keys(1)"
	DefaultLogLevel    = "info"

	DefaultInitialWordsLimit            = 10
	DefaultDeviceActiveThresholdMinutes = 5
)

// OpenAI 関連のデフォルト
const (
	DefaultOpenAIBaseURL        = "https://api.openai.com/v1"
	DefaultOpenAIModel          = "gpt-4.1-mini"
	DefaultTranscribeModel      = "whisper-1"
	DefaultOracleTimeoutSeconds = 30
)
