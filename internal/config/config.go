// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	OpenAI struct {
		APIKey          string `mapstructure:"api_key"`
		BaseURL         string `mapstructure:"base_url"`
		Model           string `mapstructure:"model"`
		TranscribeModel string `mapstructure:"transcribe_model"`
		TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	} `mapstructure:"openai"`
	App struct {
		InitialWordsLimit            int `mapstructure:"initial_words_limit"`
		DeviceActiveThresholdMinutes int `mapstructure:"device_active_threshold_minutes"`
	} `mapstructure:"app"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数を自動で読み込む (例: APP_SERVER_PORT)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	// OPENAI_API_KEY は接頭辞なしの環境変数から直接読む（デプロイ先の .env に合わせる）
	viper.BindEnv("openai.api_key", "OPENAI_API_KEY")
	viper.BindEnv("database.url", "DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Database.URL == "" {
		log.Printf("Database URL not set, using default '%s'", DefaultDatabaseURL)
		Cfg.Database.URL = DefaultDatabaseURL
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if len(Cfg.CORS.AllowedOrigins) == 0 {
		Cfg.CORS.AllowedOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}
	if len(Cfg.CORS.AllowedMethods) == 0 {
		Cfg.CORS.AllowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	if len(Cfg.CORS.AllowedHeaders) == 0 {
		Cfg.CORS.AllowedHeaders = []string{"*"}
	}
	if Cfg.OpenAI.BaseURL == "" {
		Cfg.OpenAI.BaseURL = DefaultOpenAIBaseURL
	}
	if Cfg.OpenAI.Model == "" {
		Cfg.OpenAI.Model = DefaultOpenAIModel
	}
	if Cfg.OpenAI.TranscribeModel == "" {
		Cfg.OpenAI.TranscribeModel = DefaultTranscribeModel
	}
	if Cfg.OpenAI.TimeoutSeconds <= 0 {
		Cfg.OpenAI.TimeoutSeconds = DefaultOracleTimeoutSeconds
	}
	if Cfg.App.InitialWordsLimit <= 0 {
		Cfg.App.InitialWordsLimit = DefaultInitialWordsLimit
	}
	if Cfg.App.DeviceActiveThresholdMinutes <= 0 {
		Cfg.App.DeviceActiveThresholdMinutes = DefaultDeviceActiveThresholdMinutes
	}

	if Cfg.OpenAI.APIKey == "" {
		log.Println("Warning: OPENAI_API_KEY is not set. Oracle-backed endpoints will fail.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Log Level: %s", Cfg.Log.Level)

	return nil
}
