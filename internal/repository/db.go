package repository

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	slogGorm "github.com/orandin/slog-gorm" // slogGormはエイリアス
	"gorm.io/driver/postgres"               // postgresドライバ
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"polingo/internal/model"
)

// isDuplicateKey は一意制約違反かどうかを判定します。
// postgres は pgconn のエラーコード、sqlite は TranslateError 経由の gorm.ErrDuplicatedKey で検出します。
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// インスタンス
func NewDB(databaseURL string, appLogger *slog.Logger) (*gorm.DB, error) {

	// === slog を利用する GORM Logger の設定 ===
	var gormLogLevel gormlogger.LogLevel
	// 例: 環境変数 APP_ENV によって GORM のログレベルを切り替え
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		gormLogLevel = gormlogger.Info
	} else {
		gormLogLevel = gormlogger.Warn
	}

	// slog-gorm ロガーを作成 (slogGorm.Interface を返す)
	slogGormLogger := slogGorm.New(
		slogGorm.WithHandler(appLogger.Handler()),
		slogGorm.WithTraceAll(),
		slogGorm.WithSlowThreshold(500*time.Millisecond), // 遅いクエリの閾値を調整
	)

	// LogMode を適用して、最終的な gormlogger.Interface を取得
	finalGormLogger := slogGormLogger.LogMode(gormLogLevel)

	// === GORM 接続設定 ===
	// 自宅サーバーでは postgres、ローカル開発では sqlite ファイルを使う
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: finalGormLogger,
		// sqlite でも一意制約違反を gorm.ErrDuplicatedKey に変換させる
		TranslateError: true,
	})

	if err != nil {
		appLogger.Error("Failed to connect to database with GORM", slog.Any("error", err))
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		appLogger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		return nil, err
	}

	// Pingで接続確認
	if err = sqlDB.Ping(); err != nil {
		appLogger.Error("Error pinging database", slog.Any("error", err))
		sqlDB.Close() // Ping失敗時はここでClose
		return nil, err
	}

	// コネクションプールの設定 (推奨)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	appLogger.Info("Database connection established with GORM")

	// AutoMigrate
	if err := db.AutoMigrate(
		&model.Word{},
		&model.WordOption{},
		&model.UserSession{},
		&model.UserSessionWord{},
		&model.PracticeRecord{},
		&model.Verb{},
		&model.VerbConjugation{},
		&model.UserSessionVerb{},
		&model.VerbPracticeRecord{},
		&model.ConnectedDevice{},
	); err != nil {
		appLogger.Error("Failed to run auto migration", slog.Any("error", err))
		return nil, err
	}

	return db, nil
}
