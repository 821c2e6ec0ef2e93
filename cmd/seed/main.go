// cmd/seed/main.go
// words テーブルが空のときに基礎単語セットを投入するユーティリティ。
// 実行例: go run ./cmd/seed
package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"polingo/internal/config"
	"polingo/internal/model"
	"polingo/internal/repository"
)

// starterWords は学習開始用の基礎語彙です。すでに単語が1件でも
// 登録されている場合は投入をスキップします（再実行しても安全）。
var starterWords = []model.Word{
	{Polish: "kot", English: "cat", Ukrainian: "кіт"},
	{Polish: "pies", English: "dog", Ukrainian: "пес"},
	{Polish: "dom", English: "house", Ukrainian: "дім"},
	{Polish: "woda", English: "water", Ukrainian: "вода"},
	{Polish: "chleb", English: "bread", Ukrainian: "хліб"},
	{Polish: "mleko", English: "milk", Ukrainian: "молоко"},
	{Polish: "jabłko", English: "apple", Ukrainian: "яблуко"},
	{Polish: "książka", English: "book", Ukrainian: "книжка"},
	{Polish: "stół", English: "table", Ukrainian: "стіл"},
	{Polish: "krzesło", English: "chair", Ukrainian: "стілець"},
	{Polish: "okno", English: "window", Ukrainian: "вікно"},
	{Polish: "drzwi", English: "door", Ukrainian: "двері"},
	{Polish: "samochód", English: "car", Ukrainian: "автомобіль"},
	{Polish: "miasto", English: "city", Ukrainian: "місто"},
	{Polish: "ulica", English: "street", Ukrainian: "вулиця"},
	{Polish: "szkoła", English: "school", Ukrainian: "школа"},
	{Polish: "praca", English: "work", Ukrainian: "робота"},
	{Polish: "czas", English: "time", Ukrainian: "час"},
	{Polish: "dzień", English: "day", Ukrainian: "день"},
	{Polish: "noc", English: "night", Ukrainian: "ніч"},
	{Polish: "rok", English: "year", Ukrainian: "рік"},
	{Polish: "człowiek", English: "person", Ukrainian: "людина"},
	{Polish: "dziecko", English: "child", Ukrainian: "дитина"},
	{Polish: "przyjaciel", English: "friend", Ukrainian: "друг"},
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// .env があれば読み込む（無ければ環境変数をそのまま使う）
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := config.LoadConfig("../configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// NewDB が AutoMigrate を行うため、初回実行でもテーブルは作成済みになる
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		}
	}()

	var count int64
	if err := db.Model(&model.Word{}).Count(&count).Error; err != nil {
		slog.Error("Error counting existing words", slog.Any("error", err))
		os.Exit(1)
	}
	if count > 0 {
		slog.Info("Words table already populated, skipping seed", slog.Int64("existing_words", count))
		return
	}

	words := make([]model.Word, len(starterWords))
	copy(words, starterWords)
	for i := range words {
		words[i].WordID = uuid.New()
	}

	if err := db.Create(&words).Error; err != nil {
		slog.Error("Error inserting starter words", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Seeded starter vocabulary", slog.Int("words", len(words)))
}
