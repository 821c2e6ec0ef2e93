// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Word はポーランド語の単語とその訳語を表します
type Word struct {
	WordID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Polish    string    `gorm:"not null;index" json:"polish"`
	English   string    `gorm:"not null" json:"english"`
	Ukrainian string    `gorm:"not null" json:"ukrainian"`
	CreatedAt time.Time `json:"-"`
}

func (Word) TableName() string {
	return "words"
}

// ValueFor は指定言語の表記を返す。言語は3言語に固定されている。
func (w *Word) ValueFor(lang WordLanguage) string {
	switch lang {
	case WordLanguagePolish:
		return w.Polish
	case WordLanguageEnglish:
		return w.English
	case WordLanguageUkrainian:
		return w.Ukrainian
	}
	return ""
}

// WordOption はオラクルが正解と認めた別解。(word, language, value) で一意。
type WordOption struct {
	OptionID  uuid.UUID    `gorm:"type:uuid;primaryKey" json:"-"`
	WordID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_word_options_identity" json:"word_id"`
	Language  WordLanguage `gorm:"type:varchar(16);not null;uniqueIndex:idx_word_options_identity" json:"language"`
	Value     string       `gorm:"not null;uniqueIndex:idx_word_options_identity" json:"value"`
	CreatedAt time.Time    `json:"-"`
}

func (WordOption) TableName() string {
	return "word_options"
}

// 単語照合の出所
const (
	WordSourceDatabase = "database"
	WordSourceLLM      = "llm"
)

// 単語照合リクエストDTO
type WordCheckRequest struct {
	Text string `json:"text" validate:"required"`
}

// 単語一括照合リクエストDTO（カンマ区切り）
type WordCheckBulkRequest struct {
	Text string `json:"text" validate:"required"`
}

// 単語照合レスポンスDTO
type WordCheckResponse struct {
	Found        bool          `json:"found"`
	Word         *Word         `json:"word"`
	MatchedField *WordLanguage `json:"matched_field"`
	Created      bool          `json:"created"`
	Source       string        `json:"source,omitempty"`
}

// 一括照合の1フレーズ分の結果
type WordCheckResult struct {
	Text         string        `json:"text"`
	Found        bool          `json:"found"`
	Word         *Word         `json:"word"`
	MatchedField *WordLanguage `json:"matched_field"`
	Created      bool          `json:"created"`
	Source       string        `json:"source,omitempty"`
	Duplicate    bool          `json:"duplicate"`
}

// 一括照合レスポンスDTO。added + duplicate + failed = 空でないフレーズ数。
type WordCheckBulkResponse struct {
	Results        []WordCheckResult `json:"results"`
	AddedCount     int               `json:"added_count"`
	DuplicateCount int               `json:"duplicate_count"`
	FailedCount    int               `json:"failed_count"`
}
