// internal/model/practice.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PracticeRecord は1回の解答の結果。作成後は変更しない。
// PracticeDate は "2006-01-02" 形式の日付文字列。postgres と sqlite の両方で
// 同じ比較・集計が成立するように日付は文字列カラムとして持つ。
type PracticeRecord struct {
	RecordID     uuid.UUID         `gorm:"type:uuid;primaryKey" json:"record_id"`
	WordID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"word_id"`
	LanguageSet  LanguageSet       `gorm:"type:varchar(16);not null" json:"language_set"`
	Direction    PracticeDirection `gorm:"type:varchar(16);not null" json:"direction"`
	WasCorrect   bool              `gorm:"not null" json:"was_correct"`
	PracticeDate string            `gorm:"type:varchar(10);not null;index" json:"practice_date"`
	CreatedAt    time.Time         `json:"created_at"`
}

func (PracticeRecord) TableName() string {
	return "practice_records"
}

// PracticeDay は日付を PracticeRecord.PracticeDate の形式に変換する
func PracticeDay(t time.Time) string {
	return t.Format("2006-01-02")
}

// matched_via の値。どの層で正解と判定されたかを表す。
type MatchedVia string

const (
	MatchedViaDirect MatchedVia = "direct"
	MatchedViaOption MatchedVia = "option"
	MatchedViaLLM    MatchedVia = "llm"
	MatchedViaNone   MatchedVia = "none"
)

// 判定済み結果の記録リクエストDTO
type PracticeSubmission struct {
	WordID      uuid.UUID         `json:"word_id" validate:"required"`
	LanguageSet LanguageSet       `json:"language_set" validate:"required,oneof=english ukrainian"`
	Direction   PracticeDirection `json:"direction" validate:"required,oneof=translation writing"`
	WasCorrect  *bool             `json:"was_correct" validate:"required"`
}

// 回答検証リクエストDTO
type PracticeValidationRequest struct {
	WordID      uuid.UUID         `json:"word_id" validate:"required"`
	LanguageSet LanguageSet       `json:"language_set" validate:"required,oneof=english ukrainian"`
	Direction   PracticeDirection `json:"direction" validate:"required,oneof=translation writing"`
	Answer      string            `json:"answer" validate:"required"`
}

// スキップリクエストDTO
type PracticeSkipRequest struct {
	WordID      uuid.UUID         `json:"word_id" validate:"required"`
	LanguageSet LanguageSet       `json:"language_set" validate:"required,oneof=english ukrainian"`
	Direction   PracticeDirection `json:"direction" validate:"required,oneof=translation writing"`
}

// 回答検証レスポンスDTO
type PracticeValidationResponse struct {
	WasCorrect    bool           `json:"was_correct"`
	CorrectAnswer string         `json:"correct_answer"`
	MatchedVia    MatchedVia     `json:"matched_via"`
	Alternatives  []string       `json:"alternatives"`
	Stats         *StatsResponse `json:"stats"`
}

// StatsResponse は単語練習の統計。パーセントは小数1桁丸め、0/0 は 0.0。
type StatsResponse struct {
	TodayPercentage   float64 `json:"today_percentage"`
	Trend             float64 `json:"trend"`
	OverallPercentage float64 `json:"overall_percentage"`
	AvailableWords    int64   `json:"available_words"`
}

// 翻訳4択問題の方向
const (
	QuestionFromPolish = "from_polish"
	QuestionToPolish   = "to_polish"
)

// 翻訳4択問題DTO。options は正解1つ + 誤答3つをシャッフルしたもの。
type TranslationQuestion struct {
	WordID        uuid.UUID `json:"word_id"`
	Polish        string    `json:"polish"`
	English       string    `json:"english"`
	Ukrainian     string    `json:"ukrainian"`
	Prompt        string    `json:"prompt"`
	CorrectAnswer string    `json:"correct_answer"`
	Options       []string  `json:"options"`
	Direction     string    `json:"direction"`
}

// 発音検証レスポンスDTO
type PronunciationValidationResponse struct {
	WasCorrect      bool           `json:"was_correct"`
	ExpectedWord    string         `json:"expected_word"`
	TranscribedText string         `json:"transcribed_text"`
	Feedback        string         `json:"feedback"`
	SimilarityScore float64        `json:"similarity_score"`
	Stats           *StatsResponse `json:"stats"`
}
