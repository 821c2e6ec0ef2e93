// internal/model/verb.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Verb はポーランド語動詞の原形と訳語
type Verb struct {
	VerbID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Infinitive string    `gorm:"not null;uniqueIndex" json:"infinitive"`
	English    string    `gorm:"not null" json:"english"`
	Ukrainian  string    `gorm:"not null" json:"ukrainian"`
	CreatedAt  time.Time `json:"-"`
}

func (Verb) TableName() string {
	return "verbs"
}

// VerbConjugation は人称ごとの活用形。(verb, pronoun) で一意。
type VerbConjugation struct {
	ConjugationID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	VerbID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_verb_conjugations_identity" json:"verb_id"`
	Pronoun        Pronoun   `gorm:"type:varchar(16);not null;uniqueIndex:idx_verb_conjugations_identity" json:"pronoun"`
	ConjugatedForm string    `gorm:"not null" json:"conjugated_form"`
}

func (VerbConjugation) TableName() string {
	return "verb_conjugations"
}

// UserSessionVerb はセッションに入っている動詞。(session, verb) で一意。
type UserSessionVerb struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_verbs_identity" json:"session_id"`
	VerbID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_verbs_identity" json:"verb_id"`
	Enabled   bool      `gorm:"not null;default:true" json:"enabled"`
	AddedAt   time.Time `json:"added_at"`
}

func (UserSessionVerb) TableName() string {
	return "user_session_verbs"
}

// VerbPracticeRecord は語尾クイズ1問の結果。作成後は変更しない。
type VerbPracticeRecord struct {
	RecordID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"record_id"`
	VerbID       uuid.UUID `gorm:"type:uuid;not null;index" json:"verb_id"`
	Pronoun      Pronoun   `gorm:"type:varchar(16);not null" json:"pronoun"`
	WasCorrect   bool      `gorm:"not null" json:"was_correct"`
	PracticeDate string    `gorm:"type:varchar(10);not null;index" json:"practice_date"`
	CreatedAt    time.Time `json:"created_at"`
}

func (VerbPracticeRecord) TableName() string {
	return "verb_practice_records"
}

// 動詞追加リクエストDTO。text は英語かウクライナ語の動詞。
type VerbAddRequest struct {
	Text           string `json:"text" validate:"required"`
	SourceLanguage string `json:"source_language" validate:"required,oneof=english ukrainian"`
}

// 活用形の表示用DTO
type VerbConjugationRead struct {
	Pronoun        Pronoun `json:"pronoun"`
	ConjugatedForm string  `json:"conjugated_form"`
}

// VerbWithConjugations はセッション表示用の動詞 + 活用形 + 成績
type VerbWithConjugations struct {
	ID              uuid.UUID             `json:"id"`
	Infinitive      string                `json:"infinitive"`
	English         string                `json:"english"`
	Ukrainian       string                `json:"ukrainian"`
	Conjugations    []VerbConjugationRead `json:"conjugations"`
	TotalAttempts   int64                 `json:"total_attempts"`
	CorrectAttempts int64                 `json:"correct_attempts"`
	ErrorRate       float64               `json:"error_rate"`
	Enabled         bool                  `json:"enabled"`
	AddedAt         time.Time             `json:"-"`
}

// 動詞追加レスポンスDTO
type VerbAddResponse struct {
	Success   bool                  `json:"success"`
	Verb      *VerbWithConjugations `json:"verb"`
	Message   string                `json:"message"`
	Duplicate bool                  `json:"duplicate"`
}

// 動詞セッション状態DTO
type VerbSessionState struct {
	Verbs []*VerbWithConjugations `json:"verbs"`
}

// セッションへの動詞追加リクエストDTO
type SessionVerbAdd struct {
	VerbID uuid.UUID `json:"verb_id" validate:"required"`
}

// 動詞の出題対象フラグ切り替えリクエストDTO
type VerbToggleRequest struct {
	VerbID  uuid.UUID `json:"verb_id" validate:"required"`
	Enabled *bool     `json:"enabled" validate:"required"`
}

// 語尾クイズ問題DTO
type EndingsQuestion struct {
	VerbID        uuid.UUID `json:"verb_id"`
	Infinitive    string    `json:"infinitive"`
	English       string    `json:"english"`
	Ukrainian     string    `json:"ukrainian"`
	Pronoun       Pronoun   `json:"pronoun"`
	CorrectAnswer string    `json:"correct_answer"`
	Options       []string  `json:"options"`
}

// 語尾クイズ回答リクエストDTO
type EndingsValidationRequest struct {
	VerbID  uuid.UUID `json:"verb_id" validate:"required"`
	Pronoun string    `json:"pronoun" validate:"required"`
	Answer  string    `json:"answer" validate:"required"`
}

// 語尾クイズ回答レスポンスDTO
type EndingsValidationResponse struct {
	WasCorrect    bool                  `json:"was_correct"`
	CorrectAnswer string                `json:"correct_answer"`
	Stats         *EndingsStatsResponse `json:"stats"`
}

// EndingsStatsResponse は語尾クイズの統計（単語練習とは独立に集計）
type EndingsStatsResponse struct {
	TodayPercentage   float64 `json:"today_percentage"`
	Trend             float64 `json:"trend"`
	OverallPercentage float64 `json:"overall_percentage"`
	AvailableVerbs    int64   `json:"available_verbs"`
}
