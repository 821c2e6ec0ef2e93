// internal/model/session.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserSession は学習者のアクティブセッション。常に1行だけ存在する（初回アクセスで生成）。
type UserSession struct {
	SessionID   uuid.UUID   `gorm:"type:uuid;primaryKey" json:"session_id"`
	LanguageSet LanguageSet `gorm:"type:varchar(16);not null;default:english" json:"language_set"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (UserSession) TableName() string {
	return "user_sessions"
}

// UserSessionWord はセッションに入っている単語。(session, word) で一意。
// enabled は出題対象かどうかのフラグで、行を消さずに切り替えられる。
type UserSessionWord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_words_identity" json:"session_id"`
	WordID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_words_identity" json:"word_id"`
	Enabled   bool      `gorm:"not null;default:true" json:"enabled"`
	AddedAt   time.Time `json:"added_at"`
}

func (UserSessionWord) TableName() string {
	return "user_session_words"
}

// セッションへの単語追加リクエストDTO
type SessionWordAdd struct {
	WordID uuid.UUID `json:"word_id" validate:"required"`
}

// セッションへの単語一括追加リクエストDTO
type SessionWordBulkAdd struct {
	WordIDs []uuid.UUID `json:"word_ids" validate:"required,min=1"`
}

// 対象言語変更リクエストDTO
type SessionLanguageUpdate struct {
	LanguageSet LanguageSet `json:"language_set" validate:"required,oneof=english ukrainian"`
}

// 出題対象フラグ切り替えリクエストDTO
type WordToggleRequest struct {
	WordID  uuid.UUID `json:"word_id" validate:"required"`
	Enabled *bool     `json:"enabled" validate:"required"`
}

// WordWithStats はセッション表示用の単語 + 成績。
// ErrorRate は表示用のパーセント値（未出題は 0.0）。並び順は
// サービス層の優先度比較（未出題を最後に回す）で決まる。
type WordWithStats struct {
	ID              uuid.UUID `json:"id"`
	Polish          string    `json:"polish"`
	English         string    `json:"english"`
	Ukrainian       string    `json:"ukrainian"`
	TotalAttempts   int64     `json:"total_attempts"`
	CorrectAttempts int64     `json:"correct_attempts"`
	ErrorRate       float64   `json:"error_rate"`
	Enabled         bool      `json:"enabled"`
	AddedAt         time.Time `json:"-"`
}

// ValueFor は指定言語の表記を返す。Word.ValueFor と同じ規則。
func (w *WordWithStats) ValueFor(lang WordLanguage) string {
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

// SessionState はセッションの現在状態（優先度順の単語リスト付き）
type SessionState struct {
	LanguageSet LanguageSet      `json:"language_set"`
	Words       []*WordWithStats `json:"words"`
}
