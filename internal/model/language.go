// internal/model/language.go
package model

import "strings"

// LanguageSet はセッションで練習対象とする言語
type LanguageSet string

const (
	LanguageSetEnglish   LanguageSet = "english"
	LanguageSetUkrainian LanguageSet = "ukrainian"
)

func (s LanguageSet) Valid() bool {
	switch s {
	case LanguageSetEnglish, LanguageSetUkrainian:
		return true
	}
	return false
}

// WordLanguage 変換。LanguageSet は常に対象言語のどちらかを指す。
func (s LanguageSet) WordLanguage() WordLanguage {
	switch s {
	case LanguageSetUkrainian:
		return WordLanguageUkrainian
	default:
		return WordLanguageEnglish
	}
}

// WordLanguage は単語が持つ3言語のいずれか
type WordLanguage string

const (
	WordLanguagePolish    WordLanguage = "polish"
	WordLanguageEnglish   WordLanguage = "english"
	WordLanguageUkrainian WordLanguage = "ukrainian"
)

// WordLanguages は単語照合時に走査する順序（polish → english → ukrainian）
var WordLanguages = []WordLanguage{
	WordLanguagePolish,
	WordLanguageEnglish,
	WordLanguageUkrainian,
}

// PracticeDirection は出題の方向。writing は常にポーランド語（基準言語）を答えさせる。
type PracticeDirection string

const (
	DirectionTranslation PracticeDirection = "translation"
	DirectionWriting     PracticeDirection = "writing"
)

// ResolveTargetLanguage は (direction, language_set) から採点対象の言語を決定する。
// writing はポーランド語固定、それ以外はセッションの対象言語。
func ResolveTargetLanguage(direction PracticeDirection, set LanguageSet) WordLanguage {
	if direction == DirectionWriting {
		return WordLanguagePolish
	}
	return set.WordLanguage()
}

// Pronoun は動詞活用の人称スロット
type Pronoun string

const (
	PronounJa       Pronoun = "ja"
	PronounTy       Pronoun = "ty"
	PronounOnOnaOno Pronoun = "on_ona_ono"
	PronounMy       Pronoun = "my"
	PronounWy       Pronoun = "wy"
	PronounOniOne   Pronoun = "oni_one"
)

// Pronouns は活用生成時に採用するスロットの定義順
var Pronouns = []Pronoun{
	PronounJa,
	PronounTy,
	PronounOnOnaOno,
	PronounMy,
	PronounWy,
	PronounOniOne,
}

// ParsePronoun は入力文字列を既知の人称スロットに解決する
func ParsePronoun(s string) (Pronoun, bool) {
	for _, p := range Pronouns {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// Normalize は回答比較用の正規化キーを返す（前後空白除去 + 小文字化）。
// マッチング・選択肢の重複判定・語尾クイズの採点はすべてこのキーの一致で判定する。
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
