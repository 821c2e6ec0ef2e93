//go:generate mockery --name Client --output ./mocks --outpkg mocks --case=underscore
// internal/llm/client.go
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"polingo/internal/config"
	"polingo/internal/model"
)

// WordResolution は単語の正規化と三言語への翻訳結果です。
type WordResolution struct {
	DetectedLanguage string `json:"detected_language"`
	CorrectedInput   string `json:"corrected_input"`
	Polish           string `json:"polish"`
	English          string `json:"english"`
	Ukrainian        string `json:"ukrainian"`
}

// TranslationJudgement は翻訳回答の判定結果です。
type TranslationJudgement struct {
	IsCorrect        bool   `json:"is_correct"`
	NormalizedAnswer string `json:"normalized_answer"`
	Rationale        string `json:"rationale"`
}

// PronunciationJudgement は発音（音声入力）の判定結果です。
type PronunciationJudgement struct {
	IsCorrect       bool    `json:"is_correct"`
	Feedback        string  `json:"feedback"`
	SimilarityScore float64 `json:"similarity_score"`
}

// ConjugationResult は動詞の現在形活用の生成結果です。
// Infinitive が空の場合は「ポーランド語の動詞を特定できなかった」ことを意味し、
// エラーではなく呼び出し側が失敗応答に変換します。
type ConjugationResult struct {
	Infinitive   string                   `json:"infinitive"`
	English      string                   `json:"english"`
	Ukrainian    string                   `json:"ukrainian"`
	Conjugations map[model.Pronoun]string `json:"conjugations"`
}

// TranslationInput は翻訳判定に渡す文脈情報です。
type TranslationInput struct {
	Polish         string
	Answer         string
	Direction      model.PracticeDirection
	TargetLanguage model.WordLanguage
	Expected       string
}

// Client は学習判定に使う LLM / 音声認識 API へのアクセスを抽象化します。
// 呼び出しは1リクエスト1回のみで、リトライは行いません。
type Client interface {
	ResolveWord(ctx context.Context, text string) (*WordResolution, error)
	ValidateTranslation(ctx context.Context, in TranslationInput) (*TranslationJudgement, error)
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
	EvaluatePronunciation(ctx context.Context, expectedWord, transcribedText string) (*PronunciationJudgement, error)
	GenerateConjugations(ctx context.Context, verb string, sourceLanguage model.LanguageSet) (*ConjugationResult, error)
}

type openAIClient struct {
	apiKey          string
	baseURL         string
	model           string
	transcribeModel string
	httpClient      *http.Client
	logger          *slog.Logger
}

func NewOpenAIClient(cfg *config.Config, logger *slog.Logger) Client {
	return &openAIClient{
		apiKey:          cfg.OpenAI.APIKey,
		baseURL:         strings.TrimRight(cfg.OpenAI.BaseURL, "/"),
		model:           cfg.OpenAI.Model,
		transcribeModel: cfg.OpenAI.TranscribeModel,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second,
		},
		logger: logger.With(slog.String("component", "OpenAIClient")),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// postChatJSON は JSON モードの chat completion を1回だけ実行し、
// 返ってきた JSON 文字列を out にデコードします。
func (c *openAIClient) postChatJSON(ctx context.Context, temperature float64, system, user string, out any) error {
	reqBody := chatRequest{
		Model:       c.model,
		Temperature: temperature,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	reqBody.ResponseFormat.Type = "json_object"

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("llm: marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("llm: build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Chat completion request failed", slog.Any("error", err))
		return fmt.Errorf("%w: %v", model.ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", model.ErrOracleUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Chat completion returned non-2xx",
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncateForLog(raw)),
		)
		return fmt.Errorf("%w: status %d", model.ErrOracleUnavailable, resp.StatusCode)
	}

	var chat chatResponse
	if err := json.Unmarshal(raw, &chat); err != nil {
		return fmt.Errorf("%w: decode response: %v", model.ErrOracleIncomplete, err)
	}
	if chat.Error != nil {
		return fmt.Errorf("%w: api error: %s", model.ErrOracleUnavailable, chat.Error.Message)
	}
	if len(chat.Choices) == 0 {
		return fmt.Errorf("%w: no choices returned", model.ErrOracleIncomplete)
	}

	content := chat.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		c.logger.Warn("Chat completion content is not valid JSON", slog.String("content", content))
		return fmt.Errorf("%w: parse content: %v", model.ErrOracleIncomplete, err)
	}
	return nil
}

func (c *openAIClient) ResolveWord(ctx context.Context, text string) (*WordResolution, error) {
	system := "You are a careful linguist. Given a single word or short phrase in Polish, English, or Ukrainian, " +
		"correct spelling if needed and provide translations in the other two languages. " +
		"Return JSON only with keys: detected_language, corrected_input, polish, english, ukrainian. " +
		"Use lowercase for the translations unless proper noun."

	var resolution WordResolution
	if err := c.postChatJSON(ctx, 0.2, system, text, &resolution); err != nil {
		return nil, fmt.Errorf("llm.ResolveWord: %w", err)
	}

	// 三言語がすべて埋まっていない場合は辞書登録に使えない
	if strings.TrimSpace(resolution.Polish) == "" ||
		strings.TrimSpace(resolution.English) == "" ||
		strings.TrimSpace(resolution.Ukrainian) == "" {
		return nil, fmt.Errorf("llm.ResolveWord: %w: missing translations", model.ErrOracleIncomplete)
	}
	return &resolution, nil
}

func (c *openAIClient) ValidateTranslation(ctx context.Context, in TranslationInput) (*TranslationJudgement, error) {
	system := "You are a strict language evaluator. Decide if the learner answer is a valid translation " +
		"for the given Polish term. If the answer is correct but slightly off in spelling, return the corrected form. " +
		"Return JSON only with keys: is_correct (boolean), normalized_answer (string), rationale (string)."
	user := fmt.Sprintf(
		"Polish term: %s\nExpected (%s) hint: %s\nDirection: %s\nLearner answer (%s): %s",
		in.Polish, in.TargetLanguage, in.Expected, in.Direction, in.TargetLanguage, in.Answer,
	)

	var judgement TranslationJudgement
	if err := c.postChatJSON(ctx, 0.0, system, user, &judgement); err != nil {
		return nil, fmt.Errorf("llm.ValidateTranslation: %w", err)
	}
	return &judgement, nil
}

func (c *openAIClient) Transcribe(ctx context.Context, audio []byte, filename string) (string, error) {
	if filename == "" {
		filename = "audio.webm"
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("llm.Transcribe: create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("llm.Transcribe: write audio: %w", err)
	}
	_ = writer.WriteField("model", c.transcribeModel)
	// 発音練習はポーランド語のみ
	_ = writer.WriteField("language", "pl")
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("llm.Transcribe: close writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("llm.Transcribe: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Transcription request failed", slog.Any("error", err))
		return "", fmt.Errorf("llm.Transcribe: %w: %v", model.ErrOracleUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llm.Transcribe: %w: read response: %v", model.ErrOracleUnavailable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Transcription returned non-2xx",
			slog.Int("status", resp.StatusCode),
			slog.String("body", truncateForLog(raw)),
		)
		return "", fmt.Errorf("llm.Transcribe: %w: status %d", model.ErrOracleUnavailable, resp.StatusCode)
	}

	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("llm.Transcribe: %w: decode response: %v", model.ErrOracleIncomplete, err)
	}
	return strings.TrimSpace(parsed.Text), nil
}

func (c *openAIClient) EvaluatePronunciation(ctx context.Context, expectedWord, transcribedText string) (*PronunciationJudgement, error) {
	system := "You are a Polish language pronunciation evaluator. Compare the expected Polish word " +
		"with what was transcribed from the learner's speech. Consider that speech-to-text " +
		"may have minor variations. Be lenient with capitalization and punctuation. " +
		"Return JSON only with keys: is_correct (boolean), feedback (string with helpful pronunciation tips if incorrect), " +
		"similarity_score (float 0-1 indicating how close the pronunciation was)."
	user := fmt.Sprintf("Expected Polish word: %s\nTranscribed speech: %s", expectedWord, transcribedText)

	var judgement PronunciationJudgement
	if err := c.postChatJSON(ctx, 0.0, system, user, &judgement); err != nil {
		return nil, fmt.Errorf("llm.EvaluatePronunciation: %w", err)
	}
	return &judgement, nil
}

func (c *openAIClient) GenerateConjugations(ctx context.Context, verb string, sourceLanguage model.LanguageSet) (*ConjugationResult, error) {
	system := "You are a Polish language expert. Given a verb in English or Ukrainian, " +
		"provide the Polish infinitive and all present tense conjugations. " +
		"Return JSON only with keys: " +
		"infinitive (Polish infinitive form), " +
		"english (English translation), " +
		"ukrainian (Ukrainian translation), " +
		"conjugations (object with keys: ja, ty, on_ona_ono, my, wy, oni_one - each containing the conjugated Polish form). " +
		`Example for 'to do': {"infinitive": "robić", "english": "to do", "ukrainian": "робити", ` +
		`"conjugations": {"ja": "robię", "ty": "robisz", "on_ona_ono": "robi", "my": "robimy", "wy": "robicie", "oni_one": "robią"}}`
	user := fmt.Sprintf("Verb (%s): %s", sourceLanguage, verb)

	var parsed struct {
		Infinitive   string            `json:"infinitive"`
		English      string            `json:"english"`
		Ukrainian    string            `json:"ukrainian"`
		Conjugations map[string]string `json:"conjugations"`
	}
	if err := c.postChatJSON(ctx, 0.2, system, user, &parsed); err != nil {
		return nil, fmt.Errorf("llm.GenerateConjugations: %w", err)
	}

	// 既知の人称で空でないものだけを採用する
	conjugations := make(map[model.Pronoun]string, len(model.Pronouns))
	for _, pronoun := range model.Pronouns {
		form := strings.TrimSpace(parsed.Conjugations[string(pronoun)])
		if form != "" {
			conjugations[pronoun] = form
		}
	}

	return &ConjugationResult{
		Infinitive:   strings.TrimSpace(parsed.Infinitive),
		English:      strings.TrimSpace(parsed.English),
		Ukrainian:    strings.TrimSpace(parsed.Ukrainian),
		Conjugations: conjugations,
	}, nil
}

// truncateForLog はエラーボディのログ出力を短く抑えます。
func truncateForLog(raw []byte) string {
	const maxLen = 512
	s := string(raw)
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}
