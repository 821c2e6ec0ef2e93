// internal/handlers/helpers_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// --- ヘルパー: JSONリクエストの作成 (パッケージ内で共有) ---
// body が string の場合はそのまま送信します(不正なJSONを送るテスト用)。
// それ以外は json.Marshal した結果を送信します。
func newJsonRequest(t *testing.T, method string, target string, body interface{}) *http.Request {
	var reqBody io.Reader
	if body != nil {
		if bodyStr, ok := body.(string); ok {
			reqBody = strings.NewReader(bodyStr)
		} else {
			jsonData, err := json.Marshal(body)
			require.NoError(t, err)
			reqBody = bytes.NewBuffer(jsonData)
		}
	}
	req, err := http.NewRequest(method, target, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// --- ヘルパー: chi の RouteContext にURLパラメータを設定 ---
// ハンドラを直接呼び出すテストでは chi のルーターを通らないため、
// chi.URLParam が読み取る RouteContext を手動で組み立てます。
func contextWithChiURLParam(ctx context.Context, key, value string) context.Context {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return context.WithValue(ctx, chi.RouteCtxKey, rctx)
}

// --- ヘルパー: *bool フィールドを持つリクエストの組み立て用 ---
func boolPtr(b bool) *bool {
	return &b
}
