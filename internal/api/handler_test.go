package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"community_sync/internal/domain"
)

type stubIngester struct {
	result  domain.SyncResult
	lastReq domain.SyncRequest
	calls   int
}

func (s *stubIngester) SyncArticle(_ context.Context, req domain.SyncRequest) domain.SyncResult {
	s.calls++
	s.lastReq = req
	return s.result
}

func newTestServer(ingester Ingester) *echo.Echo {
	e := echo.New()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	e.Use(Stopwatch(logger))
	NewHandler(ingester).RegisterRoutes(e)
	return e
}

const requestBody = `{
	"article": {
		"title": "T",
		"content": "C",
		"tags": "go,rust",
		"permalink": "/p1",
		"clientArticleId": "13880209"
	},
	"clientAdminEmail": "a@x.com",
	"clientName": "App",
	"clientVersion": "0.1",
	"clientHost": "http://h",
	"clientRuntimeEnv": "GO"
}`

func postArticle(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/article", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res := httptest.NewRecorder()
	e.ServeHTTP(res, req)
	return res
}

func TestHandleSyncArticle_Accepted(t *testing.T) {
	ingester := &stubIngester{result: domain.Accepted()}
	e := newTestServer(ingester)

	res := postArticle(e, requestBody)

	require.Equal(t, http.StatusOK, res.Code)

	var body syncResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Empty(t, body.Msg)

	assert.Equal(t, 1, ingester.calls)
	assert.Equal(t, "a@x.com", ingester.lastReq.ClientAdminEmail)
	assert.Equal(t, "T", ingester.lastReq.Article.Title)
	assert.Equal(t, "13880209", ingester.lastReq.Article.ClientArticleID)
}

func TestHandleSyncArticle_SoftFailure(t *testing.T) {
	ingester := &stubIngester{result: domain.SoftFailure("更新失败 - boom")}
	e := newTestServer(ingester)

	res := postArticle(e, requestBody)

	require.Equal(t, http.StatusOK, res.Code)

	var body syncResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "更新失败 - boom", body.Msg)
}

func TestHandleSyncArticle_Rejected(t *testing.T) {
	ingester := &stubIngester{result: domain.Rejected()}
	e := newTestServer(ingester)

	res := postArticle(e, requestBody)

	// Silent rejection: success framing at the HTTP level, no detail in
	// the payload.
	require.Equal(t, http.StatusOK, res.Code)

	var body syncResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Empty(t, body.Msg)
}

func TestHandleSyncArticle_MalformedJSON(t *testing.T) {
	ingester := &stubIngester{result: domain.Accepted()}
	e := newTestServer(ingester)

	res := postArticle(e, "{not json")

	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, 0, ingester.calls)
}
