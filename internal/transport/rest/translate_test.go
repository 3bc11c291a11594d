package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordpeek/wordpeek-backend/internal/service/translate"
)

type mockTranslateService struct {
	translateFn func(ctx context.Context, sentence, lang string) (string, error)
}

func (m *mockTranslateService) Translate(ctx context.Context, sentence, lang string) (string, error) {
	return m.translateFn(ctx, sentence, lang)
}

func postTranslate(t *testing.T, handler *TranslateHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/translate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Translate(rec, req)
	return rec
}

func TestTranslate_Success(t *testing.T) {
	var gotSentence, gotLang string
	svc := &mockTranslateService{
		translateFn: func(_ context.Context, sentence, lang string) (string, error) {
			gotSentence, gotLang = sentence, lang
			return "Er kann schnell laufen.", nil
		},
	}
	handler := NewTranslateHandler(svc, testLogger())

	rec := postTranslate(t, handler, `{"sentence":"He can run fast.","lang":"de"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "He can run fast.", gotSentence)
	assert.Equal(t, "de", gotLang)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Translation string `json:"translation"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "Er kann schnell laufen.", body.Data.Translation)
}

func TestTranslate_NoLanguage(t *testing.T) {
	svc := &mockTranslateService{
		translateFn: func(context.Context, string, string) (string, error) {
			return "", translate.ErrNoLanguage
		},
	}
	handler := NewTranslateHandler(svc, testLogger())

	rec := postTranslate(t, handler, `{"sentence":"He can run fast."}`)

	// noLanguage is a client-facing state, not a transport failure.
	require.Equal(t, http.StatusOK, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "noLanguage", body.Status)
	assert.NotEmpty(t, body.Message)
}

func TestTranslate_NotConfigured(t *testing.T) {
	svc := &mockTranslateService{
		translateFn: func(context.Context, string, string) (string, error) {
			return "", translate.ErrNotConfigured
		},
	}
	handler := NewTranslateHandler(svc, testLogger())

	rec := postTranslate(t, handler, `{"sentence":"He can run fast.","lang":"de"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"error"`)
}

func TestTranslate_InvalidBody(t *testing.T) {
	svc := &mockTranslateService{
		translateFn: func(context.Context, string, string) (string, error) {
			t.Fatal("service must not be called")
			return "", nil
		},
	}
	handler := NewTranslateHandler(svc, testLogger())

	rec := postTranslate(t, handler, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslate_ProviderFailure(t *testing.T) {
	svc := &mockTranslateService{
		translateFn: func(context.Context, string, string) (string, error) {
			return "", errors.New("generate translation: deadline exceeded")
		},
	}
	handler := NewTranslateHandler(svc, testLogger())

	rec := postTranslate(t, handler, `{"sentence":"He can run fast.","lang":"de"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "deadline exceeded")
}
