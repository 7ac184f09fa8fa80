package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

func newHandler() *handler.GeneratorHandler {
	svc := service.NewGeneratorService(nil, 16, 3, 50)
	return handler.NewGeneratorHandler(svc)
}

func postGenerate(t *testing.T, h *handler.GeneratorHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleGenerate(rec, req)
	return rec
}

func TestHandleGenerate_Defaults(t *testing.T) {
	rec := postGenerate(t, newHandler(), `{}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.Count)
	require.Len(t, resp.Passwords, 3)
	for _, item := range resp.Passwords {
		assert.Len(t, item.Password, 16)
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.StrengthLabel)
	}
}

func TestHandleGenerate_CustomRequest(t *testing.T) {
	rec := postGenerate(t, newHandler(), `{"length": 20, "count": 5, "symbols": false, "exclude_similar": true}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.GenerateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Passwords, 5)
	for _, item := range resp.Passwords {
		assert.Len(t, item.Password, 20)
		assert.NotContains(t, item.Password, "0")
		assert.NotContains(t, item.Password, "O")
	}
}

func TestHandleGenerate_NoClassesSelected(t *testing.T) {
	rec := postGenerate(t, newHandler(),
		`{"length": 16, "uppercase": false, "lowercase": false, "numbers": false, "symbols": false}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestHandleGenerate_InvalidLength(t *testing.T) {
	for _, body := range []string{`{"length": 3}`, `{"length": 200}`} {
		rec := postGenerate(t, newHandler(), body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestHandleGenerate_InvalidBody(t *testing.T) {
	rec := postGenerate(t, newHandler(), `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerate_BodyTooLarge(t *testing.T) {
	body := `{"length": 16, "pad": "` + strings.Repeat("x", 1<<20) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", bytes.NewReader([]byte(body)))
	rec := httptest.NewRecorder()
	newHandler().HandleGenerate(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}
