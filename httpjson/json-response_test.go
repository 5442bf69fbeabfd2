package httpjson_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay/backend/httpjson"
	"github.com/coderelay/backend/srvcerror"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) httpjson.JsonResponse {
	t.Helper()
	var resp httpjson.JsonResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestWriteSuccessJson(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.WriteSuccessJson(rec, map[string]string{"hello": "world"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	resp := decode(t, rec)
	assert.Equal(t, "success", resp.Status)
}

func TestHandleErrorServiceError(t *testing.T) {
	rec := httptest.NewRecorder()
	err := srvcerror.New("team_not_found", "team not found").
		SetHttpStatusCode(http.StatusNotFound)
	httpjson.HandleError(slog.Default(), rec, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "team_not_found", resp.ErrCode)
	assert.Equal(t, "team not found", resp.ErrMsg)
}

func TestHandleErrorOpaqueError(t *testing.T) {
	rec := httptest.NewRecorder()
	httpjson.HandleError(slog.Default(), rec, errors.New("pool exhausted"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decode(t, rec)
	assert.Equal(t, srvcerror.ErrCodeInternalServerError, resp.ErrCode)
	assert.NotContains(t, resp.ErrMsg, "pool exhausted", "internal detail stays out of the response")
}
