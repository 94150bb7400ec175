package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, WriteError(w, http.StatusNotFound, "NOT_FOUND", "not found", map[string]string{"path": "/x"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var env ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, ErrorEnvelope{Code: "NOT_FOUND", Message: "not found", Meta: map[string]string{"path": "/x"}}, env)
}

func TestWriteJSON_NilWriterAndPayload(t *testing.T) {
	t.Parallel()

	require.NoError(t, WriteJSON(nil, http.StatusOK, map[string]string{}))

	w := httptest.NewRecorder()
	require.NoError(t, WriteJSON(w, http.StatusNoContent, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestRouteMeta(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodPost, "/users?x=1", nil)
	r.Header.Set("X-Request-Id", "from-client")
	w := httptest.NewRecorder()

	assert.Equal(t, map[string]string{"method": "POST", "path": "/users", "request_id": "from-client"}, RouteMeta(w, r))

	w.Header().Set("X-Request-Id", "assigned")
	assert.Equal(t, "assigned", RequestID(w, r))
	assert.True(t, WantsJSON(httptestJSON()))
	assert.False(t, WantsJSON(r))
}

func httptestJSON() *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept", "text/html, Application/JSON")
	return r
}
