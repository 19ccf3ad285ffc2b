package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHandleRegister(t *testing.T) {
	svc, _ := newTestAuthService()
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleRegister(), RegisterRequest{
		Username: "alice", Password: "hunter22", Bio: "hello",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	decodeBody(t, rec, &resp)
	assert.Equal(t, float64(1), resp["id"])
	assert.Equal(t, "alice", resp["username"])
	assert.Equal(t, "hello", resp["bio"])
	// The password never appears in the response, hashed or otherwise.
	_, leaked := resp["password"]
	assert.False(t, leaked)
}

func TestHandleRegisterMissingFields(t *testing.T) {
	svc, _ := newTestAuthService()
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleRegister(), RegisterRequest{Username: "alice"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	// Every offending field is named, not just the first.
	assert.Contains(t, resp["error"], "password")
	assert.Contains(t, resp["error"], "bio")
	assert.NotContains(t, resp["error"], "username")
}

func TestHandleRegisterDuplicate(t *testing.T) {
	svc, _ := newTestAuthService()
	h := NewHandlers(svc)

	body := RegisterRequest{Username: "alice", Password: "pw", Bio: "hi"}
	rec := postJSON(t, h.HandleRegister(), body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, h.HandleRegister(), body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "username already taken", resp["error"])
}

func TestHandleRegisterInvalidBody(t *testing.T) {
	svc, _ := newTestAuthService()
	h := NewHandlers(svc)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.HandleRegister()(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleRegister(), RegisterRequest{Username: "alice", Password: "hunter22", Bio: "hi"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, h.HandleLogin(), LoginRequest{Username: "alice", Password: "hunter22"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, resp.Token)
}

func TestHandleLoginBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService()
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleRegister(), RegisterRequest{Username: "alice", Password: "hunter22", Bio: "hi"})
	require.Equal(t, http.StatusOK, rec.Code)

	wrongPassword := postJSON(t, h.HandleLogin(), LoginRequest{Username: "alice", Password: "nope"})
	unknownUser := postJSON(t, h.HandleLogin(), LoginRequest{Username: "mallory", Password: "hunter22"})

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownUser.Code)
	// Byte-identical bodies: the response must not reveal which part was wrong.
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestHandleLoginMissingFields(t *testing.T) {
	svc, _ := newTestAuthService()
	h := NewHandlers(svc)

	rec := postJSON(t, h.HandleLogin(), LoginRequest{Username: "alice"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
