package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorReader struct{}

func (errorReader) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read error")
}

type namedPayload struct {
	Name string `json:"name"`
}

func TestReadBody_String(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		contentType string
		want        string
	}{
		{name: "plain text", body: "hello", contentType: "text/plain", want: "hello"},
		{name: "plain text with charset", body: "hello", contentType: "text/plain; charset=utf-8", want: "hello"},
		{name: "empty body", body: "", contentType: "text/plain", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			got, err := readBody[string](req)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadBody_TextPlainIntoStruct(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader("hello"))
	req.Header.Set("Content-Type", "text/plain")

	_, err := readBody[namedPayload](req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read request body: text/plain")
}

func TestReadBody_JSON(t *testing.T) {
	expected := namedPayload{Name: "enviromat"}
	raw, _ := json.Marshal(expected)

	req := httptest.NewRequest("POST", "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	got, err := readBody[namedPayload](req)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestReadBody_JSONIsTheDefault(t *testing.T) {
	expected := namedPayload{Name: "enviromat"}
	raw, _ := json.Marshal(expected)

	req := httptest.NewRequest("POST", "/", bytes.NewReader(raw))

	got, err := readBody[namedPayload](req)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestReadBody_MalformedJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name": "enviromat"`))
	req.Header.Set("Content-Type", "application/json")

	_, err := readBody[namedPayload](req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read request body application/json")
}

func TestReadBody_ReaderFailure(t *testing.T) {
	req, _ := http.NewRequest("POST", "/", errorReader{})
	req.Header.Set("Content-Type", "application/json")

	_, err := readBody[namedPayload](req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read request body")
}

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"message": "ok"}

	writeJSON(w, data, http.StatusOK)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var got map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, data, got)
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	writeJSON(w, make(chan int), http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal Server Error")
}
