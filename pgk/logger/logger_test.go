package logger

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newCapturedLogger() (*zap.SugaredLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(&buf),
		zapcore.InfoLevel,
	)
	return zap.New(core).Sugar(), &buf
}

func TestNew_Valid(t *testing.T) {
	lg, err := New()

	require.NoError(t, err)
	require.NotNil(t, lg)
}

func TestLoggingMiddleware_RecordsRequestLine(t *testing.T) {
	lg, buf := newCapturedLogger()

	handler := LoggingMiddleware(lg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("hello"))
	}))

	req := httptest.NewRequest("POST", "/api/v1/waste/upload", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "hello", w.Body.String())

	logOutput := buf.String()
	assert.Contains(t, logOutput, "request->")
	assert.Contains(t, logOutput, "uri: /api/v1/waste/upload")
	assert.Contains(t, logOutput, "method: POST")
	assert.Contains(t, logOutput, "status: 201")
	assert.Contains(t, logOutput, "size: 5")
	assert.Contains(t, logOutput, "duration:")
}

func TestLoggingMiddleware_DefaultsToStatusOK(t *testing.T) {
	lg, buf := newCapturedLogger()

	handler := LoggingMiddleware(lg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest("GET", "/api/v1/user/balance", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	assert.Contains(t, logOutput, "status: 200")
	assert.Contains(t, logOutput, "size: 2")
}

func TestLoggingMiddleware_EmptyBody(t *testing.T) {
	lg, buf := newCapturedLogger()

	handler := LoggingMiddleware(lg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("POST", "/api/v1/waste/my-requests", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	assert.Contains(t, logOutput, "status: 204")
	assert.Contains(t, logOutput, "size: 0")
}

func TestLoggingMiddleware_SumsMultipleWrites(t *testing.T) {
	lg, buf := newCapturedLogger()

	handler := LoggingMiddleware(lg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello"))
		w.Write([]byte("world"))
	}))

	req := httptest.NewRequest("GET", "/ping", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "helloworld", w.Body.String())
	assert.Contains(t, buf.String(), "size: 10")
}

func TestLoggingResponseWriter_TracksWrites(t *testing.T) {
	recorder := httptest.NewRecorder()
	rw := &loggingResponseWriter{
		ResponseWriter: recorder,
		responseData:   &responseData{status: http.StatusOK},
	}

	size, err := rw.Write([]byte("test"))

	assert.NoError(t, err)
	assert.Equal(t, 4, size)
	assert.Equal(t, 4, rw.responseData.size)
	assert.Equal(t, "test", recorder.Body.String())
}

func TestLoggingResponseWriter_TracksStatus(t *testing.T) {
	recorder := httptest.NewRecorder()
	rw := &loggingResponseWriter{
		ResponseWriter: recorder,
		responseData:   &responseData{status: http.StatusOK},
	}

	rw.WriteHeader(http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, rw.responseData.status)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestLoggingMiddleware_ReportsDuration(t *testing.T) {
	lg, buf := newCapturedLogger()

	handler := LoggingMiddleware(lg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/v1/order/get-items", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "duration:")
}
