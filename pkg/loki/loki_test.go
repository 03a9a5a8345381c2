package loki

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLogger struct {
	errors []string
}

func (m *mockLogger) Error(msg string, _ ...any) {
	m.errors = append(m.errors, msg)
}

func Test_ConfigValidation(t *testing.T) {
	cfg := Config{}
	_, err := New(context.Background(), cfg, &mockLogger{})
	assert.Error(t, err)

	cfg.Url = "http://localhost:3100/loki/api/v1/push"
	pusher, err := New(context.Background(), cfg, &mockLogger{})
	require.NoError(t, err)
	defer pusher.Stop()

	assert.Equal(t, cfg.Url, pusher.config.Url)
	assert.Equal(t, 1000, pusher.config.BatchMaxSize)
	assert.Equal(t, 5*time.Second, pusher.config.BatchMaxWait)
	assert.Equal(t, map[string]string{}, pusher.config.Labels)
}

func Test_Pusher_StopFlushesBatch(t *testing.T) {
	received := make(chan pushRequest, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "user", user)
		assert.Equal(t, "secret", password)
		assert.Equal(t, "gzip", r.Header.Get("Content-Encoding"))

		var body pushRequest
		gz, err := gzip.NewReader(r.Body)
		if assert.NoError(t, err) {
			assert.NoError(t, json.NewDecoder(gz).Decode(&body))
		}
		received <- body
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	logger := &mockLogger{}
	pusher, err := New(context.Background(), Config{
		Url:          server.URL,
		BatchMaxWait: time.Hour,
		Labels:       map[string]string{"app": "talenthub"},
		Username:     "user",
		Password:     "secret",
	}, logger)
	require.NoError(t, err)

	require.NoError(t, pusher.Push(LogEntry{Level: "error", Message: "boom"}))
	pusher.Stop()

	select {
	case body := <-received:
		require.Len(t, body.Streams, 1)
		assert.Equal(t, map[string]string{"app": "talenthub"}, body.Streams[0].Stream)
		require.Len(t, body.Streams[0].Values, 1)
		assert.Contains(t, body.Streams[0].Values[0][1], `"msg":"boom"`)
	case <-time.After(5 * time.Second):
		t.Fatal("batch was not pushed")
	}
	assert.Empty(t, logger.errors)
	assert.ErrorIs(t, pusher.Push(LogEntry{Message: "late"}), ErrStopped)
}

func Test_Pusher_ReportsRejectedBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	logger := &mockLogger{}
	pusher, err := New(context.Background(), Config{Url: server.URL, BatchMaxSize: 1, BatchMaxWait: time.Hour}, logger)
	require.NoError(t, err)

	require.NoError(t, pusher.Push(LogEntry{Message: "boom"}))
	pusher.Stop()

	assert.Equal(t, []string{"failed to send logs"}, logger.errors)
}
