package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cropadvisor-backend/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServerBackedService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	svc := NewService("test-key")
	svc.baseURL = srv.URL
	return svc
}

func TestChatRelaysHistoryAndReturnsReply(t *testing.T) {
	var got struct {
		SystemInstruction struct {
			Parts []Part `json:"parts"`
		} `json:"system_instruction"`
		Contents []Turn `json:"contents"`
	}

	svc := newServerBackedService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{"parts": []Part{{Text: "Sow in June."}}}},
			},
		})
	})

	history := []Turn{
		{Role: "user", Parts: []Part{{Text: "Hi"}}},
		{Role: "model", Parts: []Part{{Text: "Hello!"}}},
	}
	reply, err := svc.Chat(context.Background(), "When do I sow paddy?", history)
	require.NoError(t, err)
	assert.Equal(t, "Sow in June.", reply)

	// history goes first, the new message is the final user turn
	require.Len(t, got.Contents, 3)
	assert.Equal(t, "model", got.Contents[1].Role)
	assert.Equal(t, "When do I sow paddy?", got.Contents[2].Parts[0].Text)
	assert.NotEmpty(t, got.SystemInstruction.Parts)
}

func TestChatUpstreamError(t *testing.T) {
	svc := newServerBackedService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"message": "quota exhausted"}}`, http.StatusTooManyRequests)
	})

	_, err := svc.Chat(context.Background(), "hello", nil)
	assert.True(t, errors.Is(err, apperr.ErrUpstream))
	assert.True(t, IsQuotaError(err))
}

func TestChatEmptyCandidates(t *testing.T) {
	svc := newServerBackedService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	})

	_, err := svc.Chat(context.Background(), "hello", nil)
	assert.True(t, errors.Is(err, apperr.ErrUpstream))
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsQuotaError(errors.New("status 429: quota exceeded")))
	assert.True(t, IsOverloadedError(errors.New("model is overloaded")))
	assert.False(t, IsQuotaError(nil))
	assert.False(t, IsOverloadedError(errors.New("bad request")))
}
