package delivery

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cropadvisor-backend/internal/apperr"
	"cropadvisor-backend/pkg/gemini"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChat struct {
	lastMessage string
	lastHistory []gemini.Turn
	reply       string
	err         error
}

func (f *fakeChat) Chat(_ context.Context, message string, history []gemini.Turn) (string, error) {
	f.lastMessage = message
	f.lastHistory = history
	return f.reply, f.err
}

func newChatRouter(fake *fakeChat) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/chat", NewChatHandler(fake).Relay)
	return r
}

func post(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRelaySuccess(t *testing.T) {
	fake := &fakeChat{reply: "Plant maize now."}
	r := newChatRouter(fake)

	w := post(t, r, `{"message": "what to plant?", "history": [{"role": "user", "parts": [{"text": "hi"}]}]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Plant maize now.")

	// the relayed message is prefixed with today's date for the model
	assert.True(t, strings.HasPrefix(fake.lastMessage, "[System Note: Today's Date is "))
	assert.True(t, strings.HasSuffix(fake.lastMessage, "what to plant?"))
	assert.Len(t, fake.lastHistory, 1)
}

func TestRelayMissingMessage(t *testing.T) {
	r := newChatRouter(&fakeChat{})

	w := post(t, r, `{"history": []}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRelayUpstreamStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{apperr.Wrap(apperr.ErrUpstream, "gemini API error 429: quota exhausted"), http.StatusTooManyRequests},
		{apperr.Wrap(apperr.ErrUpstream, "gemini API error 503: model overloaded"), http.StatusServiceUnavailable},
		{apperr.Wrap(apperr.ErrUpstream, "connection refused"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		r := newChatRouter(&fakeChat{err: tc.err})
		w := post(t, r, `{"message": "hello"}`)
		assert.Equal(t, tc.want, w.Code, tc.err.Error())
	}
}
