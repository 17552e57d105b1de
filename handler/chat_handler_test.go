package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prakash1256/PDF-AI-CHAT/types"
)

type fakeAnswerer struct {
	answer string
	calls  int
}

func (f *fakeAnswerer) Answer(ctx context.Context, question string) string {
	f.calls++
	return f.answer
}

func newChatRouter(answers Answerer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/chat", NewChatHandler(answers).HandleChat)
	return router
}

func postChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleChatEmptyQuestion(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Empty question", body: `{"question": ""}`},
		{name: "Whitespace only", body: `{"question": "   "}`},
		{name: "Missing field", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := &fakeAnswerer{answer: "unused"}
			router := newChatRouter(answers)

			w := postChat(t, router, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var res types.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, "Question is required", res.Error)
			assert.Zero(t, answers.calls, "answer service must not be invoked")
		})
	}
}

func TestHandleChatInvalidBody(t *testing.T) {
	answers := &fakeAnswerer{}
	router := newChatRouter(answers)

	w := postChat(t, router, `{"question": `)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, answers.calls)
}

func TestHandleChatTrimsQuestion(t *testing.T) {
	answers := &fakeAnswerer{answer: "the answer"}
	router := newChatRouter(answers)

	w := postChat(t, router, `{"question": "  what is this about?  "}`)

	require.Equal(t, http.StatusOK, w.Code)

	var res types.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "the answer", res.Answer)
	assert.Equal(t, "what is this about?", res.Question)
	assert.Equal(t, 1, answers.calls)
}
