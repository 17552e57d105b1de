package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Prakash1256/PDF-AI-CHAT/types"
)

// Answerer resolves a question to a textual answer without ever failing;
// completion errors come back as content, not errors.
type Answerer interface {
	Answer(ctx context.Context, question string) string
}

type ChatHandler struct {
	answers Answerer
}

func NewChatHandler(answers Answerer) *ChatHandler {
	return &ChatHandler{
		answers: answers,
	}
}

// HandleChat validates the question and delegates to the answer pipeline.
// Input validation is owned here: an empty question never reaches the
// answer service.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Question is required",
		})
		return
	}

	answer := h.answers.Answer(c.Request.Context(), question)

	c.JSON(http.StatusOK, types.ChatResponse{
		Answer:   answer,
		Question: question,
	})
}
