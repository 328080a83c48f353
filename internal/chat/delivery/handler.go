package delivery

import (
	"context"
	"net/http"
	"time"

	"cropadvisor-backend/pkg/gemini"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ChatService relays a conversation turn to the hosted model.
type ChatService interface {
	Chat(ctx context.Context, message string, history []gemini.Turn) (string, error)
}

type ChatHandler struct {
	chat ChatService
}

func NewChatHandler(chat ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatRequest struct {
	Message string        `json:"message" binding:"required"`
	History []gemini.Turn `json:"history"`
}

// Relay forwards the message plus history and returns the model's reply.
// The handler holds no state; the client resends history every turn.
func (h *ChatHandler) Relay(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Message is required"})
		return
	}

	// The model has no clock; date-sensitive advice needs today's date.
	contextMessage := "[System Note: Today's Date is " + time.Now().Format("Mon Jan 2 2006") + "] " + req.Message

	reply, err := h.chat.Chat(c.Request.Context(), contextMessage, req.History)
	if err != nil {
		log.WithError(err).Error("chat relay failed")

		status := http.StatusInternalServerError
		if gemini.IsQuotaError(err) {
			status = http.StatusTooManyRequests
		} else if gemini.IsOverloadedError(err) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reply": reply})
}
