package api

import (
	"net/http"

	"cropadvisor-backend/pkg/mailer"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type MailHandler struct {
	mail *mailer.Service
}

func NewMailHandler(mail *mailer.Service) *MailHandler {
	return &MailHandler{mail: mail}
}

type sendMailRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *MailHandler) SendMail(c *gin.Context) {
	var req sendMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required."})
		return
	}

	if h.mail == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Mail service not configured."})
		return
	}

	if err := h.mail.Send(req.Email, req.Subject, req.Message); err != nil {
		log.WithError(err).Error("mail send failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error. Try again later."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully!"})
}
