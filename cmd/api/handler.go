package api

import (
	billingUsecase "cropadvisor-backend/internal/billing/usecase"
	chatDelivery "cropadvisor-backend/internal/chat/delivery"
	userUsecase "cropadvisor-backend/internal/user/usecase"
	"cropadvisor-backend/pkg/config"
	"cropadvisor-backend/pkg/mailer"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	userUsecase    userUsecase.UserUsecase
	billingUsecase billingUsecase.BillingUsecase
	chatService    chatDelivery.ChatService
	mailService    *mailer.Service
	config         *config.Config
}

func NewHandler(userUc userUsecase.UserUsecase, billingUc billingUsecase.BillingUsecase, chatService chatDelivery.ChatService, mailService *mailer.Service, cfg *config.Config) *Handler {
	return &Handler{
		userUsecase:    userUc,
		billingUsecase: billingUc,
		chatService:    chatService,
		mailService:    mailService,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	SetupRoutes(r, h.userUsecase, h.billingUsecase, h.chatService, h.mailService)

	return r.Run(addr)
}
