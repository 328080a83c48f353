package api

import (
	"net/http"

	billingDelivery "cropadvisor-backend/internal/billing/delivery"
	billingUsecase "cropadvisor-backend/internal/billing/usecase"
	chatDelivery "cropadvisor-backend/internal/chat/delivery"
	userDelivery "cropadvisor-backend/internal/user/delivery"
	userUsecase "cropadvisor-backend/internal/user/usecase"
	"cropadvisor-backend/pkg/mailer"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, userUc userUsecase.UserUsecase, billingUc billingUsecase.BillingUsecase, chatService chatDelivery.ChatService, mailService *mailer.Service) {
	userHandler := userDelivery.NewUserHandler(userUc)
	billingHandler := billingDelivery.NewBillingHandler(billingUc)
	chatHandler := chatDelivery.NewChatHandler(chatService)
	mailHandler := NewMailHandler(mailService)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the crop recommendation project")
	})

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Account routes
		user := api.Group("/user")
		{
			user.POST("/signup", userHandler.Signup)
			user.POST("/login", userHandler.Login)
			user.POST("/googleauth", userHandler.GoogleAuth)
			user.POST("/reset-password", userHandler.ResetPassword)
			user.POST("/upload", userHandler.UploadImage)
			user.POST("/reset-image", userHandler.ResetImage)
			user.PUT("/update/:userId", userHandler.UpdateUser)
			user.POST("/update-fcm", userHandler.UpdateFCMToken)
			user.GET("/:userId", userHandler.GetUser)
			user.DELETE("/:userId", userHandler.DeleteUser)
		}

		// Payment routes
		api.POST("/order", billingHandler.CreateOrder)
		api.POST("/order/validate", billingHandler.ValidatePayment)

		// Contact mail
		api.POST("/email", mailHandler.SendMail)

		// Chat relay
		api.POST("/chat", chatHandler.Relay)
	}
}
