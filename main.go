package main

import (
	api "cropadvisor-backend/cmd/api"
	billingUsecase "cropadvisor-backend/internal/billing/usecase"
	userdomain "cropadvisor-backend/internal/user/domain"
	userRepo "cropadvisor-backend/internal/user/repository"
	userUsecase "cropadvisor-backend/internal/user/usecase"
	"cropadvisor-backend/pkg/config"
	"cropadvisor-backend/pkg/database"
	"cropadvisor-backend/pkg/fcm"
	"cropadvisor-backend/pkg/gemini"
	"cropadvisor-backend/pkg/mailer"
	"cropadvisor-backend/pkg/media"
	"cropadvisor-backend/pkg/payment"

	log "github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&userdomain.User{}); err != nil {
		log.WithError(err).Fatal("Failed to migrate database")
	}

	// Initialize repositories (dependency injection)
	userRepository := userRepo.NewUserRepository(db)

	// Media host (optional; profile picture uploads fail without it)
	var uploader userUsecase.MediaUploader
	if cfg.CloudinaryCloudName != "" {
		mediaService, err := media.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Cloudinary (image uploads disabled)")
		} else {
			uploader = mediaService
		}
	} else {
		log.Warn("CLOUDINARY_CLOUD_NAME not set, image uploads disabled")
	}

	// Payment gateway
	gateway := payment.NewClient(cfg.RazorpayKeyID, cfg.RazorpaySecret)

	// FCM push client (optional)
	var push billingUsecase.PushSender
	if cfg.FirebaseCredentials != "" {
		fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize FCM client (push notifications disabled)")
		} else {
			push = fcmClient
		}
	}

	// Mail service (optional)
	var mailService *mailer.Service
	if cfg.MailUser != "" {
		mailService = mailer.NewService(cfg.MailUser, cfg.MailPass)
	} else {
		log.Warn("MAIL_USER not set, contact mail disabled")
	}

	// Chat relay
	chatService := gemini.NewService(cfg.GeminiAPIKey)

	// Initialize use cases (dependency injection)
	userUsecaseInstance := userUsecase.NewUserUsecase(userRepository, uploader)
	billingUsecaseInstance := billingUsecase.NewBillingUsecase(userRepository, gateway, push, cfg.RazorpaySecret)

	// Initialize HTTP handler
	handler := api.NewHandler(userUsecaseInstance, billingUsecaseInstance, chatService, mailService, cfg)

	// Start server
	log.WithField("port", cfg.Port).Info("Server starting")
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
