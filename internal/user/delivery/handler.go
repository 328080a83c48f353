package delivery

import (
	"errors"
	"net/http"

	"cropadvisor-backend/internal/apperr"
	userdto "cropadvisor-backend/internal/user/dto"
	"cropadvisor-backend/internal/user/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
}

func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req userdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	user, err := h.userUsecase.Signup(&req)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		log.WithError(err).Error("signup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req userdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	user, err := h.userUsecase.Login(&req)
	if err != nil {
		// Both unknown-email and bad-password come back as 400 here,
		// matching the login contract rather than the 404 used elsewhere.
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User does not exist"})
		case errors.Is(err, apperr.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		default:
			log.WithError(err).Error("login failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "user": user})
}

func (h *UserHandler) GoogleAuth(c *gin.Context) {
	var req userdto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	user, created, err := h.userUsecase.FederatedExchange(&req)
	if err != nil {
		log.WithError(err).Error("google auth failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User already exists", "user": user})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetAccount(c.Param("userId"))
	if err != nil {
		h.respondError(c, err, "Error fetching user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req userdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), c.Param("userId"), &req)
	if err != nil {
		h.respondError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User profile updated successfully", "user": user})
}

func (h *UserHandler) UpdateFCMToken(c *gin.Context) {
	var req userdto.UpdateFCMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	user, err := h.userUsecase.UpdateDeviceToken(&req)
	if err != nil {
		h.respondError(c, err, "Error updating FCM token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FCM token updated successfully", "user": user})
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req userdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	if err := h.userUsecase.ResetPassword(&req); err != nil {
		h.respondError(c, err, "Error resetting password")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

func (h *UserHandler) UploadImage(c *gin.Context) {
	var req userdto.UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	url, err := h.userUsecase.UploadImage(c.Request.Context(), req.Image)
	if err != nil {
		log.WithError(err).Error("image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *UserHandler) ResetImage(c *gin.Context) {
	var req userdto.ResetImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}

	user, err := h.userUsecase.ResetImage(&req)
	if err != nil {
		h.respondError(c, err, "Image reset failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Image reset successfully", "user": user})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userUsecase.DeleteAccount(c.Param("userId")); err != nil {
		h.respondError(c, err, "Error deleting user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) respondError(c *gin.Context, err error, logMsg string) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error(logMsg)
		c.JSON(status, gin.H{"message": "Internal server error"})
		return
	}
	if errors.Is(err, apperr.ErrNotFound) {
		c.JSON(status, gin.H{"message": "User not found"})
		return
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
