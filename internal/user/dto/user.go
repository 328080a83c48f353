package dto

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Picture  string `json:"picture"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// GoogleAuthRequest carries the claims the client extracted from a verified
// Google credential. Sub is the federated subject identifier.
type GoogleAuthRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name" binding:"required"`
	Sub     string `json:"sub" binding:"required"`
	Picture string `json:"picture"`
}

// UpdateProfileRequest is a partial update: only provided fields are written.
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

type UpdateFCMRequest struct {
	UserID   string `json:"userId" binding:"required"`
	FCMToken string `json:"fcmToken"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type UploadImageRequest struct {
	Image string `json:"image" binding:"required"`
}

type ResetImageRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Picture string `json:"picture" binding:"required"`
}
