package usecase

import (
	"context"

	userdomain "cropadvisor-backend/internal/user/domain"
	userdto "cropadvisor-backend/internal/user/dto"
)

// MediaUploader is the hosted image service boundary. Implemented by
// pkg/media; faked in tests.
type MediaUploader interface {
	Upload(ctx context.Context, image, folder string) (string, error)
}

// UserUsecase covers the account lifecycle: auth, profile mutation and
// deletion. Entitlement changes live in the billing usecase.
type UserUsecase interface {
	Signup(req *userdto.SignupRequest) (*userdomain.User, error)
	Login(req *userdto.LoginRequest) (*userdomain.User, error)
	// FederatedExchange returns the account plus whether it was created
	// on this call (true) or already existed (false).
	FederatedExchange(req *userdto.GoogleAuthRequest) (*userdomain.User, bool, error)
	GetAccount(id string) (*userdomain.User, error)
	UpdateProfile(ctx context.Context, id string, req *userdto.UpdateProfileRequest) (*userdomain.User, error)
	UpdateDeviceToken(req *userdto.UpdateFCMRequest) (*userdomain.User, error)
	ResetPassword(req *userdto.ResetPasswordRequest) error
	ResetImage(req *userdto.ResetImageRequest) (*userdomain.User, error)
	UploadImage(ctx context.Context, image string) (string, error)
	DeleteAccount(id string) error
}
