package usecase

import (
	"context"

	"cropadvisor-backend/internal/apperr"
	userdomain "cropadvisor-backend/internal/user/domain"
	userdto "cropadvisor-backend/internal/user/dto"
	"cropadvisor-backend/internal/user/repository"
)

const profilePictureFolder = "profile_pictures"

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo repository.UserRepository
	uploader MediaUploader
}

// NewUserUsecase creates a new instance of userUsecase. uploader may be nil
// when the media host is not configured; picture uploads then fail with an
// upstream error instead of persisting raw payloads.
func NewUserUsecase(userRepo repository.UserRepository, uploader MediaUploader) UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		uploader: uploader,
	}
}

func (u *userUsecase) Signup(req *userdto.SignupRequest) (*userdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Wrap(apperr.ErrConflict, "user already exists")
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	picture := req.Picture
	if picture == "" {
		picture = userdomain.DefaultPicture
	}

	user := &userdomain.User{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		Picture:  picture,
		Plan:     userdomain.PlanFree,
		Credits:  userdomain.SignupCredits,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) Login(req *userdto.LoginRequest) (*userdomain.User, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "user does not exist")
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.Wrap(apperr.ErrInvalidCredentials, "invalid credentials")
	}
	return user, nil
}

// FederatedExchange finds or creates an account from a verified Google
// identity. An existing account is returned unchanged, so name and picture
// are never refreshed on repeat sign-ins. New accounts get the hashed
// subject identifier as a password surrogate.
func (u *userUsecase) FederatedExchange(req *userdto.GoogleAuthRequest) (*userdomain.User, bool, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	hashed, err := repository.HashPassword(req.Sub)
	if err != nil {
		return nil, false, err
	}

	picture := req.Picture
	if picture == "" {
		picture = userdomain.DefaultPicture
	}

	user := &userdomain.User{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		Picture:  picture,
		Plan:     userdomain.PlanFree,
		Credits:  userdomain.SignupCredits,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (u *userUsecase) GetAccount(id string) (*userdomain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "user not found")
	}
	return user, nil
}

// UpdateProfile writes only the provided fields. A provided picture is
// uploaded to the media host first; the store only ever sees hosted URLs.
func (u *userUsecase) UpdateProfile(ctx context.Context, id string, req *userdto.UpdateProfileRequest) (*userdomain.User, error) {
	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}
	if req.Picture != "" {
		url, err := u.UploadImage(ctx, req.Picture)
		if err != nil {
			return nil, err
		}
		fields["picture"] = url
	}

	user, err := u.userRepo.UpdateFields(id, fields)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "user not found")
	}
	return user, nil
}

// UpdateDeviceToken overwrites the push token wholesale.
func (u *userUsecase) UpdateDeviceToken(req *userdto.UpdateFCMRequest) (*userdomain.User, error) {
	user, err := u.userRepo.UpdateFields(req.UserID, map[string]interface{}{
		"fcm_token": req.FCMToken,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "user not found")
	}
	return user, nil
}

func (u *userUsecase) ResetPassword(req *userdto.ResetPasswordRequest) error {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.Wrap(apperr.ErrNotFound, "user not found")
	}

	hashed, err := repository.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return u.userRepo.Update(user)
}

// ResetImage sets the picture to an already-hosted URL, no upload round trip.
func (u *userUsecase) ResetImage(req *userdto.ResetImageRequest) (*userdomain.User, error) {
	user, err := u.userRepo.UpdateFields(req.UserID, map[string]interface{}{
		"picture": req.Picture,
	})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Wrap(apperr.ErrNotFound, "user not found")
	}
	return user, nil
}

func (u *userUsecase) UploadImage(ctx context.Context, image string) (string, error) {
	if u.uploader == nil {
		return "", apperr.Wrap(apperr.ErrUpstream, "media host not configured")
	}
	url, err := u.uploader.Upload(ctx, image, profilePictureFolder)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrUpstream, err.Error())
	}
	return url, nil
}

func (u *userUsecase) DeleteAccount(id string) error {
	deleted, err := u.userRepo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.Wrap(apperr.ErrNotFound, "user not found")
	}
	return nil
}
