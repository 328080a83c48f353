package repository

import (
	"errors"
	"time"

	userdomain "cropadvisor-backend/internal/user/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository defines the interface for account storage operations.
// Not-found lookups return (nil, nil); callers decide the error semantics.
type UserRepository interface {
	Create(user *userdomain.User) error
	FindByEmail(email string) (*userdomain.User, error)
	FindByID(id string) (*userdomain.User, error)
	Update(user *userdomain.User) error
	UpdateFields(id string, fields map[string]interface{}) (*userdomain.User, error)
	Delete(id string) (bool, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *userdomain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*userdomain.User, error) {
	var user userdomain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*userdomain.User, error) {
	var user userdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *userdomain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// UpdateFields applies a partial column update and returns the fresh row.
// Values may be gorm.Expr, which is how the credit balance is incremented
// in the same write that sets the plan. Returns (nil, nil) when the id does
// not resolve.
func (r *userRepository) UpdateFields(id string, fields map[string]interface{}) (*userdomain.User, error) {
	if len(fields) > 0 {
		res := r.db.Model(&userdomain.User{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return r.FindByID(id)
}

// Delete hard-deletes the account. The bool reports whether a row existed.
func (r *userRepository) Delete(id string) (bool, error) {
	res := r.db.Where("id = ?", id).Delete(&userdomain.User{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
