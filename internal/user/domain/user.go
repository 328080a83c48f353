package domain

import "time"

// Plan tiers. Transitions happen only through a verified payment, never
// through a profile update.
const (
	PlanFree       = "Free"
	PlanPro        = "Pro"
	PlanEnterprise = "Enterprise"
)

// SignupCredits is the balance every fresh account starts with.
const SignupCredits = 5

// DefaultPicture is the placeholder avatar used until the user uploads one.
const DefaultPicture = "https://res.cloudinary.com/demo/image/upload/avatar-placeholder.png"

type User struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null"`
	Password       string     `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	Name           string     `json:"name" gorm:"not null"`
	Picture        string     `json:"picture"`
	FCMToken       *string    `json:"fcmToken"`
	Plan           string     `json:"plan" gorm:"default:Free"`
	Credits        int        `json:"credits" gorm:"default:5"`
	SubscriptionID *string    `json:"subscriptionId"`
	PlanExpiresAt  *time.Time `json:"planExpiresAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
