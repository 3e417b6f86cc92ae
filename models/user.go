package models

import (
	"time"

	"github.com/videoforge/backend/utils"
)

// User is an identity record keyed by an opaque user id. Passwords are stored
// as bcrypt hashes only. During a GDPR erasure the user row is deleted last so
// foreign-key-bearing rows stay resolvable while the sweep runs.
type User struct {
	UserID            string    `gorm:"primaryKey;size:64" json:"user_id"`
	Username          string    `gorm:"size:64;uniqueIndex:ix_users_username" json:"username"`
	Email             string    `gorm:"size:255" json:"email"`
	EmailVerified     bool      `gorm:"default:false" json:"email_verified"`
	PasswordHash      string    `gorm:"size:255" json:"-"`
	VerificationToken string    `gorm:"size:255" json:"-"`
	Role              string    `gorm:"size:32;default:'user'" json:"role"`
	CreatedAt         time.Time `json:"created_at"`
	LastLogin         *float64  `json:"last_login"`
}

// SetPassword hashes and stores the given plaintext password.
func (u *User) SetPassword(plain string) error {
	hash, err := utils.HashPassword(plain)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return utils.CheckPassword(u.PasswordHash, plain)
}
