package models

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User represents a registered user. All categories and transactions
// belong to exactly one user.
type User struct {
	DefaultModel
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`

	// Owned resources. The database cascades deletes so that removing
	// a user removes everything they own.
	Categories   []Category    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Transactions []Transaction `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Sessions     []Session     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))

	return nil
}

// SetPassword hashes the cleartext password and stores the hash on the user.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether the cleartext password matches the stored hash.
func (u User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
