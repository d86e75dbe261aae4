package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionDuration is how long a login session is valid.
const SessionDuration = 30 * 24 * time.Hour

// Session is a login session for a user. The token is handed out at
// login and presented as a bearer token on authenticated requests.
type Session struct {
	DefaultModel
	Token     string    `gorm:"uniqueIndex"`
	UserID    uuid.UUID `gorm:"index"`
	User      User      `json:"-"`
	ExpiresAt time.Time
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	err := s.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	if s.Token == "" {
		s.Token = uuid.NewString()
	}

	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = time.Now().In(time.UTC).Add(SessionDuration)
	}

	return nil
}

// Expired reports whether the session has expired.
func (s Session) Expired() bool {
	return s.ExpiresAt.Before(time.Now().In(time.UTC))
}
