package v1

import (
	"time"

	"github.com/pocketledger/backend/internal/models"
)

type UserEditable struct {
	Username string `json:"username" example:"jane"`             // Unique name of the user
	Email    string `json:"email" example:"jane@example.com"`    // Unique email address
	Password string `json:"password" example:"correct-horse-9"` // Cleartext password, only ever accepted, never returned
}

// model returns the database resource for the API representation
func (editable UserEditable) model() models.User {
	return models.User{
		Username: editable.Username,
		Email:    editable.Email,
	}
}

// User is the representation of a User in API v1.
type User struct {
	models.DefaultModel
	Username string `json:"username" example:"jane"`          // Unique name of the user
	Email    string `json:"email" example:"jane@example.com"` // Unique email address
}

// newUser returns the API v1 representation of the resource
func newUser(model models.User) User {
	return User{
		DefaultModel: model.DefaultModel,
		Username:     model.Username,
		Email:        model.Email,
	}
}

type UserResponse struct {
	Error *string `json:"error" example:"this username is already taken"` // The error, if any occurred
	Data  *User   `json:"data"`                                          // The User data, if creation was successful
}

type LoginRequest struct {
	Username string `json:"username" example:"jane"`            // Name of the user
	Password string `json:"password" example:"correct-horse-9"` // Cleartext password
}

// Login is the representation of an active session in API v1.
type Login struct {
	Token     string    `json:"token" example:"2ce21c05-b61e-4291-8d03-e2f7ea09b6ca"` // Bearer token for authenticated requests
	ExpiresAt time.Time `json:"expiresAt" example:"2024-02-01T18:43:00.271152Z"`      // Time the session expires
	User      User      `json:"user"`                                                 // The user the session belongs to
}

type LoginResponse struct {
	Error *string `json:"error" example:"invalid username or password"` // The error, if any occurred
	Data  *Login  `json:"data"`                                        // The session data, if login was successful
}
