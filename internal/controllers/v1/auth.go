package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
)

// Context keys the authentication middleware stores the resolved
// session under.
const (
	contextUserID       = "pocketledger-user-id"
	contextSessionToken = "pocketledger-session-token"
)

// Authenticate resolves the bearer token to a user and aborts the
// request with 401 when it cannot.
//
// Every handler behind this middleware scopes its queries by the
// resolved user ID, so resources of other users are indistinguishable
// from resources that do not exist.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || strings.Contains(token, " ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
				Error: errUnauthorized.Error(),
			})
			return
		}

		var session models.Session
		err := models.DB.Where(&models.Session{Token: token}).First(&session).Error
		if err != nil || session.Expired() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{
				Error: errUnauthorized.Error(),
			})
			return
		}

		c.Set(contextUserID, session.UserID)
		c.Set(contextSessionToken, session.Token)
		c.Next()
	}
}

// userID returns the authenticated user's ID from the gin context.
func userID(c *gin.Context) uuid.UUID {
	return c.MustGet(contextUserID).(uuid.UUID)
}

// sessionToken returns the token the request was authenticated with.
func sessionToken(c *gin.Context) string {
	return c.MustGet(contextSessionToken).(string)
}
