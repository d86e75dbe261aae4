package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterUserRoutes registers the routes for user registration with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsRegister)
	r.POST("", Register)
}

// RegisterSessionRoutes registers the routes for logging in and out with
// the RouterGroup that is passed.
func RegisterSessionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsLogin)
	r.POST("", PostLogin)
	r.DELETE("", Authenticate(), Logout)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/register [options]
func OptionsRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPostDelete(c)
}

// @Summary		Register user
// @Description	Creates a new user and seeds their default categories
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	UserResponse
// @Failure		400		{object}	UserResponse
// @Failure		500		{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/register [post]
func Register(c *gin.Context) {
	var editable UserEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	err = validateRegistration(editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, UserResponse{
			Error: &e,
		})
		return
	}

	user := editable.model()
	err = user.SetPassword(editable.Password)
	if err != nil {
		e := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, UserResponse{
			Error: &e,
		})
		return
	}

	// The user and their default categories are created together so a
	// failed seed does not leave a half set up account
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&user).Error
		if err != nil {
			return err
		}

		categories := models.DefaultCategories(user.ID)
		return tx.Create(&categories).Error
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), UserResponse{
			Error: &e,
		})
		return
	}

	data := newUser(user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

func validateRegistration(editable UserEditable) error {
	if editable.Username == "" {
		return errUsernameRequired
	}

	if editable.Email == "" {
		return errEmailRequired
	}

	if len(editable.Password) < 6 {
		return errPasswordTooShort
	}

	return nil
}

// @Summary		Log in
// @Description	Verifies the credentials and returns a session token for authenticated requests
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201			{object}	LoginResponse
// @Failure		400			{object}	LoginResponse
// @Failure		401			{object}	LoginResponse
// @Failure		500			{object}	LoginResponse
// @Param			credentials	body		LoginRequest	true	"Credentials"
// @Router			/v1/login [post]
func PostLogin(c *gin.Context) {
	var request LoginRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	// The same error is returned for an unknown username and for a wrong
	// password so that login attempts cannot probe for registered names
	var user models.User
	err = models.DB.Where(&models.User{Username: request.Username}).First(&user).Error
	if err != nil || !user.CheckPassword(request.Password) {
		e := errCredentialsInvalid.Error()
		c.JSON(http.StatusUnauthorized, LoginResponse{
			Error: &e,
		})
		return
	}

	session := models.Session{UserID: user.ID}
	err = models.DB.Create(&session).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LoginResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, LoginResponse{
		Data: &Login{
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
			User:      newUser(user),
		},
	})
}

// @Summary		Log out
// @Description	Deletes the session the request is authenticated with
// @Tags			Users
// @Success		204
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Security		Bearer
// @Router			/v1/login [delete]
func Logout(c *gin.Context) {
	err := models.DB.
		Where(&models.Session{UserID: userID(c)}).
		Where("token = ?", sessionToken(c)).
		Delete(&models.Session{}).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
