package v1

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/receipt"
)

type httpError struct {
	Error string `json:"error" example:"there is no transaction matching your query"`
}

// status returns the appropriate status for a database or asset error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, receipt.ErrNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Authentication errors
var (
	errUnauthorized       = errors.New("you need to log in to use this endpoint")
	errCredentialsInvalid = errors.New("invalid username or password")
)

// Registration errors
var (
	errUsernameRequired = errors.New("the username must be set")
	errEmailRequired    = errors.New("the email must be set")
	errPasswordTooShort = errors.New("the password must be at least 6 characters long")
)

// Receipt errors
var (
	errNoFileSent      = errors.New("you must send a file to this endpoint")
	errReceiptFileType = errors.New("receipts can only be png, jpg, jpeg or pdf files")
	errFileTooLarge    = errors.New("the file you sent is too large")
	errNoReceipt       = errors.New("this transaction has no receipt")
)

// Dashboard errors
var errMonthNotSetInQuery = errors.New("the month query parameter must be set")
