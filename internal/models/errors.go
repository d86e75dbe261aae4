package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// User errors
var (
	ErrUsernameNotUnique = errors.New("this username is already taken")
	ErrEmailNotUnique    = errors.New("this email is already registered")
)

// Category errors
var ErrCategoryNameNotUnique = errors.New("you already have a category with this name")

// Transaction errors
var (
	ErrAmountNotPositive      = errors.New("the transaction amount must be larger than zero")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be income or expense")
	ErrDescriptionRequired    = errors.New("the transaction description must be set")
)
