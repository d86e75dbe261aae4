package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/models"
	pl_uuid "github.com/pocketledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-01-10T00:00:00Z"` // Date the transaction is attributed to. Defaults to the current time.

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Description string                 `json:"description" example:"Lunch"`                               // What the transaction was for
	Type        models.TransactionType `json:"type" example:"expense" enums:"income,expense"`             // Direction of the transaction
	CategoryID  *uuid.UUID             `json:"categoryId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the category, optional
	Notes       string                 `json:"notes" example:"Split with Sam" default:""`                 // Notes about the transaction
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Date:        editable.Date,
		Amount:      editable.Amount,
		Description: editable.Description,
		Type:        editable.Type,
		CategoryID:  editable.CategoryID,
		Notes:       editable.Notes,
	}
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable

	// These fields are computed
	CategoryName *string `json:"categoryName" example:"Food & Dining"`      // Name of the category, if one is set
	HasReceipt   bool    `json:"hasReceipt" example:"true" default:"false"` // Does the transaction have a receipt file?
}

// newTransaction returns the API v1 representation of the resource.
// The Category needs to be preloaded on the model.
func newTransaction(model models.Transaction) Transaction {
	transaction := Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:        model.Date,
			Amount:      model.Amount,
			Description: model.Description,
			Type:        model.Type,
			CategoryID:  model.CategoryID,
			Notes:       model.Notes,
		},
		HasReceipt: model.ReceiptFilename != "",
	}

	if model.Category != nil {
		transaction.CategoryName = &model.Category.Name
	}

	return transaction
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                        // List of transactions
	Error      *string       `json:"error" example:"there is no transaction matching your query"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                  // Pagination information
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"there is no transaction matching your query"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                        // The Transaction data
}

type TransactionQueryFilter struct {
	Month      time.Time              `form:"month" filterField:"false" time_format:"2006-01" time_utc:"1"` // Only transactions in this month, YYYY-MM
	Type       models.TransactionType `form:"type"`                                                         // Only transactions of this type
	CategoryID pl_uuid.UUID           `form:"category"`                                                     // Only transactions of this category
	Offset     uint                   `form:"offset" filterField:"false"`                                   // The offset of the first Transaction returned. Defaults to 0.
	Limit      int                    `form:"limit" filterField:"false"`                                    // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// If the category ID is nil, use an actual nil, not uuid.Nil
	var categoryID *uuid.UUID
	if f.CategoryID != pl_uuid.Nil {
		categoryID = &f.CategoryID.UUID
	}

	// This does not set the month since the date range is handled in
	// the controller function
	return models.Transaction{
		Type:       f.Type,
		CategoryID: categoryID,
	}
}
