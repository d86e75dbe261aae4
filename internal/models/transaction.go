package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single income or expense of a user.
type Transaction struct {
	DefaultModel
	UserID uuid.UUID `gorm:"index"`
	User   User      `json:"-"`

	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description string
	Type        TransactionType

	// Date is the effective date the transaction is attributed to for
	// reporting. It is independent of CreatedAt, which orders the
	// "recent transactions" view.
	Date time.Time

	// CategoryID is optional. When the category is deleted, the
	// reference is set to NULL and the transaction survives.
	CategoryID *uuid.UUID `gorm:"constraint:OnDelete:SET NULL"`
	Category   *Category  `json:"-"`

	// ReceiptFilename references an asset managed by the receipt store.
	// It is the single source of truth for the asset's existence.
	ReceiptFilename string

	Notes string
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - trims whitespace from string fields
//   - validates the amount, type and description
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)
	t.Notes = strings.TrimSpace(t.Notes)

	// Ensure that the Category ID is nil and not a pointer to a nil UUID
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Type != TypeIncome && t.Type != TypeExpense {
		return ErrTransactionTypeInvalid
	}

	if t.Description == "" {
		return ErrDescriptionRequired
	}

	return nil
}
