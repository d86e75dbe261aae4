package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryAmount is the summed expense amount for a single category.
type CategoryAmount struct {
	Name   string          `json:"name" example:"Food & Dining"` // Name of the category
	Amount decimal.Decimal `json:"amount" example:"450"`         // Summed expense amount
}

// transactionsSum sums the amounts of all transactions matched by the query.
// An empty result set sums to zero, not an error.
func transactionsSum(q *gorm.DB) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := q.Select("SUM(amount)").Row().Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing transactions failed: %w", err)
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// Balance returns the signed total over all of the user's transactions:
// the sum of all income minus the sum of all expenses, with no date bound.
func Balance(userID uuid.UUID) (decimal.Decimal, error) {
	income, err := transactionsSum(DB.Model(&Transaction{}).
		Where(&Transaction{UserID: userID, Type: TypeIncome}))
	if err != nil {
		return decimal.Zero, err
	}

	expenses, err := transactionsSum(DB.Model(&Transaction{}).
		Where(&Transaction{UserID: userID, Type: TypeExpense}))
	if err != nil {
		return decimal.Zero, err
	}

	return income.Sub(expenses), nil
}

// MonthlySummary returns the summed income and expenses for all transactions
// whose effective date falls into the month. Both sums are zero for months
// without transactions.
func MonthlySummary(userID uuid.UUID, month types.Month) (income, expenses decimal.Decimal, err error) {
	from := month.Start()
	until := month.AddDate(0, 1).Start()

	income, err = transactionsSum(DB.Model(&Transaction{}).
		Where(&Transaction{UserID: userID, Type: TypeIncome}).
		Where("date >= ? AND date < ?", from, until))
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	expenses, err = transactionsSum(DB.Model(&Transaction{}).
		Where(&Transaction{UserID: userID, Type: TypeExpense}).
		Where("date >= ? AND date < ?", from, until))
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return income, expenses, nil
}

// CategoryBreakdown returns the expense sum per category for the month.
//
// Only categories with at least one qualifying expense appear. Expenses
// without a category are not part of the breakdown, but they do count
// towards the expense total of MonthlySummary.
func CategoryBreakdown(userID uuid.UUID, month types.Month) ([]CategoryAmount, error) {
	var breakdown []CategoryAmount

	err := DB.Model(&Transaction{}).
		Select("categories.name AS name, SUM(transactions.amount) AS amount").
		Joins("JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", userID).
		Where("transactions.type = ?", TypeExpense).
		Where("transactions.date >= ? AND transactions.date < ?", month.Start(), month.AddDate(0, 1).Start()).
		Group("categories.name").
		Scan(&breakdown).Error
	if err != nil {
		return nil, fmt.Errorf("getting category breakdown failed: %w", err)
	}

	return breakdown, nil
}

// RecentTransactions returns the limit most recently created transactions
// of the user, newest first. Ordering is by creation time, not by the
// effective date.
func RecentTransactions(userID uuid.UUID, limit int) ([]Transaction, error) {
	var transactions []Transaction

	err := DB.
		Preload("Category").
		Where(&Transaction{UserID: userID}).
		Order("datetime(created_at) DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("getting recent transactions failed: %w", err)
	}

	return transactions, nil
}
