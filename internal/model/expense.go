package model

import "fmt"

// Expense is a single recorded spending event.
type Expense struct {
	Amount   float64
	Category string
	Date     string // opaque label, conventionally "YYYY-MM-DD"
}

// NewExpense returns an Expense holding the given values verbatim.
func NewExpense(amount float64, category, date string) Expense {
	return Expense{Amount: amount, Category: category, Date: date}
}

// String renders the expense as "$45.50 - food (2026-01-08)".
func (e Expense) String() string {
	return fmt.Sprintf("$%.2f - %s (%s)", e.Amount, e.Category, e.Date)
}
