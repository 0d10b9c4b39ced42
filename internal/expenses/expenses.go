// Package expenses implements queries over an ordered list of expenses.
//
// Every function except Add is read-only: filters return freshly allocated
// slices and aggregates return scalars, so the caller's list is never touched.
package expenses

import "github.com/cleared-dev/tally/internal/model"

// Add constructs an Expense and appends it to list.
func Add(list *[]model.Expense, amount float64, category, date string) {
	*list = append(*list, model.NewExpense(amount, category, date))
}

// FilterByDate returns the expenses whose date equals date, in list order.
func FilterByDate(list []model.Expense, date string) []model.Expense {
	return filter(list, func(e model.Expense) bool { return e.Date == date })
}

// FilterByCategory returns the expenses whose category equals category
// (case-sensitive), in list order.
func FilterByCategory(list []model.Expense, category string) []model.Expense {
	return filter(list, func(e model.Expense) bool { return e.Category == category })
}

// Total returns the sum of all amounts, or 0 for an empty list.
func Total(list []model.Expense) float64 {
	var sum float64
	for _, e := range list {
		sum += e.Amount
	}
	return sum
}

// TotalByCategory returns the sum of amounts in category.
func TotalByCategory(list []model.Expense, category string) float64 {
	var sum float64
	for _, e := range list {
		if e.Category == category {
			sum += e.Amount
		}
	}
	return sum
}

// CountByCategory returns how many expenses are in category.
func CountByCategory(list []model.Expense, category string) int {
	n := 0
	for _, e := range list {
		if e.Category == category {
			n++
		}
	}
	return n
}

// FindMax returns the expense with the greatest amount. Among equal amounts
// the earliest one wins. Reports false when list is empty.
func FindMax(list []model.Expense) (model.Expense, bool) {
	return extremum(list, func(a, b float64) bool { return a > b })
}

// FindMin returns the expense with the least amount. Among equal amounts
// the earliest one wins. Reports false when list is empty.
func FindMin(list []model.Expense) (model.Expense, bool) {
	return extremum(list, func(a, b float64) bool { return a < b })
}

// extremum keeps the current best unless a later amount strictly beats it.
// Any comparison involving NaN is false, so NaN ties with everything.
func extremum(list []model.Expense, beats func(a, b float64) bool) (model.Expense, bool) {
	if len(list) == 0 {
		return model.Expense{}, false
	}
	best := list[0]
	for _, e := range list[1:] {
		if beats(e.Amount, best.Amount) {
			best = e
		}
	}
	return best, true
}

func filter(list []model.Expense, keep func(model.Expense) bool) []model.Expense {
	result := []model.Expense{}
	for _, e := range list {
		if keep(e) {
			result = append(result, e)
		}
	}
	return result
}
