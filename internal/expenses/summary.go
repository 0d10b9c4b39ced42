package expenses

import "github.com/cleared-dev/tally/internal/model"

// CategorySummary aggregates the expenses of one category.
type CategorySummary struct {
	Category string
	Count    int
	Total    float64
}

// Categories returns the distinct categories in the order they first appear.
func Categories(list []model.Expense) []string {
	seen := make(map[string]bool)
	var result []string
	for _, e := range list {
		if !seen[e.Category] {
			seen[e.Category] = true
			result = append(result, e.Category)
		}
	}
	return result
}

// Summarize groups list by category, in first-seen order.
func Summarize(list []model.Expense) []CategorySummary {
	index := make(map[string]int)
	var result []CategorySummary
	for _, e := range list {
		i, ok := index[e.Category]
		if !ok {
			i = len(result)
			index[e.Category] = i
			result = append(result, CategorySummary{Category: e.Category})
		}
		result[i].Count++
		result[i].Total += e.Amount
	}
	return result
}
