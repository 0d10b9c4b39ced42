package expenses

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tally/internal/model"
)

// sample builds the four-expense list used throughout these tests.
func sample() []model.Expense {
	var list []model.Expense
	Add(&list, 45.50, "food", "2026-01-08")
	Add(&list, 20.00, "transport", "2026-01-08")
	Add(&list, 100.00, "rent", "2026-01-08")
	Add(&list, 30.00, "food", "2026-01-07")
	return list
}

func TestAdd(t *testing.T) {
	var list []model.Expense
	for i := 1; i <= 5; i++ {
		Add(&list, 20.0, "food", "2024-06-01")
		require.Len(t, list, i)
	}
	assert.Equal(t, model.NewExpense(20.0, "food", "2024-06-01"), list[0])
	assert.Equal(t, list[0], list[4], "duplicates are kept, not merged")
}

func TestSampleScenario(t *testing.T) {
	list := sample()

	assert.InDelta(t, 195.50, Total(list), 1e-9)

	byDate := FilterByDate(list, "2026-01-08")
	require.Len(t, byDate, 3)
	assert.Equal(t, list[:3], byDate)

	assert.InDelta(t, 75.50, TotalByCategory(list, "food"), 1e-9)
	assert.Equal(t, 2, CountByCategory(list, "food"))

	most, ok := FindMax(list)
	require.True(t, ok)
	assert.Equal(t, model.NewExpense(100.00, "rent", "2026-01-08"), most)

	least, ok := FindMin(list)
	require.True(t, ok)
	assert.Equal(t, model.NewExpense(20.00, "transport", "2026-01-08"), least)
}

func TestFilterByCategory(t *testing.T) {
	list := sample()

	tests := []struct {
		category string
		want     []model.Expense
	}{
		{"food", []model.Expense{list[0], list[3]}},
		{"rent", []model.Expense{list[2]}},
		{"Food", []model.Expense{}},
		{"", []model.Expense{}},
	}
	for _, tt := range tests {
		got := FilterByCategory(list, tt.category)
		assert.Equal(t, tt.want, got, "FilterByCategory(%q)", tt.category)
		assert.Equal(t, len(got), CountByCategory(list, tt.category))
		assert.Equal(t, Total(got), TotalByCategory(list, tt.category))
	}
}

func TestFilterByDate_NoMatch(t *testing.T) {
	got := FilterByDate(sample(), "2026-01-09")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_DoesNotAliasInput(t *testing.T) {
	list := sample()
	got := FilterByDate(list, "2026-01-08")
	got[0] = model.NewExpense(1, "changed", "2026-01-08")
	assert.Equal(t, "food", list[0].Category)
}

func TestEmptyList(t *testing.T) {
	var list []model.Expense

	assert.Zero(t, Total(list))
	assert.Zero(t, TotalByCategory(list, "food"))
	assert.Zero(t, CountByCategory(list, "food"))
	assert.Empty(t, FilterByDate(list, "2026-01-08"))
	assert.Empty(t, FilterByCategory(list, "food"))

	_, ok := FindMax(list)
	assert.False(t, ok)
	_, ok = FindMin(list)
	assert.False(t, ok)
}

func TestTotal_OrderIndependent(t *testing.T) {
	list := sample()
	reversed := make([]model.Expense, len(list))
	for i, e := range list {
		reversed[len(list)-1-i] = e
	}
	assert.InDelta(t, Total(list), Total(reversed), 1e-9)
}

func TestFindMaxMin_TiesPreferEarliest(t *testing.T) {
	var list []model.Expense
	Add(&list, 5, "a", "d1")
	Add(&list, 50, "b", "d1")
	Add(&list, 50, "c", "d2")
	Add(&list, 5, "d", "d2")

	most, ok := FindMax(list)
	require.True(t, ok)
	assert.Equal(t, "b", most.Category)

	least, ok := FindMin(list)
	require.True(t, ok)
	assert.Equal(t, "a", least.Category)
}

func TestFindMaxMin_Bounds(t *testing.T) {
	list := []model.Expense{
		model.NewExpense(-10, "refund", "d"),
		model.NewExpense(0, "zero", "d"),
		model.NewExpense(7.25, "snack", "d"),
		model.NewExpense(3, "bus", "d"),
	}
	most, _ := FindMax(list)
	least, _ := FindMin(list)
	for _, e := range list {
		assert.GreaterOrEqual(t, most.Amount, e.Amount)
		assert.LessOrEqual(t, least.Amount, e.Amount)
	}
	assert.Equal(t, "snack", most.Category)
	assert.Equal(t, "refund", least.Category)
}

func TestFindMaxMin_NaN(t *testing.T) {
	list := []model.Expense{
		model.NewExpense(10, "a", "d"),
		model.NewExpense(math.NaN(), "nan", "d"),
		model.NewExpense(30, "b", "d"),
	}
	most, ok := FindMax(list)
	require.True(t, ok)
	assert.Equal(t, "b", most.Category)

	least, ok := FindMin(list)
	require.True(t, ok)
	assert.Equal(t, "a", least.Category)

	// A leading NaN compares equal to everything and is never displaced.
	first := []model.Expense{model.NewExpense(math.NaN(), "nan", "d"), model.NewExpense(1, "a", "d")}
	most, ok = FindMax(first)
	require.True(t, ok)
	assert.Equal(t, "nan", most.Category)
}

func TestFindMaxMin_Infinities(t *testing.T) {
	list := []model.Expense{
		model.NewExpense(1, "a", "d"),
		model.NewExpense(math.Inf(1), "up", "d"),
		model.NewExpense(math.Inf(-1), "down", "d"),
	}
	most, _ := FindMax(list)
	least, _ := FindMin(list)
	assert.Equal(t, "up", most.Category)
	assert.Equal(t, "down", least.Category)
	assert.True(t, math.IsNaN(Total(list)))
}

func TestQueries_Idempotent(t *testing.T) {
	list := sample()
	snapshot := append([]model.Expense(nil), list...)

	for i := 0; i < 3; i++ {
		assert.Equal(t, FilterByDate(list, "2026-01-08"), FilterByDate(list, "2026-01-08"))
		assert.Equal(t, Total(list), Total(list))
		a, _ := FindMax(list)
		b, _ := FindMax(list)
		assert.Equal(t, a, b)
		Summarize(list)
	}
	assert.Equal(t, snapshot, list)
}
