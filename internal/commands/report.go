package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/config"
	"github.com/cleared-dev/tally/internal/expenses"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/report"
)

// reportParams holds the resolved inputs for a report run.
type reportParams struct {
	Seed     []config.ExpenseConfig
	From     string // CSV path, "-" for stdin, "" for none
	Added    []string
	Date     string
	Category string
	Format   string
	Color    bool
}

func newReportCommand(opts *globalOptions) *cobra.Command {
	var from, date, category, format string
	var added []string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize a session of expenses",
		Long: `Build an expense list from the config file's seed expenses, an optional
CSV file and any --expense flags (in that order), then print the listing,
totals, extremes and a per-category summary.`,
		Example: `  tally report --expense 45.50:food:2026-01-08 --expense 20:transport:2026-01-08 --category food
  tally report --from expenses.csv --date 2026-01-08
  tally report --from - --format csv < expenses.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd, opts, cfg)
			if err != nil {
				return err
			}

			params := reportParams{
				Seed:     cfg.Expenses,
				From:     from,
				Added:    added,
				Date:     cfg.Report.Date,
				Category: cfg.Report.Category,
				Format:   cfg.Report.Format,
				Color:    !opts.noColor,
			}
			if cmd.Flags().Changed("date") {
				params.Date = date
			}
			if cmd.Flags().Changed("category") {
				params.Category = category
			}
			if cmd.Flags().Changed("format") {
				params.Format = format
			}

			return runReport(cmd.InOrStdin(), cmd.OutOrStdout(), logger, params)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "read expenses from a CSV file (\"-\" for stdin)")
	cmd.Flags().StringArrayVar(&added, "expense", nil, "add an expense as amount:category:date (repeatable)")
	cmd.Flags().StringVar(&date, "date", "", "show expenses for this date")
	cmd.Flags().StringVar(&category, "category", "", "show expenses, total and count for this category")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or csv")

	return cmd
}

func runReport(in io.Reader, out io.Writer, logger *slog.Logger, params reportParams) error {
	if params.Format != "text" && params.Format != "csv" {
		return fmt.Errorf("unknown format %q: want text or csv", params.Format)
	}

	list, err := collect(in, logger, params)
	if err != nil {
		return err
	}

	if params.Format == "csv" {
		if err := expenses.WriteExpenses(out, list); err != nil {
			return fmt.Errorf("writing CSV: %w", err)
		}
		return nil
	}

	w := report.NewWriter(out, params.Color)
	w.Title("Expense Report")

	w.Heading("All Expenses")
	w.Expenses(list)
	w.Money("Total", expenses.Total(list))

	if params.Date != "" {
		byDate := expenses.FilterByDate(list, params.Date)
		w.Heading("Expenses for " + params.Date)
		w.Expenses(byDate)
		w.Money("Total for "+params.Date, expenses.Total(byDate))
	}

	if params.Category != "" {
		w.Heading("Category " + params.Category)
		w.Expenses(expenses.FilterByCategory(list, params.Category))
		w.Money("Total", expenses.TotalByCategory(list, params.Category))
		w.Count("Count", expenses.CountByCategory(list, params.Category))
	}

	if most, ok := expenses.FindMax(list); ok {
		w.Heading("Most expensive")
		w.Expense(most)
	}
	if least, ok := expenses.FindMin(list); ok {
		w.Heading("Least expensive")
		w.Expense(least)
	}

	if len(list) > 0 {
		w.Heading("By category")
		w.Summary(expenses.Summarize(list))
	}

	logger.Debug("report written", "expenses", len(list), "date", params.Date, "category", params.Category)
	return w.Err()
}

// collect assembles the session: config seed, then CSV input, then flags.
func collect(in io.Reader, logger *slog.Logger, params reportParams) ([]model.Expense, error) {
	var list []model.Expense

	for _, s := range params.Seed {
		expenses.Add(&list, s.Amount, s.Category, s.Date)
	}
	logger.Debug("seed expenses loaded", "count", len(params.Seed))

	if params.From != "" {
		fromCSV, err := readCSV(in, params.From)
		if err != nil {
			return nil, err
		}
		for _, e := range fromCSV {
			expenses.Add(&list, e.Amount, e.Category, e.Date)
		}
		logger.Debug("CSV expenses loaded", "source", params.From, "count", len(fromCSV))
	}

	for _, raw := range params.Added {
		e, err := parseExpenseFlag(raw)
		if err != nil {
			return nil, err
		}
		expenses.Add(&list, e.Amount, e.Category, e.Date)
		logger.Debug("expense added", "amount", e.Amount, "category", e.Category, "date", e.Date)
	}

	return list, nil
}

func readCSV(stdin io.Reader, path string) ([]model.Expense, error) {
	if path == "-" {
		list, err := expenses.ReadExpenses(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return list, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	list, err := expenses.ReadExpenses(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return list, nil
}

// parseExpenseFlag parses "amount:category:date". The category is everything
// between the first and last colon, so it may itself contain colons.
func parseExpenseFlag(s string) (model.Expense, error) {
	first := strings.Index(s, ":")
	last := strings.LastIndex(s, ":")
	if first < 0 || first == last {
		return model.Expense{}, fmt.Errorf("invalid --expense %q: want amount:category:date", s)
	}

	amount, err := expenses.ParseAmount(s[:first])
	if err != nil {
		return model.Expense{}, fmt.Errorf("invalid --expense %q: %w", s, err)
	}
	return model.NewExpense(amount, s[first+1:last], s[last+1:]), nil
}
