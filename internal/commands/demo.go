package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/expenses"
	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/report"
)

func newDemoCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in example session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd, opts, cfg)
			if err != nil {
				return err
			}
			return runDemo(cmd.OutOrStdout(), logger, !opts.noColor)
		},
	}
}

func runDemo(out io.Writer, logger *slog.Logger, color bool) error {
	var list []model.Expense
	expenses.Add(&list, 45.50, "food", "2026-01-08")
	expenses.Add(&list, 20.00, "transport", "2026-01-08")
	expenses.Add(&list, 100.00, "rent", "2026-01-08")
	expenses.Add(&list, 30.00, "food", "2026-01-07")
	logger.Debug("demo expenses added", "count", len(list))

	w := report.NewWriter(out, color)
	w.Title("Expense Tracker")

	w.Heading("All Expenses")
	w.Expenses(list)
	w.Money("Total", expenses.Total(list))

	w.Heading("Expenses for 2026-01-08")
	w.Expenses(expenses.FilterByDate(list, "2026-01-08"))

	w.Heading("Food expenses")
	w.Expenses(expenses.FilterByCategory(list, "food"))
	w.Money("Food total", expenses.TotalByCategory(list, "food"))

	if most, ok := expenses.FindMax(list); ok {
		w.Heading("Most expensive")
		w.Expense(most)
	}

	w.Heading("Counts")
	w.Count("Food expense count", expenses.CountByCategory(list, "food"))

	return w.Err()
}
