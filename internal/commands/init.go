package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/config"
)

func newInitCommand() *cobra.Command {
	var withSample bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default tally.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, withSample)
		},
	}

	cmd.Flags().BoolVar(&withSample, "sample", false, "seed the config with example expenses")

	return cmd
}

func runInit(out io.Writer, dir string, withSample bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	cfg := config.Default()
	if withSample {
		cfg.Expenses = []config.ExpenseConfig{
			{Amount: 45.50, Category: "food", Date: "2026-01-08"},
			{Amount: 20.00, Category: "transport", Date: "2026-01-08"},
			{Amount: 100.00, Category: "rent", Date: "2026-01-08"},
			{Amount: 30.00, Category: "food", Date: "2026-01-07"},
		}
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
