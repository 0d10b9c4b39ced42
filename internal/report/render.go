// Package report renders expense listings for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/cleared-dev/tally/internal/expenses"
	"github.com/cleared-dev/tally/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	colorText    = lipgloss.Color("#FFFCF0")
	colorTextDim = lipgloss.Color("#575653")
	colorAccent  = lipgloss.Color("#3AA99F")
	colorGreen   = lipgloss.Color("#879A39")
)

// Writer prints report sections to an io.Writer. The first write error is
// kept and returned by Err; later writes become no-ops.
type Writer struct {
	out     io.Writer
	err     error
	started bool

	title   lipgloss.Style
	heading lipgloss.Style
	value   lipgloss.Style
	money   lipgloss.Style
	dim     lipgloss.Style
}

// NewWriter returns a Writer for out. With color false all styling is
// dropped and the output is plain text.
func NewWriter(out io.Writer, color bool) *Writer {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Writer{
		out:     out,
		title:   r.NewStyle().Bold(true).Foreground(colorText),
		heading: r.NewStyle().Bold(true).Foreground(colorAccent),
		value:   r.NewStyle().Foreground(colorText),
		money:   r.NewStyle().Foreground(colorGreen),
		dim:     r.NewStyle().Foreground(colorTextDim),
	}
}

// FormatMoney formats an amount the same way model.Expense does.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// Title prints "=== title ===".
func (w *Writer) Title(title string) {
	w.section()
	w.println(w.title.Render("=== " + title + " ==="))
}

// Heading starts a new section, separated from the previous one by a blank line.
func (w *Writer) Heading(text string) {
	w.section()
	w.println(w.heading.Render(text + ":"))
}

// Expenses prints one line per expense, or "(none)" for an empty list.
func (w *Writer) Expenses(list []model.Expense) {
	if len(list) == 0 {
		w.println(w.dim.Render("(none)"))
		return
	}
	for _, e := range list {
		w.println(w.value.Render(e.String()))
	}
}

// Expense prints a single expense.
func (w *Writer) Expense(e model.Expense) {
	w.println(w.value.Render(e.String()))
}

// Money prints "label: $amount".
func (w *Writer) Money(label string, amount float64) {
	w.println(label + ": " + w.money.Render(FormatMoney(amount)))
}

// Count prints "label: n".
func (w *Writer) Count(label string, n int) {
	w.println(label + ": " + w.value.Render(strconv.Itoa(n)))
}

// Summary prints a bordered category table.
func (w *Writer) Summary(rows []expenses.CategorySummary) {
	headers := []string{"Category", "Count", "Total"}
	cells := make([][]string, len(rows))
	for i, s := range rows {
		cells[i] = []string{s.Category, strconv.Itoa(s.Count), FormatMoney(s.Total)}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	w.println(w.border("╭", "┬", "╮", widths))
	w.println(w.row(headers, widths, w.heading))
	w.println(w.border("├", "┼", "┤", widths))
	for _, row := range cells {
		w.println(w.row(row, widths, w.value))
	}
	w.println(w.border("╰", "┴", "╯", widths))
}

// Err returns the first write error, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) border(left, mid, right string, widths []int) string {
	parts := make([]string, len(widths))
	for i, width := range widths {
		parts[i] = strings.Repeat("─", width+2)
	}
	return w.dim.Render(left + strings.Join(parts, mid) + right)
}

// row left-aligns the first column and right-aligns the rest.
func (w *Writer) row(cells []string, widths []int, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(w.dim.Render("│"))
	for i, c := range cells {
		pad := strings.Repeat(" ", widths[i]-lipgloss.Width(c))
		if i == 0 {
			b.WriteString(style.Render(" " + c + pad + " "))
		} else {
			b.WriteString(style.Render(" " + pad + c + " "))
		}
		b.WriteString(w.dim.Render("│"))
	}
	return b.String()
}

func (w *Writer) section() {
	if w.started {
		w.println("")
	}
	w.started = true
}

func (w *Writer) println(s string) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintln(w.out, s)
}
