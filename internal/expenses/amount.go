package expenses

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses decimal text such as "45.50", "-3" or "1e2". The
// non-finite spellings accepted by strconv ("NaN", "Inf", "-Inf", ...) are
// also allowed since an expense amount may be any float.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty amount")
	}

	d, err := decimal.NewFromString(s)
	if err == nil {
		return d.InexactFloat64(), nil
	}

	f, ferr := strconv.ParseFloat(s, 64)
	if ferr == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return f, nil
	}
	return 0, fmt.Errorf("parsing amount %q: %w", s, err)
}

// FormatAmount renders f as the shortest decimal that parses back to f.
// Non-finite values are written as "NaN", "+Inf" or "-Inf".
func FormatAmount(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	return decimal.NewFromFloat(f).String()
}
