package recipeclip

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// quantityRe matches a leading quantity token: an integer, a decimal with
// either separator, or a simple vulgar fraction like "1/2".
var quantityRe = regexp.MustCompile(`^(\d+\s*/\s*\d+|\d+(?:[.,]\d+)?)`)

// Scaler rescales ingredient lines by a serving-size factor, formatting
// the scaled quantity for a given locale.
//
// Scaling is a best-effort heuristic over the leading quantity token only;
// in a line like "2 cups and 1 tbsp" only the "2" is rescaled.
type Scaler struct {
	printer *message.Printer
}

// NewScaler creates a Scaler that formats quantities for the given locale.
func NewScaler(tag language.Tag) *Scaler {
	return &Scaler{printer: message.NewPrinter(tag)}
}

// Scale multiplies the leading quantity of an ingredient line by factor
// and substitutes it back, leaving the rest of the line untouched.
//
// A line without a leading quantity is returned unchanged; callers detect
// that by comparing against the input and flag the line as unscaled.
func (s *Scaler) Scale(line string, factor float64) string {
	token := quantityRe.FindString(line)
	if token == "" {
		return line
	}

	value, ok := parseQuantity(token)
	if !ok {
		return line
	}

	return s.formatQuantity(value*factor) + line[len(token):]
}

// ScaleAll rescales every line of an ingredient list. The returned flags
// slice marks lines that could not be scaled.
func (s *Scaler) ScaleAll(lines []string, factor float64) (scaled []string, unscaled []bool) {
	scaled = make([]string, len(lines))
	unscaled = make([]bool, len(lines))
	for i, line := range lines {
		scaled[i] = s.Scale(line, factor)
		unscaled[i] = scaled[i] == line && factor != 1
	}
	return scaled, unscaled
}

// formatQuantity renders a quantity with at most two fraction digits using
// the scaler's locale conventions. Grouping separators are suppressed:
// a grouped "2,000" (or German "1.500") would be re-read as a decimal the
// next time the line is scaled.
func (s *Scaler) formatQuantity(v float64) string {
	return s.printer.Sprint(number.Decimal(v,
		number.MaxFractionDigits(2),
		number.NoSeparator(),
	))
}

// parseQuantity converts a matched quantity token to a float.
func parseQuantity(token string) (float64, bool) {
	if strings.Contains(token, "/") {
		num, den, _ := strings.Cut(token, "/")
		n, err := strconv.Atoi(strings.TrimSpace(num))
		if err != nil {
			return 0, false
		}
		d, err := strconv.Atoi(strings.TrimSpace(den))
		if err != nil || d == 0 {
			return 0, false
		}
		return float64(n) / float64(d), true
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(token, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
