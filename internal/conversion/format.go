package conversion

import (
	"math"
	"strconv"
	"strings"
)

type displayFraction struct {
	value float64
	glyph string
}

// displayFractions is scanned in order; the first entry within
// fractionTolerance of the fractional part wins.
var displayFractions = []displayFraction{
	{1.0 / 8, "⅛"},
	{1.0 / 4, "¼"},
	{1.0 / 3, "⅓"},
	{3.0 / 8, "⅜"},
	{1.0 / 2, "½"},
	{5.0 / 8, "⅝"},
	{2.0 / 3, "⅔"},
	{3.0 / 4, "¾"},
	{7.0 / 8, "⅞"},
}

// fractionTolerance is exclusive and compared in float64, so decimals that
// sit 0.05 from an entry (0.3 against ¼) may still match it.
const fractionTolerance = 0.05

// FormatAmount renders a quantity for people: whole numbers print as
// integers, common kitchen fractions print as glyphs ("1 ½") and everything
// else falls back to one decimal place.
func FormatAmount(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return ""
	}
	if n == math.Trunc(n) {
		return strconv.FormatFloat(n, 'f', 0, 64)
	}

	base := math.Trunc(n)
	frac := n - base
	for _, f := range displayFractions {
		if math.Abs(frac-f.value) < fractionTolerance {
			if base == 0 {
				return f.glyph
			}
			return strconv.FormatFloat(base, 'f', 0, 64) + " " + f.glyph
		}
	}

	s := strconv.FormatFloat(n, 'f', 1, 64)
	if strings.HasSuffix(s, ".0") {
		return strings.TrimSuffix(s, ".0")
	}
	return s
}

// FormatQuantity joins a formatted amount with its unit.
func FormatQuantity(amount float64, unit string) string {
	return strings.TrimSpace(FormatAmount(amount) + " " + strings.TrimSpace(unit))
}
