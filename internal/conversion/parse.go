package conversion

import (
	"regexp"
	"strconv"
	"strings"
)

const softHyphen = "\u00ad"

var unicodeFractions = []displayFraction{
	{1.0 / 4, "¼"},
	{1.0 / 2, "½"},
	{3.0 / 4, "¾"},
	{1.0 / 3, "⅓"},
	{2.0 / 3, "⅔"},
	{1.0 / 8, "⅛"},
	{3.0 / 8, "⅜"},
	{5.0 / 8, "⅝"},
	{7.0 / 8, "⅞"},
}

var (
	mixedFractionRe  = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)$`)
	simpleFractionRe = regexp.MustCompile(`^(\d+)/(\d+)$`)
	rangeRe          = regexp.MustCompile(`^([\d./\s]+)\s+to\s+([\d./\s]+)$`)
	parenCupRe       = regexp.MustCompile(`(?i)\(([^)]+cup[^)]*)\)`)
	parenAmountRe    = regexp.MustCompile(`(?i)^([\d\s/]+)\s*cup`)
	volumeRe         = regexp.MustCompile(`^([\d\s/.]+)\s+(\w+)`)
)

// ParseFraction reads quantities such as "4 1/4", "1/2", "2½" or "2.5".
func ParseFraction(text string) (float64, bool) {
	text = strings.TrimSpace(text)

	for _, f := range unicodeFractions {
		if !strings.Contains(text, f.glyph) {
			continue
		}
		rest := strings.TrimSpace(strings.ReplaceAll(text, f.glyph, ""))
		if rest == "" {
			return f.value, true
		}
		base, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, false
		}
		return base + f.value, true
	}

	if m := mixedFractionRe.FindStringSubmatch(text); m != nil {
		whole, _ := strconv.Atoi(m[1])
		num, _ := strconv.Atoi(m[2])
		den, _ := strconv.Atoi(m[3])
		if den == 0 {
			return 0, false
		}
		return float64(whole) + float64(num)/float64(den), true
	}

	if m := simpleFractionRe.FindStringSubmatch(text); m != nil {
		num, _ := strconv.Atoi(m[1])
		den, _ := strconv.Atoi(m[2])
		if den == 0 {
			return 0, false
		}
		return float64(num) / float64(den), true
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseRange reads "140 to 170" as the midpoint of the range and anything
// else as a single quantity.
func ParseRange(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if m := rangeRe.FindStringSubmatch(text); m != nil {
		lo, okLo := ParseFraction(m[1])
		hi, okHi := ParseFraction(m[2])
		if okLo && okHi {
			return (lo + hi) / 2, true
		}
	}
	return ParseFraction(text)
}

// ParseVolumeText reads chart volumes such as "1 cup", "2 tablespoons" or
// "8 tablespoons (1/2 cup)". A parenthetical cup measurement is preferred.
// Unit names come back lower-cased with cups collapsed to "cup".
func ParseVolumeText(text string) (float64, string, bool) {
	text = strings.TrimSpace(strings.ReplaceAll(text, softHyphen, ""))

	if m := parenCupRe.FindStringSubmatch(text); m != nil {
		inner := strings.TrimSpace(m[1])
		if am := parenAmountRe.FindStringSubmatch(inner); am != nil {
			if amount, ok := ParseFraction(am[1]); ok {
				return amount, "cup", true
			}
		}
	}

	m := volumeRe.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	amount, ok := ParseFraction(m[1])
	if !ok {
		return 0, "", false
	}
	unit := strings.ToLower(m[2])
	switch unit {
	case "tablespoon", "tablespoons":
		unit = "tablespoons"
	case "teaspoon", "teaspoons":
		unit = "teaspoons"
	case "cup", "cups":
		unit = "cup"
	}
	return amount, unit, true
}
