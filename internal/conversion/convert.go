package conversion

import "math"

// ToWeightGrams converts a volume amount to whole grams using a density in
// grams per cup. It reports false when the unit is not a volume unit or when
// the amount or density is missing.
func ToWeightGrams(amount float64, unit string, gramsPerCup float64) (int, bool) {
	if amount == 0 || gramsPerCup == 0 {
		return 0, false
	}
	factor, ok := CupsPerUnit(unit)
	if !ok {
		return 0, false
	}
	return roundInt(amount * factor * gramsPerCup), true
}

// ToWeightFromCount converts a count of items to whole grams.
func ToWeightFromCount(amount, avgWeightGrams float64) int {
	return roundInt(amount * avgWeightGrams)
}

// ConvertVolume expresses amount of from in units of to. Both units must be
// in the unit table.
func ConvertVolume(amount float64, from, to string) (float64, bool) {
	fromCups, ok := CupsPerUnit(from)
	if !ok {
		return 0, false
	}
	toCups, ok := CupsPerUnit(to)
	if !ok {
		return 0, false
	}
	return amount * fromCups / toCups, true
}

// NormalizeToGramsPerCup derives a density from a reference measurement such
// as "2 tablespoons weigh 14 g". The result is rounded to one decimal.
func NormalizeToGramsPerCup(volumeAmount float64, volumeUnit string, grams float64) (float64, bool) {
	factor, ok := CupsPerUnit(volumeUnit)
	if !ok {
		return 0, false
	}
	cups := volumeAmount * factor
	if cups == 0 {
		return 0, false
	}
	return math.RoundToEven(grams/cups*10) / 10, true
}

// roundInt rounds half to even so 2.5 g becomes 2 g and 3.5 g becomes 4 g.
func roundInt(v float64) int {
	return int(math.RoundToEven(v))
}
