package quiz

import "strings"

// refinedThreshold is the aesthetics score at or above which a type earns the
// refined qualifier.
const refinedThreshold = 8.0

// Classify maps dimension scores onto a three-axis type code. Each axis is a
// strict comparison; a tie falls to the axis's second label. The returned code
// is always well formed; ok reports whether it resolved to a catalogued type.
func Classify(scores DimensionScores) (code string, refined bool, ok bool) {
	axis1 := "C"
	if scores.Theory > scores.Engineering {
		axis1 = "A"
	}

	axis2 := "D"
	if (scores.Radar+scores.Learning)/2 > (scores.Theory+scores.Engineering)/2 {
		axis2 = "B"
	}

	axis3 := "O"
	if scores.Innovation > (scores.Collaboration+scores.Influence)/2 {
		axis3 = "I"
	}

	code = strings.Join([]string{axis1, axis2, axis3}, "-")
	_, ok = PersonalityTypeByCode(code)
	return code, scores.Aesthetics >= refinedThreshold, ok
}
