package quiz

// Badge names awarded at result assembly. Derivation is deterministic over
// the answer set and scores, so recomputing a stored result yields the same
// badge list.
const (
	BadgeNegativeCapability    = "Negative Capability"
	BadgeEthicsMinded          = "Ethics Minded"
	BadgeTrendForecaster       = "Trend Forecaster"
	BadgeCrossDomainIntegrator = "Cross-Domain Integrator"
	BadgeAestheticSeeker       = "Aesthetic Seeker"
	BadgeInnovationPioneer     = "Innovation Pioneer"
	BadgeInfluenceAmplifier    = "Influence Amplifier"
)

// DeriveBadges inspects individual answers and the aggregated scores for
// badge-worthy signals. Order is fixed for stable display.
func DeriveBadges(answers *AnswerSet, scores DimensionScores) []string {
	badges := []string{}

	if a, ok := answers.Get("Q4.2"); ok && a.Value.Kind == KindScale {
		if a.Value.Ratings["negative"] >= 4 {
			badges = append(badges, BadgeNegativeCapability)
		}
		if a.Value.Ratings["ethics"] >= 4 {
			badges = append(badges, BadgeEthicsMinded)
		}
	}

	if a, ok := answers.Get("Q5.2"); ok && len(a.Value.Choices) >= 5 {
		badges = append(badges, BadgeTrendForecaster)
	}

	if a, ok := answers.Get("Q3.3"); ok && len(a.Value.Text) >= 100 {
		badges = append(badges, BadgeCrossDomainIntegrator)
	}

	if scores.Aesthetics >= 8 {
		badges = append(badges, BadgeAestheticSeeker)
	}
	if scores.Innovation >= 8 {
		badges = append(badges, BadgeInnovationPioneer)
	}
	if scores.Influence >= 8 {
		badges = append(badges, BadgeInfluenceAmplifier)
	}

	return badges
}

// highlightLimit caps how much of a free-text answer is surfaced verbatim.
const highlightLimit = 100

// DeriveHighlights pulls short verbatim excerpts worth showing back to the
// respondent, currently the proudest-moment calibration answer.
func DeriveHighlights(answers *AnswerSet) []string {
	highlights := []string{}
	if a, ok := answers.Get("Q9.2"); ok && len(a.Value.Text) > 20 {
		text := a.Value.Text
		if r := []rune(text); len(r) > highlightLimit {
			text = string(r[:highlightLimit])
		}
		highlights = append(highlights, text)
	}
	return highlights
}

// DeriveBias reads the self-reported calibration label, defaulting when the
// calibration part went unanswered.
func DeriveBias(answers *AnswerSet) string {
	if a, ok := answers.Get("Q9.1"); ok && a.Value.Choice != "" {
		return a.Value.Choice
	}
	return BiasMostlyAligned
}
