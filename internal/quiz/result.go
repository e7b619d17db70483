package quiz

// BuildResult runs the whole pipeline for a finished questionnaire: dimension
// aggregation, type classification, badge and highlight derivation. The engine
// never refuses a code it cannot catalog; callers get the placeholder type and
// ok=false and decide how loudly to complain.
func BuildResult(identityName string, questions []Question, answers *AnswerSet) (Result, bool) {
	scores, breakdown := ComputeDimensionScores(questions, answers)
	code, refined, ok := Classify(scores)

	ptype, found := PersonalityTypeByCode(code)
	if !found {
		ptype = UnknownPersonalityType(code)
	}

	return Result{
		Identity:   identityName,
		Type:       ptype,
		Refined:    refined,
		Scores:     scores,
		Badges:     DeriveBadges(answers, scores),
		Highlights: DeriveHighlights(answers),
		Bias:       DeriveBias(answers),
		Answers:    answers.All(),
		Breakdown:  breakdown,
	}, ok
}
