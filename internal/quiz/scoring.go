package quiz

import "math"

const (
	engineeringFallbackRatio = 0.6
	engineeringFallbackFloor = 3
)

// ComputeDimensionScores aggregates a track catalog and its answers into the
// eight dimension values plus a per-dimension breakdown. Missing, malformed
// and unscorable answers are skipped; a dimension with no scorable answers
// averages to zero, except engineering which falls back to a discounted mean
// of the other seven so track filtering cannot zero the classifier axis.
func ComputeDimensionScores(questions []Question, answers *AnswerSet) (DimensionScores, []DimensionBreakdown) {
	sums := map[Dimension]float64{}
	counts := map[Dimension]int{}
	perQuestion := map[Dimension][]QuestionScore{}

	for _, q := range questions {
		if !isScoredDimension(q.Dimension) {
			continue
		}
		a, ok := answers.Get(q.ID)
		if !ok || !wellFormed(q.Kind, a.Value) {
			continue
		}
		score := q.Score(a.Value, a.FollowUpText)
		if score == 0 {
			continue
		}
		score = clampScore(score)
		sums[q.Dimension] += score
		counts[q.Dimension]++
		perQuestion[q.Dimension] = append(perQuestion[q.Dimension], QuestionScore{
			QuestionID:    q.ID,
			QuestionTitle: q.Title,
			Score:         score,
			MaxScore:      10,
		})
	}

	// Dimension values stay exact. The classifier compares raw axis
	// composites, so rounding here would turn sub-0.05 margins into ties.
	var scores DimensionScores
	for _, d := range ScoredDimensions {
		if counts[d] > 0 {
			scores.set(d, sums[d]/float64(counts[d]))
		}
	}

	engineeringDefault := false
	if counts[DimensionEngineering] == 0 {
		var total float64
		for _, d := range ScoredDimensions {
			if d != DimensionEngineering {
				total += scores.Get(d)
			}
		}
		scores.Engineering = math.Max(engineeringFallbackRatio*total/7, engineeringFallbackFloor)
		engineeringDefault = true
	}

	breakdown := make([]DimensionBreakdown, 0, len(ScoredDimensions))
	for _, d := range ScoredDimensions {
		breakdown = append(breakdown, DimensionBreakdown{
			Dimension:      d,
			QuestionScores: perQuestion[d],
			AverageScore:   round1(scores.Get(d)),
			IsDefault:      d == DimensionEngineering && engineeringDefault,
		})
	}
	return scores, breakdown
}

func isScoredDimension(d Dimension) bool {
	for _, sd := range ScoredDimensions {
		if d == sd {
			return true
		}
	}
	return false
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 10 {
		return 10
	}
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
