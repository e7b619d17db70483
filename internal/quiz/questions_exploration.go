package quiz

// Exploration-track catalog. The theory part here is awareness-oriented;
// engineering is shared with the technical track (hands-on experience still
// counts), and the rest comes from sharedQuestions. For the self-starter
// identity the engineering part is dropped entirely by QuestionsForTrack.
var explorationQuestions = []Question{
	// PART 1: theory (awareness)
	{
		ID:        "Q1.1-explore",
		Part:      "PART 1",
		Dimension: DimensionTheory,
		Title:     "Which AI ideas could you describe accurately to a curious friend?",
		Kind:      KindMulti,
		Options: []Option{
			{Value: "training", Label: "Roughly how models learn from data"},
			{Value: "hallucination", Label: "Why AI confidently makes things up"},
			{Value: "capability", Label: "What today's AI is genuinely good and bad at"},
			{Value: "agents", Label: "What people mean by AI agents"},
			{Value: "safety", Label: "Why AI safety is debated and what's at stake"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			return capScore(float64(len(v.Choices)) / 5 * 10)
		},
	},
	{
		ID:        "Q1.2-explore",
		Part:      "PART 1",
		Dimension: DimensionTheory,
		Title:     "Rate yourself (1-5): I have a considered view on how AI should and shouldn't be used",
		Kind:      KindScale,
		Options: []Option{
			{Value: "ethics", Label: "I have a considered view on appropriate AI use"},
		},
		Required: true,
		FollowUp: &FollowUp{
			Prompt:    "Share the view briefly:",
			Condition: func(v Value) bool { return v.Ratings["ethics"] >= 4 },
		},
		Score: func(v Value, _ string) float64 {
			return capScore(v.Ratings["ethics"] / 5 * 10)
		},
	},
	{
		ID:        "Q1.3-explore",
		Part:      "PART 1",
		Dimension: DimensionTheory,
		Title:     "Where does your AI knowledge come from? (multi)",
		Kind:      KindMulti,
		Options: []Option{
			{Value: "news", Label: "Mainstream tech news"},
			{Value: "youtube", Label: "Video explainers"},
			{Value: "podcast", Label: "Podcasts and interviews"},
			{Value: "newsletter", Label: "Specialist newsletters"},
			{Value: "x", Label: "Following researchers and builders directly"},
			{Value: "arxiv", Label: "Occasionally reading papers or abstracts"},
			{Value: "friends", Label: "Conversations with people in the field"},
			{Value: "lab", Label: "AI lab blogs and release notes"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			count := len(v.Choices)
			score := float64(count) / 8 * 10
			primary := hasChoice(v, "lab") || hasChoice(v, "arxiv") || hasChoice(v, "x")
			if primary && count >= 3 {
				score++
			}
			return capScore(score)
		},
	},
	{
		ID:        "Q1.4-explore",
		Part:      "PART 1",
		Dimension: DimensionTheory,
		Title:     "A headline claims a new model \"beats humans\" at something. You:",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. Dig in: find what was actually measured and under what conditions"},
			{Value: "B", Label: "B. Cross-check: wait for independent takes before forming a view"},
			{Value: "C", Label: "C. Calibrated doubt: assume it's narrower than the headline"},
			{Value: "D", Label: "D. Take note: file it as another sign of progress"},
		},
		Required: true,
		FollowUp: &FollowUp{
			Prompt:    "Give one example where you did this:",
			Condition: func(v Value) bool { return v.Choice == "A" },
		},
		Score: func(v Value, text string) float64 {
			switch {
			case v.Choice == "A" && len(text) > 20:
				return 9
			case v.Choice == "A":
				return 8.5
			case v.Choice == "B":
				return 7.5
			case v.Choice == "C":
				return 6.5
			default:
				return 5
			}
		},
	},
}
