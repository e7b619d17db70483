package quiz

// Application-track catalog. Theory and engineering are replaced with
// practice-oriented variants; the remaining parts come from sharedQuestions.
var applicationQuestions = []Question{
	// PART 1: theory (applied understanding)
	{
		ID:        "Q1.1-app",
		Part:      "PART 1",
		Dimension: DimensionTheory,
		Title:     "Which of these can you explain to a non-technical colleague in plain language?",
		Kind:      KindMulti,
		Options: []Option{
			{Value: "llm", Label: "Why large models sometimes talk nonsense (hallucination)"},
			{Value: "context", Label: "Why conversations degrade as they get long (context limits)"},
			{Value: "prompt", Label: "Why phrasing the request differently changes the answer (prompting)"},
			{Value: "finetune", Label: "When you need fine-tuning vs just better prompts"},
			{Value: "rag", Label: "How giving the model your documents makes answers grounded (RAG)"},
			{Value: "agent", Label: "What makes an agent different from a chatbot"},
			{Value: "cost", Label: "Why some AI calls cost 100x more than others"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			score := float64(len(v.Choices)) / 7 * 10
			if hasChoice(v, "rag") && hasChoice(v, "agent") && hasChoice(v, "cost") {
				score++
			}
			return capScore(score)
		},
	},
	{
		ID:        "Q1.2-app",
		Part:      "PART 1",
		Dimension: DimensionTheory,
		Title:     "A teammate's AI feature gives wildly inconsistent answers. Your first suggestion:",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. Audit the inputs: log real requests and find what varies"},
			{Value: "B", Label: "B. Pin the behavior: lower temperature, add output structure"},
			{Value: "C", Label: "C. Swap models: try a stronger or more suitable model"},
			{Value: "D", Label: "D. Add guardrails: validate outputs and retry on failure"},
		},
		Required: true,
		FollowUp: &FollowUp{
			Prompt:    "Describe a time you diagnosed an AI quality issue this way:",
			Condition: func(v Value) bool { return v.Choice == "A" },
		},
		Score: func(v Value, text string) float64 {
			switch {
			case v.Choice == "A" && len(text) > 20:
				return 9
			case v.Choice == "A":
				return 8
			case v.Choice == "B":
				return 7
			case v.Choice == "C":
				return 6
			default:
				return 4
			}
		},
	},
	{
		ID:        "Q1.3-app",
		Part:      "PART 1",
		Dimension: DimensionTheory,
		Title:     "Rate your working knowledge (1-5):",
		Kind:      KindScale,
		Options: []Option{
			{Value: "models", Label: "I know which mainstream models suit which tasks"},
			{Value: "limits", Label: "I can predict where an AI feature will break before building it"},
			{Value: "tradeoffs", Label: "I can weigh quality vs cost vs latency for a use case"},
			{Value: "trends", Label: "I can tell durable capability shifts from hype"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			score := ratingsMean(v.Ratings) / 5 * 10
			strong := 0
			for _, r := range v.Ratings {
				if r >= 4 {
					strong++
				}
			}
			if strong >= 2 {
				score++
			}
			return capScore(score)
		},
	},
	{
		ID:        "Q1.4-app",
		Part:      "PART 1",
		Dimension: DimensionTheory,
		Title:     "How did you deepen your AI understanding this year? (multi)",
		Kind:      KindMulti,
		Options: []Option{
			{Value: "course", Label: "Finished a structured course"},
			{Value: "book", Label: "Read a technical book cover to cover"},
			{Value: "docs", Label: "Worked through official docs and cookbooks"},
			{Value: "video", Label: "Followed in-depth video explainers"},
			{Value: "community", Label: "Active in a practitioner community"},
			{Value: "newsletter", Label: "Followed high-quality newsletters"},
			{Value: "experiment", Label: "Ran my own side experiments"},
			{Value: "mentor", Label: "Learned directly from someone more expert"},
			{Value: "teach", Label: "Taught or wrote about it for others"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			count := len(v.Choices)
			score := float64(count) / 9 * 10
			if hasChoice(v, "course") || hasChoice(v, "book") {
				score += 0.5
			}
			highQuality := hasChoice(v, "experiment") && hasChoice(v, "teach")
			if highQuality && count >= 3 {
				score++
			}
			return capScore(score)
		},
	},

	// PART 1: engineering (building with AI)
	{
		ID:        "Q2.1-app",
		Part:      "PART 1",
		Dimension: DimensionEngineering,
		Title:     "What have you actually built or shipped with AI this year? (multi)",
		Kind:      KindMulti,
		Options: []Option{
			{Value: "feature", Label: "An AI feature inside a product users rely on"},
			{Value: "automation", Label: "A workflow automation that saved real hours"},
			{Value: "prototype", Label: "A working prototype that informed a decision"},
			{Value: "integration", Label: "An integration wiring AI into existing systems"},
			{Value: "content", Label: "A content pipeline with AI in the loop"},
			{Value: "internal", Label: "An internal tool colleagues actually use"},
			{Value: "bot", Label: "A bot or assistant serving a real audience"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			switch count := len(v.Choices); {
			case count >= 5:
				return 9
			case count >= 3:
				return 7
			case count >= 2:
				return 5
			default:
				return 3
			}
		},
	},
	{
		ID:        "Q2.2-app",
		Part:      "PART 1",
		Dimension: DimensionEngineering,
		Title:     "Problems you've personally worked through while building with AI:",
		Kind:      KindMulti,
		Options: []Option{
			{Value: "quality", Label: "Output quality: unreliable answers needing systematic fixes"},
			{Value: "cost", Label: "Cost control: API spend forcing a redesign"},
			{Value: "latency", Label: "Latency: responses too slow for the use case"},
			{Value: "integration", Label: "Integration pain: AI outputs breaking downstream systems"},
			{Value: "data", Label: "Data prep: cleaning and structuring inputs the model can use"},
			{Value: "adoption", Label: "Adoption: getting real users to trust and use the feature"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			switch count := len(v.Choices); {
			case count >= 4:
				return 8.5
			case count >= 3:
				return 7
			case count >= 2:
				return 5.5
			default:
				return 3.5
			}
		},
	},
	{
		ID:        "Q2.3-app",
		Part:      "PART 1",
		Dimension: DimensionEngineering,
		Title:     "Your AI demo wowed stakeholders but breaks on real inputs. You:",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. Map the failures: collect breaking inputs, fix by category"},
			{Value: "B", Label: "B. Narrow the scope: ship the slice that works reliably"},
			{Value: "C", Label: "C. Add human review: keep a person in the loop for now"},
			{Value: "D", Label: "D. Reset expectations: tell stakeholders what's actually ready"},
			{Value: "E", Label: "E. Push through: ship and patch as issues surface"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			switch v.Choice {
			case "A":
				return 9
			case "B":
				return 8
			case "C":
				return 6.5
			case "D":
				return 5.5
			default:
				return 4
			}
		},
	},
}
