package quiz

// Identity part (PART 0). Shown before a track is chosen; never part of a
// track catalog and never scored.
var identityQuestions = []Question{
	{
		ID:        "Q0.1",
		Part:      "PART 0",
		Dimension: DimensionIdentity,
		Title:     "What was your primary AI role this year?",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "Engineering Architect", Label: "Engineering Architect - builds reliable, scalable AI systems"},
			{Value: "Algorithm Researcher", Label: "Algorithm Researcher - digs into model internals, chases breakthroughs"},
			{Value: "AI Founder", Label: "AI Founder - founds or leads an AI-driven product or company"},
			{Value: "Product Shaper", Label: "Product Shaper - creates outstanding user experiences with AI"},
			{Value: "Application Developer", Label: "Application Developer - builds applications on AI APIs and tooling"},
			{Value: "AI Content Creator", Label: "AI Content Creator - produces content with AI in the loop"},
			{Value: "Org Catalyst", Label: "Org Catalyst - drives AI transformation inside an organization"},
			{Value: "Cross-Domain Explorer", Label: "Cross-Domain Explorer - fuses AI with a specific domain"},
			{Value: "AI Self-starter", Label: "AI Self-starter - just getting started, exploring AI"},
			{Value: "AI Investor/Observer", Label: "AI Investor/Observer - evaluates AI from a business angle"},
		},
		Required: true,
		Score:    notScored,
	},
	{
		ID:        "Q0.2",
		Part:      "PART 0",
		Dimension: DimensionIdentity,
		Title:     "What is your main output form? (pick up to 2)",
		Kind:      KindMulti,
		Options: []Option{
			{Value: string(OutputRunningSystems), Label: "Running systems/products"},
			{Value: string(OutputReusedCode), Label: "Reused code/frameworks"},
			{Value: string(OutputInsightfulPapers), Label: "Insightful papers/methodology"},
			{Value: string(OutputSharedContent), Label: "Widely shared content/opinions"},
			{Value: string(OutputBusinessResults), Label: "Quantifiable business results"},
			{Value: string(OutputEfficiencyTools), Label: "Efficiency tools/workflows"},
			{Value: string(OutputCommunityGrowth), Label: "Community building/user growth"},
			{Value: string(OutputInvestmentCalls), Label: "Investment decisions/analysis"},
			{Value: string(OutputAssistedCreation), Label: "AI-assisted creative work"},
		},
		Required: true,
		Score:    notScored,
	},
}

// Calibration part (PART 4). Shared by every track, appended after the scored
// parts. Unscored: the bias label and highlight extraction read these answers
// directly.
var calibrationQuestions = []Question{
	{
		ID:        "Q9.1",
		Part:      "PART 4",
		Dimension: DimensionCalibration,
		Title:     "Looking back over your answers, how does your actual capability profile compare to the identity you picked?",
		Kind:      KindSingle,
		Options: []Option{
			{Value: BiasHighMatch, Label: "High match: my capability spread fits this role perfectly"},
			{Value: BiasMostlyAligned, Label: "Mostly aligned: roughly fits, with one or two dimensions off"},
			{Value: BiasPartialDivergence, Label: "Partial divergence: notable gaps, may need to rethink my positioning"},
			{Value: BiasMajorDivergence, Label: "Major divergence: my actual abilities belong to another role"},
		},
		Required: true,
		Score:    notScored,
	},
	{
		ID:        "Q9.2",
		Part:      "PART 4",
		Dimension: DimensionCalibration,
		Title:     "What was your proudest or most memorable AI moment this year?",
		Kind:      KindText,
		Required:  true,
		Score:     notScored,
	},
	{
		ID:        "Q9.3",
		Part:      "PART 4",
		Dimension: DimensionCalibration,
		Title:     "Next year, where do you want your skill tree to grow?",
		Kind:      KindText,
		Required:  true,
		Score:     notScored,
	},
}

// Technical-track catalog. The theory and engineering parts below are the
// full-depth variants; every other dimension's questions are shared with the
// application and exploration tracks.
var technicalQuestions = []Question{
	// PART 1: theory
	{
		ID:        "Q1.1",
		Part:      "PART 1",
		Dimension: DimensionTheory,
		Title:     "Which of these concepts could you explain to a technical team, including why one design beats another?",
		Kind:      KindMulti,
		Options: []Option{
			{Value: "attention", Label: "Attention evolution: from scaled dot-product to multi-head and multi-query designs", Category: "foundations"},
			{Value: "generation", Label: "Generation paradigms: autoregressive vs diffusion vs flow matching", Category: "foundations"},
			{Value: "scaling", Label: "Scaling behavior: where loss curves bend and what that buys you", Category: "foundations"},
			{Value: "compute", Label: "Inference compute: why test-time compute became the lever", Category: "foundations"},
			{Value: "architecture", Label: "Architecture choices: decoder-only vs encoder-decoder vs hybrids in practice", Category: "systems"},
			{Value: "moe", Label: "MoE in production: expert load balancing and routing strategy trade-offs", Category: "systems"},
			{Value: "rag", Label: "RAG deep water: retrieval-generation mismatch, wasted context windows", Category: "systems"},
			{Value: "finetune", Label: "Efficient fine-tuning: where LoRA's efficiency comes from and its limits", Category: "systems"},
			{Value: "alignment", Label: "Alignment methods: RLHF through DPO/KTO and the over-optimization problem", Category: "alignment"},
			{Value: "safety", Label: "Safety trade-offs: refusal behavior vs helpfulness tuning", Category: "alignment"},
			{Value: "evaluation", Label: "Evaluation design: contamination, saturation, and what benchmarks still measure", Category: "alignment"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			count := len(v.Choices)
			cats := categoryCount(technicalQ11Options, v.Choices)
			switch {
			case count >= 8 && cats >= 3:
				return 9.5
			case count >= 7:
				return 9
			case count >= 5:
				return 7.5
			case count >= 3:
				return 5.5
			default:
				return 3.5
			}
		},
	},
	{
		ID:        "Q1.2",
		Part:      "PART 1",
		Dimension: DimensionTheory,
		Title:     "A model aces internal evals but users hate it. Your first instinct:",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. Distribution mismatch: compare the eval set against real user traffic immediately"},
			{Value: "B", Label: "B. Eval contamination: check whether training data leaked into the eval set"},
			{Value: "C", Label: "C. Usage gap: user prompts differ from the standardized eval flow"},
			{Value: "D", Label: "D. Weak generalization: the model degrades fast outside the training distribution"},
			{Value: "E", Label: "E. Collect more feedback: turn user reports into a new training signal"},
		},
		Required: true,
		FollowUp: &FollowUp{
			Prompt:    "Briefly describe the key finding from the last time you debugged something like this:",
			Condition: func(v Value) bool { return v.Choice == "A" || v.Choice == "B" || v.Choice == "D" },
		},
		Score: func(v Value, _ string) float64 {
			switch v.Choice {
			case "A":
				return 9.5
			case "B", "D":
				return 7.5
			default:
				return 5.5
			}
		},
	},
	{
		ID:        "Q1.3",
		Part:      "PART 1",
		Dimension: DimensionTheory,
		Title:     "Your AI knowledge management style is closest to:",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. Linked garden: a structured, bidirectionally linked, regularly tended knowledge base"},
			{Value: "B", Label: "B. Project-driven: knowledge organized per project, tightly bound to outputs"},
			{Value: "C", Label: "C. Fragment hoard: lots of bookmarks, little integration"},
			{Value: "D", Label: "D. Memory and search: mostly recall plus on-demand lookup"},
		},
		Required: true,
		FollowUp: &FollowUp{
			Prompt:    "Share the single most valuable connection in your knowledge system:",
			Condition: func(v Value) bool { return v.Choice == "A" || v.Choice == "B" },
		},
		Score: func(v Value, text string) float64 {
			switch {
			case v.Choice == "A" && len(text) > 20:
				return 9.5
			case v.Choice == "A":
				return 8
			case v.Choice == "B":
				return 7.5
			case v.Choice == "C":
				return 5.5
			default:
				return 4
			}
		},
	},
	{
		ID:        "Q1.4",
		Part:      "PART 1",
		Dimension: DimensionTheory,
		Title:     "This year you read closely (methods, experiments, analysis) roughly how many AI papers?",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. 30+ (tracking one area in depth)"},
			{Value: "B", Label: "B. 10-30 (selective reading around projects)"},
			{Value: "C", Label: "C. 1-10 (only the landmark papers)"},
			{Value: "D", Label: "D. 0 (mostly surveys and blog posts)"},
		},
		Required: true,
		FollowUp: &FollowUp{
			Prompt:    "Name one paper this year that directly changed how you work:",
			Condition: func(Value) bool { return true },
		},
		Score: func(v Value, text string) float64 {
			switch {
			case v.Choice == "A" && len(text) > 10:
				return 9.5
			case v.Choice == "A":
				return 9
			case v.Choice == "B":
				return 7.5
			case v.Choice == "C":
				return 5.5
			default:
				return 3.5
			}
		},
	},

	// PART 1: engineering
	{
		ID:        "Q2.1",
		Part:      "PART 1",
		Dimension: DimensionEngineering,
		Title:     "Which of these have you personally delivered (or led) this year?",
		Kind:      KindMulti,
		Options: []Option{
			{Value: "api", Label: "Production API service with monitoring, alerting, autoscaling"},
			{Value: "pipeline", Label: "End-to-end training pipeline, data cleaning through deployment"},
			{Value: "agent", Label: "Complex agent workflow: multi-step, stateful, observable"},
			{Value: "eval", Label: "Automated eval platform: continuous regression testing of model quality"},
			{Value: "multimodal", Label: "Multimodal data pipeline: unified image/text/audio handling"},
			{Value: "optimize", Label: "Model optimization: quantization, distillation, hardware-specific inference"},
			{Value: "edge", Label: "Edge/on-device deployment under tight resource budgets"},
			{Value: "gpu", Label: "GPU resource management: virtualization, scheduling, cost attribution"},
			{Value: "platform", Label: "Internal AI platform or toolchain that lifted team productivity"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			switch count := len(v.Choices); {
			case count >= 6:
				return 9.5
			case count >= 4:
				return 7.5
			case count >= 2:
				return 5.5
			default:
				return 3.5
			}
		},
	},
	{
		ID:        "Q2.2",
		Part:      "PART 1",
		Dimension: DimensionEngineering,
		Title:     "Hard engineering problems you solved (or led the fix for) this year:",
		Kind:      KindMulti,
		Options: []Option{
			{Value: "training", Label: "Training stability: root-causing divergence and performance swings"},
			{Value: "resource", Label: "Resource bottlenecks: VRAM leaks and throughput walls under load"},
			{Value: "rag", Label: "RAG quality: retrieval is relevant but generation is poor"},
			{Value: "multiagent", Label: "Multi-agent coordination: deadlocks, loops, conflict resolution"},
			{Value: "online", Label: "Production incidents: latency spikes, error-rate surges"},
			{Value: "data", Label: "Data issues: version confusion causing silent regressions"},
			{Value: "edge", Label: "Edge optimization: squeezing the accuracy/speed trade-off"},
			{Value: "ethics", Label: "Safety and ethics: bias and explainability engineering"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			switch count := len(v.Choices); {
			case count >= 6:
				return 9.5
			case count >= 4:
				return 7.5
			case count >= 2:
				return 5.5
			default:
				return 3.5
			}
		},
	},
	{
		ID:        "Q2.3",
		Part:      "PART 1",
		Dimension: DimensionEngineering,
		Title:     "An AI feature demos perfectly and collapses under load testing. You push for:",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. Harden the floor: stress tests, chaos drills, complete rollback plans"},
			{Value: "B", Label: "B. Controlled release: feature flags and progressive rollout on real traffic"},
			{Value: "C", Label: "C. Rebuild the core: the architecture is fundamentally flawed"},
			{Value: "D", Label: "D. Human escort: ship it, lean on on-call and fast response"},
			{Value: "E", Label: "E. Hold the launch: risk outweighs value, keep iterating"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			switch v.Choice {
			case "A":
				return 9.5
			case "B":
				return 8.5
			case "C":
				return 7.5
			case "D":
				return 5.5
			default:
				return 4.5
			}
		},
	},
}

// technicalQ11Options aliases Q1.1's options for the category-coverage rule.
var technicalQ11Options []Option

// Shared questions for the six dimensions that are identical across tracks.
var sharedQuestions = []Question{
	// PART 2: learning
	{
		ID:        "Q3.1",
		Part:      "PART 2",
		Dimension: DimensionLearning,
		Title:     "How do you usually verify you've actually learned something? (multi)",
		Kind:      KindMulti,
		Options: []Option{
			{Value: "practice", Label: "Practice loop: applied to a real project with measurable value"},
			{Value: "teach", Label: "Teach it: can write a tutorial a beginner understands"},
			{Value: "code", Label: "Reimplement: can build the core algorithm from scratch"},
			{Value: "pattern", Label: "Pattern match: can connect new problems to known patterns"},
			{Value: "discuss", Label: "Deep discussion: can contribute novel points in expert conversation"},
			{Value: "feel", Label: "Felt sense: it feels understood, without external validation"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			practice := hasChoice(v, "practice")
			teach := hasChoice(v, "teach")
			code := hasChoice(v, "code")
			strong := 0
			for _, ok := range []bool{practice, teach, code} {
				if ok {
					strong++
				}
			}
			switch {
			case strong == 3:
				return 9.5
			case strong == 2:
				return 7.5
			case strong == 1:
				return 5.5
			case hasChoice(v, "feel") && len(v.Choices) == 1:
				return 4
			default:
				return 5
			}
		},
	},
	{
		ID:        "Q3.2",
		Part:      "PART 2",
		Dimension: DimensionLearning,
		Title:     "Your learning cadence is closest to:",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. Systematic loop: fixed time investment plus regular written output"},
			{Value: "B", Label: "B. Project-driven: intense learning to solve a problem, then it cools"},
			{Value: "C", Label: "C. Interest-led: continuous but drifting, output irregular"},
			{Value: "D", Label: "D. Passive intake: whatever work demands and feeds push at me"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			switch v.Choice {
			case "A":
				return 9.5
			case "B":
				return 8.5
			case "C":
				return 6.5
			default:
				return 4.5
			}
		},
	},
	{
		ID:        "Q3.3",
		Part:      "PART 2",
		Dimension: DimensionLearning,
		Title:     "Describe one successful cross-domain knowledge transfer:",
		Kind:      KindText,
		Required:  true,
		Score: func(v Value, _ string) float64 {
			text := v.Text
			switch {
			case len(text) < 50:
				return 4
			case len(text) >= 200 && containsAny(text, "validat", "success"):
				return 9.5
			case len(text) >= 100:
				return 7.5
			default:
				return 5.5
			}
		},
	},

	// PART 2: collaboration
	{
		ID:        "Q4.1",
		Part:      "PART 2",
		Dimension: DimensionCollaboration,
		Title:     "Reusable human-AI collaboration assets you've accumulated:",
		Kind:      KindMulti,
		Options: []Option{
			{Value: "prompt", Label: "Prompt pattern library: categorized, versioned, with measured results"},
			{Value: "eval", Label: "Evaluation rubric: output quality standards per task type"},
			{Value: "workflow", Label: "Workflow blueprints: human/AI division of labor with checkpoints"},
			{Value: "failure", Label: "Failure case library: typical AI failure modes and mitigations"},
			{Value: "tool", Label: "Efficiency tools: scripts and extensions automating repeat interaction"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			switch count := len(v.Choices); {
			case count >= 4:
				return 9.5
			case count >= 2:
				return 7.5
			case count >= 1:
				return 5.5
			default:
				return 4
			}
		},
	},
	{
		ID:        "Q4.2",
		Part:      "PART 2",
		Dimension: DimensionCollaboration,
		Title:     "Rate yourself on each (1-5):",
		Kind:      KindScale,
		Options: []Option{
			{Value: "boundary", Label: "I can clearly describe current frontier models' capability boundaries"},
			{Value: "cost", Label: "I weigh the cost of coaxing AI against doing the task myself"},
			{Value: "ethics", Label: "I consider fairness and explainability when designing AI features"},
			{Value: "negative", Label: "When AI excels on edge cases I can't explain, I feel more excitement than anxiety"},
		},
		Required: true,
		Score:    func(v Value, _ string) float64 { return scaleLadder(v.Ratings) },
	},
	{
		ID:        "Q4.3",
		Part:      "PART 2",
		Dimension: DimensionCollaboration,
		Title:     "Using AI tools, your efficiency multiplier on specific tasks:",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. 10x+ (hours-level tasks now take minutes)"},
			{Value: "B", Label: "B. 3-10x (clearly significant)"},
			{Value: "C", Label: "C. 1.5-3x (noticeable)"},
			{Value: "D", Label: "D. About the same"},
			{Value: "E", Label: "E. Worse (coaxing costs too much)"},
		},
		Required: true,
		FollowUp: &FollowUp{
			Prompt:    "Give one scenario with the biggest lift:",
			Condition: func(v Value) bool { return v.Choice == "A" || v.Choice == "B" },
		},
		Score: func(v Value, text string) float64 {
			switch {
			case v.Choice == "A" && len(text) > 20:
				return 9.5
			case v.Choice == "A":
				return 9
			case v.Choice == "B":
				return 7.5
			case v.Choice == "C":
				return 5.5
			default:
				return 3.5
			}
		},
	},

	// PART 2: radar
	{
		ID:        "Q5.1",
		Part:      "PART 2",
		Dimension: DimensionRadar,
		Title:     "Your AI information strategy:",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. Frontier network: papers, core developers, and top conferences directly"},
			{Value: "B", Label: "B. Curated network: high-quality digests and trusted practitioners"},
			{Value: "C", Label: "C. Problem network: ad-hoc information gathering per problem"},
			{Value: "D", Label: "D. Algorithmic network: mostly recommendation feeds"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			switch v.Choice {
			case "A":
				return 9.5
			case "B":
				return 7.5
			case "C":
				return 5.5
			default:
				return 3.5
			}
		},
	},
	{
		ID:        "Q5.2",
		Part:      "PART 2",
		Dimension: DimensionRadar,
		Title:     "Looking back to last winter, which of this year's trends did you clearly call in advance?",
		Kind:      KindMulti,
		Options: []Option{
			{Value: "reasoning", Label: "Reasoning models became the focal point"},
			{Value: "open", Label: "Open models closed the practical gap with closed ones"},
			{Value: "agent", Label: "Agents became a mainstream application shape"},
			{Value: "video", Label: "Video generation quality broke through"},
			{Value: "coding", Label: "AI coding tools went mass-market"},
			{Value: "embodied", Label: "Embodied intelligence made real progress"},
			{Value: "neuro", Label: "Neuro-symbolic work produced a landmark result"},
			{Value: "science", Label: "AI for Science deployed at scale"},
			{Value: "light", Label: "Light models plus heavy inference became the pattern"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			switch count := len(v.Choices); {
			case count >= 5:
				return 9.5
			case count >= 3:
				return 7.5
			case count >= 1:
				return 5.5
			default:
				return 4
			}
		},
	},
	{
		ID:        "Q5.3",
		Part:      "PART 2",
		Dimension: DimensionRadar,
		Title:     "When an important new model or technique ships, you usually:",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. Try it immediately: hands-on within 24 hours, firsthand read"},
			{Value: "B", Label: "B. Evaluate fast: digest reviews within 1-3 days, decide whether to invest"},
			{Value: "C", Label: "C. Wait and watch: let the community converge first"},
			{Value: "D", Label: "D. On demand: only when it touches current work"},
		},
		Required: true,
		FollowUp: &FollowUp{
			Prompt:    "Name one technique this year you picked up fast:",
			Condition: func(v Value) bool { return v.Choice == "A" || v.Choice == "B" },
		},
		Score: func(v Value, text string) float64 {
			switch {
			case v.Choice == "A" && len(text) > 20:
				return 9.5
			case v.Choice == "A":
				return 9
			case v.Choice == "B":
				return 7.5
			case v.Choice == "C":
				return 5.5
			default:
				return 3.5
			}
		},
	},

	// PART 3: innovation
	{
		ID:        "Q6.1",
		Part:      "PART 3",
		Dimension: DimensionInnovation,
		Title:     "Describe one genuinely unconventional AI exploration you ran this year:",
		Kind:      KindText,
		Required:  true,
		Score: func(v Value, _ string) float64 {
			text := v.Text
			switch {
			case len(text) < 30:
				return 3.5
			case len(text) >= 150 && containsAny(text, "shipped", "in progress", "completed"):
				return 9.5
			case len(text) >= 100:
				return 7.5
			default:
				return 5.5
			}
		},
	},
	{
		ID:        "Q6.2",
		Part:      "PART 3",
		Dimension: DimensionInnovation,
		Title:     "List 2-3 real problems where AI is still bad but the problem is worth solving:",
		Kind:      KindText,
		Required:  true,
		Score: func(v Value, _ string) float64 {
			text := v.Text
			problems := countMarker(text, "problem:")
			switch {
			case len(text) < 50:
				return 3.5
			case problems >= 2 && len(text) >= 200:
				return 9.5
			case problems >= 1 && len(text) >= 100:
				return 7.5
			default:
				return 5.5
			}
		},
	},
	{
		ID:        "Q6.3",
		Part:      "PART 3",
		Dimension: DimensionInnovation,
		Title:     "Share one failed experiment that was worth it:",
		Kind:      KindText,
		Required:  true,
		Score: func(v Value, _ string) float64 {
			text := v.Text
			switch {
			case len(text) < 50:
				return 4
			case len(text) >= 200 && containsAny(text, "learned", "lesson"):
				return 9.5
			case len(text) >= 100:
				return 7.5
			default:
				return 5.5
			}
		},
	},

	// PART 3: influence
	{
		ID:        "Q7.1",
		Part:      "PART 3",
		Dimension: DimensionInfluence,
		Title:     "Your AI-related output this year (rate each channel 0-10ish by volume):",
		Kind:      KindScale,
		Options: []Option{
			{Value: "blog", Label: "Technical blog/newsletter - posts and tutorials"},
			{Value: "github", Label: "GitHub - open-source projects and repos"},
			{Value: "social", Label: "Social media - substantive posts and threads"},
			{Value: "offline", Label: "Offline - talks, workshops, meetups"},
			{Value: "community", Label: "Community - high-quality answers and discussion"},
		},
		Required: true,
		Score: func(v Value, _ string) float64 {
			total := ratingsSum(v.Ratings)
			platforms := 0
			for _, r := range v.Ratings {
				if r > 0 {
					platforms++
				}
			}
			switch {
			case platforms >= 3 && total >= 30:
				return 9.5
			case platforms >= 2 || total >= 15:
				return 7.5
			case total >= 5:
				return 5.5
			default:
				return 3.5
			}
		},
	},
	{
		ID:        "Q7.2",
		Part:      "PART 3",
		Dimension: DimensionInfluence,
		Title:     "Where do your AI opinions differ from the mainstream?",
		Kind:      KindText,
		Required:  true,
		Score: func(v Value, _ string) float64 {
			text := v.Text
			switch {
			case len(text) < 30:
				return 5.5
			case len(text) >= 100 && containsAny(text, "because", "reason"):
				return 9.5
			case len(text) >= 50:
				return 7.5
			default:
				return 6.5
			}
		},
	},

	// PART 3: aesthetics
	{
		ID:        "Q8.1",
		Part:      "PART 3",
		Dimension: DimensionAesthetics,
		Title:     "On AI projects, how much do you care about experience and craft?",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. Deeply: I spend real time polishing UI/UX/visual design"},
			{Value: "B", Label: "B. Quite a bit: I optimize within the time available"},
			{Value: "C", Label: "C. Function first: complete features, then beauty"},
			{Value: "D", Label: "D. Barely: if it works, it ships"},
		},
		Required: true,
		FollowUp: &FollowUp{
			Prompt:    "Beyond usable and attractive, have you weighed fairness or explainability in a product?",
			Condition: func(Value) bool { return true },
		},
		Score: func(v Value, text string) float64 {
			ethicsAware := containsAny(text, "fairness", "explainab")
			switch {
			case v.Choice == "A" && ethicsAware:
				return 9.5
			case v.Choice == "A":
				return 8.5
			case v.Choice == "B" && containsAny(text, "yes"):
				return 7.5
			case v.Choice == "B":
				return 7
			case v.Choice == "C":
				return 5.5
			default:
				return 3.5
			}
		},
	},
	{
		ID:        "Q8.2",
		Part:      "PART 3",
		Dimension: DimensionAesthetics,
		Title:     "Which AI tool design style draws you most?",
		Kind:      KindSingle,
		Options: []Option{
			{Value: "A", Label: "A. Minimal and abstract: hides complexity, Raycast/Linear school"},
			{Value: "B", Label: "B. Professional depth: powerful and dense, Figma/Blender school"},
			{Value: "C", Label: "C. Warm and friendly: emotional design, Notion/Craft school"},
			{Value: "D", Label: "D. Ruthlessly practical: information density wins, editor/terminal school"},
			{Value: "E", Label: "E. Showy futurism: strong visual impact"},
		},
		Required: true,
		FollowUp: &FollowUp{
			Prompt:    "What's the AI product design you admire most, and why?",
			Condition: func(Value) bool { return true },
		},
		// Scored on the follow-up reflection, not the style picked.
		Score: func(_ Value, text string) float64 {
			switch {
			case len(text) > 30:
				return 9.5
			case len(text) > 10:
				return 8.5
			default:
				return 6.5
			}
		},
	},
}

func init() {
	technicalQ11Options = technicalQuestions[0].Options
}
