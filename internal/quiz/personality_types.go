package quiz

// The eight archetypes, one per combination of the three classifier axes.
// First axis: A theory-led, C engineering-led. Second axis: B breadth
// (radar and learning), D depth (core technical). Third axis: I
// innovation-driven, O outward-facing (collaboration and influence).
var personalityTypes = map[string]PersonalityType{
	"A-B-I": {
		Code:        "A-B-I",
		Name:        "Horizon Theorist",
		Description: "Theory-led, wide-scanning, and restless. You absorb ideas across the field and keep testing unconventional ones of your own.",
		Metaphor:    "A telescope that grinds its own lenses",
		Strengths: []string{
			"Connects distant research threads before others see the link",
			"Forms independent, well-argued positions on where the field goes",
			"Learns new paradigms quickly and from first principles",
		},
		Weaknesses: []string{
			"Ideas outrun shipped artifacts",
			"Can under-invest in the engineering grind that makes ideas stick",
		},
		GrowthAdvice: []string{
			"Pick one speculative thread per quarter and carry it to a working demo",
			"Pair with a builder who holds you to deadlines",
		},
		CoreTraits: []string{"curious", "contrarian", "synthesizing"},
		WorkStyle:  []string{"Deep reading sprints", "Rapid hypothesis testing"},
		Partners: []Partner{
			{Type: "C-D-O", How: "Their delivery discipline grounds your speculation", Note: "Agree on scope before you start"},
			{Type: "C-B-I", How: "Shared novelty drive, complementary hands"},
		},
		YearlyFocus: []string{"Ship one idea end to end", "Publish the argument behind one contrarian call"},
	},
	"A-B-O": {
		Code:        "A-B-O",
		Name:        "Field Interpreter",
		Description: "Theory-led and broadly read, but pointed outward: you translate what the frontier means for everyone else.",
		Metaphor:    "A lighthouse that reads the charts first",
		Strengths: []string{
			"Explains hard ideas without flattening them",
			"Curation instincts people come back for",
			"Builds trust across research and practice communities",
		},
		Weaknesses: []string{
			"Risk of staying one step removed from building",
			"Audience signals can crowd out your own judgment",
		},
		GrowthAdvice: []string{
			"Build small things regularly so your explanations stay load-bearing",
			"Write one deep piece for every five reactive ones",
		},
		CoreTraits: []string{"articulate", "synthesizing", "connective"},
		WorkStyle:  []string{"Read widely, publish on cadence", "Conversations as research"},
		Partners: []Partner{
			{Type: "C-D-I", How: "You narrate what they invent"},
			{Type: "A-D-O", How: "Depth behind your breadth"},
		},
		YearlyFocus: []string{"One flagship explainer series", "Hands-on time every week"},
	},
	"A-D-I": {
		Code:        "A-D-I",
		Name:        "Depth Prospector",
		Description: "Theory-led and narrow by choice. You pick one seam of the field and mine it past where others stop, inventing as you go.",
		Metaphor:    "A drill that sharpens itself on the way down",
		Strengths: []string{
			"Genuine expertise in a chosen subfield",
			"Comfortable being early and alone on a problem",
			"Original results rather than recombinations",
		},
		Weaknesses: []string{
			"Progress elsewhere in the field can pass unnoticed",
			"Hard to hand work off or bring others along",
		},
		GrowthAdvice: []string{
			"Schedule deliberate breadth: one survey read per month outside your seam",
			"Present work-in-progress before it feels ready",
		},
		CoreTraits: []string{"focused", "rigorous", "self-directed"},
		WorkStyle:  []string{"Long uninterrupted blocks", "Notebooks over dashboards"},
		Partners: []Partner{
			{Type: "A-B-O", How: "They carry your results to an audience"},
			{Type: "C-D-O", How: "They productionize what you prove"},
		},
		YearlyFocus: []string{"One result worth citing", "One collaboration outside the comfort zone"},
	},
	"A-D-O": {
		Code:        "A-D-O",
		Name:        "Standard Bearer",
		Description: "Deep theoretical grounding in service of others: you set the bar for rigor on your team and make correctness contagious.",
		Metaphor:    "A tuning fork the room calibrates to",
		Strengths: []string{
			"Review and mentorship that measurably lift a team",
			"Spots subtle methodological flaws early",
			"Institutional memory for why things are done right",
		},
		Weaknesses: []string{
			"Can block on perfection where good-enough would ship",
			"Own exploratory work gets deferred to service work",
		},
		GrowthAdvice: []string{
			"Reserve protected time for your own open problems",
			"Name the cases where speed should beat polish, in advance",
		},
		CoreTraits: []string{"rigorous", "generous", "steady"},
		WorkStyle:  []string{"Teaching through review", "Standards written down"},
		Partners: []Partner{
			{Type: "C-B-I", How: "Their improvisation stretches your playbook"},
			{Type: "A-D-I", How: "Shared depth, divided labor"},
		},
		YearlyFocus: []string{"One methods guide others adopt", "One personal research bet"},
	},
	"C-B-I": {
		Code:        "C-B-I",
		Name:        "Possibility Engineer",
		Description: "Hands-first and wide-ranging: you try every new capability the week it lands and wire the promising ones into something real.",
		Metaphor:    "A workshop with the radio always on",
		Strengths: []string{
			"Fastest in the room from announcement to working prototype",
			"Pattern library spanning many tools and stacks",
			"Infectious momentum that pulls teams forward",
		},
		Weaknesses: []string{
			"Prototypes outnumber maintained systems",
			"Depth debt in the fundamentals under the tools",
		},
		GrowthAdvice: []string{
			"Graduate one prototype per quarter into something supported",
			"Pick one underlying mechanism per quarter and learn it properly",
		},
		CoreTraits: []string{"quick", "omnivorous", "energetic"},
		WorkStyle:  []string{"Timeboxed spikes", "Default to demo"},
		Partners: []Partner{
			{Type: "A-D-O", How: "Their rigor hardens your spikes"},
			{Type: "C-D-O", How: "They run what you start"},
		},
		YearlyFocus: []string{"Fewer, deeper bets", "One prototype carried to real users"},
	},
	"C-B-O": {
		Code:        "C-B-O",
		Name:        "Adoption Catalyst",
		Description: "Builder's hands, broad radar, outward focus: you make AI useful for specific people and bring the rest of the organization along.",
		Metaphor:    "A bridge that teaches you to cross it",
		Strengths: []string{
			"Reads real user needs better than benchmarks do",
			"Turns skeptics into users with working examples",
			"Comfortable across technical and non-technical rooms",
		},
		Weaknesses: []string{
			"Own technical depth advances slower than your influence",
			"Stretch across audiences can fragment focus",
		},
		GrowthAdvice: []string{
			"Keep one genuinely hard technical project alive at all times",
			"Decline the evangelism that doesn't compound",
		},
		CoreTraits: []string{"empathetic", "pragmatic", "persuasive"},
		WorkStyle:  []string{"Show, then tell", "Feedback loops with real users"},
		Partners: []Partner{
			{Type: "A-D-I", How: "Their depth backs your reach"},
			{Type: "C-D-I", How: "You distribute what they invent"},
		},
		YearlyFocus: []string{"One adoption story with numbers", "One skill upgraded past comfortable"},
	},
	"C-D-I": {
		Code:        "C-D-I",
		Name:        "System Alchemist",
		Description: "Engineering-led, deep, and inventive: you build novel systems other people later call obvious.",
		Metaphor:    "A forge that invents its own alloys",
		Strengths: []string{
			"Original architectures, not assembled tutorials",
			"Stamina for the unglamorous middle of hard builds",
			"Judgment about what is actually feasible now",
		},
		Weaknesses: []string{
			"Work can stay invisible until finished",
			"Field shifts outside your system can arrive late",
		},
		GrowthAdvice: []string{
			"Narrate the build in public as you go",
			"Budget explicit scanning time so the radar stays warm",
		},
		CoreTraits: []string{"inventive", "persistent", "exacting"},
		WorkStyle:  []string{"Long builds, few of them", "Measure before believing"},
		Partners: []Partner{
			{Type: "A-B-O", How: "They make your work legible"},
			{Type: "C-B-O", How: "They find your users"},
		},
		YearlyFocus: []string{"One system others build on", "One write-up of how it works"},
	},
	"C-D-O": {
		Code:        "C-D-O",
		Name:        "Reliability Anchor",
		Description: "Deep engineering in service of a team: you are why the AI systems around you actually stay up.",
		Metaphor:    "A keel nobody photographs",
		Strengths: []string{
			"Production judgment earned through incidents",
			"Teams ship faster because your floor holds",
			"Turns chaos into runbooks",
		},
		Weaknesses: []string{
			"Novelty gets deprioritized behind stability",
			"Contribution is under-legible to people far from the pager",
		},
		GrowthAdvice: []string{
			"Claim one greenfield build per year",
			"Write up the invisible work so it counts",
		},
		CoreTraits: []string{"dependable", "thorough", "calm"},
		WorkStyle:  []string{"Smallest safe change", "Postmortems without blame"},
		Partners: []Partner{
			{Type: "A-B-I", How: "Their wild ideas, your safe hands", Note: "Negotiate scope early"},
			{Type: "C-B-I", How: "You finish what they spark"},
		},
		YearlyFocus: []string{"One reliability story told upward", "One experiment shipped for its own sake"},
	},
}

// PersonalityTypeByCode resolves a classifier code against the catalog.
func PersonalityTypeByCode(code string) (PersonalityType, bool) {
	t, ok := personalityTypes[code]
	return t, ok
}

// UnknownPersonalityType is the defensive placeholder for a code the catalog
// does not carry. With three binary axes this should be unreachable.
func UnknownPersonalityType(code string) PersonalityType {
	return PersonalityType{
		Code:         code,
		Name:         "Unknown Type",
		Description:  "The personality type could not be determined.",
		Strengths:    []string{},
		Weaknesses:   []string{},
		GrowthAdvice: []string{},
	}
}

// AllPersonalityTypes returns the catalog in fixed code order.
func AllPersonalityTypes() []PersonalityType {
	codes := []string{"A-B-I", "A-B-O", "A-D-I", "A-D-O", "C-B-I", "C-B-O", "C-D-I", "C-D-O"}
	out := make([]PersonalityType, 0, len(codes))
	for _, c := range codes {
		out = append(out, personalityTypes[c])
	}
	return out
}
