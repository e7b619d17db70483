package quiz

// Weights is an identity's theoretical per-dimension emphasis. Weights are
// advisory display metadata only: the scoring engine never multiplies them
// into dimension values. They sum to 1 per identity.
type Weights struct {
	Theory        float64 `json:"theory"`
	Engineering   float64 `json:"engineering"`
	Learning      float64 `json:"learning"`
	Collaboration float64 `json:"collaboration"`
	Radar         float64 `json:"radar"`
	Innovation    float64 `json:"innovation"`
	Influence     float64 `json:"influence"`
	Aesthetics    float64 `json:"aesthetics"`
}

// IdentityRole is a selectable respondent identity. The track decides which
// question catalog variant applies.
type IdentityRole struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Track       Track   `json:"track"`
	Weights     Weights `json:"weights"`
}

// SelfStarterIdentity is special-cased by track selection: its exploration
// catalog drops every engineering question, so that dimension always goes
// through the default-score fallback.
const SelfStarterIdentity = "AI Self-starter"

var identityRoles = []IdentityRole{
	{
		ID:          "architect",
		Name:        "Engineering Architect",
		Icon:        "🏗️",
		Description: "Builds reliable, scalable AI systems",
		Track:       TrackTechnical,
		Weights: Weights{
			Theory: 0.15, Engineering: 0.25, Learning: 0.15, Collaboration: 0.15,
			Radar: 0.10, Innovation: 0.10, Influence: 0.05, Aesthetics: 0.05,
		},
	},
	{
		ID:          "researcher",
		Name:        "Algorithm Researcher",
		Icon:        "🔬",
		Description: "Digs into model internals, chases performance breakthroughs",
		Track:       TrackTechnical,
		Weights: Weights{
			Theory: 0.25, Engineering: 0.15, Learning: 0.15, Collaboration: 0.10,
			Radar: 0.15, Innovation: 0.15, Influence: 0.05, Aesthetics: 0.00,
		},
	},
	{
		ID:          "startup-founder",
		Name:        "AI Founder",
		Icon:        "🚀",
		Description: "Founds or leads an AI-driven product or company",
		Track:       TrackTechnical,
		Weights: Weights{
			Theory: 0.10, Engineering: 0.20, Learning: 0.15, Collaboration: 0.15,
			Radar: 0.15, Innovation: 0.15, Influence: 0.10, Aesthetics: 0.00,
		},
	},
	{
		ID:          "product-maker",
		Name:        "Product Shaper",
		Icon:        "🎨",
		Description: "Creates outstanding user experiences with AI",
		Track:       TrackApplication,
		Weights: Weights{
			Theory: 0.10, Engineering: 0.15, Learning: 0.15, Collaboration: 0.20,
			Radar: 0.10, Innovation: 0.15, Influence: 0.10, Aesthetics: 0.05,
		},
	},
	{
		ID:          "app-developer",
		Name:        "Application Developer",
		Icon:        "💻",
		Description: "Builds applications on top of AI APIs and tooling",
		Track:       TrackApplication,
		Weights: Weights{
			Theory: 0.05, Engineering: 0.20, Learning: 0.20, Collaboration: 0.15,
			Radar: 0.15, Innovation: 0.10, Influence: 0.10, Aesthetics: 0.05,
		},
	},
	{
		ID:          "self-starter",
		Name:        SelfStarterIdentity,
		Icon:        "🌱",
		Description: "Just getting started, exploring AI in their own field",
		Track:       TrackExploration,
		Weights: Weights{
			Theory: 0.05, Engineering: 0.10, Learning: 0.25, Collaboration: 0.15,
			Radar: 0.20, Innovation: 0.10, Influence: 0.10, Aesthetics: 0.05,
		},
	},
	{
		ID:          "content-creator",
		Name:        "AI Content Creator",
		Icon:        "✍️",
		Description: "Produces content with AI in the loop",
		Track:       TrackApplication,
		Weights: Weights{
			Theory: 0.05, Engineering: 0.10, Learning: 0.20, Collaboration: 0.15,
			Radar: 0.15, Innovation: 0.15, Influence: 0.15, Aesthetics: 0.05,
		},
	},
	{
		ID:          "org-catalyst",
		Name:        "Org Catalyst",
		Icon:        "🌐",
		Description: "Drives AI transformation and enablement inside an organization",
		Track:       TrackApplication,
		Weights: Weights{
			Theory: 0.10, Engineering: 0.15, Learning: 0.15, Collaboration: 0.20,
			Radar: 0.15, Innovation: 0.10, Influence: 0.10, Aesthetics: 0.05,
		},
	},
	{
		ID:          "cross-explorer",
		Name:        "Cross-Domain Explorer",
		Icon:        "🧭",
		Description: "Explores deep fusion of AI with a specific domain",
		Track:       TrackExploration,
		Weights: Weights{
			Theory: 0.15, Engineering: 0.15, Learning: 0.20, Collaboration: 0.15,
			Radar: 0.15, Innovation: 0.10, Influence: 0.05, Aesthetics: 0.05,
		},
	},
	{
		ID:          "investor-observer",
		Name:        "AI Investor/Observer",
		Icon:        "👁️",
		Description: "Evaluates AI trends from an investment or business angle",
		Track:       TrackExploration,
		Weights: Weights{
			Theory: 0.10, Engineering: 0.05, Learning: 0.15, Collaboration: 0.15,
			Radar: 0.25, Innovation: 0.10, Influence: 0.15, Aesthetics: 0.05,
		},
	},
}

// IdentityRoles returns the full registry in display order.
func IdentityRoles() []IdentityRole {
	out := make([]IdentityRole, len(identityRoles))
	copy(out, identityRoles)
	return out
}

// IdentityRoleByName looks up a role by display name.
func IdentityRoleByName(name string) (IdentityRole, bool) {
	for _, r := range identityRoles {
		if r.Name == name {
			return r, true
		}
	}
	return IdentityRole{}, false
}

// OutputType is a self-described primary output form, used to suggest a track.
type OutputType string

const (
	OutputRunningSystems   OutputType = "Running systems/products"
	OutputReusedCode       OutputType = "Reused code/frameworks"
	OutputInsightfulPapers OutputType = "Insightful papers/methodology"
	OutputSharedContent    OutputType = "Widely shared content/opinions"
	OutputBusinessResults  OutputType = "Quantifiable business results"
	OutputEfficiencyTools  OutputType = "Efficiency tools/workflows"
	OutputCommunityGrowth  OutputType = "Community building/user growth"
	OutputInvestmentCalls  OutputType = "Investment decisions/analysis"
	OutputAssistedCreation OutputType = "AI-assisted creative work"
)

// OutputTypeTracks maps each output form to the tracks it suggests.
var OutputTypeTracks = map[OutputType][]Track{
	OutputRunningSystems:   {TrackTechnical, TrackApplication},
	OutputReusedCode:       {TrackTechnical, TrackApplication},
	OutputInsightfulPapers: {TrackTechnical},
	OutputSharedContent:    {TrackExploration},
	OutputBusinessResults:  {TrackApplication},
	OutputEfficiencyTools:  {TrackApplication},
	OutputCommunityGrowth:  {TrackApplication, TrackExploration},
	OutputInvestmentCalls:  {TrackExploration},
	OutputAssistedCreation: {TrackApplication, TrackExploration},
}
