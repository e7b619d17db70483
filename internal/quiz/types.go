package quiz

// Dimension is one of the eight scored capability dimensions, plus the two
// unscored pseudo-dimensions used by the identity and calibration parts.
type Dimension string

const (
	DimensionTheory        Dimension = "theory"
	DimensionEngineering   Dimension = "engineering"
	DimensionLearning      Dimension = "learning"
	DimensionCollaboration Dimension = "collaboration"
	DimensionRadar         Dimension = "radar"
	DimensionInnovation    Dimension = "innovation"
	DimensionInfluence     Dimension = "influence"
	DimensionAesthetics    Dimension = "aesthetics"

	// Not scored; questions tagged with these always return the 0 sentinel.
	DimensionIdentity    Dimension = "identity"
	DimensionCalibration Dimension = "calibration"
)

// ScoredDimensions is the fixed ordering used for aggregation and display.
var ScoredDimensions = []Dimension{
	DimensionTheory,
	DimensionEngineering,
	DimensionLearning,
	DimensionCollaboration,
	DimensionRadar,
	DimensionInnovation,
	DimensionInfluence,
	DimensionAesthetics,
}

// Track selects which question catalog variant a respondent walks through.
type Track string

const (
	TrackTechnical   Track = "technical"
	TrackApplication Track = "application"
	TrackExploration Track = "exploration"
)

// Kind discriminates the answer shape a question accepts.
type Kind string

const (
	KindSingle Kind = "single"
	KindMulti  Kind = "multi"
	KindScale  Kind = "scale"
	KindText   Kind = "text"
)

// Value is a tagged union over the four answer shapes. The Kind tag is
// checked at the entry of the scoring engine; scoring rules may assume the
// field matching their question's kind is populated.
type Value struct {
	Kind    Kind               `json:"kind"`
	Choice  string             `json:"choice,omitempty"`
	Choices []string           `json:"choices,omitempty"`
	Ratings map[string]float64 `json:"ratings,omitempty"`
	Text    string             `json:"text,omitempty"`
}

// Answer is one submitted answer. FollowUpText carries the optional free-text
// supplement attached to a gated follow-up prompt.
type Answer struct {
	QuestionID   string `json:"question_id"`
	Value        Value  `json:"value"`
	FollowUpText string `json:"follow_up_text,omitempty"`
}

// Option is a selectable choice or a scale sub-item. Category groups options
// for rules with a category-coverage bonus; empty when a rule does not use it.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
}

// FollowUp is an optional gated free-text prompt shown after the primary
// answer when Condition holds.
type FollowUp struct {
	Prompt    string
	Condition func(v Value) bool
}

// ScoreFunc maps an answer (and optional follow-up text) to a score in [0,10].
// Rules are pure and total over their question's declared kind. Returning 0
// means "not scorable" and is excluded from dimension averaging.
type ScoreFunc func(v Value, followUpText string) float64

// Question is a static catalog entry.
type Question struct {
	ID        string
	Part      string
	Dimension Dimension
	Title     string
	Kind      Kind
	Options   []Option
	Required  bool
	FollowUp  *FollowUp
	Score     ScoreFunc
}

// DimensionScores holds the eight aggregated dimension values, each in [0,10].
type DimensionScores struct {
	Theory        float64 `json:"theory"`
	Engineering   float64 `json:"engineering"`
	Learning      float64 `json:"learning"`
	Collaboration float64 `json:"collaboration"`
	Radar         float64 `json:"radar"`
	Innovation    float64 `json:"innovation"`
	Influence     float64 `json:"influence"`
	Aesthetics    float64 `json:"aesthetics"`
}

// Get returns the value for a scored dimension.
func (s DimensionScores) Get(d Dimension) float64 {
	switch d {
	case DimensionTheory:
		return s.Theory
	case DimensionEngineering:
		return s.Engineering
	case DimensionLearning:
		return s.Learning
	case DimensionCollaboration:
		return s.Collaboration
	case DimensionRadar:
		return s.Radar
	case DimensionInnovation:
		return s.Innovation
	case DimensionInfluence:
		return s.Influence
	case DimensionAesthetics:
		return s.Aesthetics
	}
	return 0
}

func (s *DimensionScores) set(d Dimension, v float64) {
	switch d {
	case DimensionTheory:
		s.Theory = v
	case DimensionEngineering:
		s.Engineering = v
	case DimensionLearning:
		s.Learning = v
	case DimensionCollaboration:
		s.Collaboration = v
	case DimensionRadar:
		s.Radar = v
	case DimensionInnovation:
		s.Innovation = v
	case DimensionInfluence:
		s.Influence = v
	case DimensionAesthetics:
		s.Aesthetics = v
	}
}

// QuestionScore is one question's contribution inside a dimension breakdown.
type QuestionScore struct {
	QuestionID    string  `json:"question_id"`
	QuestionTitle string  `json:"question_title"`
	Score         float64 `json:"score"`
	MaxScore      float64 `json:"max_score"`
}

// DimensionBreakdown records how a dimension's value was assembled, for
// audit/display. IsDefault marks a value produced by the fallback policy
// instead of answered questions.
type DimensionBreakdown struct {
	Dimension      Dimension       `json:"dimension"`
	QuestionScores []QuestionScore `json:"question_scores"`
	AverageScore   float64         `json:"average_score"`
	IsDefault      bool            `json:"is_default,omitempty"`
}

// PersonalityType is a static catalog entry for one of the eight archetypes.
type PersonalityType struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Strengths    []string `json:"strengths"`
	Weaknesses   []string `json:"weaknesses"`
	GrowthAdvice []string `json:"growth_advice"`

	Metaphor    string    `json:"metaphor,omitempty"`
	CoreTraits  []string  `json:"core_traits,omitempty"`
	WorkStyle   []string  `json:"work_style,omitempty"`
	Partners    []Partner `json:"partners,omitempty"`
	YearlyFocus []string  `json:"yearly_focus,omitempty"`
}

// Partner describes a complementary archetype pairing.
type Partner struct {
	Type string `json:"type"`
	How  string `json:"how"`
	Note string `json:"note,omitempty"`
}

// Bias labels are self-reported by the calibration part.
const (
	BiasHighMatch         = "high_match"
	BiasMostlyAligned     = "mostly_aligned"
	BiasPartialDivergence = "partial_divergence"
	BiasMajorDivergence   = "major_divergence"
)

// Result is the immutable assessment payload assembled at completion.
type Result struct {
	Identity   string               `json:"identity"`
	Type       PersonalityType      `json:"type"`
	Refined    bool                 `json:"refined"`
	Scores     DimensionScores      `json:"scores"`
	Badges     []string             `json:"badges"`
	Highlights []string             `json:"highlights"`
	Bias       string               `json:"bias"`
	Answers    []Answer             `json:"answers,omitempty"`
	Breakdown  []DimensionBreakdown `json:"breakdown,omitempty"`
}
