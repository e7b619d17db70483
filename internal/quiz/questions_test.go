package quiz

import (
	"encoding/json"
	"strings"
	"testing"
)

func mustQuestion(t *testing.T, track Track, id string) Question {
	t.Helper()
	qs, err := QuestionsForTrack(track, "Engineering Architect")
	if err != nil {
		t.Fatalf("QuestionsForTrack: %v", err)
	}
	q, ok := QuestionByID(qs, id)
	if !ok {
		t.Fatalf("question %s not in %s track", id, track)
	}
	return q
}

func TestConceptCoverageRule(t *testing.T) {
	q := mustQuestion(t, TrackTechnical, "Q1.1")

	broad := []string{"attention", "generation", "scaling", "compute", "architecture", "moe", "rag", "alignment"}
	narrow := []string{"attention", "generation", "scaling", "compute", "architecture", "moe", "rag", "finetune"}

	tests := []struct {
		name    string
		choices []string
		want    float64
	}{
		{"eight across three categories", broad, 9.5},
		{"eight across two categories", narrow, 9},
		{"seven selections", broad[:7], 9},
		{"five selections", broad[:5], 7.5},
		{"three selections", broad[:3], 5.5},
		{"two selections", broad[:2], 3.5},
		{"none", nil, 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := q.Score(Value{Kind: KindMulti, Choices: tt.choices}, "")
			if got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalDebuggingRule(t *testing.T) {
	q := mustQuestion(t, TrackTechnical, "Q1.2")
	tests := []struct {
		choice string
		want   float64
	}{
		{"A", 9.5},
		{"B", 7.5},
		{"D", 7.5},
		{"C", 5.5},
		{"E", 5.5},
	}
	for _, tt := range tests {
		got := q.Score(Value{Kind: KindSingle, Choice: tt.choice}, "")
		if got != tt.want {
			t.Errorf("choice %s = %v, want %v", tt.choice, got, tt.want)
		}
	}
}

func TestPaperReadingFollowUpBonus(t *testing.T) {
	q := mustQuestion(t, TrackTechnical, "Q1.4")

	if got := q.Score(Value{Kind: KindSingle, Choice: "A"}, "Attention Is All"); got != 9.5 {
		t.Errorf("A with named paper = %v, want 9.5", got)
	}
	if got := q.Score(Value{Kind: KindSingle, Choice: "A"}, "short"); got != 9 {
		t.Errorf("A without named paper = %v, want 9", got)
	}
	if q.FollowUp == nil || !q.FollowUp.Condition(Value{Kind: KindSingle, Choice: "D"}) {
		t.Error("follow-up should be shown for every choice")
	}
}

func TestLearningVerificationRule(t *testing.T) {
	q := mustQuestion(t, TrackTechnical, "Q3.1")
	tests := []struct {
		name    string
		choices []string
		want    float64
	}{
		{"all three strong signals", []string{"practice", "teach", "code"}, 9.5},
		{"two strong signals", []string{"practice", "code"}, 7.5},
		{"one strong signal", []string{"teach", "pattern"}, 5.5},
		{"feel alone", []string{"feel"}, 4},
		{"soft signals only", []string{"pattern", "discuss"}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := q.Score(Value{Kind: KindMulti, Choices: tt.choices}, "")
			if got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleLadderRule(t *testing.T) {
	q := mustQuestion(t, TrackTechnical, "Q4.2")
	tests := []struct {
		name    string
		ratings map[string]float64
		want    float64
	}{
		{"all fives", map[string]float64{"boundary": 5, "cost": 5, "ethics": 5, "negative": 5}, 9.5},
		{"average four", map[string]float64{"boundary": 4, "cost": 4, "ethics": 4, "negative": 4}, 8.5},
		{"average three", map[string]float64{"boundary": 3, "cost": 3, "ethics": 3, "negative": 3}, 6.5},
		{"low", map[string]float64{"boundary": 2, "cost": 2, "ethics": 2, "negative": 2}, 4.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := q.Score(Value{Kind: KindScale, Ratings: tt.ratings}, "")
			if got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOutputChannelsRule(t *testing.T) {
	q := mustQuestion(t, TrackTechnical, "Q7.1")
	tests := []struct {
		name    string
		ratings map[string]float64
		want    float64
	}{
		{"three platforms heavy volume", map[string]float64{"blog": 12, "github": 10, "social": 10}, 9.5},
		{"two platforms", map[string]float64{"blog": 3, "github": 3}, 7.5},
		{"one platform moderate", map[string]float64{"blog": 6}, 5.5},
		{"near silence", map[string]float64{"blog": 1}, 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := q.Score(Value{Kind: KindScale, Ratings: tt.ratings}, "")
			if got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProblemListRule(t *testing.T) {
	q := mustQuestion(t, TrackTechnical, "Q6.2")
	filler := strings.Repeat("context ", 20)
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"too short", "AI is bad at things", 3.5},
		{"two marked problems with depth", "Problem: long-horizon planning. " + filler + " Problem: reliable citations. " + filler, 9.5},
		{"one marked problem", "Problem: hands in images. " + filler, 7.5},
		{"unstructured rambling", filler, 5.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := q.Score(Value{Kind: KindText, Text: tt.text}, "")
			if got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCraftEthicsRule(t *testing.T) {
	q := mustQuestion(t, TrackTechnical, "Q8.1")
	tests := []struct {
		name     string
		choice   string
		followUp string
		want     float64
	}{
		{"craft plus ethics awareness", "A", "We audited for fairness and explainability.", 9.5},
		{"craft alone", "A", "", 8.5},
		{"pragmatic with a yes", "B", "Yes, once on a hiring tool.", 7.5},
		{"pragmatic", "B", "", 7},
		{"function first", "C", "", 5.5},
		{"barely", "D", "", 3.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := q.Score(Value{Kind: KindSingle, Choice: tt.choice}, tt.followUp)
			if got != tt.want {
				t.Errorf("score = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlainLanguageRule(t *testing.T) {
	q := mustQuestion(t, TrackApplication, "Q1.1-app")

	all := []string{"llm", "context", "prompt", "finetune", "rag", "agent", "cost"}
	if got := q.Score(Value{Kind: KindMulti, Choices: all}, ""); got != 10 {
		t.Errorf("all seven with bonus = %v, want capped 10", got)
	}
	three := []string{"llm", "context", "prompt"}
	want := round1(3.0 / 7 * 10)
	if got := round1(q.Score(Value{Kind: KindMulti, Choices: three}, "")); got != want {
		t.Errorf("three plain picks = %v, want %v", got, want)
	}
}

func TestLearningChannelsRule(t *testing.T) {
	q := mustQuestion(t, TrackApplication, "Q1.4-app")

	// Bonus for structured learning plus the teach-and-experiment pairing.
	choices := []string{"course", "experiment", "teach"}
	want := round1(3.0/9*10 + 0.5 + 1)
	if got := round1(q.Score(Value{Kind: KindMulti, Choices: choices}, "")); got != want {
		t.Errorf("score = %v, want %v", got, want)
	}
	if got := round1(q.Score(Value{Kind: KindMulti, Choices: []string{"docs"}}, "")); got != round1(1.0/9*10) {
		t.Errorf("single channel = %v", got)
	}
}

func TestEthicsSelfRatingRule(t *testing.T) {
	q := mustQuestion(t, TrackExploration, "Q1.2-explore")

	if got := q.Score(Value{Kind: KindScale, Ratings: map[string]float64{"ethics": 5}}, ""); got != 10 {
		t.Errorf("rating 5 = %v, want 10", got)
	}
	if got := q.Score(Value{Kind: KindScale, Ratings: map[string]float64{"ethics": 2}}, ""); got != 4 {
		t.Errorf("rating 2 = %v, want 4", got)
	}
	if q.FollowUp.Condition(Value{Kind: KindScale, Ratings: map[string]float64{"ethics": 3}}) {
		t.Error("follow-up should stay hidden below 4")
	}
	if !q.FollowUp.Condition(Value{Kind: KindScale, Ratings: map[string]float64{"ethics": 4}}) {
		t.Error("follow-up should show at 4")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		raw     string
		wantErr bool
	}{
		{"single from string", KindSingle, `"A"`, false},
		{"single rejects array", KindSingle, `["A"]`, true},
		{"multi from array", KindMulti, `["a","b"]`, false},
		{"multi rejects string", KindMulti, `"a"`, true},
		{"scale from object", KindScale, `{"ethics":4}`, false},
		{"scale rejects number", KindScale, `4`, true},
		{"text from string", KindText, `"hello"`, false},
		{"unknown kind", Kind("emoji"), `"x"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseValue(tt.kind, json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", v)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", v.Kind, tt.kind)
			}
		})
	}

	v, err := ParseValue(KindMulti, json.RawMessage(`[" a ",""," b "]`))
	if err != nil {
		t.Fatalf("ParseValue: %v", err)
	}
	if len(v.Choices) != 2 || v.Choices[0] != "a" || v.Choices[1] != "b" {
		t.Errorf("choices = %v, want trimmed [a b]", v.Choices)
	}
}
