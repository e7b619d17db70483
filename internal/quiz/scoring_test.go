package quiz

import (
	"math"
	"strings"
	"testing"
)

func singleAnswer(id, choice string) Answer {
	return Answer{QuestionID: id, Value: Value{Kind: KindSingle, Choice: choice}}
}

func multiAnswer(id string, choices ...string) Answer {
	return Answer{QuestionID: id, Value: Value{Kind: KindMulti, Choices: choices}}
}

func scaleAnswer(id string, ratings map[string]float64) Answer {
	return Answer{QuestionID: id, Value: Value{Kind: KindScale, Ratings: ratings}}
}

func textAnswer(id, text string) Answer {
	return Answer{QuestionID: id, Value: Value{Kind: KindText, Text: text}}
}

// fullTechnicalAnswers answers every scored technical-track question with a
// strong response.
func fullTechnicalAnswers(t *testing.T) ([]Question, *AnswerSet) {
	t.Helper()
	qs, err := QuestionsForTrack(TrackTechnical, "Engineering Architect")
	if err != nil {
		t.Fatalf("QuestionsForTrack: %v", err)
	}
	long := strings.Repeat("a detailed account of what happened and what was learned ", 5)
	set := NewAnswerSet()
	for _, q := range qs {
		var a Answer
		switch q.Kind {
		case KindSingle:
			a = singleAnswer(q.ID, q.Options[0].Value)
		case KindMulti:
			vals := make([]string, 0, len(q.Options))
			for _, o := range q.Options {
				vals = append(vals, o.Value)
			}
			a = multiAnswer(q.ID, vals...)
		case KindScale:
			ratings := map[string]float64{}
			for _, o := range q.Options {
				ratings[o.Value] = 5
			}
			a = scaleAnswer(q.ID, ratings)
		case KindText:
			a = textAnswer(q.ID, long)
		}
		a.FollowUpText = "fairness and explainability were validated, shipped, learned because problem: one problem: two"
		set.Put(a)
	}
	return qs, set
}

func TestComputeDimensionScoresBounds(t *testing.T) {
	qs, set := fullTechnicalAnswers(t)
	scores, breakdown := ComputeDimensionScores(qs, set)

	for _, d := range ScoredDimensions {
		v := scores.Get(d)
		if v < 0 || v > 10 {
			t.Errorf("dimension %s out of range: %v", d, v)
		}
		if v == 0 {
			t.Errorf("dimension %s unexpectedly zero with full answers", d)
		}
	}
	if len(breakdown) != len(ScoredDimensions) {
		t.Fatalf("breakdown entries = %d, want %d", len(breakdown), len(ScoredDimensions))
	}
	for _, b := range breakdown {
		if b.IsDefault {
			t.Errorf("dimension %s marked default despite answers", b.Dimension)
		}
		if len(b.QuestionScores) == 0 {
			t.Errorf("dimension %s has no question scores", b.Dimension)
		}
	}
}

func TestComputeDimensionScoresSkipsMalformed(t *testing.T) {
	qs, err := QuestionsForTrack(TrackTechnical, "Engineering Architect")
	if err != nil {
		t.Fatalf("QuestionsForTrack: %v", err)
	}
	set := NewAnswerSet()
	// Single-choice question answered with a text payload.
	set.Put(Answer{QuestionID: "Q1.2", Value: Value{Kind: KindText, Text: "oops"}})
	set.Put(singleAnswer("Q1.3", "A"))

	scores, _ := ComputeDimensionScores(qs, set)
	// Only Q1.3 contributes to theory: choice A without follow-up text is 8.
	if scores.Theory != 8 {
		t.Errorf("theory = %v, want 8 (malformed Q1.2 skipped)", scores.Theory)
	}
}

func TestDimensionMeanStaysExact(t *testing.T) {
	qs, err := QuestionsForTrack(TrackTechnical, "Engineering Architect")
	if err != nil {
		t.Fatalf("QuestionsForTrack: %v", err)
	}
	set := NewAnswerSet()
	set.Put(singleAnswer("Q1.2", "A"))
	set.Put(singleAnswer("Q1.3", "A"))
	set.Put(singleAnswer("Q1.4", "B"))

	scores, breakdown := ComputeDimensionScores(qs, set)

	want := (9.5 + 8 + 7.5) / 3
	if scores.Theory != want {
		t.Errorf("theory = %v, want exactly %v", scores.Theory, want)
	}
	for _, b := range breakdown {
		if b.Dimension == DimensionTheory && b.AverageScore != round1(want) {
			t.Errorf("theory breakdown average = %v, want rounded %v", b.AverageScore, round1(want))
		}
	}
}

func TestEngineeringFallback(t *testing.T) {
	qs, err := QuestionsForTrack(TrackExploration, SelfStarterIdentity)
	if err != nil {
		t.Fatalf("QuestionsForTrack: %v", err)
	}
	for _, q := range qs {
		if q.Dimension == DimensionEngineering {
			t.Fatalf("self-starter catalog still contains engineering question %s", q.ID)
		}
	}

	long := strings.Repeat("the experiment shipped and was validated against users ", 5)
	set := NewAnswerSet()
	set.Put(multiAnswer("Q1.1-explore", "training", "hallucination", "capability", "agents", "safety"))
	set.Put(singleAnswer("Q3.2", "A"))
	set.Put(singleAnswer("Q5.1", "A"))
	set.Put(scaleAnswer("Q4.2", map[string]float64{"boundary": 5, "cost": 5, "ethics": 5, "negative": 5}))
	set.Put(textAnswer("Q6.1", long))
	set.Put(scaleAnswer("Q7.1", map[string]float64{"blog": 10, "github": 10, "social": 10}))
	set.Put(singleAnswer("Q8.2", "A"))

	scores, breakdown := ComputeDimensionScores(qs, set)

	var other float64
	for _, d := range ScoredDimensions {
		if d != DimensionEngineering {
			other += scores.Get(d)
		}
	}
	want := math.Max(0.6*other/7, 3)
	if scores.Engineering != want {
		t.Errorf("engineering fallback = %v, want exactly %v", scores.Engineering, want)
	}
	for _, b := range breakdown {
		if b.Dimension == DimensionEngineering && !b.IsDefault {
			t.Errorf("engineering breakdown not marked default")
		}
	}
}

func TestEngineeringFallbackFloor(t *testing.T) {
	qs, err := QuestionsForTrack(TrackExploration, SelfStarterIdentity)
	if err != nil {
		t.Fatalf("QuestionsForTrack: %v", err)
	}
	scores, _ := ComputeDimensionScores(qs, NewAnswerSet())
	if scores.Engineering != 3 {
		t.Errorf("engineering floor = %v, want 3", scores.Engineering)
	}
}

func TestUnscoredPartsDoNotContribute(t *testing.T) {
	qs, err := QuestionsForTrack(TrackTechnical, "Engineering Architect")
	if err != nil {
		t.Fatalf("QuestionsForTrack: %v", err)
	}
	set := NewAnswerSet()
	set.Put(singleAnswer("Q9.1", BiasHighMatch))
	set.Put(textAnswer("Q9.2", strings.Repeat("proud ", 30)))
	set.Put(textAnswer("Q9.3", "more systems work"))

	scores, _ := ComputeDimensionScores(qs, set)
	for _, d := range ScoredDimensions {
		if d == DimensionEngineering {
			continue
		}
		if v := scores.Get(d); v != 0 {
			t.Errorf("dimension %s = %v, want 0 with only calibration answered", d, v)
		}
	}
}
