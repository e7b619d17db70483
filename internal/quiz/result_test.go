package quiz

import (
	"strings"
	"testing"
)

func TestBuildResultFullTechnicalRun(t *testing.T) {
	qs, set := fullTechnicalAnswers(t)
	set.Put(singleAnswer("Q9.1", BiasHighMatch))
	set.Put(textAnswer("Q9.2", strings.Repeat("shipping the eval platform was the highlight ", 3)))

	result, ok := BuildResult("Engineering Architect", qs, set)
	if !ok {
		t.Fatalf("classification missed the catalog: %+v", result.Type)
	}

	if result.Identity != "Engineering Architect" {
		t.Errorf("identity = %s", result.Identity)
	}
	if result.Type.Code == "" || result.Type.Name == "Unknown Type" {
		t.Errorf("type = %+v", result.Type)
	}
	if strings.Count(result.Type.Code, "-") != 2 {
		t.Errorf("code %s not hyphen formed", result.Type.Code)
	}
	if result.Bias != BiasHighMatch {
		t.Errorf("bias = %s, want %s", result.Bias, BiasHighMatch)
	}
	if len(result.Highlights) != 1 {
		t.Errorf("highlights = %v", result.Highlights)
	}
	if len(result.Answers) != set.Len() {
		t.Errorf("answers echoed = %d, want %d", len(result.Answers), set.Len())
	}
	if len(result.Breakdown) != len(ScoredDimensions) {
		t.Errorf("breakdown = %d entries", len(result.Breakdown))
	}

	// Strong answers across the board should earn score-derived badges.
	found := false
	for _, b := range result.Badges {
		if b == BadgeTrendForecaster {
			found = true
		}
	}
	if !found {
		t.Errorf("full Q5.2 selection missing %s badge: %v", BadgeTrendForecaster, result.Badges)
	}

	// Assembly is deterministic.
	again, _ := BuildResult("Engineering Architect", qs, set)
	if again.Type.Code != result.Type.Code || again.Scores != result.Scores {
		t.Errorf("rebuild diverged: %s vs %s", again.Type.Code, result.Type.Code)
	}
}

func TestBuildResultSelfStarter(t *testing.T) {
	qs, err := QuestionsForTrack(TrackExploration, SelfStarterIdentity)
	if err != nil {
		t.Fatalf("QuestionsForTrack: %v", err)
	}
	set := NewAnswerSet()
	set.Put(multiAnswer("Q1.1-explore", "training", "capability"))
	set.Put(singleAnswer("Q3.2", "C"))

	result, ok := BuildResult(SelfStarterIdentity, qs, set)
	if !ok {
		t.Fatalf("classification missed the catalog")
	}
	if result.Scores.Engineering < 3 {
		t.Errorf("engineering = %v, want fallback floor of 3", result.Scores.Engineering)
	}
	for _, b := range result.Breakdown {
		if b.Dimension == DimensionEngineering && !b.IsDefault {
			t.Error("engineering not marked as defaulted")
		}
	}
	if result.Bias != BiasMostlyAligned {
		t.Errorf("bias = %s, want default %s", result.Bias, BiasMostlyAligned)
	}
}
