package quiz

import "testing"

func TestQuestionsForTrack(t *testing.T) {
	tracks := []Track{TrackTechnical, TrackApplication, TrackExploration}
	for _, track := range tracks {
		t.Run(string(track), func(t *testing.T) {
			qs, err := QuestionsForTrack(track, "Engineering Architect")
			if err != nil {
				t.Fatalf("QuestionsForTrack: %v", err)
			}

			seen := map[string]bool{}
			dims := map[Dimension]bool{}
			for _, q := range qs {
				if seen[q.ID] {
					t.Errorf("duplicate question id %s", q.ID)
				}
				seen[q.ID] = true
				dims[q.Dimension] = true
				if q.Score == nil {
					t.Errorf("question %s has no scoring rule", q.ID)
				}
				if q.Kind != KindText && q.Kind != KindScale && len(q.Options) == 0 {
					t.Errorf("question %s (%s) has no options", q.ID, q.Kind)
				}
			}

			for _, d := range ScoredDimensions {
				if !dims[d] {
					t.Errorf("track %s covers no %s questions", track, d)
				}
			}
			if !dims[DimensionCalibration] {
				t.Errorf("track %s missing calibration part", track)
			}
		})
	}
}

func TestQuestionsForTrackUnknown(t *testing.T) {
	if _, err := QuestionsForTrack(Track("astral"), ""); err == nil {
		t.Fatal("expected error for unknown track")
	}
}

func TestSelfStarterDropsEngineering(t *testing.T) {
	qs, err := QuestionsForTrack(TrackExploration, SelfStarterIdentity)
	if err != nil {
		t.Fatalf("QuestionsForTrack: %v", err)
	}
	for _, q := range qs {
		if q.Dimension == DimensionEngineering {
			t.Errorf("engineering question %s present for self-starter", q.ID)
		}
	}

	// Other exploration identities keep the engineering part.
	qs, err = QuestionsForTrack(TrackExploration, "Cross-Domain Explorer")
	if err != nil {
		t.Fatalf("QuestionsForTrack: %v", err)
	}
	count := 0
	for _, q := range qs {
		if q.Dimension == DimensionEngineering {
			count++
		}
	}
	if count == 0 {
		t.Error("cross-domain explorer lost its engineering questions")
	}
}

func TestExplorationBorrowsEngineeringPart(t *testing.T) {
	qs, err := QuestionsForTrack(TrackExploration, "AI Investor/Observer")
	if err != nil {
		t.Fatalf("QuestionsForTrack: %v", err)
	}
	if _, ok := QuestionByID(qs, "Q2.1"); !ok {
		t.Error("exploration track missing shared engineering question Q2.1")
	}
}

func TestIdentityQuestionsUnscored(t *testing.T) {
	for _, q := range IdentityQuestions() {
		if q.Dimension != DimensionIdentity {
			t.Errorf("question %s dimension = %s", q.ID, q.Dimension)
		}
		if got := q.Score(Value{Kind: q.Kind, Choice: "x"}, ""); got != 0 {
			t.Errorf("identity question %s scored %v", q.ID, got)
		}
	}
}

func TestTrackForIdentity(t *testing.T) {
	tests := []struct {
		identity string
		want     Track
	}{
		{"Engineering Architect", TrackTechnical},
		{"Algorithm Researcher", TrackTechnical},
		{"AI Founder", TrackTechnical},
		{"Product Shaper", TrackApplication},
		{"Application Developer", TrackApplication},
		{"AI Content Creator", TrackApplication},
		{"Org Catalyst", TrackApplication},
		{SelfStarterIdentity, TrackExploration},
		{"Cross-Domain Explorer", TrackExploration},
		{"AI Investor/Observer", TrackExploration},
	}
	for _, tt := range tests {
		got, err := TrackForIdentity(tt.identity)
		if err != nil {
			t.Errorf("TrackForIdentity(%q): %v", tt.identity, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TrackForIdentity(%q) = %s, want %s", tt.identity, got, tt.want)
		}
	}
	if _, err := TrackForIdentity("Time Traveler"); err == nil {
		t.Error("expected error for unknown identity")
	}
}
