package quiz

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		scores      DimensionScores
		wantCode    string
		wantRefined bool
	}{
		{
			name: "theory beats engineering",
			scores: DimensionScores{
				Theory: 9, Engineering: 5,
				Radar: 9, Learning: 9,
				Innovation: 9, Collaboration: 2, Influence: 2,
			},
			wantCode: "A-B-I",
		},
		{
			name: "engineering led and outward facing",
			scores: DimensionScores{
				Theory: 5, Engineering: 9,
				Radar: 3, Learning: 3,
				Innovation: 4, Collaboration: 9, Influence: 9,
			},
			wantCode: "C-D-O",
		},
		{
			name: "first axis tie falls to C",
			scores: DimensionScores{
				Theory: 7, Engineering: 7,
				Radar: 9, Learning: 9,
				Innovation: 9, Collaboration: 1, Influence: 1,
			},
			wantCode: "C-B-I",
		},
		{
			name: "second axis tie falls to D",
			scores: DimensionScores{
				Theory: 8, Engineering: 6,
				Radar: 7, Learning: 7,
				Innovation: 9, Collaboration: 1, Influence: 1,
			},
			wantCode: "A-D-I",
		},
		{
			name: "third axis tie falls to O",
			scores: DimensionScores{
				Theory: 9, Engineering: 5,
				Radar: 9, Learning: 9,
				Innovation: 6, Collaboration: 6, Influence: 6,
			},
			wantCode: "A-B-O",
		},
		{
			name: "all zero falls to second labels",
			scores: DimensionScores{},
			wantCode: "C-D-O",
		},
		{
			name: "high aesthetics earns refined",
			scores: DimensionScores{
				Theory: 9, Engineering: 5,
				Radar: 2, Learning: 2,
				Innovation: 9, Aesthetics: 8,
			},
			wantCode:    "A-D-I",
			wantRefined: true,
		},
		{
			name: "aesthetics just below threshold",
			scores: DimensionScores{
				Theory: 9, Engineering: 5,
				Radar: 2, Learning: 2,
				Innovation: 9, Aesthetics: 7.9,
			},
			wantCode: "A-D-I",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, refined, ok := Classify(tt.scores)
			if code != tt.wantCode {
				t.Errorf("code = %s, want %s", code, tt.wantCode)
			}
			if refined != tt.wantRefined {
				t.Errorf("refined = %v, want %v", refined, tt.wantRefined)
			}
			if !ok {
				t.Errorf("code %s not found in catalog", code)
			}
		})
	}
}

func TestClassifyCoversAllCatalogCodes(t *testing.T) {
	seen := map[string]bool{}
	grid := []DimensionScores{
		{Theory: 9, Engineering: 1, Radar: 9, Learning: 9, Innovation: 9},
		{Theory: 9, Engineering: 1, Radar: 9, Learning: 9, Collaboration: 9, Influence: 9},
		{Theory: 9, Engineering: 1, Radar: 1, Learning: 1, Innovation: 9},
		{Theory: 9, Engineering: 1, Radar: 1, Learning: 1, Collaboration: 9, Influence: 9},
		{Theory: 1, Engineering: 9, Radar: 9, Learning: 9, Innovation: 9},
		{Theory: 1, Engineering: 9, Radar: 9, Learning: 9, Collaboration: 9, Influence: 9},
		{Theory: 1, Engineering: 9, Radar: 1, Learning: 1, Innovation: 9},
		{Theory: 1, Engineering: 9, Radar: 1, Learning: 1, Collaboration: 9, Influence: 9},
	}
	for _, s := range grid {
		code, _, ok := Classify(s)
		if !ok {
			t.Errorf("code %s missing from catalog", code)
		}
		seen[code] = true
	}
	if len(seen) != 8 {
		t.Errorf("grid produced %d distinct codes, want 8", len(seen))
	}
	for _, pt := range AllPersonalityTypes() {
		if !seen[pt.Code] {
			t.Errorf("catalog code %s unreachable from grid", pt.Code)
		}
	}
}

func TestUnknownPersonalityType(t *testing.T) {
	pt := UnknownPersonalityType("Z-Z-Z")
	if pt.Code != "Z-Z-Z" {
		t.Errorf("code = %s, want Z-Z-Z", pt.Code)
	}
	if pt.Name == "" || pt.Strengths == nil || pt.GrowthAdvice == nil {
		t.Errorf("placeholder must carry a name and empty advice lists: %+v", pt)
	}
}
