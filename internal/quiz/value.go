package quiz

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseValue decodes a raw JSON answer payload into the Value variant the
// question kind expects. Shapes that don't match the kind are rejected here
// so the scoring engine only ever sees well-formed values (malformed answers
// that slip past are still skipped there, never fatal).
func ParseValue(kind Kind, raw json.RawMessage) (Value, error) {
	switch kind {
	case KindSingle:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, fmt.Errorf("single-choice answer must be a string: %w", err)
		}
		return Value{Kind: KindSingle, Choice: strings.TrimSpace(s)}, nil
	case KindMulti:
		var ss []string
		if err := json.Unmarshal(raw, &ss); err != nil {
			return Value{}, fmt.Errorf("multi-choice answer must be a string array: %w", err)
		}
		out := make([]string, 0, len(ss))
		for _, s := range ss {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
		return Value{Kind: KindMulti, Choices: out}, nil
	case KindScale:
		var m map[string]float64
		if err := json.Unmarshal(raw, &m); err != nil {
			return Value{}, fmt.Errorf("scale answer must be an object of numeric ratings: %w", err)
		}
		return Value{Kind: KindScale, Ratings: m}, nil
	case KindText:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, fmt.Errorf("free-text answer must be a string: %w", err)
		}
		return Value{Kind: KindText, Text: s}, nil
	}
	return Value{}, fmt.Errorf("unknown answer kind %q", kind)
}

// wellFormed reports whether a value can be handed to a scoring rule of the
// given kind.
func wellFormed(kind Kind, v Value) bool {
	if v.Kind != kind {
		return false
	}
	switch kind {
	case KindMulti:
		return v.Choices != nil
	case KindScale:
		return len(v.Ratings) > 0
	}
	return true
}

func containsAny(text string, markers ...string) bool {
	lower := strings.ToLower(text)
	for _, m := range markers {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

func countMarker(text, marker string) int {
	return strings.Count(strings.ToLower(text), marker)
}

func hasChoice(v Value, want string) bool {
	for _, c := range v.Choices {
		if c == want {
			return true
		}
	}
	return false
}

// categoryCount returns how many distinct declared option categories the
// selected choices span. Options without a category are ignored.
func categoryCount(opts []Option, choices []string) int {
	byValue := make(map[string]string, len(opts))
	for _, o := range opts {
		if o.Category != "" {
			byValue[o.Value] = o.Category
		}
	}
	seen := map[string]struct{}{}
	for _, c := range choices {
		if cat, ok := byValue[c]; ok {
			seen[cat] = struct{}{}
		}
	}
	return len(seen)
}

func ratingsMean(ratings map[string]float64) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range ratings {
		sum += r
	}
	return sum / float64(len(ratings))
}

func ratingsSum(ratings map[string]float64) float64 {
	sum := 0.0
	for _, r := range ratings {
		sum += r
	}
	return sum
}

func capScore(s float64) float64 {
	if s > 10 {
		return 10
	}
	if s < 0 {
		return 0
	}
	return s
}

// scaleLadder is the shared cutoff ladder for scale questions: the mean of
// the 1-5 sub-item ratings mapped to a 0-10 score. Ties round down to the
// lower rung.
func scaleLadder(ratings map[string]float64) float64 {
	avg := ratingsMean(ratings)
	switch {
	case avg >= 4.5:
		return 9.5
	case avg >= 4.0:
		return 8.5
	case avg >= 3.0:
		return 6.5
	default:
		return 4.5
	}
}

// notScored is the rule for identity and calibration questions: they carry
// answers but never contribute to dimension averages.
func notScored(Value, string) float64 { return 0 }
