package quiz

import "fmt"

// IdentityQuestions returns the pre-track identity part. Answers to these pick
// the respondent's role and output forms; they never contribute scores.
func IdentityQuestions() []Question {
	return identityQuestions
}

// QuestionsForTrack assembles the full scored questionnaire for a track,
// calibration part included. For the self-starter identity on the exploration
// track every engineering question is removed rather than left to score zero.
func QuestionsForTrack(track Track, identityName string) ([]Question, error) {
	var qs []Question
	switch track {
	case TrackTechnical:
		qs = append(qs, technicalQuestions...)
	case TrackApplication:
		qs = append(qs, applicationQuestions...)
	case TrackExploration:
		qs = append(qs, explorationQuestions...)
		for _, q := range technicalQuestions {
			if q.Dimension == DimensionEngineering {
				qs = append(qs, q)
			}
		}
	default:
		return nil, fmt.Errorf("unknown track %q", track)
	}
	qs = append(qs, sharedQuestions...)
	qs = append(qs, calibrationQuestions...)

	if identityName == SelfStarterIdentity {
		filtered := qs[:0:0]
		for _, q := range qs {
			if q.Dimension != DimensionEngineering {
				filtered = append(filtered, q)
			}
		}
		qs = filtered
	}
	return qs, nil
}

// QuestionByID looks a question up across a track's catalog.
func QuestionByID(qs []Question, id string) (Question, bool) {
	for _, q := range qs {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// TrackForIdentity maps an identity role to its default track.
func TrackForIdentity(identityName string) (Track, error) {
	role, ok := IdentityRoleByName(identityName)
	if !ok {
		return "", fmt.Errorf("unknown identity %q", identityName)
	}
	return role.Track, nil
}
