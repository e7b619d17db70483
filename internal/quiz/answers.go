package quiz

// AnswerSet holds submitted answers keyed by question id. Each question holds
// at most one answer; resubmitting overwrites in place (latest write wins).
// Answers are only removed by a full Reset.
type AnswerSet struct {
	byID    map[string]int
	answers []Answer
}

func NewAnswerSet() *AnswerSet {
	return &AnswerSet{byID: map[string]int{}}
}

// NewAnswerSetFrom replays a slice of answers in order, applying
// latest-write-wins semantics.
func NewAnswerSetFrom(answers []Answer) *AnswerSet {
	s := NewAnswerSet()
	for _, a := range answers {
		s.Put(a)
	}
	return s
}

// Put inserts or overwrites the answer for its question id.
func (s *AnswerSet) Put(a Answer) {
	if idx, ok := s.byID[a.QuestionID]; ok {
		s.answers[idx] = a
		return
	}
	s.byID[a.QuestionID] = len(s.answers)
	s.answers = append(s.answers, a)
}

// Get returns the answer for a question id, if present.
func (s *AnswerSet) Get(questionID string) (Answer, bool) {
	idx, ok := s.byID[questionID]
	if !ok {
		return Answer{}, false
	}
	return s.answers[idx], true
}

// All returns the answers in first-submission order.
func (s *AnswerSet) All() []Answer {
	out := make([]Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

func (s *AnswerSet) Len() int { return len(s.answers) }

// Reset drops every answer.
func (s *AnswerSet) Reset() {
	s.answers = nil
	s.byID = map[string]int{}
}
