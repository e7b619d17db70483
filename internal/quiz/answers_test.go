package quiz

import "testing"

func TestAnswerSetLatestWriteWins(t *testing.T) {
	set := NewAnswerSet()
	set.Put(singleAnswer("Q1.2", "A"))
	set.Put(singleAnswer("Q1.3", "B"))
	set.Put(singleAnswer("Q1.2", "C"))

	if set.Len() != 2 {
		t.Fatalf("len = %d, want 2", set.Len())
	}
	a, ok := set.Get("Q1.2")
	if !ok || a.Value.Choice != "C" {
		t.Errorf("Q1.2 = %+v, want latest choice C", a)
	}

	// Re-answering must not disturb first-answer ordering.
	all := set.All()
	if all[0].QuestionID != "Q1.2" || all[1].QuestionID != "Q1.3" {
		t.Errorf("order = [%s %s], want [Q1.2 Q1.3]", all[0].QuestionID, all[1].QuestionID)
	}
}

func TestAnswerSetReset(t *testing.T) {
	set := NewAnswerSetFrom([]Answer{singleAnswer("Q1.2", "A")})
	set.Reset()
	if set.Len() != 0 {
		t.Errorf("len after reset = %d", set.Len())
	}
	if _, ok := set.Get("Q1.2"); ok {
		t.Error("answer survived reset")
	}
}

func TestAnswerSetAllCopies(t *testing.T) {
	set := NewAnswerSetFrom([]Answer{singleAnswer("Q1.2", "A")})
	all := set.All()
	all[0].Value.Choice = "Z"
	a, _ := set.Get("Q1.2")
	if a.Value.Choice != "A" {
		t.Error("mutating All() result leaked into the set")
	}
}
