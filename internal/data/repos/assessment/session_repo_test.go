package assessment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/prism-backend/internal/data/repos/testutil"
	"github.com/yungbote/prism-backend/internal/domain"
)

func TestSessionRepoLifecycle(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.OpenDB(t)
	repo := NewSessionRepo(gdb, testutil.NewLogger(t))

	seeded := testutil.SeedSession(t, ctx, gdb, "Engineering Architect", "technical")

	got, err := repo.GetByID(ctx, nil, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Identity != "Engineering Architect" {
		t.Fatalf("got = %+v", got)
	}
	if got.Status != domain.SessionStatusActive {
		t.Errorf("status = %s", got.Status)
	}

	answers := datatypes.JSON([]byte(`[{"question_id":"Q1.2","value":{"kind":"single","choice":"A"}}]`))
	if err := repo.UpdateAnswers(ctx, nil, seeded.ID, answers); err != nil {
		t.Fatalf("UpdateAnswers: %v", err)
	}
	if err := repo.UpdateStatus(ctx, nil, seeded.ID, domain.SessionStatusCompleted); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err = repo.GetByID(ctx, nil, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if got.Status != domain.SessionStatusCompleted {
		t.Errorf("status = %s, want completed", got.Status)
	}
	if string(got.Answers) != string(answers) {
		t.Errorf("answers = %s", got.Answers)
	}

	if err := repo.SoftDeleteByID(ctx, nil, seeded.ID); err != nil {
		t.Fatalf("SoftDeleteByID: %v", err)
	}
	got, err = repo.GetByID(ctx, nil, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID after delete: %v", err)
	}
	if got != nil {
		t.Errorf("soft-deleted session still visible: %+v", got)
	}
}

func TestSessionRepoNilID(t *testing.T) {
	gdb := testutil.OpenDB(t)
	repo := NewSessionRepo(gdb, testutil.NewLogger(t))
	got, err := repo.GetByID(context.Background(), nil, uuid.Nil)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Errorf("nil id returned %+v", got)
	}
}
