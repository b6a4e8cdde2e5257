package memory

import (
	"context"
	"errors"
	"testing"

	"pharmacy-fulfillment/internal/domain/actors"
)

func TestActorRepo_AdjustTurns_RejectsNegative(t *testing.T) {
	repo := NewActorRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, actors.Actor{ID: "patient-1", Role: actors.RolePatient, Email: "p@demo.com"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	n, err := repo.AdjustTurns(ctx, "patient-1", 1)
	if err != nil || n != 1 {
		t.Fatalf("expected 1, got %d err=%v", n, err)
	}

	if _, err := repo.AdjustTurns(ctx, "patient-1", -2); !errors.Is(err, actors.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}

	a, _ := repo.GetByID(ctx, "patient-1")
	if a.OutstandingTurns != 1 {
		t.Fatalf("failed adjust must not mutate, got %d", a.OutstandingTurns)
	}
}

func TestActorRepo_EmailIsUniqueAndCaseInsensitive(t *testing.T) {
	repo := NewActorRepo()
	ctx := context.Background()

	_ = repo.Create(ctx, actors.Actor{ID: "a1", Email: "Ana@Demo.com"})
	if err := repo.Create(ctx, actors.Actor{ID: "a2", Email: "ana@demo.com"}); !errors.Is(err, actors.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	a, err := repo.GetByEmail(ctx, "ANA@demo.com")
	if err != nil || a.ID != "a1" {
		t.Fatalf("expected a1, got %q err=%v", a.ID, err)
	}
}

func TestActorRepo_AdjustTurns_UnknownActor(t *testing.T) {
	repo := NewActorRepo()
	if _, err := repo.AdjustTurns(context.Background(), "ghost", 1); !errors.Is(err, actors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
