package seed

import (
	"context"
	"testing"

	"pharmacy-fulfillment/internal/adapters/storage/memory"
	"pharmacy-fulfillment/internal/domain/actors"
	"pharmacy-fulfillment/internal/domain/requests"

	"golang.org/x/crypto/bcrypt"
)

func init() {
	actors.PasswordCost = bcrypt.MinCost
}

func TestActors_TurnsMatchOpenRequests(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewActorRepo()

	if err := Actors(ctx, repo, Requests()); err != nil {
		t.Fatalf("Actors error: %v", err)
	}

	want := map[string]int{PatientID: 2, SimulatedPatient: 0, PharmacistID: 0}
	for id, turns := range want {
		a, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("GetByID(%s): %v", id, err)
		}
		if a.OutstandingTurns != turns {
			t.Fatalf("%s: expected %d turns, got %d", id, turns, a.OutstandingTurns)
		}
		if !actors.CheckPassword(a.PasswordHash, DemoPassword) {
			t.Fatalf("%s: demo password does not match", id)
		}
	}
}

func TestRequests_ReferenceSeededMedicines(t *testing.T) {
	ids := map[string]bool{}
	for _, m := range Medicines() {
		ids[m.ID] = true
	}
	for _, r := range Requests() {
		if !ids[r.MedicineID] {
			t.Fatalf("%s references unknown medicine %s", r.ID, r.MedicineID)
		}
		if (r.Status == requests.StatusPending) != (r.DecidedBy == nil) {
			t.Fatalf("%s: decision stamp inconsistent with status %s", r.ID, r.Status)
		}
	}
}
