package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"pharmacy-fulfillment/internal/domain/requests"
)

func seededLedger(t *testing.T) requests.Ledger {
	t.Helper()
	base := time.Date(2025, 7, 20, 10, 30, 0, 0, time.UTC)
	l, err := NewRequestLedger(
		requests.Request{ID: "req001", PatientID: "patient-123", MedicineID: "med001", RequestedAt: base, Status: requests.StatusPending},
		requests.Request{ID: "req002", PatientID: "patient-123", MedicineID: "med003", RequestedAt: base.Add(time.Hour), Status: requests.StatusApproved},
		requests.Request{ID: "req003", PatientID: "patient-simulado-01", MedicineID: "med004", RequestedAt: base.Add(2 * time.Hour), Status: requests.StatusRejected},
	)
	if err != nil {
		t.Fatalf("NewRequestLedger error: %v", err)
	}
	return l
}

func TestRequestLedger_AppendContinuesAfterSeed(t *testing.T) {
	l := seededLedger(t)
	ctx := context.Background()

	r, err := l.Append(ctx, requests.Request{PatientID: "patient-123", MedicineID: "med002", Status: requests.StatusPending})
	if err != nil {
		t.Fatalf("Append error: %v", err)
	}
	if r.ID != "req004" {
		t.Fatalf("expected req004, got %s", r.ID)
	}

	r2, _ := l.Append(ctx, requests.Request{PatientID: "patient-123", MedicineID: "med002", Status: requests.StatusPending})
	if r2.ID != "req005" {
		t.Fatalf("expected req005, got %s", r2.ID)
	}
}

func TestRequestLedger_ListByStatusAndPatient(t *testing.T) {
	l := seededLedger(t)
	ctx := context.Background()

	open, _ := l.ListByStatus(ctx, requests.StatusPending, requests.StatusApproved)
	if len(open) != 2 {
		t.Fatalf("expected 2 open requests, got %d", len(open))
	}

	mine, _ := l.ListByPatient(ctx, "patient-simulado-01")
	if len(mine) != 1 || mine[0].ID != "req003" {
		t.Fatalf("unexpected patient listing %#v", mine)
	}
}

func TestRequestLedger_UpdateKeepsIdentityAndCopies(t *testing.T) {
	l := seededLedger(t)
	ctx := context.Background()

	r, _ := l.GetByID(ctx, "req001")
	who := "pharmacist-456"
	r.Status = requests.StatusApproved
	r.DecidedBy = &who
	if err := l.Update(ctx, r); err != nil {
		t.Fatalf("Update error: %v", err)
	}

	// Mutar el puntero del llamador no debe afectar el ledger.
	who = "someone-else"
	got, _ := l.GetByID(ctx, "req001")
	if got.DecidedBy == nil || *got.DecidedBy != "pharmacist-456" {
		t.Fatalf("ledger leaked caller pointer: %#v", got.DecidedBy)
	}

	r.PatientID = "patient-999"
	if err := l.Update(ctx, r); err == nil {
		t.Fatalf("expected identity change to be rejected")
	}

	if err := l.Update(ctx, requests.Request{ID: "req404"}); !errors.Is(err, requests.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewRequestLedger_RejectsDuplicateSeed(t *testing.T) {
	_, err := NewRequestLedger(
		requests.Request{ID: "req001"},
		requests.Request{ID: "req001"},
	)
	if err == nil {
		t.Fatalf("expected duplicate seed error")
	}
}
