package requests

import (
	"context"
	"sort"
	"strings"
)

// PatientView: solicitudes del paciente, más recientes primero.
func (s *Service) PatientView(ctx context.Context, patientID string) ([]Request, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, ErrInvalidInput
	}

	s.mu.RLock()
	items, err := s.ledger.ListByPatient(ctx, patientID)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.RequestedAt.Equal(b.RequestedAt) {
			return a.RequestedAt.After(b.RequestedAt)
		}
		return lessID(b.ID, a.ID)
	})
	return items, nil
}

// PharmacistQueue: Pending + Approved, más antiguas primero (triage FIFO).
func (s *Service) PharmacistQueue(ctx context.Context) ([]Request, error) {
	s.mu.RLock()
	items, err := s.ledger.ListByStatus(ctx, StatusPending, StatusApproved)
	s.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.RequestedAt.Equal(b.RequestedAt) {
			return a.RequestedAt.Before(b.RequestedAt)
		}
		return lessID(a.ID, b.ID)
	})
	return items, nil
}

// lessID compara ids con el mismo prefijo: primero por largo, así req1000 va después de req999.
func lessID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
