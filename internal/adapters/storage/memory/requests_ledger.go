package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"pharmacy-fulfillment/internal/domain/requests"
)

const requestIDPrefix = "req"

// requestLedger es append-only: conserva el orden de inserción y nunca borra.
type requestLedger struct {
	mu    sync.RWMutex
	items []requests.Request
	index map[string]int
}

// NewRequestLedger arranca con las solicitudes semilla; el siguiente id es req<len(seed)+1>.
func NewRequestLedger(seed ...requests.Request) (requests.Ledger, error) {
	l := &requestLedger{
		items: make([]requests.Request, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	for _, r := range seed {
		if r.ID == "" {
			return nil, errors.New("seed request id required")
		}
		if _, dup := l.index[r.ID]; dup {
			return nil, fmt.Errorf("duplicate seed request %s", r.ID)
		}
		l.index[r.ID] = len(l.items)
		l.items = append(l.items, clone(r))
	}
	return l, nil
}

func (l *requestLedger) Append(ctx context.Context, r requests.Request) (requests.Request, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	r.ID = fmt.Sprintf("%s%03d", requestIDPrefix, len(l.items)+1)
	if _, taken := l.index[r.ID]; taken {
		return requests.Request{}, fmt.Errorf("request id %s already assigned", r.ID)
	}

	l.index[r.ID] = len(l.items)
	l.items = append(l.items, clone(r))
	return clone(r), nil
}

func (l *requestLedger) GetByID(ctx context.Context, id string) (requests.Request, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.index[id]
	if !ok {
		return requests.Request{}, requests.ErrNotFound
	}
	return clone(l.items[i]), nil
}

func (l *requestLedger) ListByPatient(ctx context.Context, patientID string) ([]requests.Request, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]requests.Request, 0)
	for _, r := range l.items {
		if r.PatientID == patientID {
			out = append(out, clone(r))
		}
	}
	return out, nil
}

func (l *requestLedger) ListByStatus(ctx context.Context, statuses ...requests.Status) ([]requests.Request, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	want := make(map[requests.Status]struct{}, len(statuses))
	for _, s := range statuses {
		want[s] = struct{}{}
	}

	out := make([]requests.Request, 0)
	for _, r := range l.items {
		if _, ok := want[r.Status]; ok {
			out = append(out, clone(r))
		}
	}
	return out, nil
}

func (l *requestLedger) Update(ctx context.Context, r requests.Request) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i, ok := l.index[r.ID]
	if !ok {
		return requests.ErrNotFound
	}

	// Identidad e historia de creación no cambian.
	cur := l.items[i]
	if r.PatientID != cur.PatientID || r.MedicineID != cur.MedicineID || !r.RequestedAt.Equal(cur.RequestedAt) {
		return errors.New("request identity fields are immutable")
	}

	l.items[i] = clone(r)
	return nil
}

// clone evita compartir los punteros de decisión con el llamador.
func clone(r requests.Request) requests.Request {
	if r.DecidedBy != nil {
		v := *r.DecidedBy
		r.DecidedBy = &v
	}
	if r.DecidedAt != nil {
		v := *r.DecidedAt
		r.DecidedAt = &v
	}
	return r
}
