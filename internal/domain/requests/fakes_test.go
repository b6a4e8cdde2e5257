package requests

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pharmacy-fulfillment/internal/domain/actors"
	"pharmacy-fulfillment/internal/domain/catalog"
)

type testLedger struct {
	mu      sync.Mutex
	items   []Request
	failAdd bool
}

func (l *testLedger) Append(_ context.Context, r Request) (Request, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failAdd {
		return Request{}, errors.New("ledger unavailable")
	}
	r.ID = fmt.Sprintf("req%03d", len(l.items)+1)
	l.items = append(l.items, r)
	return r, nil
}

func (l *testLedger) GetByID(_ context.Context, id string) (Request, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range l.items {
		if r.ID == id {
			return r, nil
		}
	}
	return Request{}, ErrNotFound
}

func (l *testLedger) ListByPatient(_ context.Context, patientID string) ([]Request, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := []Request{}
	for _, r := range l.items {
		if r.PatientID == patientID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (l *testLedger) ListByStatus(_ context.Context, statuses ...Status) ([]Request, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := []Request{}
	for _, r := range l.items {
		for _, st := range statuses {
			if r.Status == st {
				out = append(out, r)
				break
			}
		}
	}
	return out, nil
}

func (l *testLedger) Update(_ context.Context, r Request) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].ID == r.ID {
			l.items[i] = r
			return nil
		}
	}
	return ErrNotFound
}

func (l *testLedger) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

type testDirectory struct {
	mu     sync.Mutex
	actors map[string]actors.Actor

	// failRelease hace fallar cualquier AdjustTurns con delta negativo.
	failRelease bool
}

func newTestDirectory(list ...actors.Actor) *testDirectory {
	d := &testDirectory{actors: map[string]actors.Actor{}}
	for _, a := range list {
		d.actors[a.ID] = a
	}
	return d
}

func (d *testDirectory) GetByID(_ context.Context, id string) (actors.Actor, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	a, ok := d.actors[id]
	if !ok {
		return actors.Actor{}, actors.ErrNotFound
	}
	return a, nil
}

func (d *testDirectory) AdjustTurns(_ context.Context, id string, delta int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	a, ok := d.actors[id]
	if !ok {
		return 0, actors.ErrNotFound
	}
	if delta < 0 && d.failRelease {
		return a.OutstandingTurns, errors.New("directory down")
	}
	if a.OutstandingTurns+delta < 0 {
		return a.OutstandingTurns, actors.ErrOutOfRange
	}
	a.OutstandingTurns += delta
	d.actors[id] = a
	return a.OutstandingTurns, nil
}

func (d *testDirectory) turns(id string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.actors[id].OutstandingTurns
}

func (d *testDirectory) setTurns(id string, n int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	a := d.actors[id]
	a.OutstandingTurns = n
	d.actors[id] = a
}

type testMedicines map[string]catalog.Medicine

func (m testMedicines) Resolve(_ context.Context, id string) (catalog.Medicine, error) {
	med, ok := m[id]
	if !ok {
		return catalog.Medicine{}, catalog.ErrNotFound
	}
	return med, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	seen []Request
}

func (n *recordingNotifier) RequestChanged(_ context.Context, r Request) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.seen = append(n.seen, r)
}

type fixture struct {
	svc    *Service
	ledger *testLedger
	dir    *testDirectory
	clock  time.Time
}

// newFixture arma un motor con un paciente P, un farmacéutico F y tres medicamentos.
// El reloj avanza un minuto por llamada para que el orden de RequestedAt sea determinista.
func newFixture() *fixture {
	f := &fixture{
		ledger: &testLedger{},
		dir: newTestDirectory(
			actors.Actor{ID: "P", Role: actors.RolePatient},
			actors.Actor{ID: "Q", Role: actors.RolePatient},
			actors.Actor{ID: "F", Role: actors.RolePharmacist},
		),
		clock: time.Date(2025, 7, 20, 10, 0, 0, 0, time.UTC),
	}
	meds := testMedicines{
		"A": {ID: "A", Name: "Paracetamol"},
		"B": {ID: "B", Name: "Ibuprofeno"},
		"C": {ID: "C", Name: "Omeprazol"},
	}
	f.svc = NewService(f.ledger, f.dir, meds)
	f.svc.now = func() time.Time {
		f.clock = f.clock.Add(time.Minute)
		return f.clock
	}
	return f
}
