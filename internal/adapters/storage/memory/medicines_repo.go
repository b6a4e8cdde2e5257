package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"pharmacy-fulfillment/internal/domain/catalog"
)

const medicineIDPrefix = "med"

type medicineRepo struct {
	mu   sync.RWMutex
	byID map[string]catalog.Medicine
	seq  int
}

// NewMedicineRepo arranca con el catálogo semilla. Los ids nuevos continúan después
// de la semilla y nunca se reutilizan, aunque se borren medicamentos.
func NewMedicineRepo(seed ...catalog.Medicine) catalog.Repository {
	r := &medicineRepo{
		byID: make(map[string]catalog.Medicine, len(seed)),
	}
	for _, m := range seed {
		r.byID[m.ID] = m
	}
	r.seq = len(seed)
	return r
}

func (r *medicineRepo) Create(ctx context.Context, m catalog.Medicine) (catalog.Medicine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		r.seq++
		m.ID = fmt.Sprintf("%s%03d", medicineIDPrefix, r.seq)
		if _, taken := r.byID[m.ID]; !taken {
			break
		}
	}
	r.byID[m.ID] = m
	return m, nil
}

func (r *medicineRepo) Update(ctx context.Context, m catalog.Medicine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("medicine id required")
	}
	if _, exists := r.byID[m.ID]; !exists {
		return catalog.ErrNotFound
	}
	r.byID[m.ID] = m
	return nil
}

func (r *medicineRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return catalog.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *medicineRepo) GetByID(ctx context.Context, id string) (catalog.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return catalog.Medicine{}, catalog.ErrNotFound
	}
	return m, nil
}

// List devuelve una copia ordenada por id.
func (r *medicineRepo) List(ctx context.Context) ([]catalog.Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Medicine, 0, len(r.byID))
	for _, m := range r.byID {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
