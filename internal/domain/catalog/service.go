package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("medicine not found")
)

type Service struct {
	repo Repository

	// Serializa read-modify-write de stock; collate.Collator tampoco es seguro para uso concurrente.
	mu       sync.Mutex
	collator *collate.Collator
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:     repo,
		collator: collate.New(language.Spanish, collate.IgnoreCase),
	}
}

type AddInput struct {
	Name        string
	Description string
	Dose        string
	Unit        string
	ExpiryDate  time.Time
	Lot         string
	Quantity    int
}

func (s *Service) Add(ctx context.Context, in AddInput) (Medicine, error) {
	m := Medicine{
		Name:              strings.TrimSpace(in.Name),
		Description:       strings.TrimSpace(in.Description),
		Dose:              strings.TrimSpace(in.Dose),
		Unit:              strings.TrimSpace(in.Unit),
		ExpiryDate:        in.ExpiryDate,
		Lot:               strings.TrimSpace(in.Lot),
		QuantityAvailable: in.Quantity,
	}
	if m.Name == "" || m.Description == "" || m.Dose == "" || m.Unit == "" || m.Lot == "" || m.ExpiryDate.IsZero() {
		return Medicine{}, ErrInvalidInput
	}
	if m.QuantityAvailable < 0 {
		return Medicine{}, ErrInvalidInput
	}
	return s.repo.Create(ctx, m)
}

// Resolve es la única operación que consume el motor de solicitudes.
func (s *Service) Resolve(ctx context.Context, id string) (Medicine, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medicine{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Search filtra por nombre o id (case-insensitive). Query vacía devuelve todo.
func (s *Service) Search(ctx context.Context, query string) ([]Medicine, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items, nil
	}

	out := make([]Medicine, 0, len(items))
	for _, m := range items {
		if strings.Contains(strings.ToLower(m.Name), q) || strings.Contains(strings.ToLower(m.ID), q) {
			out = append(out, m)
		}
	}
	return out, nil
}

// Inventory devuelve todo el catálogo ordenado por nombre (collation española).
func (s *Service) Inventory(ctx context.Context) ([]Medicine, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(items, func(i, j int) bool {
		return s.collator.CompareString(items[i].Name, items[j].Name) < 0
	})
	return items, nil
}

// AdjustQuantity suma delta al stock. Nunca baja de 0 (igual que el botón "-" del inventario).
func (s *Service) AdjustQuantity(ctx context.Context, id string, delta int) (Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.Resolve(ctx, id)
	if err != nil {
		return Medicine{}, err
	}
	m.QuantityAvailable += delta
	if m.QuantityAvailable < 0 {
		m.QuantityAvailable = 0
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return Medicine{}, err
	}
	return m, nil
}

func (s *Service) SetQuantity(ctx context.Context, id string, quantity int) (Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 0 {
		return Medicine{}, ErrInvalidInput
	}
	m, err := s.Resolve(ctx, id)
	if err != nil {
		return Medicine{}, err
	}
	m.QuantityAvailable = quantity
	if err := s.repo.Update(ctx, m); err != nil {
		return Medicine{}, err
	}
	return m, nil
}

// Delete no toca solicitudes existentes: siguen referenciando el id.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}
