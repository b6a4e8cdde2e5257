package catalog

import "context"

type Repository interface {
	// Create asigna el ID (med + ordinal) y devuelve el registro guardado.
	Create(ctx context.Context, m Medicine) (Medicine, error)
	Update(ctx context.Context, m Medicine) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Medicine, error)
	List(ctx context.Context) ([]Medicine, error)
}
