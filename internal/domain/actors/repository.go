package actors

import "context"

type Repository interface {
	Create(ctx context.Context, a Actor) error
	GetByID(ctx context.Context, id string) (Actor, error)
	GetByEmail(ctx context.Context, email string) (Actor, error)

	// AdjustTurns suma delta al contador de turnos y devuelve el nuevo valor.
	// Falla con ErrOutOfRange si el resultado sería negativo (sin modificar nada).
	AdjustTurns(ctx context.Context, patientID string, delta int) (int, error)
}
