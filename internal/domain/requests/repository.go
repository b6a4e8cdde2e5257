package requests

import (
	"context"

	"pharmacy-fulfillment/internal/domain/actors"
	"pharmacy-fulfillment/internal/domain/catalog"
)

// Ledger es el almacén append-only de solicitudes.
type Ledger interface {
	// Append asigna el ID (req + ordinal) y devuelve la solicitud guardada.
	Append(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	ListByPatient(ctx context.Context, patientID string) ([]Request, error)
	ListByStatus(ctx context.Context, statuses ...Status) ([]Request, error)

	// Update reemplaza estado/decisión de una solicitud existente. Solo lo usa el motor.
	Update(ctx context.Context, r Request) error
}

// ActorDirectory es lo que el motor necesita del directorio de actores.
type ActorDirectory interface {
	GetByID(ctx context.Context, id string) (actors.Actor, error)
	AdjustTurns(ctx context.Context, patientID string, delta int) (int, error)
}

// MedicineResolver evita depender del servicio de catálogo completo.
type MedicineResolver interface {
	Resolve(ctx context.Context, id string) (catalog.Medicine, error)
}

// Notifier recibe cada solicitud creada o decidida, fuera del lock del motor.
type Notifier interface {
	RequestChanged(ctx context.Context, r Request)
}

// Metrics es el subconjunto de métricas que emite el motor.
type Metrics interface {
	Submitted(deliveryType string)
	Decided(status string)
	Failed(operation, reason string)
	TurnReleased()
}
