package requests

import "time"

// Status del ciclo de vida de una solicitud.
// @Enum Pending, Approved, Rejected, Delivered
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusDelivered Status = "Delivered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusDelivered:
		return true
	}
	return false
}

// OccupiesTurn: Pending y Approved cuentan contra la cuota del paciente.
func (s Status) OccupiesTurn() bool {
	return s == StatusPending || s == StatusApproved
}

func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusDelivered
}

// DeliveryType define cómo recibe el paciente el medicamento.
// @Enum pickup, delivery
type DeliveryType string

const (
	DeliveryPickup   DeliveryType = "pickup"
	DeliveryDelivery DeliveryType = "delivery"
)

func (d DeliveryType) Valid() bool {
	return d == DeliveryPickup || d == DeliveryDelivery
}

// MaxTurns es el máximo de solicitudes abiertas (Pending/Approved) por paciente.
const MaxTurns = 2

// Request es una solicitud de entrega/recogida. Nunca se borra del ledger.
type Request struct {
	ID         string
	PatientID  string
	MedicineID string

	RequestedAt time.Time
	Status      Status

	DeliveryType     DeliveryType
	DocumentAttached bool

	ResponseMessage string
	DecidedBy       *string // nil mientras está Pending
	DecidedAt       *time.Time
}
