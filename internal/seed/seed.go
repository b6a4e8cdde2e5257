// Package seed carga los datos de demo: dos pacientes, un farmacéutico,
// cinco medicamentos y tres solicitudes en distintos estados.
package seed

import (
	"context"
	"fmt"
	"time"

	"pharmacy-fulfillment/internal/domain/actors"
	"pharmacy-fulfillment/internal/domain/catalog"
	"pharmacy-fulfillment/internal/domain/requests"
)

// DemoPassword es la contraseña de todos los actores de demo.
const DemoPassword = "password123"

const (
	PatientID         = "patient-123"
	PharmacistID      = "pharmacist-456"
	SimulatedPatient  = "patient-simulado-01"
	PatientEmail      = "paciente@demo.com"
	PharmacistEmail   = "farmaceutico@demo.com"
	SimulatedEmail    = "simulado@demo.com"
	createdAtFallback = "2025-07-01T00:00:00Z"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func instant(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func Medicines() []catalog.Medicine {
	return []catalog.Medicine{
		{ID: "med001", Name: "Paracetamol", Description: "Analgésico y antipirético", Dose: "500", Unit: "mg", ExpiryDate: day("2026-12-31"), Lot: "P-1234", QuantityAvailable: 150},
		{ID: "med002", Name: "Ibuprofeno", Description: "Antiinflamatorio no esteroideo", Dose: "400", Unit: "mg", ExpiryDate: day("2027-06-30"), Lot: "I-5678", QuantityAvailable: 80},
		{ID: "med003", Name: "Amoxicilina", Description: "Antibiótico de amplio espectro", Dose: "250", Unit: "mg/5ml", ExpiryDate: day("2025-09-15"), Lot: "A-9012", QuantityAvailable: 30},
		{ID: "med004", Name: "Omeprazol", Description: "Inhibidor de la bomba de protones", Dose: "20", Unit: "mg", ExpiryDate: day("2028-03-20"), Lot: "O-3456", QuantityAvailable: 120},
		{ID: "med005", Name: "Salbutamol", Description: "Broncodilatador", Dose: "100", Unit: "mcg", ExpiryDate: day("2026-10-01"), Lot: "S-7890", QuantityAvailable: 40},
	}
}

func Requests() []requests.Request {
	pharmacist := PharmacistID
	approvedAt := instant("2025-07-21T14:00:00Z")
	rejectedAt := instant("2025-07-22T09:15:00Z")

	return []requests.Request{
		{
			ID:               "req001",
			PatientID:        PatientID,
			MedicineID:       "med001",
			RequestedAt:      instant("2025-07-20T10:30:00Z"),
			Status:           requests.StatusPending,
			DeliveryType:     requests.DeliveryDelivery,
			DocumentAttached: true,
		},
		{
			ID:              "req002",
			PatientID:       PatientID,
			MedicineID:      "med003",
			RequestedAt:     approvedAt,
			Status:          requests.StatusApproved,
			DeliveryType:    requests.DeliveryPickup,
			ResponseMessage: "Receta validada. Disponible para recogida.",
			DecidedBy:       &pharmacist,
			DecidedAt:       &approvedAt,
		},
		{
			ID:               "req003",
			PatientID:        SimulatedPatient,
			MedicineID:       "med004",
			RequestedAt:      rejectedAt,
			Status:           requests.StatusRejected,
			DeliveryType:     requests.DeliveryDelivery,
			DocumentAttached: true,
			ResponseMessage:  "Receta inválida, por favor, suba una nueva.",
			DecidedBy:        &pharmacist,
			DecidedAt:        &rejectedAt,
		},
	}
}

// Actors crea los actores de demo. El contador de turnos se deriva de las
// solicitudes abiertas para que arranque consistente con el ledger.
func Actors(ctx context.Context, repo actors.Repository, reqs []requests.Request) error {
	turns := map[string]int{}
	for _, r := range reqs {
		if r.Status.OccupiesTurn() {
			turns[r.PatientID]++
		}
	}

	hash, err := actors.HashPassword(DemoPassword)
	if err != nil {
		return err
	}
	createdAt := instant(createdAtFallback)

	list := []actors.Actor{
		{ID: PatientID, Role: actors.RolePatient, Email: PatientEmail, Name: "Ana García", Document: "123456789", DateOfBirth: day("1960-01-01"), Contact: "+57 300 1112233"},
		{ID: PharmacistID, Role: actors.RolePharmacist, Email: PharmacistEmail, Name: "Dr. Carlos Ruiz", Document: "987654321", DateOfBirth: day("1985-05-10"), Contact: "+57 300 4445566"},
		{ID: SimulatedPatient, Role: actors.RolePatient, Email: SimulatedEmail, Name: "Juan Prueba", Document: "555000111", DateOfBirth: day("1990-03-15"), Contact: "+57 300 7778899"},
	}
	for _, a := range list {
		a.PasswordHash = hash
		a.CreatedAt = createdAt
		a.OutstandingTurns = turns[a.ID]
		if a.OutstandingTurns > requests.MaxTurns {
			return fmt.Errorf("seed: %s has %d open requests", a.ID, a.OutstandingTurns)
		}
		if err := repo.Create(ctx, a); err != nil {
			return fmt.Errorf("seed actor %s: %w", a.ID, err)
		}
	}
	return nil
}
