package actors

import "time"

// Role define el rol de un actor.
// @Enum patient, pharmacist
type Role string

const (
	RolePatient    Role = "patient"
	RolePharmacist Role = "pharmacist"
)

func (r Role) Valid() bool {
	return r == RolePatient || r == RolePharmacist
}

// Actor es un usuario registrado (paciente o farmacéutico).
type Actor struct {
	ID   string
	Role Role

	// Solo significativo para pacientes. Lo modifica únicamente el motor de solicitudes.
	OutstandingTurns int

	Email        string
	PasswordHash string
	Name         string
	Document     string
	DateOfBirth  time.Time
	Contact      string

	CreatedAt time.Time
}
