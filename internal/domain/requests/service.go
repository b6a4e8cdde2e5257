package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"pharmacy-fulfillment/internal/domain/actors"
	"pharmacy-fulfillment/internal/domain/catalog"
	"pharmacy-fulfillment/internal/platform/logger"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrQuotaExceeded     = errors.New("turn quota exceeded")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Service es el motor del ciclo de vida: única puerta de escritura sobre el ledger
// y sobre el contador de turnos de los pacientes.
//
// mu serializa Submit/Decide (el chequeo de cuota y el incremento no se separan) y
// las lecturas toman RLock para no ver una solicitud sin su turno contado.
type Service struct {
	mu sync.RWMutex

	ledger  Ledger
	actors  ActorDirectory
	catalog MedicineResolver

	now      func() time.Time
	log      logger.Logger
	notifier Notifier
	metrics  Metrics
}

type Option func(*Service)

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

func NewService(ledger Ledger, directory ActorDirectory, medicines MedicineResolver, opts ...Option) *Service {
	s := &Service{
		ledger:   ledger,
		actors:   directory,
		catalog:  medicines,
		now:      time.Now,
		log:      logger.Nop(),
		notifier: nopNotifier{},
		metrics:  nopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Fields{"component": "lifecycle"})
	return s
}

type SubmitInput struct {
	PatientID        string
	MedicineID       string
	DeliveryType     DeliveryType
	DocumentAttached bool
}

// Submit crea una solicitud Pending y ocupa un turno del paciente.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Request, error) {
	r, err := s.submit(ctx, in)
	if err != nil {
		s.failed("submit", err, logger.Fields{"patient_id": in.PatientID, "medicine_id": in.MedicineID})
		return Request{}, err
	}

	s.metrics.Submitted(string(r.DeliveryType))
	s.log.Info("request submitted", logger.Fields{
		"request_id":    r.ID,
		"patient_id":    r.PatientID,
		"medicine_id":   r.MedicineID,
		"delivery_type": r.DeliveryType,
	})
	s.notifier.RequestChanged(ctx, r)
	return r, nil
}

func (s *Service) submit(ctx context.Context, in SubmitInput) (Request, error) {
	patientID := strings.TrimSpace(in.PatientID)
	medicineID := strings.TrimSpace(in.MedicineID)

	if patientID == "" || medicineID == "" {
		return Request{}, ErrInvalidInput
	}
	if !in.DeliveryType.Valid() {
		return Request{}, fmt.Errorf("%w: delivery_type must be pickup or delivery", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patient, err := s.actor(ctx, patientID)
	if err != nil {
		return Request{}, err
	}
	if patient.Role != actors.RolePatient {
		return Request{}, fmt.Errorf("%w: only patients can submit requests", ErrForbidden)
	}

	if _, err := s.catalog.Resolve(ctx, medicineID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return Request{}, fmt.Errorf("%w: medicine %s", ErrNotFound, medicineID)
		}
		return Request{}, err
	}

	if patient.OutstandingTurns >= MaxTurns {
		return Request{}, fmt.Errorf("%w: %d of %d turns taken", ErrQuotaExceeded, patient.OutstandingTurns, MaxTurns)
	}

	// Primero el turno; si el append falla se devuelve.
	if _, err := s.actors.AdjustTurns(ctx, patientID, +1); err != nil {
		return Request{}, fmt.Errorf("reserve turn: %w", err)
	}

	r, err := s.ledger.Append(ctx, Request{
		PatientID:        patientID,
		MedicineID:       medicineID,
		RequestedAt:      s.now(),
		Status:           StatusPending,
		DeliveryType:     in.DeliveryType,
		DocumentAttached: in.DocumentAttached,
	})
	if err != nil {
		if _, rbErr := s.actors.AdjustTurns(ctx, patientID, -1); rbErr != nil {
			s.log.Error("turn rollback failed", logger.Fields{"patient_id": patientID, "err": rbErr.Error()})
		}
		return Request{}, fmt.Errorf("append request: %w", err)
	}
	return r, nil
}

type DecideInput struct {
	RequestID       string
	PharmacistID    string
	Status          Status
	ResponseMessage string
}

// Decide aplica una decisión de farmacéutico siguiendo la tabla de transiciones.
func (s *Service) Decide(ctx context.Context, in DecideInput) (Request, error) {
	r, from, err := s.decide(ctx, in)
	if err != nil {
		s.failed("decide", err, logger.Fields{
			"request_id":    in.RequestID,
			"pharmacist_id": in.PharmacistID,
			"target_status": in.Status,
		})
		return Request{}, err
	}

	s.metrics.Decided(string(r.Status))
	s.log.Info("request decided", logger.Fields{
		"request_id":    r.ID,
		"pharmacist_id": in.PharmacistID,
		"from":          from,
		"to":            r.Status,
	})
	s.notifier.RequestChanged(ctx, r)
	return r, nil
}

func (s *Service) decide(ctx context.Context, in DecideInput) (Request, Status, error) {
	requestID := strings.TrimSpace(in.RequestID)
	pharmacistID := strings.TrimSpace(in.PharmacistID)

	if requestID == "" || pharmacistID == "" {
		return Request{}, "", ErrInvalidInput
	}
	if !in.Status.Valid() {
		return Request{}, "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, in.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pharmacist, err := s.actor(ctx, pharmacistID)
	if err != nil {
		return Request{}, "", err
	}
	if pharmacist.Role != actors.RolePharmacist {
		return Request{}, "", fmt.Errorf("%w: only pharmacists can decide requests", ErrForbidden)
	}

	current, err := s.ledger.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Request{}, "", fmt.Errorf("%w: request %s", ErrNotFound, requestID)
		}
		return Request{}, "", err
	}

	effect, ok := Transition(current.Status, in.Status)
	if !ok {
		return Request{}, "", fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, in.Status)
	}

	now := s.now()
	decidedBy := pharmacistID

	next := current
	next.Status = in.Status
	next.ResponseMessage = strings.TrimSpace(in.ResponseMessage)
	next.DecidedBy = &decidedBy
	next.DecidedAt = &now

	if err := s.ledger.Update(ctx, next); err != nil {
		return Request{}, "", fmt.Errorf("update request: %w", err)
	}

	if effect == EffectReleaseTurn && current.Status.OccupiesTurn() {
		if err := s.releaseTurn(ctx, current); err != nil {
			if rbErr := s.ledger.Update(ctx, current); rbErr != nil {
				s.log.Error("request rollback failed", logger.Fields{"request_id": current.ID, "err": rbErr.Error()})
			}
			return Request{}, "", err
		}
	}

	return next, current.Status, nil
}

// releaseTurn descuenta un turno con piso en 0. Bajar de 0 indica una inconsistencia previa,
// no un error del llamador: se loguea y se ignora.
func (s *Service) releaseTurn(ctx context.Context, r Request) error {
	_, err := s.actors.AdjustTurns(ctx, r.PatientID, -1)
	switch {
	case err == nil:
		s.metrics.TurnReleased()
		return nil
	case errors.Is(err, actors.ErrOutOfRange), errors.Is(err, actors.ErrNotFound):
		s.log.Warn("turn release skipped", logger.Fields{
			"request_id": r.ID,
			"patient_id": r.PatientID,
			"reason":     err.Error(),
		})
		return nil
	default:
		return fmt.Errorf("release turn: %w", err)
	}
}

// Actor es la lectura de getActor, consistente con el ledger.
func (s *Service) Actor(ctx context.Context, id string) (actors.Actor, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return actors.Actor{}, ErrInvalidInput
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actor(ctx, id)
}

func (s *Service) actor(ctx context.Context, id string) (actors.Actor, error) {
	a, err := s.actors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, actors.ErrNotFound) {
			return actors.Actor{}, fmt.Errorf("%w: actor %s", ErrNotFound, id)
		}
		return actors.Actor{}, err
	}
	return a, nil
}

func (s *Service) failed(op string, err error, fields logger.Fields) {
	reason := Reason(err)
	s.metrics.Failed(op, reason)

	fields["op"] = op
	fields["reason"] = reason
	fields["err"] = err.Error()

	switch reason {
	case "invalid_transition":
		// Indica un bug del llamador/UI.
		s.log.Warn("unexpected transition attempt", fields)
	case "internal":
		s.log.Error("lifecycle operation failed", fields)
	default:
		s.log.Debug("lifecycle operation rejected", fields)
	}
}

// Reason clasifica un error del motor en una etiqueta estable (métricas, logs, API).
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrQuotaExceeded):
		return "quota_exceeded"
	case errors.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	default:
		return "internal"
	}
}

type nopNotifier struct{}

func (nopNotifier) RequestChanged(context.Context, Request) {}

type nopMetrics struct{}

func (nopMetrics) Submitted(string)      {}
func (nopMetrics) Decided(string)        {}
func (nopMetrics) Failed(string, string) {}
func (nopMetrics) TurnReleased()         {}
