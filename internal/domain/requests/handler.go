package requests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pharmacy-fulfillment/internal/domain/actors"
	"pharmacy-fulfillment/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, medicines MedicineResolver, roles middleware.RoleLookup) {
	patientOnly := middleware.RequireRole(roles, string(actors.RolePatient))
	pharmacistOnly := middleware.RequireRole(roles, string(actors.RolePharmacist))

	// Perfil + contador de turnos (cualquier actor)
	r.Get("/me", getMeHandler(svc))

	// Paciente
	r.With(patientOnly).Post("/requests", submitRequestHandler(svc, medicines))
	r.With(patientOnly).Get("/me/requests", listMyRequestsHandler(svc, medicines))

	// Farmacéutico
	r.With(pharmacistOnly).Get("/requests/queue", queueHandler(svc, medicines))
	r.With(pharmacistOnly).Post("/requests/{requestID}/decision", decideRequestHandler(svc, medicines))
}

type submitRequest struct {
	MedicineID       string `json:"medicine_id"`
	DeliveryType     string `json:"delivery_type"` // pickup | delivery
	DocumentAttached bool   `json:"document_attached"`
}

type decideRequest struct {
	Status          string `json:"status"` // Approved | Rejected | Delivered
	ResponseMessage string `json:"response_message"`
}

type requestResponse struct {
	ID               string       `json:"id"`
	PatientID        string       `json:"patient_id"`
	MedicineID       string       `json:"medicine_id"`
	MedicineName     string       `json:"medicine_name,omitempty"`
	RequestedAt      time.Time    `json:"requested_at"`
	Status           Status       `json:"status"`
	DeliveryType     DeliveryType `json:"delivery_type"`
	DocumentAttached bool         `json:"document_attached"`
	ResponseMessage  string       `json:"response_message"`
	DecidedBy        *string      `json:"decided_by,omitempty"`
	DecidedAt        *time.Time   `json:"decided_at,omitempty"`
	NextStatuses     []Status     `json:"next_statuses"`
}

type meResponse struct {
	ID               string      `json:"id"`
	Role             actors.Role `json:"role"`
	Name             string      `json:"name"`
	Email            string      `json:"email"`
	OutstandingTurns int         `json:"outstanding_turns"`
	MaxTurns         int         `json:"max_turns"`
}

// getMeHandler godoc
// @Summary Perfil del actor autenticado
// @Description Devuelve el actor con su contador de turnos abiertos. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>`.
// @Tags actors
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 200 {object} meResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "actor not found"
// @Router /me [get]
func getMeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		a, err := svc.Actor(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, meResponse{
			ID:               a.ID,
			Role:             a.Role,
			Name:             a.Name,
			Email:            a.Email,
			OutstandingTurns: a.OutstandingTurns,
			MaxTurns:         MaxTurns,
		})
	}
}

// submitRequestHandler godoc
// @Summary Crear solicitud de medicamento
// @Description Crea una solicitud Pending para el paciente autenticado. Cada solicitud Pending o Approved ocupa uno de los 2 turnos del paciente.
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param payload body submitRequest true "Medicamento y tipo de entrega"
// @Success 201 {object} requestResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medicine not found"
// @Failure 409 {string} string "turn quota exceeded"
// @Router /requests [post]
func submitRequestHandler(svc *Service, medicines MedicineResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		created, err := svc.Submit(r.Context(), SubmitInput{
			PatientID:        claims.UserID,
			MedicineID:       req.MedicineID,
			DeliveryType:     DeliveryType(strings.TrimSpace(req.DeliveryType)),
			DocumentAttached: req.DocumentAttached,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRequestResponse(r.Context(), medicines, created))
	}
}

// listMyRequestsHandler godoc
// @Summary Mis solicitudes
// @Description Lista todas las solicitudes del paciente autenticado (cualquier estado), más recientes primero.
// @Tags requests
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} requestResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /me/requests [get]
func listMyRequestsHandler(svc *Service, medicines MedicineResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.PatientView(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRequestResponses(r.Context(), medicines, items))
	}
}

// queueHandler godoc
// @Summary Cola del farmacéutico
// @Description Solicitudes Pending y Approved de todos los pacientes, más antiguas primero.
// @Tags requests
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Success 200 {array} requestResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /requests/queue [get]
func queueHandler(svc *Service, medicines MedicineResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.PharmacistQueue(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRequestResponses(r.Context(), medicines, items))
	}
}

// decideRequestHandler godoc
// @Summary Decidir una solicitud
// @Description Aplica una transición: Pending→Approved, Pending→Rejected, Approved→Delivered o Approved→Rejected. Rejected y Delivered liberan el turno del paciente.
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param requestID path string true "ID de la solicitud"
// @Param payload body decideRequest true "Estado destino y mensaje para el paciente"
// @Success 200 {object} requestResponse
// @Failure 400 {string} string "invalid json / estado desconocido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "request not found"
// @Failure 409 {string} string "invalid status transition"
// @Router /requests/{requestID}/decision [post]
func decideRequestHandler(svc *Service, medicines MedicineResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req decideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Decide(r.Context(), DecideInput{
			RequestID:       chi.URLParam(r, "requestID"),
			PharmacistID:    claims.UserID,
			Status:          Status(strings.TrimSpace(req.Status)),
			ResponseMessage: req.ResponseMessage,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRequestResponse(r.Context(), medicines, updated))
	}
}

// StatusCode traduce errores del motor a HTTP.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrQuotaExceeded), errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := StatusCode(err)
	if code == http.StatusInternalServerError {
		http.Error(w, "internal error", code)
		return
	}
	http.Error(w, err.Error(), code)
}

func toRequestResponses(ctx context.Context, medicines MedicineResolver, items []Request) []requestResponse {
	out := make([]requestResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toRequestResponse(ctx, medicines, it))
	}
	return out
}

// El nombre del medicamento es best-effort: si se borró del catálogo queda vacío.
func toRequestResponse(ctx context.Context, medicines MedicineResolver, r Request) requestResponse {
	resp := requestResponse{
		ID:               r.ID,
		PatientID:        r.PatientID,
		MedicineID:       r.MedicineID,
		RequestedAt:      r.RequestedAt,
		Status:           r.Status,
		DeliveryType:     r.DeliveryType,
		DocumentAttached: r.DocumentAttached,
		ResponseMessage:  r.ResponseMessage,
		DecidedBy:        r.DecidedBy,
		DecidedAt:        r.DecidedAt,
		NextStatuses:     NextStatuses(r.Status),
	}
	if medicines != nil {
		if m, err := medicines.Resolve(ctx, r.MedicineID); err == nil {
			resp.MedicineName = m.Name
		}
	}
	return resp
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para no crear un paquete compartido solo por esto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
