package actors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pharmacy-fulfillment/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta registro y login. Si issuer es nil o no tiene secreto
// (auth.ErrNotConfigured) el login responde igual pero sin token.
func RegisterRoutes(r chi.Router, svc *Service, issuer auth.TokenIssuer) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc))
		ar.Post("/login", loginHandler(svc, issuer))
	})
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Document    string `json:"document"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	Contact     string `json:"contact"`
	Role        string `json:"role"` // patient | pharmacist
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type actorResponse struct {
	ID               string    `json:"id"`
	Role             Role      `json:"role"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Document         string    `json:"document"`
	DateOfBirth      string    `json:"date_of_birth"`
	Contact          string    `json:"contact"`
	OutstandingTurns int       `json:"outstanding_turns"`
	CreatedAt        time.Time `json:"created_at"`
}

type loginResponse struct {
	Actor     actorResponse `json:"actor"`
	Token     string        `json:"token,omitempty"`
	ExpiresAt *time.Time    `json:"expires_at,omitempty"`
}

// registerHandler godoc
// @Summary Registrar actor
// @Description Crea un paciente o farmacéutico. Los pacientes deben ser mayores de 18 años.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body registerRequest true "Datos del actor; date_of_birth en formato YYYY-MM-DD"
// @Success 201 {object} actorResponse
// @Failure 400 {string} string "invalid json / datos inválidos / menor de edad"
// @Failure 409 {string} string "email already registered"
// @Router /auth/register [post]
func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		dob, err := time.Parse("2006-01-02", strings.TrimSpace(req.DateOfBirth))
		if err != nil {
			http.Error(w, "date_of_birth must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		role := Role(strings.ToLower(strings.TrimSpace(req.Role)))
		if role == "" {
			role = RolePatient
		}

		a, err := svc.Register(r.Context(), RegisterInput{
			Email:       req.Email,
			Password:    req.Password,
			Name:        req.Name,
			Document:    req.Document,
			DateOfBirth: dob,
			Contact:     req.Contact,
			Role:        role,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrEmailTaken):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnderage):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toActorResponse(a))
	}
}

// loginHandler godoc
// @Summary Login
// @Description Valida email y contraseña. Si el servidor tiene JWT configurado devuelve un Bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {string} string "invalid json"
// @Failure 401 {string} string "invalid credentials"
// @Router /auth/login [post]
func loginHandler(svc *Service, issuer auth.TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		resp := loginResponse{Actor: toActorResponse(a)}
		if issuer != nil {
			tok, err := issuer.Issue(r.Context(), auth.Claims{UserID: a.ID, Email: a.Email, Role: string(a.Role)})
			switch {
			case err == nil:
				resp.Token = tok.Value
				resp.ExpiresAt = &tok.ExpiresAt
			case errors.Is(err, auth.ErrNotConfigured):
				// Sin JWT: la identidad queda en X-Debug-User-ID (modo dev).
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func toActorResponse(a Actor) actorResponse {
	return actorResponse{
		ID:               a.ID,
		Role:             a.Role,
		Email:            a.Email,
		Name:             a.Name,
		Document:         a.Document,
		DateOfBirth:      a.DateOfBirth.Format("2006-01-02"),
		Contact:          a.Contact,
		OutstandingTurns: a.OutstandingTurns,
		CreatedAt:        a.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
