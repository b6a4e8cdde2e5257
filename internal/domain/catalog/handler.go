package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pharmacy-fulfillment/internal/domain/actors"
	"pharmacy-fulfillment/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes: lectura para cualquier actor autenticado, escritura solo farmacéutico.
func RegisterRoutes(r chi.Router, svc *Service, roles middleware.RoleLookup) {
	r.Route("/medicines", func(mr chi.Router) {
		mr.Get("/", listMedicinesHandler(svc))
		mr.Get("/{medicineID}", getMedicineHandler(svc))

		mr.Group(func(wr chi.Router) {
			wr.Use(middleware.RequireRole(roles, string(actors.RolePharmacist)))
			wr.Post("/", createMedicineHandler(svc))
			wr.Patch("/{medicineID}/quantity", updateQuantityHandler(svc))
			wr.Delete("/{medicineID}", deleteMedicineHandler(svc))
		})
	})
}

type createMedicineRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Dose        string `json:"dose"`
	Unit        string `json:"unit"`
	ExpiryDate  string `json:"expiry_date"` // YYYY-MM-DD
	Lot         string `json:"lot"`
	Quantity    int    `json:"quantity_available"`
}

type updateQuantityRequest struct {
	// Uno de los dos: delta relativo (botones +/-) o cantidad absoluta.
	Delta    *int `json:"delta"`
	Quantity *int `json:"quantity"`
}

type medicineResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Dose              string `json:"dose"`
	Unit              string `json:"unit"`
	ExpiryDate        string `json:"expiry_date"`
	Lot               string `json:"lot"`
	QuantityAvailable int    `json:"quantity_available"`
}

// listMedicinesHandler godoc
// @Summary Listar / buscar medicamentos
// @Description Sin `q` devuelve el inventario completo ordenado por nombre. Con `q` filtra por nombre o ID.
// @Tags medicines
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param q query string false "Texto a buscar en nombre o ID"
// @Success 200 {array} medicineResponse
// @Failure 401 {string} string "unauthorized"
// @Router /medicines [get]
func listMedicinesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var (
			items []Medicine
			err   error
		)
		if q := strings.TrimSpace(r.URL.Query().Get("q")); q != "" {
			items, err = svc.Search(r.Context(), q)
		} else {
			items, err = svc.Inventory(r.Context())
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]medicineResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicineResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getMedicineHandler godoc
// @Summary Detalle de medicamento
// @Tags medicines
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param medicineID path string true "ID del medicamento"
// @Success 200 {object} medicineResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medicine not found"
// @Router /medicines/{medicineID} [get]
func getMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		m, err := svc.Resolve(r.Context(), chi.URLParam(r, "medicineID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toMedicineResponse(m))
	}
}

// createMedicineHandler godoc
// @Summary Agregar medicamento al inventario
// @Tags medicines
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param payload body createMedicineRequest true "Datos del medicamento; expiry_date en formato YYYY-MM-DD"
// @Success 201 {object} medicineResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /medicines [post]
func createMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		expiry, err := time.Parse("2006-01-02", strings.TrimSpace(req.ExpiryDate))
		if err != nil {
			http.Error(w, "expiry_date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		m, err := svc.Add(r.Context(), AddInput{
			Name:        req.Name,
			Description: req.Description,
			Dose:        req.Dose,
			Unit:        req.Unit,
			ExpiryDate:  expiry,
			Lot:         req.Lot,
			Quantity:    req.Quantity,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toMedicineResponse(m))
	}
}

// updateQuantityHandler godoc
// @Summary Ajustar stock
// @Description Envía `delta` para sumar/restar (nunca baja de 0) o `quantity` para fijar el valor.
// @Tags medicines
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param medicineID path string true "ID del medicamento"
// @Param payload body updateQuantityRequest true "delta o quantity"
// @Success 200 {object} medicineResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medicine not found"
// @Router /medicines/{medicineID}/quantity [patch]
func updateQuantityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateQuantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if (req.Delta == nil) == (req.Quantity == nil) {
			http.Error(w, "send exactly one of delta or quantity", http.StatusBadRequest)
			return
		}

		id := chi.URLParam(r, "medicineID")
		var (
			m   Medicine
			err error
		)
		if req.Delta != nil {
			m, err = svc.AdjustQuantity(r.Context(), id, *req.Delta)
		} else {
			m, err = svc.SetQuantity(r.Context(), id, *req.Quantity)
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toMedicineResponse(m))
	}
}

// deleteMedicineHandler godoc
// @Summary Eliminar medicamento
// @Description Las solicitudes existentes conservan el ID del medicamento.
// @Tags medicines
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token"
// @Param medicineID path string true "ID del medicamento"
// @Success 204
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medicine not found"
// @Router /medicines/{medicineID} [delete]
func deleteMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "medicineID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "medicine not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toMedicineResponse(m Medicine) medicineResponse {
	return medicineResponse{
		ID:                m.ID,
		Name:              m.Name,
		Description:       m.Description,
		Dose:              m.Dose,
		Unit:              m.Unit,
		ExpiryDate:        m.ExpiryDate.Format("2006-01-02"),
		Lot:               m.Lot,
		QuantityAvailable: m.QuantityAvailable,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
