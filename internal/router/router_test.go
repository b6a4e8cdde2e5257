package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pharmacy-fulfillment/internal/domain/actors"
	"pharmacy-fulfillment/internal/platform/config"
	"pharmacy-fulfillment/internal/router"

	"golang.org/x/crypto/bcrypt"
)

const (
	patientID    = "patient-123"
	pharmacistID = "pharmacist-456"
)

func init() {
	actors.PasswordCost = bcrypt.MinCost
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	h, err := router.NewRouter(router.Options{Config: config.Config{
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour, DevMode: true},
		Seed: config.SeedConfig{DemoData: true},
	}})
	if err != nil {
		t.Fatalf("NewRouter error: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

type requestBody struct {
	ID           string   `json:"id"`
	PatientID    string   `json:"patient_id"`
	MedicineName string   `json:"medicine_name"`
	Status       string   `json:"status"`
	DecidedBy    *string  `json:"decided_by"`
	NextStatuses []string `json:"next_statuses"`
}

func TestHTTP_EndToEnd_TurnQuotaLifecycle(t *testing.T) {
	ts := newServer(t)

	// 1) La paciente demo arranca con 2 turnos ocupados (req001 Pending + req002 Approved)
	if got := outstandingTurns(t, ts.URL, patientID); got != 2 {
		t.Fatalf("expected 2 seeded turns, got %d", got)
	}

	// 2) Tercera solicitud => 409
	{
		st, body := doReq(t, ts.URL, "POST", "/requests", patientID, map[string]any{
			"medicine_id":   "med002",
			"delivery_type": "pickup",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 quota exceeded, got %d body=%s", st, string(body))
		}
	}

	// 3) Roles: paciente no ve la cola, farmacéutico no crea solicitudes
	{
		st, _ := doReq(t, ts.URL, "GET", "/requests/queue", patientID, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 queue for patient, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "POST", "/requests", pharmacistID, map[string]any{
			"medicine_id":   "med002",
			"delivery_type": "pickup",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 submit for pharmacist, got %d", st)
		}
	}

	// 4) Cola: Pending + Approved, más antiguas primero
	{
		queue := listRequests(t, ts.URL, "/requests/queue", pharmacistID)
		if len(queue) != 2 || queue[0].ID != "req001" || queue[1].ID != "req002" {
			t.Fatalf("unexpected queue %#v", queue)
		}
		if queue[0].MedicineName != "Paracetamol" {
			t.Fatalf("expected medicine name enrichment, got %q", queue[0].MedicineName)
		}
	}

	// 5) Entregar req002 libera un turno
	{
		got := decide(t, ts.URL, "req002", "Delivered", "Entregado en mostrador", http.StatusOK)
		if got.Status != "Delivered" || got.DecidedBy == nil || *got.DecidedBy != pharmacistID {
			t.Fatalf("unexpected decided request %#v", got)
		}
		if n := outstandingTurns(t, ts.URL, patientID); n != 1 {
			t.Fatalf("expected 1 turn after delivery, got %d", n)
		}
	}

	// 6) Ahora sí puede solicitar
	var newID string
	{
		st, body := doReq(t, ts.URL, "POST", "/requests", patientID, map[string]any{
			"medicine_id":       "med002",
			"delivery_type":     "delivery",
			"document_attached": true,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 submit, got %d body=%s", st, string(body))
		}
		var created requestBody
		_ = json.Unmarshal(body, &created)
		if created.ID != "req004" || created.Status != "Pending" {
			t.Fatalf("unexpected created request %#v", created)
		}
		newID = created.ID
	}

	// 7) Aprobar dos veces => 409 en la segunda
	decide(t, ts.URL, "req001", "Approved", "Receta validada", http.StatusOK)
	decide(t, ts.URL, "req001", "Approved", "otra vez", http.StatusConflict)

	// 8) Estado desconocido => 400; solicitud inexistente => 404
	decide(t, ts.URL, newID, "Lost", "", http.StatusBadRequest)
	decide(t, ts.URL, "req999", "Approved", "", http.StatusNotFound)

	// 9) Rechazar la nueva libera el turno
	decide(t, ts.URL, newID, "Rejected", "Falta fórmula", http.StatusOK)
	if n := outstandingTurns(t, ts.URL, patientID); n != 1 {
		t.Fatalf("expected 1 turn (req001 Approved), got %d", n)
	}

	// 10) Vista de la paciente: todas, más recientes primero
	{
		mine := listRequests(t, ts.URL, "/me/requests", patientID)
		if len(mine) != 3 || mine[0].ID != newID || mine[0].Status != "Rejected" {
			t.Fatalf("unexpected patient view %#v", mine)
		}
		for _, r := range mine {
			if r.PatientID != patientID {
				t.Fatalf("patient view leaked %s", r.ID)
			}
		}
	}

	// 11) La cola ya no incluye la rechazada
	{
		queue := listRequests(t, ts.URL, "/requests/queue", pharmacistID)
		if len(queue) != 1 || queue[0].ID != "req001" {
			t.Fatalf("unexpected queue %#v", queue)
		}
		if len(queue[0].NextStatuses) != 2 {
			t.Fatalf("expected Approved to offer 2 next statuses, got %v", queue[0].NextStatuses)
		}
	}

	// 12) Revertir una aprobación: req001 Approved -> Rejected libera su turno
	{
		got := decide(t, ts.URL, "req001", "Rejected", "Receta vencida", http.StatusOK)
		if got.Status != "Rejected" || got.DecidedBy == nil || *got.DecidedBy != pharmacistID {
			t.Fatalf("unexpected rejected request %#v", got)
		}
		if n := outstandingTurns(t, ts.URL, patientID); n != 0 {
			t.Fatalf("expected 0 turns after rejecting approved request, got %d", n)
		}
		if queue := listRequests(t, ts.URL, "/requests/queue", pharmacistID); len(queue) != 0 {
			t.Fatalf("expected empty queue, got %#v", queue)
		}
	}

	// 13) Métricas expuestas
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), "pharmacy_requests_submitted_total") {
			t.Fatalf("expected metrics exposition, got %d", st)
		}
	}
}

func TestHTTP_RegisterLoginWithBearer(t *testing.T) {
	ts := newServer(t)

	// Registro de menor => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
			"email": "nino@demo.com", "password": "x", "name": "Niño", "document": "1",
			"date_of_birth": time.Now().AddDate(-10, 0, 0).Format("2006-01-02"), "contact": "300",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 underage, got %d", st)
		}
	}

	// Email repetido => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
			"email": "paciente@demo.com", "password": "x", "name": "Otra", "document": "2",
			"date_of_birth": "1980-01-01", "contact": "300",
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 email taken, got %d", st)
		}
	}

	st, body := doReq(t, ts.URL, "POST", "/auth/register", "", map[string]any{
		"email": "nueva@demo.com", "password": "secreto", "name": "Laura Gómez", "document": "44556677",
		"date_of_birth": "1990-02-02", "contact": "+57 300 0000000", "role": "patient",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 register, got %d body=%s", st, string(body))
	}

	// Credenciales malas => 401
	if st, _ := doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{"email": "nueva@demo.com", "password": "mal"}); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 bad login, got %d", st)
	}

	st, body = doReq(t, ts.URL, "POST", "/auth/login", "", map[string]any{"email": "nueva@demo.com", "password": "secreto"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}
	var login struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &login)
	if login.Token == "" {
		t.Fatalf("expected token in login response")
	}

	// Con Bearer (sin header de debug) puede pedir un medicamento
	req, _ := http.NewRequest("POST", ts.URL+"/requests", strings.NewReader(`{"medicine_id":"med005","delivery_type":"pickup"}`))
	req.Header.Set("Authorization", "Bearer "+login.Token)
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(res.Body)
		t.Fatalf("expected 201 with bearer, got %d body=%s", res.StatusCode, string(b))
	}
}

func TestHTTP_MedicinesCatalog(t *testing.T) {
	ts := newServer(t)

	if st, _ := doReq(t, ts.URL, "GET", "/medicines", "", nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/medicines?q=para", patientID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 search, got %d", st)
	}
	var found []struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &found)
	if len(found) != 1 || found[0].ID != "med001" {
		t.Fatalf("unexpected search result %s", string(body))
	}

	// Paciente no gestiona inventario
	if st, _ := doReq(t, ts.URL, "PATCH", "/medicines/med001/quantity", patientID, map[string]any{"delta": -1}); st != http.StatusForbidden {
		t.Fatalf("expected 403 patient stock change, got %d", st)
	}

	st, body = doReq(t, ts.URL, "POST", "/medicines", pharmacistID, map[string]any{
		"name": "Loratadina", "description": "Antihistamínico", "dose": "10", "unit": "mg",
		"expiry_date": "2027-01-31", "lot": "L-1111", "quantity_available": 60,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create medicine, got %d body=%s", st, string(body))
	}
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &created)
	if created.ID != "med006" {
		t.Fatalf("expected med006, got %s", created.ID)
	}

	st, body = doReq(t, ts.URL, "PATCH", "/medicines/med006/quantity", pharmacistID, map[string]any{"delta": -100})
	if st != http.StatusOK || !strings.Contains(string(body), `"quantity_available":0`) {
		t.Fatalf("expected stock floored at 0, got %d body=%s", st, string(body))
	}

	if st, _ := doReq(t, ts.URL, "DELETE", "/medicines/med006", pharmacistID, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete, got %d", st)
	}
	if st, _ := doReq(t, ts.URL, "GET", "/medicines/med006", pharmacistID, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}

	// Solicitar un medicamento inexistente => 404
	if st, _ := doReq(t, ts.URL, "POST", "/requests", "patient-simulado-01", map[string]any{
		"medicine_id": "med006", "delivery_type": "pickup",
	}); st != http.StatusNotFound {
		t.Fatalf("expected 404 unknown medicine, got %d", st)
	}
}

func outstandingTurns(t *testing.T, baseURL, userID string) int {
	t.Helper()
	st, body := doReq(t, baseURL, "GET", "/me", userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 /me, got %d body=%s", st, string(body))
	}
	var me struct {
		OutstandingTurns int `json:"outstanding_turns"`
	}
	if err := json.Unmarshal(body, &me); err != nil {
		t.Fatalf("decode /me: %v", err)
	}
	return me.OutstandingTurns
}

func listRequests(t *testing.T, baseURL, path, userID string) []requestBody {
	t.Helper()
	st, body := doReq(t, baseURL, "GET", path, userID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 %s, got %d body=%s", path, st, string(body))
	}
	var out []requestBody
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return out
}

func decide(t *testing.T, baseURL, requestID, status, message string, want int) requestBody {
	t.Helper()
	st, body := doReq(t, baseURL, "POST", "/requests/"+requestID+"/decision", pharmacistID, map[string]any{
		"status":           status,
		"response_message": message,
	})
	if st != want {
		t.Fatalf("decide %s -> %s: expected %d, got %d body=%s", requestID, status, want, st, string(body))
	}
	var out requestBody
	if st == http.StatusOK {
		_ = json.Unmarshal(body, &out)
	}
	return out
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
