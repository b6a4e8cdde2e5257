package socket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"pharmacy-fulfillment/internal/domain/requests"
	"pharmacy-fulfillment/internal/platform/logger"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// Event es lo que recibe el cliente por cada solicitud creada o decidida.
type Event struct {
	Type    string       `json:"type"`
	Request EventRequest `json:"request"`
}

type EventRequest struct {
	ID              string          `json:"id"`
	PatientID       string          `json:"patient_id"`
	MedicineID      string          `json:"medicine_id"`
	Status          requests.Status `json:"status"`
	ResponseMessage string          `json:"response_message"`
	RequestedAt     time.Time       `json:"requested_at"`
}

// client envuelve la conexión: gorilla admite un solo escritor concurrente.
type client struct {
	conn *websocket.Conn
	role string
	mu   sync.Mutex
}

func (c *client) write(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// Hub mantiene las conexiones abiertas por actor. Un actor puede tener varias pestañas.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{}
	log     logger.Logger
}

func NewHub(l logger.Logger) *Hub {
	if l == nil {
		l = logger.Nop()
	}
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		log:     l.With(logger.Fields{"component": "socket"}),
	}
}

func (h *Hub) register(actorID, role string, conn *websocket.Conn) *client {
	c := &client{conn: conn, role: role}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[actorID] == nil {
		h.clients[actorID] = make(map[*client]struct{})
	}
	h.clients[actorID][c] = struct{}{}
	h.log.Debug("client registered", logger.Fields{"actor_id": actorID, "role": role})
	return c
}

func (h *Hub) unregister(actorID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[actorID]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, actorID)
	}
	h.log.Debug("client unregistered", logger.Fields{"actor_id": actorID})
}

// Connected cuenta conexiones abiertas de un actor.
func (h *Hub) Connected(actorID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[actorID])
}

// Send escribe msg en todas las conexiones del actor. Sin conexiones no es error.
func (h *Hub) Send(actorID string, msg []byte) error {
	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients[actorID]))
	for c := range h.clients[actorID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	var firstErr error
	for _, c := range targets {
		if err := c.write(msg); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// broadcastRole escribe msg a todos los actores conectados con ese rol.
func (h *Hub) broadcastRole(role string, msg []byte) {
	h.mu.RLock()
	targets := []*client{}
	for _, set := range h.clients {
		for c := range set {
			if c.role == role {
				targets = append(targets, c)
			}
		}
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(msg); err != nil {
			h.log.Warn("broadcast failed", logger.Fields{"role": role, "err": err.Error()})
		}
	}
}

// RequestChanged implementa requests.Notifier: avisa al paciente y refresca la cola de los farmacéuticos.
func (h *Hub) RequestChanged(_ context.Context, r requests.Request) {
	evt := Event{
		Type: "request.updated",
		Request: EventRequest{
			ID:              r.ID,
			PatientID:       r.PatientID,
			MedicineID:      r.MedicineID,
			Status:          r.Status,
			ResponseMessage: r.ResponseMessage,
			RequestedAt:     r.RequestedAt,
		},
	}
	msg, err := json.Marshal(evt)
	if err != nil {
		h.log.Error("encode event", logger.Fields{"request_id": r.ID, "err": err.Error()})
		return
	}

	if err := h.Send(r.PatientID, msg); err != nil {
		h.log.Warn("notify patient failed", logger.Fields{"patient_id": r.PatientID, "err": err.Error()})
	}
	h.broadcastRole(pharmacistRole, msg)
}
