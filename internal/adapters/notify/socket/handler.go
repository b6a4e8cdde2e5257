package socket

import (
	"net/http"
	"strings"
	"time"

	"pharmacy-fulfillment/internal/domain/actors"
	"pharmacy-fulfillment/internal/middleware"
	"pharmacy-fulfillment/internal/platform/logger"
	"pharmacy-fulfillment/internal/ports/auth"

	"github.com/gorilla/websocket"
)

const pongWait = 30 * time.Second

var pharmacistRole = string(actors.RolePharmacist)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWs abre el canal de notificaciones del actor.
// El navegador no puede mandar headers en el upgrade, así que además de las claims
// del middleware se acepta ?token=<jwt>.
func (h *Hub) ServeWs(verifier auth.AuthVerifier, roles middleware.RoleLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if (!ok || claims.UserID == "") && verifier != nil {
			if token := strings.TrimSpace(r.URL.Query().Get("token")); token != "" {
				if c, err := verifier.Verify(r.Context(), token); err == nil {
					claims, ok = c, true
				}
			}
		}
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		role, err := roles.RoleOf(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.log.Warn("upgrade failed", logger.Fields{"actor_id": claims.UserID, "err": err.Error()})
			return
		}

		c := h.register(claims.UserID, role, conn)
		defer func() {
			h.unregister(claims.UserID, c)
			_ = conn.Close()
		}()

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPingHandler(func(appData string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return conn.WriteControl(websocket.PongMessage, []byte(appData), time.Now().Add(writeWait))
		})

		// Solo leemos para detectar cierre y pings.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					h.log.Warn("unexpected close", logger.Fields{"actor_id": claims.UserID, "err": err.Error()})
				}
				return
			}
		}
	}
}
