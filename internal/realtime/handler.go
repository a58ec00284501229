package realtime

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"studiobook/internal/domain"
	jwtsvc "studiobook/internal/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// Any origin is allowed for dev; production deploys sit behind CORS.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SnapshotMessage is the frame pushed to subscribers on every change.
type SnapshotMessage struct {
	Type     string           `json:"type"`
	Bookings []domain.Booking `json:"bookings"`
}

type bookingLister interface {
	GetAllBookings(ctx context.Context) ([]domain.Booking, error)
}

// Handler upgrades authenticated clients and replays the current booking
// list on connect.
type Handler struct {
	hub      *Hub
	jwt      *jwtsvc.Service
	bookings bookingLister
	log      zerolog.Logger
}

func NewHandler(hub *Hub, jwt *jwtsvc.Service, bookings bookingLister, log zerolog.Logger) *Handler {
	return &Handler{hub: hub, jwt: jwt, bookings: bookings, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/bookings", h.HandleWebSocket)
}

// HandleWebSocket serves GET /ws/bookings?token=JWT. Auth is via query
// parameter since browsers cannot set headers on websocket upgrades.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	connID := uuid.NewString()
	h.hub.Register(connID, conn)
	h.log.Info().Str("user_id", claims.UserID).Str("conn_id", connID).Msg("realtime subscriber connected")

	defer func() {
		h.hub.Unregister(connID)
		h.log.Info().Str("conn_id", connID).Msg("realtime subscriber disconnected")
	}()

	// Initial full snapshot so the client does not wait for the next change.
	if list, err := h.bookings.GetAllBookings(c.Request.Context()); err == nil {
		_ = conn.WriteJSON(SnapshotMessage{Type: "bookings", Bookings: list})
	}

	// Inbound frames are ignored; the read loop only detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
