package ws

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"coursehub/internal/chat/service"
	"coursehub/internal/common"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Origin checks are delegated to the deployment proxy.
		return true
	},
}

// Handler upgrades authenticated subscribers onto the course channel.
type Handler struct {
	hub *Hub
	svc service.ChatService
}

func NewHandler(hub *Hub, svc service.ChatService) *Handler {
	return &Handler{hub: hub, svc: svc}
}

// Subscribe handles GET /ws/courses/{courseId}. The access policy for
// reading a course's messages applies to its event channel too.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.PrincipalFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("authorization required"))
		return
	}
	courseID := mux.Vars(r)["courseId"]

	if err := h.svc.AuthorizeCourseAccess(r.Context(), courseID, claims.UserID); err != nil {
		common.WriteError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the response.
		return
	}

	client := NewClient(h.hub, conn, courseID, claims.UserID)
	h.hub.register <- client

	go client.WritePump()
	go client.ReadPump()
}
