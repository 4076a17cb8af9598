package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"coursehub/internal/chat/service"
	"coursehub/internal/common"
)

// ChatHandler wires HTTP requests to the chat service.
type ChatHandler struct {
	svc service.ChatService
}

func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// RegisterRoutes mounts the chat endpoints on r, the authenticated /api
// subrouter.
func (h *ChatHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/courses/{courseId}/messages", h.SendMessage).Methods(http.MethodPost)
	r.HandleFunc("/courses/{courseId}/messages/async", h.SendMessageAsync).Methods(http.MethodPost)
	r.HandleFunc("/courses/{courseId}/messages", h.GetMessages).Methods(http.MethodGet)
	r.HandleFunc("/courses/{courseId}/messages/list", h.ListMessages).Methods(http.MethodGet)
	r.HandleFunc("/courses/{courseId}/messages/{messageId}", h.UpdateMessage).Methods(http.MethodPut)
	r.HandleFunc("/courses/{courseId}/messages/{messageId}", h.DeleteMessage).Methods(http.MethodDelete)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.PrincipalFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("authorization required"))
		return
	}
	courseID := mux.Vars(r)["courseId"]

	var req service.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.BadRequest("Invalid request body"))
		return
	}

	resp, err := h.svc.SendMessage(r.Context(), courseID, claims.UserID, &req)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, "Message sent successfully", resp)
}

func (h *ChatHandler) SendMessageAsync(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.PrincipalFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("authorization required"))
		return
	}
	courseID := mux.Vars(r)["courseId"]

	var req service.AsyncSendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.BadRequest("Invalid request body"))
		return
	}

	ack, err := h.svc.SendMessageAsync(r.Context(), courseID, claims.UserID, &req)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusAccepted, "Message is being processed", ack)
}

func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.PrincipalFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("authorization required"))
		return
	}
	courseID := mux.Vars(r)["courseId"]

	query := &service.HistoryQuery{
		Page:            queryInt(r, "page", 0),
		Size:            queryInt(r, "size", 20),
		BeforeMessageID: r.URL.Query().Get("beforeMessageId"),
		AfterMessageID:  r.URL.Query().Get("afterMessageId"),
	}

	resp, err := h.svc.GetMessages(r.Context(), courseID, claims.UserID, query)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, "Messages retrieved successfully", resp)
}

func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.PrincipalFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("authorization required"))
		return
	}
	courseID := mux.Vars(r)["courseId"]

	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 20)
	typeFilter := r.URL.Query().Get("type")

	resp, err := h.svc.ListMessages(r.Context(), courseID, claims.UserID, typeFilter, page, size)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, "Messages retrieved successfully", resp)
}

func (h *ChatHandler) UpdateMessage(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.PrincipalFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("authorization required"))
		return
	}
	vars := mux.Vars(r)

	var req service.UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, common.BadRequest("Invalid request body"))
		return
	}

	resp, err := h.svc.UpdateMessage(r.Context(), vars["courseId"], vars["messageId"], claims.UserID, &req)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, "Message updated successfully", resp)
}

func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.PrincipalFromContext(r.Context())
	if !ok {
		common.WriteError(w, common.Unauthorized("authorization required"))
		return
	}
	vars := mux.Vars(r)

	if err := h.svc.DeleteMessage(r.Context(), vars["courseId"], vars["messageId"], claims.UserID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteNoContent(w)
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return -1 // out of bounds, rejected by the service
	}
	return value
}
