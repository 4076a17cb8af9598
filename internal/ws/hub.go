package ws

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
)

// Hub maintains the set of active clients and fans events out to
// course-scoped rooms and user-scoped personal channels. It provides no
// delivery guarantee and no global ordering across courses.
type Hub struct {
	// courses maps courseID to the clients subscribed to that course
	courses map[string]map[*Client]bool

	// users maps userID to that user's connections (personal channel)
	users map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan *envelope

	mu sync.RWMutex
}

type envelope struct {
	courseID string // set for course-scoped events
	userID   string // set for user-scoped events
	payload  []byte
}

func NewHub() *Hub {
	return &Hub{
		courses:    make(map[string]map[*Client]bool),
		users:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *envelope, 256),
	}
}

// Run starts the hub's event loop. Call in a goroutine: go hub.Run()
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case env := <-h.broadcast:
			h.deliver(env)
		}
	}
}

// PublishToCourse sends the event to every client subscribed to the course.
func (h *Hub) PublishToCourse(courseID string, event interface{}) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to encode course event: %v", err)
		return
	}
	select {
	case h.broadcast <- &envelope{courseID: courseID, payload: payload}:
	default:
		log.Printf("broadcast channel full, dropping event for course %s", courseID)
	}
}

// PublishToUser sends the event to the user's personal channel. An offline
// user is not an error; only encoding or queue failures are reported.
func (h *Hub) PublishToUser(userID string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding user event: %w", err)
	}
	select {
	case h.broadcast <- &envelope{userID: userID, payload: payload}:
		return nil
	default:
		return fmt.Errorf("broadcast channel full for user %s", userID)
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.CourseID != "" {
		if h.courses[client.CourseID] == nil {
			h.courses[client.CourseID] = make(map[*Client]bool)
		}
		h.courses[client.CourseID][client] = true
	}
	if client.UserID != "" {
		if h.users[client.UserID] == nil {
			h.users[client.UserID] = make(map[*Client]bool)
		}
		h.users[client.UserID][client] = true
	}
	log.Printf("client connected: user=%s course=%s", client.UserID, client.CourseID)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	removed := false
	if clients, ok := h.courses[client.CourseID]; ok && clients[client] {
		delete(clients, client)
		removed = true
		if len(clients) == 0 {
			delete(h.courses, client.CourseID)
		}
	}
	if clients, ok := h.users[client.UserID]; ok && clients[client] {
		delete(clients, client)
		removed = true
		if len(clients) == 0 {
			delete(h.users, client.UserID)
		}
	}
	if removed {
		close(client.send)
		log.Printf("client disconnected: user=%s course=%s", client.UserID, client.CourseID)
	}
}

func (h *Hub) deliver(env *envelope) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var targets map[*Client]bool
	if env.courseID != "" {
		targets = h.courses[env.courseID]
	} else {
		targets = h.users[env.userID]
	}

	for client := range targets {
		select {
		case client.send <- env.payload:
		default:
			// Slow consumer; drop rather than block the hub.
			log.Printf("send buffer full for user %s, dropping event", client.UserID)
		}
	}
}
