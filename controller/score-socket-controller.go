package controller

import (
	"context"
	"errors"
	"hackaplan/app_error"
	"hackaplan/metrics"
	"hackaplan/repository"
	"hackaplan/service"
	"hackaplan/utils"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	socketWriteTimeout = 5 * time.Second
	// listenerBuffer is how many messages a listener may fall behind before it is dropped.
	listenerBuffer = 16
)

type ScoreMessage struct {
	Type string `json:"type"`
	// Projects is set on the snapshot sent right after connecting.
	Projects []*ProjectResponse `json:"projects,omitempty"`
	// Score is set on live updates.
	Score *service.ScoreEvent `json:"score,omitempty"`
}

type socketConn interface {
	SetWriteDeadline(t time.Time) error
	WriteJSON(v interface{}) error
	Close() error
}

// scoreListener owns the write side of one websocket. Only its writer goroutine writes to conn.
type scoreListener struct {
	hackathonId int
	conn        socketConn
	send        chan ScoreMessage
}

func newScoreListener(hackathonId int, conn socketConn) *scoreListener {
	return &scoreListener{
		hackathonId: hackathonId,
		conn:        conn,
		send:        make(chan ScoreMessage, listenerBuffer),
	}
}

// ScoreHub fans score events out to the websocket clients watching a hackathon.
type ScoreHub struct {
	// mu guards listeners and the closing of their send channels.
	mu        sync.Mutex
	listeners map[int]map[*scoreListener]bool
}

func NewScoreHub() *ScoreHub {
	return &ScoreHub{
		listeners: make(map[int]map[*scoreListener]bool),
	}
}

func (h *ScoreHub) Name() string {
	return "websocket"
}

// PublishScore never waits on a client. A listener whose buffer is full is dropped.
func (h *ScoreHub) PublishScore(_ context.Context, event service.ScoreEvent) error {
	message := ScoreMessage{Type: "score", Score: &event}
	h.mu.Lock()
	defer h.mu.Unlock()
	for listener := range h.listeners[event.HackathonID] {
		select {
		case listener.send <- message:
		default:
			slog.Debug("dropping slow score listener", "hackathon_id", event.HackathonID)
			h.remove(listener)
			listener.conn.Close()
		}
	}
	return nil
}

// subscribe queues the snapshot ahead of any update and starts the listener's writer.
func (h *ScoreHub) subscribe(hackathonId int, conn socketConn, snapshot ScoreMessage) *scoreListener {
	listener := newScoreListener(hackathonId, conn)
	listener.send <- snapshot
	h.register(listener)
	go h.writeLoop(listener)
	return listener
}

func (h *ScoreHub) register(listener *scoreListener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.listeners[listener.hackathonId]; !ok {
		h.listeners[listener.hackathonId] = make(map[*scoreListener]bool)
	}
	h.listeners[listener.hackathonId][listener] = true
	metrics.ScoreSocketGauge.Inc()
}

func (h *ScoreHub) writeLoop(listener *scoreListener) {
	for message := range listener.send {
		if err := writeMessage(listener.conn, message); err != nil {
			slog.Debug("score listener write failed", "hackathon_id", listener.hackathonId, "error", err)
			listener.conn.Close()
			h.unsubscribe(listener)
			return
		}
	}
}

func (h *ScoreHub) unsubscribe(listener *scoreListener) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(listener)
}

// remove must be called with mu held. It is a no-op for listeners already removed.
func (h *ScoreHub) remove(listener *scoreListener) {
	if !h.listeners[listener.hackathonId][listener] {
		return
	}
	delete(h.listeners[listener.hackathonId], listener)
	if len(h.listeners[listener.hackathonId]) == 0 {
		delete(h.listeners, listener.hackathonId)
	}
	close(listener.send)
	metrics.ScoreSocketGauge.Dec()
}

func (h *ScoreHub) ListenerCount(hackathonId int) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners[hackathonId])
}

func writeMessage(conn socketConn, message ScoreMessage) error {
	if err := conn.SetWriteDeadline(time.Now().Add(socketWriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(message)
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// the live board is public, like every other read route
		return true
	},
}

type ScoreSocketController struct {
	hub            *ScoreHub
	hackathonStore repository.HackathonRepository
	projectStore   repository.ProjectRepository
}

func setupScoreSocketController(store *repository.Store, hub *ScoreHub) []RouteInfo {
	e := &ScoreSocketController{
		hub:            hub,
		hackathonStore: store.Hackathons,
		projectStore:   store.Projects,
	}
	return []RouteInfo{
		{Method: "GET", Path: "/jury/hackathons/:hackathon_id/scores/ws", HandlerFunc: e.webSocketHandler},
	}
}

// @id ScoreWebSocket
// @Description Websocket for live jury scores of a hackathon. The first message is a snapshot of all projects ranked by score, followed by one message per assigned score.
// @Tags jury
// @Param hackathon_id path int true "Hackathon ID"
// @Success 200 {object} ScoreMessage
// @Router /jury/hackathons/{hackathon_id}/scores/ws [get]
func (e *ScoreSocketController) webSocketHandler(c *gin.Context) {
	hackathonId, ok := intParam(c, "hackathon_id")
	if !ok {
		return
	}
	if _, err := e.hackathonStore.GetByID(c, hackathonId); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			app_error.Message(c, 404, "Hackathon not found.")
		} else {
			app_error.WithHTTPStatus(c, err, 500)
		}
		return
	}
	projects, err := e.projectStore.Ranked(c, hackathonId, 0)
	if err != nil {
		app_error.WithHTTPStatus(c, err, 500)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	snapshot := ScoreMessage{Type: "snapshot", Projects: utils.Map(projects, toProjectResponse)}
	listener := e.hub.subscribe(hackathonId, conn, snapshot)
	defer e.hub.unsubscribe(listener)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
