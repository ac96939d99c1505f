// Package progress streams a single generation run's solve counters —
// backtracks, oracle calls, arc revisions — to WebSocket subscribers. It
// never carries partial assignments or slot contents, only the running
// counts the CSP engine already tracks for its own failure diagnostics.
package progress

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/crossgen/fillengine/pkg/csp"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// MessageType discriminates the envelope sent to a progress subscriber.
type MessageType string

const (
	MsgProgress MessageType = "progress"
	MsgDone     MessageType = "done"
)

// Message is the JSON envelope every progress client receives.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// CounterPayload mirrors csp.Snapshot for MsgProgress messages.
type CounterPayload struct {
	Backtracks   int `json:"backtracks"`
	OracleCalls  int `json:"oracleCalls"`
	ArcRevisions int `json:"arcRevisions"`
}

// DonePayload reports the terminal outcome of a run for MsgDone messages.
type DonePayload struct {
	Status string `json:"status"` // "solved" or "failed"
	Reason string `json:"reason,omitempty"`
}

// Hub fans out progress messages for any number of concurrent generation
// runs, each identified by its puzzle ID.
type Hub struct {
	mu   sync.Mutex
	runs map[string]*run
}

type run struct {
	mu      sync.Mutex
	clients map[*client]bool
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{runs: make(map[string]*run)}
}

// Broadcaster publishes progress for one run ID. A generation call obtains
// one via Hub.Start and reports counters to it as the solve proceeds.
type Broadcaster struct {
	hub   *Hub
	runID string
}

// Start registers runID so WebSocket subscribers can attach to it, and
// returns a Broadcaster the generator reports progress through. Callers
// must call Finish when the run completes, win or lose.
func (h *Hub) Start(runID string) *Broadcaster {
	h.mu.Lock()
	h.runs[runID] = &run{clients: make(map[*client]bool)}
	h.mu.Unlock()
	return &Broadcaster{hub: h, runID: runID}
}

// Report forwards a CSP engine snapshot to every subscriber of this run.
func (b *Broadcaster) Report(s csp.Snapshot) {
	payload, _ := json.Marshal(CounterPayload{
		Backtracks:   s.Backtracks,
		OracleCalls:  s.OracleCalls,
		ArcRevisions: s.ArcRevisions,
	})
	b.hub.broadcast(b.runID, Message{Type: MsgProgress, Payload: payload})
}

// Finish announces the run's terminal outcome and releases its subscriber
// set. status is "solved" or "failed"; reason is the failure reason when
// status is "failed".
func (b *Broadcaster) Finish(status, reason string) {
	payload, _ := json.Marshal(DonePayload{Status: status, Reason: reason})
	b.hub.broadcast(b.runID, Message{Type: MsgDone, Payload: payload})

	b.hub.mu.Lock()
	delete(b.hub.runs, b.runID)
	b.hub.mu.Unlock()
}

func (h *Hub) broadcast(runID string, msg Message) {
	h.mu.Lock()
	r, ok := h.runs[runID]
	h.mu.Unlock()
	if !ok {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("progress: marshal message for run %s: %v", runID, err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for c := range r.clients {
		select {
		case c.send <- data:
		default:
			close(c.send)
			delete(r.clients, c)
		}
	}
}

func (h *Hub) attach(runID string, c *client) bool {
	h.mu.Lock()
	r, ok := h.runs[runID]
	h.mu.Unlock()
	if !ok {
		return false
	}
	r.mu.Lock()
	r.clients[c] = true
	r.mu.Unlock()
	return true
}

func (h *Hub) detach(runID string, c *client) {
	h.mu.Lock()
	r, ok := h.runs[runID]
	h.mu.Unlock()
	if !ok {
		return
	}
	r.mu.Lock()
	delete(r.clients, c)
	r.mu.Unlock()
}

type client struct {
	hub   *Hub
	runID string
	conn  *websocket.Conn
	send  chan []byte
}

// ServeWs upgrades r into a WebSocket connection subscribed to runID's
// progress stream. It returns once the connection closes. If runID is not
// a currently running generation, it upgrades and immediately closes with
// a policy violation.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request, runID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{hub: hub, runID: runID, conn: conn, send: make(chan []byte, 16)}

	if !hub.attach(runID, c) {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "unknown run"))
		conn.Close()
		return nil
	}

	go c.writePump()
	c.readPump()
	return nil
}

// readPump only watches for the client disconnecting; progress streams are
// one-directional, server to subscriber.
func (c *client) readPump() {
	defer func() {
		c.hub.detach(c.runID, c)
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
