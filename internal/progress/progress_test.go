package progress

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/crossgen/fillengine/pkg/csp"
)

func newTestServer(hub *Hub) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runID := r.URL.Query().Get("run")
		ServeWs(hub, w, r, runID)
	}))
}

func dial(t *testing.T, server *httptest.Server, runID string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?run=" + url.QueryEscape(runID)
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("failed to dial websocket: %v", err)
	}
	return conn
}

func TestBroadcaster_ReportsProgress(t *testing.T) {
	hub := NewHub()
	server := newTestServer(hub)
	defer server.Close()

	b := hub.Start("run-1")

	conn := dial(t, server, "run-1")
	defer conn.Close()

	time.Sleep(50 * time.Millisecond)

	b.Report(csp.Snapshot{Backtracks: 3, OracleCalls: 1, ArcRevisions: 10})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read message: %v", err)
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("failed to unmarshal envelope: %v", err)
	}
	if msg.Type != MsgProgress {
		t.Errorf("Type = %q, want %q", msg.Type, MsgProgress)
	}

	var counters CounterPayload
	if err := json.Unmarshal(msg.Payload, &counters); err != nil {
		t.Fatalf("failed to unmarshal payload: %v", err)
	}
	if counters.Backtracks != 3 || counters.OracleCalls != 1 || counters.ArcRevisions != 10 {
		t.Errorf("counters = %+v, want {3 1 10}", counters)
	}
}

func TestBroadcaster_Finish(t *testing.T) {
	hub := NewHub()
	server := newTestServer(hub)
	defer server.Close()

	b := hub.Start("run-2")

	conn := dial(t, server, "run-2")
	defer conn.Close()

	time.Sleep(50 * time.Millisecond)

	b.Finish("solved", "")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read message: %v", err)
	}

	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("failed to unmarshal envelope: %v", err)
	}
	if msg.Type != MsgDone {
		t.Errorf("Type = %q, want %q", msg.Type, MsgDone)
	}

	var done DonePayload
	if err := json.Unmarshal(msg.Payload, &done); err != nil {
		t.Fatalf("failed to unmarshal payload: %v", err)
	}
	if done.Status != "solved" {
		t.Errorf("Status = %q, want solved", done.Status)
	}

	hub.mu.Lock()
	_, stillRunning := hub.runs["run-2"]
	hub.mu.Unlock()
	if stillRunning {
		t.Error("expected run to be removed from hub after Finish")
	}
}

func TestServeWs_UnknownRun(t *testing.T) {
	hub := NewHub()
	server := newTestServer(hub)
	defer server.Close()

	conn := dial(t, server, "does-not-exist")
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	if err == nil {
		t.Error("expected connection to close for an unknown run")
	}
}
