package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/yigit/studentforce/internal/app/models"
	"github.com/yigit/studentforce/internal/app/repositories"
	"github.com/yigit/studentforce/internal/app/store"
)

func startFeed(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zerolog.Nop())
	go hub.Run(ctx)

	router := gin.New()
	router.GET("/ws", NewHandler(hub, zerolog.Nop()).HandleConnection)
	srv := httptest.NewServer(router)

	t.Cleanup(func() {
		cancel()
		srv.Close()
	})
	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func dial(t *testing.T, hub *Hub, url string, want int) *gorilla.Conn {
	t.Helper()
	conn, _, err := gorilla.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() < want {
		if time.Now().After(deadline) {
			t.Fatalf("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if ev := readEvent(t, conn); ev.Type != "welcome" {
		t.Fatalf("expected welcome first, got %+v", ev)
	}
	return conn
}

func readEvent(t *testing.T, conn *gorilla.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("decode %s: %v", data, err)
	}
	return ev
}

func TestStoreChangesReachClients(t *testing.T) {
	hub, url := startFeed(t)
	conn := dial(t, hub, url, 1)

	repo := repositories.NewSnapshotRepository(repositories.NewMemoryBackend(), zerolog.Nop())
	s, err := store.Open(context.Background(), repo)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	detach := hub.Attach(s)
	defer detach()

	if _, err := s.DeleteProfessor(context.Background(), "prof-001"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	ev := readEvent(t, conn)
	if ev.Type != "change" || ev.Entity != models.EntityProfessor || ev.Action != "deleted" || ev.ID != "prof-001" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if len(ev.Cascaded[models.EntityMark]) != 3 || len(ev.Cascaded[models.EntityAssignment]) != 2 {
		t.Fatalf("unexpected cascade %+v", ev.Cascaded)
	}
}

func TestEntityFilter(t *testing.T) {
	hub, url := startFeed(t)
	conn := dial(t, hub, url+"?entities=mark", 1)

	hub.Publish(&Event{Type: "change", Entity: models.EntityStudent, Action: "updated", ID: "st-001"})
	hub.Publish(&Event{Type: "change", Entity: models.EntityMark, Action: "created", ID: "mrk-100"})
	hub.Publish(&Event{Type: "change", Entity: models.EntitySnapshot, Action: "reset"})

	if ev := readEvent(t, conn); ev.ID != "mrk-100" {
		t.Fatalf("expected only the mark event first, got %+v", ev)
	}
	if ev := readEvent(t, conn); ev.Entity != models.EntitySnapshot {
		t.Fatalf("snapshot events must always pass, got %+v", ev)
	}
}

func TestSubscribeMessageChangesFilter(t *testing.T) {
	hub, url := startFeed(t)
	conn := dial(t, hub, url, 1)

	if err := conn.WriteJSON(ClientMessage{Type: "subscribe", Entities: []string{"course"}}); err != nil {
		t.Fatalf("write: %v", err)
	}

	// the subscription is applied asynchronously; publish until a course event
	// arrives and check no student event slipped through after it
	deadline := time.Now().Add(2 * time.Second)
	for {
		hub.Publish(&Event{Type: "change", Entity: models.EntityStudent, ID: "st-001"})
		hub.Publish(&Event{Type: "change", Entity: models.EntityCourse, ID: "cs-101"})
		ev := readEvent(t, conn)
		if ev.Entity == models.EntityCourse {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("subscription never applied")
		}
		readEvent(t, conn)
	}
}

func TestHubStopClosesClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(zerolog.Nop())
	done := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("hub did not stop")
	}
	if hub.join(&Client{hub: hub, send: make(chan []byte, 1)}) {
		t.Fatalf("join must fail after stop")
	}
}

func TestParseFilter(t *testing.T) {
	f := parseFilter([]string{"student, mark", "", "course"})
	if len(f) != 3 || !f[models.EntityMark] {
		t.Fatalf("unexpected filter %v", f)
	}
	c := &Client{filter: parseFilter(nil)}
	if !c.wants(models.EntityCourse) {
		t.Fatalf("empty filter must accept everything")
	}
}
