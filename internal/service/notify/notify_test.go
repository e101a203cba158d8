package notify

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// recordHandler 소비된 이벤트를 채널로 넘긴다
type recordHandler struct {
	received chan Event
}

func (h *recordHandler) HandleEvent(event Event) {
	h.received <- event
}

func TestChannelBrokerRoundTrip(t *testing.T) {
	handler := &recordHandler{received: make(chan Event, 1)}
	broker := NewChannelBroker(handler)
	go broker.Start()
	defer broker.Close()

	broker.Publish(Event{Type: EventRsvpCreated, Payload: "p"})

	select {
	case event := <-handler.received:
		if event.Type != EventRsvpCreated {
			t.Errorf("type = %s, want %s", event.Type, EventRsvpCreated)
		}
	case <-time.After(time.Second):
		t.Fatal("이벤트가 소비되지 않았다")
	}
}

func TestChannelBrokerFullDropsEvent(t *testing.T) {
	// 소비자가 멈춰도 Publish 는 블로킹 없이 바로 돌아온다
	handler := &recordHandler{received: make(chan Event)}
	broker := NewChannelBroker(handler)
	defer broker.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 3000; i++ {
			broker.Publish(Event{Type: EventRsvpCreated})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("버퍼가 가득 찼는데 Publish 가 블로킹되었다")
	}
}

func TestWsGatewayBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gateway := NewWsGateway()

	engine := gin.New()
	engine.GET("/ws/admin", gateway.Serve)
	srv := httptest.NewServer(engine)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/admin"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	defer conn.Close()

	// 등록이 Serve 안에서 동기로 끝나므로 바로 보여야 한다
	if gateway.ConnCount() != 1 {
		t.Errorf("connCount = %d, want 1", gateway.ConnCount())
	}

	gateway.HandleEvent(Event{
		Type:    EventRsvpCreated,
		Payload: map[string]any{"responderName": "김철수"},
	})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var event struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(data, &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if event.Type != EventRsvpCreated {
		t.Errorf("type = %s, want %s", event.Type, EventRsvpCreated)
	}
	if !strings.Contains(string(event.Payload), "김철수") {
		t.Errorf("payload = %s", event.Payload)
	}
}

func TestWsGatewayRemovesClosedConn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gateway := NewWsGateway()

	engine := gin.New()
	engine.GET("/ws/admin", gateway.Serve)
	srv := httptest.NewServer(engine)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/admin"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("ws dial: %v", err)
	}
	conn.Close()

	// 수신 루프가 끊김을 감지해 접속 목록에서 제거한다
	deadline := time.Now().Add(2 * time.Second)
	for gateway.ConnCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("connCount = %d, 끊긴 연결이 정리되지 않았다", gateway.ConnCount())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestWsGatewayMultipleConns(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gateway := NewWsGateway()

	engine := gin.New()
	engine.GET("/ws/admin", gateway.Serve)
	srv := httptest.NewServer(engine)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/admin"
	conns := make([]*websocket.Conn, 0, 3)
	for i := 0; i < 3; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		if err != nil {
			t.Fatalf("ws dial: %v", err)
		}
		defer conn.Close()
		conns = append(conns, conn)
	}

	gateway.HandleEvent(Event{Type: EventRsvpCreated})

	// 전원에게 도달해야 한다
	var wg sync.WaitGroup
	for _, conn := range conns {
		wg.Add(1)
		go func(c *websocket.Conn) {
			defer wg.Done()
			c.SetReadDeadline(time.Now().Add(2 * time.Second))
			if _, _, err := c.ReadMessage(); err != nil {
				t.Errorf("read: %v", err)
			}
		}(conn)
	}
	wg.Wait()
}
