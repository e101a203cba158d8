package notify

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WsGateway 대시보드 WebSocket 게이트웨이
// 접속 중인 모든 관리자에게 브로커 이벤트를 브로드캐스트한다
type WsGateway struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]struct{}
}

// NewWsGateway 게이트웨이 생성
func NewWsGateway() *WsGateway {
	return &WsGateway{
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// HandleEvent notify.Handler 구현, 이벤트를 전체 접속자에게 전송한다
func (g *WsGateway) HandleEvent(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("ws event marshal failed", zap.Error(err))
		return
	}

	g.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(g.conns))
	for conn := range g.conns {
		conns = append(conns, conn)
	}
	g.mu.RUnlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			zap.L().Warn("ws broadcast failed, dropping connection", zap.Error(err))
			g.remove(conn)
		}
	}
}

// Serve HTTP 연결을 WebSocket 으로 업그레이드하고 접속 목록에 등록한다
// JWT 미들웨어 뒤에 배치되어 인증된 관리자만 연결할 수 있다
func (g *WsGateway) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zap.L().Error("ws upgrade failed", zap.Error(err))
		return
	}

	g.mu.Lock()
	g.conns[conn] = struct{}{}
	g.mu.Unlock()
	zap.L().Info("dashboard ws connected", zap.String("remote", conn.RemoteAddr().String()))

	// 수신 루프: 대시보드는 보낼 게 없으므로 끊김 감지용으로만 읽는다
	go func() {
		defer g.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// remove 접속 해제 및 연결 종료
func (g *WsGateway) remove(conn *websocket.Conn) {
	g.mu.Lock()
	if _, ok := g.conns[conn]; ok {
		delete(g.conns, conn)
		conn.Close()
	}
	g.mu.Unlock()
}

// ConnCount 현재 접속 수 (테스트/모니터링용)
func (g *WsGateway) ConnCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.conns)
}
