// Package notify 관리자 대시보드 실시간 알림
// RSVP 제출 이벤트를 브로커를 거쳐 WebSocket 게이트웨이로 전달한다
package notify

// 이벤트 타입
const (
	EventRsvpCreated = "rsvp_created"
)

// Event 대시보드로 전달되는 알림 이벤트
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Publisher 이벤트 발행 인터페이스, Service 레이어가 의존한다
type Publisher interface {
	// Publish 이벤트 발행, 전달 실패는 로깅만 하고 요청 처리를 막지 않는다
	Publish(event Event)
}

// Broker 이벤트 발행 + 소비 루프를 가진 브로커
// 구현: channelBroker (단일 프로세스), kafkaBroker (다중 인스턴스)
type Broker interface {
	Publisher
	// Start 소비 루프 시작 (blocking, goroutine 에서 호출)
	Start()
	// Close 브로커 종료
	Close()
}

// Handler 브로커가 소비한 이벤트를 받는 쪽 (WebSocket 게이트웨이)
type Handler interface {
	HandleEvent(event Event)
}
