package notify

import (
	"go.uber.org/zap"

	"wedding_invitation_server/pkg/constants"
)

// channelBroker 단일 프로세스용 인메모리 브로커
// 채널 하나로 발행과 소비를 잇는다
type channelBroker struct {
	events  chan Event
	handler Handler
	done    chan struct{}
}

// NewChannelBroker 인메모리 브로커 생성
func NewChannelBroker(handler Handler) Broker {
	return &channelBroker{
		events:  make(chan Event, constants.NOTIFY_CHANNEL_SIZE),
		handler: handler,
		done:    make(chan struct{}),
	}
}

// Publish 이벤트 발행, 버퍼가 가득 차면 버리고 경고만 남긴다
// 알림은 best-effort 이고 원본 데이터는 DB 에 남아 있다
func (b *channelBroker) Publish(event Event) {
	select {
	case b.events <- event:
	default:
		zap.L().Warn("notify channel full, event dropped", zap.String("type", event.Type))
	}
}

// Start 소비 루프, Close 될 때까지 blocking
func (b *channelBroker) Start() {
	for {
		select {
		case event := <-b.events:
			b.handler.HandleEvent(event)
		case <-b.done:
			return
		}
	}
}

// Close 브로커 종료
func (b *channelBroker) Close() {
	close(b.done)
}
