package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"wedding_invitation_server/internal/config"
)

// kafkaBroker Kafka 기반 브로커
// 서버를 여러 대 띄울 때 어느 인스턴스로 제출된 RSVP 든
// 모든 인스턴스의 대시보드 접속자에게 알림이 가도록 한다
type kafkaBroker struct {
	writer  *kafka.Writer
	reader  *kafka.Reader
	handler Handler
	cancel  context.CancelFunc
	ctx     context.Context
}

// NewKafkaBroker Kafka 브로커 생성
func NewKafkaBroker(conf config.NotifyConfig, handler Handler) Broker {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(conf.HostPort),
		Topic:        conf.RsvpTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 10 * time.Second,
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:   []string{conf.HostPort},
		Topic:     conf.RsvpTopic,
		Partition: conf.Partition,
		MinBytes:  1,
		MaxBytes:  10e6,
	})

	ctx, cancel := context.WithCancel(context.Background())
	return &kafkaBroker{
		writer:  writer,
		reader:  reader,
		handler: handler,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Publish 이벤트를 Kafka 토픽에 기록한다. 실패해도 요청 처리는 막지 않는다
func (b *kafkaBroker) Publish(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("notify event marshal failed", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := b.writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
		zap.L().Error("notify kafka publish failed", zap.Error(err))
	}
}

// Start Kafka 소비 루프, Close 될 때까지 blocking
func (b *kafkaBroker) Start() {
	for {
		msg, err := b.reader.ReadMessage(b.ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				return
			}
			zap.L().Error("notify kafka read failed", zap.Error(err))
			continue
		}
		var event Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			zap.L().Error("notify event unmarshal failed", zap.Error(err))
			continue
		}
		b.handler.HandleEvent(event)
	}
}

// Close 브로커 종료
func (b *kafkaBroker) Close() {
	b.cancel()
	if err := b.writer.Close(); err != nil {
		zap.L().Error("notify kafka writer close failed", zap.Error(err))
	}
	if err := b.reader.Close(); err != nil {
		zap.L().Error("notify kafka reader close failed", zap.Error(err))
	}
}
