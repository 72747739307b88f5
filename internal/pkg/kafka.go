package pkg

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// 社区活动事件类型
const (
	EventMemberJoined   = "member_joined"
	EventMessagePosted  = "message_posted"
	EventEventScheduled = "event_scheduled"
)

// ActivityEvent 发往 kafka 的社区动态，按 chat_id 分区
type ActivityEvent struct {
	Type    string    `json:"type"`
	ChatID  uint64    `json:"chat_id"`
	ActorID uint64    `json:"actor_id"`
	At      time.Time `json:"at"`
}

type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewKafkaProducer(cfg KafkaConfig) (*KafkaProducer, error) {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}, nil
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// SendActivity 发送社区动态。producer 为 nil（未配置 broker）时直接跳过
func (p *KafkaProducer) SendActivity(ctx context.Context, ev ActivityEvent) error {
	if p == nil || p.writer == nil {
		return nil
	}
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", ev.ChatID)),
		Value: value,
	}
	return p.writer.WriteMessages(ctx, msg)
}
