package mq

import "context"

// Publisher 消息生产者接口
type Publisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

var (
	_ Publisher = (*Producer)(nil)
	_ Publisher = Noop{}
)

// Noop 在未配置 RabbitMQ 时使用, 丢弃所有事件
type Noop struct{}

func (Noop) Publish(ctx context.Context, event *Event) error { return nil }

func (Noop) Close() error { return nil }
