package rocketmq

import (
	"context"
	"fmt"

	"Spotlight/config"
	"Spotlight/pkg/log"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

// Publisher 向外部事件流投递消息
type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
}

type Rocketmq struct {
	RocketmqProducer rocketmq.Producer
}

func init() {
	rlog.SetLogLevel("error")
}

// NewPublisher 未配置 nameserver 时返回空实现
func NewPublisher(cfg *config.RocketMQConfig) (Publisher, func(), error) {
	if !cfg.Enabled() {
		return NopPublisher{}, func() {}, nil
	}

	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("new rocketmq producer: %w", err)
	}
	if err := p.Start(); err != nil {
		return nil, nil, fmt.Errorf("start rocketmq producer: %w", err)
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))

	cleanup := func() {
		if err := p.Shutdown(); err != nil {
			log.L.Warn("shutdown rocketmq producer", zap.Error(err))
		}
	}
	return &Rocketmq{RocketmqProducer: p}, cleanup, nil
}

func (p *Rocketmq) Publish(ctx context.Context, topic string, body []byte) error {
	msg := &primitive.Message{
		Topic: topic,
		Body:  body,
	}

	// 发送同步消息
	res, err := p.RocketmqProducer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("msg_id", res.MsgID))
	return nil
}

// NopPublisher 丢弃所有消息
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, []byte) error { return nil }
