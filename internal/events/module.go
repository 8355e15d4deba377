package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/craftpine/storefront/internal/config"
)

// Module wires the event publisher. Without configured brokers the
// application runs with a no-op publisher.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p publisherParams) Publisher {
	if len(p.Config.KafkaBrokers) == 0 {
		return NopPublisher{}
	}
	return NewKafkaPublisher(p.Config.KafkaBrokers, p.Config.OrderEventTopic, p.Config.EventBufferSize, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, publisher Publisher) {
	kafkaPublisher, ok := publisher.(*KafkaPublisher)
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			kafkaPublisher.Start(context.Background())
			return nil
		},
		OnStop: func(ctx context.Context) error {
			kafkaPublisher.Stop()
			return nil
		},
	})
}
