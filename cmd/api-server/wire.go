//go:build wireinject
// +build wireinject

package main

import (
	"Spotlight/config"
	"Spotlight/dao"
	"Spotlight/dao/cache"
	"Spotlight/handler"
	"Spotlight/pkg/client"
	"Spotlight/pkg/database"
	"Spotlight/pkg/jwt"
	"Spotlight/pkg/rocketmq"
	"Spotlight/pkg/server"
	"Spotlight/pkg/socket"
	"Spotlight/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, func(), error) {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		config.ProvideJwtConfig,
		config.ProvideWebhookConfig,
		config.ProvideRocketMQConfig,
		config.ProvideReconcileConfig,
		jwt.NewVerifier,
		rocketmq.NewPublisher,
		socket.NewHub,
		handler.NewWebhookVerifier,
		server.NewGinEngine,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Notification), "*"),
		wire.Struct(new(handler.Webhook), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil, nil, nil
}
