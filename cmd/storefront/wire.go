//go:build wireinject
// +build wireinject

package main

import (
	"github.com/RD107924/ruandi-shop-v2/config"
	"github.com/RD107924/ruandi-shop-v2/dao"
	"github.com/RD107924/ruandi-shop-v2/handler"
	"github.com/RD107924/ruandi-shop-v2/pkg/client"
	"github.com/RD107924/ruandi-shop-v2/pkg/storage"
	"github.com/RD107924/ruandi-shop-v2/service"

	"github.com/google/wire"
)

func InitApp(cfg *config.Config) *handler.App {
	wire.Build(
		storage.New,
		client.NewApi,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Import), "*"),
		wire.Struct(new(handler.Cart), "*"),
		wire.Struct(new(handler.Checkout), "*"),
		wire.Struct(new(handler.Admin), "*"),

		wire.Struct(new(handler.App), "*"),
	)
	return nil
}
