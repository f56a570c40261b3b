package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),

	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	wire.Struct(new(CheckoutService), "*"),
	wire.Bind(new(ICheckoutService), new(*CheckoutService)),

	wire.Struct(new(ImportService), "*"),
	wire.Bind(new(IImportService), new(*ImportService)),

	wire.Struct(new(AdminService), "*"),
	wire.Bind(new(IAdminService), new(*AdminService)),
)
