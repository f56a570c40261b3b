package handler

import (
	"github.com/urfave/cli/v2"
)

// App 三个界面的命令集合：商品目录、购物车/结账、后台
type App struct {
	Catalog  *Catalog
	Import   *Import
	Cart     *Cart
	Checkout *Checkout
	Admin    *Admin
}

func (a *App) Commands() []*cli.Command {
	var commands []*cli.Command
	commands = append(commands, a.Catalog.Commands()...)
	commands = append(commands, a.Import.Commands()...)
	commands = append(commands, a.Cart.Commands()...)
	commands = append(commands, a.Checkout.Commands()...)
	commands = append(commands, a.Admin.Commands()...)
	return commands
}
