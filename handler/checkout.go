package handler

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/RD107924/ruandi-shop-v2/config"
	"github.com/RD107924/ruandi-shop-v2/service"
	"github.com/urfave/cli/v2"
)

type Checkout struct {
	Config   *config.Config
	Checkout service.ICheckoutService
	Cart     service.ICartService
}

func (h *Checkout) Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "checkout",
			Usage: "確認購物車並送出訂單",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "paopaohu", Usage: "跑跑虎編號", Required: true},
				&cli.StringFlag{Name: "code", Usage: "轉帳後五碼", Required: true},
				&cli.StringFlag{Name: "warehouse", Usage: "集運倉", Required: true},
			},
			Action: h.Run,
		},
		{
			Name:      "orders",
			Usage:     "憑跑跑虎編號查詢自己的訂單",
			ArgsUsage: "<跑跑虎編號>",
			Action:    h.MyOrders,
		},
	}
}

func (h *Checkout) MyOrders(c *cli.Context) error {
	orders, err := h.Checkout.CustomerOrders(c.Context, c.Args().First())
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(c.App.Writer, "查無訂單。")
		return nil
	}
	for _, order := range orders {
		fmt.Fprintf(c.App.Writer, "#%d  %s  【%s】  $%d TWD\n",
			order.Id, order.CreatedAt, order.Warehouse, order.TotalAmount)
		for id, item := range order.Items {
			fmt.Fprintf(c.App.Writer, "    [%s] %s x %d\n", id, item.Name, item.Quantity)
		}
	}
	return nil
}

func (h *Checkout) Run(c *cli.Context) error {
	cart := h.Cart.Items(c.Context)
	totals := h.Cart.Totals(c.Context)
	renderCart(c.App.Writer, cart, totals)
	if len(cart) == 0 {
		return nil
	}

	if h.Config.Checkout.BankAccount != "" {
		fmt.Fprintf(c.App.Writer, "請先轉帳至: %s\n", h.Config.Checkout.BankAccount)
	}
	fmt.Fprintf(c.App.Writer, "可選集運倉: %s\n", strings.Join(h.Config.Checkout.Warehouses, " / "))

	in := bufio.NewReader(c.App.Reader)
	phrase := h.Config.Checkout.RequiredPhrase()
	confirmText := promptLine(c.App.Writer, in, fmt.Sprintf("請輸入「%s」以確認送出: ", phrase))

	order, err := h.Checkout.Submit(c.Context,
		c.String("paopaohu"), c.String("code"), c.String("warehouse"), confirmText)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "下單成功!感謝您的訂購，商品將在1~2天內送達【%s】。\n", order.Warehouse)
	return nil
}
