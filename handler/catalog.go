package handler

import (
	"fmt"
	"strconv"

	"github.com/RD107924/ruandi-shop-v2/pkg/response"
	"github.com/RD107924/ruandi-shop-v2/service"
	"github.com/urfave/cli/v2"
)

type Catalog struct {
	Catalog service.ICatalogService
}

func (h *Catalog) Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "products",
			Usage:  "瀏覽本店商品",
			Action: h.List,
			Subcommands: []*cli.Command{
				{
					Name:      "add",
					Usage:     "把本店商品加入購物車",
					ArgsUsage: "<商品編號>",
					Action:    h.Add,
				},
			},
		},
	}
}

func (h *Catalog) List(c *cli.Context) error {
	products, err := h.Catalog.List(c.Context)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(c.App.Writer, "目前沒有商品上架。")
		return nil
	}
	for _, p := range products {
		fmt.Fprintf(c.App.Writer, "[%d] %s  $%d TWD  (含商品價 $%d + 代購服務費 $%d)\n",
			p.Id, p.Name, p.FinalPrice(), p.BasePrice, p.ServiceFee)
	}
	return nil
}

func (h *Catalog) Add(c *cli.Context) error {
	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return response.NewError(400, "請輸入商品編號，例如: products add 3")
	}

	products, err := h.Catalog.List(c.Context)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].Id == id {
			if err := h.Catalog.AddToCart(c.Context, &products[i]); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "「%s」x 1 已加入購物車！\n", products[i].Name)
			return nil
		}
	}
	return response.NewError(404, "查無此商品")
}
