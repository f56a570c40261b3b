package handler

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/RD107924/ruandi-shop-v2/pkg/response"
	"github.com/RD107924/ruandi-shop-v2/service"
	"github.com/RD107924/ruandi-shop-v2/types"
	"github.com/urfave/cli/v2"
)

type Cart struct {
	Cart service.ICartService
}

func (h *Cart) Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "cart",
			Usage:  "查看與編輯購物車",
			Action: h.Show,
			Subcommands: []*cli.Command{
				{
					Name:      "qty",
					Usage:     "調整數量，例如: cart qty 42 +1",
					ArgsUsage: "<條目> <增減量>",
					Action:    h.Qty,
				},
				{
					Name:      "remark",
					Usage:     "改寫備註（顏色、規格等）",
					ArgsUsage: "<條目> <備註>",
					Action:    h.Remark,
				},
				{
					Name:      "remove",
					Usage:     "移除條目（需確認）",
					ArgsUsage: "<條目>",
					Action:    h.Remove,
				},
			},
		},
	}
}

func (h *Cart) Show(c *cli.Context) error {
	cart := h.Cart.Items(c.Context)
	totals := h.Cart.Totals(c.Context)
	renderCart(c.App.Writer, cart, totals)
	return nil
}

func (h *Cart) Qty(c *cli.Context) error {
	if c.Args().Len() < 2 {
		return response.NewError(400, "用法: cart qty <條目> <增減量>")
	}
	id := c.Args().Get(0)
	delta, err := strconv.Atoi(c.Args().Get(1))
	if err != nil || delta == 0 {
		return response.NewError(400, "增減量必須是非零整數，例如 +1 或 -1")
	}

	quantity, err := h.Cart.ChangeQuantity(c.Context, id, delta)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "數量已調整為 %d\n", quantity)
	return nil
}

func (h *Cart) Remark(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return response.NewError(400, "用法: cart remark <條目> <備註>")
	}
	id := c.Args().Get(0)
	remark := strings.Join(c.Args().Slice()[1:], " ")
	if err := h.Cart.UpdateRemark(c.Context, id, remark); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "備註已更新")
	return nil
}

func (h *Cart) Remove(c *cli.Context) error {
	id := c.Args().First()
	if id == "" {
		return response.NewError(400, "用法: cart remove <條目>")
	}
	entry, ok := h.Cart.Items(c.Context)[id]
	if !ok {
		return response.NewError(404, "購物車中沒有這個商品")
	}

	in := bufio.NewReader(c.App.Reader)
	if !confirmYes(c.App.Writer, in, fmt.Sprintf("確定要從購物車中移除「%s」嗎？", entry.Name)) {
		return nil
	}
	if err := h.Cart.Remove(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "「%s」已移除\n", entry.Name)
	return nil
}

// renderCart 结账页和 cart show 共用的渲染；条目按 id 排序只为输出稳定
func renderCart(w io.Writer, cart types.Cart, totals types.CartTotals) {
	if len(cart) == 0 {
		fmt.Fprintln(w, "您的購物車是空的！")
		return
	}

	ids := make([]string, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entry := cart[id]
		fmt.Fprintf(w, "[%s] %s  $%d x %d = $%d\n",
			id, entry.Name, entry.Price, entry.Quantity, entry.Price*entry.Quantity)
		if entry.Remark != "" {
			for _, line := range strings.Split(entry.Remark, "; ") {
				fmt.Fprintf(w, "      %s\n", line)
			}
		}
	}
	fmt.Fprintf(w, "合計: $%d TWD（%d 項）\n", totals.Amount, totals.Count)
}
