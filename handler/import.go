package handler

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/RD107924/ruandi-shop-v2/service"
	"github.com/RD107924/ruandi-shop-v2/types"
	"github.com/urfave/cli/v2"
)

// Import 1688 商品连结代购的交互流程
type Import struct {
	Import service.IImportService
}

func (h *Import) Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "import",
			Usage:     "貼上 1688 商品連結，擷取後加入購物車",
			ArgsUsage: "<1688 商品連結>",
			Action:    h.Run,
		},
	}
}

func (h *Import) Run(c *cli.Context) error {
	url := c.Args().First()
	fmt.Fprintln(c.App.Writer, "正在為您擷取商品資訊，請稍候...")

	product, err := h.Import.Fetch(c.Context, url)
	if err != nil {
		// 擷取失败只提示，不中断，让用户换个连结重试
		fmt.Fprintf(c.App.Writer, "擷取失敗：%s\n", err)
		return nil
	}

	fmt.Fprintf(c.App.Writer, "%s\n", product.Name)
	fmt.Fprintf(c.App.Writer, "台幣總價: $%d (已含服務費)\n", product.Price)
	fmt.Fprintf(c.App.Writer, "起批量: %d 件\n", product.MinQuantity)

	in := bufio.NewReader(c.App.Reader)
	choices, err := h.askSpecs(c, in, product)
	if err != nil {
		return err
	}

	quantity := product.MinQuantity
	if raw := strings.TrimSpace(promptLine(c.App.Writer, in, fmt.Sprintf("數量 (至少 %d，直接按 Enter 取預設): ", product.MinQuantity))); raw != "" {
		quantity, err = strconv.Atoi(raw)
		if err != nil {
			return errors.New("數量必須是數字")
		}
	}

	if err := h.Import.AddToCart(c.Context, product, choices, quantity); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "「%s」x %d 已加入購物車！\n", product.Name, quantity)
	return nil
}

// askSpecs 每个规格维度出一个编号菜单，回车取第一个选项
func (h *Import) askSpecs(c *cli.Context, in *bufio.Reader, product *types.ScrapedProduct) ([]string, error) {
	choices := make([]string, 0, len(product.Specs))
	for _, spec := range product.Specs {
		fmt.Fprintf(c.App.Writer, "%s:\n", spec.Type)
		for i, opt := range spec.Options {
			fmt.Fprintf(c.App.Writer, "  %d) %s\n", i+1, opt)
		}
		raw := strings.TrimSpace(promptLine(c.App.Writer, in, "請選擇: "))
		if raw == "" {
			choices = append(choices, spec.Options[0])
			continue
		}
		idx, err := strconv.Atoi(raw)
		if err != nil || idx < 1 || idx > len(spec.Options) {
			return nil, fmt.Errorf("規格「%s」請輸入 1~%d 之間的編號", spec.Type, len(spec.Options))
		}
		choices = append(choices, spec.Options[idx-1])
	}
	return choices, nil
}
