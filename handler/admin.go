package handler

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/RD107924/ruandi-shop-v2/pkg/response"
	"github.com/RD107924/ruandi-shop-v2/service"
	"github.com/RD107924/ruandi-shop-v2/types"
	"github.com/urfave/cli/v2"
)

type Admin struct {
	Admin service.IAdminService
}

func (h *Admin) Commands() []*cli.Command {
	productFlags := []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "商品名稱"},
		&cli.StringFlag{Name: "image", Usage: "圖片網址"},
		&cli.IntFlag{Name: "base-price", Usage: "商品價"},
		&cli.IntFlag{Name: "service-fee", Usage: "代購服務費"},
	}
	return []*cli.Command{
		{
			Name:  "admin",
			Usage: "後台管理",
			Subcommands: []*cli.Command{
				{Name: "login", Usage: "登入後台", Action: h.Login},
				{Name: "logout", Usage: "登出", Action: h.Logout},
				{Name: "orders", Usage: "訂單列表", Action: h.Orders},
				{
					Name:      "upload",
					Usage:     "上傳商品圖片，回傳圖片網址",
					ArgsUsage: "<圖片路徑>",
					Action:    h.Upload,
				},
				{
					Name:  "product",
					Usage: "商品管理",
					Subcommands: []*cli.Command{
						{Name: "add", Usage: "新增商品", Flags: productFlags, Action: h.CreateProduct},
						{Name: "update", Usage: "更新商品", ArgsUsage: "<商品編號>", Flags: productFlags, Action: h.UpdateProduct},
						{Name: "del", Usage: "刪除商品（需確認）", ArgsUsage: "<商品編號>", Action: h.DeleteProduct},
					},
				},
			},
		},
	}
}

func (h *Admin) Login(c *cli.Context) error {
	in := bufio.NewReader(c.App.Reader)
	username := promptLine(c.App.Writer, in, "帳號: ")
	password := promptLine(c.App.Writer, in, "密碼: ")

	if err := h.Admin.Login(c.Context, username, password); err != nil {
		return err
	}

	// 登入成功即载入首屏，跟网页后台的行为一致
	board, err := h.Admin.Dashboard(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "登入成功。目前共有 %d 件商品、%d 筆訂單。\n",
		len(board.Products), len(board.Orders))
	return nil
}

func (h *Admin) Logout(c *cli.Context) error {
	if err := h.Admin.Logout(c.Context); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "已登出")
	return nil
}

func (h *Admin) Orders(c *cli.Context) error {
	orders, err := h.Admin.Orders(c.Context)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(c.App.Writer, "目前沒有訂單。")
		return nil
	}
	for _, order := range orders {
		warehouse := order.Warehouse
		if warehouse == "" {
			warehouse = "N/A"
		}
		fmt.Fprintf(c.App.Writer, "#%d  %s  %s  【%s】  後五碼 %s  $%d TWD\n",
			order.Id, order.CreatedAt, order.PaopaohuId, warehouse, order.PaymentCode, order.TotalAmount)
		for id, item := range order.Items {
			fmt.Fprintf(c.App.Writer, "    [%s] %s (單價: $%d) x %d\n", id, item.Name, item.Price, item.Quantity)
			if item.Remark != "" {
				fmt.Fprintf(c.App.Writer, "        備註：%s\n", item.Remark)
			}
		}
	}
	return nil
}

func (h *Admin) Upload(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return response.NewError(400, "用法: admin upload <圖片路徑>")
	}
	imageUrl, err := h.Admin.UploadImage(c.Context, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, imageUrl)
	return nil
}

func (h *Admin) CreateProduct(c *cli.Context) error {
	req, err := productRequest(c)
	if err != nil {
		return err
	}
	if err := h.Admin.CreateProduct(c.Context, req); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "商品新增成功")
	return nil
}

func (h *Admin) UpdateProduct(c *cli.Context) error {
	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return response.NewError(400, "請輸入商品編號")
	}
	req, err := productRequest(c)
	if err != nil {
		return err
	}
	if err := h.Admin.UpdateProduct(c.Context, id, req); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "商品更新成功")
	return nil
}

func (h *Admin) DeleteProduct(c *cli.Context) error {
	id, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return response.NewError(400, "請輸入商品編號")
	}

	in := bufio.NewReader(c.App.Reader)
	if !confirmYes(c.App.Writer, in, fmt.Sprintf("確定要刪除編號 %d 的商品嗎？", id)) {
		return nil
	}
	if err := h.Admin.DeleteProduct(c.Context, id); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, "商品刪除成功")
	return nil
}

func productRequest(c *cli.Context) (*types.UpsertProductRequest, error) {
	req := &types.UpsertProductRequest{
		Name:       c.String("name"),
		ImageUrl:   c.String("image"),
		BasePrice:  c.Int("base-price"),
		ServiceFee: c.Int("service-fee"),
	}
	if req.Name == "" {
		return nil, response.NewError(400, "請填寫商品名稱")
	}
	if req.BasePrice < 0 || req.ServiceFee < 0 {
		return nil, response.NewError(400, "價格不能是負數")
	}
	return req, nil
}
