package service

import (
	"context"
	"slices"
	"strings"

	"github.com/RD107924/ruandi-shop-v2/config"
	"github.com/RD107924/ruandi-shop-v2/pkg/client"
	"github.com/RD107924/ruandi-shop-v2/pkg/response"
	"github.com/RD107924/ruandi-shop-v2/types"
)

type CheckoutService struct {
	Config *config.Config
	Api    *client.Api
	Cart   ICartService
}

var _ ICheckoutService = (*CheckoutService)(nil)

type ICheckoutService interface {
	GateOpen(cart types.Cart, confirmText string) bool
	Submit(ctx context.Context, paopaohuId, paymentCode, warehouse, confirmText string) (*types.Order, error)
	CustomerOrders(ctx context.Context, paopaohuId string) ([]types.OrderRecord, error)
}

// GateOpen 两个条件同时满足才放行：购物车非空、确认语去掉首尾空白后完全一致
func (s *CheckoutService) GateOpen(cart types.Cart, confirmText string) bool {
	return len(cart) > 0 && strings.TrimSpace(confirmText) == s.Config.Checkout.RequiredPhrase()
}

// Submit 下单。合计在提交时现算；成功后清空购物车槽位，失败则原样保留
func (s *CheckoutService) Submit(ctx context.Context, paopaohuId, paymentCode, warehouse, confirmText string) (*types.Order, error) {
	cart := s.Cart.Items(ctx)
	if len(cart) == 0 {
		return nil, response.NewError(400, "您的購物車是空的！")
	}
	if strings.TrimSpace(confirmText) != s.Config.Checkout.RequiredPhrase() {
		return nil, response.NewError(400, "確認語不正確，請輸入「"+s.Config.Checkout.RequiredPhrase()+"」")
	}
	if strings.TrimSpace(paopaohuId) == "" {
		return nil, response.NewError(400, "請填寫跑跑虎編號")
	}
	if strings.TrimSpace(paymentCode) == "" {
		return nil, response.NewError(400, "請填寫後五碼")
	}
	if !slices.Contains(s.Config.Checkout.Warehouses, warehouse) {
		return nil, response.NewError(400, "請選擇有效的集運倉")
	}

	totalAmount := 0
	for _, entry := range cart {
		totalAmount += entry.Price * entry.Quantity
	}

	order := &types.Order{
		PaopaohuId:  paopaohuId,
		PaymentCode: paymentCode,
		TotalAmount: totalAmount,
		Items:       cart,
		Warehouse:   warehouse,
	}
	if err := s.Api.SubmitOrder(ctx, order); err != nil {
		return nil, err
	}

	// 成功才清槽位；网络失败后的重新提交在服务端就是一笔新订单
	if err := s.Cart.Clear(ctx); err != nil {
		return order, err
	}
	return order, nil
}

// CustomerOrders 客户凭跑跑虎编号自助查单，不需要登入
func (s *CheckoutService) CustomerOrders(ctx context.Context, paopaohuId string) ([]types.OrderRecord, error) {
	paopaohuId = strings.TrimSpace(paopaohuId)
	if paopaohuId == "" {
		return nil, response.NewError(400, "請填寫跑跑虎編號")
	}
	orders, err := s.Api.CustomerOrders(ctx, paopaohuId)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = parseItems(orders[i].ItemsJson)
	}
	return orders, nil
}
