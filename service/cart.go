package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"

	"github.com/RD107924/ruandi-shop-v2/dao"
	"github.com/RD107924/ruandi-shop-v2/pkg/response"
	"github.com/RD107924/ruandi-shop-v2/types"
)

// ErrNeedsManualResolution 同一 1688 条目可能规格不同，不能按 id 叠加数量，
// 需要用户在结账页修改备注或移除后重新加入
var ErrNeedsManualResolution = errors.New("該商品已在購物車中。如需不同規格，請在結帳頁面修改備註或移除後重新加入。")

// 1688 商品的起批量写在备注文本里
var minQuantityRe = regexp.MustCompile(`起批量: (\d+)`)

type CartService struct {
	CartDAO *dao.Cart
}

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	Items(ctx context.Context) types.Cart
	Add(ctx context.Context, id, name string, price, quantity int, remark string) error
	ChangeQuantity(ctx context.Context, id string, delta int) (int, error)
	UpdateRemark(ctx context.Context, id, remark string) error
	Remove(ctx context.Context, id string) error
	Totals(ctx context.Context) types.CartTotals
	Clear(ctx context.Context) error
}

func (s *CartService) Items(ctx context.Context) types.Cart {
	return s.CartDAO.Load(ctx)
}

// Add 本店商品重复加入时叠加数量；1688 商品拒绝叠加
func (s *CartService) Add(ctx context.Context, id, name string, price, quantity int, remark string) error {
	if quantity < 1 {
		return response.NewError(400, "數量至少為 1")
	}

	cart := s.CartDAO.Load(ctx)
	if entry, ok := cart[id]; ok {
		if types.IsThirdParty(id) {
			return ErrNeedsManualResolution
		}
		entry.Quantity += quantity
	} else {
		cart[id] = &types.CartEntry{
			Name:     name,
			Price:    price,
			Quantity: quantity,
			Remark:   remark,
		}
	}
	return s.CartDAO.Save(ctx, cart)
}

// ChangeQuantity 加减数量并静默夹到下限，返回调整后的数量
func (s *CartService) ChangeQuantity(ctx context.Context, id string, delta int) (int, error) {
	cart := s.CartDAO.Load(ctx)
	entry, ok := cart[id]
	if !ok {
		return 0, response.NewError(404, "購物車中沒有這個商品")
	}

	entry.Quantity += delta
	if min := effectiveMinimum(id, entry); entry.Quantity < min {
		entry.Quantity = min
	}
	if err := s.CartDAO.Save(ctx, cart); err != nil {
		return 0, err
	}
	return entry.Quantity, nil
}

// UpdateRemark 原样覆盖备注，不回查起批量标记是否被改掉
func (s *CartService) UpdateRemark(ctx context.Context, id, remark string) error {
	cart := s.CartDAO.Load(ctx)
	entry, ok := cart[id]
	if !ok {
		return response.NewError(404, "購物車中沒有這個商品")
	}
	entry.Remark = remark
	return s.CartDAO.Save(ctx, cart)
}

// Remove 删除条目；是否真的要删由调用方先向用户确认
func (s *CartService) Remove(ctx context.Context, id string) error {
	cart := s.CartDAO.Load(ctx)
	if _, ok := cart[id]; !ok {
		return response.NewError(404, "購物車中沒有這個商品")
	}
	delete(cart, id)
	return s.CartDAO.Save(ctx, cart)
}

// Totals 每次都重算，条目会被独立修改，不能缓存
func (s *CartService) Totals(ctx context.Context) types.CartTotals {
	cart := s.CartDAO.Load(ctx)
	totals := types.CartTotals{Count: len(cart)}
	for _, entry := range cart {
		totals.Amount += entry.Price * entry.Quantity
	}
	return totals
}

func (s *CartService) Clear(ctx context.Context) error {
	return s.CartDAO.Clear(ctx)
}

// effectiveMinimum 1688 商品从备注解析起批量，解析不到回落到 1
func effectiveMinimum(id string, entry *types.CartEntry) int {
	if !types.IsThirdParty(id) {
		return 1
	}
	m := minQuantityRe.FindStringSubmatch(entry.Remark)
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 1
	}
	return n
}
