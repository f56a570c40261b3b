package service

import (
	"context"
	"testing"

	"github.com/RD107924/ruandi-shop-v2/dao"
	"github.com/RD107924/ruandi-shop-v2/pkg/storage"
	"github.com/RD107924/ruandi-shop-v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService() (*CartService, *storage.MemoryStorage) {
	mem := storage.NewMemoryStorage()
	return &CartService{CartDAO: &dao.Cart{Storage: mem}}, mem
}

func TestAddNativeTwiceSumsQuantity(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, "42", "Widget", 100, 2, ""))
	require.NoError(t, svc.Add(ctx, "42", "Widget", 100, 3, ""))

	cart := svc.Items(ctx)
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart["42"].Quantity)
}

func TestAddThirdPartyTwiceRejected(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	remark := "顏色: 太空黑; 起批量: 2; 來源: https://detail.1688.com/offer/123.html"
	require.NoError(t, svc.Add(ctx, "1688-123", "藍牙耳機", 225, 2, remark))

	err := svc.Add(ctx, "1688-123", "藍牙耳機", 225, 5, "顏色: 珍珠白")
	require.ErrorIs(t, err, ErrNeedsManualResolution)

	// 原条目必须原封不动
	cart := svc.Items(ctx)
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart["1688-123"].Quantity)
	assert.Equal(t, remark, cart["1688-123"].Remark)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	svc, _ := newCartService()
	err := svc.Add(context.Background(), "42", "Widget", 100, 0, "")
	require.Error(t, err)
}

func TestChangeQuantityClampsToOne(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()
	require.NoError(t, svc.Add(ctx, "42", "Widget", 100, 2, ""))

	quantity, err := svc.ChangeQuantity(ctx, "42", -1)
	require.NoError(t, err)
	assert.Equal(t, 1, quantity)

	// 已在下限，再减仍然停在 1，不报错
	quantity, err = svc.ChangeQuantity(ctx, "42", -1)
	require.NoError(t, err)
	assert.Equal(t, 1, quantity)
}

func TestChangeQuantityClampsToMinOrderQuantity(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()
	remark := "顏色: 太空黑; 起批量: 3; 來源: https://detail.1688.com/offer/123.html"
	require.NoError(t, svc.Add(ctx, "1688-123", "藍牙耳機", 225, 5, remark))

	quantity, err := svc.ChangeQuantity(ctx, "1688-123", -4)
	require.NoError(t, err)
	assert.Equal(t, 3, quantity)
}

func TestChangeQuantityMissingEntry(t *testing.T) {
	svc, _ := newCartService()
	_, err := svc.ChangeQuantity(context.Background(), "nope", 1)
	require.Error(t, err)
}

func TestUpdateRemarkOverwritesVerbatim(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()
	remark := "起批量: 5; 來源: https://detail.1688.com/offer/9.html"
	require.NoError(t, svc.Add(ctx, "1688-9", "毛巾", 30, 5, remark))

	require.NoError(t, svc.UpdateRemark(ctx, "1688-9", "改成藍色"))
	cart := svc.Items(ctx)
	assert.Equal(t, "改成藍色", cart["1688-9"].Remark)

	// 起批量标记被改掉后，下限退回 1
	quantity, err := svc.ChangeQuantity(ctx, "1688-9", -10)
	require.NoError(t, err)
	assert.Equal(t, 1, quantity)
}

func TestRemove(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()
	require.NoError(t, svc.Add(ctx, "42", "Widget", 100, 1, ""))

	require.NoError(t, svc.Remove(ctx, "42"))
	assert.Empty(t, svc.Items(ctx))

	require.Error(t, svc.Remove(ctx, "42"))
}

func TestTotals(t *testing.T) {
	svc, _ := newCartService()
	ctx := context.Background()

	totals := svc.Totals(ctx)
	assert.Equal(t, types.CartTotals{}, totals)

	require.NoError(t, svc.Add(ctx, "42", "Widget", 100, 2, ""))
	require.NoError(t, svc.Add(ctx, "7", "Gadget", 250, 1, ""))
	totals = svc.Totals(ctx)
	assert.Equal(t, 450, totals.Amount)
	assert.Equal(t, 2, totals.Count)

	_, err := svc.ChangeQuantity(ctx, "7", 2)
	require.NoError(t, err)
	require.NoError(t, svc.Remove(ctx, "42"))
	totals = svc.Totals(ctx)
	assert.Equal(t, 750, totals.Amount)
	assert.Equal(t, 1, totals.Count)
}

func TestCartRoundTrip(t *testing.T) {
	svc, mem := newCartService()
	ctx := context.Background()
	require.NoError(t, svc.Add(ctx, "42", "Widget", 100, 2, ""))
	require.NoError(t, svc.Add(ctx, "1688-1", "耳機", 225, 2, "起批量: 2; 來源: https://detail.1688.com/offer/1.html"))

	// 同一槽位换一个全新的 service 读回，内容必须一致
	again := &CartService{CartDAO: &dao.Cart{Storage: mem}}
	assert.Equal(t, svc.Items(ctx), again.Items(ctx))
}

func TestCorruptSlotFallsBackToEmptyCart(t *testing.T) {
	svc, mem := newCartService()
	ctx := context.Background()
	require.NoError(t, mem.Save(ctx, dao.CartKey, []byte("not json{{")))

	assert.Empty(t, svc.Items(ctx))
	assert.Equal(t, types.CartTotals{}, svc.Totals(ctx))

	// 坏槽位不挡路：照常可以继续加购
	require.NoError(t, svc.Add(ctx, "42", "Widget", 100, 1, ""))
	assert.Len(t, svc.Items(ctx), 1)
}
