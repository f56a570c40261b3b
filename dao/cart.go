package dao

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/RD107924/ruandi-shop-v2/pkg/log"
	"github.com/RD107924/ruandi-shop-v2/pkg/storage"
	"github.com/RD107924/ruandi-shop-v2/types"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// CartKey 与浏览器端 localStorage 同名的槽位
const CartKey = "ruandiCart"

type Cart struct {
	Storage storage.Storage
}

// Load 槽位缺失或数据损坏一律降级为空购物车，从不因此中断
func (d *Cart) Load(ctx context.Context) types.Cart {
	raw, err := d.Storage.Load(ctx, CartKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.L.Warn("load cart slot failed", zap.Error(err))
		}
		return types.Cart{}
	}

	if !gjson.ValidBytes(raw) {
		log.L.Warn("cart slot corrupted, fallback to empty cart")
		return types.Cart{}
	}
	var cart types.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		log.L.Warn("cart slot corrupted, fallback to empty cart", zap.Error(err))
		return types.Cart{}
	}
	if cart == nil {
		cart = types.Cart{}
	}
	for id, entry := range cart {
		if entry == nil {
			delete(cart, id)
		}
	}
	return cart
}

// Save 每次变更后整张表写回（write-through）
func (d *Cart) Save(ctx context.Context, cart types.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return d.Storage.Save(ctx, CartKey, raw)
}

func (d *Cart) Clear(ctx context.Context) error {
	return d.Storage.Delete(ctx, CartKey)
}
