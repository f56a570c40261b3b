package dao

import (
	"context"
	"errors"

	"github.com/RD107924/ruandi-shop-v2/pkg/storage"
)

// TokenKey 后台令牌槽位，浏览器端放在 sessionStorage
const TokenKey = "adminToken"

type Session struct {
	Storage storage.Storage
}

// Token 未登录时返回空串
func (d *Session) Token(ctx context.Context) (string, error) {
	raw, err := d.Storage.Load(ctx, TokenKey)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (d *Session) SetToken(ctx context.Context, token string) error {
	return d.Storage.Save(ctx, TokenKey, []byte(token))
}

func (d *Session) Clear(ctx context.Context) error {
	return d.Storage.Delete(ctx, TokenKey)
}
