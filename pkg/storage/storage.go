package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/RD107924/ruandi-shop-v2/config"
)

// ErrNotFound 槽位不存在
var ErrNotFound = errors.New("storage: key not found")

// Storage 本地键值槽位的抽象
// 浏览器端对应 localStorage（购物车）和 sessionStorage（后台令牌）
type Storage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, val []byte) error
	Delete(ctx context.Context, key string) error
}

// New 按配置选择持久化后端，默认落到本地文件
func New(conf *config.Config) Storage {
	backend := ""
	if conf.Storage != nil {
		backend = conf.Storage.Backend
	}
	switch backend {
	case "", "file":
		s, err := NewFileStorage(conf)
		if err != nil {
			panic(fmt.Sprintf("初始化本地存储失败: %v", err))
		}
		return s
	case "redis":
		return NewRedisStorage(NewRedisClient(conf))
	default:
		panic(fmt.Sprintf("未知的 storage backend: %s", backend))
	}
}
