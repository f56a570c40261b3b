package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RD107924/ruandi-shop-v2/dao"
	"github.com/RD107924/ruandi-shop-v2/pkg/client"
	"github.com/RD107924/ruandi-shop-v2/pkg/log"
	"github.com/RD107924/ruandi-shop-v2/pkg/response"
	"github.com/RD107924/ruandi-shop-v2/types"
	"github.com/sourcegraph/conc/pool"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// ErrNotLoggedIn 需要令牌的操作在未登录时直接拒绝，不发请求
var ErrNotLoggedIn = errors.New("尚未登入後台，請先執行 admin login")

var allowedImageExt = []string{".png", ".jpg", ".jpeg", ".gif", ".webp"}

type AdminService struct {
	Api        *client.Api
	SessionDAO *dao.Session
}

var _ IAdminService = (*AdminService)(nil)

type IAdminService interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	LoggedIn(ctx context.Context) bool
	CreateProduct(ctx context.Context, req *types.UpsertProductRequest) error
	UpdateProduct(ctx context.Context, id int, req *types.UpsertProductRequest) error
	DeleteProduct(ctx context.Context, id int) error
	Orders(ctx context.Context) ([]types.OrderRecord, error)
	Dashboard(ctx context.Context) (*types.AdminDashboard, error)
	UploadImage(ctx context.Context, path string) (string, error)
}

func (s *AdminService) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return response.NewError(400, "缺少帳號或密碼")
	}
	resp, err := s.Api.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return s.SessionDAO.SetToken(ctx, resp.Token)
}

func (s *AdminService) Logout(ctx context.Context) error {
	return s.SessionDAO.Clear(ctx)
}

func (s *AdminService) LoggedIn(ctx context.Context) bool {
	token, err := s.SessionDAO.Token(ctx)
	return err == nil && token != ""
}

func (s *AdminService) CreateProduct(ctx context.Context, req *types.UpsertProductRequest) error {
	token, err := s.token(ctx)
	if err != nil {
		return err
	}
	return s.authWrap(s.Api.CreateProduct(ctx, token, req))
}

func (s *AdminService) UpdateProduct(ctx context.Context, id int, req *types.UpsertProductRequest) error {
	token, err := s.token(ctx)
	if err != nil {
		return err
	}
	return s.authWrap(s.Api.UpdateProduct(ctx, token, id, req))
}

func (s *AdminService) DeleteProduct(ctx context.Context, id int) error {
	token, err := s.token(ctx)
	if err != nil {
		return err
	}
	return s.authWrap(s.Api.DeleteProduct(ctx, token, id))
}

// Orders 坏的 items_json 只让该笔订单的明细降级为空，列表照常返回
func (s *AdminService) Orders(ctx context.Context) ([]types.OrderRecord, error) {
	token, err := s.token(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.Api.Orders(ctx, token)
	if err != nil {
		return nil, s.authWrap(err)
	}
	for i := range orders {
		orders[i].Items = parseItems(orders[i].ItemsJson)
	}
	return orders, nil
}

// Dashboard 登入后的首屏：订单和商品并发拉取
func (s *AdminService) Dashboard(ctx context.Context) (*types.AdminDashboard, error) {
	if _, err := s.token(ctx); err != nil {
		return nil, err
	}

	board := &types.AdminDashboard{}
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		orders, err := s.Orders(ctx)
		if err != nil {
			return err
		}
		board.Orders = orders
		return nil
	})
	p.Go(func(ctx context.Context) error {
		products, err := s.Api.ListProducts(ctx)
		if err != nil {
			return err
		}
		board.Products = products
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return board, nil
}

// UploadImage 扩展名白名单在本地先挡一道，再交给 /api/upload
func (s *AdminService) UploadImage(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	ok := false
	for _, allowed := range allowedImageExt {
		if ext == allowed {
			ok = true
			break
		}
	}
	if !ok {
		return "", response.NewError(400, "不支援的圖片格式")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return s.Api.Upload(ctx, path, f)
}

func (s *AdminService) token(ctx context.Context) (string, error) {
	token, err := s.SessionDAO.Token(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return token, nil
}

// authWrap 令牌被服务端拒绝时提示重新登入；不自动刷新，不自动重试
func (s *AdminService) authWrap(err error) error {
	var apiErr *client.ApiError
	if errors.As(err, &apiErr) && (apiErr.Status == 401 || apiErr.Status == 403) {
		return fmt.Errorf("後台授權已失效，請重新登入: %w", err)
	}
	return err
}

func parseItems(raw string) types.Cart {
	if raw == "" || !gjson.Valid(raw) {
		if raw != "" {
			log.L.Warn("order items_json corrupted", zap.String("raw", raw))
		}
		return types.Cart{}
	}
	var items types.Cart
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.L.Warn("order items_json corrupted", zap.Error(err))
		return types.Cart{}
	}
	if items == nil {
		items = types.Cart{}
	}
	return items
}
