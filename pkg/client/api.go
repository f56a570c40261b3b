package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/RD107924/ruandi-shop-v2/config"
	"github.com/RD107924/ruandi-shop-v2/pkg/log"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// ApiError 商城 API 返回的非 2xx 响应
type ApiError struct {
	Status int
	Msg    string
}

func (e *ApiError) Error() string {
	return fmt.Sprintf("api %d: %s", e.Status, e.Msg)
}

// Api 远端商城 API 客户端，线程安全，可并发调用
type Api struct {
	baseUrl string
	http    *http.Client
}

func NewApi(conf *config.Config) *Api {
	timeout := 15 * time.Second
	if conf.Api != nil && conf.Api.Timeout > 0 {
		timeout = time.Duration(conf.Api.Timeout) * time.Second
	}
	baseUrl := ""
	if conf.Api != nil {
		baseUrl = strings.TrimRight(conf.Api.BaseUrl, "/")
	}
	return &Api{
		baseUrl: baseUrl,
		http:    &http.Client{Timeout: timeout},
	}
}

// do 统一的请求入口：带请求 id，非 2xx 转成 *ApiError
// token 为空时不带 Authorization 头（公开接口）
func (a *Api) do(ctx context.Context, method, path, token string, body any, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseUrl+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	reqId := uuid.NewString()
	req.Header.Set("X-Request-Id", reqId)

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("请求商城 API 失败: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.L.Warn("api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("request_id", reqId))
		return &ApiError{Status: resp.StatusCode, Msg: errMessage(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("解析响应失败: %w", err)
		}
	}
	return nil
}

// errMessage 从响应体里尽量挖出可读的错误信息
func errMessage(raw []byte) string {
	for _, field := range []string{"message", "error", "msg"} {
		if v := gjson.GetBytes(raw, field); v.Exists() {
			return v.String()
		}
	}
	if msg := strings.TrimSpace(string(raw)); msg != "" {
		return msg
	}
	return "未知錯誤"
}
