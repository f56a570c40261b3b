package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/RD107924/ruandi-shop-v2/types"
	"github.com/google/uuid"
)

// Login 凭帐密换取后台令牌；帐密错误时服务端回 401
func (a *Api) Login(ctx context.Context, username, password string) (*types.LoginResponse, error) {
	req := &types.LoginRequest{Username: username, Password: password}
	var resp types.LoginResponse
	if err := a.do(ctx, "POST", "/api/admin/login", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" || resp.Token == "" {
		if resp.Message != "" {
			return nil, errors.New(resp.Message)
		}
		return nil, errors.New("登入失敗")
	}
	return &resp, nil
}

// Upload 上传商品图片，multipart 表单字段名为 image，返回托管后的图片地址
func (a *Api) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filepath.Base(filename))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.baseUrl+"/api/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := a.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("上传图片失败: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &ApiError{Status: resp.StatusCode, Msg: errMessage(raw)}
	}

	var out struct {
		ImageUrl string `json:"imageUrl"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("解析响应失败: %w", err)
	}
	return out.ImageUrl, nil
}
