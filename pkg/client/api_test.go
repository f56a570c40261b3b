package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RD107924/ruandi-shop-v2/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApi(baseUrl string) *Api {
	return NewApi(&config.Config{Api: &config.Api{BaseUrl: baseUrl, Timeout: 5}})
}

func TestListProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		// 公开接口不带令牌，但每个请求都有 id
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Write([]byte(`[{"id": 1, "name": "Widget", "base_price": 80, "service_fee": 20, "image_url": "/uploads/w.jpg"}]`))
	}))
	defer srv.Close()

	products, err := newTestApi(srv.URL).ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, 100, products[0].FinalPrice())
}

func TestApiErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"status": "error", "message": "權限不足"}`, "權限不足"},
		{"error field", `{"error": "無效的 1688 商品連結"}`, "無效的 1688 商品連結"},
		{"plain text", `gateway timeout`, "gateway timeout"},
		{"empty body", ``, "未知錯誤"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestApi(srv.URL).ListProducts(context.Background())
			var apiErr *ApiError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, http.StatusForbidden, apiErr.Status)
			assert.Equal(t, tt.want, apiErr.Msg)
		})
	}
}

func TestTransportErrorIsNotApiError(t *testing.T) {
	// 端口未监听，传输层直接失败
	_, err := newTestApi("http://127.0.0.1:1").ListProducts(context.Background())
	require.Error(t, err)
	var apiErr *ApiError
	assert.False(t, errors.As(err, &apiErr))
}
