package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RD107924/ruandi-shop-v2/config"
	"github.com/RD107924/ruandi-shop-v2/dao"
	"github.com/RD107924/ruandi-shop-v2/pkg/client"
	"github.com/RD107924/ruandi-shop-v2/pkg/storage"
	"github.com/RD107924/ruandi-shop-v2/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseUrl string) *config.Config {
	return &config.Config{
		App: &config.App{Env: "test"},
		Api: &config.Api{BaseUrl: baseUrl},
		Checkout: &config.Checkout{
			RequiredText: "我了解",
			Warehouses:   []string{"淘金東倉", "淘金西倉"},
		},
	}
}

func newCheckout(baseUrl string) (*CheckoutService, *CartService) {
	mem := storage.NewMemoryStorage()
	cart := &CartService{CartDAO: &dao.Cart{Storage: mem}}
	conf := testConfig(baseUrl)
	return &CheckoutService{Config: conf, Api: client.NewApi(conf), Cart: cart}, cart
}

func TestGateOpen(t *testing.T) {
	svc, _ := newCheckout("http://unused")
	filled := types.Cart{"42": {Name: "Widget", Price: 100, Quantity: 2}}

	tests := []struct {
		name    string
		cart    types.Cart
		confirm string
		want    bool
	}{
		{"exact phrase", filled, "我了解", true},
		{"surrounding spaces trimmed", filled, " 我了解 ", true},
		{"longer phrase rejected", filled, "我了解了", false},
		{"empty text", filled, "", false},
		{"empty cart", types.Cart{}, "我了解", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.GateOpen(tt.cart, tt.confirm))
		})
	}
}

func TestSubmitSuccessClearsCart(t *testing.T) {
	var received types.Order
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "POST", r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status": "success"}`))
	}))
	defer srv.Close()

	svc, cart := newCheckout(srv.URL)
	ctx := context.Background()
	require.NoError(t, cart.Add(ctx, "42", "Widget", 100, 2, ""))

	order, err := svc.Submit(ctx, "PPH123", "54321", "淘金東倉", " 我了解 ")
	require.NoError(t, err)
	assert.Equal(t, 200, order.TotalAmount)

	assert.Equal(t, "PPH123", received.PaopaohuId)
	assert.Equal(t, "54321", received.PaymentCode)
	assert.Equal(t, 200, received.TotalAmount)
	assert.Equal(t, "淘金東倉", received.Warehouse)
	require.Len(t, received.Items, 1)
	assert.Equal(t, "Widget", received.Items["42"].Name)

	// 下单成功后购物车清空
	assert.Empty(t, cart.Items(ctx))
}

func TestSubmitFailureKeepsCart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status": "error", "message": "db is down"}`))
	}))
	defer srv.Close()

	svc, cart := newCheckout(srv.URL)
	ctx := context.Background()
	require.NoError(t, cart.Add(ctx, "42", "Widget", 100, 2, ""))

	_, err := svc.Submit(ctx, "PPH123", "54321", "淘金東倉", "我了解")
	require.Error(t, err)
	assert.Len(t, cart.Items(ctx), 1)
}

func TestSubmitValidation(t *testing.T) {
	// 任何校验失败都不该打到 API
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected request")
	}))
	defer srv.Close()

	svc, cart := newCheckout(srv.URL)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "PPH123", "54321", "淘金東倉", "我了解")
	require.Error(t, err, "empty cart")

	require.NoError(t, cart.Add(ctx, "42", "Widget", 100, 1, ""))

	_, err = svc.Submit(ctx, "PPH123", "54321", "淘金東倉", "我了解了")
	require.Error(t, err, "wrong phrase")

	_, err = svc.Submit(ctx, "", "54321", "淘金東倉", "我了解")
	require.Error(t, err, "missing paopaohu id")

	_, err = svc.Submit(ctx, "PPH123", "", "淘金東倉", "我了解")
	require.Error(t, err, "missing payment code")

	_, err = svc.Submit(ctx, "PPH123", "54321", "自家倉", "我了解")
	require.Error(t, err, "unknown warehouse")

	assert.Len(t, cart.Items(ctx), 1)
}

func TestCustomerOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/orders/PPH123", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id": 7, "paopaohu_id": "PPH123", "total_amount": 200,
			"items_json": "{\"42\": {\"name\": \"Widget\", \"price\": 100, \"quantity\": 2, \"remark\": \"\"}}"}]`))
	}))
	defer srv.Close()

	svc, _ := newCheckout(srv.URL)
	orders, err := svc.CustomerOrders(context.Background(), " PPH123 ")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Widget", orders[0].Items["42"].Name)

	_, err = svc.CustomerOrders(context.Background(), "  ")
	require.Error(t, err)
}
