package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/transport"
)

func TestDashboardSummaryHandler(t *testing.T) {
	env := newTestEnv(t)
	prod := env.createProduct("keyboard", "100")
	env.createOrderHTTP([]transport.CreateOrderItem{{ProductID: prod.ID, Quantity: 2}})
	env.createOrderHTTP([]transport.CreateOrderItem{{ProductID: prod.ID, Quantity: 1}})

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
	require.NoError(t, env.D.GetSummary(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TotalRevenue decimal.Decimal `json:"totalRevenue"`
		TotalSales   int64           `json:"totalSales"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.TotalRevenue.Equal(decimal.NewFromInt(300)), "got %s", body.TotalRevenue)
	require.EqualValues(t, 2, body.TotalSales)
}

func TestDashboardSalesHandler(t *testing.T) {
	env := newTestEnv(t)
	prod := env.createProduct("keyboard", "100")
	env.createOrderHTTP([]transport.CreateOrderItem{{ProductID: prod.ID, Quantity: 1}})

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/dashboard/sales", nil)
	require.NoError(t, env.D.GetSales(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []struct {
			Month string          `json:"month"`
			Total decimal.Decimal `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 12, "every month is present even with no sales")
	require.Equal(t, "Jan", body.Data[0].Month)

	sum := decimal.Zero
	for _, b := range body.Data {
		sum = sum.Add(b.Total)
	}
	require.True(t, sum.Equal(decimal.NewFromInt(100)), "got %s", sum)
}

func TestDashboardRecentOrdersHandler(t *testing.T) {
	env := newTestEnv(t)
	prod := env.createProduct("keyboard", "100")
	for i := 0; i < 3; i++ {
		env.createOrderHTTP([]transport.CreateOrderItem{{ProductID: prod.ID, Quantity: 1}})
	}

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/dashboard/orders/recent?limit=2", nil)
	require.NoError(t, env.D.GetRecentOrders(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
}
