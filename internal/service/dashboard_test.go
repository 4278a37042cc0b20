package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/transport"
)

func createTestOrder(t *testing.T, catalog *CatalogService, orders *OrderService, price string, qty int) *models.Order {
	t.Helper()
	prod := createTestProduct(t, catalog, "prod-"+price, price)
	order, err := orders.CreateOrder(context.Background(), transport.CreateOrderRequest{
		CustomerName:  "Alice",
		CustomerEmail: "a@x.com",
		Items:         []transport.CreateOrderItem{{ProductID: prod.ID, Quantity: qty}},
	})
	require.NoError(t, err)
	return order
}

func TestDashboardEmptyStore(t *testing.T) {
	r := InitTestDB(t)
	dash := &DashboardService{Repo: r}
	ctx := context.Background()

	revenue, err := dash.TotalRevenue(ctx)
	require.NoError(t, err)
	require.True(t, revenue.IsZero())

	count, err := dash.TotalOrderCount(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	buckets, err := dash.MonthlyRevenue(ctx)
	require.NoError(t, err)
	require.Len(t, buckets, 12)
	require.Equal(t, "Jan", buckets[0].Month)
	require.Equal(t, "Dec", buckets[11].Month)
	for _, b := range buckets {
		require.True(t, b.Total.IsZero(), "bucket %s must start at zero", b.Month)
	}
}

func TestDashboardTotals(t *testing.T) {
	r := InitTestDB(t)
	catalog := &CatalogService{Repo: r}
	orders := &OrderService{Repo: r}
	dash := &DashboardService{Repo: r}
	ctx := context.Background()

	createTestOrder(t, catalog, orders, "100", 2)
	createTestOrder(t, catalog, orders, "19.99", 1)

	revenue, err := dash.TotalRevenue(ctx)
	require.NoError(t, err)
	require.True(t, revenue.Equal(decimal.RequireFromString("219.99")), "got %s", revenue)

	count, err := dash.TotalOrderCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestMonthlyRevenueBuckets(t *testing.T) {
	r := InitTestDB(t)
	catalog := &CatalogService{Repo: r}
	orders := &OrderService{Repo: r}
	dash := &DashboardService{Repo: r}
	ctx := context.Background()

	order := createTestOrder(t, catalog, orders, "500", 1)
	march := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, r.DB.Model(&models.Order{}).Where("id = ?", order.ID).
		Update("created_at", march).Error)

	buckets, err := dash.MonthlyRevenue(ctx)
	require.NoError(t, err)
	require.Len(t, buckets, 12)

	for i, b := range buckets {
		if i == 2 {
			require.True(t, b.Total.Equal(decimal.NewFromInt(500)), "Mar bucket got %s", b.Total)
		} else {
			require.True(t, b.Total.IsZero(), "bucket %s expected zero, got %s", b.Month, b.Total)
		}
	}
}

func TestMonthlyRevenueCollapsesYears(t *testing.T) {
	r := InitTestDB(t)
	catalog := &CatalogService{Repo: r}
	orders := &OrderService{Repo: r}
	dash := &DashboardService{Repo: r}
	ctx := context.Background()

	o1 := createTestOrder(t, catalog, orders, "100", 1)
	o2 := createTestOrder(t, catalog, orders, "200", 1)
	require.NoError(t, r.DB.Model(&models.Order{}).Where("id = ?", o1.ID).
		Update("created_at", time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC)).Error)
	require.NoError(t, r.DB.Model(&models.Order{}).Where("id = ?", o2.ID).
		Update("created_at", time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)).Error)

	buckets, err := dash.MonthlyRevenue(ctx)
	require.NoError(t, err)
	require.True(t, buckets[6].Total.Equal(decimal.NewFromInt(300)), "Jul got %s", buckets[6].Total)
}

func TestRecentOrders(t *testing.T) {
	r := InitTestDB(t)
	catalog := &CatalogService{Repo: r}
	orders := &OrderService{Repo: r}
	dash := &DashboardService{Repo: r}
	ctx := context.Background()

	base := time.Now().UTC()
	var ids []string
	for i := 0; i < 3; i++ {
		o := createTestOrder(t, catalog, orders, "100", 1)
		require.NoError(t, r.DB.Model(&models.Order{}).Where("id = ?", o.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
		ids = append(ids, o.ID.String())
	}

	recent, err := dash.RecentOrders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, ids[2], recent[0].ID.String(), "newest first")
	require.Equal(t, ids[1], recent[1].ID.String())
	require.NotNil(t, recent[0].Items[0].Product)
}
