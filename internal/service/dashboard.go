package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/repo"
)

const DefaultRecentOrders = 5

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

type MonthBucket struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type DashboardService struct {
	Repo *repo.GormRepo
}

func (s *DashboardService) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	rows, err := s.Repo.RevenueRows(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Total)
	}
	return total, nil
}

func (s *DashboardService) TotalOrderCount(ctx context.Context) (int64, error) {
	return s.Repo.CountOrders(ctx)
}

// MonthlyRevenue buckets order totals into a fixed Jan..Dec array by
// the calendar month of creation. Years collapse into the same bucket,
// which is what the sales chart renders.
func (s *DashboardService) MonthlyRevenue(ctx context.Context) ([]MonthBucket, error) {
	buckets := make([]MonthBucket, 12)
	for i := range buckets {
		buckets[i] = MonthBucket{Month: monthNames[i], Total: decimal.Zero}
	}

	rows, err := s.Repo.RevenueRows(ctx)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		m := int(row.CreatedAt.Month()) - 1
		buckets[m].Total = buckets[m].Total.Add(row.Total)
	}
	return buckets, nil
}

func (s *DashboardService) RecentOrders(ctx context.Context, n int) ([]models.Order, error) {
	if n <= 0 {
		n = DefaultRecentOrders
	}
	return s.Repo.ListOrders(ctx, n)
}
