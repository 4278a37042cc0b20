package repo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/shop_admin/internal/models"
)

type RevenueRow struct {
	Total     decimal.Decimal
	CreatedAt time.Time
}

// RevenueRows loads just the columns the dashboard aggregates over.
// Summation happens in Go on decimals, not in SQL floats.
func (r *GormRepo) RevenueRows(ctx context.Context) ([]RevenueRow, error) {
	var rows []RevenueRow
	err := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Select("total", "created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormRepo) CountOrders(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
