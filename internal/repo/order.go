package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/pricing"
)

// CreateOrder resolves the referenced products and writes the order
// with its items in one transaction. The batch price read and the
// write share the tx, so a concurrent reader can never observe a
// partial order and a product cannot vanish mid-calculation.
func (r *GormRepo) CreateOrder(ctx context.Context, customerName, customerEmail string, lines []pricing.Line) (*models.Order, error) {
	var order models.Order

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var products []models.Product
		if err := tx.Where("id IN ?", pricing.ProductIDs(lines)).Find(&products).Error; err != nil {
			return err
		}

		quote, err := pricing.Compute(lines, products)
		if err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(quote.Lines))
		for _, l := range quote.Lines {
			items = append(items, models.OrderItem{
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
			})
		}

		order = models.Order{
			CustomerName:  customerName,
			CustomerEmail: customerEmail,
			Status:        models.OrderStatusPending,
			Total:         quote.Total,
			Items:         items,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		First(&order, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns orders newest first, each with its items and the
// item products joined in, so display needs no second round trip.
// limit <= 0 means no limit.
func (r *GormRepo) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	q := r.DB.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus overwrites status, last write wins. Total and
// items are untouched.
func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.GetOrder(ctx, id)
}
