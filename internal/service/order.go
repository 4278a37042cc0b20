package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/pricing"
	"github.com/Skotchmaster/shop_admin/internal/repo"
	"github.com/Skotchmaster/shop_admin/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

func (s *OrderService) CreateOrder(ctx context.Context, req transport.CreateOrderRequest) (*models.Order, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customerName is required", ErrValidation)
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return nil, fmt.Errorf("%w: customerEmail is required", ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items required", ErrValidation)
	}

	lines := make([]pricing.Line, 0, len(req.Items))
	for i := range req.Items {
		if req.Items[i].ProductID == uuid.Nil {
			return nil, fmt.Errorf("%w: productId required", ErrValidation)
		}
		if req.Items[i].Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", ErrValidation)
		}
		lines = append(lines, pricing.Line{
			ProductID: req.Items[i].ProductID,
			Quantity:  req.Items[i].Quantity,
		})
	}

	return s.Repo.CreateOrder(ctx, req.CustomerName, req.CustomerEmail, lines)
}

func (s *OrderService) ListOrders(ctx context.Context, limit int) ([]models.Order, error) {
	return s.Repo.ListOrders(ctx, limit)
}

func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return s.Repo.GetOrder(ctx, id)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, raw string) (*models.Order, error) {
	status, ok := models.ParseOrderStatus(raw)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, raw)
	}

	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: cannot move order from %s to %s", ErrValidation, order.Status, status)
	}

	return s.Repo.UpdateOrderStatus(ctx, id, status)
}
