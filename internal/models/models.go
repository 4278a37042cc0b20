package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch st := OrderStatus(s); st {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered:
		return st, true
	}
	return "", false
}

// CanTransitionTo is the hook for a stricter lifecycle table. The
// dashboard lets operators move an order to any status, backward
// included, so every transition is currently permitted.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return true
}

type Product struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"        json:"id"`
	Name      string          `gorm:"not null"                    json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Images    pq.StringArray  `gorm:"type:text[]"                 json:"images"`
	Archived  bool            `gorm:"not null;default:false"      json:"isArchived"`
	Featured  bool            `gorm:"not null;default:false"      json:"isFeatured"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type Order struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"        json:"id"`
	CustomerName  string          `gorm:"not null"                    json:"customerName"`
	CustomerEmail string          `gorm:"not null"                    json:"customerEmail"`
	Status        OrderStatus     `gorm:"not null"                    json:"status"`
	Total         decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total"`
	Items         []OrderItem     `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt     time.Time       `gorm:"index"                       json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem references its product rather than owning it: the product
// may be archived after the order exists, but the item keeps resolving
// it for display and keeps the unit price captured at order time.
type OrderItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"        json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;index;not null"    json:"orderId"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"          json:"productId"`
	Quantity  int             `gorm:"not null;check:quantity>0"   json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unitPrice"`
	Product   *Product        `gorm:"foreignKey:ProductID"        json:"product,omitempty"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
