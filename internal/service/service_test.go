package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Skotchmaster/shop_admin/internal/models"
	"github.com/Skotchmaster/shop_admin/internal/repo"
	"github.com/Skotchmaster/shop_admin/internal/transport"
)

func InitTestDB(t *testing.T) *repo.GormRepo {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	return repo.NewGormRepo(db)
}

func createTestProduct(t *testing.T, svc *CatalogService, name, price string) *models.Product {
	t.Helper()
	prod, err := svc.CreateProduct(context.Background(), transport.CreateProductRequest{
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Images: []string{"https://cdn.example.com/" + name + ".png"},
	})
	require.NoError(t, err)
	return prod
}
