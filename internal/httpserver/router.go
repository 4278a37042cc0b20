package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_admin/internal/jwtauth"
)

type Deps struct {
	ProductHandler   *ProductHTTP
	OrderHandler     *OrderHTTP
	DashboardHandler *DashboardHTTP
	SearchHandler    *SearchHTTP
	Auth             *jwtauth.Middleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	products := v1.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)

	v1.GET("/search", d.SearchHandler.Search)

	orders := v1.Group("/orders")
	orders.GET("", d.OrderHandler.GetOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("", d.OrderHandler.CreateOrder)

	dashboard := v1.Group("/dashboard")
	dashboard.GET("/summary", d.DashboardHandler.GetSummary)
	dashboard.GET("/sales", d.DashboardHandler.GetSales)
	dashboard.GET("/orders/recent", d.DashboardHandler.GetRecentOrders)

	admin := v1.Group("/admin", d.Auth.RequireAdmin)
	admin.POST("/products", d.ProductHandler.CreateProduct)
	admin.PATCH("/products/:id", d.ProductHandler.PatchProduct)
	admin.DELETE("/products/:id", d.ProductHandler.DeleteProduct)
	admin.PATCH("/orders/:id/status", d.OrderHandler.UpdateOrderStatus)
}
