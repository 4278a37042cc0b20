package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop_admin/internal/logging"
	"github.com/Skotchmaster/shop_admin/internal/service"
	"github.com/Skotchmaster/shop_admin/internal/util"
)

type DashboardHTTP struct {
	Svc *service.DashboardService
}

func (h *DashboardHTTP) GetSummary(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.summary")

	revenue, err := h.Svc.TotalRevenue(ctx)
	if err != nil {
		l.Error("summary_error", "status", 500, "reason", "cannot compute revenue", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot compute revenue")
	}

	count, err := h.Svc.TotalOrderCount(ctx)
	if err != nil {
		l.Error("summary_error", "status", 500, "reason", "cannot count orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot count orders")
	}

	l.Info("summary_success")
	return c.JSON(http.StatusOK, map[string]any{
		"totalRevenue": revenue,
		"totalSales":   count,
	})
}

func (h *DashboardHTTP) GetSales(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.sales")

	buckets, err := h.Svc.MonthlyRevenue(ctx)
	if err != nil {
		l.Error("sales_error", "status", 500, "reason", "cannot bucket revenue", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot bucket revenue")
	}

	l.Info("sales_success")
	return c.JSON(http.StatusOK, map[string]any{"data": buckets})
}

func (h *DashboardHTTP) GetRecentOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "dashboard.recent_orders")

	limit := util.ParseIntDefault(c.QueryParam("limit"), service.DefaultRecentOrders)

	orders, err := h.Svc.RecentOrders(ctx, limit)
	if err != nil {
		l.Error("recent_orders_error", "status", 500, "reason", "cannot list recent orders", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "cannot list recent orders")
	}

	l.Info("recent_orders_success")
	return c.JSON(http.StatusOK, orders)
}
