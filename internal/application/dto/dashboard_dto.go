package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStatsResponse resumen agregado del inventario, recalculado en su
// totalidad sobre la colección viva en cada llamada.
type DashboardStatsResponse struct {
	TotalProducts  int             `json:"total_products"`
	TotalValue     decimal.Decimal `json:"total_value"` // Σ precio × cantidad
	LowStockItems  int             `json:"low_stock_items"`
	Categories     int             `json:"categories"` // categorías distintas
	RecentActivity []ActivityEntry `json:"recent_activity"`
}

// ActivityEntry evento del feed de actividad reciente del dashboard.
type ActivityEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Product   string    `json:"product"`
	User      string    `json:"user"`
	Timestamp time.Time `json:"timestamp"`
}
