// Package analytics contiene el caso de uso del resumen del Dashboard.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/commodities-api/internal/application/dto"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen agregado del inventario.
//
// El agregado no se cachea ni se mantiene incrementalmente: se recalcula
// completo sobre la colección viva en cada llamada.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, now: time.Now}
}

// GetStats devuelve el resumen del inventario:
//   - TotalProducts: tamaño de la colección.
//   - TotalValue: Σ precio × cantidad, en decimal exacto.
//   - LowStockItems: productos en low-stock u out-of-stock.
//   - Categories: número de categorías distintas.
//   - RecentActivity: feed estático de demostración; NO se deriva de las
//     mutaciones reales (placeholder hasta que exista un backend real).
func (uc *DashboardUseCase) GetStats() (*dto.DashboardStatsResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}

	totalValue := decimal.Zero
	lowStock := 0
	categories := make(map[string]struct{})
	for _, p := range products {
		totalValue = totalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		if p.Status == entity.StatusLowStock || p.Status == entity.StatusOutOfStock {
			lowStock++
		}
		categories[p.Category] = struct{}{}
	}

	return &dto.DashboardStatsResponse{
		TotalProducts:  len(products),
		TotalValue:     totalValue,
		LowStockItems:  lowStock,
		Categories:     len(categories),
		RecentActivity: sampleActivity(uc.now()),
	}, nil
}

// sampleActivity devuelve el feed ilustrativo de actividad reciente con
// timestamps relativos al momento de la consulta.
func sampleActivity(now time.Time) []dto.ActivityEntry {
	return []dto.ActivityEntry{
		{ID: "1", Action: "Updated", Product: "Tata Tea Premium", User: "Rajesh Kumar", Timestamp: now.Add(-15 * time.Minute)},
		{ID: "2", Action: "Added", Product: "Amul Milk Powder", User: "Priya Sharma", Timestamp: now.Add(-45 * time.Minute)},
		{ID: "3", Action: "Updated", Product: "India Gate Basmati Rice", User: "Rajesh Kumar", Timestamp: now.Add(-120 * time.Minute)},
	}
}
