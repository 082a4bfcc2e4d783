package memory

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
)

// SeedUsers devuelve la lista fija de credenciales del sistema.
// Los passwords (manager123 / keeper123) se hashean con bcrypt en la carga;
// el hash nunca sale del dominio.
func SeedUsers() []*entity.User {
	return []*entity.User{
		{
			ID:           "1",
			Email:        "manager@commodities.com",
			PasswordHash: mustHash("manager123"),
			Name:         "Rajesh Kumar",
			Role:         entity.RoleManager,
		},
		{
			ID:           "2",
			Email:        "keeper@commodities.com",
			PasswordHash: mustHash("keeper123"),
			Name:         "Priya Sharma",
			Role:         entity.RoleStorekeeper,
		},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic("seed: hash de password: " + err.Error())
	}
	return string(hash)
}

// SeedProducts devuelve la colección inicial de 8 commodities de demostración.
// Status siempre se deriva de Quantity para mantener el invariante desde el
// primer registro.
func SeedProducts(now time.Time) []*entity.Product {
	seed := []struct {
		id       string
		name     string
		category string
		quantity int
		price    string
		unit     string
		supplier string
	}{
		{"1", "Tata Tea Premium", "Beverages", 150, "450.00", entity.UnitKg, "Tata Consumer Products"},
		{"2", "Aashirvaad Atta (Whole Wheat Flour)", "Grains", 8, "350.00", entity.UnitKg, "ITC Limited"},
		{"3", "India Gate Basmati Rice", "Grains", 500, "180.00", entity.UnitKg, "KRBL Limited"},
		{"4", "Toor Dal (Arhar Dal)", "Pulses", 0, "120.00", entity.UnitKg, "Mother Dairy"},
		{"5", "Fortune Sunflower Oil", "Oils", 75, "180.00", entity.UnitLiter, "Adani Wilmar"},
		{"6", "Everest Garam Masala", "Spices", 12, "85.00", entity.UnitKg, "Everest Food Products"},
		{"7", "Amul Milk Powder", "Dairy", 35, "420.00", entity.UnitKg, "Gujarat Cooperative Milk Marketing Federation"},
		{"8", "MDH Chana Masala", "Spices", 45, "95.00", entity.UnitKg, "MDH Spices"},
	}

	products := make([]*entity.Product, 0, len(seed))
	for _, s := range seed {
		products = append(products, &entity.Product{
			ID:          s.id,
			Name:        s.name,
			Category:    s.category,
			Quantity:    s.quantity,
			Price:       decimal.RequireFromString(s.price),
			Unit:        s.unit,
			Supplier:    s.supplier,
			Status:      entity.DeriveStatus(s.quantity),
			LastUpdated: now,
		})
	}
	return products
}
