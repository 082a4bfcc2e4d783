package repository

import "github.com/jhoicas/commodities-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// El almacén asigna ID en Create y refresca LastUpdated en cada escritura;
// nunca recalcula Status (eso es responsabilidad del caso de uso que llama).
// Todas las lecturas devuelven copias independientes del registro vivo.
type ProductRepository interface {
	// Create asigna un ID nuevo, estampa LastUpdated y agrega el producto al
	// final de la colección. Devuelve la copia almacenada.
	Create(product *entity.Product) (*entity.Product, error)
	// GetByID devuelve una copia del producto o domain.ErrNotFound.
	GetByID(id string) (*entity.Product, error)
	// List devuelve una copia completa de la colección en orden de inserción.
	List() ([]*entity.Product, error)
	// Update reemplaza el registro con el mismo ID y re-estampa LastUpdated.
	// Devuelve la copia almacenada o domain.ErrNotFound.
	Update(product *entity.Product) (*entity.Product, error)
	// Delete elimina el registro o devuelve domain.ErrNotFound.
	Delete(id string) error
}
