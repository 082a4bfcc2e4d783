package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/commodities-api/internal/domain"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto ProductRepository.
//
// La colección viva se guarda como slice en orden de inserción, protegida por
// un RWMutex: la ejecución del servidor sí es concurrente aunque el mock
// original no lo fuera. Toda lectura devuelve copias, de modo que ningún
// llamador puede mutar el estado del almacén reteniendo una referencia.
type ProductRepo struct {
	mu    sync.RWMutex
	items []*entity.Product
	clock *Clock
}

// NewProductRepository construye el almacén con la colección inicial dada.
// El seed se copia: el slice del llamador queda desacoplado del estado vivo.
func NewProductRepository(clock *Clock, seed []*entity.Product) *ProductRepo {
	items := make([]*entity.Product, 0, len(seed))
	for _, p := range seed {
		items = append(items, cloneProduct(p))
	}
	return &ProductRepo{items: items, clock: clock}
}

// Create asigna un ID nuevo, estampa LastUpdated y agrega el producto al
// final de la colección. No hay restricción de nombre duplicado.
func (r *ProductRepo) Create(product *entity.Product) (*entity.Product, error) {
	r.clock.Sleep(latencyWrite)

	stored := cloneProduct(product)
	stored.ID = uuid.New().String()
	stored.LastUpdated = r.clock.Now()

	r.mu.Lock()
	r.items = append(r.items, stored)
	r.mu.Unlock()

	return cloneProduct(stored), nil
}

// GetByID devuelve una copia del producto o domain.ErrNotFound.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.clock.Sleep(latencyGet)

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			return cloneProduct(p), nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve una copia completa de la colección en orden de inserción.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.clock.Sleep(latencyList)

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

// Update reemplaza el registro con el mismo ID y re-estampa LastUpdated.
// Persiste Status tal cual llega: el almacén no lo recalcula (el caso de uso
// es responsable de derivarlo de la cantidad antes de llamar).
func (r *ProductRepo) Update(product *entity.Product) (*entity.Product, error) {
	r.clock.Sleep(latencyWrite)

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == product.ID {
			stored := cloneProduct(product)
			stored.LastUpdated = r.clock.Now()
			r.items[i] = stored
			return cloneProduct(stored), nil
		}
	}
	return nil, domain.ErrNotFound
}

// Delete elimina el registro o devuelve domain.ErrNotFound. Sin cascadas.
func (r *ProductRepo) Delete(id string) error {
	r.clock.Sleep(latencyWrite)

	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}
