package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/commodities-api/internal/application/dto"
	"github.com/jhoicas/commodities-api/internal/domain"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Es el equivalente del
// formulario original: deriva Status de Quantity antes de cada escritura,
// de modo que el almacén nunca reciba un status desincronizado.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. El precio debe ser positivo; Status se
// deriva de la cantidad. No hay restricción de nombre duplicado.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		Name:     in.Name,
		Category: in.Category,
		Quantity: in.Quantity,
		Price:    in.Price,
		Unit:     in.Unit,
		Supplier: in.Supplier,
		Status:   entity.DeriveStatus(in.Quantity),
	}
	stored, err := uc.repo.Create(product)
	if err != nil {
		return nil, err
	}
	return toProductResponse(stored), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update aplica los campos no nulos sobre el registro existente. Si el patch
// trae Quantity, Status se recalcula; un patch sin cantidad deja Status
// intacto (no puede desincronizarse porque Quantity tampoco cambia).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
		product.Status = entity.DeriveStatus(product.Quantity)
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	stored, err := uc.repo.Update(product)
	if err != nil {
		return nil, err
	}
	return toProductResponse(stored), nil
}

// List devuelve el snapshot completo en orden de inserción. Con query no
// vacío filtra por nombre, categoría o proveedor, sin distinguir mayúsculas
// ni acentos.
func (uc *ProductUseCase) List(query string) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if q := strings.TrimSpace(query); q != "" {
		needle := normalizeFold(q)
		filtered := list[:0]
		for _, p := range list {
			if strings.Contains(normalizeFold(p.Name), needle) ||
				strings.Contains(normalizeFold(p.Category), needle) ||
				strings.Contains(normalizeFold(p.Supplier), needle) {
				filtered = append(filtered, p)
			}
		}
		list = filtered
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un producto por ID. Sin efectos en cascada.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// foldTransformer descompone, elimina marcas diacríticas y recompone, para
// que "Azúcar" contenga "azucar".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeFold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Unit:        p.Unit,
		Supplier:    p.Supplier,
		Status:      p.Status,
		LastUpdated: p.LastUpdated,
	}
}
