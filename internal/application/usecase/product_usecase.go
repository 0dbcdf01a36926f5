package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stock-control-api/internal/application/dto"
	"github.com/jhoicas/stock-control-api/internal/domain"
	"github.com/jhoicas/stock-control-api/internal/domain/entity"
	"github.com/jhoicas/stock-control-api/internal/domain/repository"
	"github.com/jhoicas/stock-control-api/internal/domain/validation"
)

// ProductUseCase casos de uso CRUD para productos. CurrentStock solo cambia
// vía el motor de movimientos, salvo el valor inicial de alta.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo, supplierRepo: supplierRepo}
}

// Create crea un producto. SKU duplicado y referencias a categoría/proveedor
// inexistentes o eliminados se reportan como errores de campo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	unit, unitErr := entity.ParseUnitOfMeasure(in.UnitOfMeasure)
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		CategoryID:    in.CategoryID,
		SupplierID:    in.SupplierID,
		UnitOfMeasure: unit,
		CostPrice:     in.CostPrice,
		SellingPrice:  in.SellingPrice,
		CurrentStock:  in.CurrentStock,
		MinimumStock:  in.MinimumStock,
		MaximumStock:  in.MaximumStock,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	ve := validation.Product(product)
	if unitErr != nil {
		ve.Add("unit_of_measure", "no es una unidad válida")
	}
	if err := uc.checkReferences(product, ve); err != nil {
		return nil, err
	}
	if !ve.HasErrors() {
		if existing, err := uc.repo.GetBySKU(product.SKU); err != nil {
			return nil, err
		} else if existing != nil {
			ve.Add("sku", "ya está en uso")
		}
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No toca SKU ni current_stock.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	ve := domain.NewValidationError()
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = *in.SupplierID
	}
	if in.UnitOfMeasure != nil {
		unit, err := entity.ParseUnitOfMeasure(*in.UnitOfMeasure)
		if err != nil {
			ve.Add("unit_of_measure", "no es una unidad válida")
		} else {
			product.UnitOfMeasure = unit
		}
	}
	if in.CostPrice != nil {
		product.CostPrice = in.CostPrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.MinimumStock != nil {
		product.MinimumStock = *in.MinimumStock
	}
	if in.MaximumStock != nil {
		product.MaximumStock = in.MaximumStock
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	for field, msgs := range validation.Product(product).Fields {
		for _, m := range msgs {
			ve.Add(field, m)
		}
	}
	if err := uc.checkReferences(product, ve); err != nil {
		return nil, err
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// checkReferences verifica que categoría y proveedor existan y no estén
// eliminados; acumula los fallos como errores de campo.
func (uc *ProductUseCase) checkReferences(p *entity.Product, ve *domain.ValidationError) error {
	if p.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(p.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			ve.Add("category_id", "no existe")
		}
	}
	if p.SupplierID != "" {
		supplier, err := uc.supplierRepo.GetByID(p.SupplierID)
		if err != nil {
			return err
		}
		if supplier == nil {
			ve.Add("supplier_id", "no existe")
		}
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos aplicando los filtros del request.
func (uc *ProductUseCase) List(in dto.ProductListRequest) (*dto.ProductListResponse, error) {
	in.DefaultPage()
	filter := repository.ProductFilter{
		CategoryID: in.CategoryID,
		SupplierID: in.SupplierID,
		LowStock:   in.LowStock,
		OutOfStock: in.OutOfStock,
		Search:     in.Search,
		OnlyActive: !in.All,
		Limit:      in.Limit,
		Offset:     in.Offset,
	}
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset, Total: total},
	}, nil
}

// Deactivate marca el producto como eliminado (borrado lógico). El historial
// de movimientos permanece intacto.
func (uc *ProductUseCase) Deactivate(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id, time.Now())
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		UnitOfMeasure: p.UnitOfMeasure.String(),
		CostPrice:     p.CostPrice,
		SellingPrice:  p.SellingPrice,
		CurrentStock:  p.CurrentStock,
		MinimumStock:  p.MinimumStock,
		MaximumStock:  p.MaximumStock,
		LowStock:      p.LowStock(),
		OutOfStock:    p.OutOfStock(),
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
