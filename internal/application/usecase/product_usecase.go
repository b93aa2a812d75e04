package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/authz"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/plan"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductUseCase CRUD de productos con el guard de cuota del plan.
type ProductUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create da de alta un producto. El chequeo de cuota y el insert ocurren en la
// MISMA transacción: se bloquea la fila de la tienda (SELECT FOR UPDATE), se
// cuenta en ese instante y recién entonces se inserta. Dos altas concurrentes
// contra una tienda en limit-1 terminan una aceptada y una con
// domain.ErrQuotaExceeded, nunca dos aceptadas.
func (uc *ProductUseCase) Create(ctx context.Context, profile *entity.Profile, storeID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if d := authz.Authorize(profile, storeID, authz.ActionWriteProducts); !d.Allowed {
		return nil, denialError(d)
	}
	if in.Name == "" || in.Price.LessThan(decimal.Zero) || in.StockQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		StoreID:           storeID,
		Name:              in.Name,
		Description:       in.Description,
		Price:             in.Price,
		PromotionalPrice:  in.PromotionalPrice,
		StockQuantity:     in.StockQuantity,
		ShelfLocation:     in.ShelfLocation,
		Barcode:           in.Barcode,
		Category:          in.Category,
		ImageURL:          in.ImageURL,
		ImageOriginalURL:  in.ImageOriginalURL,
		BackgroundRemoved: in.BackgroundRemoved,
		InvoiceURL:        in.InvoiceURL,
		CreatedBy:         profile.ID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := uc.txRunner.Run(ctx, func(
		storeRepo repository.StoreRepository,
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
		_ repository.NotificationRepository,
	) error {
		// Bloquea la fila de la tienda: serializa count+insert entre requests
		// concurrentes de la misma tienda.
		store, err := storeRepo.GetForUpdate(storeID)
		if err != nil {
			return err
		}
		if store == nil {
			return domain.ErrStoreNotFound
		}
		count, err := productRepo.CountByStore(storeID)
		if err != nil {
			return err
		}
		if plan.CanAddProduct(store, count) == plan.QuotaExceeded {
			return domain.ErrQuotaExceeded
		}
		return productRepo.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto verificando que pertenezca a la tienda del caller.
func (uc *ProductUseCase) GetByID(profile *entity.Profile, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if d := authz.Authorize(profile, product.StoreID, authz.ActionReadProducts); !d.Allowed {
		// No filtrar si la tienda ajena existe: mismo "denegado" que siempre.
		return nil, denialError(d)
	}
	return toProductResponse(product), nil
}

// List lista los productos de la tienda con paginación.
func (uc *ProductUseCase) List(profile *entity.Profile, storeID string, limit, offset int) (*dto.ProductListResponse, error) {
	if d := authz.Authorize(profile, storeID, authz.ActionReadProducts); !d.Allowed {
		return nil, denialError(d)
	}
	products, err := uc.productRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update modifica un producto existente (no pasa por el guard de cuota:
// actualizar no aumenta el conteo).
func (uc *ProductUseCase) Update(profile *entity.Profile, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if d := authz.Authorize(profile, product.StoreID, authz.ActionWriteProducts); !d.Allowed {
		return nil, denialError(d)
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if !in.Price.IsZero() {
		product.Price = in.Price
	}
	if in.PromotionalPrice != nil {
		product.PromotionalPrice = in.PromotionalPrice
	}
	if in.StockQuantity != nil {
		if *in.StockQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.StockQuantity = *in.StockQuantity
	}
	if in.ShelfLocation != "" {
		product.ShelfLocation = in.ShelfLocation
	}
	if in.Barcode != "" {
		product.Barcode = in.Barcode
	}
	if in.Category != "" {
		product.Category = in.Category
	}
	if in.ImageURL != "" {
		product.ImageURL = in.ImageURL
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto de la tienda del caller.
func (uc *ProductUseCase) Delete(profile *entity.Profile, id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if d := authz.Authorize(profile, product.StoreID, authz.ActionWriteProducts); !d.Allowed {
		return denialError(d)
	}
	return uc.productRepo.Delete(id)
}

// denialError mapea la decisión del guard a un error de dominio. WrongTenant e
// InsufficientRole responden lo mismo hacia afuera: no se revela si la tienda
// ajena existe.
func denialError(d authz.Decision) error {
	if d.Reason == authz.ReasonNotAuthenticated {
		return domain.ErrUnauthorized
	}
	return domain.ErrForbidden
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		StoreID:           p.StoreID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		PromotionalPrice:  p.PromotionalPrice,
		StockQuantity:     p.StockQuantity,
		ShelfLocation:     p.ShelfLocation,
		Barcode:           p.Barcode,
		Category:          p.Category,
		ImageURL:          p.ImageURL,
		BackgroundRemoved: p.BackgroundRemoved,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
