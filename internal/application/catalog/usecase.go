// Package catalog expone el catálogo público de una tienda por slug, sin
// autenticación: es la vitrina que el plan habilita con public_catalog.
package catalog

import (
	"context"

	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

// PDFGenerator puerto de salida para exportar el catálogo como PDF.
type PDFGenerator interface {
	GenerateCatalogPDF(ctx context.Context, store *entity.Store, products []*entity.Product) ([]byte, error)
}

// CatalogUseCase catálogo público (solo lectura, sin tenant del caller:
// el slug identifica la tienda).
type CatalogUseCase struct {
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	pdf         PDFGenerator
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(storeRepo repository.StoreRepository, productRepo repository.ProductRepository, pdf PDFGenerator) *CatalogUseCase {
	return &CatalogUseCase{storeRepo: storeRepo, productRepo: productRepo, pdf: pdf}
}

// Get devuelve la tienda y sus productos para la vitrina pública.
func (uc *CatalogUseCase) Get(slug string, limit, offset int) (*dto.StoreResponse, *dto.ProductListResponse, error) {
	store, err := uc.storeRepo.GetBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		return nil, nil, domain.ErrStoreNotFound
	}
	products, err := uc.productRepo.ListByStore(store.ID, limit, offset)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, dto.ProductResponse{
			ID:                p.ID,
			StoreID:           p.StoreID,
			Name:              p.Name,
			Description:       p.Description,
			Price:             p.Price,
			PromotionalPrice:  p.PromotionalPrice,
			StockQuantity:     p.StockQuantity,
			Category:          p.Category,
			ImageURL:          p.ImageURL,
			BackgroundRemoved: p.BackgroundRemoved,
			CreatedAt:         p.CreatedAt,
			UpdatedAt:         p.UpdatedAt,
		})
	}
	storeOut := &dto.StoreResponse{
		ID:        store.ID,
		OwnerID:   store.OwnerID,
		Name:      store.Name,
		Slug:      store.Slug,
		Plan:      store.Plan,
		PlanLimit: store.PlanLimit,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
	return storeOut, &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ExportPDF genera el catálogo de la tienda en PDF (hasta pdfMaxProducts
// productos, orden del listado).
func (uc *CatalogUseCase) ExportPDF(ctx context.Context, slug string) ([]byte, error) {
	store, err := uc.storeRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrStoreNotFound
	}
	products, err := uc.productRepo.ListByStore(store.ID, pdfMaxProducts, 0)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateCatalogPDF(ctx, store, products)
}

// pdfMaxProducts techo de filas del PDF; por encima de esto el documento
// deja de ser un catálogo imprimible razonable.
const pdfMaxProducts = 500
