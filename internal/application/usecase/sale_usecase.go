package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/FotoStock-api/internal/application/dto"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/authz"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

// SaleUseCase registra ventas de forma transaccional: bloqueo de la fila del
// producto, descuento de stock e inserción de la venta, todo o nada.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// Register registra una venta de la tienda del caller. Si el stock resultante
// queda por debajo del umbral, emite una notificación low_stock en la misma tx.
func (uc *SaleUseCase) Register(ctx context.Context, profile *entity.Profile, storeID string, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if d := authz.Authorize(profile, storeID, authz.ActionRegisterSale); !d.Allowed {
		return nil, denialError(d)
	}
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		ProductID: in.ProductID,
		SoldBy:    profile.ID,
		Quantity:  in.Quantity,
		SaleDate:  now,
		CreatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.StoreRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		notificationRepo repository.NotificationRepository,
	) error {
		// Bloquea la fila del producto: dos ventas concurrentes no pueden
		// descontar el mismo stock dos veces.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil || product.StoreID != storeID {
			// Producto inexistente o de otra tienda: mismo not-found.
			return domain.ErrNotFound
		}
		if product.StockQuantity < in.Quantity {
			return domain.ErrInsufficientStock
		}

		if in.SalePrice != nil {
			sale.SalePrice = *in.SalePrice
		} else {
			sale.SalePrice = product.EffectivePrice()
		}

		newStock := product.StockQuantity - in.Quantity
		if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
			return err
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		if newStock <= entity.LowStockThreshold {
			n := &entity.Notification{
				ID:        uuid.New().String(),
				StoreID:   storeID,
				Type:      entity.NotificationLowStock,
				Message:   fmt.Sprintf("Stock bajo: %q quedó con %d unidades", product.Name, newStock),
				CreatedAt: now,
			}
			if err := notificationRepo.Create(n); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// List lista las ventas de la tienda con paginación.
func (uc *SaleUseCase) List(profile *entity.Profile, storeID string, limit, offset int) (*dto.SaleListResponse, error) {
	if d := authz.Authorize(profile, storeID, authz.ActionViewDashboard); !d.Allowed {
		return nil, denialError(d)
	}
	sales, err := uc.saleRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		StoreID:   s.StoreID,
		ProductID: s.ProductID,
		SoldBy:    s.SoldBy,
		Quantity:  s.Quantity,
		SalePrice: s.SalePrice,
		Total:     s.Total(),
		SaleDate:  s.SaleDate,
	}
}
