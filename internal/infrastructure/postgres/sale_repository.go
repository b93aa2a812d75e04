package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, store_id, COALESCE(product_id::text, ''), COALESCE(sold_by::text, ''), quantity, sale_price, sale_date, created_at`

// Create persiste una venta.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, store_id, product_id, sold_by, quantity, sale_price, sale_date, created_at)
		VALUES ($1, $2, $3, NULLIF($4, '')::uuid, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.StoreID, s.ProductID, s.SoldBy, s.Quantity, s.SalePrice, s.SaleDate, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByStore lista las ventas de la tienda, más recientes primero.
func (r *SaleRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + `
		FROM sales WHERE store_id = $1 ORDER BY sale_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListByStoreAndDate lista ventas en un rango [from, to).
func (r *SaleRepo) ListByStoreAndDate(storeID string, from, to time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + `
		FROM sales WHERE store_id = $1 AND sale_date >= $2 AND sale_date < $3 ORDER BY sale_date`
	rows, err := r.q.Query(context.Background(), query, storeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales by date: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

type saleRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanSales(rows saleRows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.StoreID, &s.ProductID, &s.SoldBy, &s.Quantity, &s.SalePrice, &s.SaleDate, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
