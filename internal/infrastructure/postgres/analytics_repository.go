package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura (dashboard y panel admin).
// Siempre sobre el pool: no participa en transacciones.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetStoreStats métricas del dashboard en una sola pasada.
func (r *AnalyticsRepo) GetStoreStats(storeID string, lowStockThreshold int) (*repository.StoreStats, error) {
	query := `
		SELECT
			(SELECT count(*) FROM products WHERE store_id = $1),
			(SELECT count(*) FROM products WHERE store_id = $1 AND stock_quantity <= $2),
			(SELECT count(*) FROM sales WHERE store_id = $1 AND sale_date >= date_trunc('day', now())),
			(SELECT COALESCE(sum(sale_price * quantity), 0) FROM sales WHERE store_id = $1 AND sale_date >= date_trunc('day', now()))`
	var stats repository.StoreStats
	var revenue decimal.Decimal
	err := r.pool.QueryRow(context.Background(), query, storeID, lowStockThreshold).Scan(
		&stats.TotalProducts, &stats.LowStockCount, &stats.SalesToday, &revenue,
	)
	if err != nil {
		return nil, fmt.Errorf("get store stats: %w", err)
	}
	stats.RevenueToday = revenue
	return &stats, nil
}

// ListStoresWithCounts todas las tiendas con su conteo de productos y el email
// del owner (panel admin).
func (r *AnalyticsRepo) ListStoresWithCounts(limit, offset int) ([]*repository.AdminStoreRow, error) {
	query := `
		SELECT s.id, s.store_name, s.store_slug, s.plan, s.plan_limit,
			(SELECT count(*) FROM products p WHERE p.store_id = s.id),
			COALESCE(pr.email, '')
		FROM stores s
		LEFT JOIN profiles pr ON pr.id = s.owner_id
		ORDER BY s.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stores with counts: %w", err)
	}
	defer rows.Close()
	var list []*repository.AdminStoreRow
	for rows.Next() {
		var row repository.AdminStoreRow
		if err := rows.Scan(&row.StoreID, &row.StoreName, &row.Slug, &row.Plan, &row.PlanLimit, &row.ProductCount, &row.OwnerEmail); err != nil {
			return nil, fmt.Errorf("scan admin store row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}
