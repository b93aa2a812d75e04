package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

const storeColumns = `id, COALESCE(owner_id::text, ''), store_name, store_slug, plan, plan_limit, created_at, updated_at`

// Create persiste una nueva tienda. Slug duplicado -> domain.ErrSlugAlreadyExists
// (el caller reintenta con sufijo).
func (r *StoreRepo) Create(s *entity.Store) error {
	query := `
		INSERT INTO stores (id, owner_id, store_name, store_slug, plan, plan_limit, created_at, updated_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.OwnerID, s.Name, s.Slug, s.Plan, s.PlanLimit, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if uniqueViolationOn(err, "stores_store_slug_key") {
			return domain.ErrSlugAlreadyExists
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID. (nil, nil) si no existe.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	return r.scanOne(`SELECT `+storeColumns+` FROM stores WHERE id = $1`, id)
}

// GetBySlug obtiene una tienda por slug (catálogo público).
func (r *StoreRepo) GetBySlug(slug string) (*entity.Store, error) {
	return r.scanOne(`SELECT `+storeColumns+` FROM stores WHERE store_slug = $1`, slug)
}

// GetForUpdate bloquea la fila de la tienda (SELECT FOR UPDATE). Solo tiene
// sentido dentro de una tx: serializa el conteo + insert del guard de cuota.
func (r *StoreRepo) GetForUpdate(id string) (*entity.Store, error) {
	return r.scanOne(`SELECT `+storeColumns+` FROM stores WHERE id = $1 FOR UPDATE`, id)
}

func (r *StoreRepo) scanOne(query string, arg any) (*entity.Store, error) {
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Slug, &s.Plan, &s.PlanLimit, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// UpdatePlan escribe plan y plan_limit en UNA sentencia y devuelve la fila
// resultante. Un lector concurrente ve el par viejo o el par nuevo, nunca una
// mezcla. (nil, nil) si la tienda no existe.
func (r *StoreRepo) UpdatePlan(id, plan string, planLimit int) (*entity.Store, error) {
	query := `
		UPDATE stores SET plan = $2, plan_limit = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + storeColumns
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, id, plan, planLimit).Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Slug, &s.Plan, &s.PlanLimit, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update store plan: %w", err)
	}
	return &s, nil
}

// UpdateName cambia el nombre visible (el slug queda fijo).
func (r *StoreRepo) UpdateName(id, name string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE stores SET store_name = $2, updated_at = now() WHERE id = $1`, id, name)
	if err != nil {
		return fmt.Errorf("update store name: %w", err)
	}
	return nil
}

// List lista todas las tiendas con paginación (panel admin).
func (r *StoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Name, &s.Slug, &s.Plan, &s.PlanLimit, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
