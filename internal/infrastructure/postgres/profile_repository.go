package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/FotoStock-api/internal/domain"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo implementación del puerto ProfileRepository sobre PostgreSQL.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

const profileColumns = `id, email, full_name, role, COALESCE(store_id::text, ''), password_hash, COALESCE(created_by::text, ''), created_at, updated_at`

// Create persiste un nuevo perfil. store_id se guarda NULL para admin.
func (r *ProfileRepo) Create(p *entity.Profile) error {
	query := `
		INSERT INTO profiles (id, email, full_name, role, store_id, password_hash, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, NULLIF($7, '')::uuid, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Email, p.FullName, p.Role, p.StoreID, p.PasswordHash, p.CreatedBy,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por ID. (nil, nil) si no existe.
func (r *ProfileRepo) GetByID(id string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByEmail obtiene un perfil por email. (nil, nil) si no existe.
func (r *ProfileRepo) GetByEmail(email string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1 LIMIT 1`
	return r.scanOne(query, email)
}

func (r *ProfileRepo) scanOne(query string, arg any) (*entity.Profile, error) {
	var p entity.Profile
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Email, &p.FullName, &p.Role, &p.StoreID, &p.PasswordHash, &p.CreatedBy,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Update actualiza email, nombre y hash. El store_id NO se toca: el binding
// perfil->tienda es inmutable salvo override de admin (UpdateRole no lo cambia
// tampoco; re-atar tiendas es una operación de soporte fuera de la API).
func (r *ProfileRepo) Update(p *entity.Profile) error {
	query := `
		UPDATE profiles SET email = $2, full_name = $3, password_hash = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Email, p.FullName, p.PasswordHash, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// UpdateRole cambia solo el rol (override de admin).
func (r *ProfileRepo) UpdateRole(id, role string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE profiles SET role = $2, updated_at = now() WHERE id = $1`, id, role)
	if err != nil {
		return fmt.Errorf("update profile role: %w", err)
	}
	return nil
}

// ListByStore lista los perfiles de una tienda con paginación.
func (r *ProfileRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Profile, error) {
	query := `SELECT ` + profileColumns + `
		FROM profiles WHERE store_id = $1 ORDER BY created_at LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profile
	for rows.Next() {
		var p entity.Profile
		if err := rows.Scan(&p.ID, &p.Email, &p.FullName, &p.Role, &p.StoreID, &p.PasswordHash, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
