package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/FotoStock-api/internal/application/auth"
	"github.com/jhoicas/FotoStock-api/internal/application/usecase"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.TxRunner and auth.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)
var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Es la pieza que cierra la carrera count-then-insert del
// guard de cuota: el SELECT FOR UPDATE de la tienda, el conteo y el insert
// comparten la misma tx.
func (r *TxRunner) Run(ctx context.Context, fn func(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	notificationRepo repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	storeRepo := NewStoreRepository(tx)
	productRepo := NewProductRepository(tx)
	saleRepo := NewSaleRepository(tx)
	notificationRepo := NewNotificationRepository(tx)

	if err := fn(storeRepo, productRepo, saleRepo, notificationRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSignup inicia una transacción con los repos de perfil y tienda: el alta
// de tienda + perfil owner es todo o nada.
func (r *TxRunner) RunSignup(ctx context.Context, fn func(
	profileRepo repository.ProfileRepository,
	storeRepo repository.StoreRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	profileRepo := NewProfileRepository(tx)
	storeRepo := NewStoreRepository(tx)

	if err := fn(profileRepo, storeRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
