package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/FotoStock-api/internal/domain/entity"
	"github.com/jhoicas/FotoStock-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, store_id, name, COALESCE(description, ''), price, promotional_price,
	stock_quantity, COALESCE(shelf_location, ''), COALESCE(barcode, ''), COALESCE(category, ''),
	COALESCE(image_url, ''), COALESCE(image_original_url, ''), background_removed,
	COALESCE(invoice_url, ''), COALESCE(created_by::text, ''), created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products (id, store_id, name, description, price, promotional_price,
			stock_quantity, shelf_location, barcode, category, image_url, image_original_url,
			background_removed, invoice_url, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NULLIF($15, '')::uuid, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.StoreID, p.Name, p.Description, p.Price, p.PromotionalPrice,
		p.StockQuantity, p.ShelfLocation, p.Barcode, p.Category, p.ImageURL, p.ImageOriginalURL,
		p.BackgroundRemoved, p.InvoiceURL, p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.scanOne(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila del producto (ventas concurrentes).
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.scanOne(`SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProductRepo) scanOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.StoreID, &p.Name, &p.Description, &p.Price, &p.PromotionalPrice,
		&p.StockQuantity, &p.ShelfLocation, &p.Barcode, &p.Category,
		&p.ImageURL, &p.ImageOriginalURL, &p.BackgroundRemoved,
		&p.InvoiceURL, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, promotional_price = $5,
			stock_quantity = $6, shelf_location = $7, barcode = $8, category = $9,
			image_url = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.Price, p.PromotionalPrice,
		p.StockQuantity, p.ShelfLocation, p.Barcode, p.Category,
		p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock fija la cantidad en stock (usar con la fila bloqueada).
func (r *ProductRepo) UpdateStock(id string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_quantity = $2, updated_at = now() WHERE id = $1`, id, quantity)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// ListByStore lista los productos de una tienda con paginación.
func (r *ProductRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE store_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.StoreID, &p.Name, &p.Description, &p.Price, &p.PromotionalPrice,
			&p.StockQuantity, &p.ShelfLocation, &p.Barcode, &p.Category,
			&p.ImageURL, &p.ImageOriginalURL, &p.BackgroundRemoved,
			&p.InvoiceURL, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountByStore cuenta los productos de la tienda. Es el conteo autoritativo
// del guard de cuota: se ejecuta dentro de la misma tx que el insert.
func (r *ProductRepo) CountByStore(storeID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM products WHERE store_id = $1`, storeID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
