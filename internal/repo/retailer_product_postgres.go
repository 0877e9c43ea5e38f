package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

type PostgresRetailerProductRepository struct {
	db *sql.DB
}

func NewPostgresRetailerProductRepository(db *sql.DB) *PostgresRetailerProductRepository {
	return &PostgresRetailerProductRepository{db: db}
}

func (r *PostgresRetailerProductRepository) Create(m models.RetailerProduct) (models.RetailerProduct, error) {
	m.ID = uuid.New()
	m.CreatedAt = time.Now().UTC()

	query := `INSERT INTO retailer_products (id, retailer_id, product_variant_id, price, stock_quantity, is_available, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, m.ID, m.RetailerID, m.ProductVariantID, m.Price, m.StockQuantity, m.IsAvailable, m.CreatedAt)
	if isUniqueViolation(err) {
		return models.RetailerProduct{}, ErrDuplicatedValueUnique
	}
	return m, err
}

func (r *PostgresRetailerProductRepository) GetByRetailer(retailerID uuid.UUID) ([]models.RetailerProduct, error) {
	query := `SELECT id, retailer_id, product_variant_id, price, stock_quantity, is_available, created_at, updated_at FROM retailer_products WHERE retailer_id = $1 ORDER BY created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, retailerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mappings []models.RetailerProduct
	for rows.Next() {
		var m models.RetailerProduct
		if err := rows.Scan(&m.ID, &m.RetailerID, &m.ProductVariantID, &m.Price, &m.StockQuantity, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

func (r *PostgresRetailerProductRepository) GetByID(id uuid.UUID) (models.RetailerProduct, error) {
	query := `SELECT id, retailer_id, product_variant_id, price, stock_quantity, is_available, created_at, updated_at FROM retailer_products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m models.RetailerProduct
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.RetailerID, &m.ProductVariantID, &m.Price, &m.StockQuantity, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RetailerProduct{}, ErrMappingNotFound
	}
	return m, err
}

func (r *PostgresRetailerProductRepository) GetRetailerVariant(retailerID, variantID uuid.UUID) (models.RetailerProduct, error) {
	query := `SELECT id, retailer_id, product_variant_id, price, stock_quantity, is_available, created_at, updated_at FROM retailer_products WHERE retailer_id = $1 AND product_variant_id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var m models.RetailerProduct
	err := r.db.QueryRowContext(ctx, query, retailerID, variantID).Scan(&m.ID, &m.RetailerID, &m.ProductVariantID, &m.Price, &m.StockQuantity, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RetailerProduct{}, ErrMappingNotFound
	}
	return m, err
}

func (r *PostgresRetailerProductRepository) Update(m models.RetailerProduct) (models.RetailerProduct, error) {
	now := time.Now().UTC()
	m.UpdatedAt = &now

	query := `UPDATE retailer_products SET price = $1, stock_quantity = $2, is_available = $3, updated_at = $4 WHERE id = $5`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, m.Price, m.StockQuantity, m.IsAvailable, m.UpdatedAt, m.ID)
	if err != nil {
		return models.RetailerProduct{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.RetailerProduct{}, ErrMappingNotFound
	}
	return m, nil
}
