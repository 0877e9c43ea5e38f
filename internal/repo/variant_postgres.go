package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

type PostgresVariantRepository struct {
	db *sql.DB
}

func NewPostgresVariantRepository(db *sql.DB) *PostgresVariantRepository {
	return &PostgresVariantRepository{db: db}
}

func (r *PostgresVariantRepository) Create(v models.ProductVariant) (models.ProductVariant, error) {
	v.ID = uuid.New()
	v.CreatedAt = time.Now().UTC()

	query := `INSERT INTO product_variants (id, product_id, sku, name, unit_size, unit_type, base_price, is_active, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, v.ID, v.ProductID, v.SKU, v.Name, v.UnitSize, v.UnitType, v.BasePrice, v.IsActive, v.CreatedAt)
	if isUniqueViolation(err) {
		return models.ProductVariant{}, ErrDuplicatedValueUnique
	}
	return v, err
}

func (r *PostgresVariantRepository) GetByProduct(productID uuid.UUID) ([]models.ProductVariant, error) {
	query := `SELECT id, product_id, sku, name, unit_size, unit_type, base_price, is_active, created_at FROM product_variants WHERE product_id = $1 ORDER BY created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []models.ProductVariant
	for rows.Next() {
		var v models.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.SKU, &v.Name, &v.UnitSize, &v.UnitType, &v.BasePrice, &v.IsActive, &v.CreatedAt); err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

func (r *PostgresVariantRepository) GetByID(id uuid.UUID) (models.ProductVariant, error) {
	query := `SELECT id, product_id, sku, name, unit_size, unit_type, base_price, is_active, created_at FROM product_variants WHERE id = $1`
	return r.getOne(query, id)
}

func (r *PostgresVariantRepository) GetBySKU(sku string) (models.ProductVariant, error) {
	query := `SELECT id, product_id, sku, name, unit_size, unit_type, base_price, is_active, created_at FROM product_variants WHERE sku = $1`
	return r.getOne(query, sku)
}

func (r *PostgresVariantRepository) getOne(query string, arg any) (models.ProductVariant, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var v models.ProductVariant
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&v.ID, &v.ProductID, &v.SKU, &v.Name, &v.UnitSize, &v.UnitType, &v.BasePrice, &v.IsActive, &v.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProductVariant{}, ErrVariantNotFound
	}
	return v, err
}

func (r *PostgresVariantRepository) Update(v models.ProductVariant) (models.ProductVariant, error) {
	query := `UPDATE product_variants SET sku = $1, name = $2, unit_size = $3, unit_type = $4, base_price = $5, is_active = $6 WHERE id = $7`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, v.SKU, v.Name, v.UnitSize, v.UnitType, v.BasePrice, v.IsActive, v.ID)
	if isUniqueViolation(err) {
		return models.ProductVariant{}, ErrDuplicatedValueUnique
	}
	if err != nil {
		return models.ProductVariant{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.ProductVariant{}, ErrVariantNotFound
	}
	return v, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
