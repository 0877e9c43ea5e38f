package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(p models.Product) (models.Product, error) {
	p.ID = uuid.New()
	p.CreatedAt = time.Now().UTC()

	query := `INSERT INTO products (id, category_id, name, description, manufacturer, is_active, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, p.ID, p.CategoryID, p.Name, p.Description, p.Manufacturer, p.IsActive, p.CreatedAt)
	return p, err
}

func (r *PostgresProductRepository) GetAll(filter ProductFilter) ([]models.Product, error) {
	query := `SELECT id, category_id, name, description, manufacturer, is_active, created_at, updated_at FROM products WHERE 1=1`
	args := []any{}
	argIdx := 1

	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND category_id = $%d", argIdx)
		args = append(args, *filter.CategoryID)
		argIdx++
	}
	if filter.IsActive != nil {
		query += fmt.Sprintf(" AND is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}
	query += " ORDER BY created_at"

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Manufacturer, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetByID(id uuid.UUID) (models.Product, error) {
	query := `SELECT id, category_id, name, description, manufacturer, is_active, created_at, updated_at FROM products WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Manufacturer, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *PostgresProductRepository) Update(p models.Product) (models.Product, error) {
	now := time.Now().UTC()
	p.UpdatedAt = &now

	query := `UPDATE products SET category_id = $1, name = $2, description = $3, manufacturer = $4, is_active = $5, updated_at = $6 WHERE id = $7`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, p.CategoryID, p.Name, p.Description, p.Manufacturer, p.IsActive, p.UpdatedAt, p.ID)
	if err != nil {
		return models.Product{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}
