package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

type PostgresCategoryRepository struct {
	db *sql.DB
}

func NewPostgresCategoryRepository(db *sql.DB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

func (r *PostgresCategoryRepository) Create(c models.ProductCategory) (models.ProductCategory, error) {
	c.ID = uuid.New()
	c.CreatedAt = time.Now().UTC()

	query := `INSERT INTO product_categories (id, name, description, parent_id, created_at) VALUES ($1, $2, $3, $4, $5)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Description, c.ParentID, c.CreatedAt)
	return c, err
}

func (r *PostgresCategoryRepository) GetAll() ([]models.ProductCategory, error) {
	query := `SELECT id, name, description, parent_id, created_at FROM product_categories ORDER BY created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCategories(rows)
}

func (r *PostgresCategoryRepository) GetChildren(parentID uuid.UUID) ([]models.ProductCategory, error) {
	query := `SELECT id, name, description, parent_id, created_at FROM product_categories WHERE parent_id = $1 ORDER BY created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCategories(rows)
}

func (r *PostgresCategoryRepository) GetByID(id uuid.UUID) (models.ProductCategory, error) {
	query := `SELECT id, name, description, parent_id, created_at FROM product_categories WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var c models.ProductCategory
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.ParentID, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ProductCategory{}, ErrCategoryNotFound
	}
	return c, err
}

func (r *PostgresCategoryRepository) Update(c models.ProductCategory) (models.ProductCategory, error) {
	query := `UPDATE product_categories SET name = $1, description = $2, parent_id = $3 WHERE id = $4`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, c.Name, c.Description, c.ParentID, c.ID)
	if err != nil {
		return models.ProductCategory{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.ProductCategory{}, ErrCategoryNotFound
	}
	return c, nil
}

func scanCategories(rows *sql.Rows) ([]models.ProductCategory, error) {
	var categories []models.ProductCategory
	for rows.Next() {
		var c models.ProductCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ParentID, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
