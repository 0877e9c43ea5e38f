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

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) Create(o models.Order, items []models.OrderItem) (models.Order, []models.OrderItem, error) {
	o.ID = uuid.New()
	o.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, nil, err
	}
	defer tx.Rollback()

	orderQuery := `INSERT INTO orders (id, farmer_id, retailer_id, diagnosis_case_id, source_type, status, total_amount, delivery_address, notes, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := tx.ExecContext(ctx, orderQuery, o.ID, o.FarmerID, o.RetailerID, o.DiagnosisCaseID, o.SourceType, o.Status, o.TotalAmount, o.DeliveryAddress, o.Notes, o.CreatedAt); err != nil {
		return models.Order{}, nil, err
	}

	itemQuery := `INSERT INTO order_items (id, order_id, product_variant_id, quantity, unit_price, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	created := make([]models.OrderItem, len(items))
	for i, item := range items {
		item.ID = uuid.New()
		item.OrderID = o.ID
		item.CreatedAt = o.CreatedAt
		if _, err := tx.ExecContext(ctx, itemQuery, item.ID, item.OrderID, item.ProductVariantID, item.Quantity, item.UnitPrice, item.CreatedAt); err != nil {
			return models.Order{}, nil, err
		}
		created[i] = item
	}

	if err := tx.Commit(); err != nil {
		return models.Order{}, nil, err
	}
	return o, created, nil
}

func (r *PostgresOrderRepository) GetAll(filter OrderFilter) ([]models.Order, error) {
	query := `SELECT id, farmer_id, retailer_id, diagnosis_case_id, source_type, status, total_amount, delivery_address, notes, created_at, updated_at FROM orders WHERE 1=1`
	args := []any{}
	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.RetailerID != nil {
		query += fmt.Sprintf(" AND retailer_id = $%d", argIdx)
		args = append(args, *filter.RetailerID)
		argIdx++
	}
	if filter.FarmerID != nil {
		query += fmt.Sprintf(" AND farmer_id = $%d", argIdx)
		args = append(args, *filter.FarmerID)
		argIdx++
	}
	query += " ORDER BY created_at DESC"

	if filter.Limit != nil && *filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *filter.Limit)
		argIdx++
	}
	if filter.Offset != nil && *filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *filter.Offset)
		argIdx++
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.FarmerID, &o.RetailerID, &o.DiagnosisCaseID, &o.SourceType, &o.Status, &o.TotalAmount, &o.DeliveryAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *PostgresOrderRepository) GetWithItems(id uuid.UUID) (models.Order, []models.OrderItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	orderQuery := `SELECT id, farmer_id, retailer_id, diagnosis_case_id, source_type, status, total_amount, delivery_address, notes, created_at, updated_at FROM orders WHERE id = $1`
	var o models.Order
	err := r.db.QueryRowContext(ctx, orderQuery, id).Scan(&o.ID, &o.FarmerID, &o.RetailerID, &o.DiagnosisCaseID, &o.SourceType, &o.Status, &o.TotalAmount, &o.DeliveryAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, nil, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, nil, err
	}

	itemQuery := `SELECT id, order_id, product_variant_id, quantity, unit_price, created_at FROM order_items WHERE order_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, itemQuery, id)
	if err != nil {
		return models.Order{}, nil, err
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductVariantID, &item.Quantity, &item.UnitPrice, &item.CreatedAt); err != nil {
			return models.Order{}, nil, err
		}
		items = append(items, item)
	}
	return o, items, rows.Err()
}

func (r *PostgresOrderRepository) UpdateStatus(id uuid.UUID, status string, notes *string) (models.Order, error) {
	query := `
		UPDATE orders
		SET status = $1, notes = COALESCE($2, notes), updated_at = $3
		WHERE id = $4
		RETURNING id, farmer_id, retailer_id, diagnosis_case_id, source_type, status, total_amount, delivery_address, notes, created_at, updated_at
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var o models.Order
	err := r.db.QueryRowContext(ctx, query, status, notes, time.Now().UTC(), id).
		Scan(&o.ID, &o.FarmerID, &o.RetailerID, &o.DiagnosisCaseID, &o.SourceType, &o.Status, &o.TotalAmount, &o.DeliveryAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}
