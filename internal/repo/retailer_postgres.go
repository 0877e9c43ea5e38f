package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/princesinghgemini-dotcom/veto/internal/models"
)

type PostgresRetailerRepository struct {
	db *sql.DB
}

func NewPostgresRetailerRepository(db *sql.DB) *PostgresRetailerRepository {
	return &PostgresRetailerRepository{db: db}
}

func (r *PostgresRetailerRepository) Create(rt models.Retailer) (models.Retailer, error) {
	rt.ID = uuid.New()
	rt.CreatedAt = time.Now().UTC()

	query := `INSERT INTO retailers (id, name, phone, email, address, location_lat, location_lng, is_active, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.Name, rt.Phone, rt.Email, rt.Address, rt.LocationLat, rt.LocationLng, rt.IsActive, rt.CreatedAt)
	return rt, err
}

func (r *PostgresRetailerRepository) GetAll() ([]models.Retailer, error) {
	query := `SELECT id, name, phone, email, address, location_lat, location_lng, is_active, created_at FROM retailers ORDER BY created_at`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var retailers []models.Retailer
	for rows.Next() {
		var rt models.Retailer
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.Phone, &rt.Email, &rt.Address, &rt.LocationLat, &rt.LocationLng, &rt.IsActive, &rt.CreatedAt); err != nil {
			return nil, err
		}
		retailers = append(retailers, rt)
	}
	return retailers, rows.Err()
}

func (r *PostgresRetailerRepository) GetByID(id uuid.UUID) (models.Retailer, error) {
	query := `SELECT id, name, phone, email, address, location_lat, location_lng, is_active, created_at FROM retailers WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var rt models.Retailer
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.Name, &rt.Phone, &rt.Email, &rt.Address, &rt.LocationLat, &rt.LocationLng, &rt.IsActive, &rt.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Retailer{}, ErrRetailerNotFound
	}
	return rt, err
}

func (r *PostgresRetailerRepository) Update(rt models.Retailer) (models.Retailer, error) {
	query := `UPDATE retailers SET name = $1, phone = $2, email = $3, address = $4, location_lat = $5, location_lng = $6, is_active = $7 WHERE id = $8`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, rt.Name, rt.Phone, rt.Email, rt.Address, rt.LocationLat, rt.LocationLng, rt.IsActive, rt.ID)
	if err != nil {
		return models.Retailer{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.Retailer{}, ErrRetailerNotFound
	}
	return rt, nil
}
