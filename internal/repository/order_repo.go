package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Order items are stored as a jsonb column; the line shapes vary too much
// across feeds to normalize into rows.
func (r *OrderRepository) Create(ctx context.Context, o *model.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	query := `INSERT INTO orders (id, customerid, customer, items, total, status, eta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.DB.Exec(ctx, query, o.ID, o.CustomerID, o.DisplayCustomer(), items, o.Total, o.Status, o.ETA, time.Now())
	return err
}

func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT id, customerid, customer, items, total, status, eta, created_at FROM orders ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Order
	for rows.Next() {
		var o model.Order
		var items []byte
		var createdAt time.Time
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Customer, &items, &o.Total, &o.Status, &o.ETA, &createdAt); err != nil {
			return nil, err
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &o.Items); err != nil {
				return nil, err
			}
		}
		o.CreatedAt = createdAt.Format(time.RFC3339)
		list = append(list, o)
	}
	return list, nil
}

func (r *OrderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	query := `SELECT id, customerid, customer, items, total, status, eta, created_at FROM orders WHERE customerid=$1 ORDER BY created_at DESC`
	rows, err := r.DB.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Order
	for rows.Next() {
		var o model.Order
		var items []byte
		var createdAt time.Time
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Customer, &items, &o.Total, &o.Status, &o.ETA, &createdAt); err != nil {
			return nil, err
		}
		if len(items) > 0 {
			if err := json.Unmarshal(items, &o.Items); err != nil {
				return nil, err
			}
		}
		o.CreatedAt = createdAt.Format(time.RFC3339)
		list = append(list, o)
	}
	return list, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE orders SET status=$1 WHERE id=$2`
	tag, err := r.DB.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}
