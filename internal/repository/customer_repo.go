package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) (int64, error) {
	var id int64
	query := `INSERT INTO customers (name, email, phone, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, c.Name, c.Email, c.Phone, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	query := `SELECT id, name, email, phone, created_at, deleted_at FROM customers WHERE id=$1 AND deleted_at IS NULL`
	if err := r.DB.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.DeletedAt); err != nil {
		return nil, errors.New("customer not found")
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]model.Customer, error) {
	query := `SELECT id, name, email, phone, created_at, deleted_at FROM customers WHERE deleted_at IS NULL ORDER BY id`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.DeletedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `UPDATE customers SET name=$1, email=$2, phone=$3 WHERE id=$4 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, c.Name, c.Email, c.Phone, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("customer not found or deleted")
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	query := `UPDATE customers SET deleted_at=$1 WHERE id=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("customer not found or already deleted")
	}
	return nil
}
