package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *model.Category) error {
	query := `INSERT INTO categories (id, name, description, tags) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.Exec(ctx, query, c.ID, c.Name, c.Description, c.Tags)
	return err
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `SELECT id, name, description, tags FROM categories ORDER BY name`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Tags); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *model.Category) error {
	query := `UPDATE categories SET name=$1, description=$2, tags=$3 WHERE id=$4`
	tag, err := r.DB.Exec(ctx, query, c.Name, c.Description, c.Tags, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM categories WHERE id=$1`
	tag, err := r.DB.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("category not found")
	}
	return nil
}
