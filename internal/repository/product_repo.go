package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

const productColumns = `id, name, brand, price, originalprice, rating, reviews, images, sizes, colors, category, subtype, description, specs, available, quantity, created_at, deleted_at`

func scanProduct(row interface{ Scan(...any) error }) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Brand, &p.Price, &p.OriginalPrice, &p.Rating, &p.Reviews,
		&p.Images, &p.Sizes, &p.Colors, &p.Category, &p.Subtype, &p.Description, &p.Specs,
		&p.Available, &p.Quantity, &p.CreatedAt, &p.DeletedAt)
	return p, err
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) (int64, error) {
	var id int64
	query := `INSERT INTO products (name, brand, price, originalprice, rating, reviews, images, sizes, colors, category, subtype, description, specs, available, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`
	if err := r.DB.QueryRow(ctx, query, p.Name, p.Brand, p.Price, p.OriginalPrice, p.Rating, p.Reviews,
		p.Images, p.Sizes, p.Colors, p.Category, p.Subtype, p.Description, p.Specs,
		p.Available, p.Quantity, time.Now()).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1 AND deleted_at IS NULL`
	p, err := scanProduct(r.DB.QueryRow(ctx, query, id))
	if err != nil {
		return nil, errors.New("product not found")
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE deleted_at IS NULL ORDER BY id`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	query := `UPDATE products SET name=$1, brand=$2, price=$3, originalprice=$4, rating=$5, reviews=$6, images=$7, sizes=$8, colors=$9, category=$10, subtype=$11, description=$12, specs=$13, available=$14, quantity=$15
		WHERE id=$16 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, p.Name, p.Brand, p.Price, p.OriginalPrice, p.Rating, p.Reviews,
		p.Images, p.Sizes, p.Colors, p.Category, p.Subtype, p.Description, p.Specs,
		p.Available, p.Quantity, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found or deleted")
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	query := `UPDATE products SET deleted_at=$1 WHERE id=$2 AND deleted_at IS NULL`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found or already deleted")
	}
	return nil
}
