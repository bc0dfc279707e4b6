package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

type BlogRepository struct {
	DB *pgxpool.Pool
}

func NewBlogRepository(db *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{DB: db}
}

func (r *BlogRepository) Create(ctx context.Context, b *model.Blog) error {
	query := `INSERT INTO blogs (id, title, author, images, tags, body) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.Exec(ctx, query, b.ID, b.Title, b.Author, b.Images, b.Tags, b.Body)
	return err
}

func (r *BlogRepository) List(ctx context.Context) ([]model.Blog, error) {
	query := `SELECT id, title, author, images, tags, body FROM blogs ORDER BY id`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Blog
	for rows.Next() {
		var b model.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Images, &b.Tags, &b.Body); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, nil
}

func (r *BlogRepository) Update(ctx context.Context, b *model.Blog) error {
	query := `UPDATE blogs SET title=$1, author=$2, images=$3, tags=$4, body=$5 WHERE id=$6`
	tag, err := r.DB.Exec(ctx, query, b.Title, b.Author, b.Images, b.Tags, b.Body, b.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("blog not found")
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM blogs WHERE id=$1`
	tag, err := r.DB.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("blog not found")
	}
	return nil
}
