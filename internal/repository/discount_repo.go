package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

type DiscountRepository struct {
	DB *pgxpool.Pool
}

func NewDiscountRepository(db *pgxpool.Pool) *DiscountRepository {
	return &DiscountRepository{DB: db}
}

// Scope and conditions are jsonb columns; their shapes are open-ended.
func (r *DiscountRepository) Create(ctx context.Context, d *model.Discount) error {
	scope, err := json.Marshal(d.AppliesTo)
	if err != nil {
		return err
	}
	conds, err := json.Marshal(d.Conditions)
	if err != nil {
		return err
	}
	query := `INSERT INTO discounts (code, type, value, active, appliesto, conditions) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.DB.Exec(ctx, query, d.Code, d.Type, d.Value, d.Active, scope, conds)
	return err
}

func (r *DiscountRepository) List(ctx context.Context) ([]model.Discount, error) {
	query := `SELECT code, type, value, active, appliesto, conditions FROM discounts ORDER BY code`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Discount
	for rows.Next() {
		var d model.Discount
		var scope, conds []byte
		if err := rows.Scan(&d.Code, &d.Type, &d.Value, &d.Active, &scope, &conds); err != nil {
			return nil, err
		}
		if len(scope) > 0 {
			if err := json.Unmarshal(scope, &d.AppliesTo); err != nil {
				return nil, err
			}
		}
		if len(conds) > 0 {
			if err := json.Unmarshal(conds, &d.Conditions); err != nil {
				return nil, err
			}
		}
		list = append(list, d)
	}
	return list, nil
}

func (r *DiscountRepository) Update(ctx context.Context, code string, d *model.Discount) error {
	scope, err := json.Marshal(d.AppliesTo)
	if err != nil {
		return err
	}
	conds, err := json.Marshal(d.Conditions)
	if err != nil {
		return err
	}
	query := `UPDATE discounts SET type=$1, value=$2, appliesto=$3, conditions=$4 WHERE code=$5`
	tag, err := r.DB.Exec(ctx, query, d.Type, d.Value, scope, conds, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("discount not found")
	}
	return nil
}

func (r *DiscountRepository) Toggle(ctx context.Context, code string) error {
	query := `UPDATE discounts SET active = NOT active WHERE code=$1`
	tag, err := r.DB.Exec(ctx, query, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("discount not found")
	}
	return nil
}

func (r *DiscountRepository) Delete(ctx context.Context, code string) error {
	query := `DELETE FROM discounts WHERE code=$1`
	tag, err := r.DB.Exec(ctx, query, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("discount not found")
	}
	return nil
}
