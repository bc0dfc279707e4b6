package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

type RefundRepository struct {
	DB *pgxpool.Pool
}

func NewRefundRepository(db *pgxpool.Pool) *RefundRepository {
	return &RefundRepository{DB: db}
}

func (r *RefundRepository) List(ctx context.Context) ([]model.RefundRequest, error) {
	query := `SELECT id, orderid, reason, status, resolved_at FROM refund_requests ORDER BY id`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.RefundRequest
	for rows.Next() {
		var req model.RefundRequest
		var resolvedAt *time.Time
		if err := rows.Scan(&req.ID, &req.OrderID, &req.Reason, &req.Status, &resolvedAt); err != nil {
			return nil, err
		}
		if resolvedAt != nil {
			req.ResolvedAt = resolvedAt.Format("2006-01-02")
		}
		list = append(list, req)
	}
	return list, nil
}

func (r *RefundRepository) SetStatus(ctx context.Context, id, status string) error {
	query := `UPDATE refund_requests SET status=$1, resolved_at=$2 WHERE id=$3`
	tag, err := r.DB.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("refund request not found")
	}
	return nil
}
