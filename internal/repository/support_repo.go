package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anhngoc0603/sneakerstore/internal/model"
)

type SupportRepository struct {
	DB *pgxpool.Pool
}

func NewSupportRepository(db *pgxpool.Pool) *SupportRepository {
	return &SupportRepository{DB: db}
}

func (r *SupportRepository) List(ctx context.Context) ([]model.SupportTicket, error) {
	query := `SELECT id, customer, subject, status, assignedto, updated_at FROM support_tickets ORDER BY updated_at DESC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.SupportTicket
	for rows.Next() {
		var t model.SupportTicket
		var updatedAt time.Time
		if err := rows.Scan(&t.ID, &t.User, &t.Subject, &t.Status, &t.AssignedTo, &updatedAt); err != nil {
			return nil, err
		}
		t.UpdatedAt = updatedAt.Format("2006-01-02")
		list = append(list, t)
	}
	return list, nil
}

func (r *SupportRepository) Assign(ctx context.Context, id, assignee string) error {
	query := `UPDATE support_tickets SET status='In Progress', assignedto=$1, updated_at=$2 WHERE id=$3`
	tag, err := r.DB.Exec(ctx, query, assignee, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("ticket not found")
	}
	return nil
}
