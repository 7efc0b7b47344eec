package postgres

import (
	"context"
	"fmt"

	"click-counter-service/internal/record/core/domain"
	"click-counter-service/internal/record/core/ports"
)

type ClickRepository struct {
	db DB
}

func NewClickRepository(db DB) *ClickRepository {
	return &ClickRepository{db: db}
}

var _ ports.ClickRecorderPort = (*ClickRepository)(nil)

// SQL template
const insertClickSQL = `
INSERT INTO clicks (click_time) VALUES ($1);
`

func (r *ClickRepository) InsertClick(ctx context.Context, e *domain.ClickEvent) error {
	res, err := r.db.ExecContext(ctx, insertClickSQL, e.ClickTime)
	if err != nil {
		return fmt.Errorf("insert click: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert click rows affected: %w", err)
	}
	if rows != 1 {
		return fmt.Errorf("insert click: expected 1 row affected, got %d", rows)
	}

	return nil
}
