package postgres

import (
	"context"
	"fmt"

	"click-counter-service/internal/query/core/domain"
	"click-counter-service/internal/query/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type ClickRepository struct {
	db DB
}

func NewClickRepository(db DB) *ClickRepository {
	return &ClickRepository{db: db}
}

var _ ports.ClickReaderPort = (*ClickRepository)(nil)

const listClicksSQL = `
SELECT id, click_time
FROM clicks
ORDER BY id
`

func (r *ClickRepository) ListClicks(ctx context.Context) ([]domain.ClickEvent, error) {
	rows, err := r.db.QueryContext(ctx, listClicksSQL)
	if err != nil {
		return nil, fmt.Errorf("list clicks: %w", err)
	}
	defer rows.Close()

	var clicks []domain.ClickEvent

	for rows.Next() {
		var c domain.ClickEvent
		if err := rows.Scan(&c.ID, &c.ClickTime); err != nil {
			return nil, fmt.Errorf("scan click: %w", err)
		}
		clicks = append(clicks, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clicks rows: %w", err)
	}

	return clicks, nil
}
