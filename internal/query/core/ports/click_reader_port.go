package ports

import (
	"context"

	"click-counter-service/internal/query/core/domain"
)

type ClickReaderPort interface {
	// ListClicks returns the full contents of the clicks collection in
	// insertion order. An empty collection is an empty slice, not an error.
	ListClicks(ctx context.Context) ([]domain.ClickEvent, error)
}
