package ports

import (
	"context"

	"click-counter-service/internal/record/core/domain"
)

type ClickRecorderPort interface {
	// InsertClick persists exactly one new record per call.
	// Duplicate calls produce duplicate records; there is no dedupe.
	InsertClick(ctx context.Context, e *domain.ClickEvent) error
}
