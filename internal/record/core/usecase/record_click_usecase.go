package usecase

import (
	"context"
	"time"

	"click-counter-service/internal/record/core/domain"
	"click-counter-service/internal/record/core/ports"
)

type RecordClickUseCase struct {
	repo ports.ClickRecorderPort
}

func NewRecordClickUseCase(repo ports.ClickRecorderPort) *RecordClickUseCase {
	return &RecordClickUseCase{repo: repo}
}

// Execute stamps the click with the server clock and persists it. The request
// carries no payload, so there is nothing to validate. The timestamp is taken
// here rather than from the client, which makes network latency visible as
// lag between the click and the count update.
func (uc *RecordClickUseCase) Execute(ctx context.Context) error {
	e := &domain.ClickEvent{
		ClickTime: time.Now().UTC(),
	}

	return uc.repo.InsertClick(ctx, e)
}
