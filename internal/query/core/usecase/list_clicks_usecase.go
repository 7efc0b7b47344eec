package usecase

import (
	"context"

	"click-counter-service/internal/query/core/domain"
	"click-counter-service/internal/query/core/ports"
)

type ListClicksUseCase struct {
	reader ports.ClickReaderPort
}

func NewListClicksUseCase(reader ports.ClickReaderPort) *ListClicksUseCase {
	return &ListClicksUseCase{reader: reader}
}

// Execute reads every stored click. No pagination, filtering, or sorting
// beyond insertion order; the payload grows with the collection.
func (uc *ListClicksUseCase) Execute(ctx context.Context) ([]domain.ClickEvent, error) {
	clicks, err := uc.reader.ListClicks(ctx)
	if err != nil {
		return nil, err
	}

	// An empty collection must serialize as [], never null.
	if clicks == nil {
		clicks = []domain.ClickEvent{}
	}

	return clicks, nil
}
