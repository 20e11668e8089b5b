package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// Request модели

// CreateTimeBlockRequest запрос на блокировку интервала времени
type CreateTimeBlockRequest struct {
	CreatedBy uuid.UUID `json:"-"`
	StartTime time.Time `json:"startTime"` // RFC3339
	EndTime   time.Time `json:"endTime"`   // RFC3339
	Reason    *string   `json:"reason,omitempty"`
}

// ListTimeBlocksRequest запрос на блокировки за период
type ListTimeBlocksRequest struct {
	From string `json:"from"` // "2024-01-05", включительно
	To   string `json:"to"`   // "2024-01-07", включительно
}

// Response модели

// TimeBlockResponse ответ с данными блокировки
type TimeBlockResponse struct {
	ID        int64     `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Reason    *string   `json:"reason,omitempty"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// TimeBlockListResponse ответ со списком блокировок
type TimeBlockListResponse struct {
	TimeBlocks []TimeBlockResponse `json:"timeBlocks"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateTimeBlockRequest) ToDomain() *domain.TimeBlock {
	return &domain.TimeBlock{
		StartTime: r.StartTime.UTC(),
		EndTime:   r.EndTime.UTC(),
		Reason:    r.Reason,
		CreatedBy: r.CreatedBy,
	}
}

// FromDomainTimeBlock конвертирует domain модель в DTO
func FromDomainTimeBlock(b *domain.TimeBlock) *TimeBlockResponse {
	if b == nil {
		return nil
	}

	return &TimeBlockResponse{
		ID:        b.ID,
		StartTime: b.StartTime.UTC(),
		EndTime:   b.EndTime.UTC(),
		Reason:    b.Reason,
		CreatedBy: b.CreatedBy.String(),
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainTimeBlockList конвертирует список domain моделей в DTO
func FromDomainTimeBlockList(blocks []*domain.TimeBlock) *TimeBlockListResponse {
	resp := &TimeBlockListResponse{
		TimeBlocks: make([]TimeBlockResponse, 0, len(blocks)),
	}

	for _, b := range blocks {
		if item := FromDomainTimeBlock(b); item != nil {
			resp.TimeBlocks = append(resp.TimeBlocks, *item)
		}
	}

	return resp
}
