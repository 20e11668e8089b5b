package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimeBlock is a manual exclusion of a time interval from booking (breaks, days off).
// Unlike appointments it is never extended by the buffer.
type TimeBlock struct {
	ID        int64
	StartTime time.Time
	EndTime   time.Time
	Reason    *string
	CreatedBy uuid.UUID
	CreatedAt time.Time
}
