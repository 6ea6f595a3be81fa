package interfaces

import (
	"context"

	"omis_backend/internal/domain/entities"
)

// IHourlyRateRepository abstracts read-only access to hourly-rate reference
// data. Returns a zero-value rate (ID == "") when nothing matches.
type IHourlyRateRepository interface {
	GetByID(ctx context.Context, id string) (entities.HourlyRate, error)
}
