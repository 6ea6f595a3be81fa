package interfaces

import (
	"context"

	"omis_backend/internal/domain/entities"
)

// ICompanyDirectory is the engine's window onto the external company
// domain. It is read-only and used for exactly one thing: snapshotting a
// company's registered address into the order's billing address at quote
// generation. Returns a zero-value company (ID == "") when nothing matches.
type ICompanyDirectory interface {
	GetByID(ctx context.Context, id string) (entities.Company, error)
}
