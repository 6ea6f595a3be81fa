package interfaces

import (
	"context"

	"omis_backend/internal/domain/events"
)

// IEventDispatcher delivers the outbound events a committed transition
// produced. The engine only returns events; the host dispatches them after
// the commit, so a dispatch failure can never roll back a transition.
type IEventDispatcher interface {
	Dispatch(ctx context.Context, evs ...events.Event)
}
