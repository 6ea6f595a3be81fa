package events

import (
	"context"

	domainevents "omis_backend/internal/domain/events"
	"omis_backend/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var _ interfaces.IEventDispatcher = (*ZapDispatcher)(nil)

// ZapDispatcher emits transition events as structured log lines. Downstream
// consumers (CRM sync, notification jobs) tail these instead of a broker.
type ZapDispatcher struct {
	logger *zap.Logger
}

func NewZapDispatcher(logger *zap.Logger) *ZapDispatcher {
	return &ZapDispatcher{logger: logger}
}

func (d *ZapDispatcher) Dispatch(_ context.Context, evs ...domainevents.Event) {
	for _, ev := range evs {
		d.logger.Info("order event",
			zap.String("event", string(ev.Name)),
			zap.String("order_id", ev.OrderID),
			zap.Time("occurred_at", ev.OccurredAt),
		)
	}
}
