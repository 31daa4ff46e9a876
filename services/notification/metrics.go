package notification

import (
	"context"

	"islamicdashboard/models"

	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedNotifier counts deliveries by notification type and outcome.
type InstrumentedNotifier struct {
	Next    Notifier
	Counter *prometheus.CounterVec
}

func (i InstrumentedNotifier) Notify(ctx context.Context, n models.Notification) error {
	err := i.Next.Notify(ctx, n)
	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	i.Counter.WithLabelValues(n.Type, outcome).Inc()
	return err
}
