// internal/regiment/otel.go
package regiment

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/Justine-AH/master-of-command-save-editor/internal/regiment"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// countSynthesis bumps the synthesis counter. No-op unless the host
// application installs a meter provider.
func countSynthesis(unitID string) {
	counter, err := meter().Int64Counter(
		"regiment_synthesis_total",
		metric.WithDescription("Regiment records synthesized from templates"),
	)
	if err != nil {
		return
	}
	counter.Add(context.Background(), 1, metric.WithAttributes(attribute.String("unit_id", unitID)))
}
