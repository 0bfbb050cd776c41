// internal/template/otel.go
package template

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/Justine-AH/master-of-command-save-editor/internal/template"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// recordLoadDuration records how long a full template load took. Uses the
// global meter provider, a no-op unless the host application installs one.
func recordLoadDuration(d time.Duration) {
	hist, err := meter().Float64Histogram(
		"template_load_duration_seconds",
		metric.WithDescription("Duration of a full template table load"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return
	}
	hist.Record(context.Background(), d.Seconds())
}
