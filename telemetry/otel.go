package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/labyrinth/telemetry"

// Meter returns the global meter (no-op unless a provider is installed)
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
