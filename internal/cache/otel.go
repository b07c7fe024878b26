package cache

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/Faultbox/rocketmesh/internal/cache"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
