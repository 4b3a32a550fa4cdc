package notify

import (
	"github.com/shopspring/decimal"

	"pizzeria-sim/internal/observability"
)

// AuditLogger records each checkout total on the structured log.
type AuditLogger struct {
	log observability.Logger
}

func NewAuditLogger(log observability.Logger) *AuditLogger {
	if log == nil {
		log = observability.NopLogger()
	}
	return &AuditLogger{log: log.With(observability.F("component", "audit"))}
}

func (a *AuditLogger) Notify(total decimal.Decimal) {
	a.log.Info("order_recorded", observability.F("total", total.String()))
}
