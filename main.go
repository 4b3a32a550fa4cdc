package main

import (
	"context"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"pizzeria-sim/internal/application/ordering"
	"pizzeria-sim/internal/domain/order"
	"pizzeria-sim/internal/infrastructure/id"
	"pizzeria-sim/internal/infrastructure/memory"
	"pizzeria-sim/internal/infrastructure/notify"
	"pizzeria-sim/internal/infrastructure/observability/oteltrace"
	"pizzeria-sim/internal/infrastructure/observability/prometrics"
	"pizzeria-sim/internal/infrastructure/observability/telemetry"
	"pizzeria-sim/internal/infrastructure/observability/zaplogger"
	"pizzeria-sim/internal/infrastructure/payment"
	"pizzeria-sim/internal/observability"
	"pizzeria-sim/internal/presentation/cli"
)

const metricNamespace = "pizzeria"

func main() {
	serviceName := getenvDefault("SERVICE_NAME", "pizzeria-sim")
	env := getenvDefault("ENV", "dev")

	logger := zaplogger.New(
		observability.F("service", serviceName),
		observability.F("env", env),
	)
	defer func() { _ = logger.Sync() }()

	registry := prometrics.New(metricNamespace)
	counters := map[observability.MetricKey]observability.Counter{
		observability.MItemsAdded: registry.Counter(
			string(observability.MItemsAdded), "Pizzas added to the cart.", "kind"),
		observability.MCheckoutRequests: registry.Counter(
			string(observability.MCheckoutRequests), "Checkout attempts.", "outcome"),
	}
	histograms := map[observability.MetricKey]observability.Histogram{
		observability.MCheckoutDuration: registry.Histogram(
			string(observability.MCheckoutDuration), "Checkout duration in seconds.", prometheus.DefBuckets),
		observability.MCheckoutAmount: registry.Histogram(
			string(observability.MCheckoutAmount), "Settled checkout totals.", []float64{25, 50, 100, 200, 400}),
	}
	tel := telemetry.New(oteltrace.New(serviceName), logger, counters, histograms)

	ids := id.NewUUIDGenerator()
	archive := memory.NewReceiptArchive()

	ord := order.New(ids.NewID())
	ord.AddObserver(notify.NewEmailNotifier(os.Stdout))
	ord.AddObserver(notify.NewAuditLogger(logger))

	svc := ordering.NewService(ord, archive, ids, tel)

	payments := cli.PaymentMethods{
		Cash:     payment.NewCash(os.Stdout),
		Card:     payment.NewCard(os.Stdout),
		External: payment.NewGatewayAdapter(payment.NewGateway(os.Stdout), ids),
	}

	menu := cli.NewMenu(svc, payments, os.Stdin, os.Stdout, logger)
	if err := menu.Run(context.Background()); err != nil {
		logger.Error("session_failed", observability.F("error", err.Error()))
		_ = logger.Sync()
		os.Exit(1)
	}

	logMetricsSummary(logger)
}

// logMetricsSummary gathers the default prometheus registry and logs the
// session instruments. The simulator has no network surface, so this
// stands in for a /metrics endpoint.
func logMetricsSummary(logger observability.Logger) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		logger.Warn("metrics_gather_failed", observability.F("error", err.Error()))
		return
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricNamespace+"_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			fields := []observability.Field{observability.F("metric", mf.GetName())}
			for _, lp := range m.GetLabel() {
				fields = append(fields, observability.F(lp.GetName(), lp.GetValue()))
			}
			switch {
			case m.GetCounter() != nil:
				fields = append(fields, observability.F("value", m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				fields = append(fields,
					observability.F("count", m.GetHistogram().GetSampleCount()),
					observability.F("sum", m.GetHistogram().GetSampleSum()),
				)
			}
			logger.Info("session_metric", fields...)
		}
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
