// Package ordering drives one shopping session: filling the cart,
// checking out with a payment strategy, and archiving the receipt.
package ordering

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"pizzeria-sim/internal/domain/menu"
	"pizzeria-sim/internal/domain/order"
	"pizzeria-sim/internal/infrastructure/id"
	"pizzeria-sim/internal/observability"
	"pizzeria-sim/internal/observability/logctx"
)

const (
	serviceName     = "ordering-service"
	useCaseCheckout = "ordering.checkout"
	spanPrefix      = "UC."
)

// Service wires the order aggregate to the receipt archive and the
// telemetry ports.
type Service struct {
	order   *order.Order
	archive order.Archive
	ids     id.Generator
	tel     observability.Observability

	log          observability.Logger
	itemsCounter observability.Counter
	reqCounter   observability.Counter
	durHistogram observability.Histogram
	amountHist   observability.Histogram
}

func NewService(ord *order.Order, archive order.Archive, ids id.Generator, tel observability.Observability) *Service {
	if tel == nil {
		tel = observability.Nop()
	}
	metrics := tel.Metrics()
	return &Service{
		order:   ord,
		archive: archive,
		ids:     ids,
		tel:     tel,
		log: tel.Logger().With(
			observability.F("service", serviceName),
			observability.F("order_id", ord.ID()),
		),
		itemsCounter: metrics.Counter(observability.MItemsAdded),
		reqCounter:   metrics.Counter(observability.MCheckoutRequests),
		durHistogram: metrics.Histogram(observability.MCheckoutDuration),
		amountHist:   metrics.Histogram(observability.MCheckoutAmount),
	}
}

func (s *Service) AddPepperoni() { s.addItem(menu.Pepperoni(), "pepperoni") }

func (s *Service) AddHawaiian() { s.addItem(menu.Hawaiian(), "hawaiian") }

// AddCustom puts a builder-assembled pizza in the cart.
func (s *Service) AddCustom(p menu.Pizza) { s.addItem(p, "custom") }

func (s *Service) addItem(p menu.Pizza, kind string) {
	s.order.AddItem(p)
	s.itemsCounter.Add(1, observability.L("kind", kind))
	s.log.Info("item_added",
		observability.F("name", p.Name()),
		observability.F("price", p.Price().String()),
	)
}

// Items returns the current cart contents in insertion order.
func (s *Service) Items() []menu.Pizza { return s.order.Items() }

func (s *Service) Total() decimal.Decimal { return s.order.Total() }

type CheckoutResult struct {
	ReceiptID string
	Total     decimal.Decimal
}

// Checkout settles the cart through the given payment method and
// archives a receipt. The domain guarantees observers are notified
// before the payment runs; on success the cart is cleared while the
// observers stay registered for the next order.
func (s *Service) Checkout(ctx context.Context, method order.PaymentMethod, methodName string) (_ *CheckoutResult, err error) {
	logger := logctx.FromOr(ctx, s.log).With(observability.F("use_case", useCaseCheckout))

	ctx, span := s.tel.Tracer().Start(ctx, spanPrefix+"Checkout",
		attribute.String("use_case", useCaseCheckout),
		attribute.String("order.id", s.order.ID()),
		attribute.String("payment.method", methodName),
	)
	start := time.Now()
	outcome, statusText := "success", "OK"

	defer func() {
		lat := time.Since(start).Seconds()

		if span != nil {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, statusText)
			} else {
				span.SetStatus(codes.Ok, statusText)
			}
			span.End()
		}

		s.reqCounter.Add(1, observability.L("outcome", outcome))
		s.durHistogram.Observe(lat)

		fields := []observability.Field{
			observability.F("outcome", outcome),
			observability.F("status", statusText),
			observability.F("latency_seconds", lat),
		}
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			fields = append(fields,
				observability.F("trace_id", sc.TraceID().String()),
				observability.F("span_id", sc.SpanID().String()),
			)
		}
		if err != nil {
			fields = append(fields, observability.F("error", err.Error()))
		}

		logger.Info("use_case_done", fields...)
	}()

	if method == nil {
		outcome, statusText = "error", "PAYMENT_METHOD_REQUIRED"
		return nil, order.ErrNoPaymentMethod
	}

	items := s.order.Items()
	total, err := s.order.Checkout(ctx, method)
	if err != nil {
		outcome, statusText = "error", "PAYMENT_FAILED"
		return nil, err
	}
	s.amountHist.Observe(total.InexactFloat64())

	receipt := order.NewReceipt(s.ids.NewID(), items, total, methodName)
	if archiveErr := s.archive.Save(ctx, receipt); archiveErr != nil {
		// The payment already settled; an archive failure must not undo it.
		logger.Error("receipt_archive_failed",
			observability.F("receipt_id", receipt.ID),
			observability.F("error", archiveErr.Error()),
		)
	}
	s.order.Clear()

	return &CheckoutResult{ReceiptID: receipt.ID, Total: total}, nil
}

// Receipts lists every settled receipt of this session.
func (s *Service) Receipts(ctx context.Context) ([]*order.Receipt, error) {
	return s.archive.List(ctx)
}
