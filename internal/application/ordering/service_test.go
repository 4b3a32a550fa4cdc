package ordering_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria-sim/internal/application/ordering"
	"pizzeria-sim/internal/domain/menu"
	"pizzeria-sim/internal/domain/order"
	"pizzeria-sim/internal/infrastructure/memory"
	"pizzeria-sim/internal/observability"
	"pizzeria-sim/internal/observability/logctx"
)

type recordingLogger struct {
	msgs *[]string
}

func (l recordingLogger) With(...observability.Field) observability.Logger { return l }

func (l recordingLogger) Debug(msg string, _ ...observability.Field) { *l.msgs = append(*l.msgs, msg) }
func (l recordingLogger) Info(msg string, _ ...observability.Field)  { *l.msgs = append(*l.msgs, msg) }
func (l recordingLogger) Warn(msg string, _ ...observability.Field)  { *l.msgs = append(*l.msgs, msg) }
func (l recordingLogger) Error(msg string, _ ...observability.Field) { *l.msgs = append(*l.msgs, msg) }

type seqIDs struct{ n int }

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

type recordingPayment struct {
	amounts []decimal.Decimal
}

func (p *recordingPayment) Pay(_ context.Context, amount decimal.Decimal) error {
	p.amounts = append(p.amounts, amount)
	return nil
}

func newTestService(t *testing.T) (*ordering.Service, *order.Order, *memory.ReceiptArchive) {
	t.Helper()
	ord := order.New("ord-1")
	archive := memory.NewReceiptArchive()
	svc := ordering.NewService(ord, archive, &seqIDs{}, observability.Nop())
	return svc, ord, archive
}

func TestCheckoutArchivesReceiptAndClearsCart(t *testing.T) {
	svc, ord, archive := newTestService(t)
	ctx := context.Background()

	svc.AddPepperoni()
	svc.AddHawaiian()
	svc.AddCustom(menu.NewBuilder().AddCheese().AddPineapple().Build())
	require.Equal(t, int64(108), svc.Total().IntPart())

	method := &recordingPayment{}
	result, err := svc.Checkout(ctx, method, "cash")
	require.NoError(t, err)
	assert.Equal(t, int64(108), result.Total.IntPart())

	require.Len(t, method.amounts, 1)
	assert.True(t, method.amounts[0].Equal(result.Total))

	receipt, err := archive.Get(ctx, result.ReceiptID)
	require.NoError(t, err)
	assert.Equal(t, "cash", receipt.Method)
	assert.Equal(t, int64(108), receipt.Total.IntPart())
	require.Len(t, receipt.Lines, 3)
	assert.Equal(t, "Pepperoni Pizza", receipt.Lines[0].Name)
	assert.Equal(t, "Hawaiian Pizza", receipt.Lines[1].Name)
	assert.Equal(t, "Custom Pizza", receipt.Lines[2].Name)

	// The cart is emptied for the next order; the receipt keeps the history.
	assert.Empty(t, svc.Items())
	assert.Equal(t, 0, ord.Len())
}

func TestCheckoutRequiresMethod(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Checkout(context.Background(), nil, "")
	require.ErrorIs(t, err, order.ErrNoPaymentMethod)
}

func TestReceiptsListAcrossCheckouts(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	svc.AddPepperoni()
	first, err := svc.Checkout(ctx, &recordingPayment{}, "cash")
	require.NoError(t, err)

	svc.AddHawaiian()
	second, err := svc.Checkout(ctx, &recordingPayment{}, "card")
	require.NoError(t, err)

	receipts, err := svc.Receipts(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, first.ReceiptID, receipts[0].ID)
	assert.Equal(t, second.ReceiptID, receipts[1].ID)
	assert.Equal(t, int64(40), receipts[0].Total.IntPart())
	assert.Equal(t, int64(50), receipts[1].Total.IntPart())
}

func TestObserversSurviveCheckout(t *testing.T) {
	svc, ord, _ := newTestService(t)
	ctx := context.Background()

	var seen []decimal.Decimal
	ord.AddObserver(observerFunc(func(total decimal.Decimal) {
		seen = append(seen, total)
	}))

	svc.AddPepperoni()
	_, err := svc.Checkout(ctx, &recordingPayment{}, "cash")
	require.NoError(t, err)

	svc.AddHawaiian()
	_, err = svc.Checkout(ctx, &recordingPayment{}, "cash")
	require.NoError(t, err)

	require.Len(t, seen, 2)
	assert.Equal(t, int64(40), seen[0].IntPart())
	assert.Equal(t, int64(50), seen[1].IntPart())
}

type observerFunc func(total decimal.Decimal)

func (f observerFunc) Notify(total decimal.Decimal) { f(total) }

func TestCheckoutLogsToContextLogger(t *testing.T) {
	svc, _, _ := newTestService(t)

	// The service itself runs on a nop logger; the checkout summary must
	// land on the logger carried by the context.
	var msgs []string
	ctx := logctx.With(context.Background(), recordingLogger{msgs: &msgs})

	svc.AddPepperoni()
	_, err := svc.Checkout(ctx, &recordingPayment{}, "cash")
	require.NoError(t, err)

	assert.Contains(t, msgs, "use_case_done")
}
