package payment

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"pizzeria-sim/internal/infrastructure/id"
)

// TransactionSubmitter is the shape the external gateway exposes. It is
// deliberately incompatible with order.PaymentMethod: it wants a
// transaction ID and an integer amount in cents.
type TransactionSubmitter interface {
	SubmitTransaction(ctx context.Context, txID string, amountCents int64) error
}

// Gateway simulates the third-party payment API.
type Gateway struct {
	out io.Writer
}

func NewGateway(out io.Writer) *Gateway { return &Gateway{out: out} }

func (g *Gateway) SubmitTransaction(_ context.Context, txID string, amountCents int64) error {
	fmt.Fprintf(g.out, "Payment settled through external API: Bs%s (tx %s)\n",
		decimal.New(amountCents, -2), txID)
	return nil
}

// GatewayAdapter implements the domain payment port on top of the
// gateway: it mints a transaction ID, converts the decimal total to
// cents and forwards a single call. Shape translation only, no retries.
type GatewayAdapter struct {
	api TransactionSubmitter
	ids id.Generator
}

func NewGatewayAdapter(api TransactionSubmitter, ids id.Generator) *GatewayAdapter {
	return &GatewayAdapter{api: api, ids: ids}
}

func (a *GatewayAdapter) Pay(ctx context.Context, amount decimal.Decimal) error {
	cents := amount.Mul(decimal.NewFromInt(100)).IntPart()
	return a.api.SubmitTransaction(ctx, a.ids.NewID(), cents)
}
