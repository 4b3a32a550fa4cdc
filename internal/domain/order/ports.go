package order

import (
	"context"

	"github.com/shopspring/decimal"
)

// Observer is notified with the order total once per checkout, before
// the payment method runs.
type Observer interface {
	Notify(total decimal.Decimal)
}

// PaymentMethod settles a checkout total. None of the shipped variants
// ever fail; the error return is for adapters over real gateways.
type PaymentMethod interface {
	Pay(ctx context.Context, amount decimal.Decimal) error
}

// Archive stores settled receipts.
type Archive interface {
	Save(ctx context.Context, r *Receipt) error
	Get(ctx context.Context, id string) (*Receipt, error)
	List(ctx context.Context) ([]*Receipt, error)
}
