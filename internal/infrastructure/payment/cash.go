// Package payment provides the checkout strategies the simulator ships
// with: local cash and card confirmations, plus an adapter over a
// simulated external gateway whose call shape does not match the domain
// port.
package payment

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Cash settles a total with a local cash confirmation.
type Cash struct {
	out io.Writer
}

func NewCash(out io.Writer) *Cash { return &Cash{out: out} }

func (c *Cash) Pay(_ context.Context, amount decimal.Decimal) error {
	fmt.Fprintf(c.out, "Paying Bs%s in cash.\n", amount)
	return nil
}
