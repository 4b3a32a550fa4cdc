// Package notify contains the checkout observers: a simulated email
// confirmation and a structured audit log entry.
package notify

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// EmailNotifier writes a simulated order-confirmation email.
type EmailNotifier struct {
	out io.Writer
}

func NewEmailNotifier(out io.Writer) *EmailNotifier { return &EmailNotifier{out: out} }

func (n *EmailNotifier) Notify(total decimal.Decimal) {
	fmt.Fprintf(n.out, "[Email] Sending order confirmation for Bs%s...\n", total)
}
