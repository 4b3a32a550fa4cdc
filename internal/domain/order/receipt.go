package order

import (
	"time"

	"github.com/shopspring/decimal"

	"pizzeria-sim/internal/domain/menu"
)

// Receipt is the record of one settled checkout.
type Receipt struct {
	ID        string
	Lines     []ReceiptLine
	Total     decimal.Decimal
	Method    string
	SettledAt time.Time
}

type ReceiptLine struct {
	Name  string
	Price decimal.Decimal
}

// NewReceipt captures the charged items and total under a new receipt ID.
func NewReceipt(id string, items []menu.Pizza, total decimal.Decimal, method string) *Receipt {
	lines := make([]ReceiptLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, ReceiptLine{Name: item.Name(), Price: item.Price()})
	}
	return &Receipt{
		ID:        id,
		Lines:     lines,
		Total:     total,
		Method:    method,
		SettledAt: time.Now().UTC(),
	}
}

// Clone returns a deep copy so stored receipts cannot be mutated through
// returned references.
func (r *Receipt) Clone() *Receipt {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Lines = append([]ReceiptLine(nil), r.Lines...)
	return &clone
}
