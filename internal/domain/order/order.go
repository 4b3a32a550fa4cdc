package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"pizzeria-sim/internal/domain/menu"
)

var (
	ErrNotFound        = errors.New("order: receipt not found")
	ErrConflict        = errors.New("order: receipt already exists")
	ErrNoPaymentMethod = errors.New("order: payment method is required")
)

// Order is the cart aggregate for one shopping session. It owns its
// items; observers are referenced, not owned. There is no status field:
// the same order may be cleared and checked out any number of times.
type Order struct {
	id        string
	items     []menu.Pizza
	observers []Observer
	createdAt time.Time
}

func New(id string) *Order {
	return &Order{id: id, createdAt: time.Now().UTC()}
}

func (o *Order) ID() string { return o.id }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

// AddItem appends a pizza to the cart. Duplicates are allowed and there
// is no capacity limit.
func (o *Order) AddItem(p menu.Pizza) {
	o.items = append(o.items, p)
}

// AddObserver registers a checkout listener. Observers are invoked in
// registration order and cannot be removed.
func (o *Order) AddObserver(obs Observer) {
	o.observers = append(o.observers, obs)
}

// Total recomputes the sum of item prices on every call.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Price())
	}
	return total
}

// Items returns a copy of the cart contents in insertion order.
func (o *Order) Items() []menu.Pizza {
	return append([]menu.Pizza(nil), o.items...)
}

func (o *Order) Len() int { return len(o.items) }

// Checkout computes the total, notifies every observer with it, then
// hands the same total to the payment method. Side effects happen in
// exactly that order: notify, then pay.
func (o *Order) Checkout(ctx context.Context, method PaymentMethod) (decimal.Decimal, error) {
	if method == nil {
		return decimal.Zero, ErrNoPaymentMethod
	}
	total := o.Total()
	for _, obs := range o.observers {
		obs.Notify(total)
	}
	if err := method.Pay(ctx, total); err != nil {
		return decimal.Zero, fmt.Errorf("order: pay: %w", err)
	}
	return total, nil
}

// Clear drops all items. Observers stay registered: they are session
// listeners (mail, audit) that keep receiving totals on later checkouts
// of the same cart.
func (o *Order) Clear() {
	o.items = nil
}
