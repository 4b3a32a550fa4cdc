package memory

import (
	"context"
	"fmt"
	"sync"

	domain "pizzeria-sim/internal/domain/order"
)

// ReceiptArchive keeps settled receipts for the lifetime of the process.
type ReceiptArchive struct {
	mu       sync.RWMutex
	receipts map[string]*domain.Receipt
	order    []string
}

func NewReceiptArchive() *ReceiptArchive {
	return &ReceiptArchive{receipts: make(map[string]*domain.Receipt)}
}

func (a *ReceiptArchive) Save(ctx context.Context, receipt *domain.Receipt) error {
	_ = ctx
	if receipt == nil || receipt.ID == "" {
		return fmt.Errorf("receipt archive: id is required")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.receipts[receipt.ID]; exists {
		return domain.ErrConflict
	}

	a.receipts[receipt.ID] = receipt.Clone()
	a.order = append(a.order, receipt.ID)
	return nil
}

func (a *ReceiptArchive) Get(ctx context.Context, id string) (*domain.Receipt, error) {
	_ = ctx

	a.mu.RLock()
	defer a.mu.RUnlock()

	receipt, ok := a.receipts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return receipt.Clone(), nil
}

// List returns all receipts in settlement order.
func (a *ReceiptArchive) List(ctx context.Context) ([]*domain.Receipt, error) {
	_ = ctx

	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]*domain.Receipt, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.receipts[id].Clone())
	}
	return out, nil
}
