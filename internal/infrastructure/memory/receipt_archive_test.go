package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria-sim/internal/domain/menu"
	"pizzeria-sim/internal/domain/order"
	"pizzeria-sim/internal/infrastructure/memory"
)

func sampleReceipt(id string) *order.Receipt {
	items := []menu.Pizza{menu.Pepperoni(), menu.Hawaiian()}
	return order.NewReceipt(id, items, decimal.NewFromInt(90), "cash")
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	archive := memory.NewReceiptArchive()
	ctx := context.Background()

	require.NoError(t, archive.Save(ctx, sampleReceipt("r-1")))

	got, err := archive.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "r-1", got.ID)
	assert.Equal(t, "cash", got.Method)
	assert.Equal(t, int64(90), got.Total.IntPart())
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "Pepperoni Pizza", got.Lines[0].Name)
}

func TestGetMissingReceipt(t *testing.T) {
	archive := memory.NewReceiptArchive()
	_, err := archive.Get(context.Background(), "missing")
	require.ErrorIs(t, err, order.ErrNotFound)
}

func TestSaveRejectsDuplicateID(t *testing.T) {
	archive := memory.NewReceiptArchive()
	ctx := context.Background()

	require.NoError(t, archive.Save(ctx, sampleReceipt("r-1")))
	require.ErrorIs(t, archive.Save(ctx, sampleReceipt("r-1")), order.ErrConflict)
}

func TestListKeepsSettlementOrder(t *testing.T) {
	archive := memory.NewReceiptArchive()
	ctx := context.Background()

	require.NoError(t, archive.Save(ctx, sampleReceipt("r-1")))
	require.NoError(t, archive.Save(ctx, sampleReceipt("r-2")))
	require.NoError(t, archive.Save(ctx, sampleReceipt("r-3")))

	receipts, err := archive.List(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 3)
	assert.Equal(t, "r-1", receipts[0].ID)
	assert.Equal(t, "r-2", receipts[1].ID)
	assert.Equal(t, "r-3", receipts[2].ID)
}

func TestStoredReceiptIsIsolated(t *testing.T) {
	archive := memory.NewReceiptArchive()
	ctx := context.Background()

	original := sampleReceipt("r-1")
	require.NoError(t, archive.Save(ctx, original))
	original.Lines[0].Name = "mutated"

	got, err := archive.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "Pepperoni Pizza", got.Lines[0].Name)

	got.Method = "card"
	again, err := archive.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "cash", again.Method)
}
