package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autozonepro/internal/storage"
)

func qty(v int64) *int64 {
	return &v
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStorage_CreateCourierDetails_UniqueSalesOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateCourierDetails(ctx, storage.CourierDetails{Name: "CD-1", SalesOrder: "SO-1"}))

	err := s.CreateCourierDetails(ctx, storage.CourierDetails{Name: "CD-2", SalesOrder: "SO-1"})
	assert.ErrorIs(t, err, storage.ErrCourierExists)
	assert.Equal(t, 1, s.CourierCount())

	got, err := s.FindCourierBySalesOrder(ctx, "SO-1")
	require.NoError(t, err)
	assert.Equal(t, "CD-1", got.Name)

	_, err = s.FindCourierBySalesOrder(ctx, "SO-2")
	assert.ErrorIs(t, err, storage.ErrCourierNotFound)
}

func TestStorage_GetActivityRows(t *testing.T) {
	s := New()
	s.AddPackingList(storage.PackingList{Name: "PL-1", Date: day(2024, 2, 3), Packer: "Alice", Picker: "Bob", ModifiedBy: "carol", TotalQty: qty(5), DocStatus: 1})
	s.AddPackingList(storage.PackingList{Name: "PL-2", Date: day(2024, 2, 4), Packer: "Select", Picker: "Bob", TotalQty: qty(1), DocStatus: 1})
	s.AddPackingList(storage.PackingList{Name: "PL-3", Date: day(2024, 2, 5), Packer: "Alice", TotalQty: qty(7), DocStatus: 2})
	s.AddPackingList(storage.PackingList{Name: "PL-4", Date: day(2024, 3, 5), Packer: "Alice", TotalQty: qty(7), DocStatus: 1})

	ctx := context.Background()

	packing, err := s.GetActivityRows(ctx, storage.ActivityPacking, 2, 2024)
	require.NoError(t, err)
	assert.Equal(t, []storage.ActivityRow{{Person: "Alice", Activity: storage.ActivityPacking, Day: 3, Qty: qty(5)}}, packing)

	picking, err := s.GetActivityRows(ctx, storage.ActivityPicking, 2, 2024)
	require.NoError(t, err)
	assert.Len(t, picking, 2)

	verify, err := s.GetActivityRows(ctx, storage.ActivityVerify, 2, 2024)
	require.NoError(t, err)
	assert.Len(t, verify, 1)

	dispatch, err := s.GetActivityRows(ctx, storage.ActivityDispatch, 2, 2024)
	require.NoError(t, err)
	assert.Empty(t, dispatch)
}

func TestStorage_GetPerformancePersons(t *testing.T) {
	s := New()
	s.AddPackingList(storage.PackingList{Date: day(2022, 1, 1), Packer: "Zed"})
	s.AddPackingList(storage.PackingList{Date: day(2024, 2, 3), Packer: "Select", Picker: "Alice", ModifiedBy: "carol"})
	s.AddPackingList(storage.PackingList{Date: day(2024, 2, 3), Packer: "Bob", Picker: "Alice"})

	persons, err := s.GetPerformancePersons(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Zed"}, persons)
}

func TestStorage_CanceledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.GetPerformancePersons(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
