package billstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidkuria/brewpos-api/internal/domain/entity"
)

func sampleBill() *entity.Bill {
	return &entity.Bill{
		ID: 42,
		Items: []entity.BillItem{
			{MenuItemID: 1, Name: "Lemon Tea", Quantity: 2, Price: 2000},
		},
		SubTotal:  4000,
		Discount:  0,
		Total:     4000,
		Timestamp: time.Now().UnixNano(),
		Persisted: true,
	}
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	store := NewStore(0)

	require.NoError(t, store.Put("till-1", sampleBill()))

	got, err := store.Get("till-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(42), got.ID)
	assert.Equal(t, int64(4000), got.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Lemon Tea", got.Items[0].Name)
}

func TestStore_AbsentSessionIsNil(t *testing.T) {
	store := NewStore(0)

	got, err := store.Get("till-9")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PutReplacesPrevious(t *testing.T) {
	store := NewStore(0)

	first := sampleBill()
	require.NoError(t, store.Put("till-1", first))

	second := sampleBill()
	second.ID = 43
	require.NoError(t, store.Put("till-1", second))

	got, err := store.Get("till-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(43), got.ID)
}

func TestStore_Clear(t *testing.T) {
	store := NewStore(0)
	require.NoError(t, store.Put("till-1", sampleBill()))

	store.Clear("till-1")

	got, err := store.Get("till-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := NewStore(0)
	require.NoError(t, store.Put("till-1", sampleBill()))

	got, err := store.Get("till-2")
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Invalid stored data reads back as "no bill", not an error or a panic.
func TestStore_InvalidBillReadsAsAbsent(t *testing.T) {
	store := NewStore(0)

	bad := sampleBill()
	bad.ID = 0
	require.NoError(t, store.Put("till-1", bad))

	got, err := store.Get("till-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ExpiredEntryIsAbsent(t *testing.T) {
	store := NewStore(time.Nanosecond)
	require.NoError(t, store.Put("till-1", sampleBill()))

	time.Sleep(time.Millisecond)

	got, err := store.Get("till-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
