package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveAndLookup(t *testing.T) {
	store := NewStore()
	record := &BookingRecord{Reference: "AB12CD34", BookedAt: time.Now()}

	store.Save(record)

	got, ok := store.GetByReference("AB12CD34")
	require.True(t, ok)
	assert.Equal(t, record, got)

	_, ok = store.GetByReference("UNKNOWN1")
	assert.False(t, ok)
}

func TestStorePurgeOlderThan(t *testing.T) {
	store := NewStore()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	store.Save(&BookingRecord{Reference: "OLD11111", BookedAt: now.Add(-48 * time.Hour)})
	store.Save(&BookingRecord{Reference: "OLD22222", BookedAt: now.Add(-25 * time.Hour)})
	store.Save(&BookingRecord{Reference: "FRESH111", BookedAt: now.Add(-1 * time.Hour)})

	purged := store.PurgeOlderThan(now.Add(-24 * time.Hour))
	assert.Equal(t, 2, purged)
	assert.Equal(t, 1, store.Len())

	_, ok := store.GetByReference("FRESH111")
	assert.True(t, ok)
	_, ok = store.GetByReference("OLD11111")
	assert.False(t, ok)
}
