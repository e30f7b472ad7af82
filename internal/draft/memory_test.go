package draft

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangdm/cloudscore/internal/models"
)

func testDraft(ts time.Time) *models.Draft {
	return &models.Draft{
		Record: &models.GradeRecord{
			ID:           "record_1",
			RecordName:   "Toán",
			ScoreColumns: []string{"Mid"},
			Students:     []models.Student{{Name: "An", Scores: map[string]string{"Mid": "8"}}},
		},
		Timestamp:  ts,
		IsEditMode: true,
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "empty slot yields no draft")

	require.NoError(t, store.Save(ctx, testDraft(time.Now())))

	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Toán", loaded.Record.RecordName)
	assert.True(t, loaded.IsEditMode)

	require.NoError(t, store.Clear(ctx))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryStoreOverwritesSlot(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := testDraft(time.Now())
	require.NoError(t, store.Save(ctx, first))

	second := testDraft(time.Now())
	second.Record.RecordName = "Văn"
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Văn", loaded.Record.RecordName)
}

func TestMemoryStoreSnapshotsRecord(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	d := testDraft(time.Now())
	require.NoError(t, store.Save(ctx, d))

	// Edits after the save must not leak into the captured draft.
	d.Record.Students[0].Scores["Mid"] = "1"

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "8", loaded.Record.Students[0].Scores["Mid"])
}

func TestMemoryStoreDiscardsStaleDraft(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, testDraft(time.Now().Add(-25*time.Hour))))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "stale draft is discarded")

	// And the discard is a side effect, not just a filtered read.
	store.now = func() time.Time { return time.Time{} }
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestMemoryStoreKeepsFreshDraft(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, testDraft(time.Now().Add(-23*time.Hour))))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, loaded, "age under the cutoff survives")
}
