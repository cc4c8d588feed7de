package complaint

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBridgeSaveFillsEverySchemaField(t *testing.T) {
	store := &memStore{}
	now := func() time.Time { return time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC) }
	b := NewBridge(testSchema(), store, now, zap.NewNop())

	id, err := b.Save(context.Background(), map[string]string{"name": "John Smith"})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^RC20250601123045\d{3}$`), id)

	require.Len(t, store.complaints, 1)
	saved := store.complaints[0]
	assert.Equal(t, "John Smith", saved.Fields["name"])
	assert.Equal(t, "", saved.Fields["mobile"], "missing fields are written empty")
	assert.Equal(t, "", saved.Fields["age"])
	assert.Len(t, saved.Fields, len(testSchema()))
}

func TestBridgeIDsAreUniqueWithinOneSecond(t *testing.T) {
	store := &memStore{}
	now := func() time.Time { return time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC) }
	b := NewBridge(testSchema(), store, now, zap.NewNop())

	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		id, err := b.Save(context.Background(), nil)
		require.NoError(t, err)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate complaint id %s", id)
		seen[id] = struct{}{}
	}
}

func TestBridgeSavePropagatesStoreError(t *testing.T) {
	store := &memStore{appendErr: assert.AnError}
	b := NewBridge(testSchema(), store, nil, zap.NewNop())

	_, err := b.Save(context.Background(), map[string]string{"name": "John"})
	assert.ErrorIs(t, err, assert.AnError)
}
