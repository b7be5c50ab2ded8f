package cursorStore

import (
	"context"
	"testing"

	"github.com/Layr-Labs/eigenops/internal/tests"
	"github.com/Layr-Labs/eigenops/pkg/cursorStore/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStores(t *testing.T) map[string]CursorStore {
	grm := tests.GetInMemorySqlite(t)
	require.NoError(t, migrations.NewMigrator(grm, tests.GetTestLogger()).MigrateAll())
	return map[string]CursorStore{
		"memory": NewMemoryCursorStore(),
		"sqlite": NewGormCursorStore(grm, tests.GetTestLogger()),
	}
}

func Test_CursorKey(t *testing.T) {
	assert.Equal(t, "mainnet:Deposit", CursorKey("mainnet", "Deposit", ""))
	assert.Equal(t, "holesky:StakerDelegated:0xabc", CursorKey("holesky", "StakerDelegated", "0xabc"))
}

func Test_CursorStores(t *testing.T) {
	ctx := context.Background()
	for name, store := range newStores(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("Unset cursor reports not found", func(t *testing.T) {
				_, ok, err := store.GetCursor(ctx, "mainnet:Deposit")
				require.NoError(t, err)
				assert.False(t, ok)
			})
			t.Run("Cursor advances", func(t *testing.T) {
				require.NoError(t, store.SetCursor(ctx, &EventCursor{Key: "mainnet:Deposit", Network: "mainnet", Event: "Deposit", LastProcessedBlock: 100}))
				require.NoError(t, store.SetCursor(ctx, &EventCursor{Key: "mainnet:Deposit", Network: "mainnet", Event: "Deposit", LastProcessedBlock: 150}))
				block, ok, err := store.GetCursor(ctx, "mainnet:Deposit")
				require.NoError(t, err)
				assert.True(t, ok)
				assert.Equal(t, uint64(150), block)
			})
			t.Run("Cursor never moves backwards", func(t *testing.T) {
				require.NoError(t, store.SetCursor(ctx, &EventCursor{Key: "mainnet:Deposit", Network: "mainnet", Event: "Deposit", LastProcessedBlock: 120}))
				block, _, err := store.GetCursor(ctx, "mainnet:Deposit")
				require.NoError(t, err)
				assert.Equal(t, uint64(150), block)
			})
			t.Run("Lists cursors by key", func(t *testing.T) {
				require.NoError(t, store.SetCursor(ctx, &EventCursor{Key: "holesky:PodDeployed", Network: "holesky", Event: "PodDeployed", LastProcessedBlock: 7}))
				cursors, err := store.ListCursors(ctx)
				require.NoError(t, err)
				require.Len(t, cursors, 2)
				assert.Equal(t, "holesky:PodDeployed", cursors[0].Key)
				assert.Equal(t, "mainnet:Deposit", cursors[1].Key)
			})
		})
	}
}
