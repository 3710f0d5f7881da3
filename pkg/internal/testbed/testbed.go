// Package testbed wires the global database and cache handles to
// throwaway in-memory backends for tests.
package testbed

import (
	"fmt"
	"testing"

	localCache "github.com/solarvale/agora/pkg/internal/cache"
	"github.com/solarvale/agora/pkg/internal/database"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func UseTestDatabase(t *testing.T) {
	t.Helper()

	if localCache.S == nil {
		require.NoError(t, localCache.NewStore())
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(conn))

	database.C = conn
}
