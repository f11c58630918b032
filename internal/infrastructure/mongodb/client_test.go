package mongodb

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// Integration test; set MONGODB_URI to run it against a live server.
func TestNewAndCreateIndexes(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set; skipping integration test")
	}

	ctx := context.Background()
	c, err := New(ctx, uri, "gamecatalog_test_indexes")
	require.NoError(t, err)
	defer func() {
		_ = c.db.Drop(context.Background())
		_ = c.Close(context.Background())
	}()

	require.NoError(t, c.CreateIndexes(ctx))
	require.NoError(t, c.Ping(ctx))
}
