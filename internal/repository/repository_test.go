package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/bestofgoa/bok/gen/ent"
)

var testDBSeq atomic.Int64

// openTestClient returns an ent client backed by a private in-memory
// database with the full schema migrated.
func openTestClient(t *testing.T) *ent.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", testDBSeq.Add(1))
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(context.Background()))

	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testLogger() *slog.Logger {
	return slog.Default()
}
