package services

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"

	"github.com/recallkit/recallkit/ent"
	"github.com/recallkit/recallkit/pkg/database"
)

// newTestClient connects to the PostgreSQL named by TEST_DATABASE_URL,
// creates a throwaway schema, and runs the ent migration into it. Tests
// are skipped when no database is available.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()

	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping database tests")
	}

	ctx := context.Background()
	schema := fmt.Sprintf("recallkit_test_%d_%d", time.Now().UnixNano(), rand.Intn(1000))

	admin, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", schema))
	require.NoError(t, err)

	db, err := stdsql.Open("pgx", addSearchPath(connStr, schema))
	require.NoError(t, err)

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(ctx))
	require.NoError(t, database.CreateGINIndexes(ctx, drv))
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))

	t.Cleanup(func() {
		_ = client.Close()
		_, _ = admin.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA %s CASCADE", schema))
		_ = admin.Close()
	})
	return client
}

// addSearchPath appends a search_path runtime parameter to either a URL
// or keyword/value connection string.
func addSearchPath(connStr, schema string) string {
	if strings.Contains(connStr, "://") {
		sep := "?"
		if strings.Contains(connStr, "?") {
			sep = "&"
		}
		return connStr + sep + "search_path=" + schema
	}
	return connStr + " search_path=" + schema
}

// mustCreateSet seeds one set and returns its ID.
func mustCreateSet(t *testing.T, client *ent.Client, name string) string {
	t.Helper()
	info, err := NewSetService(client).CreateSet(context.Background(), SetInput{
		Name:        name,
		Description: "test set",
	})
	require.NoError(t, err)
	return info.ID
}

// mustCreatePoint seeds one point into a set and returns its ID.
func mustCreatePoint(t *testing.T, client *ent.Client, setID, content string, now time.Time) string {
	t.Helper()
	p, err := NewSetService(client).CreatePoint(context.Background(), setID, PointInput{
		Content: content,
		Context: "ctx: " + content,
	}, now)
	require.NoError(t, err)
	return p.ID
}
