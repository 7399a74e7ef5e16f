package database

import (
	"context"
	stdsql "database/sql"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kurt-labs/kurt/ent"
	util "github.com/kurt-labs/kurt/test/util"
)

// newTestClient wraps the shared test database in a *Client with the GIN
// indexes applied, mirroring what NewClient does after migrations.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, CreateGINIndexes(context.Background(), drv))

	return NewClientFromEnt(entClient, db)
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "kurt",
		Password: "secret",
		Database: "kurt_prod",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=kurt password=secret dbname=kurt_prod sslmode=require",
		cfg.DSN())
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv := func(t *testing.T) {
		for _, key := range []string{
			"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
			"DB_SSLMODE", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		} {
			t.Setenv(key, "")
		}
	}

	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "kurt", cfg.User)
		assert.Empty(t, cfg.Password)
		assert.Equal(t, "kurt", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
		assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
		assert.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_HOST", "pg.example.com")
		t.Setenv("DB_PORT", "6543")
		t.Setenv("DB_USER", "svc")
		t.Setenv("DB_PASSWORD", "hunter2")
		t.Setenv("DB_NAME", "kurt_staging")
		t.Setenv("DB_SSLMODE", "verify-full")
		t.Setenv("DB_MAX_OPEN_CONNS", "25")
		t.Setenv("DB_MAX_IDLE_CONNS", "3")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "pg.example.com", cfg.Host)
		assert.Equal(t, 6543, cfg.Port)
		assert.Equal(t, "svc", cfg.User)
		assert.Equal(t, "hunter2", cfg.Password)
		assert.Equal(t, "kurt_staging", cfg.Database)
		assert.Equal(t, "verify-full", cfg.SSLMode)
		assert.Equal(t, 25, cfg.MaxOpenConns)
		assert.Equal(t, 3, cfg.MaxIdleConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_PORT", "not-a-port")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestHealth(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	status, err := Health(ctx, client.DB())
	require.NoError(t, err)

	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.ResponseTime, int64(0))
	assert.Greater(t, status.MaxOpenConns, 0)
	assert.GreaterOrEqual(t, status.OpenConnections, 1)
}

func TestHealth_Unreachable(t *testing.T) {
	// Port 1 is never a postgres; ping must fail fast.
	db, err := stdsql.Open("pgx", "host=127.0.0.1 port=1 user=x dbname=x sslmode=disable connect_timeout=1")
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status, healthErr := Health(ctx, db)
	require.Error(t, healthErr)
	assert.Equal(t, "unhealthy", status.Status)
}

func TestGINIndexes_FullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	seedDocument(t, client.Client, "doc-k8s", "Kubernetes operators", "Running controllers in production clusters")
	seedDocument(t, client.Client, "doc-go", "Go concurrency", "Goroutines and channels explained")

	seedClaim(t, client.Client, "claim-1", "doc-k8s", "Operators reconcile desired cluster state")
	seedClaim(t, client.Client, "claim-2", "doc-go", "Channels synchronize goroutines without locks")

	t.Run("documents by title and description", func(t *testing.T) {
		rows, err := client.DB().QueryContext(ctx,
			`SELECT document_id FROM documents
			 WHERE to_tsvector('english', COALESCE(title, '') || ' ' || COALESCE(description, ''))
			       @@ plainto_tsquery('english', $1)`,
			"cluster controllers")
		require.NoError(t, err)
		defer func() { _ = rows.Close() }()

		var ids []string
		for rows.Next() {
			var id string
			require.NoError(t, rows.Scan(&id))
			ids = append(ids, id)
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, []string{"doc-k8s"}, ids)
	})

	t.Run("claims by statement", func(t *testing.T) {
		var id string
		err := client.DB().QueryRowContext(ctx,
			`SELECT claim_id FROM claims
			 WHERE to_tsvector('english', statement) @@ plainto_tsquery('english', $1)`,
			"reconcile state").Scan(&id)
		require.NoError(t, err)
		assert.Equal(t, "claim-1", id)
	})

	t.Run("no match", func(t *testing.T) {
		var count int
		err := client.DB().QueryRowContext(ctx,
			`SELECT count(*) FROM claims
			 WHERE to_tsvector('english', statement) @@ plainto_tsquery('english', $1)`,
			"unrelated astronomy").Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestCreateGINIndexes_Idempotent(t *testing.T) {
	client := newTestClient(t)
	drv := entsql.OpenDB(dialect.Postgres, client.DB())

	// newTestClient already created them once.
	require.NoError(t, CreateGINIndexes(context.Background(), drv))
}

func seedDocument(t *testing.T, client *ent.Client, id, title, description string) {
	t.Helper()
	err := client.Document.Create().
		SetID(id).
		SetSourceURL("https://example.com/" + id).
		SetTitle(title).
		SetDescription(description).
		Exec(context.Background())
	require.NoError(t, err)
}

func seedClaim(t *testing.T, client *ent.Client, id, documentID, statement string) {
	t.Helper()
	err := client.Claim.Create().
		SetID(id).
		SetClaimHash("hash-" + id).
		SetStatement(statement).
		SetSubjectEntityID("ent-1").
		SetDocumentID(documentID).
		SetWorkflowID("wf-seed").
		Exec(context.Background())
	require.NoError(t, err)
}
