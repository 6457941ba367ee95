//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tablebook/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// StaffPassword is the plaintext every seeded staff account logs in with.
const StaffPassword = "password123"

var (
	staffHashOnce sync.Once
	staffHash     string
	staffHashErr  error
)

func CreateTestStaff(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	ctx := context.Background()

	// hashed once per process, bcrypt is too slow to rerun per fixture
	staffHashOnce.Do(func() {
		staffHash, staffHashErr = password.Hash(StaffPassword)
	})
	require.NoError(t, staffHashErr)
	tag, err := db.Exec(ctx, "INSERT INTO staff (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		staffID, email, staffHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM staff WHERE email = $1 AND is_active = true", email).Scan(&staffID)
	}

	return staffID
}

func CreateTestTable(t *testing.T, db DBLike, name string, capacity int) uuid.UUID {
	t.Helper()

	tableID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO tables (id, name, capacity) VALUES ($1, $2, $3) ON CONFLICT (name) DO NOTHING",
		tableID, name, capacity)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM tables WHERE name = $1", name).Scan(&tableID)
	}

	return tableID
}

func CreateTestMenuItem(t *testing.T, db DBLike, name string, priceCents int64) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO menu_items (id, name, price_cents, available) VALUES ($1, $2, $3, true)",
		itemID, name, priceCents)
	require.NoError(t, err)

	return itemID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO tables (id, name, capacity) VALUES
		    (gen_random_uuid(), 'T1', 2),
		    (gen_random_uuid(), 'T2', 4),
		    (gen_random_uuid(), 'T3', 6)
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO promotions (id, code, discount_type, discount_value, min_subtotal_cents, channels) VALUES
		    (gen_random_uuid(), 'WELCOME10', 'percent', 10, 0, ARRAY['dine_in', 'pickup'])
		ON CONFLICT (code) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
