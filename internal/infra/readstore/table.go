package readstore

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

const listTablesSQL = `
SELECT id, name, capacity
FROM tables
ORDER BY name`

type TableReadStore struct {
	pool *pgxpool.Pool
}

func NewTableReadStore(pool *pgxpool.Pool) *TableReadStore {
	return &TableReadStore{pool: pool}
}

func (r *TableReadStore) ListAll(ctx context.Context) ([]queries.TableView, error) {
	rows, err := r.pool.Query(ctx, listTablesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}
	defer rows.Close()

	var out []queries.TableView
	for rows.Next() {
		var t queries.TableView
		if err := rows.Scan(&t.ID, &t.Name, &t.Capacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}
	return out, nil
}
