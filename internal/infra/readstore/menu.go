package readstore

import (
	"context"
	"encoding/json"

	"tablebook/internal/infra"
	"tablebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

const listAvailableMenuSQL = `
SELECT id, name, price_cents, option_groups, available
FROM menu_items
WHERE available
ORDER BY sort_order, name`

type MenuReadStore struct {
	pool *pgxpool.Pool
}

func NewMenuReadStore(pool *pgxpool.Pool) *MenuReadStore {
	return &MenuReadStore{pool: pool}
}

func (r *MenuReadStore) ListAvailable(ctx context.Context) ([]queries.MenuItemView, error) {
	rows, err := r.pool.Query(ctx, listAvailableMenuSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer rows.Close()

	var out []queries.MenuItemView
	for rows.Next() {
		var (
			item       queries.MenuItemView
			groupsJSON []byte
		)
		if err := rows.Scan(&item.ID, &item.Name, &item.PriceCents, &groupsJSON, &item.Available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item", err)
		}
		if len(groupsJSON) > 0 {
			if err := json.Unmarshal(groupsJSON, &item.OptionGroups); err != nil {
				return nil, infra.WrapRepoErr("failed to decode option groups", err)
			}
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	return out, nil
}
