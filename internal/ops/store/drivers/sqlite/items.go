package sqlite

import (
	"context"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
)

type itemsRepo struct {
	q querier
}

const itemColumns = `id, part_assy_name, part_name, process, created_at, updated_at`

func scanItem(row interface{ Scan(...any) error }) (domain.Item, error) {
	var i domain.Item
	err := row.Scan(&i.ID, &i.PartAssyName, &i.PartName, &i.Process, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (r *itemsRepo) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Item
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *itemsRepo) GetItemByID(ctx context.Context, id string) (domain.Item, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	i, err := scanItem(row)
	if err != nil {
		return domain.Item{}, mapNotFound(err)
	}
	return i, nil
}

func (r *itemsRepo) FindItemByName(ctx context.Context, name string) (domain.Item, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE part_assy_name LIKE '%' || ? || '%'
		 ORDER BY part_assy_name ASC LIMIT 1`, name)
	i, err := scanItem(row)
	if err != nil {
		return domain.Item{}, mapNotFound(err)
	}
	return i, nil
}

func (r *itemsRepo) GetItemByPartAssyName(ctx context.Context, partAssyName string) (domain.Item, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE part_assy_name = ?`, partAssyName)
	i, err := scanItem(row)
	if err != nil {
		return domain.Item{}, mapNotFound(err)
	}
	return i, nil
}

func (r *itemsRepo) CreateItem(ctx context.Context, i domain.Item) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO items (id, part_assy_name, part_name, process, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		i.ID, i.PartAssyName, i.PartName, i.Process, i.CreatedAt, i.UpdatedAt)
	return mapConstraint(err)
}

func (r *itemsRepo) UpdateItem(ctx context.Context, i domain.Item) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE items SET part_assy_name = ?, part_name = ?, process = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		i.PartAssyName, i.PartName, i.Process, i.ID)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRowAffected(res)
}

func (r *itemsRepo) DeleteItem(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
