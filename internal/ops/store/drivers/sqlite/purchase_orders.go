package sqlite

import (
	"context"
	"strings"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
)

type purchaseOrdersRepo struct {
	q querier
}

const purchaseOrderColumns = `id, no_po, po_date, customer_name, part_assy_name, quantity, sales_name,
	created_by_user_id, created_by_user_display_name, created_at, updated_at`

func scanPurchaseOrder(row interface{ Scan(...any) error }) (domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	err := row.Scan(&po.ID, &po.NoPO, &po.PODate, &po.CustomerName, &po.PartAssyName, &po.Quantity,
		&po.SalesName, &po.CreatedByUserID, &po.CreatedByUserDisplayName, &po.CreatedAt, &po.UpdatedAt)
	return po, err
}

func (r *purchaseOrdersRepo) ListPurchaseOrders(ctx context.Context, f domain.PurchaseOrderFilter) ([]domain.PurchaseOrder, error) {
	var (
		where []string
		args  []any
	)
	if f.StartDate != "" && f.EndDate != "" {
		where = append(where, `po_date >= ? AND po_date <= ?`)
		args = append(args, f.StartDate, f.EndDate)
	}
	if f.CreatedByUserID != "" {
		where = append(where, `created_by_user_id = ?`)
		args = append(args, f.CreatedByUserID)
	}
	if f.SalesName != "" {
		where = append(where, `sales_name LIKE '%' || ? || '%'`)
		args = append(args, f.SalesName)
	}

	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY po_date DESC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, po)
	}
	return out, rows.Err()
}

func (r *purchaseOrdersRepo) GetPurchaseOrderByID(ctx context.Context, id string) (domain.PurchaseOrder, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE id = ?`, id)
	po, err := scanPurchaseOrder(row)
	if err != nil {
		return domain.PurchaseOrder{}, mapNotFound(err)
	}
	return po, nil
}

func (r *purchaseOrdersRepo) CreatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO purchase_orders (id, no_po, po_date, customer_name, part_assy_name, quantity, sales_name,
			created_by_user_id, created_by_user_display_name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		po.ID, po.NoPO, po.PODate, po.CustomerName, po.PartAssyName, po.Quantity, po.SalesName,
		po.CreatedByUserID, po.CreatedByUserDisplayName, po.CreatedAt, po.UpdatedAt)
	return mapConstraint(err)
}

func (r *purchaseOrdersRepo) UpdatePurchaseOrder(ctx context.Context, po domain.PurchaseOrder) error {
	// Creator attribution is intentionally not part of the SET list.
	res, err := r.q.ExecContext(ctx,
		`UPDATE purchase_orders SET no_po = ?, po_date = ?, customer_name = ?, part_assy_name = ?,
			quantity = ?, sales_name = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		po.NoPO, po.PODate, po.CustomerName, po.PartAssyName, po.Quantity, po.SalesName, po.ID)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRowAffected(res)
}

func (r *purchaseOrdersRepo) DeletePurchaseOrder(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM purchase_orders WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
