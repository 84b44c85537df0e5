package sqlite

import (
	"context"
	"database/sql"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
)

type customersRepo struct {
	q querier
}

const customerColumns = `id, customer_name, address, phone, email, created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }) (domain.Customer, error) {
	var (
		c                     domain.Customer
		address, phone, email sql.NullString
	)
	err := row.Scan(&c.ID, &c.CustomerName, &address, &phone, &email, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Customer{}, err
	}
	c.Address = address.String
	c.Phone = phone.String
	c.Email = email.String
	return c, nil
}

func (r *customersRepo) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *customersRepo) GetCustomerByID(ctx context.Context, id string) (domain.Customer, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = ?`, id)
	c, err := scanCustomer(row)
	if err != nil {
		return domain.Customer{}, mapNotFound(err)
	}
	return c, nil
}

func (r *customersRepo) FindCustomerByName(ctx context.Context, name string) (domain.Customer, error) {
	// LIKE is case-insensitive for ASCII in sqlite, matching the
	// dashboard's ilike substring search.
	row := r.q.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers
		 WHERE customer_name LIKE '%' || ? || '%'
		 ORDER BY customer_name ASC LIMIT 1`, name)
	c, err := scanCustomer(row)
	if err != nil {
		return domain.Customer{}, mapNotFound(err)
	}
	return c, nil
}

func (r *customersRepo) CreateCustomer(ctx context.Context, c domain.Customer) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO customers (id, customer_name, address, phone, email, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.CustomerName, nullIfEmpty(c.Address), nullIfEmpty(c.Phone), nullIfEmpty(c.Email),
		c.CreatedAt, c.UpdatedAt)
	return mapConstraint(err)
}

func (r *customersRepo) UpdateCustomer(ctx context.Context, c domain.Customer) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE customers SET customer_name = ?, address = ?, phone = ?, email = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		c.CustomerName, nullIfEmpty(c.Address), nullIfEmpty(c.Phone), nullIfEmpty(c.Email), c.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *customersRepo) DeleteCustomer(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
