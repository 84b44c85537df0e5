package sqlite

import (
	"context"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
)

type machinesRepo struct {
	q querier
}

func (r *machinesRepo) ListMachines(ctx context.Context) ([]domain.Machine, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, machine_name, created_at FROM machines ORDER BY machine_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Machine
	for rows.Next() {
		var m domain.Machine
		if err := rows.Scan(&m.ID, &m.MachineName, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *machinesRepo) DistinctMachineNames(ctx context.Context) ([]string, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT DISTINCT machine_name FROM machines
		 WHERE machine_name != '' ORDER BY machine_name ASC`)
	if err != nil {
		return nil, err
	}
	return collectStrings(rows)
}

func (r *machinesRepo) CreateMachine(ctx context.Context, m domain.Machine) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO machines (id, machine_name, created_at) VALUES (?, ?, ?)`,
		m.ID, m.MachineName, m.CreatedAt)
	return mapConstraint(err)
}

type operatorsRepo struct {
	q querier
}

func (r *operatorsRepo) ListOperators(ctx context.Context) ([]domain.Operator, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, operator_name, created_at FROM operators ORDER BY operator_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Operator
	for rows.Next() {
		var o domain.Operator
		if err := rows.Scan(&o.ID, &o.OperatorName, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *operatorsRepo) DistinctOperatorNames(ctx context.Context) ([]string, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT DISTINCT operator_name FROM operators
		 WHERE operator_name != '' ORDER BY operator_name ASC`)
	if err != nil {
		return nil, err
	}
	return collectStrings(rows)
}

func (r *operatorsRepo) CreateOperator(ctx context.Context, o domain.Operator) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO operators (id, operator_name, created_at) VALUES (?, ?, ?)`,
		o.ID, o.OperatorName, o.CreatedAt)
	return mapConstraint(err)
}
