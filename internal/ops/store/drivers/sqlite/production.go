package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
)

type productionRepo struct {
	q querier
}

const productionColumns = `id, tanggal, nama_operator, shift, jenis_proses, part_assy, part_name, process,
	mesin, start_time, finish_time, break_menit, duration, ok, ng, qc_line, note, created_at, updated_at`

func scanProduction(row interface{ Scan(...any) error }) (domain.ProductionRecord, error) {
	var (
		rec  domain.ProductionRecord
		note sql.NullString
	)
	err := row.Scan(&rec.ID, &rec.Tanggal, &rec.NamaOperator, &rec.Shift, &rec.JenisProses,
		&rec.PartAssy, &rec.PartName, &rec.Process, &rec.Mesin, &rec.StartTime, &rec.FinishTime,
		&rec.BreakMenit, &rec.Duration, &rec.OK, &rec.NG, &rec.QCLine, &note,
		&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return domain.ProductionRecord{}, err
	}
	rec.Note = note.String
	return rec, nil
}

func (r *productionRepo) ListProduction(ctx context.Context, f domain.ProductionFilter) ([]domain.ProductionRecord, error) {
	var (
		where []string
		args  []any
	)
	if f.DateFrom != "" {
		where = append(where, `tanggal >= ?`)
		args = append(args, f.DateFrom)
	}
	if f.DateTo != "" {
		where = append(where, `tanggal <= ?`)
		args = append(args, f.DateTo)
	}
	if f.ProcessType != "" {
		where = append(where, `jenis_proses = ?`)
		args = append(args, f.ProcessType)
	}
	if f.Shift != "" {
		where = append(where, `shift = ?`)
		args = append(args, f.Shift)
	}

	query := `SELECT ` + productionColumns + ` FROM production_data`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY tanggal DESC, created_at DESC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ProductionRecord
	for rows.Next() {
		rec, err := scanProduction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *productionRepo) GetProductionByID(ctx context.Context, id string) (domain.ProductionRecord, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+productionColumns+` FROM production_data WHERE id = ?`, id)
	rec, err := scanProduction(row)
	if err != nil {
		return domain.ProductionRecord{}, mapNotFound(err)
	}
	return rec, nil
}

func (r *productionRepo) CreateProduction(ctx context.Context, rec domain.ProductionRecord) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO production_data (id, tanggal, nama_operator, shift, jenis_proses, part_assy, part_name, process,
			mesin, start_time, finish_time, break_menit, duration, ok, ng, qc_line, note, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Tanggal, rec.NamaOperator, rec.Shift, rec.JenisProses, rec.PartAssy, rec.PartName,
		rec.Process, rec.Mesin, rec.StartTime, rec.FinishTime, rec.BreakMenit, rec.Duration,
		rec.OK, rec.NG, rec.QCLine, nullIfEmpty(rec.Note), rec.CreatedAt, rec.UpdatedAt)
	return err
}

func (r *productionRepo) UpdateProduction(ctx context.Context, rec domain.ProductionRecord) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE production_data SET tanggal = ?, nama_operator = ?, shift = ?, jenis_proses = ?,
			part_assy = ?, part_name = ?, process = ?, mesin = ?, start_time = ?, finish_time = ?,
			break_menit = ?, duration = ?, ok = ?, ng = ?, qc_line = ?, note = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		rec.Tanggal, rec.NamaOperator, rec.Shift, rec.JenisProses, rec.PartAssy, rec.PartName,
		rec.Process, rec.Mesin, rec.StartTime, rec.FinishTime, rec.BreakMenit, rec.Duration,
		rec.OK, rec.NG, rec.QCLine, nullIfEmpty(rec.Note), rec.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *productionRepo) DeleteProduction(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM production_data WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *productionRepo) DistinctQCLines(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "qc_line")
}

func (r *productionRepo) DistinctPartAssy(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "part_assy")
}

func (r *productionRepo) DistinctPartNames(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "part_name")
}

func (r *productionRepo) DistinctProcesses(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "process")
}

// distinct pulls the sorted unique non-empty values of one column. The column
// name always comes from a compile-time constant call site, never user input.
func (r *productionRepo) distinct(ctx context.Context, column string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT DISTINCT `+column+` FROM production_data
		 WHERE `+column+` IS NOT NULL AND `+column+` != ''
		 ORDER BY `+column+` ASC`)
	if err != nil {
		return nil, err
	}
	return collectStrings(rows)
}

func (r *productionRepo) GetPartDetailsByPartAssy(ctx context.Context, partAssy string) (domain.PartDetails, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT part_name, process FROM production_data
		 WHERE part_assy = ? ORDER BY created_at DESC LIMIT 1`, partAssy)

	var pd domain.PartDetails
	if err := row.Scan(&pd.PartName, &pd.Process); err != nil {
		return domain.PartDetails{}, mapNotFound(err)
	}
	return pd, nil
}
