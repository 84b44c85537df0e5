package sqlite

import (
	"context"
	"database/sql"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
)

type profilesRepo struct {
	q querier
}

const profileColumns = `id, email, display_name, role, password_hash, created_at, updated_at`

func scanProfile(row interface{ Scan(...any) error }) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.Email, &p.DisplayName, &p.Role, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *profilesRepo) GetProfileByID(ctx context.Context, id string) (domain.Profile, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE id = ?`, id)
	p, err := scanProfile(row)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *profilesRepo) GetProfileByEmail(ctx context.Context, email string) (domain.Profile, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE email = ?`, email)
	p, err := scanProfile(row)
	if err != nil {
		return domain.Profile{}, mapNotFound(err)
	}
	return p, nil
}

func (r *profilesRepo) ListProfiles(ctx context.Context) ([]domain.Profile, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM profiles ORDER BY display_name ASC`)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}

func (r *profilesRepo) ListProfilesByRole(ctx context.Context, role string) ([]domain.Profile, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE role = ? ORDER BY display_name ASC`, role)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}

func collectProfiles(rows *sql.Rows) ([]domain.Profile, error) {
	defer rows.Close()

	var out []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *profilesRepo) CreateProfile(ctx context.Context, p domain.Profile) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO profiles (id, email, display_name, role, password_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Email, p.DisplayName, p.Role, p.PasswordHash, p.CreatedAt, p.UpdatedAt)
	return mapConstraint(err)
}

func (r *profilesRepo) UpdateProfile(ctx context.Context, id, displayName, role string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE profiles SET display_name = ?, role = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		displayName, role, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *profilesRepo) UpdatePasswordHash(ctx context.Context, id string, newHash string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE profiles SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		newHash, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *profilesRepo) DeleteProfile(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *profilesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
