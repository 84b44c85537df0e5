package sqlite

import (
	"context"

	"github.com/prakarsateknik/opsdesk/internal/ops/domain"
)

type rememberTokensRepo struct {
	q querier
}

func (r *rememberTokensRepo) CreateRememberToken(ctx context.Context, t domain.RememberToken) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO remember_tokens (id, user_id, token_hash, session_id, expires_at, revoked, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.TokenHash, t.SessionID, t.ExpiresAt, t.Revoked, t.CreatedAt, t.UpdatedAt)
	return mapConstraint(err)
}

func (r *rememberTokensRepo) GetRememberTokenByHash(ctx context.Context, hash string) (domain.RememberToken, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, user_id, token_hash, session_id, expires_at, revoked, created_at, updated_at
		 FROM remember_tokens WHERE token_hash = ?`, hash)

	var t domain.RememberToken
	err := row.Scan(&t.ID, &t.UserID, &t.TokenHash, &t.SessionID, &t.ExpiresAt, &t.Revoked, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.RememberToken{}, mapNotFound(err)
	}
	return t, nil
}

func (r *rememberTokensRepo) RevokeRememberToken(ctx context.Context, hash string) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE remember_tokens SET revoked = 1, updated_at = CURRENT_TIMESTAMP WHERE token_hash = ?`, hash)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *rememberTokensRepo) RevokeAllUserRememberTokens(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE remember_tokens SET revoked = 1, updated_at = CURRENT_TIMESTAMP WHERE user_id = ? AND revoked = 0`, userID)
	return err
}

func (r *rememberTokensRepo) DeleteExpiredRememberTokens(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM remember_tokens WHERE expires_at < CURRENT_TIMESTAMP OR revoked = 1`)
	return err
}
